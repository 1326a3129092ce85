// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// slogExporter writes every finished span as one debug record.
type slogExporter struct {
	log *slog.Logger
}

func (e slogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		attrs := []any{
			slog.String("span", s.Name()),
			slog.Duration("elapsed", s.EndTime().Sub(s.StartTime())),
			slog.Int("events", len(s.Events())),
		}
		for _, kv := range s.Attributes() {
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
		}
		e.log.Debug("span", attrs...)
	}
	return nil
}

func (slogExporter) Shutdown(context.Context) error { return nil }

// newTracer returns a tracer whose spans go to log, and the shutdown hook.
func newTracer(log *slog.Logger) (trace.Tracer, func(context.Context) error) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(slogExporter{log: log}))
	return tp.Tracer("gblas"), tp.Shutdown
}
