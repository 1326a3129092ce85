// SPDX-License-Identifier: MIT

package sssp

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of the package tracer.
const TracerName = "github.com/katalvlaran/gblas/sssp"

// Options configures the observability sinks of every entry point.
//
// Logger – receives debug records (per bucket for DeltaStep, one summary otherwise).
// Tracer – starts one span per call.
type Options struct {
	Logger *slog.Logger
	Tracer trace.Tracer
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sssp: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTracer overrides the tracer obtained from the global provider.
// Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("sssp: WithTracer(nil)")
	}
	return func(o *Options) {
		o.Tracer = t
	}
}

// DefaultOptions returns a discarding logger and the global package tracer.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.DiscardHandler),
		Tracer: otel.Tracer(TracerName),
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
