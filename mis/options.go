// SPDX-License-Identifier: MIT

package mis

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of the package tracer.
const TracerName = "github.com/katalvlaran/gblas/mis"

// Options configures MIS.
//
// Seed   – seeds the score generator (default 0).
// Logger – receives one debug record per round; the default discards.
// Tracer – starts the "mis.MIS" span.
type Options struct {
	Seed   int64
	Logger *slog.Logger
	Tracer trace.Tracer
}

// Option represents a functional option for configuring MIS.
type Option func(*Options)

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mis: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithTracer overrides the tracer obtained from the global provider. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("mis: WithTracer(nil)")
	}
	return func(o *Options) {
		o.Tracer = t
	}
}

// DefaultOptions returns seed 0, a discarding logger and the global tracer.
func DefaultOptions() Options {
	return Options{
		Seed:   0,
		Logger: slog.New(slog.DiscardHandler),
		Tracer: otel.Tracer(TracerName),
	}
}
