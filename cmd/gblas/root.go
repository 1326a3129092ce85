// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gblas/builder"
	"github.com/katalvlaran/gblas/sparse"
	"github.com/katalvlaran/gblas/sssp"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	flags      Config

	log    *slog.Logger
	tracer trace.Tracer
	stop   func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{flags: DefaultConfig()}
	root := &cobra.Command{
		Use:           "gblas",
		Short:         "Semiring graph algorithms on generated sparse graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML file with default values")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging and span summaries on stderr")
	a.flags.bindFlags(root.PersistentFlags())

	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if a.verbose {
			level = slog.LevelDebug
		}
		a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		a.tracer, a.stop = newTracer(a.log)
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		return a.stop(cmd.Context())
	}

	root.AddCommand(a.ssspCmd(), a.misCmd())
	return root
}

// config resolves the effective configuration for cmd.
func (a *app) config(cmd *cobra.Command) (Config, error) {
	return loadConfig(a.configPath, a.flags, cmd.Flags())
}

// graph builds the random sparse graph described by cfg.
func (a *app) graph(cfg Config, directed bool) (*sparse.RowMatrix[float64], error) {
	g, err := builder.Build(builder.RandomSparse(cfg.Vertices, cfg.Probability),
		builder.WithSeed(cfg.Seed),
		builder.WithDirected(directed),
		builder.WithIntegerWeight(cfg.MinWeight, cfg.MaxWeight),
	)
	if err != nil {
		return nil, err
	}
	a.log.Info("graph generated",
		slog.Int("vertices", g.NRows()),
		slog.Int("entries", g.NVals()),
		slog.Bool("directed", directed),
		slog.Int64("seed", cfg.Seed),
	)
	return g, nil
}

func algorithmNames() string {
	names := make([]string, len(sssp.Algorithms))
	for i, algo := range sssp.Algorithms {
		names[i] = string(algo)
	}
	return strings.Join(names, "|")
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
