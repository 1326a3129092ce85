// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gblas/dijkstra"
	"github.com/katalvlaran/gblas/sssp"
)

// errMismatch reports a solver result that differs from Dijkstra.
var errMismatch = errors.New("result differs from dijkstra")

func (a *app) ssspCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sssp",
		Short: "Shortest distances from one source (" + algorithmNames() + ")",
		Args:  cobra.NoArgs,
		RunE:  a.runSSSP,
	}
}

func (a *app) runSSSP(cmd *cobra.Command, _ []string) error {
	cfg, err := a.config(cmd)
	if err != nil {
		return err
	}
	algo, err := sssp.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	g, err := a.graph(cfg, cfg.Directed)
	if err != nil {
		return err
	}

	started := time.Now()
	dist, err := sssp.Solve(cmd.Context(), algo, g, cfg.Source, cfg.Delta,
		sssp.WithLogger(a.log), sssp.WithTracer(a.tracer))
	if err != nil {
		return fmt.Errorf("%s: %w", algo, err)
	}
	elapsed := time.Since(started)

	if !cfg.Quiet {
		printf(cmd, "%v", dist)
	}
	printf(cmd, "algorithm=%s source=%d reached=%d/%d elapsed=%s",
		algo, cfg.Source, dist.NVals(), dist.Size(), elapsed.Round(time.Microsecond))

	if !cfg.Verify {
		return nil
	}
	want, _, err := dijkstra.Dijkstra[float64](g, dijkstra.Source(cfg.Source))
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !dist.Equal(want) {
		a.log.Error("verification failed", slog.String("algorithm", string(algo)))
		return fmt.Errorf("%s: %w", algo, errMismatch)
	}
	printf(cmd, "verified against dijkstra")
	return nil
}
