// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gblas/mis"
	"github.com/katalvlaran/gblas/sparse"
)

func (a *app) misCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mis",
		Short: "Maximal independent set of an undirected random graph",
		Args:  cobra.NoArgs,
		RunE:  a.runMIS,
	}
}

func (a *app) runMIS(cmd *cobra.Command, _ []string) error {
	cfg, err := a.config(cmd)
	if err != nil {
		return err
	}
	g, err := a.graph(cfg, false)
	if err != nil {
		return err
	}
	iset, err := sparse.NewVector[bool](g.NRows())
	if err != nil {
		return err
	}

	started := time.Now()
	err = mis.MIS(cmd.Context(), g, iset,
		mis.WithSeed(cfg.Seed), mis.WithLogger(a.log), mis.WithTracer(a.tracer))
	if err != nil {
		return fmt.Errorf("mis: %w", err)
	}
	ids := mis.VertexIDs(iset)
	if !cfg.Quiet {
		printf(cmd, "%v", ids)
	}
	printf(cmd, "members=%d/%d elapsed=%s", len(ids), g.NRows(), time.Since(started).Round(time.Microsecond))
	return nil
}
