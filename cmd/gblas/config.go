// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds every knob of the generated graph and the solver run.
// A YAML file given with --config supplies defaults; explicit flags win.
type Config struct {
	Vertices    int     `yaml:"vertices"`
	Probability float64 `yaml:"probability"`
	Seed        int64   `yaml:"seed"`
	Directed    bool    `yaml:"directed"`
	MinWeight   int     `yaml:"min_weight"`
	MaxWeight   int     `yaml:"max_weight"`
	Source      int     `yaml:"source"`
	Delta       float64 `yaml:"delta"`
	Algorithm   string  `yaml:"algorithm"`
	Verify      bool    `yaml:"verify"`
	Quiet       bool    `yaml:"quiet"`
}

// DefaultConfig returns the values used when neither file nor flag sets a field.
func DefaultConfig() Config {
	return Config{
		Vertices:    100,
		Probability: 0.05,
		Seed:        1,
		Directed:    true,
		MinWeight:   1,
		MaxWeight:   9,
		Source:      0,
		Delta:       3,
		Algorithm:   "delta",
	}
}

// bindFlags registers the graph and solver flags on fs, writing into c.
func (c *Config) bindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Vertices, "vertices", "n", c.Vertices, "number of vertices")
	fs.Float64VarP(&c.Probability, "probability", "p", c.Probability, "independent edge probability")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for graph and solver")
	fs.BoolVar(&c.Directed, "directed", c.Directed, "generate a directed graph")
	fs.IntVar(&c.MinWeight, "min-weight", c.MinWeight, "smallest integer edge weight")
	fs.IntVar(&c.MaxWeight, "max-weight", c.MaxWeight, "largest integer edge weight")
	fs.IntVarP(&c.Source, "source", "s", c.Source, "source vertex")
	fs.Float64Var(&c.Delta, "delta", c.Delta, "bucket width for delta-stepping")
	fs.StringVarP(&c.Algorithm, "algorithm", "a", c.Algorithm, "bellman-ford, filtered, delta or batch")
	fs.BoolVar(&c.Verify, "verify", c.Verify, "compare the result with Dijkstra")
	fs.BoolVarP(&c.Quiet, "quiet", "q", c.Quiet, "print only the summary line")
}

// loadConfig merges defaults, the YAML file at path (if any) and the flags
// that were set explicitly on fs, in that order.
func loadConfig(path string, flags Config, fs *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "vertices":
			cfg.Vertices = flags.Vertices
		case "probability":
			cfg.Probability = flags.Probability
		case "seed":
			cfg.Seed = flags.Seed
		case "directed":
			cfg.Directed = flags.Directed
		case "min-weight":
			cfg.MinWeight = flags.MinWeight
		case "max-weight":
			cfg.MaxWeight = flags.MaxWeight
		case "source":
			cfg.Source = flags.Source
		case "delta":
			cfg.Delta = flags.Delta
		case "algorithm":
			cfg.Algorithm = flags.Algorithm
		case "verify":
			cfg.Verify = flags.Verify
		case "quiet":
			cfg.Quiet = flags.Quiet
		}
	})
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.Vertices < 1:
		return fmt.Errorf("vertices=%d must be ≥ 1", c.Vertices)
	case c.Probability < 0 || c.Probability > 1:
		return fmt.Errorf("probability=%g not in [0,1]", c.Probability)
	case c.MinWeight < 0 || c.MaxWeight < c.MinWeight:
		return fmt.Errorf("weights require 0 ≤ min ≤ max, got %d..%d", c.MinWeight, c.MaxWeight)
	case c.Source < 0 || c.Source >= c.Vertices:
		return fmt.Errorf("source=%d outside [0,%d)", c.Source, c.Vertices)
	}
	return nil
}
