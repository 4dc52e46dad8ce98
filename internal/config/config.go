// Package config loads pipecalc settings from PIPECALC_* environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "pipecalc"

// Config holds all pipecalc configuration.
type Config struct {
	Solver  SolverConfig
	Catalog string `envconfig:"CATALOG"` // optional YAML catalog path; DN series when empty
	Log     LogConfig
}

// SolverConfig holds the pipe defaults and iteration limits.
type SolverConfig struct {
	Roughness     float64 `envconfig:"ROUGHNESS" default:"0.001"`
	Viscosity     float64 `envconfig:"VISCOSITY" default:"1.1e-6"`
	MaxIterations int     `envconfig:"MAX_ITERATIONS" default:"100"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load reads the configuration from the environment, e.g.
// PIPECALC_SOLVER_ROUGHNESS, PIPECALC_CATALOG, PIPECALC_LOG_LEVEL.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Solver.MaxIterations < 1 {
		return nil, fmt.Errorf("failed to load config: max iterations %d < 1", cfg.Solver.MaxIterations)
	}

	return &cfg, nil
}
