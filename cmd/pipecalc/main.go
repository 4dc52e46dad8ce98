// Command pipecalc resolves a YAML file of pipe cases and prints a table of
// discharge, diameter, head loss, velocity and Reynolds number.
//
//	pipecalc -file cases.yaml
//
// Defaults come from PIPECALC_* environment variables (see internal/config).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pipeflow/catalog"
	"github.com/katalvlaran/pipeflow/internal/batch"
	"github.com/katalvlaran/pipeflow/internal/config"
	"github.com/katalvlaran/pipeflow/internal/logging"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "-", "YAML file of pipe cases (- for stdin)")
	flag.Parse()

	if err := run(*file, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pipecalc:", err)
		os.Exit(1)
	}
}

func run(path string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Development = cfg.Log.Development
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sizes, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	cases, err := batch.Decode(in)
	if err != nil {
		return err
	}
	logger.Info("cases loaded", zap.String("file", path), zap.Int("count", len(cases)))

	runner := batch.NewRunner(batch.Defaults{
		Roughness:     cfg.Solver.Roughness,
		Viscosity:     cfg.Solver.Viscosity,
		MaxIterations: cfg.Solver.MaxIterations,
	}, sizes, logger)
	rows, err := runner.Run(cases)
	if werr := batch.Write(stdout, rows); werr != nil && err == nil {
		err = werr
	}

	return err
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return catalog.LoadYAML(f)
}
