// Package batch resolves a YAML list of pipe cases and renders the results.
package batch

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/pipeflow/catalog"
	"github.com/katalvlaran/pipeflow/hydraulics"
	"github.com/katalvlaran/pipeflow/pipe"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrMissingValue indicates a case lacking one of the quantities its unknown needs.
var ErrMissingValue = errors.New("batch: missing known value")

// Case is one pipe definition as read from YAML. Pointer fields are optional;
// Roughness and Viscosity fall back to Defaults.
type Case struct {
	Name      string   `yaml:"name"`
	Unknown   string   `yaml:"unknown"`
	Discharge *float64 `yaml:"discharge,omitempty"`
	Diameter  *float64 `yaml:"diameter,omitempty"`
	HeadLoss  *float64 `yaml:"head_loss,omitempty"`
	Length    float64  `yaml:"length"`
	Roughness *float64 `yaml:"roughness,omitempty"`
	Viscosity *float64 `yaml:"viscosity,omitempty"`
}

// Defaults apply to every case that does not override them.
type Defaults struct {
	Roughness     float64
	Viscosity     float64
	MaxIterations int
}

// Row is the resolved state of one case.
type Row struct {
	Name      string
	Unknown   pipe.Unknown
	Discharge float64
	Diameter  float64
	HeadLoss  float64
	Velocity  float64
	Reynolds  float64
	Standard  string // smallest catalog size >= Diameter, for diameter cases
}

// Decode reads a document of the form
//
//	cases:
//	  - name: main
//	    unknown: diameter
//	    discharge: 0.1
//	    head_loss: 5
//	    length: 1000
func Decode(r io.Reader) ([]Case, error) {
	var doc struct {
		Cases []Case `yaml:"cases"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return doc.Cases, nil
}

// Runner resolves cases with shared defaults, catalog and logger.
type Runner struct {
	defaults Defaults
	catalog  *catalog.Catalog
	logger   *zap.Logger
}

// NewRunner returns a Runner. A nil catalog disables standard-size lookup;
// a nil logger disables logging.
func NewRunner(d Defaults, c *catalog.Catalog, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{defaults: d, catalog: c, logger: logger}
}

// Run resolves every case in order and stops at the first invalid one.
func (r *Runner) Run(cases []Case) ([]Row, error) {
	rows := make([]Row, 0, len(cases))
	for i, c := range cases {
		row, err := r.resolve(c)
		if err != nil {
			return rows, fmt.Errorf("case %d (%s): %w", i, c.Name, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (r *Runner) resolve(c Case) (Row, error) {
	u, err := pipe.ParseUnknown(c.Unknown)
	if err != nil {
		return Row{}, err
	}

	var first, second *float64
	switch u {
	case pipe.Discharge:
		first, second = c.Diameter, c.HeadLoss
	case pipe.Diameter:
		first, second = c.Discharge, c.HeadLoss
	case pipe.HeadLoss:
		first, second = c.Discharge, c.Diameter
	}
	if first == nil || second == nil {
		return Row{}, fmt.Errorf("unknown %s: %w", u, ErrMissingValue)
	}

	ks, nu := r.defaults.Roughness, r.defaults.Viscosity
	if c.Roughness != nil {
		ks = *c.Roughness
	}
	if c.Viscosity != nil {
		nu = *c.Viscosity
	}

	solverOpts := []hydraulics.Option{hydraulics.WithLogger(r.logger.With(zap.String("case", c.Name)))}
	if r.defaults.MaxIterations > 0 {
		solverOpts = append(solverOpts, hydraulics.WithMaxIterations(r.defaults.MaxIterations))
	}
	p, err := pipe.NewWithUnknown(u, *first, *second, c.Length,
		pipe.WithRoughness(ks),
		pipe.WithViscosity(nu),
		pipe.WithSolverOptions(solverOpts...),
	)
	if err != nil {
		return Row{}, err
	}

	row := Row{
		Name:      c.Name,
		Unknown:   u,
		Discharge: p.Discharge(),
		Diameter:  p.Diameter(),
		HeadLoss:  p.HeadLoss(),
		Velocity:  p.Velocity(),
		Reynolds:  p.Reynolds(),
	}
	if u == pipe.Diameter && r.catalog != nil {
		if e, ok := r.catalog.Ceiling(row.Diameter); ok {
			row.Standard = e.Name
		}
	}
	r.logger.Debug("case resolved",
		zap.String("case", c.Name),
		zap.Stringer("unknown", u),
		zap.Float64("value", p.Resolve()),
	)

	return row, nil
}

// Write renders rows as an aligned table.
func Write(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tUNKNOWN\tQ [m3/s]\tD [m]\thf [m]\tV [m/s]\tRe\tSTANDARD")
	for _, r := range rows {
		std := r.Standard
		if std == "" {
			std = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.4f\t%.3f\t%.0f\t%s\n",
			r.Name, r.Unknown, r.Discharge, r.Diameter, r.HeadLoss, r.Velocity, r.Reynolds, std)
	}

	return tw.Flush()
}
