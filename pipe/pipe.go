package pipe

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/pipeflow/hydraulics"
)

// Pipe is one pipe segment under steady, fully developed flow. Exactly one of
// discharge, diameter and head loss is unknown at construction; it is solved
// on first read and never recomputed. Length, roughness and viscosity are
// fixed. A Pipe must not be copied after first use.
type Pipe struct {
	discharge float64 // m³/s
	diameter  float64 // m
	headLoss  float64 // m

	length    float64 // m
	roughness float64 // m
	viscosity float64 // m²/s

	unknown  Unknown
	solver   Solver
	once     sync.Once
	resolved atomic.Bool
}

// New builds a Pipe from all three quantities, one of which is negative
// (conventionally Unresolved) to mark it as the unknown.
//
// Errors:
//   - ErrInvalidArgument if zero or more than one quantity is negative.
//   - ErrInvalidQuantity for NaN/Inf values or a non-positive length/viscosity.
func New(discharge, diameter, headLoss, length float64, opts ...Option) (*Pipe, error) {
	var (
		u     Unknown
		count int
	)
	for i, v := range [...]float64{discharge, diameter, headLoss} {
		if v < 0 {
			u = Unknown(i)
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("New: %d unresolved quantities, want exactly 1: %w", count, ErrInvalidArgument)
	}

	switch u {
	case Discharge:
		return NewWithUnknown(u, diameter, headLoss, length, opts...)
	case Diameter:
		return NewWithUnknown(u, discharge, headLoss, length, opts...)
	default:
		return NewWithUnknown(u, discharge, diameter, length, opts...)
	}
}

// NewFromTag builds a Pipe whose unknown is named by a case-insensitive tag:
//
//	"discharge"    a, b = diameter, head loss
//	"diameter"     a, b = discharge, head loss
//	"energylosses" a, b = discharge, diameter
func NewFromTag(tag string, a, b, length float64, opts ...Option) (*Pipe, error) {
	u, err := ParseUnknown(tag)
	if err != nil {
		return nil, fmt.Errorf("NewFromTag: %w", err)
	}

	return NewWithUnknown(u, a, b, length, opts...)
}

// NewWithUnknown builds a Pipe whose unknown is u; a and b are the two known
// quantities in the order documented by NewFromTag.
func NewWithUnknown(u Unknown, a, b, length float64, opts ...Option) (*Pipe, error) {
	if !u.valid() {
		return nil, fmt.Errorf("NewWithUnknown: %v: %w", u, ErrInvalidArgument)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := &Pipe{
		length:    length,
		roughness: cfg.roughness,
		viscosity: cfg.viscosity,
		unknown:   u,
		solver:    cfg.solver,
	}
	switch u {
	case Discharge:
		p.diameter, p.headLoss = a, b
	case Diameter:
		p.discharge, p.headLoss = a, b
	case HeadLoss:
		p.discharge, p.diameter = a, b
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("NewWithUnknown(%v): %w", u, err)
	}

	if p.solver == nil {
		solverOpts := append([]hydraulics.Option{hydraulics.WithViscosity(p.viscosity)}, cfg.solverOpts...)
		p.solver = hydraulics.NewSolver(solverOpts...)
	}

	return p, nil
}

// validate checks the known quantities and the fixed parameters.
func (p *Pipe) validate() error {
	known := [...]struct {
		u     Unknown
		name  string
		value float64
	}{
		{Discharge, "discharge", p.discharge},
		{Diameter, "diameter", p.diameter},
		{HeadLoss, "head loss", p.headLoss},
	}
	for _, q := range known {
		if q.u != p.unknown && !nonNegativeFinite(q.value) {
			return fmt.Errorf("%s=%v: %w", q.name, q.value, ErrInvalidQuantity)
		}
	}
	if !nonNegativeFinite(p.length) || p.length == 0 {
		return fmt.Errorf("length=%v: %w", p.length, ErrInvalidQuantity)
	}
	if !nonNegativeFinite(p.roughness) {
		return fmt.Errorf("roughness=%v: %w", p.roughness, ErrInvalidQuantity)
	}
	if !nonNegativeFinite(p.viscosity) || p.viscosity == 0 {
		return fmt.Errorf("viscosity=%v: %w", p.viscosity, ErrInvalidQuantity)
	}

	return nil
}

// resolve computes and stores the unknown exactly once.
func (p *Pipe) resolve() {
	p.once.Do(func() {
		switch p.unknown {
		case Discharge:
			p.discharge = p.solver.Discharge(p.length, p.roughness, p.headLoss, p.diameter)
		case Diameter:
			p.diameter = p.solver.Diameter(p.length, p.roughness, p.headLoss, p.discharge)
		case HeadLoss:
			p.headLoss = p.solver.HeadLoss(p.length, p.roughness, p.discharge, p.diameter)
		}
		p.resolved.Store(true)
	})
}

// Discharge returns Q (m³/s), solving it on first call if it is the unknown.
func (p *Pipe) Discharge() float64 {
	if p.unknown == Discharge {
		p.resolve()
	}

	return p.discharge
}

// Diameter returns D (m), solving it on first call if it is the unknown.
func (p *Pipe) Diameter() float64 {
	if p.unknown == Diameter {
		p.resolve()
	}

	return p.diameter
}

// HeadLoss returns hf (m), solving it on first call if it is the unknown.
func (p *Pipe) HeadLoss() float64 {
	if p.unknown == HeadLoss {
		p.resolve()
	}

	return p.headLoss
}

// Resolve forces resolution and returns the value of the unknown quantity.
func (p *Pipe) Resolve() float64 {
	p.resolve()
	switch p.unknown {
	case Discharge:
		return p.discharge
	case Diameter:
		return p.diameter
	default:
		return p.headLoss
	}
}

// Velocity returns the mean velocity (m/s). Always derived, never cached.
func (p *Pipe) Velocity() float64 {
	return hydraulics.Velocity(p.Discharge(), p.Diameter())
}

// Reynolds returns V·D/ν. Always derived, never cached.
func (p *Pipe) Reynolds() float64 {
	return hydraulics.ReynoldsNumber(p.Velocity(), p.Diameter(), p.viscosity)
}

// Unknown reports which quantity is (or was) solved.
func (p *Pipe) Unknown() Unknown { return p.unknown }

// Resolved reports whether the unknown has been computed.
func (p *Pipe) Resolved() bool { return p.resolved.Load() }

// Length returns L (m).
func (p *Pipe) Length() float64 { return p.length }

// Roughness returns ks (m).
func (p *Pipe) Roughness() float64 { return p.roughness }

// Viscosity returns ν (m²/s).
func (p *Pipe) Viscosity() float64 { return p.viscosity }

func nonNegativeFinite(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
