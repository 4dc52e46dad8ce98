// SPDX-License-Identifier: MIT

// Package hydraulics: functional configuration of the iterative solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults and invariants.
//
// Defaults reproduce the classic textbook procedure exactly: f₀ = 0.02,
// tolerance 1e-6, at least 5 and at most 100 rounds, water as the fluid,
// g = 9.81 m/s², no logging.
package hydraulics

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicInitialFrictionInvalid = "hydraulics: WithInitialFriction: f0 must be finite and > 0"
	panicToleranceInvalid       = "hydraulics: WithTolerance: tol must be finite and > 0"
	panicMinIterationsInvalid   = "hydraulics: WithMinIterations: n must be >= 1"
	panicMaxIterationsInvalid   = "hydraulics: WithMaxIterations: n must be >= 1"
	panicViscosityInvalid       = "hydraulics: WithViscosity: nu must be finite and > 0"
	panicGravityInvalid         = "hydraulics: WithGravity: g must be finite and > 0"
)

// Observer receives every round of a fixed-point iteration: the 1-based round
// number and the friction factor produced by that round.
type Observer func(round int, f float64)

// Option mutates solver options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options stores the effective solver configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	initialF  float64 // > 0; DefaultInitialFriction
	tol       float64 // > 0; DefaultTolerance
	minIter   int     // >= 1; DefaultMinIterations
	maxIter   int     // >= 1; DefaultMaxIterations
	viscosity float64 // > 0; NuWater
	gravity   float64 // > 0; G
	logger    *zap.Logger
	observer  Observer
}

// WithInitialFriction sets the friction factor seeding every iteration.
//
// Errors:
//   - Panics when f0 is non-finite or not strictly positive.
func WithInitialFriction(f0 float64) Option {
	if !isPositiveFinite(f0) {
		panic(panicInitialFrictionInvalid)
	}

	return func(o *Options) { o.initialF = f0 }
}

// WithTolerance sets the absolute convergence threshold on |Δf|.
//
// Errors:
//   - Panics when tol is non-finite or not strictly positive.
func WithTolerance(tol float64) Option {
	if !isPositiveFinite(tol) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMinIterations sets the number of rounds performed before the tolerance
// is even consulted.
//
// Notes:
//   - When the resolved minimum exceeds the resolved maximum, the maximum wins.
func WithMinIterations(n int) Option {
	if n < 1 {
		panic(panicMinIterationsInvalid)
	}

	return func(o *Options) { o.minIter = n }
}

// WithMaxIterations sets the hard cap on rounds. Reaching it is not an error:
// the last estimate is returned and Result.Converged is false.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithViscosity sets the kinematic viscosity (m²/s) used by every Reynolds
// number computed inside the solvers.
func WithViscosity(nu float64) Option {
	if !isPositiveFinite(nu) {
		panic(panicViscosityInvalid)
	}

	return func(o *Options) { o.viscosity = nu }
}

// WithGravity overrides the gravitational acceleration (m/s²).
func WithGravity(g float64) Option {
	if !isPositiveFinite(g) {
		panic(panicGravityInvalid)
	}

	return func(o *Options) { o.gravity = g }
}

// WithLogger attaches a logger receiving a Debug entry per solve and a Warn
// entry whenever the iteration cap is hit before convergence.
// A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithObserver installs a per-round callback. It runs synchronously inside
// the solver loop, so it must be cheap and must not retain the solver.
func WithObserver(fn Observer) Option {
	return func(o *Options) { o.observer = fn }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		initialF:  DefaultInitialFriction,
		tol:       DefaultTolerance,
		minIter:   DefaultMinIterations,
		maxIter:   DefaultMaxIterations,
		viscosity: NuWater,
		gravity:   G,
		logger:    zap.NewNop(),
	}
}

// gatherOptions applies opts left-to-right over the defaults and enforces
// minIter <= maxIter.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.minIter > o.maxIter {
		o.minIter = o.maxIter
	}

	return o
}

// isPositiveFinite reports whether x is a finite number strictly above zero.
func isPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
