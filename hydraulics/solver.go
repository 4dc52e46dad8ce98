// SPDX-License-Identifier: MIT

package hydraulics

// Solver binds a resolved option set to the inversion functions, so a caller
// configuring a fluid or a logger once can reuse it across many pipes.
// A Solver is immutable and safe for concurrent use.
type Solver struct {
	opts Options
}

// NewSolver resolves opts over the defaults and returns a reusable Solver.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts)}
}

// Viscosity returns the kinematic viscosity (m²/s) the solver assumes.
func (s *Solver) Viscosity() float64 { return s.opts.viscosity }

// FrictionFactor is the package-level FrictionFactor under s's options.
func (s *Solver) FrictionFactor(re, d, ks float64) float64 {
	return frictionFactor(s.options(), re, d, ks).Value
}

// HeadLoss is the package-level HeadLoss under s's options.
func (s *Solver) HeadLoss(l, ks, q, d float64) float64 {
	return headLoss(s.options(), l, ks, q, d)
}

// Discharge is the package-level Discharge under s's options.
func (s *Solver) Discharge(l, ks, hf, d float64) float64 {
	return discharge(s.options(), l, ks, hf, d)
}

// Diameter is the package-level Diameter under s's options.
func (s *Solver) Diameter(l, ks, hf, q float64) float64 {
	return diameter(s.options(), l, ks, hf, q).Value
}

// SolveDiameter is the package-level SolveDiameter under s's options.
func (s *Solver) SolveDiameter(l, ks, hf, q float64) Result {
	return diameter(s.options(), l, ks, hf, q)
}

// options hands out a copy so concurrent solves never share mutable state.
func (s *Solver) options() *Options {
	o := s.opts

	return &o
}
