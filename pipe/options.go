package pipe

import "github.com/katalvlaran/pipeflow/hydraulics"

// Solver computes the unknown quantity of a Pipe. *hydraulics.Solver is the
// production implementation; tests may substitute their own.
type Solver interface {
	HeadLoss(length, roughness, discharge, diameter float64) float64
	Discharge(length, roughness, headLoss, diameter float64) float64
	Diameter(length, roughness, headLoss, discharge float64) float64
}

// Option configures a Pipe at construction time.
// Values are validated by the constructor, which returns ErrInvalidQuantity
// instead of panicking, since they usually come from user input.
type Option func(*config)

type config struct {
	roughness  float64
	viscosity  float64
	solver     Solver
	solverOpts []hydraulics.Option
}

func defaultConfig() config {
	return config{
		roughness: hydraulics.DefaultRoughness,
		viscosity: hydraulics.NuWater,
	}
}

// WithRoughness sets the absolute wall roughness ks (m). Default 0.001.
func WithRoughness(ks float64) Option {
	return func(c *config) { c.roughness = ks }
}

// WithViscosity sets the fluid's kinematic viscosity (m²/s). Default NuWater.
// The default solver uses it for every Reynolds number it computes.
func WithViscosity(nu float64) Option {
	return func(c *config) { c.viscosity = nu }
}

// WithSolverOptions forwards options (logger, iteration limits, …) to the
// default hydraulics solver. Ignored when WithSolver is given.
func WithSolverOptions(opts ...hydraulics.Option) Option {
	return func(c *config) { c.solverOpts = append(c.solverOpts, opts...) }
}

// WithSolver replaces the default solver. The Pipe's viscosity then only
// affects Reynolds; the solver carries its own fluid model.
func WithSolver(s Solver) Option {
	return func(c *config) { c.solver = s }
}
