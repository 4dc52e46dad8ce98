// SPDX-License-Identifier: MIT

package hydraulics

// Physical constants (SI units).
const (
	// G is the gravitational acceleration, m/s².
	G = 9.81

	// MuWater is the dynamic viscosity of water, Pa·s.
	MuWater = 1e-3

	// NuWater is the kinematic viscosity of water, m²/s. It is the default
	// fluid for every Reynolds-number computation.
	NuWater = 1.1e-6

	// RhoWater is the density of water, kg/m³.
	RhoWater = 1000.0

	// DefaultRoughness is the absolute wall roughness ks used when none is given, m.
	DefaultRoughness = 0.001
)

// Solver defaults.
const (
	// DefaultInitialFriction seeds every fixed-point iteration.
	DefaultInitialFriction = 0.02

	// DefaultTolerance bounds |f_current − f_new| for convergence.
	DefaultTolerance = 1e-6

	// DefaultMinIterations is the number of rounds always performed.
	DefaultMinIterations = 5

	// DefaultMaxIterations caps every iteration regardless of convergence.
	DefaultMaxIterations = 100
)

// Coefficients of the Colebrook–White correlation and of the sudden
// contraction loss model.
const (
	colebrookRoughnessDivisor = 3.71
	colebrookReynoldsFactor   = 2.51

	convergentRatioLimit = 0.76
	convergentFactor     = 0.42
)
