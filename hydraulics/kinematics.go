package hydraulics

import "math"

// Velocity returns the mean velocity V = 4Q/(πD²) (m/s) of discharge q
// through a full circular section of diameter d.
func Velocity(q, d float64) float64 {
	return 4 * q / (math.Pi * d * d)
}

// ReynoldsNumber returns V·L/ν for any fluid: v is the velocity (m/s), l the
// characteristic length (m, the diameter for pipes), nu the kinematic
// viscosity (m²/s).
func ReynoldsNumber(v, l, nu float64) float64 {
	return v * l / nu
}

// WaterReynoldsNumber is ReynoldsNumber with NuWater.
func WaterReynoldsNumber(v, l float64) float64 {
	return ReynoldsNumber(v, l, NuWater)
}
