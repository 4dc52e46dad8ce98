// SPDX-License-Identifier: MIT

package hydraulics

import "math"

// Discharge inverts the Darcy–Weisbach/Colebrook–White system for the
// discharge Q (m³/s) of a pipe with known diameter d and head loss hf.
//
// Implementation:
//   - Stage 1: estimate Re·√f from the energy balance:
//     Re* = √(2·g·hf/L) · D^1.5 / ν.
//   - Stage 2: plug Re* into the Colebrook–White right-hand side ONCE.
//     Re* already equals Re·√f, so no outer iteration over f is needed.
//   - Stage 3: V = √(2·g·hf·D / (L·f)), Q = V·π·D²/4.
//
// Complexity:
//   - Time O(1), Space O(1).
func Discharge(l, ks, hf, d float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return discharge(&o, l, ks, hf, d)
}

func discharge(o *Options, l, ks, hf, d float64) float64 {
	reSqrtF := math.Sqrt(2*o.gravity*hf/l) * math.Pow(d, 1.5) / o.viscosity
	f := colebrookRough(reSqrtF, d, ks)
	v := math.Sqrt(2 * o.gravity * hf * d / (l * f))

	return v * math.Pi * d * d / 4
}

// Diameter inverts the system for the diameter D (m) of a pipe carrying the
// known discharge q with the known head loss hf.
//
// Implementation:
//   - Stage 1: seed f with f₀ (0.02 by default).
//   - Stage 2: each round compute D = (8·f·L·Q² / (hf·π²·g))^0.2,
//     Re = 4Q/(ν·π·D), and the next f by a single Colebrook–White substitution.
//   - Stage 3: stop with the same rule as FrictionFactor; return D of the final round.
//
// Complexity:
//   - Time O(maxIter), Space O(1).
func Diameter(l, ks, hf, q float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return diameter(&o, l, ks, hf, q).Value
}

// SolveDiameter is Diameter reporting the final friction factor, the number
// of rounds and whether the tolerance was met.
func SolveDiameter(l, ks, hf, q float64, opts ...Option) Result {
	o := gatherOptions(opts)

	return diameter(&o, l, ks, hf, q)
}

func diameter(o *Options, l, ks, hf, q float64) Result {
	var d float64
	f, rounds, ok := iterate(o, "diameter", func(f float64) float64 {
		d = math.Pow(f*8*l*q*q/(hf*math.Pi*math.Pi*o.gravity), 0.2)
		re := 4 * q / (o.viscosity * math.Pi * d)

		return colebrook(re, d, ks, f)
	})

	return Result{Value: d, Friction: f, Iterations: rounds, Converged: ok}
}
