// SPDX-License-Identifier: MIT

package hydraulics

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"
)

// Result describes the outcome of an instrumented iterative solve.
type Result struct {
	// Value is the solved quantity: the friction factor for
	// SolveFrictionFactor, the diameter (m) for SolveDiameter.
	Value float64

	// Friction is the Darcy friction factor of the final round.
	Friction float64

	// Iterations is the number of rounds performed, 1..maxIter.
	Iterations int

	// Converged is true when the tolerance was met before the cap.
	Converged bool
}

// FrictionFactor solves the implicit Colebrook–White equation
//
//	1/√f = −2·log10( ks/(3.71·D) + 2.51/(Re·√f) )
//
// for the Darcy friction factor f by fixed-point iteration.
//
// Implementation:
//   - Stage 1: seed f with f₀ (0.02 by default).
//   - Stage 2: substitute the current f into the right-hand side to get the next f.
//   - Stage 3: stop once ≥ minIter rounds ran AND |Δf| ≤ tol, or maxIter rounds ran.
//
// Behavior highlights:
//   - Never fails: on the cap the last estimate is returned silently
//     (see SolveFrictionFactor to observe it).
//
// Complexity:
//   - Time O(maxIter), Space O(1).
func FrictionFactor(re, d, ks float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return frictionFactor(&o, re, d, ks).Value
}

// SolveFrictionFactor is FrictionFactor reporting the number of rounds and
// whether the tolerance was met.
func SolveFrictionFactor(re, d, ks float64, opts ...Option) Result {
	o := gatherOptions(opts)

	return frictionFactor(&o, re, d, ks)
}

func frictionFactor(o *Options, re, d, ks float64) Result {
	f, rounds, ok := iterate(o, "friction_factor", func(f float64) float64 {
		return colebrook(re, d, ks, f)
	})

	return Result{Value: f, Friction: f, Iterations: rounds, Converged: ok}
}

// colebrook evaluates the Colebrook–White right-hand side once for the guess f.
func colebrook(re, d, ks, f float64) float64 {
	return colebrookRough(re*math.Sqrt(f), d, ks)
}

// colebrookRough evaluates the Colebrook–White right-hand side for a known
// product Re·√f, which needs no iteration.
func colebrookRough(reSqrtF, d, ks float64) float64 {
	x := -2 * math.Log10(ks/d/colebrookRoughnessDivisor+colebrookReynoldsFactor/reSqrtF)

	return 1 / (x * x)
}

// iterate runs the shared do-while fixed-point loop over the friction factor.
// step maps the current friction factor to the next one.
func iterate(o *Options, solver string, step func(f float64) float64) (f float64, rounds int, converged bool) {
	var current float64
	f = o.initialF
	for {
		current = f
		f = step(current)
		rounds++
		if o.observer != nil {
			o.observer(rounds, f)
		}
		if rounds >= o.minIter && scalar.EqualWithinAbs(current, f, o.tol) {
			converged = true

			break
		}
		if rounds >= o.maxIter {
			break
		}
	}

	if !converged {
		o.logger.Warn("hydraulics: iteration cap reached before convergence",
			zap.String("solver", solver),
			zap.Int("iterations", rounds),
			zap.Float64("friction", f),
			zap.Float64("delta", math.Abs(current-f)),
		)
	} else {
		o.logger.Debug("hydraulics: converged",
			zap.String("solver", solver),
			zap.Int("iterations", rounds),
			zap.Float64("friction", f),
		)
	}

	return f, rounds, converged
}
