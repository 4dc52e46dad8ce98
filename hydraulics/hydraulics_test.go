package hydraulics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pipeflow/hydraulics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/floats/scalar"
)

// reference pipe: 1 km of 300 mm pipe, ks = 1 mm, carrying 100 l/s.
const (
	refLength    = 1000.0
	refRoughness = 0.001
	refDiameter  = 0.3
	refDischarge = 0.1
)

// TestHeadLoss_ReferenceScenario checks the head loss is a few metres and that
// Discharge recovers the original flow within 1%.
func TestHeadLoss_ReferenceScenario(t *testing.T) {
	hf := hydraulics.HeadLoss(refLength, refRoughness, refDischarge, refDiameter)
	assert.Greater(t, hf, 1.0, "head loss should be a few metres")
	assert.Less(t, hf, 20.0, "head loss should be a few metres")

	q := hydraulics.Discharge(refLength, refRoughness, hf, refDiameter)
	assert.InEpsilon(t, refDischarge, q, 0.01, "discharge round-trip within 1%")
}

// TestRoundTrip_DischargeHeadLoss verifies Discharge(HeadLoss(Q)) ≈ Q over a grid.
func TestRoundTrip_DischargeHeadLoss(t *testing.T) {
	for _, l := range []float64{50, 1000, 8000} {
		for _, ks := range []float64{1e-5, 1e-4, 1e-3} {
			for _, d := range []float64{0.05, 0.3, 1.2} {
				for _, q := range []float64{0.002, 0.1, 1.5} {
					hf := hydraulics.HeadLoss(l, ks, q, d)
					got := hydraulics.Discharge(l, ks, hf, d)
					assert.InEpsilon(t, q, got, 1e-4,
						"L=%v ks=%v D=%v Q=%v", l, ks, d, q)
				}
			}
		}
	}
}

// TestRoundTrip_DiameterHeadLoss verifies HeadLoss(Diameter(hf)) ≈ hf over a grid.
func TestRoundTrip_DiameterHeadLoss(t *testing.T) {
	for _, l := range []float64{100, 1000, 5000} {
		for _, ks := range []float64{1e-5, 1e-4, 1e-3} {
			for _, hf := range []float64{0.5, 5, 40} {
				for _, q := range []float64{0.01, 0.1, 1} {
					d := hydraulics.Diameter(l, ks, hf, q)
					require.True(t, d > 0 && !math.IsInf(d, 0), "diameter must be positive and finite")
					got := hydraulics.HeadLoss(l, ks, q, d)
					assert.InEpsilon(t, hf, got, 1e-3,
						"L=%v ks=%v hf=%v Q=%v", l, ks, hf, q)
				}
			}
		}
	}
}

// TestDiameter_ReferenceScenario feeds the reference head loss back and
// expects the reference diameter.
func TestDiameter_ReferenceScenario(t *testing.T) {
	hf := hydraulics.HeadLoss(refLength, refRoughness, refDischarge, refDiameter)
	d := hydraulics.Diameter(refLength, refRoughness, hf, refDischarge)
	assert.InEpsilon(t, refDiameter, d, 1e-4)
}

// TestFrictionFactor_MonotoneInReynolds: f must not increase with Re.
func TestFrictionFactor_MonotoneInReynolds(t *testing.T) {
	prev := math.Inf(1)
	for re := 4e3; re <= 1e7; re *= 2 {
		f := hydraulics.FrictionFactor(re, refDiameter, refRoughness)
		assert.LessOrEqual(t, f, prev+1e-9, "f increased at Re=%v", re)
		prev = f
	}
}

// TestFrictionFactor_MonotoneInRoughness: f must not decrease with ks.
func TestFrictionFactor_MonotoneInRoughness(t *testing.T) {
	prev := 0.0
	for _, ks := range []float64{0, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2} {
		f := hydraulics.FrictionFactor(1e5, refDiameter, ks)
		assert.GreaterOrEqual(t, f, prev-1e-9, "f decreased at ks=%v", ks)
		prev = f
	}
}

// TestFrictionFactor_SatisfiesColebrook plugs the solution back into the equation.
func TestFrictionFactor_SatisfiesColebrook(t *testing.T) {
	re, d, ks := 2.5e5, 0.2, 2e-4
	res := hydraulics.SolveFrictionFactor(re, d, ks)
	require.True(t, res.Converged)
	assert.Equal(t, res.Value, res.Friction)

	lhs := 1 / math.Sqrt(res.Value)
	rhs := -2 * math.Log10(ks/(3.71*d)+2.51/(re*math.Sqrt(res.Value)))
	assert.True(t, scalar.EqualWithinRel(lhs, rhs, 1e-5), "lhs=%v rhs=%v", lhs, rhs)
}

// TestSolve_MinimumRounds: even an exact seed runs the minimum number of rounds.
func TestSolve_MinimumRounds(t *testing.T) {
	res := hydraulics.SolveFrictionFactor(1e5, refDiameter, refRoughness)
	assert.GreaterOrEqual(t, res.Iterations, hydraulics.DefaultMinIterations)
	assert.True(t, res.Converged)

	res = hydraulics.SolveFrictionFactor(1e5, refDiameter, refRoughness,
		hydraulics.WithInitialFriction(res.Value))
	assert.Equal(t, hydraulics.DefaultMinIterations, res.Iterations)
}

// TestSolve_IterationCap: non-convergent inputs stop at the cap, silently.
func TestSolve_IterationCap(t *testing.T) {
	rounds := 0
	count := hydraulics.WithObserver(func(round int, f float64) { rounds = round })

	res := hydraulics.SolveFrictionFactor(math.NaN(), refDiameter, refRoughness, count)
	assert.False(t, res.Converged)
	assert.Equal(t, hydraulics.DefaultMaxIterations, res.Iterations)
	assert.Equal(t, hydraulics.DefaultMaxIterations, rounds)

	rounds = 0
	dres := hydraulics.SolveDiameter(refLength, refRoughness, math.NaN(), refDischarge, count)
	assert.False(t, dres.Converged)
	assert.Equal(t, hydraulics.DefaultMaxIterations, dres.Iterations)
	assert.Equal(t, hydraulics.DefaultMaxIterations, rounds)

	// the float API returns the last estimate instead of failing
	assert.NotPanics(t, func() { _ = hydraulics.FrictionFactor(math.NaN(), 1, 1) })
}

// TestSolve_CustomCap: a lower cap clamps the minimum as well.
func TestSolve_CustomCap(t *testing.T) {
	res := hydraulics.SolveFrictionFactor(1e5, refDiameter, refRoughness, hydraulics.WithMaxIterations(3))
	assert.Equal(t, 3, res.Iterations)

	res = hydraulics.SolveDiameter(refLength, refRoughness, 5, refDischarge,
		hydraulics.WithMinIterations(1), hydraulics.WithMaxIterations(2))
	assert.LessOrEqual(t, res.Iterations, 2)
}

// TestSolve_LogsCapWarning checks the Warn entry emitted on non-convergence.
func TestSolve_LogsCapWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	_ = hydraulics.FrictionFactor(1e5, refDiameter, refRoughness, hydraulics.WithLogger(logger))
	assert.Equal(t, 0, logs.FilterLevelExact(zapcore.WarnLevel).Len(), "converged solve must not warn")
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.DebugLevel).Len())

	_ = hydraulics.Diameter(refLength, refRoughness, math.NaN(), refDischarge, hydraulics.WithLogger(logger))
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, "diameter", warns[0].ContextMap()["solver"])
	assert.EqualValues(t, hydraulics.DefaultMaxIterations, warns[0].ContextMap()["iterations"])
}

// TestViscosity_ChangesSolution: a more viscous fluid loses more head.
func TestViscosity_ChangesSolution(t *testing.T) {
	water := hydraulics.HeadLoss(refLength, refRoughness, refDischarge, refDiameter)
	oil := hydraulics.HeadLoss(refLength, refRoughness, refDischarge, refDiameter,
		hydraulics.WithViscosity(1e-4))
	assert.Greater(t, oil, water)

	q := hydraulics.Discharge(refLength, refRoughness, oil, refDiameter, hydraulics.WithViscosity(1e-4))
	assert.InEpsilon(t, refDischarge, q, 1e-4)
}

// TestSolver_MatchesPackageFunctions: a Solver with default options is the
// package-level API.
func TestSolver_MatchesPackageFunctions(t *testing.T) {
	s := hydraulics.NewSolver()
	assert.Equal(t, hydraulics.NuWater, s.Viscosity())

	hf := hydraulics.HeadLoss(refLength, refRoughness, refDischarge, refDiameter)
	assert.Equal(t, hf, s.HeadLoss(refLength, refRoughness, refDischarge, refDiameter))
	assert.Equal(t,
		hydraulics.Discharge(refLength, refRoughness, hf, refDiameter),
		s.Discharge(refLength, refRoughness, hf, refDiameter))
	assert.Equal(t,
		hydraulics.Diameter(refLength, refRoughness, hf, refDischarge),
		s.Diameter(refLength, refRoughness, hf, refDischarge))
	assert.Equal(t,
		hydraulics.SolveDiameter(refLength, refRoughness, hf, refDischarge),
		s.SolveDiameter(refLength, refRoughness, hf, refDischarge))
	assert.Equal(t,
		hydraulics.FrictionFactor(1e5, refDiameter, refRoughness),
		s.FrictionFactor(1e5, refDiameter, refRoughness))
}

func TestHeadLossSlope(t *testing.T) {
	// f·V²/(8·g·R) with f=0.02, V=2, R=0.1
	assert.InDelta(t, 0.02*4/(8*hydraulics.G*0.1), hydraulics.HeadLossSlope(2, 0.1, 0.02), 1e-15)

	v := hydraulics.Velocity(refDischarge, refDiameter)
	f := hydraulics.FrictionFactor(hydraulics.WaterReynoldsNumber(v, refDiameter), refDiameter, refRoughness)
	assert.InDelta(t,
		hydraulics.HeadLossSlope(v, refDiameter/4, f),
		hydraulics.HeadLossSlopeCircular(v, refDiameter, refRoughness), 1e-15)
}

func TestKinematics(t *testing.T) {
	v := hydraulics.Velocity(refDischarge, refDiameter)
	assert.InDelta(t, refDischarge, v*math.Pi*refDiameter*refDiameter/4, 1e-15, "V·A must equal Q")

	assert.InDelta(t, 2*0.5/1e-6, hydraulics.ReynoldsNumber(2, 0.5, 1e-6), 1e-6)
	assert.Equal(t, hydraulics.ReynoldsNumber(2, 0.5, hydraulics.NuWater), hydraulics.WaterReynoldsNumber(2, 0.5))
}

func TestLocalLosses(t *testing.T) {
	assert.InDelta(t, 0.5*4/(2*hydraulics.G), hydraulics.LocalHeadLoss(1, 2, 0.5, hydraulics.G), 1e-15)
	assert.Equal(t, hydraulics.LocalHeadLoss(2, 1, 0.5, hydraulics.G), hydraulics.LocalHeadLoss(1, 2, 0.5, hydraulics.G))

	assert.Equal(t, 0.25, hydraulics.DeviationCoefficient(0.5, 1.0))
	assert.Equal(t, 0.25, hydraulics.DeviationCoefficient(1.0, 0.5), "order of diameters is irrelevant")
	assert.Equal(t, 0.0, hydraulics.DeviationCoefficient(0.4, 0.4))

	assert.InDelta(t, 0.315, hydraulics.ConvergentCoefficient(0.5, 1.0), 1e-12)
	assert.InDelta(t, 0.04, hydraulics.ConvergentCoefficient(0.8, 1.0), 1e-12, "ratio >= 0.76 uses the deviation form")
	assert.InDelta(t, hydraulics.DeviationCoefficient(0.76, 1), hydraulics.ConvergentCoefficient(0.76, 1), 1e-15)
}

// TestInvalidInputs documents the permissive policy: nothing is validated and
// degenerate inputs propagate as NaN/Inf.
func TestInvalidInputs(t *testing.T) {
	assert.True(t, math.IsInf(hydraulics.Velocity(refDischarge, 0), 1))
	assert.True(t, math.IsNaN(hydraulics.HeadLoss(refLength, refRoughness, refDischarge, 0)))
	assert.True(t, math.IsNaN(hydraulics.Discharge(refLength, refRoughness, 0, refDiameter)))
	assert.True(t, math.IsNaN(hydraulics.Discharge(refLength, refRoughness, -1, refDiameter)))
}

func TestOptions_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "hydraulics: WithTolerance: tol must be finite and > 0",
		func() { hydraulics.WithTolerance(0) })
	assert.Panics(t, func() { hydraulics.WithTolerance(math.NaN()) })
	assert.Panics(t, func() { hydraulics.WithInitialFriction(-0.02) })
	assert.Panics(t, func() { hydraulics.WithMinIterations(0) })
	assert.Panics(t, func() { hydraulics.WithMaxIterations(0) })
	assert.Panics(t, func() { hydraulics.WithViscosity(math.Inf(1)) })
	assert.Panics(t, func() { hydraulics.WithGravity(0) })
	assert.NotPanics(t, func() { hydraulics.WithLogger(nil) })
}
