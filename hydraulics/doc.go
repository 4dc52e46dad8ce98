// Package hydraulics computes steady-state hydraulic properties of pressurized
// circular pipes using the Darcy–Weisbach head-loss relation combined with the
// Colebrook–White friction-factor correlation.
//
// 🚀 What is inside?
//
//	Closed-form relations:
//	  • HeadLossSlope / HeadLossSlopeCircular — Darcy–Weisbach energy-line slope
//	  • Velocity, ReynoldsNumber, WaterReynoldsNumber
//	  • LocalHeadLoss, DeviationCoefficient, ConvergentCoefficient — fitting losses
//
//	Iterative solvers (fixed-point inversion of the implicit system):
//	  • FrictionFactor / SolveFrictionFactor — Colebrook–White for f
//	  • Diameter / SolveDiameter             — D from (L, ks, hf, Q)
//	  • Discharge                            — Q from (L, ks, hf, D), single-shot
//	  • HeadLoss                             — hf from (L, ks, Q, D)
//
// ✨ Solver contract:
//
//   - Iteration starts from f₀ = 0.02.
//   - A solve stops once at least 5 rounds ran AND |Δf| ≤ 1e-6,
//     or once 100 rounds ran (hard cap).
//   - The float-returning API never fails: on the cap it returns the last
//     estimate. Use the Solve* variants to observe Iterations/Converged, or
//     attach a *zap.Logger via WithLogger to get a warning.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pipeflow/hydraulics"
//
//	hf := hydraulics.HeadLoss(1000, 0.001, 0.1, 0.3)  // m
//	q := hydraulics.Discharge(1000, 0.001, hf, 0.3)   // ≈ 0.1 m³/s
//	d := hydraulics.Diameter(1000, 0.001, hf, 0.1)    // ≈ 0.3 m
//
// Inputs are SI units and must be strictly positive. No validation happens
// here: zero or negative values propagate as NaN/±Inf through the formulas.
// All functions are pure and safe for concurrent use.
package hydraulics
