package hydraulics

// HeadLossSlope returns the Darcy–Weisbach energy-line slope (head loss per
// unit length) for an arbitrary cross-section:
//
//	S = f·V² / (8·g·R)
//
// v is the mean velocity (m/s), r the hydraulic radius (m), f the Darcy
// friction factor. g is the standard G.
func HeadLossSlope(v, r, f float64) float64 {
	return headLossSlope(v, r, f, G)
}

func headLossSlope(v, r, f, g float64) float64 {
	return (f * v * v) / (4 * r * 2 * g)
}

// HeadLossSlopeCircular specializes HeadLossSlope for a full circular pipe of
// diameter d and roughness ks: R = D/4 and f comes from FrictionFactor with
// Re = V·D/ν.
//
// Complexity: O(maxIter) (one Colebrook–White solve).
func HeadLossSlopeCircular(v, d, ks float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return headLossSlopeCircular(&o, v, d, ks)
}

func headLossSlopeCircular(o *Options, v, d, ks float64) float64 {
	f := frictionFactor(o, ReynoldsNumber(v, d, o.viscosity), d, ks).Value

	return headLossSlope(v, d/4, f, o.gravity)
}

// HeadLoss returns the friction head loss hf (m) over a pipe of length l and
// roughness ks carrying discharge q through diameter d:
//
//	V  = 4Q/(πD²)
//	hf = L · HeadLossSlopeCircular(V, D, ks)
func HeadLoss(l, ks, q, d float64, opts ...Option) float64 {
	o := gatherOptions(opts)

	return headLoss(&o, l, ks, q, d)
}

func headLoss(o *Options, l, ks, q, d float64) float64 {
	return l * headLossSlopeCircular(o, Velocity(q, d), d, ks)
}
