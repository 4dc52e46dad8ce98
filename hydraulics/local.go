package hydraulics

import "math"

// LocalHeadLoss returns the local (fitting) head loss K·V²/(2g), where V is
// the larger of the two adjoining velocities v1 and v2.
func LocalHeadLoss(v1, v2, k, g float64) float64 {
	v := math.Max(v1, v2)

	return k * v * v / (2 * g)
}

// DeviationCoefficient returns the loss coefficient (1 − d_min/d_max)² of a
// sudden expansion or contraction between diameters d1 and d2.
func DeviationCoefficient(d1, d2 float64) float64 {
	r := 1 - math.Min(d1, d2)/math.Max(d1, d2)

	return r * r
}

// ConvergentCoefficient returns the loss coefficient of a sudden contraction.
// Below a diameter ratio of 0.76 it is 0.42·(1 − ratio²); otherwise it falls
// back to DeviationCoefficient.
func ConvergentCoefficient(d1, d2 float64) float64 {
	ratio := math.Min(d1, d2) / math.Max(d1, d2)
	if ratio < convergentRatioLimit {
		return convergentFactor * (1 - ratio*ratio)
	}

	return DeviationCoefficient(d1, d2)
}
