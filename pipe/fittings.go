package pipe

import "github.com/katalvlaran/pipeflow/hydraulics"

// LocalLossTo returns the local head loss K·V²/(2g) of a fitting with
// coefficient k joining p to next, V being the larger of the two velocities.
// Both pipes are resolved if needed.
func (p *Pipe) LocalLossTo(next *Pipe, k float64) float64 {
	return hydraulics.LocalHeadLoss(p.Velocity(), next.Velocity(), k, hydraulics.G)
}

// TransitionCoefficient returns the loss coefficient of a sudden change of
// section from p into next: ConvergentCoefficient for a contraction,
// DeviationCoefficient for an expansion.
func (p *Pipe) TransitionCoefficient(next *Pipe) float64 {
	d1, d2 := p.Diameter(), next.Diameter()
	if d2 < d1 {
		return hydraulics.ConvergentCoefficient(d1, d2)
	}

	return hydraulics.DeviationCoefficient(d1, d2)
}

// TransitionLoss returns the head loss (m) of the sudden change of section
// from p into next.
func (p *Pipe) TransitionLoss(next *Pipe) float64 {
	return p.LocalLossTo(next, p.TransitionCoefficient(next))
}
