// Package pipe models a single pressurized circular pipe segment whose
// defining quantities (discharge Q, diameter D, head loss hf) are related by
// the Darcy–Weisbach/Colebrook–White system in package hydraulics.
//
// A Pipe is built from two known quantities plus the pipe length; the third
// (the Unknown) is computed on first read and cached for the Pipe's lifetime:
//
//	p, err := pipe.NewFromTag("diameter", 0.1, 5, 1000) // Q=0.1 m³/s, hf=5 m, L=1 km
//	if err != nil { ... }
//	d := p.Diameter() // solved once
//	d = p.Diameter()  // cached
//
// State machine (per Pipe): Unresolved → Resolved on first read of the
// unknown quantity (directly, or through Velocity/Reynolds). There is no
// transition back. Resolution is guarded by sync.Once, so concurrent first
// reads run the solver exactly once and all observe the same value.
//
// Errors:
//
//	ErrInvalidArgument  - unrecognized unknown-quantity tag, or not exactly one
//	                      unknown in the direct form.
//	ErrInvalidQuantity  - a known value is negative, NaN or ±Inf, or the
//	                      length/viscosity is not strictly positive.
package pipe
