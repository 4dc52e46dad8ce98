package pipe

import "errors"

var (
	// ErrInvalidArgument indicates an unrecognized unknown-quantity tag
	// (valid names: discharge, diameter, energylosses) or an ambiguous
	// direct construction.
	ErrInvalidArgument = errors.New("pipe: invalid argument")

	// ErrInvalidQuantity indicates a physical input outside its domain.
	ErrInvalidQuantity = errors.New("pipe: invalid physical quantity")
)
