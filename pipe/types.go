package pipe

import (
	"fmt"
	"strings"
)

// Unknown names the single quantity of a Pipe computed on demand.
type Unknown int

const (
	// Discharge: solve Q from (D, hf).
	Discharge Unknown = iota

	// Diameter: solve D from (Q, hf).
	Diameter

	// HeadLoss: solve hf from (Q, D).
	HeadLoss
)

// Unresolved marks the quantity to compute in the direct New form. Any
// negative value works; Unresolved is the conventional one.
const Unresolved = -1.0

// Tag names accepted by ParseUnknown (case-insensitive).
const (
	TagDischarge    = "discharge"
	TagDiameter     = "diameter"
	TagEnergyLosses = "energylosses"
)

// String returns the tag of u.
func (u Unknown) String() string {
	switch u {
	case Discharge:
		return TagDischarge
	case Diameter:
		return TagDiameter
	case HeadLoss:
		return TagEnergyLosses
	default:
		return fmt.Sprintf("Unknown(%d)", int(u))
	}
}

// valid reports whether u is one of the three declared variants.
func (u Unknown) valid() bool {
	return u >= Discharge && u <= HeadLoss
}

// ParseUnknown maps a case-insensitive tag to its Unknown variant.
// Surrounding whitespace is ignored.
func ParseUnknown(tag string) (Unknown, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case TagDischarge:
		return Discharge, nil
	case TagDiameter:
		return Diameter, nil
	case TagEnergyLosses:
		return HeadLoss, nil
	}

	return 0, fmt.Errorf("ParseUnknown(%q): %w: try %s, %s or %s",
		tag, ErrInvalidArgument, TagDischarge, TagDiameter, TagEnergyLosses)
}
