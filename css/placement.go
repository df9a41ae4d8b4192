package css

import (
	"strings"

	"github.com/npillmayer/poptip/dom/w3cdom"
)

// PlacementAttr is the attribute the positioning engine sets on a popper
// container, e.g. x-placement="top-start".
const PlacementAttr = "x-placement"

// Placement is the side of the reference a popper is rendered on.
// The empty placement is valid and means "unknown".
type Placement string

// Placements known to the arrow logic.
const (
	Top     Placement = "top"
	Bottom  Placement = "bottom"
	Left    Placement = "left"
	Right   Placement = "right"
	Unknown Placement = ""
)

// ParsePlacement strips an alignment suffix off a placement descriptor:
//
//     ParsePlacement("top-start") => Top
//
// Tokens other than top, bottom, left and right are returned as they are;
// their orientation is the fallback orientation (see Orientation).
func ParsePlacement(descriptor string) Placement {
	descriptor = strings.TrimSpace(descriptor)
	if i := strings.IndexByte(descriptor, '-'); i >= 0 {
		descriptor = descriptor[:i]
	}
	return Placement(descriptor)
}

// ReadPlacement returns the placement of a popper container, or Unknown
// if container is nil or carries no placement attribute.
func ReadPlacement(container w3cdom.Element) Placement {
	if container == nil {
		return Unknown
	}
	v, ok := container.GetAttribute(PlacementAttr)
	if !ok {
		return Unknown
	}
	return ParsePlacement(v)
}

// IsKnown is true for top, bottom, left and right.
func (p Placement) IsKnown() bool {
	switch p {
	case Top, Bottom, Left, Right:
		return true
	}
	return false
}

// Orientation describes how an arrow's coordinate system relates to its
// authored (pointing up) orientation.
type Orientation struct {
	Vertical bool // placement is top or bottom
	Reverse  bool // placement is right or bottom, the origin is mirrored
}

// Orientation derives the orientation of a placement.
//
// Unknown or unsupported placements yield a horizontal, non-reversed
// orientation. This is a fallback which keeps the arrow code total, not a
// guess at the correct orientation.
func (p Placement) Orientation() Orientation {
	if !p.IsKnown() && p != Unknown {
		tracer().Debugf("unsupported placement %q, falling back to horizontal", string(p))
	}
	return Orientation{
		Vertical: p == Top || p == Bottom,
		Reverse:  p == Right || p == Bottom,
	}
}
