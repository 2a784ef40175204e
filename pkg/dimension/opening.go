package dimension

import "github.com/larsvik/autodim/pkg/brep"

// Openness classifies whether a face boundary contains an opening.
type Openness int

const (
	// Undetermined means the check does not apply (non-planar face or
	// a face without boundary loops). It must not be read as either
	// Closed or Hollow.
	Undetermined Openness = iota
	Closed
	Hollow
)

func (o Openness) String() string {
	switch o {
	case Closed:
		return "closed"
	case Hollow:
		return "hollow"
	default:
		return "undetermined"
	}
}

// FaceOpenness reports whether a planar face has an opening cut into
// it. A face whose boundary loops wind in both senses relative to the
// face normal has at least one outer and one inner boundary, so it is
// hollow. Faces with uniformly wound loops are closed.
func FaceOpenness(f *brep.Face) Openness {
	if f == nil || f.Kind != brep.FacePlanar || len(f.Loops) == 0 {
		return Undetermined
	}
	var ccw, cw bool
	for _, loop := range f.Loops {
		if loop.CounterClockwise(f.Normal) {
			ccw = true
		} else {
			cw = true
		}
	}
	if ccw && cw {
		return Hollow
	}
	return Closed
}
