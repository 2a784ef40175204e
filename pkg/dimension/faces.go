package dimension

import (
	"math"

	"github.com/larsvik/autodim/pkg/brep"
)

// Tolerances shared by the whole pipeline. A dot product of two unit
// vectors below perpendicularTol means "perpendicular", above
// parallelTol means "parallel or anti-parallel".
const (
	perpendicularTol = 0.01
	parallelTol      = 0.99
)

// SideFaces returns the planar faces of a solid that lie edge-on to
// the view and point away from the solid's interior, with hollow faces
// filtered out. An empty result is a normal outcome meaning the solid
// has no dimensionable side face for this view.
func SideFaces(s *brep.Solid, view View) []*brep.Face {
	var faces []*brep.Face
	for _, f := range s.Faces {
		if f.Kind != brep.FacePlanar {
			continue
		}
		if math.Abs(view.Direction.Dot(f.Normal)) >= perpendicularTol {
			continue
		}
		// A vector toward the centroid opposes an outward normal.
		toCenter := s.Centroid.Sub(f.Origin).Normalize()
		if toCenter.Dot(f.Normal) >= 0 {
			continue
		}
		if FaceOpenness(f) == Hollow {
			continue
		}
		faces = append(faces, f)
	}
	return faces
}

// OppositeFaces returns the first pair of faces whose normals are
// collinear, scanning unordered pairs in input order. Artifact faces
// that pair with nothing are discarded by never being returned.
func OppositeFaces(faces []*brep.Face) (a, b *brep.Face, ok bool) {
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			if math.Abs(faces[i].Normal.Dot(faces[j].Normal)) > parallelTol {
				return faces[i], faces[j], true
			}
		}
	}
	return nil, nil, false
}

// oppositePairCount counts every collinear-normal pair. More than one
// signals ambiguous input; the resolver still returns the first pair.
func oppositePairCount(faces []*brep.Face) int {
	count := 0
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			if math.Abs(faces[i].Normal.Dot(faces[j].Normal)) > parallelTol {
				count++
			}
		}
	}
	return count
}
