package dimension

import (
	"math"

	"github.com/larsvik/autodim/pkg/brep"
	"github.com/larsvik/autodim/pkg/geometry"
)

// CandidateEdge pairs a view-aligned edge with its endpoint nearest
// the view origin and that endpoint's reference handle.
type CandidateEdge struct {
	Point geometry.Vector3
	Ref   brep.Ref
	Edge  *brep.Edge
}

// EdgeSet is the classifier output: Aligned carries the point
// reference candidates, Lines the dimension-line candidates (at most
// one per input face).
type EdgeSet struct {
	Aligned []CandidateEdge
	Lines   []*brep.Edge
}

// ClassifyEdges partitions the straight boundary edges of the given
// faces by their angle to the view direction. Edges parallel to the
// view become aligned candidates recording the endpoint nearest the
// view origin. Edges perpendicular to the view lie in the image plane;
// when a face yields more than one, the edge whose first endpoint is
// nearest the view origin wins and the rest are dropped. Curved edges
// are ignored.
func ClassifyEdges(view View, faces ...*brep.Face) EdgeSet {
	var set EdgeSet
	for _, f := range faces {
		if f == nil {
			continue
		}
		var inPlane []*brep.Edge
		for _, e := range f.Edges() {
			if e.Kind != brep.EdgeLine {
				continue
			}
			dp := e.Direction().Dot(view.Direction)
			switch {
			case math.Abs(dp) > parallelTol:
				near := 0
				if e.P[1].Distance(view.Origin) < e.P[0].Distance(view.Origin) {
					near = 1
				}
				set.Aligned = append(set.Aligned, CandidateEdge{
					Point: e.P[near],
					Ref:   e.Refs[near],
					Edge:  e,
				})
			case math.Abs(dp) < perpendicularTol:
				inPlane = append(inPlane, e)
			}
		}
		if len(inPlane) == 0 {
			continue
		}
		nearest := inPlane[0]
		for _, e := range inPlane[1:] {
			if e.P[0].Distance(view.Origin) < nearest.P[0].Distance(view.Origin) {
				nearest = e
			}
		}
		set.Lines = append(set.Lines, nearest)
	}
	return set
}
