package dimension

import (
	"math"

	"github.com/larsvik/autodim/pkg/brep"
)

const (
	// Reference points this close to a line endpoint would collapse
	// into the endpoint reference itself.
	minRefSpacing = 0.1
	// Tolerance for the closest-approach equality and the
	// perpendicular-offset exclusion below.
	colinearTol = 0.01
)

// AdditionalRefs returns the handles of aligned-edge points that
// qualify as extra references for the given dimension line, in
// discovery order: all candidates against the first line endpoint,
// then all against the second.
//
// A point qualifies against an endpoint when its closest approach to
// the line segment is at that endpoint (distance to segment equals
// distance to endpoint), it is not coincident with the endpoint, and
// it is not a pure perpendicular offset. That keeps exactly the points
// sitting beyond the segment, colinear-adjacent to the endpoint.
//
// A point may qualify against both endpoints; duplicates are kept, not
// merged.
func AdditionalRefs(line *brep.Edge, aligned []CandidateEdge) []brep.Ref {
	seg := line.Line()
	dir := seg.Direction()
	var refs []brep.Ref
	for _, end := range line.P {
		for _, c := range aligned {
			distToEnd := c.Point.Distance(end)
			if distToEnd <= minRefSpacing {
				continue
			}
			if math.Abs(seg.Distance(c.Point)-distToEnd) >= colinearTol {
				continue
			}
			toEnd := end.Sub(c.Point).Normalize()
			if math.Abs(dir.Dot(toEnd)) <= colinearTol {
				continue
			}
			refs = append(refs, c.Ref)
		}
	}
	return refs
}

// duplicateRef returns the first handle appearing twice in refs, or ""
// when all handles are distinct.
func duplicateRef(refs []brep.Ref) brep.Ref {
	seen := make(map[brep.Ref]bool, len(refs))
	for _, r := range refs {
		if seen[r] {
			return r
		}
		seen[r] = true
	}
	return ""
}
