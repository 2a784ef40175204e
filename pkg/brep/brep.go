// Package brep holds the boundary-representation snapshot the
// dimensioning pipeline reads: solids bounded by faces, faces bounded
// by loops of edges, and the opaque reference handles carried by edge
// endpoints. Everything here is plain read-only data; the pipeline
// never mutates a solid once built.
package brep

import "github.com/larsvik/autodim/pkg/geometry"

// Ref is an opaque reference handle for one edge endpoint. It is
// minted by whoever builds the solid and consumed only by the
// annotation backend; the pipeline just threads it through.
type Ref string

// EdgeKind distinguishes straight edges from everything else.
type EdgeKind int

const (
	EdgeLine EdgeKind = iota
	EdgeCurve
)

// Edge is a boundary segment between two faces. P holds the endpoint
// positions, Refs the matching endpoint handles (same index order).
type Edge struct {
	Kind  EdgeKind
	P     [2]geometry.Vector3
	Refs  [2]Ref
	Faces [2]*Face
}

// Direction returns the unit vector from P[0] to P[1].
func (e *Edge) Direction() geometry.Vector3 {
	return e.P[1].Sub(e.P[0]).Normalize()
}

// Line returns the edge as a line segment.
func (e *Edge) Line() geometry.Line {
	return geometry.NewLine(e.P[0], e.P[1])
}

// Length returns the edge length.
func (e *Edge) Length() float64 {
	return e.P[0].Distance(e.P[1])
}

// attach records f as an adjacent face in the first free slot.
func (e *Edge) attach(f *Face) {
	if e.Faces[0] == nil {
		e.Faces[0] = f
		return
	}
	e.Faces[1] = f
}

// Loop is an ordered cyclic sequence of edges bounding a face region.
// Consecutive edges share an endpoint; the stored endpoint order of an
// individual edge is independent of the loop direction.
type Loop struct {
	Edges []*Edge
}

const coincidentTol = 1e-9

func samePoint(a, b geometry.Vector3) bool {
	return a.Distance(b) < coincidentTol
}

// Vertices walks the loop tip-to-tail and returns one vertex per edge,
// starting at the first edge and oriented so the walk chains into the
// second edge.
func (l Loop) Vertices() []geometry.Vector3 {
	if len(l.Edges) == 0 {
		return nil
	}
	first := l.Edges[0]
	start, next := first.P[0], first.P[1]
	if len(l.Edges) > 1 {
		e := l.Edges[1]
		if !samePoint(next, e.P[0]) && !samePoint(next, e.P[1]) {
			start, next = next, start
		}
	}
	verts := make([]geometry.Vector3, 0, len(l.Edges))
	verts = append(verts, start)
	for _, e := range l.Edges[1:] {
		verts = append(verts, next)
		if samePoint(e.P[0], next) {
			next = e.P[1]
		} else {
			next = e.P[0]
		}
	}
	return verts
}

// CounterClockwise reports whether the loop winds counter-clockwise
// when viewed from the tip of normal. The test projects the polygon
// area vector (sum of successive cross products) onto the normal.
func (l Loop) CounterClockwise(normal geometry.Vector3) bool {
	verts := l.Vertices()
	var area geometry.Vector3
	for i, v := range verts {
		area = area.Add(v.Cross(verts[(i+1)%len(verts)]))
	}
	return area.Dot(normal) > 0
}

// FaceKind distinguishes planar faces from everything else. The
// pipeline only reasons about planar faces; other kinds are skipped at
// the point of detection.
type FaceKind int

const (
	FacePlanar FaceKind = iota
	FaceOther
)

// Face is one bounded region of a solid's surface. For planar faces
// Normal is unit length and Origin lies on the face plane. Loops holds
// the outer boundary first, then any inner (opening) boundaries.
type Face struct {
	Kind   FaceKind
	Normal geometry.Vector3
	Origin geometry.Vector3
	Loops  []Loop
}

// Edges returns every boundary edge of the face across all loops.
func (f *Face) Edges() []*Edge {
	var edges []*Edge
	for _, loop := range f.Loops {
		edges = append(edges, loop.Edges...)
	}
	return edges
}

// Solid is a closed volume bounded by faces.
type Solid struct {
	Faces    []*Face
	Centroid geometry.Vector3
}

// FaceWithNormal returns the first face whose outward normal points in
// the same direction as n, or nil if there is none.
func (s *Solid) FaceWithNormal(n geometry.Vector3) *Face {
	unit := n.Normalize()
	for _, f := range s.Faces {
		if f.Normal.Dot(unit) > 0.99 {
			return f
		}
	}
	return nil
}
