package brep

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/larsvik/autodim/pkg/geometry"
)

func newRef() Ref {
	return Ref(uuid.NewString())
}

// beamFrame completes the extrusion axis into a right-handed frame.
// The width direction is horizontal where possible (axis not vertical).
func beamFrame(axis geometry.Vector3) (u, v geometry.Vector3) {
	ref := geometry.NewVector3(0, 0, 1)
	if math.Abs(axis.Dot(ref)) > 0.9 {
		ref = geometry.NewVector3(1, 0, 0)
	}
	u = ref.Cross(axis).Normalize()
	v = axis.Cross(u)
	return u, v
}

// NewBeam builds a closed box solid for a beam extruded from origin
// along axis. The cross section is width by height in the two
// directions completing the axis to a right-handed frame. All six
// faces are planar with outward normals and counter-clockwise outer
// loops; the twelve edges are shared between adjacent faces and every
// edge endpoint carries a freshly minted reference handle.
func NewBeam(origin, axis geometry.Vector3, length, width, height float64) (*Solid, error) {
	if axis.Length() == 0 {
		return nil, fmt.Errorf("beam axis must be non-zero")
	}
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("beam extents must be positive, got %g x %g x %g", length, width, height)
	}
	dir := axis.Normalize()
	u, v := beamFrame(dir)
	ex := dir.Mul(length)
	ey := u.Mul(width)
	ez := v.Mul(height)

	// Corner index is i + 2j + 4k for the corner origin + i*ex + j*ey + k*ez.
	var corners [8]geometry.Vector3
	for k := 0; k < 2; k++ {
		for j := 0; j < 2; j++ {
			for i := 0; i < 2; i++ {
				p := origin.Add(ex.Mul(float64(i))).Add(ey.Mul(float64(j))).Add(ez.Mul(float64(k)))
				corners[i+2*j+4*k] = p
			}
		}
	}

	// Quads listed counter-clockwise as seen from outside the box.
	quads := [6][4]int{
		{0, 2, 3, 1}, // bottom
		{4, 5, 7, 6}, // top
		{0, 1, 5, 4}, // front
		{2, 6, 7, 3}, // back
		{0, 4, 6, 2}, // start cap
		{1, 3, 7, 5}, // end cap
	}

	edges := make(map[[2]int]*Edge)
	edgeBetween := func(a, b int) *Edge {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if e, ok := edges[key]; ok {
			return e
		}
		e := &Edge{
			Kind: EdgeLine,
			P:    [2]geometry.Vector3{corners[a], corners[b]},
			Refs: [2]Ref{newRef(), newRef()},
		}
		edges[key] = e
		return e
	}

	solid := &Solid{}
	var centroid geometry.Vector3
	for _, c := range corners {
		centroid = centroid.Add(c)
	}
	solid.Centroid = centroid.Mul(1.0 / 8.0)

	for _, q := range quads {
		a, b, c := corners[q[0]], corners[q[1]], corners[q[2]]
		face := &Face{
			Kind:   FacePlanar,
			Normal: b.Sub(a).Cross(c.Sub(a)).Normalize(),
			Origin: a,
		}
		loop := Loop{}
		for i := range q {
			e := edgeBetween(q[i], q[(i+1)%4])
			e.attach(face)
			loop.Edges = append(loop.Edges, e)
		}
		face.Loops = []Loop{loop}
		solid.Faces = append(solid.Faces, face)
	}
	return solid, nil
}

// AddOpening cuts a polygonal opening into a planar face by appending
// an inner loop wound opposite to the outer boundary. The opening is a
// regular polygon approximating a circle of the given radius around
// center, which must lie on the face plane. Only the loop is added;
// no barrel faces are modeled, which is all the opening detection
// needs.
func AddOpening(f *Face, center geometry.Vector3, radius float64, segments int) error {
	if f == nil || f.Kind != FacePlanar {
		return fmt.Errorf("opening requires a planar face")
	}
	if radius <= 0 {
		return fmt.Errorf("opening radius must be positive, got %g", radius)
	}
	if segments < 3 {
		return fmt.Errorf("opening needs at least 3 segments, got %d", segments)
	}
	if d := math.Abs(center.Sub(f.Origin).Dot(f.Normal)); d > 1e-6 {
		return fmt.Errorf("opening center is %g off the face plane", d)
	}

	u, v := beamFrame(f.Normal)
	pts := make([]geometry.Vector3, segments)
	for i := range pts {
		// Negative sweep winds the inner loop clockwise with respect
		// to the face normal, opposite the outer boundary.
		angle := -2 * math.Pi * float64(i) / float64(segments)
		offset := u.Mul(radius * math.Cos(angle)).Add(v.Mul(radius * math.Sin(angle)))
		pts[i] = center.Add(offset)
	}

	loop := Loop{}
	for i := range pts {
		e := &Edge{
			Kind: EdgeLine,
			P:    [2]geometry.Vector3{pts[i], pts[(i+1)%segments]},
			Refs: [2]Ref{newRef(), newRef()},
		}
		e.attach(f)
		loop.Edges = append(loop.Edges, e)
	}
	f.Loops = append(f.Loops, loop)
	return nil
}
