package geometry

import (
	"fmt"
	"math"
)

// CircleFit is the result of fitting a circle to coplanar points.
type CircleFit struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	StdDev float64 // Standard deviation of fit (quality measure)
}

// planeBasis returns two orthonormal vectors spanning the plane with
// the given normal.
func planeBasis(normal Vector3) (Vector3, Vector3) {
	n := normal.Normalize()
	ref := NewVector3(0, 0, 1)
	if math.Abs(n.Dot(ref)) > 0.9 {
		ref = NewVector3(1, 0, 0)
	}
	u := ref.Cross(n).Normalize()
	v := n.Cross(u)
	return u, v
}

// FitCircle fits a circle to points lying in the plane with the given
// normal, e.g. the vertices of a polygonal opening loop.
//
// Uses the 3-point determinant formula for calculating a circle through 3 points:
//   D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//   cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//   cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
// StdDev measures how far the remaining points stray from that circle.
func FitCircle(points []Vector3, normal Vector3) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}
	if normal.Length() == 0 {
		return nil, fmt.Errorf("plane normal must be non-zero")
	}

	// Project into plane coordinates around the first point.
	u, v := planeBasis(normal)
	origin := points[0]
	points2D := make([][2]float64, len(points))
	for i, p := range points {
		d := p.Sub(origin)
		points2D[i] = [2]float64{d.Dot(u), d.Dot(v)}
	}

	// First, middle and last point give good coverage of the loop.
	p1 := points2D[0]
	p2 := points2D[len(points2D)/2]
	p3 := points2D[len(points2D)-1]

	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := p3[0], p3[1]

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) < 1e-10 {
		return nil, fmt.Errorf("points are collinear")
	}

	x1sq := x1*x1 + y1*y1
	x2sq := x2*x2 + y2*y2
	x3sq := x3*x3 + y3*y3

	cx := (x1sq*(y2-y3) + x2sq*(y3-y1) + x3sq*(y1-y2)) / D
	cy := (x1sq*(x3-x2) + x2sq*(x1-x3) + x3sq*(x2-x1)) / D

	dx := x1 - cx
	dy := y1 - cy
	radius := math.Sqrt(dx*dx + dy*dy)

	n := float64(len(points2D))
	var sumError float64
	for _, p := range points2D {
		dx := p[0] - cx
		dy := p[1] - cy
		dist := math.Sqrt(dx*dx + dy*dy)
		sumError += (dist - radius) * (dist - radius)
	}

	return &CircleFit{
		Center: origin.Add(u.Mul(cx)).Add(v.Mul(cy)),
		Radius: radius,
		StdDev: math.Sqrt(sumError / n),
	}, nil
}
