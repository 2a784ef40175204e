package geometry

import (
	"math"
	"testing"
)

func circlePoints(center Vector3, normal Vector3, radius float64, n int) []Vector3 {
	u, v := planeBasis(normal)
	points := make([]Vector3, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		offset := u.Mul(radius * math.Cos(angle)).Add(v.Mul(radius * math.Sin(angle)))
		points[i] = center.Add(offset)
	}
	return points
}

func TestFitCircleRecoversLoop(t *testing.T) {
	center := NewVector3(5, 2.15, 0.5)
	normal := NewVector3(0, 0, 1)
	points := circlePoints(center, normal, 0.05, 16)

	fit, err := FitCircle(points, normal)
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}
	if fit.Center.Distance(center) > 1e-9 {
		t.Errorf("Expected center %v, got %v", center, fit.Center)
	}
	if math.Abs(fit.Radius-0.05) > 1e-9 {
		t.Errorf("Expected radius 0.05, got %f", fit.Radius)
	}
	if fit.StdDev > 1e-9 {
		t.Errorf("Expected near-zero deviation for exact points, got %f", fit.StdDev)
	}
}

func TestFitCircleTiltedPlane(t *testing.T) {
	center := NewVector3(1, 2, 3)
	normal := NewVector3(0, 1, 1)
	points := circlePoints(center, normal, 2, 12)

	fit, err := FitCircle(points, normal)
	if err != nil {
		t.Fatalf("FitCircle failed: %v", err)
	}
	if fit.Center.Distance(center) > 1e-9 {
		t.Errorf("Expected center %v, got %v", center, fit.Center)
	}
	if math.Abs(fit.Radius-2) > 1e-9 {
		t.Errorf("Expected radius 2, got %f", fit.Radius)
	}
}

func TestFitCircleRejectsBadInput(t *testing.T) {
	normal := NewVector3(0, 0, 1)

	_, err := FitCircle([]Vector3{NewVector3(0, 0, 0), NewVector3(1, 0, 0)}, normal)
	if err == nil {
		t.Error("Expected error for fewer than 3 points")
	}

	collinear := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(2, 0, 0),
	}
	_, err = FitCircle(collinear, normal)
	if err == nil {
		t.Error("Expected error for collinear points")
	}

	_, err = FitCircle(collinear, NewVector3(0, 0, 0))
	if err == nil {
		t.Error("Expected error for zero normal")
	}
}
