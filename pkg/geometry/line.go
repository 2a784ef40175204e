package geometry

// Line is a straight segment between two points
type Line struct {
	Start, End Vector3
}

// NewLine creates a line from start to end
func NewLine(start, end Vector3) Line {
	return Line{Start: start, End: end}
}

// Direction returns the unit vector from start to end
func (l Line) Direction() Vector3 {
	return l.End.Sub(l.Start).Normalize()
}

// Length returns the segment length
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Midpoint returns the point halfway between start and end
func (l Line) Midpoint() Vector3 {
	return l.Start.Add(l.End).Mul(0.5)
}

// Distance returns the distance from p to the closest point on the
// segment. For points beyond either end the closest point is that
// endpoint, so the result equals the point-to-endpoint distance there.
func (l Line) Distance(p Vector3) float64 {
	d := l.End.Sub(l.Start)
	len2 := d.Dot(d)
	if len2 == 0 {
		return p.Distance(l.Start)
	}
	t := p.Sub(l.Start).Dot(d) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(l.Start.Add(d.Mul(t)))
}
