package collide

import (
	"fmt"
	"math"
)

// Line represents a line segment from Start to End. Start and End may coincide;
// every method handles zero-length lines explicitly.
type Line struct {
	Start Vec2
	End   Vec2
}

// Ln returns the line from (x0, y0) to (x1, y1).
func Ln(x0, y0, x1, y1 float64) Line {
	return Line{Vec(x0, y0), Vec(x1, y1)}
}

func (l Line) String() string {
	return fmt.Sprintf("{%s, %s}", l.Start, l.End)
}

// Delta returns End - Start.
func (l Line) Delta() Vec2 {
	return l.End.Sub(l.Start)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.Delta().Length()
}

// Direction returns the unit direction of the line. It is NaN for zero-length
// lines.
func (l Line) Direction() Vec2 {
	return l.Delta().Normalize()
}

// SafeDirection returns the unit direction of the line, or the zero vector for
// zero-length lines.
func (l Line) SafeDirection() Vec2 {
	return l.Delta().SafeNormalize()
}

// Normal returns the perpendicular of the line's direction, or the zero vector
// for zero-length lines.
func (l Line) Normal() Vec2 {
	n := l.SafeDirection()
	if n.IsZero() {
		return Vec2{}
	}
	return n.Perpendicular()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		Start: l.Start.Add(v),
		End:   l.End.Add(v),
	}
}

// IsZeroLength reports whether Start and End are equal within [Epsilon].
func (l Line) IsZeroLength() bool {
	return l.Start.ApproxEqual(l.End, Epsilon)
}

// Bounds returns the smallest rectangle containing the line.
func (l Line) Bounds() Rect {
	return Rect{
		X:      min(l.Start.X, l.End.X),
		Y:      min(l.Start.Y, l.End.Y),
		Width:  math.Abs(l.Start.X - l.End.X),
		Height: math.Abs(l.Start.Y - l.End.Y),
	}
}

// NormalFacingPoint returns whichever of the line's two normals faces pt.
func (l Line) NormalFacingPoint(pt Vec2) Vec2 {
	n := l.Normal()
	if l.PointsOnSameSide(n, pt.Sub(l.Start)) {
		return n
	}
	return n.Negate()
}

// FacingPoint reports whether the line's default normal, [Line.Normal], faces
// pt.
func (l Line) FacingPoint(pt Vec2) bool {
	return l.PointsOnSameSide(l.Normal(), pt.Sub(l.Start))
}

// PointsOnSameSide reports whether p1 and p2 lie strictly on the same side of
// the line through the origin that is parallel to l. Callers pass points
// relative to l.Start to test against l itself; the line is treated as
// infinite.
func (l Line) PointsOnSameSide(p1, p2 Vec2) bool {
	n := l.Delta().Perpendicular()
	return p1.Dot(n)*p2.Dot(n) > 0
}

// ClosestPoint returns the point on the segment closest to pt. For
// zero-length lines this is Start. Points projecting beyond either end
// return that endpoint unchanged.
func (l Line) ClosestPoint(pt Vec2) Vec2 {
	length := l.Length()
	if length == 0 {
		return l.Start
	}

	dir := l.Delta().NormalizeLen(length)
	r := pt.Sub(l.Start).Dot(dir)
	switch {
	case !(r > 0):
		return l.Start
	case r >= length:
		return l.End
	}
	return l.Start.Add(dir.Mul(r))
}

// Parallel reports whether l and o are exactly parallel. Zero-length lines are
// parallel to everything.
func (l Line) Parallel(o Line) bool {
	return l.denom(o) == 0
}

// Colinear reports whether l and o lie on the same infinite line.
func (l Line) Colinear(o Line) bool {
	if !l.Parallel(o) {
		return false
	}
	return Line{l.Start, o.Start}.Parallel(l)
}

func (l Line) denom(o Line) float64 {
	return (o.End.Y-o.Start.Y)*(l.End.X-l.Start.X) - (o.End.X-o.Start.X)*(l.End.Y-l.Start.Y)
}

// IntersectsCircle reports whether the segment passes strictly inside c.
func (l Line) IntersectsCircle(c Circle) bool {
	p := l.ClosestPoint(c.Center)
	return p.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

// IntersectsLine reports whether the two segments intersect.
func (l Line) IntersectsLine(o Line) bool {
	_, ok := l.LineIntersection(o)
	return ok
}

// IntersectsRect reports whether the segment crosses or touches the boundary
// of r. A segment lying fully inside r does not intersect it.
func (l Line) IntersectsRect(r Rect) bool {
	for _, e := range r.Edges() {
		if l.IntersectsLine(e) {
			return true
		}
	}
	return false
}

// RectIntersection returns a point where the segment meets the boundary of r.
//
// The edges are tested in the order top, right, bottom, left and the first hit
// is returned, which is not necessarily the hit closest to Start. Zero-length
// lines never intersect.
func (l Line) RectIntersection(r Rect) (Vec2, bool) {
	if l.IsZeroLength() {
		return Vec2{}, false
	}
	for _, e := range r.Edges() {
		if p, ok := l.LineIntersection(e); ok {
			return p, true
		}
	}
	return Vec2{}, false
}

// LineIntersection returns the intersection point of the two segments.
//
// If the segments are colinear and overlap, the point of the overlap closest to
// l.Start is returned. Segments touching only at an endpoint intersect at that
// endpoint.
func (l Line) LineIntersection(o Line) (Vec2, bool) {
	denom := l.denom(o)
	d := l.Delta()

	if denom == 0 {
		if !l.Colinear(o) {
			return Vec2{}, false
		}

		// Parameters of o's endpoints along l. These are NaN or infinite
		// for zero-length lines; clamp maps NaN to 0.
		var t0, t1 float64
		if d.X != 0 {
			t0 = (o.Start.X - l.Start.X) / d.X
			t1 = (o.End.X - l.Start.X) / d.X
		} else {
			t0 = (o.Start.Y - l.Start.Y) / d.Y
			t1 = (o.End.Y - l.Start.Y) / d.Y
		}

		if (t0 < 0 && t1 < 0) || (t0 > 1 && t1 > 1) {
			return Vec2{}, false
		}

		t0 = clamp(t0, 0, 1)
		t1 = clamp(t1, 0, 1)
		return l.Start.Add(d.Mul(min(t0, t1))), true
	}

	od := o.Delta()
	r := (od.X*(l.Start.Y-o.Start.Y) - od.Y*(l.Start.X-o.Start.X)) / denom
	if r < 0 || r > 1 {
		return Vec2{}, false
	}
	s := (d.X*(l.Start.Y-o.Start.Y) - d.Y*(l.Start.X-o.Start.X)) / denom
	if s < 0 || s > 1 {
		return Vec2{}, false
	}
	return l.Start.Add(d.Mul(r)), true
}

// CircleIntersection returns the point where the segment enters c, that is,
// the endpoint of the chord through c nearer to Start. The chord is computed
// on the infinite line, so the point may lie outside the segment when Start is
// inside c.
func (l Line) CircleIntersection(c Circle) (Vec2, bool) {
	p := l.ClosestPoint(c.Center)
	if p.Sub(c.Center).Hypot2() >= c.Radius*c.Radius {
		return Vec2{}, false
	}

	a := p.Sub(c.Center).Length()
	half := math.Sqrt(c.Radius*c.Radius - a*a)

	dir := l.SafeDirection()
	p1 := p.Sub(dir.Mul(half))
	p2 := p.Add(dir.Mul(half))
	if p1.Sub(l.Start).Hypot2() < p2.Sub(l.Start).Hypot2() {
		return p1, true
	}
	return p2, true
}
