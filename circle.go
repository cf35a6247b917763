package collide

import (
	"fmt"
	"math"
)

type Circle struct {
	Center Vec2
	Radius float64
}

func (c Circle) String() string {
	return fmt.Sprintf("{c=%s, r=%g}", c.Center, c.Radius)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Add(v),
		Radius: c.Radius,
	}
}

// Expand returns a copy of the circle with its radius grown by d.
func (c Circle) Expand(d float64) Circle {
	return Circle{
		Center: c.Center,
		Radius: c.Radius + d,
	}
}

// Bounds returns the smallest rectangle containing the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  c.Radius * 2,
		Height: c.Radius * 2,
	}
}

// PointOnEdge returns the point on the circle at angle th, in radians.
func (c Circle) PointOnEdge(th float64) Vec2 {
	return c.Center.Add(VecFromAngle(th).Mul(c.Radius))
}

// RandomPointInside returns a point uniformly distributed over the area of the
// circle.
func (c Circle) RandomPointInside(rng Rand) Vec2 {
	th := RandomFloat(rng, 0, 2*math.Pi)
	r := math.Sqrt(rng.Float64()) * c.Radius
	return c.Center.Add(VecFromAngle(th).Mul(r))
}

// Contains reports whether pt lies inside the circle or on its edge.
func (c Circle) Contains(pt Vec2) bool {
	return pt.Sub(c.Center).Hypot2() <= c.Radius*c.Radius
}

// ContainsCircle reports whether o lies entirely within c. Touching edges
// count as contained.
func (c Circle) ContainsCircle(o Circle) bool {
	if o.Radius > c.Radius {
		return false
	}
	if !c.Contains(o.Center) {
		return false
	}
	far := o.Center.Sub(c.Center).SafeNormalize().Mul(o.Radius).Add(o.Center)
	return c.Contains(far)
}

// IntersectsCircle reports whether the two circles overlap. Circles that only
// touch do not intersect.
func (c Circle) IntersectsCircle(o Circle) bool {
	r := c.Radius + o.Radius
	return o.Center.Sub(c.Center).Hypot2() < r*r
}

// IntersectsLine reports whether l passes strictly inside the circle.
func (c Circle) IntersectsLine(l Line) bool {
	return l.IntersectsCircle(c)
}

// IntersectsRect reports whether the circle and r overlap.
func (c Circle) IntersectsRect(r Rect) bool {
	if r.Contains(c.Center) {
		return true
	}
	tl, tr, br, bl := r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()
	return Line{tl, tr}.IntersectsCircle(c) ||
		Line{tr, br}.IntersectsCircle(c) ||
		Line{br, bl}.IntersectsCircle(c) ||
		Line{bl, tl}.IntersectsCircle(c)
}

// ShortestOverlap returns the penetration of the circle into r along the
// axis of least penetration. The returned vector points from r towards the
// circle's center, or the opposite way when the center lies past r's
// midpoint on that axis.
//
// The circle must intersect r. The result is unspecified otherwise.
func (c Circle) ShortestOverlap(r Rect) Vec2 {
	region := r.Region(c.Center)

	switch region {
	case 1, 3, 4, 5, 7:
		s1 := overlap1D(r.Top(), r.Bottom(), c.Center.Y-c.Radius, c.Center.Y+c.Radius)
		if s1 == 0 {
			return Vec2{}
		}
		s2 := overlap1D(r.Left(), r.Right(), c.Center.X-c.Radius, c.Center.X+c.Radius)
		if s2 == 0 {
			return Vec2{}
		}
		if math.Abs(s1) < math.Abs(s2) {
			return Vec(0, s1)
		}
		return Vec(s2, 0)

	case 0, 2, 6, 8:
		// Project the rectangle onto the axis from the nearest corner to the
		// circle's center.
		var corner, end Vec2
		switch region {
		case 0:
			corner, end = r.TopLeft(), r.BottomRight()
		case 2:
			corner, end = r.TopRight(), r.BottomLeft()
		case 6:
			corner, end = r.BottomLeft(), r.TopRight()
		case 8:
			corner, end = r.BottomRight(), r.TopLeft()
		}

		axis := c.Center.Sub(corner)
		length := axis.Length()
		axis = axis.Div(length)

		r1 := end.Sub(corner).Dot(axis)
		return axis.Mul(overlap1D(r1, 0, length-c.Radius, length+c.Radius))
	}

	panic("unreachable")
}

// overlap1D returns the signed overlap of the intervals [startA, endA] and
// [startB, endB], or 0 if they are disjoint.
func overlap1D(startA, endA, startB, endB float64) float64 {
	if endB < startA || startB > endA {
		return 0
	}

	centerA := startA + (endA-startA)/2
	centerB := startB + (endB-startB)/2
	if centerA < centerB {
		return endA - startB
	}
	return startA - endB
}

// SweepIntersects reports whether the circle, moving in a straight line to
// newPos, would pass strictly within its radius of pt.
func (c Circle) SweepIntersects(newPos, pt Vec2) bool {
	return c.sweepIntersects(newPos, pt, c.Radius)
}

// SweepIntersectsCircle reports whether the circle, moving in a straight line
// to newPos, would overlap o at any point.
func (c Circle) SweepIntersectsCircle(newPos Vec2, o Circle) bool {
	return c.sweepIntersects(newPos, o.Center, c.Radius+o.Radius)
}

func (c Circle) sweepIntersects(newPos, pt Vec2, maxDist float64) bool {
	p := Line{c.Center, newPos}.ClosestPoint(pt)
	return p.Sub(pt).Hypot2() < maxDist*maxDist
}

// SweepMove moves the circle in a straight line towards newPos, stopping at
// the first contact with o.
//
// If the circles already overlap, the circle does not move. If the path only
// grazes o, the move completes. Otherwise the circle stops where it touches o
// and Complete is false. The returned normal is always zero.
func (c Circle) SweepMove(newPos Vec2, o Circle) Sweep {
	if c.IntersectsCircle(o) {
		return Sweep{Position: c.Center}
	}

	// The center moves along (x0 + t·xd, y0 + t·yd). Solve for the t at which
	// its distance to o's center equals the sum of the radii.
	x0, y0 := c.Center.Splat()
	xd := newPos.X - x0
	yd := newPos.Y - y0
	ox, oy := o.Center.Splat()
	d := c.Radius + o.Radius

	A := xd*xd + yd*yd
	if A == 0 {
		return Sweep{Position: c.Center, Complete: true}
	}

	B := (-2 * ox * xd) + (2 * x0 * xd) +
		(-2 * oy * yd) + (2 * y0 * yd)
	C := -d*d +
		ox*ox - 2*ox*x0 + x0*x0 +
		oy*oy - 2*oy*y0 + y0*y0

	Bp := B*B - 4*A*C
	if Bp <= 0 {
		return Sweep{Position: newPos, Complete: true}
	}

	res1 := (-B + math.Sqrt(Bp)) / (2 * A)
	res2 := (-B - math.Sqrt(Bp)) / (2 * A)

	dist := 1.0
	if res1 > 0 && res1 < 1 {
		dist = res1
	}
	if res2 > 0 && res2 < 1 {
		dist = min(dist, res2)
	}

	if ApproxEqual(dist, 1, Epsilon) {
		// Grazed o without colliding.
		return Sweep{Position: newPos, Complete: true}
	}

	dir := newPos.Sub(c.Center)
	length := dir.Length()
	return Sweep{Position: c.Center.Add(dir.SafeNormalizeLen(length).Mul(length * dist))}
}

// SweepMovePoint is like [Circle.SweepMove] but collides against a single
// point.
func (c Circle) SweepMovePoint(newPos, pt Vec2) Sweep {
	return c.SweepMove(newPos, Circle{Center: pt})
}
