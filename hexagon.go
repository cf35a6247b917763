package collide

import (
	"fmt"
	"math"
)

// hexAngle is the angle between two adjacent corners of a hexagon.
const hexAngle = 2 * math.Pi / 6

// Hexagon is a regular hexagon. Its corners lie on the circle of the given
// radius around the center, the first one at angle Rotation.
type Hexagon struct {
	Center   Vec2
	Radius   float64
	Rotation float64
}

func (h Hexagon) String() string {
	return fmt.Sprintf("{c=%s, r=%g, rot=%g}", h.Center, h.Radius, h.Rotation)
}

func (h Hexagon) Translate(v Vec2) Hexagon {
	h.Center = h.Center.Add(v)
	return h
}

// BoundingCircle returns the circle through all six corners.
func (h Hexagon) BoundingCircle() Circle {
	return Circle{h.Center, h.Radius}
}

// InnerCircle returns the largest circle that fits inside the hexagon, which
// touches the midpoint of every edge.
func (h Hexagon) InnerCircle() Circle {
	return Circle{h.Center, h.Radius * math.Sqrt(3) / 2}
}

// Corner returns the ith corner. Indices wrap around every six corners.
func (h Hexagon) Corner(i int) Vec2 {
	return h.Center.Add(VecFromAngle(h.Rotation + float64(i)*hexAngle).Mul(h.Radius))
}

// Point returns the point on the outline in direction th from the center,
// measured relative to the hexagon's rotation.
func (h Hexagon) Point(th float64) Vec2 {
	th = WrapAngle(th)
	seg := int(th / hexAngle)
	local := math.Mod(th, hexAngle)

	// Intersect the ray at angle local with the edge from ⟨1, 0⟩ to
	// ⟨1/2, √3/2⟩ of the unit hexagon.
	a := math.Tan(local)
	s3 := math.Sqrt(3)
	x := s3 / (a + s3)
	y := a * x

	return h.Center.Add(Vec(x*h.Radius, y*h.Radius).Rotate(float64(seg)*hexAngle + h.Rotation))
}

// ClosestEdge returns the edge crossed by the ray from the center through pt.
// If pt is the center, this is the edge following the first corner.
func (h Hexagon) ClosestEdge(pt Vec2) Line {
	th := pt.Sub(h.Center).DefaultTo(Vec(1, 0)).Angle()
	region := int(WrapAngle(th-h.Rotation) / hexAngle)
	return Line{h.Corner(region), h.Corner(region + 1)}
}

// ClosestPointOnEdge returns the point on [Hexagon.ClosestEdge] closest to pt.
func (h Hexagon) ClosestPointOnEdge(pt Vec2) Vec2 {
	return h.ClosestEdge(pt).ClosestPoint(pt)
}

// hexUnits span the three rhombi a unit hexagon with a corner at ⟨-1, 0⟩ is
// made of.
var hexUnits = [3]Vec2{
	{-1, 0},
	{0.5, math.Sqrt(3) / 2},
	{0.5, -math.Sqrt(3) / 2},
}

// RandomPointInside returns a point uniformly distributed over the area of the
// hexagon.
func (h Hexagon) RandomPointInside(rng Rand) Vec2 {
	rh := rng.IntN(3)
	v1 := hexUnits[rh]
	v2 := hexUnits[(rh+1)%3]
	if h.Rotation != 0 {
		v1 = v1.Rotate(h.Rotation)
		v2 = v2.Rotate(h.Rotation)
	}

	x := rng.Float64()
	y := rng.Float64()
	return h.Center.Add(v1.Mul(x).Add(v2.Mul(y)).Mul(h.Radius))
}

// Contains reports whether pt lies strictly inside the hexagon.
func (h Hexagon) Contains(pt Vec2) bool {
	if !h.BoundingCircle().Contains(pt) {
		return false
	}
	if h.InnerCircle().Contains(pt) {
		return true
	}

	d := pt.Sub(h.Center)
	maxDist := h.Point(d.DefaultTo(Vec(1, 0)).Angle() - h.Rotation).Sub(h.Center).Hypot2()
	return d.Hypot2() < maxDist
}

// ContainsCircle reports whether c lies entirely within the hexagon.
func (h Hexagon) ContainsCircle(c Circle) bool {
	if !h.BoundingCircle().ContainsCircle(c) {
		return false
	}
	if h.InnerCircle().ContainsCircle(c) {
		return true
	}

	closest := h.ClosestPointOnEdge(c.Center)
	if c.Radius*c.Radius > closest.Sub(c.Center).Hypot2() {
		return false
	}

	// A small circle near a corner can pass the edge test from the outside.
	return closest.Sub(h.Center).Length() > c.Center.Sub(h.Center).Length()
}

// IntersectsCircle reports whether the hexagon and c overlap. A circle that
// touches the outline counts as intersecting, unlike [Circle.IntersectsCircle]
// where touching circles do not.
func (h Hexagon) IntersectsCircle(c Circle) bool {
	if !c.IntersectsCircle(h.BoundingCircle()) {
		return false
	}
	if h.Contains(c.Center) {
		return true
	}
	return c.Contains(h.ClosestPointOnEdge(c.Center))
}

// Overlap computes the minimum translation vector that separates c from the
// hexagon, using the separating axis theorem on the normals of the six edges
// and the six corner tangents. The axes are visited alternating between a
// corner and the edge that follows it, starting with corner 0, and the first
// axis with the smallest overlap wins.
//
// Overlap returns false if the circle does not strictly overlap the hexagon's
// bounding circle or if an axis separates the shapes. An axis on which the
// projections only touch does not separate them, so a circle tangent to an
// edge may report true with a near-zero vector. The result is only meaningful
// for shapes that intersect.
func (h Hexagon) Overlap(c Circle) (Vec2, bool) {
	if !c.IntersectsCircle(h.BoundingCircle()) {
		return Vec2{}, false
	}

	var out Vec2
	best := math.MaxFloat64
	for i := range 12 {
		var l Line
		if i%2 == 0 {
			tangent := VecFromAngle(h.Rotation + hexAngle*float64(i)/2).Perpendicular()
			corner := h.Corner(i / 2)
			l = Line{corner.Sub(tangent), corner.Add(tangent)}
		} else {
			l = Line{h.Corner(i / 2), h.Corner(i/2 + 1)}
		}
		axis := l.Direction().Perpendicular()

		a1 := 0.0
		a2 := h.Corner(i + 3).Sub(l.Start).Dot(axis)
		if a2 < a1 {
			a1, a2 = a2, a1
		}

		b1 := c.Center.Sub(l.Start).Add(axis.Mul(c.Radius)).Dot(axis)
		b2 := c.Center.Sub(l.Start).Sub(axis.Mul(c.Radius)).Dot(axis)
		if b2 < b1 {
			b1, b2 = b2, b1
		}

		if b2 < a1 {
			return Vec2{}, false
		}

		if v := b2 - a1; v < best {
			best = v
			out = axis.Mul(-v)
		}
	}
	return out, true
}

// CircleIntersection is like [Hexagon.Overlap] but also returns the point on
// the hexagon's outline closest to the circle's center.
func (h Hexagon) CircleIntersection(c Circle) (point, overlap Vec2, ok bool) {
	overlap, ok = h.Overlap(c)
	if !ok {
		return Vec2{}, Vec2{}, false
	}
	return h.ClosestPointOnEdge(c.Center), overlap, true
}
