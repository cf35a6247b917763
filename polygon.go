package collide

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Polygon is a sequence of points, forming a closed or open outline.
//
// The stored points are never modified by Offset or Rotation. Instead, every
// accessor rotates a point around the origin by Rotation and then translates it
// by Offset.
//
// A Polygon caches the normal of each edge, its total length and its bounds.
// Use [NewPolygon], [Polygon.Reinitialize] or [Polygon.Morph] to change the
// points so that the caches stay up to date. A Polygon must not be mutated
// concurrently; use [Polygon.Clone] to share it.
type Polygon struct {
	Offset   Vec2
	Rotation float64

	points  []Vec2
	normals []Vec2
	length  float64
	// bounds ignores Offset and Rotation.
	bounds Rect
}

// NewPolygon returns a polygon through the given points. The points are
// copied.
//
// The outline is not closed implicitly: to form a closed shape, repeat the
// first point at the end.
func NewPolygon(points []Vec2) *Polygon {
	p := &Polygon{}
	p.Reinitialize(points)
	return p
}

// NewPolygonFromRect returns the closed outline of r, starting and ending at
// its top-left corner and running clockwise in a y-down coordinate system.
func NewPolygonFromRect(r Rect) *Polygon {
	return NewPolygon([]Vec2{
		r.TopLeft(),
		r.TopRight(),
		r.BottomRight(),
		r.BottomLeft(),
		r.TopLeft(),
	})
}

// Clone returns a deep copy of p.
func (p *Polygon) Clone() *Polygon {
	return &Polygon{
		Offset:   p.Offset,
		Rotation: p.Rotation,
		points:   append([]Vec2(nil), p.points...),
		normals:  append([]Vec2(nil), p.normals...),
		length:   p.length,
		bounds:   p.bounds,
	}
}

// Reinitialize replaces the points of p and recomputes all cached values.
// Offset and Rotation are kept.
func (p *Polygon) Reinitialize(points []Vec2) {
	p.points = append(p.points[:0], points...)
	p.normals = p.normals[:0]
	p.length = 0

	for i := 1; i < len(p.points); i++ {
		d := p.points[i].Sub(p.points[i-1])
		p.normals = append(p.normals, d.SafeNormalize().Perpendicular())
		p.length += d.Length()
	}
	p.bounds = p.calculateBounds(0)
}

// Morph makes p a copy of o, including its Offset and Rotation. It does nothing
// and returns false if the two polygons have a different number of points.
func (p *Polygon) Morph(o *Polygon) bool {
	if len(o.points) != len(p.points) {
		Logger().Debug("polygon morph rejected",
			"points", len(p.points),
			"target_points", len(o.points))
		return false
	}

	copy(p.points, o.points)
	p.normals = append(p.normals[:0], o.normals...)
	p.length = o.length
	p.bounds = o.bounds
	p.Offset = o.Offset
	p.Rotation = o.Rotation
	return true
}

// Len returns the number of points.
func (p *Polygon) Len() int {
	return len(p.points)
}

// Length returns the summed length of all edges.
func (p *Polygon) Length() float64 {
	return p.length
}

func (p *Polygon) transform() Affine {
	if p.Rotation == 0 {
		return Translate(p.Offset)
	}
	return Rotate(p.Rotation).ThenTranslate(p.Offset)
}

// At returns the ith point, with Rotation and Offset applied. It panics if i
// is out of range.
func (p *Polygon) At(i int) Vec2 {
	if i < 0 || i >= len(p.points) {
		panic(fmt.Sprintf("polygon index %d out of range [0, %d)", i, len(p.points)))
	}
	return p.transform().Apply(p.points[i])
}

// Normal returns the normal of the ith edge, the edge from point i to point
// i+1, with Rotation applied. Normals are the edge directions turned by 90°,
// so for polygons running clockwise in a y-down coordinate system they point
// inwards.
func (p *Polygon) Normal(i int) Vec2 {
	return p.transform().ApplyVector(p.normals[i])
}

// All returns an iterator over the transformed points and their indices.
func (p *Polygon) All() iter.Seq2[int, Vec2] {
	return func(yield func(int, Vec2) bool) {
		aff := p.transform()
		for i, pt := range p.points {
			if !yield(i, aff.Apply(pt)) {
				return
			}
		}
	}
}

// Edges returns an iterator over the edges between consecutive transformed
// points. The edge from the last point back to the first is not included.
func (p *Polygon) Edges() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		if len(p.points) < 2 {
			return
		}
		aff := p.transform()
		prev := aff.Apply(p.points[0])
		for i := 1; i < len(p.points); i++ {
			pt := aff.Apply(p.points[i])
			if !yield(i-1, Line{prev, pt}) {
				return
			}
			prev = pt
		}
	}
}

// Bounds returns the bounding box of the transformed points.
func (p *Polygon) Bounds() Rect {
	if p.Rotation == 0 {
		return p.bounds.Translate(p.Offset)
	}
	return p.calculateBounds(p.Rotation).Translate(p.Offset)
}

func (p *Polygon) calculateBounds(rotation float64) Rect {
	switch len(p.points) {
	case 0:
		return Rect{}
	case 1:
		return Rect{X: p.points[0].X, Y: p.points[0].Y}
	}

	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, pt := range p.points {
		if rotation != 0 {
			pt = pt.Rotate(rotation)
		}
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

func (p *Polygon) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, pt := range p.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pt.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// ClosestPointOnEdge returns the point on the outline closest to pt. It
// returns the zero vector for polygons with fewer than two points.
func (p *Polygon) ClosestPointOnEdge(pt Vec2) Vec2 {
	cp, _, _ := p.ClosestEdge(pt)
	return cp
}

// ClosestEdge returns the point on the outline closest to pt, along with the
// normal and the extent of the edge it lies on. The edge from the last point
// back to the first is not considered. Ties go to the earlier edge.
//
// Edges must not have zero length.
func (p *Polygon) ClosestEdge(pt Vec2) (point, normal Vec2, edge Line) {
	best := math.MaxFloat64
	for i, e := range p.Edges() {
		length := e.Length()
		dir := e.Delta().NormalizeLen(length)
		r := clamp(pt.Sub(e.Start).Dot(dir), 0, length)
		cp := e.Start.Add(dir.Mul(r))

		if d := cp.Sub(pt).Length(); d < best {
			best = d
			point = cp
			normal = p.Normal(i)
			edge = e
		}
	}
	return point, normal, edge
}

// Contains reports whether pt lies inside the polygon, using the even-odd
// rule. The edge from the last point back to the first is included.
func (p *Polygon) Contains(pt Vec2) bool {
	n := len(p.points)
	if n == 0 {
		return false
	}

	aff := p.transform()
	odd := false
	pj := aff.Apply(p.points[n-1])
	for i := range n {
		pi := aff.Apply(p.points[i])
		if (pi.Y < pt.Y && pj.Y >= pt.Y) || (pj.Y < pt.Y && pi.Y >= pt.Y) {
			if pi.X+(pt.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X) < pt.X {
				odd = !odd
			}
		}
		pj = pi
	}
	return odd
}

// IntersectsLine reports whether l crosses the outline.
func (p *Polygon) IntersectsLine(l Line) bool {
	_, _, ok := p.EdgeIntersection(l)
	return ok
}

// IntersectsRect reports whether the boundary of r crosses the outline.
func (p *Polygon) IntersectsRect(r Rect) bool {
	for _, e := range r.Edges() {
		if p.IntersectsLine(e) {
			return true
		}
	}
	return false
}

// IntersectsOrContains reports whether the polygon and r overlap in any way:
// their outlines cross, or one contains a corner of the other.
//
// The check for polygon points inside r uses the stored points, without
// Offset and Rotation.
func (p *Polygon) IntersectsOrContains(r Rect) bool {
	if !r.Intersects(p.Bounds()) {
		return false
	}

	for _, pt := range p.points {
		if r.Contains(pt) {
			return true
		}
	}

	return p.Contains(r.TopLeft()) ||
		p.Contains(r.TopRight()) ||
		p.Contains(r.BottomLeft()) ||
		p.Contains(r.BottomRight()) ||
		p.IntersectsRect(r)
}

// Intersection returns where l enters the polygon and the normal of the edge
// it enters through.
//
// If l starts inside the polygon, it returns l.Start and the normal of the
// edge closest to it instead of computing a crossing.
func (p *Polygon) Intersection(l Line) (point, normal Vec2, ok bool) {
	if p.Contains(l.Start) {
		_, normal, _ := p.ClosestEdge(l.Start)
		return l.Start, normal, true
	}
	return p.EdgeIntersection(l)
}

// EdgeIntersection returns the crossing of l and the outline closest to
// l.Start, together with the normal of the crossed edge. The normal does not
// have Rotation applied. The edge from the last point back to the first is not
// considered.
func (p *Polygon) EdgeIntersection(l Line) (point, normal Vec2, ok bool) {
	best := math.MaxFloat64
	for i, e := range p.Edges() {
		ip, hit := e.LineIntersection(l)
		if !hit {
			continue
		}
		if d := ip.Sub(l.Start).Length(); d < best {
			best = d
			point = ip
			normal = p.normals[i]
			ok = true
		}
	}
	return point, normal, ok
}
