package collide

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle given by its top-left corner and its size,
// in a y-down coordinate system.
//
// Width and Height are expected to be non-negative. Methods that compare
// points against the rectangle treat the left and top edges as inside and the
// right and bottom edges as outside.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRectSpanning returns the smallest rectangle with p0 and p1 as corners.
func NewRectSpanning(p0, p1 Vec2) Rect {
	x := min(p0.X, p1.X)
	y := min(p0.Y, p1.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Abs(max(p0.X, p1.X) - x),
		Height: math.Abs(max(p0.Y, p1.Y) - y),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("{X=%g, Y=%g, W=%g, H=%g}", r.X, r.Y, r.Width, r.Height)
}

// Position returns the top-left corner.
func (r Rect) Position() Vec2 { return Vec(r.X, r.Y) }
func (r Rect) Size() Vec2     { return Vec(r.Width, r.Height) }

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) TopLeft() Vec2     { return Vec(r.X, r.Y) }
func (r Rect) TopRight() Vec2    { return Vec(r.X+r.Width, r.Y) }
func (r Rect) BottomLeft() Vec2  { return Vec(r.X, r.Y+r.Height) }
func (r Rect) BottomRight() Vec2 { return Vec(r.X+r.Width, r.Y+r.Height) }

func (r Rect) Center() Vec2       { return Vec(r.X+r.Width/2, r.Y+r.Height/2) }
func (r Rect) CenterLeft() Vec2   { return Vec(r.X, r.Y+r.Height/2) }
func (r Rect) CenterRight() Vec2  { return Vec(r.X+r.Width, r.Y+r.Height/2) }
func (r Rect) CenterTop() Vec2    { return Vec(r.X+r.Width/2, r.Y) }
func (r Rect) CenterBottom() Vec2 { return Vec(r.X+r.Width/2, r.Y+r.Height) }

// IsEmpty reports whether r is the zero rectangle.
func (r Rect) IsEmpty() bool {
	return r == Rect{}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X, 0) || math.IsInf(r.Y, 0) || math.IsInf(r.Width, 0) || math.IsInf(r.Height, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X) || math.IsNaN(r.Y) || math.IsNaN(r.Width) || math.IsNaN(r.Height)
}

func (r Rect) Translate(v Vec2) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// AtPosition returns a rectangle of the same size with its top-left corner at
// pos.
func (r Rect) AtPosition(pos Vec2) Rect {
	r.X = pos.X
	r.Y = pos.Y
	return r
}

// WithCenter returns a rectangle of the same size centered on c.
func (r Rect) WithCenter(c Vec2) Rect {
	r.X = c.X - r.Width/2
	r.Y = c.Y - r.Height/2
	return r
}

// Inflate grows the rectangle by d in every direction.
func (r Rect) Inflate(d float64) Rect {
	return r.InflateVec(Vec(d, d))
}

// InflateVec grows the rectangle by d.X to the left and right and by d.Y to
// the top and bottom.
func (r Rect) InflateVec(d Vec2) Rect {
	return Rect{
		X:      r.X - d.X,
		Y:      r.Y - d.Y,
		Width:  r.Width + d.X*2,
		Height: r.Height + d.Y*2,
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), o.Right()) - x,
		Height: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Intersection returns the overlapping area of r and o, or the zero rectangle
// if the overlap has no area.
func (r Rect) Intersection(o Rect) Rect {
	left := max(r.Left(), o.Left())
	top := max(r.Top(), o.Top())
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if left < right && top < bottom {
		return Rect{left, top, right - left, bottom - top}
	}
	return Rect{}
}

// ApproxEqual reports whether all four fields of r and o differ by strictly
// less than tolerance.
func (r Rect) ApproxEqual(o Rect, tolerance float64) bool {
	return ApproxEqual(r.X, o.X, tolerance) &&
		ApproxEqual(r.Y, o.Y, tolerance) &&
		ApproxEqual(r.Width, o.Width, tolerance) &&
		ApproxEqual(r.Height, o.Height, tolerance)
}

// Contains reports whether pt lies inside the rectangle. Points on the left
// and top edges are inside, points on the right and bottom edges are not.
func (r Rect) Contains(pt Vec2) bool {
	return !(r.X > pt.X ||
		r.Y > pt.Y ||
		r.X+r.Width <= pt.X ||
		r.Y+r.Height <= pt.Y)
}

// ContainsRect reports whether o lies entirely within r, including its edges.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X &&
		o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width &&
		o.Y+o.Height <= r.Y+r.Height
}

// Intersects reports whether r and o overlap. Rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return !(r.X >= o.X+o.Width ||
		r.Y >= o.Y+o.Height ||
		r.X+r.Width <= o.X ||
		r.Y+r.Height <= o.Y)
}

// IntersectsCircle reports whether r and c overlap.
func (r Rect) IntersectsCircle(c Circle) bool {
	return c.IntersectsRect(r)
}

// IntersectsLine reports whether l crosses or touches the boundary of r.
func (r Rect) IntersectsLine(l Line) bool {
	return l.IntersectsRect(r)
}

// Edges returns the four edges of the rectangle in the order top, right,
// bottom, left. The top and bottom edges run left to right, the left and right
// edges top to bottom.
func (r Rect) Edges() [4]Line {
	return [4]Line{
		{Vec(r.X, r.Y), Vec(r.X+r.Width, r.Y)},
		{Vec(r.X+r.Width, r.Y), Vec(r.X+r.Width, r.Y+r.Height)},
		{Vec(r.X, r.Y+r.Height), Vec(r.X+r.Width, r.Y+r.Height)},
		{Vec(r.X, r.Y), Vec(r.X, r.Y+r.Height)},
	}
}

// ClosestPointOnEdge returns the point on the boundary of r closest to pt. Ties
// go to the edge that comes first in [Rect.Edges].
func (r Rect) ClosestPointOnEdge(pt Vec2) Vec2 {
	best := Vec2{}
	bestDist := math.MaxFloat64
	for _, e := range r.Edges() {
		p := e.ClosestPoint(pt)
		if d := p.Sub(pt).Length(); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

// ShortestOverlap returns how far r has to move out of o along the axis of
// least penetration. It returns the zero vector if the rectangles do not
// overlap.
func (r Rect) ShortestOverlap(o Rect) Vec2 {
	d0 := r.X + r.Width - o.X
	if d0 <= 0 {
		return Vec2{}
	}
	d1 := r.Y + r.Height - o.Y
	if d1 <= 0 {
		return Vec2{}
	}
	d2 := o.X + o.Width - r.X
	if d2 <= 0 {
		return Vec2{}
	}
	d3 := o.Y + o.Height - r.Y
	if d3 <= 0 {
		return Vec2{}
	}

	minDist := d0
	out := Vec(d0, 0)
	if d1 < minDist {
		minDist = d1
		out = Vec(0, d1)
	}
	if d2 < minDist {
		minDist = d2
		out = Vec(-d2, 0)
	}
	if d3 < minDist {
		out = Vec(0, -d3)
	}
	return out
}

// Region classifies pt into one of the nine regions formed by extending the
// edges of r:
//
//	0 | 1 | 2
//	--+---+--
//	3 | 4 | 5
//	--+---+--
//	6 | 7 | 8
//
// Points exactly on an extended edge belong to the side region, not the
// corner region.
func (r Rect) Region(pt Vec2) int {
	col := 1
	if pt.X < r.X {
		col = 0
	} else if pt.X > r.X+r.Width {
		col = 2
	}
	row := 1
	if pt.Y < r.Y {
		row = 0
	} else if pt.Y > r.Y+r.Height {
		row = 2
	}
	return row*3 + col
}

// RandomPointInside returns a point uniformly distributed over the area of r.
func (r Rect) RandomPointInside(rng Rand) Vec2 {
	return Vec(
		r.X+rng.Float64()*r.Width,
		r.Y+rng.Float64()*r.Height,
	)
}

// SweepMoveLine moves r in a straight line so that its top-left corner ends up
// at newPos, stopping at the first contact with the segment l.
//
// If l already crosses the boundary of r, r does not move. On a collision,
// Point is the contact point and Normal points away from l towards r.
func (r Rect) SweepMoveLine(newPos Vec2, l Line) Sweep {
	if l.IntersectsRect(r) {
		return Sweep{Position: r.Position()}
	}

	large := r.Union(r.AtPosition(newPos))
	if !l.IntersectsRect(large) && !large.Contains(l.Start) && !large.Contains(l.End) {
		return Sweep{Position: newPos, Complete: true}
	}

	// Cast rays from each corner of r along the motion and against l. Then
	// cast rays from both ends of l against the motion and against the edges
	// of r. The shortest ray is how far r can move.
	corners := [4]Vec2{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()}
	edges := r.Edges()
	normals := [4]Vec2{
		Vec(0, 1),
		Vec(-1, 0),
		Vec(0, -1),
		Vec(1, 0),
	}

	delta := newPos.Sub(r.Position())
	deltaLen := delta.Length()
	dir := delta.SafeNormalizeLen(deltaLen)

	var (
		hit bool

		edgeDist  = deltaLen
		edgePoint Vec2

		lineDist   = deltaLen
		linePoint  Vec2
		lineNormal Vec2
	)

	for _, c := range corners {
		if ip, ok := (Line{c, c.Add(delta)}).LineIntersection(l); ok {
			if d := c.Sub(ip).Length(); d < edgeDist {
				edgePoint = ip
				edgeDist = d
				hit = true
			}
		}
	}

	for i, e := range edges {
		for _, p := range [2]Vec2{l.Start, l.End} {
			if ip, ok := (Line{p, p.Sub(delta)}).LineIntersection(e); ok {
				if d := p.Sub(ip).Length(); d < lineDist {
					linePoint = ip
					lineDist = d
					lineNormal = normals[i]
					hit = true
				}
			}
		}
	}

	if !hit {
		return Sweep{Position: newPos, Complete: true}
	}

	if edgeDist < lineDist {
		return Sweep{
			Position: r.Position().Add(dir.Mul(edgeDist)),
			Normal:   l.NormalFacingPoint(r.Center()),
			Point:    edgePoint,
		}
	}
	return Sweep{
		Position: r.Position().Add(dir.Mul(lineDist)),
		Normal:   lineNormal,
		Point:    linePoint,
	}
}

// SweepMoveRect moves r in a straight line so that its top-left corner ends up
// at newPos, stopping at the first contact with o.
//
// If r and o already overlap, r does not move and the normal is zero. On a
// collision, Normal points against the direction of travel on the axis of
// contact, or is the normalized diagonal if both axes make contact at the
// same time.
//
// SweepMoveRect panics if either rectangle has a negative width or height.
func (r Rect) SweepMoveRect(newPos Vec2, o Rect) Sweep {
	x := sweepOverlap(Vec(1, 0), r, o, newPos)
	y := sweepOverlap(Vec(0, 1), r, o, newPos)

	if x > 0 && y > 0 {
		return Sweep{Position: r.Position()}
	}

	if ApproxEqual(x, -1, Epsilon) || ApproxEqual(y, -1, Epsilon) {
		return Sweep{Position: newPos, Complete: true}
	}

	d := min(x, y)
	pos := r.Position()
	dir := newPos.Sub(pos)
	length := dir.Length()
	out := Sweep{Position: pos.Add(dir.NormalizeLen(length).Mul(length * -d))}

	if length > 0 {
		sx, sy := -1.0, -1.0
		if dir.X < 0 {
			sx = 1
		}
		if dir.Y < 0 {
			sy = 1
		}
		switch {
		case x < y:
			out.Normal = Vec(sx, 0)
		case y < x:
			out.Normal = Vec(0, sy)
		default:
			out.Normal = Vec(sx, sy).Normalize()
		}
	}
	return out
}

// sweepOverlap projects r1, r2 and r1 moved to newPos onto axis.
//
// If r1 and r2 already overlap on the axis, it returns the overlap, which is
// positive. Otherwise it returns the negated fraction of the move after which
// the projections first touch, or -1 if they never do.
func sweepOverlap(axis Vec2, r1, r2 Rect, newPos Vec2) float64 {
	r1s := r1.TopLeft().Dot(axis)
	r1e := r1.BottomRight().Dot(axis)
	r2s := r2.TopLeft().Dot(axis)
	r2e := r2.BottomRight().Dot(axis)
	if r1s > r1e || r2s > r2e {
		panic("invalid rect")
	}

	maxVal := min(r1e-r1s, r2e-r2s)
	var p float64
	if r1s < r2s {
		p = r1e - r2s
	} else {
		p = r2e - r1s
	}
	if p < 0 {
		p = 0
	}
	if p > maxVal {
		p = maxVal
	}

	if p != 0 {
		return p
	}

	p = -1
	r1sp := newPos.Dot(axis)
	r1ep := newPos.Add(r1.Size()).Dot(axis)
	if r1sp > r1ep {
		panic("invalid rect")
	}

	if !ApproxEqual(r1s, r1sp, Epsilon) {
		if r1s < r2s && r1ep > r2s {
			// Distance until r1's end reaches r2's start, relative to the
			// distance r1 travels.
			p = -(r2s - r1e) / math.Abs(r1s-r1sp)
		} else if r1s >= r2s && r1sp < r2e {
			p = (r2e - r1s) / math.Abs(r1s-r1sp)
		}
	}
	return p
}
