package collide

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector. It doubles as a point in the plane.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Length returns the magnitude of the vector. It is computed as sqrt(x²+y²),
// which, unlike [Vec2.Hypot], keeps results bit-compatible with squared
// distances computed via [Vec2.Hypot2].
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the positive y
// direction. This is atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
//
// Thus, in a y-down coordinate system (as is common for games),
// it is a clockwise rotation, and in y-up (traditional for math), it
// is anti-clockwise.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0. Use [Vec2.SafeNormalize]
// where v may be zero.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Length())
}

// NormalizeLen is like [Vec2.Normalize] but uses the precomputed length l.
func (v Vec2) NormalizeLen(l float64) Vec2 {
	return v.Mul(1.0 / l)
}

// SafeNormalize returns a vector of magnitude 1.0 with the same angle as v, or
// the zero vector if v is zero.
func (v Vec2) SafeNormalize() Vec2 {
	if v.IsZero() {
		return Vec2{}
	}
	return v.Mul(1.0 / v.Length())
}

// SafeNormalizeLen is like [Vec2.SafeNormalize], but checks the precomputed
// length l instead of the components. The division still uses the actual
// length of v.
func (v Vec2) SafeNormalizeLen(l float64) Vec2 {
	if l > 0 {
		return v.Mul(1.0 / v.Length())
	}
	return Vec2{}
}

// Perpendicular returns v rotated by 90°, ⟨-y, x⟩. In a y-down coordinate
// system this is a clockwise rotation.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{
		X: -v.Y,
		Y: v.X,
	}
}

// DefaultTo returns d if v is zero, and v otherwise.
func (v Vec2) DefaultTo(d Vec2) Vec2 {
	if v.IsZero() {
		return d
	}
	return v
}

// Rotate returns v rotated around the origin by th radians. See [Rotate] for
// the direction convention.
func (v Vec2) Rotate(th float64) Vec2 {
	return Rotate(th).ApplyVector(v)
}

// RotateAround returns v rotated around axis by th radians.
func (v Vec2) RotateAround(axis Vec2, th float64) Vec2 {
	return RotateAbout(th, axis).Apply(v)
}

// Project projects v onto target. The result is zero if target is zero.
func (v Vec2) Project(target Vec2) Vec2 {
	if target.IsZero() {
		return Vec2{}
	}
	target = target.Normalize()
	return target.Mul(v.Dot(target))
}

// ProjectNormal projects v onto the unit vector n. The result is zero if n is
// zero.
func (v Vec2) ProjectNormal(n Vec2) Vec2 {
	if n.IsZero() {
		return Vec2{}
	}
	return n.Mul(v.Dot(n))
}

// Reflect reflects v around the normal n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Clamp clamps each component of v to the range spanned by lo and hi.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: clamp(v.X, lo.X, hi.X),
		Y: clamp(v.Y, lo.Y, hi.Y),
	}
}

// Distance returns the euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return o.Sub(v).Length()
}

// DistanceSquared returns the squared euclidean distance between v and o.
func (v Vec2) DistanceSquared(o Vec2) float64 {
	return o.Sub(v).Hypot2()
}

// ApproxEqual reports whether both components of v and o differ by strictly
// less than tolerance.
func (v Vec2) ApproxEqual(o Vec2, tolerance float64) bool {
	return ApproxEqual(v.X, o.X, tolerance) && ApproxEqual(v.Y, o.Y, tolerance)
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}
