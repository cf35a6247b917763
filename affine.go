package collide

import "math"

// Affine is a 2D affine transform stored column by column. The fields map to
// the augmented matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// Transforms compose right to left: a.Mul(b) applies b first.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Translate returns a transform that moves points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate returns a transform that rotates by th radians around the origin.
// Positive angles turn the x axis towards the y axis, which is clockwise on a
// y-down screen.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout returns a transform that rotates by th radians around center.
func RotateAbout(th float64, center Vec2) Affine {
	return Translate(center).Mul(Rotate(th)).Mul(Translate(center.Negate()))
}

// Mul returns the transform that applies o and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenTranslate returns aff followed by a move by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant returns the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the transform that undoes aff. A singular transform yields
// NaN or infinite coefficients.
func (aff Affine) Invert() Affine {
	d := 1 / aff.Determinant()
	return Affine{
		N0: d * aff.N3,
		N1: -d * aff.N1,
		N2: -d * aff.N2,
		N3: d * aff.N0,
		N4: d * (aff.N2*aff.N5 - aff.N3*aff.N4),
		N5: d * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Apply transforms the position v.
func (aff Affine) Apply(v Vec2) Vec2 {
	return aff.ApplyVector(v).Add(Vec2{aff.N4, aff.N5})
}

// ApplyVector transforms the direction v. Translation does not affect
// directions.
func (aff Affine) ApplyVector(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}
