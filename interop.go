package collide

import (
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

// R2 converts v to a gonum vector.
func (v Vec2) R2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// VecFromR2 converts a gonum vector to a Vec2.
func VecFromR2(v r2.Vec) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Box converts r to a gonum box spanning its top-left and bottom-right
// corners.
func (r Rect) Box() r2.Box {
	return r2.Box{
		Min: r.TopLeft().R2(),
		Max: r.BottomRight().R2(),
	}
}

// RectFromBox converts a gonum box to a Rect. The box is canonicalized first,
// so the result never has a negative width or height.
func RectFromBox(b r2.Box) Rect {
	b = b.Canon()
	return NewRectSpanning(VecFromR2(b.Min), VecFromR2(b.Max))
}

// F32 converts v to single precision.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// Fixed converts v to 26.6 fixed point, rounding to the nearest 1/64.
func (v Vec2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(v.X * 64)),
		Y: fixed.Int26_6(math.Round(v.Y * 64)),
	}
}

// Aff3 converts aff to the row-major matrix layout taken by
// golang.org/x/image/draw transformers.
func (aff Affine) Aff3() f64.Aff3 {
	return f64.Aff3{
		aff.N0, aff.N2, aff.N4,
		aff.N1, aff.N3, aff.N5,
	}
}
