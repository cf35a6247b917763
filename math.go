package collide

import "math"

// Epsilon is the tolerance used by the collision routines whenever they
// compare floating point distances or fractions.
const Epsilon = 1e-5

// ApproxEqual reports whether a and b differ by strictly less than tolerance.
func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// clamp clamps v to [lo, hi]. NaN clamps to lo.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if !(v >= lo) {
		return lo
	}
	return v
}

// WrapAngle wraps th to [0, 2π).
func WrapAngle(th float64) float64 {
	v := math.Mod(th, 2*math.Pi)
	if v < 0 {
		return 2*math.Pi + v
	}
	return v
}

// SmallestAngleDelta returns the signed angle, in [-π, π], to turn from th to
// target along the shorter way around. If both ways are equally long, the
// result has the sign of target.
func SmallestAngleDelta(th, target float64) float64 {
	targetNegative := target < 0
	th = WrapAngle(th)
	target = WrapAngle(target)

	d1 := target - th
	var d2 float64
	if d1 > 0 {
		d2 = -(2*math.Pi - d1)
	} else {
		d2 = 2*math.Pi + d1
	}
	ad1 := math.Abs(d1)
	ad2 := math.Abs(d2)

	if ApproxEqual(ad1, ad2, Epsilon) {
		if targetNegative {
			return -ad1
		}
		return ad1
	}
	if ad1 <= ad2 {
		return d1
	}
	return d2
}

// AngleWithinSegment reports whether th lies within rng radians of center.
// It panics if rng is negative.
func AngleWithinSegment(th, center, rng float64) bool {
	if rng < 0 {
		panic("invalid segment range")
	}
	if rng >= math.Pi {
		return true
	}
	return math.Abs(SmallestAngleDelta(th, center)) <= rng+Epsilon
}

// ClampAngle clamps th to the segment of rng radians on either side of center.
// Angles outside the segment snap to the closer of its two ends. It panics if
// rng is negative.
func ClampAngle(th, center, rng float64) float64 {
	if rng < 0 {
		panic("invalid segment range")
	}
	if !AngleWithinSegment(th, center, rng) {
		hi := center + rng
		lo := center - rng
		if math.Abs(SmallestAngleDelta(th, lo)) < math.Abs(SmallestAngleDelta(th, hi)) {
			th = lo
		} else {
			th = hi
		}
	}
	return th
}

// ClampDirection is like [ClampAngle], but operates on and returns unit
// direction vectors.
func ClampDirection(dir Vec2, center, rng float64) Vec2 {
	return VecFromAngle(ClampAngle(dir.Angle(), center, rng))
}

// DeltaDirection returns the unit direction dir turned by delta radians.
func DeltaDirection(dir Vec2, delta float64) Vec2 {
	return VecFromAngle(dir.Angle() + delta)
}

// AffineTransform rotates v by th radians around the origin and then
// translates it by ⟨tx, ty⟩.
func AffineTransform(v Vec2, tx, ty, th float64) Vec2 {
	return Translate(Vec(tx, ty)).Mul(Rotate(th)).Apply(v)
}

// InverseAffineTransform undoes [AffineTransform].
func InverseAffineTransform(v Vec2, tx, ty, th float64) Vec2 {
	return Translate(Vec(tx, ty)).Mul(Rotate(th)).Invert().Apply(v)
}
