package collide

import "math"

// Rand is a source of uniformly distributed random numbers. It is satisfied by
// *math/rand/v2.Rand.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// RandomFloat returns a number in [lo, hi). It panics if lo > hi.
func RandomFloat(rng Rand, lo, hi float64) float64 {
	if lo > hi {
		panic("min must not be greater than max")
	}
	return lo + rng.Float64()*(hi-lo)
}

// RandomDirection returns a unit vector pointing in a uniformly distributed
// direction.
func RandomDirection(rng Rand) Vec2 {
	return VecFromAngle(rng.Float64() * 2 * math.Pi)
}

// RandomSpread returns a unit vector whose angle deviates from that of dir by
// at most spread radians.
func RandomSpread(rng Rand, dir Vec2, spread float64) Vec2 {
	return VecFromAngle(dir.Angle() + rng.Float64()*spread*2 - spread)
}
