package squareroot

import (
	"math"
	"math/rand"
)

// Float is a float32 radicand.
type Float float32

// Epsilon is the float32 machine epsilon. It is kept apart from sqrt.Epsilon
// because the sqrt tests import this package; the two must stay equal.
const Epsilon = 0x1p-23

// Tolerable reports whether root squared is within 2*Epsilon*n of n.
// A NaN or negative root is accepted, there is nothing to measure.
func (f Float) Tolerable(root float32) bool {
	if !(root >= 0) {
		return true
	}
	var n = float32(f)
	var radicand = float32(root * root)
	if radicand > math.MaxFloat32 {
		radicand = math.MaxFloat32
	}
	var diff = n - radicand
	if diff < 0 {
		diff = -diff
	}
	return diff <= 2*Epsilon*n
}

// Edges returns the radicands on which a square root must terminate:
// NaN, -Inf, -1, 0, MaxFloat32 and +Inf.
func Edges() []Float {
	return []Float{
		Float(math.NaN()),
		Float(math.Inf(-1)),
		-1,
		0,
		math.MaxFloat32,
		Float(math.Inf(1)),
	}
}

// Random returns count radicands drawn uniformly from [0, MaxFloat32).
func Random(rng *rand.Rand, count int) (ret []Float) {
	ret = make([]Float, count)
	for i := range ret {
		ret[i] = Float(rng.Float32() * math.MaxFloat32)
	}
	return
}

// PerfectSquares returns k*k for k in [1, count], all exactly representable
// as long as k*k stays below 1<<24.
func PerfectSquares(count int) (ret []Float) {
	for k := 1; k <= count && k*k < 1<<24; k++ {
		ret = append(ret, Float(k*k))
	}
	return
}
