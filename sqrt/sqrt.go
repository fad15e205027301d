package sqrt

import "math"

// Epsilon is the float32 machine epsilon, the gap between 1 and the next float32.
const Epsilon = 0x1p-23

// Sqrt returns the square root of n using the Newton-Raphson method.
//
// Special cases are:
//
//	Sqrt(x < 0) = NaN
//	Sqrt(-Inf) = NaN
//	Sqrt(NaN) = NaN
//	Sqrt(+Inf) = +Inf
//	Sqrt(0) = 0
func Sqrt(n float32) float32 {
	if n < 0 {
		return float32(math.NaN())
	}
	var g = n
	// for 0 and +Inf the first quotient is NaN and the comparison fails
	for abs(g-n/g) > Epsilon*g {
		g = (g + n/g) / 2
	}
	return g
}

// SqrtChecked is Sqrt with the domain decision made explicit.
// ok is false when n is negative or NaN, root is NaN then.
func SqrtChecked(n float32) (root float32, ok bool) {
	if n < 0 || math.IsNaN(float64(n)) {
		return float32(math.NaN()), false
	}
	return Sqrt(n), true
}

func abs(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}
