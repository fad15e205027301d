package sqrt

import "math/bits"

// Isqrt returns the integer square root of n, the largest g with g*g <= n.
func Isqrt(n uint32) uint32 {
	if n <= 1 {
		return n
	}
	// initial guess is a power of two greater than sqrt(n):
	// n < 1<<Len32(n), so sqrt(n) < 1<<ceil(Len32(n)/2) <= 1<<16
	var g0 = uint32(1) << ((bits.Len32(n) + 1) / 2)
	for {
		var g1 = (g0 + n/g0) / 2
		if g1 >= g0 {
			return g0
		}
		g0 = g1
	}
}
