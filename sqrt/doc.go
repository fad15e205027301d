// Package sqrt implements the square root primitives used by the arith tools:
// a float32 square root found by reciprocal averaging (Sqrt) and an exact
// integer floor square root computed without floating point (Isqrt).
// Both functions are pure and safe for concurrent use.
package sqrt
