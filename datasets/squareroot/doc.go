// Package squareroot provides reference datasets for checking square roots.
// Integer samples know their floor square root through float64 math.Sqrt, which
// is exact for every uint32, and float samples know the tolerance a float32
// root must meet.
package squareroot
