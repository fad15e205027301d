package squareroot

import "math"

// Sample is an integer radicand.
type Sample uint32

// Input returns the radicand.
func (s *Sample) Input() uint32 {
	return uint32(*s)
}

// Output returns floor(sqrt(s)).
func (s *Sample) Output() uint32 {
	return uint32(math.Sqrt(float64(*s)))
}

// Holds reports whether root is the floor square root of s without relying on Output.
func (s *Sample) Holds(root uint32) bool {
	var n = uint64(*s)
	var r = uint64(root)
	return r*r <= n && n < (r+1)*(r+1)
}

const SmallSize = 1 << 8
const MediumSize = 1 << 10
const BigSize = 1 << 12
const HugeSize = 0xffff

func Small() []Sample {
	return Range(0, SmallSize)
}

func Medium() []Sample {
	return Range(0, MediumSize)
}

func Big() []Sample {
	return Range(0, BigSize)
}

// Huge covers every radicand below 0xffff.
func Huge() []Sample {
	return Range(0, HugeSize)
}

// Range returns the samples lo, lo+1, ..., hi-1.
func Range(lo, hi uint32) (ret []Sample) {
	if hi <= lo {
		return nil
	}
	ret = make([]Sample, 0, hi-lo)
	for i := lo; i < hi; i++ {
		ret = append(ret, Sample(i))
	}
	return
}

// Squares returns k*k for every k whose square fits in uint32.
func Squares() (ret []Sample) {
	ret = make([]Sample, 0, 1<<16)
	for k := uint64(0); k*k <= math.MaxUint32; k++ {
		ret = append(ret, Sample(k*k))
	}
	return
}

// Boundaries returns k*k-1, k*k and k*k+1 around each perfect square,
// where the floor square root changes.
func Boundaries() (ret []Sample) {
	for k := uint64(1); k*k <= math.MaxUint32; k++ {
		ret = append(ret, Sample(k*k-1), Sample(k*k))
		if k*k+1 <= math.MaxUint32 {
			ret = append(ret, Sample(k*k+1))
		}
	}
	ret = append(ret, Sample(math.MaxUint32))
	return
}
