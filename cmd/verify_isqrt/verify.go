package main

import (
	"math"
	"sync/atomic"

	"github.com/neurlang/arith/datasets/squareroot"
	"github.com/neurlang/arith/parallel"
	"github.com/neurlang/arith/sqrt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const block = 1 << 16

// checkRange compares Isqrt with the reference on [0, max).
func checkRange(max uint64, threads int) error {
	if max > 1<<32 {
		max = 1 << 32
	}
	var checked, failed atomic.Uint64
	var first atomic.Uint64
	first.Store(math.MaxUint64)
	parallel.ForRange(0, max, block, threads, func(lo, hi uint64) {
		for i := lo; i < hi; i++ {
			var s = squareroot.Sample(i)
			if sqrt.Isqrt(s.Input()) != s.Output() {
				failed.Add(1)
				first.CompareAndSwap(math.MaxUint64, i)
			}
		}
		checked.Add(hi - lo)
	})
	println("[isqrt checked]", checked.Load(), "radicands", "with", failed.Load(), "errors")
	if failed.Load() > 0 {
		n := first.Load()
		s := squareroot.Sample(n)
		return errors.Errorf("%d mismatches, e.g. Isqrt(%d) == %d, want %d",
			failed.Load(), n, sqrt.Isqrt(uint32(n)), s.Output())
	}
	return nil
}

// dataset picks one of the fixed size reference datasets by name.
func dataset(size string) ([]squareroot.Sample, error) {
	switch size {
	case "small":
		return squareroot.Small(), nil
	case "medium":
		return squareroot.Medium(), nil
	case "big":
		return squareroot.Big(), nil
	case "huge":
		return squareroot.Huge(), nil
	}
	return nil, errors.Errorf("unknown dataset size %q", size)
}

// checkSamples compares Isqrt with the reference on every sample.
func checkSamples(samples []squareroot.Sample, threads int) error {
	var failed atomic.Uint64
	var first atomic.Int64
	first.Store(-1)
	parallel.ForEach(len(samples), threads, func(j int) {
		var s = samples[j]
		if sqrt.Isqrt(s.Input()) != s.Output() {
			failed.Add(1)
			first.CompareAndSwap(-1, int64(j))
		}
	})
	println("[isqrt checked]", len(samples), "samples", "with", failed.Load(), "errors")
	if failed.Load() > 0 {
		s := samples[first.Load()]
		return errors.Errorf("%d mismatches, e.g. Isqrt(%d) == %d, want %d",
			failed.Load(), s, sqrt.Isqrt(s.Input()), s.Output())
	}
	return nil
}

// searchAll looks for a radicand below end whose Isqrt is not the floor square root.
func searchAll(end uint64, threads int) error {
	var counterexample atomic.Uint32
	var progress atomic.Uint64
	found := parallel.Loop(threads).LoopUntil(end, func(i uint32, ender parallel.LoopStopper) bool {
		var s = squareroot.Sample(i)
		if !s.Holds(sqrt.Isqrt(i)) {
			counterexample.Store(i)
			return true
		}
		if i&(1<<28-1) == 0 && !ender.Load() {
			log.WithField("done", progress.Add(1)).Debug("Searched 1<<28 radicands")
		}
		return false
	})
	if found {
		n := counterexample.Load()
		return errors.Errorf("Isqrt(%d) == %d is not the floor square root", n, sqrt.Isqrt(n))
	}
	log.WithFields(logrus.Fields{"radicands": end}).Info("No counterexample")
	return nil
}

// compareDigests hashes Isqrt outputs and reference outputs on [0, max) and
// compares the two sums.
func compareDigests(max uint64, threads int) error {
	if max > math.MaxInt32 {
		return errors.Errorf("digest bound %d too large", max)
	}
	var got = parallel.NewDigest(int(max))
	var want = parallel.NewDigest(int(max))
	parallel.ForRange(0, max, block, threads, func(lo, hi uint64) {
		for i := lo; i < hi; i++ {
			var s = squareroot.Sample(i)
			got.MustPut(int(i), uint16(sqrt.Isqrt(s.Input())))
			want.MustPut(int(i), uint16(s.Output()))
		}
	})
	g, w := got.Sum(), want.Sum()
	log.WithFields(logrus.Fields{"isqrt": g, "reference": w}).Debug("Digests")
	if g != w {
		return errors.Errorf("digest mismatch: %x != %x", g, w)
	}
	return nil
}
