package main

import (
	"math/rand"
	"sync/atomic"

	"github.com/neurlang/arith/datasets/squareroot"
	"github.com/neurlang/arith/parallel"
	"github.com/neurlang/arith/sqrt"
	"github.com/pkg/errors"
)

// verify checks every radicand for the 2*epsilon tolerance.
func verify(seed int64, samples, squares, threads int) error {
	var dataset = squareroot.Edges()
	dataset = append(dataset, squareroot.PerfectSquares(squares)...)
	dataset = append(dataset, squareroot.Random(rand.New(rand.NewSource(seed)), samples)...)

	var failed atomic.Uint64
	var first atomic.Int64
	first.Store(-1)
	parallel.ForEach(len(dataset), threads, func(j int) {
		var n = dataset[j]
		if !n.Tolerable(sqrt.Sqrt(float32(n))) {
			failed.Add(1)
			first.CompareAndSwap(-1, int64(j))
		}
	})
	success := 100 * (len(dataset) - int(failed.Load())) / len(dataset)
	println("[sqrt success rate]", success, "%", "with", failed.Load(), "errors")
	if failed.Load() > 0 {
		n := dataset[first.Load()]
		return errors.Errorf("%d radicands out of tolerance, e.g. Sqrt(%g) == %g",
			failed.Load(), n, sqrt.Sqrt(float32(n)))
	}
	return nil
}
