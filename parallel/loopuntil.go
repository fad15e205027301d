// package parallel contains parallel LoopUntil(), ForEach() and ForRange() plus the Digest primitive.
package parallel

import (
	"sync"
	"sync/atomic"
)

// LoopStopper is an interface to check if the loop should stop.
type LoopStopper interface {

	// Load reports true if the loop should stop.
	Load() bool
}

// Loop represents the number of goroutines to run.
type Loop int

// loopBlock is the number of indices a goroutine claims at once.
const loopBlock = 1 << 12

// LoopUntil starts 'l' goroutines that visit every index in [0, end) until one
// of them stops the loop. end may be as large as 1<<32, covering every uint32.
// Indices are claimed in blocks, so several goroutines may still be finishing
// their yields after the stop. It reports whether a yield stopped the loop.
func (l Loop) LoopUntil(end uint64, yield func(i uint32, ender LoopStopper) bool) bool {
	var (
		next    atomic.Uint64 // first unclaimed index
		ender   atomic.Bool   // set once any yield returns true
		wg      sync.WaitGroup
		workers = int(l)
	)
	if workers <= 0 {
		workers = 1
	}
	if end > 1<<32 {
		end = 1 << 32
	}

	wg.Add(workers)
	for n := 0; n < workers; n++ {
		go func() {
			defer wg.Done()
			for !ender.Load() {
				lo := next.Add(loopBlock) - loopBlock
				if lo >= end {
					return
				}
				hi := lo + loopBlock
				if hi > end {
					hi = end
				}
				for i := lo; i < hi; i++ {
					if ender.Load() {
						return
					}
					if yield(uint32(i), &ender) {
						ender.Store(true)
						return
					}
				}
			}
		}()
	}

	wg.Wait()
	return ender.Load()
}
