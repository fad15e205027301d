package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForEach(t *testing.T) {
	for _, limit := range []int{-1, 0, 1, 3, 1000} {
		var seen = make([]int32, 500)
		ForEach(len(seen), limit, func(i int) {
			atomic.AddInt32(&seen[i], 1)
		})
		for i, v := range seen {
			if v != 1 {
				t.Errorf("limit %d: index %d visited %d times", limit, i, v)
			}
		}
	}
	ForEach(0, 4, func(i int) {
		t.Errorf("body called for empty loop")
	})
}

func TestForRange(t *testing.T) {
	var sum atomic.Uint64
	var blocks atomic.Int32
	ForRange(10, 1010, 64, 4, func(lo, hi uint64) {
		blocks.Add(1)
		if hi-lo > 64 || hi <= lo {
			t.Errorf("bad block [%d, %d)", lo, hi)
		}
		for i := lo; i < hi; i++ {
			sum.Add(i)
		}
	})
	if want := uint64((10 + 1009) * 1000 / 2); sum.Load() != want {
		t.Errorf("range sum %d, want %d", sum.Load(), want)
	}
	if blocks.Load() != 16 {
		t.Errorf("got %d blocks, want 16", blocks.Load())
	}
}

func TestLoopUntil(t *testing.T) {
	var count atomic.Uint64
	if Loop(4).LoopUntil(100000, func(i uint32, _ LoopStopper) bool {
		count.Add(1)
		return false
	}) {
		t.Errorf("loop reported a stop")
	}
	if count.Load() != 100000 {
		t.Errorf("visited %d indices, want 100000", count.Load())
	}

	var found atomic.Uint32
	if !Loop(8).LoopUntil(1<<32, func(i uint32, _ LoopStopper) bool {
		if i == 77777 {
			found.Store(i)
			return true
		}
		return false
	}) {
		t.Errorf("loop did not stop")
	}
	if found.Load() != 77777 {
		t.Errorf("found %d, want 77777", found.Load())
	}
}

// digest test
func TestDigest(t *testing.T) {
	d1 := NewDigest(100)
	for n := 0; n < 100; n++ {
		d1.MustPut(n, uint16(n))
	}
	d2 := NewDigest(100)
	ForEach(100, 8, func(n int) {
		d2.MustPut(99-n, uint16(99-n))
	})
	s1, s2 := d1.Sum(), d2.Sum()
	if s1 != s2 {
		t.Errorf("digest depends on write order: %x != %x", s1, s2)
	}
	d3 := NewDigest(100)
	for n := 0; n < 100; n++ {
		d3.MustPut(n, uint16(n+1))
	}
	if d3.Sum() == s1 {
		t.Errorf("digest ignores values: %x", s1)
	}
}

func TestDigestDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("duplicate write did not panic")
		}
	}()
	d := NewDigest(10)
	d.MustPut(3, 1)
	d.MustPut(3, 1)
}
