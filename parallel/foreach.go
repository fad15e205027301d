package parallel

import "sync"

// ForEach calls body for every integer from 0 to length-1 using at most
// limit concurrent goroutines. It returns once every call has finished.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}
	if limit > length {
		limit = length
	}

	work := make(chan int, limit)
	var wg sync.WaitGroup
	wg.Add(limit)
	for w := 0; w < limit; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				body(i)
			}
		}()
	}
	for i := 0; i < length; i++ {
		work <- i
	}
	close(work)
	wg.Wait()
}

// ForRange splits [lo, hi) into blocks of at most size values and hands
// each block to body, at most limit blocks at a time.
func ForRange(lo, hi uint64, size uint64, limit int, body func(lo, hi uint64)) {
	if hi <= lo {
		return
	}
	if size == 0 {
		size = 1
	}
	blocks := (hi - lo + size - 1) / size
	ForEach(int(blocks), limit, func(b int) {
		start := lo + uint64(b)*size
		end := start + size
		if end > hi {
			end = hi
		}
		body(start, end)
	})
}
