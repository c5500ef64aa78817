// Package parallel provides chunked parallel execution over index ranges.
package parallel

import (
	"runtime"
	"sync"
)

// ForRange splits [0, items) into per-core chunks and runs fn on each chunk
// concurrently, blocking until every chunk is done.
func ForRange(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ForRangeThreshold runs fn sequentially when items is at or below threshold,
// otherwise falls back to ForRange. Small inputs are not worth the goroutine
// scheduling overhead.
func ForRangeThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	ForRange(items, fn)
}
