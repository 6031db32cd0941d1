// Package parallel contains the bounded parallel ForEach and the ordered digest Hasher.
package parallel

import "github.com/sourcegraph/conc/pool"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length. A panic in body is
// propagated to the caller once all goroutines finished.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = Parallelism()
	}
	if length <= 0 {
		return
	}
	if limit > length {
		limit = length
	}

	p := pool.New().WithMaxGoroutines(limit)
	for i := 0; i < length; i++ {
		i := i
		p.Go(func() {
			body(i)
		})
	}
	p.Wait()
}
