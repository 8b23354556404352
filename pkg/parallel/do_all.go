package parallel

import (
	"runtime"
	"sync"
)

// chunkSize divides total items across workers using the same
// overflow-safe ceiling division the teacher's traversal chunking
// used, so no worker starves while another blocks on a huge remainder.
func chunkSize(total, workers int) int {
	if total <= 0 || workers <= 0 {
		return 1
	}
	size := int((int64(total) + int64(workers) - 1) / int64(workers))
	if size < 1 {
		size = 1
	}
	return size
}

// DoAll runs fn(i) for every i in [0, n), splitting the range into
// contiguous chunks across pool's workers and blocking until every
// chunk finishes (spec §5 parallel_for / do_all).
func DoAll(pool *WorkerPool, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	size := chunkSize(n, pool.NumWorkers())

	var wg sync.WaitGroup
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		wg.Add(1)
		lo, hi := start, end
		pool.Submit(func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		})
	}
	wg.Wait()
}

// DoAllDefault runs DoAll against a throwaway pool sized to
// runtime.NumCPU(), for callers that do not manage a shared pool
// explicitly.
func DoAllDefault(n int, fn func(i int)) {
	pool, err := NewWorkerPool(runtime.NumCPU())
	if err != nil {
		// NumCPU() is always well within MaxWorkers; this path exists
		// only to satisfy the error-returning constructor.
		pool, _ = NewWorkerPool(1)
	}
	defer pool.Close()
	DoAll(pool, n, fn)
}
