package parallel

import (
	"runtime"
	"sync"
)

var (
	rootOnce sync.Once
	rootPool *WorkerPool
)

// Root returns the process-wide default pool, sized to
// runtime.NumCPU(), created on first use (spec §5, "algorithms default
// to a shared root execution context unless given an explicit one").
// Callers that need isolated lifetime control (tests, benchmarks)
// should construct their own WorkerPool instead.
func Root() *WorkerPool {
	rootOnce.Do(func() {
		pool, err := NewWorkerPool(runtime.NumCPU())
		if err != nil {
			pool, _ = NewWorkerPool(1)
		}
		rootPool = pool
	})
	return rootPool
}
