package parallel

import (
	"math"
	"sync/atomic"
)

// CompareAndSwapBest retries an atomic compare-and-swap until target
// holds a value at least as good as candidate under better, or the
// swap succeeds: many goroutines may propose a value for the same
// accumulator concurrently, and only the best-scoring one wins. No
// package in this module calls it at present.
func CompareAndSwapBest(target *int64, candidate int64, better func(candidate, current int64) bool) {
	for {
		current := atomic.LoadInt64(target)
		if !better(candidate, current) {
			return
		}
		if atomic.CompareAndSwapInt64(target, current, candidate) {
			return
		}
	}
}

// AtomicAddFloatBits performs a lock-free add onto a float64 stored
// as its IEEE-754 bit pattern in a uint64, the pattern community
// detection's per-community degree-weight sums use so many goroutines
// can adjust one community's sum without a mutex.
func AtomicAddFloatBits(bits *uint64, delta float64) float64 {
	for {
		oldBits := atomic.LoadUint64(bits)
		oldVal := math.Float64frombits(oldBits)
		newVal := oldVal + delta
		newBits := math.Float64bits(newVal)
		if atomic.CompareAndSwapUint64(bits, oldBits, newBits) {
			return newVal
		}
	}
}
