package parallel

// Reducer accumulates a per-worker partial value and combines all
// partials into one result with an associative, commutative combine
// function (spec §5 reducers), trading a bit of memory for no shared
// atomic in the hot loop. No package in this module calls it at present.
type Reducer[T any] struct {
	identity T
	combine  func(a, b T) T
	partials []T
}

// NewReducer creates a Reducer with one partial slot per worker,
// each initialized to identity.
func NewReducer[T any](workers int, identity T, combine func(a, b T) T) *Reducer[T] {
	if workers < 1 {
		workers = 1
	}
	partials := make([]T, workers)
	for i := range partials {
		partials[i] = identity
	}
	return &Reducer[T]{identity: identity, combine: combine, partials: partials}
}

// Update combines v into worker slot's partial. slot must be in
// [0, workers); DoAllIndexed below supplies a valid slot to its
// callback automatically.
func (r *Reducer[T]) Update(slot int, v T) {
	r.partials[slot] = r.combine(r.partials[slot], v)
}

// Value combines every partial into the final reduced value.
func (r *Reducer[T]) Value() T {
	total := r.identity
	for _, p := range r.partials {
		total = r.combine(total, p)
	}
	return total
}

// DoAllIndexed is DoAll with an additional worker-slot argument passed
// to fn, for use with Reducer.Update and PerThread without false
// sharing across chunks assigned to the same worker.
func DoAllIndexed(pool *WorkerPool, n int, fn func(i, slot int)) {
	if n <= 0 {
		return
	}
	workers := pool.NumWorkers()
	size := chunkSize(n, workers)

	done := make(chan struct{}, (n+size-1)/size+1)
	slot := 0
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		lo, hi, s := start, end, slot
		slot++
		pool.Submit(func() {
			for i := lo; i < hi; i++ {
				fn(i, s%workers)
			}
			done <- struct{}{}
		})
	}
	submitted := slot
	for i := 0; i < submitted; i++ {
		<-done
	}
}
