package parallel

import "sync"

// InsertBag is an unordered, concurrent, append-only container: many
// goroutines Insert concurrently, and Items drains everything
// accumulated so far. It replaces the teacher's ad hoc sync.Map used
// purely as a concurrent set in traversal (spec §5 insert_bag). Every
// Insert and InsertMany takes the same single mutex; InsertMany lets a
// goroutine publish a local batch under one lock acquisition.
type InsertBag[T any] struct {
	mu     sync.Mutex
	shards [][]T
}

// NewInsertBag returns an empty bag.
func NewInsertBag[T any]() *InsertBag[T] {
	return &InsertBag[T]{}
}

// Insert appends v. Safe for concurrent use.
func (b *InsertBag[T]) Insert(v T) {
	b.mu.Lock()
	if len(b.shards) == 0 {
		b.shards = append(b.shards, nil)
	}
	last := len(b.shards) - 1
	b.shards[last] = append(b.shards[last], v)
	b.mu.Unlock()
}

// InsertMany appends vs as a single shard, amortizing lock acquisition
// for a goroutine that accumulates a local batch before publishing it.
func (b *InsertBag[T]) InsertMany(vs []T) {
	if len(vs) == 0 {
		return
	}
	b.mu.Lock()
	b.shards = append(b.shards, vs)
	b.mu.Unlock()
}

// Items flattens every inserted value into one slice, in no
// guaranteed order, and resets the bag to empty.
func (b *InsertBag[T]) Items() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	var total int
	for _, s := range b.shards {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range b.shards {
		out = append(out, s...)
	}
	b.shards = nil
	return out
}

// Len reports the number of values currently held.
func (b *InsertBag[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	var total int
	for _, s := range b.shards {
		total += len(s)
	}
	return total
}
