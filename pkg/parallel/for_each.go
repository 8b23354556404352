package parallel

// ForEach runs a worklist to fixpoint: fn processes one item and may
// push follow-up items onto the ctx passed to it; every item pushed
// during a round is processed in the next round, in parallel, until no
// round produces new work (spec §5 parallel_for_each). This is the
// same level-synchronous shape as the teacher's BFS traversal
// (currentLevel processed in parallel chunks, producing nextLevel),
// generalized from node ids to an arbitrary item type.
type WorklistContext[T any] struct {
	bag *InsertBag[T]
}

// Push adds an item to the next round's worklist.
func (c *WorklistContext[T]) Push(item T) {
	c.bag.Insert(item)
}

// ForEach drains initial and every item pushed by fn during processing,
// round by round, until a round yields nothing new.
func ForEach[T any](pool *WorkerPool, initial []T, fn func(item T, ctx *WorklistContext[T])) {
	current := initial
	for len(current) > 0 {
		next := NewInsertBag[T]()
		ctx := &WorklistContext[T]{bag: next}

		DoAll(pool, len(current), func(i int) {
			fn(current[i], ctx)
		})

		current = next.Items()
	}
}
