package parallel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForEachDrainsWorklistToFixpoint(t *testing.T) {
	pool := newTestPool(t, 4)
	defer pool.Close()

	// BFS over a small chain 0 -> 1 -> 2 -> 3, starting from 0.
	adjacency := map[int][]int{0: {1}, 1: {2}, 2: {3}, 3: {}}
	var mu chanSet
	mu.init()

	ForEach(pool, []int{0}, func(item int, ctx *WorklistContext[int]) {
		mu.add(item)
		for _, next := range adjacency[item] {
			ctx.Push(next)
		}
	})

	require.ElementsMatch(t, []int{0, 1, 2, 3}, mu.items())
}

// chanSet is a tiny concurrent set used only by this test.
type chanSet struct {
	bag *InsertBag[int]
}

func (c *chanSet) init() { c.bag = NewInsertBag[int]() }
func (c *chanSet) add(v int) { c.bag.Insert(v) }
func (c *chanSet) items() []int { return c.bag.Items() }

func TestForEachEmptyInitialDoesNothing(t *testing.T) {
	pool := newTestPool(t, 2)
	defer pool.Close()
	ForEach(pool, []int{}, func(item int, ctx *WorklistContext[int]) {
		t.Fatal("should never run")
	})
}
