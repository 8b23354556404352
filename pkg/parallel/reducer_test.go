package parallel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReducerSumsAcrossWorkers(t *testing.T) {
	pool := newTestPool(t, 4)
	defer pool.Close()

	n := 10000
	reducer := NewReducer(pool.NumWorkers(), 0, func(a, b int) int { return a + b })

	DoAllIndexed(pool, n, func(i, slot int) {
		reducer.Update(slot, i)
	})

	expected := n * (n - 1) / 2
	require.Equal(t, expected, reducer.Value())
}

func TestReducerIdentityWhenEmpty(t *testing.T) {
	reducer := NewReducer(4, 0, func(a, b int) int { return a + b })
	require.Equal(t, 0, reducer.Value())
}

func TestPerThreadIsolatesSlots(t *testing.T) {
	pool := newTestPool(t, 4)
	defer pool.Close()

	pt := NewPerThread(pool.NumWorkers(), func() int { return 0 })
	DoAllIndexed(pool, 100, func(i, slot int) {
		pt.Set(slot, pt.Get(slot)+1)
	})

	var total int
	for _, v := range pt.All() {
		total += v
	}
	require.Equal(t, 100, total)
}
