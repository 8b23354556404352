package parallel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertBagConcurrentInsert(t *testing.T) {
	bag := NewInsertBag[int]()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			bag.Insert(i)
		}()
	}
	wg.Wait()

	items := bag.Items()
	require.Len(t, items, 100)

	seen := make(map[int]bool, 100)
	for _, v := range items {
		seen[v] = true
	}
	require.Len(t, seen, 100)
}

func TestInsertBagItemsDrainsAndResets(t *testing.T) {
	bag := NewInsertBag[string]()
	bag.Insert("a")
	bag.Insert("b")
	require.Len(t, bag.Items(), 2)
	require.Equal(t, 0, bag.Len())
	require.Empty(t, bag.Items())
}

func TestInsertBagInsertMany(t *testing.T) {
	bag := NewInsertBag[int]()
	bag.InsertMany([]int{1, 2, 3})
	bag.InsertMany(nil)
	require.Equal(t, 3, bag.Len())
}
