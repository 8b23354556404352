package parallel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkerPoolOverflow(t *testing.T) {
	_, err := NewWorkerPool(math.MaxInt)
	require.ErrorIs(t, err, ErrTooManyWorkers)
}

func TestWorkerPoolReasonableSize(t *testing.T) {
	testCases := []int{1, 10, 100, 1000, 10000}

	for _, workers := range testCases {
		pool := newTestPool(t, workers)
		require.Equal(t, workers, pool.workers)
		pool.Close()
	}
}

func TestWorkerPoolZeroWorkers(t *testing.T) {
	pool := newTestPool(t, 0)
	require.Equal(t, 1, pool.workers)
	pool.Close()
}

func TestWorkerPoolNegativeWorkers(t *testing.T) {
	pool := newTestPool(t, -5)
	require.Equal(t, 1, pool.workers)
	pool.Close()
}

func TestWorkerPoolMaxSafe(t *testing.T) {
	largeWorkers := 1_000_000

	pool := newTestPool(t, largeWorkers)
	require.Equal(t, largeWorkers, pool.workers)
	require.Equal(t, largeWorkers*2, cap(pool.taskQueue))
	pool.Close()
}

func TestWorkerPoolSubmitAndExecute(t *testing.T) {
	pool := newTestPool(t, 4)
	defer pool.Close()

	executed := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		pool.Submit(func() { executed <- true })
	}
	pool.Close()
	require.Len(t, executed, 10)
}

func BenchmarkWorkerPoolSmall(b *testing.B) {
	pool, err := NewWorkerPool(4)
	if err != nil {
		b.Fatal(err)
	}
	defer pool.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Submit(func() {})
	}
}

func BenchmarkWorkerPoolLarge(b *testing.B) {
	pool, err := NewWorkerPool(100)
	if err != nil {
		b.Fatal(err)
	}
	defer pool.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Submit(func() {})
	}
}
