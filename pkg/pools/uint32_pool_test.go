package pools

import (
	"sync"
	"testing"
)

func TestUint32Pool_Get(t *testing.T) {
	pool := NewUint32Pool()

	tests := []struct {
		name   string
		size   int
		minCap int
	}{
		{"small", 8, 8},
		{"small_max", 16, 16},
		{"medium", 32, 32},
		{"medium_max", 64, 64},
		{"large", 128, 128},
		{"large_max", 256, 256},
		{"oversized", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pool.Get(tt.size)
			if len(s) != 0 {
				t.Errorf("Get(%d) length = %d, want 0", tt.size, len(s))
			}
			if cap(s) < tt.minCap {
				t.Errorf("Get(%d) capacity = %d, want >= %d", tt.size, cap(s), tt.minCap)
			}
		})
	}
}

func TestUint32Pool_PutAndReuse(t *testing.T) {
	pool := NewUint32Pool()

	for i := 0; i < 10; i++ {
		s := pool.Get(16)
		s = append(s, 1, 2, 3, 4, 5)
		pool.Put(s)
	}

	s := pool.Get(16)
	if len(s) != 0 {
		t.Errorf("After Put, Get returned slice with length %d, want 0", len(s))
	}
}

func TestUint32Pool_OversizedNotPooled(t *testing.T) {
	pool := NewUint32Pool()
	large := make([]uint32, 20000)
	pool.Put(large) // Should not panic
}

func TestDefaultUint32Pool(t *testing.T) {
	s := GetUint32s(32)
	if cap(s) < 32 {
		t.Errorf("GetUint32s(32) capacity = %d, want >= 32", cap(s))
	}
	PutUint32s(s)
}

func TestUint32Pool_Concurrent(t *testing.T) {
	pool := NewUint32Pool()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := pool.Get(32)
				s = append(s, 1, 2, 3, 4, 5, 6, 7, 8)
				pool.Put(s)
			}
		}()
	}

	wg.Wait()
}

func BenchmarkUint32Pool_Get(b *testing.B) {
	pool := NewUint32Pool()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := pool.Get(32)
		pool.Put(s)
	}
}

func BenchmarkUint32Pool_GetWithoutPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = make([]uint32, 0, 32)
	}
}
