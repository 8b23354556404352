package pools

import (
	"sync"
)

// Uint32Pool pools slices of uint32 for node-id and edge-destination
// lists — adapted from Uint64Pool's size-class scheme for the
// narrower NodeID representation used by the topology views.
type Uint32Pool struct {
	small  sync.Pool // <= 16 elements
	medium sync.Pool // <= 64 elements
	large  sync.Pool // <= 256 elements
}

// NewUint32Pool creates a new uint32 slice pool.
func NewUint32Pool() *Uint32Pool {
	return &Uint32Pool{
		small: sync.Pool{
			New: func() any {
				s := make([]uint32, 0, 16)
				return &s
			},
		},
		medium: sync.Pool{
			New: func() any {
				s := make([]uint32, 0, 64)
				return &s
			},
		},
		large: sync.Pool{
			New: func() any {
				s := make([]uint32, 0, 256)
				return &s
			},
		},
	}
}

// Get returns a uint32 slice with at least the requested capacity.
func (p *Uint32Pool) Get(size int) []uint32 {
	var pool *sync.Pool
	switch {
	case size <= 16:
		pool = &p.small
	case size <= 64:
		pool = &p.medium
	case size <= 256:
		pool = &p.large
	default:
		return make([]uint32, 0, size)
	}

	sp, ok := pool.Get().(*[]uint32)
	if !ok || cap(*sp) < size {
		return make([]uint32, 0, size)
	}
	return (*sp)[:0]
}

// Put returns a uint32 slice to the pool.
func (p *Uint32Pool) Put(s []uint32) {
	c := cap(s)
	if c > 10000 {
		return // Don't pool very large slices
	}

	s = s[:0]

	var pool *sync.Pool
	switch {
	case c <= 16:
		pool = &p.small
	case c <= 64:
		pool = &p.medium
	case c <= 256:
		pool = &p.large
	default:
		return
	}

	pool.Put(&s)
}

// Default global uint32 pool
var defaultUint32Pool = NewUint32Pool()

// GetUint32s returns a uint32 slice from the default pool.
func GetUint32s(size int) []uint32 {
	return defaultUint32Pool.Get(size)
}

// PutUint32s returns a uint32 slice to the default pool.
func PutUint32s(s []uint32) {
	defaultUint32Pool.Put(s)
}
