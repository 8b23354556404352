package properties

import "sync"

// ScalarType is a logical column type drawn from the closed set the
// core supports (spec §6).
type ScalarType uint8

const (
	TypeBool ScalarType = iota
	TypeU8
	TypeI8
	TypeU16
	TypeI16
	TypeU32
	TypeI32
	TypeU64
	TypeI64
	TypeF32
	TypeF64
	TypeString
)

// String returns a human-readable name for logging and error messages.
func (s ScalarType) String() string {
	switch s {
	case TypeBool:
		return "bool"
	case TypeU8:
		return "u8"
	case TypeI8:
		return "i8"
	case TypeU16:
		return "u16"
	case TypeI16:
		return "i16"
	case TypeU32:
		return "u32"
	case TypeI32:
		return "i32"
	case TypeU64:
		return "u64"
	case TypeI64:
		return "i64"
	case TypeF32:
		return "f32"
	case TypeF64:
		return "f64"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Scalar constrains the Go types a column may hold.
type Scalar interface {
	~bool | ~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 |
		~uint64 | ~int64 | ~float32 | ~float64 | ~string
}

// scalarTypeOf maps a Go scalar type parameter to its ScalarType tag.
func scalarTypeOf[T Scalar]() ScalarType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return TypeBool
	case uint8:
		return TypeU8
	case int8:
		return TypeI8
	case uint16:
		return TypeU16
	case int16:
		return TypeI16
	case uint32:
		return TypeU32
	case int32:
		return TypeI32
	case uint64:
		return TypeU64
	case int64:
		return TypeI64
	case float32:
		return TypeF32
	case float64:
		return TypeF64
	case string:
		return TypeString
	default:
		return TypeString // unreachable given the Scalar constraint
	}
}

// Column is the type-erased handle a Table stores; concrete data lives
// in a *TypedColumn[T]. Columns are immutable once published into a
// Table — mutation goes through Table.AddProperties/UpsertProperties/
// RemoveProperty, never through the Column itself.
type Column interface {
	Name() string
	Type() ScalarType
	Len() int
}

// TypedColumn is a contiguous array of one scalar type, addressed by
// property index. Element access is O(1). A TypedColumn obtained via
// GetColumn is a read-only alias over the table's backing array;
// one obtained via BorrowColumn for write additionally holds an
// exclusive lock released by the accompanying release function.
type TypedColumn[T Scalar] struct {
	name string
	data []T
	mu   *sync.RWMutex // shared with the owning Table's per-column lock
}

// Name returns the column's name.
func (c *TypedColumn[T]) Name() string { return c.name }

// Type returns the column's scalar type tag.
func (c *TypedColumn[T]) Type() ScalarType { return scalarTypeOf[T]() }

// Len returns the column's length (N for node properties, M for edge properties).
func (c *TypedColumn[T]) Len() int { return len(c.data) }

// At returns the value at property index i in O(1).
func (c *TypedColumn[T]) At(i int) T { return c.data[i] }

// Set writes the value at property index i in O(1). Callers holding a
// read-only view must not call Set; only a write-borrowed column
// (obtained via BorrowColumn) should be mutated.
func (c *TypedColumn[T]) Set(i int, v T) { c.data[i] = v }

// Slice returns the backing array by reference. Callers must not
// retain it past the view's lifetime or mutate it through a read-only
// view.
func (c *TypedColumn[T]) Slice() []T { return c.data }
