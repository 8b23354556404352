package properties

import (
	"fmt"
	"sync"

	"github.com/dd0wney/parageon/pkg/errs"
)

// Table is an ordered collection of named columns, all of the same
// length (N for a node table, M for an edge table), addressed by
// property index. Columns are immutable once published; mutation goes
// through AddProperties/UpsertProperties/RemoveProperty at the table
// level (spec §4.3).
type Table struct {
	mu      sync.RWMutex // protects the schema: names, order, index map
	length  int
	columns []Column
	locks   []*sync.RWMutex // one per column, parallel to columns
	index   map[string]int  // name -> position in columns/locks
}

// NewTable creates an empty table fixed at the given length (the
// table's node or edge count).
func NewTable(length int) *Table {
	return &Table{
		length: length,
		index:  make(map[string]int),
	}
}

// Len returns the table's fixed length (N or M).
func (t *Table) Len() int {
	return t.length
}

// Names returns the names of every column currently in the table, in
// insertion order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name()
	}
	return out
}

// AddProperties appends columns to the table. Fails with
// ErrAlreadyExists if any name already exists; on failure no columns
// from this call are added.
func (t *Table) AddProperties(columns ...Column) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range columns {
		if c.Len() != t.length {
			return errs.InvalidArgument("AddProperties",
				fmt.Sprintf("column %q has length %d, table length is %d", c.Name(), c.Len(), t.length))
		}
		if _, exists := t.index[c.Name()]; exists {
			return errs.AlreadyExists("AddProperties", "property", c.Name())
		}
	}
	// Also guard against duplicate names within this single call.
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if seen[c.Name()] {
			return errs.AlreadyExists("AddProperties", "property", c.Name())
		}
		seen[c.Name()] = true
	}

	for _, c := range columns {
		t.publish(c)
	}
	return nil
}

// UpsertProperties appends new columns or replaces existing ones by name.
func (t *Table) UpsertProperties(columns ...Column) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range columns {
		if c.Len() != t.length {
			return errs.InvalidArgument("UpsertProperties",
				fmt.Sprintf("column %q has length %d, table length is %d", c.Name(), c.Len(), t.length))
		}
	}
	for _, c := range columns {
		if pos, exists := t.index[c.Name()]; exists {
			setLock(c, t.locks[pos])
			t.columns[pos] = c
			continue
		}
		t.publish(c)
	}
	return nil
}

// RemoveProperty drops the named column. Fails with ErrNotFound if absent.
func (t *Table) RemoveProperty(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos, ok := t.index[name]
	if !ok {
		return errs.NotFound("RemoveProperty", "property", name)
	}

	last := len(t.columns) - 1
	moved := t.columns[last].Name()
	t.columns[pos] = t.columns[last]
	t.locks[pos] = t.locks[last]
	t.columns = t.columns[:last]
	t.locks = t.locks[:last]
	delete(t.index, name)
	if moved != name {
		t.index[moved] = pos
	}
	return nil
}

// HasProperty reports whether name exists in the table.
func (t *Table) HasProperty(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.index[name]
	return ok
}

// publish appends c as a brand-new column, wiring its lock. Caller
// must hold t.mu for writing.
func (t *Table) publish(c Column) {
	lock := &sync.RWMutex{}
	setLock(c, lock)
	t.index[c.Name()] = len(t.columns)
	t.columns = append(t.columns, c)
	t.locks = append(t.locks, lock)
}

// setLock wires col's shared per-column mutex if col is a *TypedColumn[T].
// It dispatches through the lockSetter interface below, which every
// TypedColumn[T] implements, because Go cannot type-switch over every
// instantiation of a generic type.
func setLock(col Column, lock *sync.RWMutex) {
	if setter, ok := col.(lockSetter); ok {
		setter.setLock(lock)
	}
}

// lockSetter lets table.go wire a shared mutex into a type-erased
// Column without needing to know its scalar type.
type lockSetter interface {
	setLock(*sync.RWMutex)
}

func (c *TypedColumn[T]) setLock(mu *sync.RWMutex) { c.mu = mu }

// NewColumn constructs a published-ready TypedColumn[T]; its lock is
// wired in when it is added to a Table.
func NewColumn[T Scalar](name string, data []T) *TypedColumn[T] {
	return &TypedColumn[T]{name: name, data: data}
}

// GetColumn borrows the named column as a read-only typed array. Fails
// with ErrNotFound when absent, ErrTypeError when T does not match the
// column's logical type.
func GetColumn[T Scalar](t *Table, name string) (*TypedColumn[T], error) {
	t.mu.RLock()
	pos, ok := t.index[name]
	if !ok {
		t.mu.RUnlock()
		return nil, errs.NotFound("GetProperty", "property", name)
	}
	col := t.columns[pos]
	t.mu.RUnlock()

	typed, ok := col.(*TypedColumn[T])
	if !ok {
		return nil, errs.TypeMismatch("GetProperty", "property", name,
			fmt.Sprintf("column is %s", col.Type()))
	}
	return typed, nil
}

// BorrowColumn borrows the named column for exclusive read-write
// access. The returned release function must be called exactly once
// to release the write lock; until then no ReadColumn, BorrowColumn or
// OpenWriteView caller on the same column may proceed (spec §5
// shared-resource discipline). GetColumn and OpenView take no lock and
// are not blocked.
func BorrowColumn[T Scalar](t *Table, name string) (col *TypedColumn[T], release func(), err error) {
	typed, err := GetColumn[T](t, name)
	if err != nil {
		return nil, nil, err
	}
	if typed.mu == nil {
		return nil, nil, errs.Assertion("BorrowColumn", "column published without a lock")
	}
	typed.mu.Lock()
	return typed, func() { typed.mu.Unlock() }, nil
}

// ReadColumn borrows the named column for shared read access,
// preventing a concurrent writer (see BorrowColumn) from mutating it
// until release is called.
func ReadColumn[T Scalar](t *Table, name string) (col *TypedColumn[T], release func(), err error) {
	typed, err := GetColumn[T](t, name)
	if err != nil {
		return nil, nil, err
	}
	if typed.mu == nil {
		return nil, nil, errs.Assertion("ReadColumn", "column published without a lock")
	}
	typed.mu.RLock()
	return typed, func() { typed.mu.RUnlock() }, nil
}
