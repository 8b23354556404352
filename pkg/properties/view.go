package properties

import (
	"fmt"

	"github.com/dd0wney/parageon/pkg/errs"
)

// ColumnSpec names one column and the scalar type it is expected to
// hold; a typed view is built from a list of these (spec §4.3: "a list
// of property names and a compile-time list of expected scalar
// types").
type ColumnSpec struct {
	Name string
	Type ScalarType
}

// View is a read-only typed view: a tuple of column references
// validated once at construction. Element access on the individual
// columns (via ViewColumn) is O(1).
type View struct {
	table   *Table
	columns []Column
}

// OpenView validates that every spec names an existing column of the
// expected type and returns a read-only View over them. Construction
// fails fast with ErrNotFound/ErrTypeError rather than partially
// succeeding.
func OpenView(t *Table, specs []ColumnSpec) (*View, error) {
	cols, err := resolveColumns(t, specs)
	if err != nil {
		return nil, err
	}
	return &View{table: t, columns: cols}, nil
}

// ViewColumn returns the idx-th column of v as a *TypedColumn[T].
// Fails with ErrTypeError if the spec at idx does not match T, and
// with ErrInvalidArgument if idx is out of range.
func ViewColumn[T Scalar](v *View, idx int) (*TypedColumn[T], error) {
	if idx < 0 || idx >= len(v.columns) {
		return nil, errs.InvalidArgument("ViewColumn", "index out of range")
	}
	typed, ok := v.columns[idx].(*TypedColumn[T])
	if !ok {
		return nil, errs.TypeMismatch("ViewColumn", "property", v.columns[idx].Name(),
			fmt.Sprintf("requested %s, column is %s", scalarTypeOf[T](), v.columns[idx].Type()))
	}
	return typed, nil
}

// Len returns the number of columns in the view.
func (v *View) Len() int { return len(v.columns) }

// WriteView is a read-write typed view: like View, but every column is
// held under an exclusive write borrow until Release is called.
// Holding a WriteView over a column blocks every ReadColumn,
// BorrowColumn and OpenWriteView caller on that column (spec §4.3, §5);
// GetColumn and OpenView take no lock and are not blocked.
type WriteView struct {
	columns  []Column
	releases []func()
}

// OpenWriteView validates specs exactly like OpenView, then takes an
// exclusive write lock on every named column. If any lock cannot be
// established (column missing/type mismatch), locks already taken by
// this call are released before the error is returned.
func OpenWriteView(t *Table, specs []ColumnSpec) (*WriteView, error) {
	cols, err := resolveColumns(t, specs)
	if err != nil {
		return nil, err
	}

	wv := &WriteView{columns: make([]Column, 0, len(cols)), releases: make([]func(), 0, len(cols))}
	for _, c := range cols {
		if locker, ok := c.(writeLocker); ok {
			release, lockErr := locker.lockForWrite()
			if lockErr != nil {
				wv.Release()
				return nil, lockErr
			}
			wv.columns = append(wv.columns, c)
			wv.releases = append(wv.releases, release)
			continue
		}
		wv.Release()
		return nil, errs.Assertion("OpenWriteView", "column does not support write borrowing")
	}
	return wv, nil
}

// Release unlocks every column held by the write view. Safe to call
// more than once; subsequent calls are no-ops.
func (wv *WriteView) Release() {
	for _, release := range wv.releases {
		release()
	}
	wv.releases = nil
}

// Len returns the number of columns in the write view.
func (wv *WriteView) Len() int { return len(wv.columns) }

// WriteViewColumn returns the idx-th column of wv as a *TypedColumn[T].
func WriteViewColumn[T Scalar](wv *WriteView, idx int) (*TypedColumn[T], error) {
	if idx < 0 || idx >= len(wv.columns) {
		return nil, errs.InvalidArgument("WriteViewColumn", "index out of range")
	}
	typed, ok := wv.columns[idx].(*TypedColumn[T])
	if !ok {
		return nil, errs.TypeMismatch("WriteViewColumn", "property", wv.columns[idx].Name(),
			fmt.Sprintf("requested %s, column is %s", scalarTypeOf[T](), wv.columns[idx].Type()))
	}
	return typed, nil
}

// writeLocker lets view.go take an exclusive lock on a type-erased
// Column without knowing its scalar type.
type writeLocker interface {
	lockForWrite() (release func(), err error)
}

func (c *TypedColumn[T]) lockForWrite() (func(), error) {
	if c.mu == nil {
		return nil, errs.Assertion("lockForWrite", "column published without a lock")
	}
	c.mu.Lock()
	return func() { c.mu.Unlock() }, nil
}

func resolveColumns(t *Table, specs []ColumnSpec) ([]Column, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cols := make([]Column, len(specs))
	for i, spec := range specs {
		pos, ok := t.index[spec.Name]
		if !ok {
			return nil, errs.NotFound("OpenView", "property", spec.Name)
		}
		col := t.columns[pos]
		if col.Type() != spec.Type {
			return nil, errs.TypeMismatch("OpenView", "property", spec.Name,
				fmt.Sprintf("expected %s, got %s", spec.Type, col.Type()))
		}
		cols[i] = col
	}
	return cols, nil
}
