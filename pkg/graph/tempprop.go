package graph

import (
	"github.com/google/uuid"

	"github.com/dd0wney/parageon/pkg/properties"
)

// TempProperty is a scoped scratch column on a Table: a column with a
// generated name guaranteed not to collide with a caller's property,
// automatically removed when Close is called on every code path,
// including error returns (spec §3, §9 "algorithms needing scratch
// storage allocate and release temporary properties around their own
// lifetime, never leaking into the caller's schema").
type TempProperty[T properties.Scalar] struct {
	table *properties.Table
	name  string
	col   *properties.TypedColumn[T]
}

// NewTempProperty allocates a scratch column of length table.Len()
// filled with zero, published under a uuid-derived name so repeated
// calls (even concurrent ones, even for the same logical purpose)
// never collide.
func NewTempProperty[T properties.Scalar](table *properties.Table, purpose string) (*TempProperty[T], error) {
	name := "__tmp_" + purpose + "_" + uuid.NewString()
	data := make([]T, table.Len())
	col := properties.NewColumn(name, data)
	if err := table.AddProperties(col); err != nil {
		return nil, err
	}
	return &TempProperty[T]{table: table, name: name, col: col}, nil
}

// Column returns the underlying typed column for direct At/Set access.
func (t *TempProperty[T]) Column() *properties.TypedColumn[T] { return t.col }

// Close removes the scratch column from its table, ignoring any error
// from RemoveProperty. Calling Close more than once is safe; the first
// call clears the table reference, so later calls return immediately
// (the guard is meant to be deferred unconditionally at the call site).
func (t *TempProperty[T]) Close() {
	if t.table == nil {
		return
	}
	_ = t.table.RemoveProperty(t.name)
	t.table = nil
}
