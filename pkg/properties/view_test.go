package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/parageon/pkg/properties"
)

func TestOpenViewValidatesAndReads(t *testing.T) {
	table := properties.NewTable(2)
	require.NoError(t, table.AddProperties(
		properties.NewColumn("weight", []float64{1.5, 2.5}),
		properties.NewColumn("label", []uint32{10, 20}),
	))

	view, err := properties.OpenView(table, []properties.ColumnSpec{
		{Name: "weight", Type: properties.TypeF64},
		{Name: "label", Type: properties.TypeU32},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Len())

	weights, err := properties.ViewColumn[float64](view, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, weights.At(0))

	labels, err := properties.ViewColumn[uint32](view, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(20), labels.At(1))
}

func TestOpenViewFailsOnTypeMismatch(t *testing.T) {
	table := properties.NewTable(1)
	require.NoError(t, table.AddProperties(properties.NewColumn("weight", []float64{1.0})))

	_, err := properties.OpenView(table, []properties.ColumnSpec{
		{Name: "weight", Type: properties.TypeU32},
	})
	assert.Error(t, err)
}

func TestOpenViewFailsOnMissingColumn(t *testing.T) {
	table := properties.NewTable(1)
	_, err := properties.OpenView(table, []properties.ColumnSpec{
		{Name: "missing", Type: properties.TypeU32},
	})
	assert.Error(t, err)
}

func TestOpenWriteViewExclusiveUntilRelease(t *testing.T) {
	table := properties.NewTable(2)
	require.NoError(t, table.AddProperties(properties.NewColumn("rank", []uint32{0, 0})))

	wv, err := properties.OpenWriteView(table, []properties.ColumnSpec{
		{Name: "rank", Type: properties.TypeU32},
	})
	require.NoError(t, err)

	col, err := properties.WriteViewColumn[uint32](wv, 0)
	require.NoError(t, err)
	col.Set(0, 7)
	col.Set(1, 8)
	wv.Release()

	got, err := properties.GetColumn[uint32](table, "rank")
	require.NoError(t, err)
	assert.Equal(t, uint32(7), got.At(0))
	assert.Equal(t, uint32(8), got.At(1))
}

func TestOpenWriteViewReleaseIsIdempotent(t *testing.T) {
	table := properties.NewTable(1)
	require.NoError(t, table.AddProperties(properties.NewColumn("rank", []uint32{0})))

	wv, err := properties.OpenWriteView(table, []properties.ColumnSpec{
		{Name: "rank", Type: properties.TypeU32},
	})
	require.NoError(t, err)
	wv.Release()
	assert.NotPanics(t, wv.Release)
}
