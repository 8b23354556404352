package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/parageon/pkg/graph"
	"github.com/dd0wney/parageon/pkg/properties"
)

func TestTempPropertyDoesNotLeakIntoSchema(t *testing.T) {
	table := properties.NewTable(4)
	before := table.Names()

	tmp, err := graph.NewTempProperty[float64](table, "scratch")
	require.NoError(t, err)
	assert.NotEmpty(t, table.Names())

	tmp.Column().Set(0, 1.5)
	assert.Equal(t, 1.5, tmp.Column().At(0))

	tmp.Close()
	assert.Equal(t, before, table.Names())
}

func TestTempPropertyCloseIsIdempotent(t *testing.T) {
	table := properties.NewTable(2)
	tmp, err := graph.NewTempProperty[uint32](table, "scratch")
	require.NoError(t, err)
	tmp.Close()
	assert.NotPanics(t, func() { tmp.Close() })
}

func TestTwoTempPropertiesSamePurposeDoNotCollide(t *testing.T) {
	table := properties.NewTable(1)
	a, err := graph.NewTempProperty[uint32](table, "gain")
	require.NoError(t, err)
	defer a.Close()
	b, err := graph.NewTempProperty[uint32](table, "gain")
	require.NoError(t, err)
	defer b.Close()
	assert.Len(t, table.Names(), 2)
}
