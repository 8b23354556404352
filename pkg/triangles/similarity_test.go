package triangles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/parageon/pkg/errs"
	"github.com/dd0wney/parageon/pkg/properties"
	"github.com/dd0wney/parageon/pkg/triangles"
)

func TestJaccardSimilarityOnClique(t *testing.T) {
	view := diamond() // K4: every pair of {0,1,2,3} connected.

	result, err := triangles.JaccardSimilarity(view, 0)
	require.NoError(t, err)

	// Node 0 compared to itself: identical neighbor sets, similarity 1.
	assert.Equal(t, 1.0, result.PerNode[0])
	// Every other node shares 2 of base's 3 neighbors and has 3 of its
	// own: |intersection|=2, |union|=3+3-2=4, similarity 0.5.
	assert.Equal(t, 0.5, result.PerNode[1])
	assert.Equal(t, 0.5, result.PerNode[2])
	assert.Equal(t, 0.5, result.PerNode[3])

	assert.Equal(t, 0.5, result.Max)
	assert.Equal(t, 0.5, result.Min)
	assert.Equal(t, 0.5, result.Average)
}

func TestJaccardSimilarityPendantHasNoOverlap(t *testing.T) {
	view := cliqueWithPendant() // K4 on {0,1,2,3} plus pendant edge (3,4).

	result, err := triangles.JaccardSimilarity(view, 3)
	require.NoError(t, err)

	// Node 4's only neighbor is 3; it shares none of node 3's other
	// neighbors, so the intersection is empty but the union is not.
	assert.Equal(t, 0.0, result.PerNode[4])
}

func TestJaccardSimilarityRejectsOutOfRangeCompareNode(t *testing.T) {
	view := diamond()

	_, err := triangles.JaccardSimilarity(view, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestWriteSimilarityUpsertsColumn(t *testing.T) {
	view := diamond()
	result, err := triangles.JaccardSimilarity(view, 0)
	require.NoError(t, err)

	table := properties.NewTable(4)
	require.NoError(t, triangles.WriteSimilarity(table, "similarity", result.PerNode))
	require.NoError(t, triangles.WriteSimilarity(table, "similarity", result.PerNode))

	col, err := properties.GetColumn[float64](table, "similarity")
	require.NoError(t, err)
	assert.Equal(t, 1.0, col.At(0))
	assert.Equal(t, 0.5, col.At(1))
}
