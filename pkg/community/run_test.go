package community_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/parageon/pkg/community"
	"github.com/dd0wney/parageon/pkg/properties"
)

func TestRunLouvainFindsTwoCliques(t *testing.T) {
	view := twoCliquesWithBridge()
	p := community.NewPlan(community.AlgorithmLouvain, "community_id")
	p.Deterministic = true

	result, err := p.Run(view)
	require.NoError(t, err)

	assert.Equal(t, 2, result.NumCommunities())
	assert.Equal(t, result.Assignment[0], result.Assignment[1])
	assert.Equal(t, result.Assignment[0], result.Assignment[2])
	assert.Equal(t, result.Assignment[0], result.Assignment[3])
	assert.Equal(t, result.Assignment[4], result.Assignment[5])
	assert.Equal(t, result.Assignment[4], result.Assignment[6])
	assert.Equal(t, result.Assignment[4], result.Assignment[7])
	assert.NotEqual(t, result.Assignment[0], result.Assignment[4])

	// Spec §8 scenario 4 expects modularity around 0.44 for this graph.
	assert.InDelta(t, 0.44, result.Modularity, 0.1)
}

func TestRunLeidenSplitsWindmillTriangles(t *testing.T) {
	view := windmillOfTriangles()
	p := community.NewPlan(community.AlgorithmLeiden, "community_id")
	p.Deterministic = true
	p.MinGraphSize = 1

	result, err := p.Run(view)
	require.NoError(t, err)

	// Each triangle's private pair {a_i, b_i} must stay together,
	// regardless of which community the shared hub lands in.
	for i := 0; i < 5; i++ {
		a := 1 + 2*i
		b := 2 + 2*i
		assert.Equal(t, result.Assignment[a], result.Assignment[b])
	}
}

func TestRunOnEmptyGraphReportsZeroModularity(t *testing.T) {
	view := newSymAdjacency(3, nil)
	p := community.NewPlan(community.AlgorithmLouvain, "community_id")

	result, err := p.Run(view)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Modularity)
	assert.Equal(t, 3, result.NumCommunities())
}

func TestRunRejectsInvalidPlan(t *testing.T) {
	view := twoCliquesWithBridge()
	p := community.NewPlan(community.AlgorithmLouvain, "community_id")
	p.Resolution = -1

	_, err := p.Run(view)
	require.Error(t, err)
}

func TestWriteResultUpsertsCommunityColumn(t *testing.T) {
	view := twoCliquesWithBridge()
	p := community.NewPlan(community.AlgorithmLouvain, "community_id")
	result, err := p.Run(view)
	require.NoError(t, err)

	table := properties.NewTable(8)
	require.NoError(t, community.WriteResult(table, "community_id", result))

	col, err := properties.GetColumn[uint32](table, "community_id")
	require.NoError(t, err)
	assert.Equal(t, uint32(result.Assignment[0]), col.At(0))

	// Writing twice must upsert, not fail with AlreadyExists.
	require.NoError(t, community.WriteResult(table, "community_id", result))
}

func TestModularityMatchesFillCommunityStats(t *testing.T) {
	view := twoCliquesWithBridge()
	p := community.NewPlan(community.AlgorithmLouvain, "community_id")
	result, err := p.Run(view)
	require.NoError(t, err)

	recomputed := community.Modularity(view, result.Assignment, p.Resolution)
	assert.InDelta(t, result.Modularity, recomputed, 1e-9)
}
