package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/parageon/pkg/graph"
	"github.com/dd0wney/parageon/pkg/properties"
	"github.com/dd0wney/parageon/pkg/types"
	"github.com/dd0wney/parageon/pkg/views"
)

func diamondBuilder() *graph.Builder {
	outIndices := []uint64{3, 6, 9, 12}
	outDests := []graph.NodeID{
		1, 2, 3,
		0, 2, 3,
		0, 1, 3,
		0, 1, 2,
	}
	return graph.NewBuilder(4, outIndices, outDests)
}

func TestBuildUntypedGraph(t *testing.T) {
	g, err := diamondBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Topology().NumNodes())
	assert.Equal(t, 12, g.Topology().NumEdges())
	assert.Equal(t, types.TypeID(0), g.NodeType(0))
}

func TestBuildWithTypesValidatesLengths(t *testing.T) {
	mgr := types.NewManager()
	mgr.AddAtomicType("Person")
	_, err := diamondBuilder().WithTypes(mgr, []types.TypeID{0, 0}, nil).Build()
	assert.Error(t, err)
}

func TestBuildViewCachesHandle(t *testing.T) {
	g, err := diamondBuilder().Build()
	require.NoError(t, err)

	v1, err := g.BuildView(views.Transposed)
	require.NoError(t, err)
	v2, err := g.BuildView(views.Transposed)
	require.NoError(t, err)
	assert.Same(t, v1, v2)
}

func TestDropAllTopologiesInvalidatesCache(t *testing.T) {
	g, err := diamondBuilder().Build()
	require.NoError(t, err)

	v1, err := g.BuildView(views.Default)
	require.NoError(t, err)
	g.DropAllTopologies()
	v2, err := g.BuildView(views.Default)
	require.NoError(t, err)
	assert.NotSame(t, v1, v2)
}

func TestBuildSortedByPropertyViewUsesNamedColumn(t *testing.T) {
	g, err := diamondBuilder().Build()
	require.NoError(t, err)

	weights := make([]float64, g.Topology().NumEdges())
	for i := range weights {
		weights[i] = float64(len(weights) - i)
	}
	require.NoError(t, g.EdgeProperties().AddProperties(properties.NewColumn("weight", weights)))

	v, err := g.BuildSortedByPropertyView("weight")
	require.NoError(t, err)
	assert.Equal(t, views.EdgesSortedByProperty, v.Kind())
}

func TestBuildSortedByPropertyViewMissingColumn(t *testing.T) {
	g, err := diamondBuilder().Build()
	require.NoError(t, err)
	_, err = g.BuildSortedByPropertyView("does-not-exist")
	assert.Error(t, err)
}

func TestBuildTypeAwareViewUsesGraphEdgeTypes(t *testing.T) {
	mgr := types.NewManager()
	mgr.AddAtomicType("Follows")
	mgr.AddAtomicType("Likes")
	edgeType := make([]types.TypeID, 12)
	for i := range edgeType {
		edgeType[i] = types.TypeID(i % 2)
	}
	g, err := diamondBuilder().WithTypes(mgr, nil, edgeType).Build()
	require.NoError(t, err)

	v, err := g.BuildTypeAwareView()
	require.NoError(t, err)
	assert.Equal(t, views.EdgeTypeAwareBiDir, v.Kind())
}
