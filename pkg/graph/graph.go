package graph

import (
	"github.com/dd0wney/parageon/pkg/errs"
	"github.com/dd0wney/parageon/pkg/properties"
	"github.com/dd0wney/parageon/pkg/types"
	"github.com/dd0wney/parageon/pkg/views"
)

// Graph ties one immutable base Topology to its node and edge property
// tables, the shared entity-type manager, and a cache of derived
// topology views. It is the top-level handle an algorithm package
// receives (spec §3, "a graph owns a base topology, property tables,
// a type manager, and a view cache").
type Graph struct {
	topology *Topology

	nodeProperties *properties.Table
	edgeProperties *properties.Table

	typeManager *types.Manager
	nodeType    []types.TypeID // per-node entity type id, length NumNodes
	edgeType    []types.TypeID // per-edge entity type id, length NumEdges

	viewCache *views.Cache
}

// Builder assembles a Graph from loader-supplied parts (spec §3,
// "graphs are built once by a loader, then used read-only"). Call Build
// once all parts are set.
type Builder struct {
	numNodes   int
	outIndices []uint64
	outDests   []NodeID

	typeManager *types.Manager
	nodeType    []types.TypeID
	edgeType    []types.TypeID
}

// NewBuilder starts a Builder over the given raw CSR arrays.
func NewBuilder(numNodes int, outIndices []uint64, outDests []NodeID) *Builder {
	return &Builder{numNodes: numNodes, outIndices: outIndices, outDests: outDests}
}

// WithTypes attaches the shared entity-type manager and per-node/
// per-edge type-id assignments. Omit this call to build an untyped
// graph: every node and edge is then assigned TypeID 0 in a fresh,
// empty manager.
func (b *Builder) WithTypes(mgr *types.Manager, nodeType, edgeType []types.TypeID) *Builder {
	b.typeManager = mgr
	b.nodeType = nodeType
	b.edgeType = edgeType
	return b
}

// Build validates the accumulated parts and constructs the Graph.
func (b *Builder) Build() (*Graph, error) {
	topo, err := NewTopology(b.numNodes, b.outIndices, b.outDests)
	if err != nil {
		return nil, err
	}

	mgr := b.typeManager
	nodeType := b.nodeType
	edgeType := b.edgeType
	if mgr == nil {
		mgr = types.NewManager()
	}
	if nodeType == nil {
		nodeType = make([]types.TypeID, topo.NumNodes())
	}
	if edgeType == nil {
		edgeType = make([]types.TypeID, topo.NumEdges())
	}
	if len(nodeType) != topo.NumNodes() {
		return nil, errs.InvalidArgument("Graph.Build", "nodeType length must equal NumNodes")
	}
	if len(edgeType) != topo.NumEdges() {
		return nil, errs.InvalidArgument("Graph.Build", "edgeType length must equal NumEdges")
	}

	g := &Graph{
		topology:       topo,
		nodeProperties: properties.NewTable(topo.NumNodes()),
		edgeProperties: properties.NewTable(topo.NumEdges()),
		typeManager:    mgr,
		nodeType:       append([]types.TypeID(nil), nodeType...),
		edgeType:       append([]types.TypeID(nil), edgeType...),
	}
	g.viewCache = views.NewCache(topo)
	return g, nil
}

// Topology returns the base, immutable topology.
func (g *Graph) Topology() *Topology { return g.topology }

// NodeProperties returns the node property table.
func (g *Graph) NodeProperties() *properties.Table { return g.nodeProperties }

// EdgeProperties returns the edge property table.
func (g *Graph) EdgeProperties() *properties.Table { return g.edgeProperties }

// Types returns the shared entity-type manager.
func (g *Graph) Types() *types.Manager { return g.typeManager }

// NodeType returns node v's entity type id.
func (g *Graph) NodeType(v NodeID) types.TypeID { return g.nodeType[v] }

// EdgeType returns edge e's entity type id.
func (g *Graph) EdgeType(e EdgeID) types.TypeID { return g.edgeType[e] }

// BuildView returns the cached handle for a fixed-shape view kind
// (everything except EdgesSortedByProperty and EdgeTypeAwareBiDir,
// which need extra input via the dedicated methods below), building it
// on first request (spec §4.4).
func (g *Graph) BuildView(kind views.Kind) (views.TopologyView, error) {
	return g.viewCache.Build(kind)
}

// BuildSortedByPropertyView builds (or returns the cached)
// EdgesSortedByProperty view over the named edge property, which must
// be a numeric column already present in the edge property table.
func (g *Graph) BuildSortedByPropertyView(propertyName string) (views.TopologyView, error) {
	weight, err := edgeWeightColumn(g.edgeProperties, propertyName)
	if err != nil {
		return nil, err
	}
	return g.viewCache.BuildSortedByProperty(propertyName, weight)
}

// BuildTypeAwareView builds (or returns the cached) EdgeTypeAwareBiDir
// view, partitioned by this graph's edge entity types.
func (g *Graph) BuildTypeAwareView() (views.TopologyView, error) {
	return g.viewCache.BuildTypeAware(g.edgeType, g.typeManager.NumTypes())
}

// DropAllTopologies invalidates every cached derived view; the base
// topology and property tables are unaffected (spec §4.4).
func (g *Graph) DropAllTopologies() {
	g.viewCache.DropAll()
}

// edgeWeightColumn resolves a named edge property to a []float64
// weight slice for view construction, widening integer columns as
// needed so BuildSortedByPropertyView works over any numeric property.
func edgeWeightColumn(table *properties.Table, name string) ([]float64, error) {
	if col, err := properties.GetColumn[float64](table, name); err == nil {
		return append([]float64(nil), col.Slice()...), nil
	}
	if col, err := properties.GetColumn[float32](table, name); err == nil {
		out := make([]float64, col.Len())
		for i := range out {
			out[i] = float64(col.At(i))
		}
		return out, nil
	}
	if col, err := properties.GetColumn[int64](table, name); err == nil {
		out := make([]float64, col.Len())
		for i := range out {
			out[i] = float64(col.At(i))
		}
		return out, nil
	}
	if col, err := properties.GetColumn[uint64](table, name); err == nil {
		out := make([]float64, col.Len())
		for i := range out {
			out[i] = float64(col.At(i))
		}
		return out, nil
	}
	return nil, errs.TypeMismatch("BuildSortedByPropertyView", "property", name, "not a recognized numeric column type")
}
