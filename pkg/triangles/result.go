package triangles

// Result is CountTriangles' output (spec §6 fixed result types,
// grounded on the teacher's TriangleCountResult): per-node triangle
// participation, the global count, local clustering coefficients, and
// the highest-participation nodes.
type Result struct {
	PerNode                []int
	GlobalCount            int
	ClusteringCoefficients []float64
	TopNodes               []RankedNode
}
