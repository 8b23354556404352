package triangles

import "github.com/dd0wney/parageon/pkg/properties"

// localClusteringCoefficients computes LCC(v) = 2*triangles(v) /
// (deg(v)*(deg(v)-1)) for every node, the fraction of v's neighbor
// pairs that are themselves connected (spec §6 LCC result type, §8
// scenario 6). Nodes with degree under 2 report 0, matching the
// teacher's inline computation in CountTriangles.
func localClusteringCoefficients(view SortedView, perNode []int) []float64 {
	n := view.NumNodes()
	coeffs := make([]float64, n)
	for v := 0; v < n; v++ {
		k := view.OutDegree(uint32(v))
		if k < 2 {
			continue
		}
		possible := k * (k - 1) / 2
		coeffs[v] = float64(perNode[v]) / float64(possible)
	}
	return coeffs
}

// WriteLCC publishes coefficients as an f64 node property (spec §6,
// "local clustering coefficient (f64)"), upserting so repeated runs
// never fail with AlreadyExists.
func WriteLCC(table *properties.Table, name string, coefficients []float64) error {
	return table.UpsertProperties(properties.NewColumn(name, coefficients))
}
