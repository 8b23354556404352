package triangles

import (
	"math"
	"sort"
)

// Relabel selects whether a caller relabels nodes by degree (building
// views.NodesSortedByDegreeEdgesSortedByDestID) before counting, or
// counts over a plain views.EdgesSortedByDestID view (spec §9 Open
// Question: "the source's triangle-count routine unconditionally
// relabels nodes by degree; whether this is intended or a workaround is
// not clear... the spec lets the caller request relabel / no-relabel /
// auto").
type Relabel int

const (
	// RelabelAlways always builds the degree-relabeled view, matching
	// the teacher's unconditional behavior.
	RelabelAlways Relabel = iota
	// RelabelNever always counts over the unrelabeled sorted view.
	RelabelNever
	// RelabelAuto decides via ShouldRelabel's degree-distribution heuristic.
	RelabelAuto
)

// degreeSource is the minimal shape ShouldRelabel needs: enough to read
// every node's out-degree, satisfied by any views.TopologyView
// (views.BaseTopology has no OutDegree method and does not satisfy it).
type degreeSource interface {
	NumNodes() int
	OutDegree(v uint32) int
}

// ShouldRelabel resolves r against view's degree distribution. For
// RelabelAuto it estimates a power-law-like skew by comparing the
// 95th-percentile node's degree against the mean degree: relabeling
// pays for its cost only when a small minority of nodes dominates
// total degree, which is exactly when NodesSortedByDegreeEdgesSortedByDestID's
// locality improves sorted-intersection performance.
func ShouldRelabel(r Relabel, view degreeSource) bool {
	switch r {
	case RelabelAlways:
		return true
	case RelabelNever:
		return false
	default:
		return powerLawSkew(view) > powerLawThreshold
	}
}

// powerLawThreshold is the ratio (p95 degree / mean degree) above which
// RelabelAuto treats the distribution as power-law-like. A perfectly
// uniform degree distribution has ratio 1; real power-law graphs
// typically exceed 5-10x at this percentile.
const powerLawThreshold = 5.0

func powerLawSkew(view degreeSource) float64 {
	n := view.NumNodes()
	if n == 0 {
		return 0
	}
	degrees := make([]int, n)
	var total int64
	for v := 0; v < n; v++ {
		d := view.OutDegree(uint32(v))
		degrees[v] = d
		total += int64(d)
	}
	if total == 0 {
		return 0
	}
	mean := float64(total) / float64(n)

	sort.Ints(degrees)
	idx := int(math.Ceil(0.95 * float64(n-1)))
	p95 := degrees[idx]

	return float64(p95) / mean
}
