package community

import "math"

// levelGraph is the weighted adjacency list community detection
// actually optimizes over: level 0 is built once from the caller's
// AdjacencyView (every edge weight 1, parallel edges aggregating into
// an integer weight per spec §4.6's "weighted undirected graph"
// convention); each subsequent level is the coarsened quotient graph
// whose nodes are the previous level's communities.
type levelGraph struct {
	n int

	neighbors [][]int32
	weights   [][]float64

	// selfLoop[v] is the weight of v's self-loop, stored once (not
	// doubled); degreeWeight below applies the spec's "self-loop
	// contributes twice to weighted degree" convention on top of it.
	selfLoop []float64

	degreeWeight []float64
	// totalWeight is m, the total edge weight counting each edge once.
	totalWeight float64
}

// buildLevelGraph aggregates view's adjacency (already undirected, so
// every edge appears once per endpoint) into a weighted adjacency
// list: parallel edges between the same pair of nodes collapse into
// one neighbor entry whose weight is the edge count.
func buildLevelGraph(view AdjacencyView) *levelGraph {
	n := view.NumNodes()
	lg := &levelGraph{
		n:            n,
		neighbors:    make([][]int32, n),
		weights:      make([][]float64, n),
		selfLoop:     make([]float64, n),
		degreeWeight: make([]float64, n),
	}

	for v := 0; v < n; v++ {
		start, end := view.OutRange(uint32(v))
		acc := make(map[int32]float64, end-start)
		for e := start; e < end; e++ {
			dst := view.OutEdgeDst(e)
			if int(dst) == v {
				lg.selfLoop[v]++
				continue
			}
			acc[int32(dst)]++
		}
		neighbors := make([]int32, 0, len(acc))
		weights := make([]float64, 0, len(acc))
		for dst, w := range acc {
			neighbors = append(neighbors, dst)
			weights = append(weights, w)
		}
		lg.neighbors[v] = neighbors
		lg.weights[v] = weights
	}

	var twoM float64
	for v := 0; v < n; v++ {
		sum := 2 * lg.selfLoop[v]
		for _, w := range lg.weights[v] {
			sum += w
		}
		lg.degreeWeight[v] = sum
		twoM += sum
	}
	lg.totalWeight = twoM / 2
	return lg
}

// coarsen builds the next level's quotient graph: nodes are
// communities, renumbered dense in [0, numCommunities); edges
// aggregate weights between distinct communities; intra-community
// weight (including any inherited self-loops) aggregates into the new
// node's self-loop (spec §4.6, "build a new graph whose nodes are the
// communities... self-loops aggregate intra-community weights").
func coarsen(g *levelGraph, community []int32, numCommunities int) *levelGraph {
	next := &levelGraph{
		n:            numCommunities,
		neighbors:    make([][]int32, numCommunities),
		weights:      make([][]float64, numCommunities),
		selfLoop:     make([]float64, numCommunities),
		degreeWeight: make([]float64, numCommunities),
	}

	accum := make([]map[int32]float64, numCommunities)
	for i := range accum {
		accum[i] = make(map[int32]float64)
	}

	for v := 0; v < g.n; v++ {
		cv := community[v]
		next.selfLoop[cv] += g.selfLoop[v]
		for i, u := range g.neighbors[v] {
			w := g.weights[v][i]
			cu := community[u]
			if cu == cv {
				// Each intra-community edge is visited once from each
				// endpoint; halve so the new self-loop represents the
				// edge weight once, matching level 0's convention.
				next.selfLoop[cv] += w / 2
				continue
			}
			accum[cv][cu] += w
		}
	}

	for c := 0; c < numCommunities; c++ {
		for u, w := range accum[c] {
			next.neighbors[c] = append(next.neighbors[c], u)
			next.weights[c] = append(next.weights[c], w)
		}
	}

	var twoM float64
	for v := 0; v < numCommunities; v++ {
		sum := 2 * next.selfLoop[v]
		for _, w := range next.weights[v] {
			sum += w
		}
		next.degreeWeight[v] = sum
		twoM += sum
	}
	next.totalWeight = twoM / 2
	return next
}

// levelModularity computes Q for community over g, using the same
// internal/null-model decomposition coarsening relies on being
// invariant under (a Louvain-family graph's modularity for a
// partition equals the original graph's modularity for the lifted
// partition).
func levelModularity(g *levelGraph, community []int32, resolution float64) float64 {
	m := g.totalWeight
	if m == 0 {
		return 0
	}

	degSum := make(map[int32]float64)
	var offDiag, selfTotal float64
	for v := 0; v < g.n; v++ {
		c := community[v]
		degSum[c] += g.degreeWeight[v]
		selfTotal += g.selfLoop[v]
		for i, u := range g.neighbors[v] {
			if community[u] == c {
				offDiag += g.weights[v][i]
			}
		}
	}
	offDiag /= 2
	internal := offDiag + selfTotal

	var null float64
	for _, k := range degSum {
		null += k * k
	}
	null = resolution * null / (4 * m * m)

	return internal/m - null
}

// renumber rewrites ids in place to dense values in [0, K) ordered by
// first occurrence, and returns K.
func renumber(ids []int32) int {
	remap := make(map[int32]int32, len(ids))
	var next int32
	for i, id := range ids {
		nid, ok := remap[id]
		if !ok {
			nid = next
			remap[id] = nid
			next++
		}
		ids[i] = nid
	}
	return int(next)
}

// liftAssignment maps each original node's current-level node id
// (curMap) through the level's just-computed community assignment,
// producing the community each original node now belongs to.
func liftAssignment(curMap, levelCommunity []int32) []int32 {
	lifted := make([]int32, len(curMap))
	for i, m := range curMap {
		lifted[i] = levelCommunity[m]
	}
	return lifted
}

func identityInt32(n int) []int32 {
	ids := make([]int32, n)
	for i := range ids {
		ids[i] = int32(i)
	}
	return ids
}

func toIntSlice(ids []int32) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func floatBits(v float64) uint64 { return math.Float64bits(v) }
func bitsFloat(b uint64) float64 { return math.Float64frombits(b) }
