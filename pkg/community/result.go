package community

// Stats summarizes one detected community (spec supplement, grounded
// on the teacher's Community/CommunityDetectionResult shape):
// membership, size, and internal edge density.
type Stats struct {
	ID          int
	Nodes       []uint32
	Size        int
	InternalEdges int
	// Density is internal edge count over the maximum possible edge
	// count for Size nodes in an undirected simple graph.
	Density float64
}

// Result is the output of a Louvain or Leiden run: the final
// node-to-community assignment, per-community statistics, and the
// modularity of the final partition.
type Result struct {
	// Assignment[v] is v's final community id, dense in [0, len(Communities)).
	Assignment []int
	Communities []Stats
	Modularity  float64
	// Levels is how many coarsening rounds actually ran.
	Levels int
}

// NumCommunities returns the number of communities in the result.
func (r *Result) NumCommunities() int { return len(r.Communities) }

func buildStats(numNodes int, assignment []int) []Stats {
	maxID := -1
	for _, c := range assignment {
		if c > maxID {
			maxID = c
		}
	}
	if maxID < 0 {
		return nil
	}
	stats := make([]Stats, maxID+1)
	for id := range stats {
		stats[id].ID = id
	}
	for v := 0; v < numNodes; v++ {
		c := assignment[v]
		stats[c].Nodes = append(stats[c].Nodes, uint32(v))
		stats[c].Size++
	}
	return stats
}
