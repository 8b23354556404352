package community

// vertexFollowingSeed implements the enable_vertex_following parameter
// (spec §4.6): chains of degree-1 nodes are pre-merged into their
// unique neighbor's community before level 0 runs. It returns a seed
// assignment (not necessarily dense) suitable for
// newLevelStateSeeded: nodes not on any degree-1 chain remain their
// own singleton.
func vertexFollowingSeed(g *levelGraph) []int32 {
	parent := identityInt32(g.n)

	var find func(x int32) int32
	find = func(x int32) int32 {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int32) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	// Chains may be longer than one hop, so iterate to a fixed point:
	// each pass can extend a union by one more link.
	for changed := true; changed; {
		changed = false
		for v := 0; v < g.n; v++ {
			if g.selfLoop[v] != 0 || len(g.neighbors[v]) != 1 {
				continue
			}
			var deg float64
			for _, w := range g.weights[v] {
				deg += w
			}
			if deg != 1 {
				continue
			}
			u := g.neighbors[v][0]
			if find(int32(v)) != find(u) {
				union(int32(v), u)
				changed = true
			}
		}
	}

	seed := make([]int32, g.n)
	for v := 0; v < g.n; v++ {
		seed[v] = find(int32(v))
	}
	return seed
}
