package community

import "github.com/dd0wney/parageon/pkg/parallel"

// maxMoveRoundsPerLevel bounds a single level's local-move loop
// independent of Plan.MaxLevels (which caps coarsening rounds, per
// spec's parameter table naming it "max_iterations — cap on levels").
// The per-level loop in spec §4.6's prose ("repeat until the per-level
// gain falls below Δ_round or iterations reach max_iter") almost
// always exits via the Δ_round gain check well before this; it exists
// only as a backstop against pathological oscillation.
const maxMoveRoundsPerLevel = 50

// runLouvainLevel runs the vertex-move phase to convergence on g and
// returns the resulting community assignment, one entry per node of
// g (spec §4.6 "Louvain"). seed, when non-nil, seeds the initial
// community assignment instead of starting every node as a singleton
// (used for vertex-following at level 0 and for Leiden's
// community-inheriting coarsened levels).
func runLouvainLevel(g *levelGraph, p *Plan, seed []int32) []int32 {
	var st *levelState
	if seed != nil {
		st = newLevelStateSeeded(g, seed)
	} else {
		st = newLevelState(g)
	}
	runMoveRounds(g, st, p, nil)
	return st.community
}

// runMoveRounds repeats the vertex-move round (deterministic or not,
// per p.Deterministic) until a round makes no move or the modularity
// gain falls below p.PerRoundModularityThreshold, or
// maxMoveRoundsPerLevel is reached.
func runMoveRounds(g *levelGraph, st *levelState, p *Plan, allowed func(v int, c int32) bool) {
	m := g.totalWeight
	if m == 0 {
		return
	}
	pool := parallel.Root()
	prevQ := levelModularity(g, st.community, p.Resolution)
	for round := 0; round < maxMoveRoundsPerLevel; round++ {
		var changed bool
		if p.Deterministic {
			changed = moveAllBucketed(pool, g, st, m, p.Resolution, p.BucketCount, allowed)
		} else {
			changed = moveAllNonDeterministic(pool, g, st, m, p.Resolution, allowed)
		}
		if !changed {
			return
		}
		q := levelModularity(g, st.community, p.Resolution)
		gain := q - prevQ
		prevQ = q
		if gain < p.PerRoundModularityThreshold {
			return
		}
	}
}
