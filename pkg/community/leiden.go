package community

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/dd0wney/parageon/pkg/parallel"
)

// maxRefinementRounds bounds Leiden's refinement pass the same way
// maxMoveRoundsPerLevel bounds the ordinary move phase: the softmax
// selection converges quickly in practice, but nothing in the spec
// promises termination in one round for every graph.
const maxRefinementRounds = 10

// runLeidenLevel runs Leiden's per-level procedure (spec §4.6
// "Leiden"): an ordinary Louvain move phase, a refinement pass that
// may only split communities (never merge across them), then
// coarsening by sub-community. It returns the sub-community
// assignment (used both to lift the original nodes' community and to
// coarsen into the next level) and a seed for the next level's initial
// community assignment, inherited from the pre-refinement community
// so sub-communities that split from the same parent can re-merge.
func runLeidenLevel(g *levelGraph, p *Plan, seed []int32) (assignment, nextSeed []int32) {
	coarse := runLouvainLevel(g, p, seed)
	previous := append([]int32(nil), coarse...)

	sub := refine(g, p, previous)
	numSub := renumber(sub)

	nextSeed = make([]int32, numSub)
	seeded := make([]bool, numSub)
	for v := 0; v < g.n; v++ {
		s := sub[v]
		if !seeded[s] {
			nextSeed[s] = previous[v]
			seeded[s] = true
		}
	}
	// nextSeed values are previous-community ids, which range over
	// g.n, not numSub; compress them so they fit the next level's
	// community-info arrays (sized numSub).
	renumber(nextSeed)

	return sub, nextSeed
}

// refine runs the refinement pass to a fixed point (or
// maxRefinementRounds, whichever first): starting every node in its
// own singleton sub-community, nodes probabilistically move to a
// neighboring sub-community contained in their own previous_community
// (spec §4.6 "Refinement").
func refine(g *levelGraph, p *Plan, previous []int32) []int32 {
	st := newLevelState(g)
	m := g.totalWeight
	if m == 0 {
		return st.community
	}

	pool := parallel.Root()
	rngs := parallel.NewPerThread(pool.NumWorkers(), func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	})

	for round := 0; round < maxRefinementRounds; round++ {
		if !refinementRound(pool, g, st, m, p.Resolution, p.Randomness, previous, rngs) {
			break
		}
	}
	return st.community
}

// refinementRound runs one parallel pass of probabilistic sub-
// community selection: for each node, every candidate sub-community
// with non-negative modularity gain is weighted exp(ΔQ/γ) and one is
// chosen by weighted random draw (spec §4.6, "selected with a
// probability proportional to exp(ΔQ/γ)").
func refinementRound(pool *parallel.WorkerPool, g *levelGraph, st *levelState, m, resolution, randomness float64, previous []int32, rngs *parallel.PerThread[*rand.Rand]) bool {
	var changed int32

	parallel.DoAllIndexed(pool, g.n, func(v, slot int) {
		curC := st.community[v]
		kv := g.degreeWeight[v]
		sigma := g.selfLoop[v]

		edgeWeightTo := make(map[int32]float64, len(g.neighbors[v])+1)
		for i, u := range g.neighbors[v] {
			c := st.community[u]
			if previous[c] != previous[v] {
				continue
			}
			edgeWeightTo[c] += g.weights[v][i]
		}
		if _, ok := edgeWeightTo[curC]; !ok {
			edgeWeightTo[curC] = 0
		}

		type candidate struct {
			community int32
			gain      float64
		}
		candidates := make([]candidate, 0, len(edgeWeightTo))
		for c, e := range edgeWeightTo {
			indicator := 0.0
			if c == curC {
				indicator = 1.0
			}
			degSumC := bitsFloat(st.degreeWeightSum[c])
			dq := (e-sigma*indicator)/m - resolution*(kv*(degSumC-kv*indicator))/(2*m*m)
			if dq >= 0 {
				candidates = append(candidates, candidate{c, dq})
			}
		}
		if len(candidates) == 0 {
			return
		}

		weights := make([]float64, len(candidates))
		var total float64
		for i, cd := range candidates {
			w := math.Exp(cd.gain / randomness)
			weights[i] = w
			total += w
		}

		rng := rngs.Get(slot)
		draw := rng.Float64() * total
		chosen := curC
		var acc float64
		for i, cd := range candidates {
			acc += weights[i]
			if draw <= acc {
				chosen = cd.community
				break
			}
		}
		if chosen == curC {
			return
		}
		commitMove(g, st, v, chosen)
		atomic.StoreInt32(&changed, 1)
	})

	return changed == 1
}
