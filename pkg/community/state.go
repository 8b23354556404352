package community

import (
	"sort"
	"sync/atomic"

	"github.com/dd0wney/parageon/pkg/parallel"
)

// levelState is the per-community-info bookkeeping for one
// vertex-move phase (spec §4.6 "Shared state per level"): community
// assignment plus atomic size and degree-weight-sum accumulators, one
// slot per possible community id.
type levelState struct {
	community []int32 // current_community; plain writes, owner-per-slot (spec §5)
	size      []int64 // atomic

	// degreeWeightSum[c] holds degSum(c) as IEEE-754 bits, mutated with
	// parallel.AtomicAddFloatBits (spec §5 "per-community info arrays:
	// mutated by atomic RMW only").
	degreeWeightSum []uint64
}

// newLevelState starts every node in its own singleton community
// (the ordinary Louvain/level-0 initialization).
func newLevelState(g *levelGraph) *levelState {
	st := &levelState{
		community:       identityInt32(g.n),
		size:            make([]int64, g.n),
		degreeWeightSum: make([]uint64, g.n),
	}
	for v := 0; v < g.n; v++ {
		st.size[v] = 1
		st.degreeWeightSum[v] = floatBits(g.degreeWeight[v])
	}
	return st
}

// newLevelStateSeeded initializes community[v] = seed[v] instead of a
// singleton, for Leiden's rule that "nodes of the new level are
// initialized so that each new node inherits the current_community id
// of the sub-community it represents" (spec §4.6). seed values need
// not be dense or contiguous; community-info slots are indexed by
// node id (every value in seed is itself a node id of this level, by
// construction — see runLeidenLevel).
func newLevelStateSeeded(g *levelGraph, seed []int32) *levelState {
	st := &levelState{
		community:       append([]int32(nil), seed...),
		size:            make([]int64, g.n),
		degreeWeightSum: make([]uint64, g.n),
	}
	for v := 0; v < g.n; v++ {
		c := seed[v]
		st.size[c]++
		st.degreeWeightSum[c] = floatBits(bitsFloat(st.degreeWeightSum[c]) + g.degreeWeight[v])
	}
	return st
}

// computeMove scores every community among v's neighbors (plus v's
// current community) per spec §4.6's ΔQ formula and returns the best
// candidate and whether it beats v's current community, without
// committing anything. allowed, when non-nil, restricts v's candidates
// to communities c for which allowed(v, c) is true (Leiden
// refinement's "only to a sub-community contained in its current
// community").
func computeMove(g *levelGraph, st *levelState, v int, m, resolution float64, allowed func(v int, c int32) bool) (best int32, gain float64, moves bool) {
	curC := st.community[v]
	kv := g.degreeWeight[v]
	sigma := g.selfLoop[v]

	edgeWeightTo := make(map[int32]float64, len(g.neighbors[v])+1)
	for i, u := range g.neighbors[v] {
		c := st.community[u]
		if allowed != nil && !allowed(v, c) {
			continue
		}
		edgeWeightTo[c] += g.weights[v][i]
	}
	if allowed == nil || allowed(v, curC) {
		if _, ok := edgeWeightTo[curC]; !ok {
			edgeWeightTo[curC] = 0
		}
	}

	candidates := make([]int32, 0, len(edgeWeightTo))
	for c := range edgeWeightTo {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	best = curC
	bestGain := 0.0
	found := false
	for _, c := range candidates {
		e := edgeWeightTo[c]
		indicator := 0.0
		if c == curC {
			indicator = 1.0
		}
		degSumC := bitsFloat(st.degreeWeightSum[c])
		dq := (e-sigma*indicator)/m - resolution*(kv*(degSumC-kv*indicator))/(2*m*m)
		if !found || dq > bestGain {
			bestGain = dq
			best = c
			found = true
		}
	}

	moves = found && best != curC && bestGain > 0
	return best, bestGain, moves
}

// commitMove applies a node's move to the community arrays: atomic
// degree-weight-sum and size deltas on the old and new community, then
// a plain write of the node's own community slot.
func commitMove(g *levelGraph, st *levelState, v int, newC int32) {
	kv := g.degreeWeight[v]
	curC := st.community[v]
	parallel.AtomicAddFloatBits(&st.degreeWeightSum[curC], -kv)
	parallel.AtomicAddFloatBits(&st.degreeWeightSum[newC], kv)
	atomic.AddInt64(&st.size[curC], -1)
	atomic.AddInt64(&st.size[newC], 1)
	st.community[v] = newC
}

// moveAllNonDeterministic runs one unordered parallel pass: every
// node computes and immediately commits its best move, racing freely
// against other nodes' in-flight moves (spec §4.6 "Louvain
// (non-deterministic)").
func moveAllNonDeterministic(pool *parallel.WorkerPool, g *levelGraph, st *levelState, m, resolution float64, allowed func(v int, c int32) bool) bool {
	var changed int32
	parallel.DoAll(pool, g.n, func(v int) {
		newC, _, moves := computeMove(g, st, v, m, resolution, allowed)
		if !moves {
			return
		}
		commitMove(g, st, v, newC)
		atomic.StoreInt32(&changed, 1)
	})
	return changed == 1
}

// moveAllBucketed runs the deterministic colored schedule: nodes are
// partitioned by v mod bucketCount, and within a bucket every move is
// computed against the bucket-start state and committed only after
// the whole bucket finishes computing (spec §4.6 "Louvain
// (deterministic)"), so the result is independent of how goroutines
// interleave within a bucket.
func moveAllBucketed(pool *parallel.WorkerPool, g *levelGraph, st *levelState, m, resolution float64, bucketCount int, allowed func(v int, c int32) bool) bool {
	if bucketCount <= 0 {
		bucketCount = 16
	}
	buckets := make([][]int32, bucketCount)
	for v := 0; v < g.n; v++ {
		b := v % bucketCount
		buckets[b] = append(buckets[b], int32(v))
	}

	var changed bool
	for _, members := range buckets {
		if len(members) == 0 {
			continue
		}
		proposals := make([]int32, len(members))
		parallel.DoAll(pool, len(members), func(i int) {
			v := int(members[i])
			newC, _, moves := computeMove(g, st, v, m, resolution, allowed)
			if moves {
				proposals[i] = newC
			} else {
				proposals[i] = -1
			}
		})
		for i, v := range members {
			newC := proposals[i]
			if newC < 0 || newC == st.community[v] {
				continue
			}
			commitMove(g, st, int(v), newC)
			changed = true
		}
	}
	return changed
}
