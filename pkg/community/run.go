package community

import (
	"time"

	"github.com/dd0wney/parageon/pkg/logging"
	"github.com/dd0wney/parageon/pkg/metrics"
	"github.com/dd0wney/parageon/pkg/properties"
)

// Run executes the configured algorithm over view (spec §4.6): vertex
// moves to local modularity optimum, coarsening into a quotient graph,
// repeated until MinGraphSize or fewer nodes remain or the
// cumulative gain since level 0 falls below TotalModularityThreshold.
// Leiden additionally refines each level before coarsening. The
// returned Result's Assignment is dense in [0, K).
func (p *Plan) Run(view AdjacencyView) (*Result, error) {
	algo := string(p.Algorithm)
	log := logging.With(logging.Component("community"), logging.Operation(algo))

	if err := p.Validate(); err != nil {
		log.Error("plan validation failed", logging.Error(err))
		return nil, err
	}

	start := time.Now()
	result, err := p.run(view, log)
	if err != nil {
		metrics.DefaultRegistry().RecordAlgorithmRun(algo, "error")
		return nil, err
	}

	metrics.DefaultRegistry().RecordAlgorithmRun(algo, "ok")
	metrics.DefaultRegistry().RecordAlgorithmPhase(algo, "run", time.Since(start))
	metrics.DefaultRegistry().RecordCommunityResult(algo, result.Levels, result.Modularity, result.NumCommunities())
	log.Info("run complete",
		logging.Level(result.Levels),
		logging.Modularity(result.Modularity),
		logging.Count(result.NumCommunities()),
		logging.Latency(time.Since(start)))

	return result, nil
}

func (p *Plan) run(view AdjacencyView, log logging.Logger) (*Result, error) {
	n := view.NumNodes()
	lg := buildLevelGraph(view)

	if lg.totalWeight == 0 {
		// Zero-edge graph: every node is its own community, modularity
		// reported as 0 (spec §4.6 "Failure modes"). Weight here is
		// always an edge-multiplicity count (never an explicit,
		// possibly non-finite or filtered-to-zero float), so this is
		// also the only way 2m can be 0 — see DESIGN.md for why the
		// spec's "non-finite weight" and "2m = 0 after filtering"
		// failure modes don't apply to this representation.
		log.Debug("zero-edge graph, every node its own community")
		return fillCommunityStats(view, toIntSlice(identityInt32(n)), p.Resolution, 0), nil
	}

	curMap := identityInt32(n)
	cur := lg

	var seed []int32
	if p.EnableVertexFollowing {
		seed = vertexFollowingSeed(cur)
	}

	var qInitial float64
	haveQInitial := false
	levels := 0

	for {
		levelStart := time.Now()
		var levelAssignment, nextSeed []int32
		if p.Algorithm == AlgorithmLeiden {
			levelAssignment, nextSeed = runLeidenLevel(cur, p, seed)
		} else {
			levelAssignment = runLouvainLevel(cur, p, seed)
			nextSeed = nil
		}
		levels++
		metrics.DefaultRegistry().RecordAlgorithmPhase(string(p.Algorithm), "level", time.Since(levelStart))

		numCommunities := renumber(levelAssignment)
		q := levelModularity(cur, levelAssignment, p.Resolution)
		lifted := liftAssignment(curMap, levelAssignment)
		curMap = lifted

		log.Debug("level complete",
			logging.Level(levels),
			logging.Count(numCommunities),
			logging.Modularity(q))

		if !haveQInitial {
			qInitial = q
			haveQInitial = true
		}

		noProgress := numCommunities == cur.n
		hitLevelCap := p.MaxLevels > 0 && levels >= p.MaxLevels
		tooSmall := numCommunities <= p.MinGraphSize
		belowTotalGain := levels > 1 && q-qInitial < p.TotalModularityThreshold

		stop := noProgress || hitLevelCap || tooSmall || belowTotalGain

		if stop && p.Algorithm == AlgorithmLeiden && !noProgress {
			// "After the last level, one pass of Louvain-style moves is
			// applied on the coarsened graph, and the final community
			// mapping is lifted back to the original nodes" (spec
			// §4.6): coarsen this last level's sub-communities, then
			// run one more plain Louvain pass on that graph before
			// lifting.
			finalGraph := coarsen(cur, levelAssignment, numCommunities)
			final := runLouvainLevel(finalGraph, p, nextSeed)
			renumber(final)
			curMap = liftAssignment(curMap, final)
		}

		if stop {
			break
		}

		cur = coarsen(cur, levelAssignment, numCommunities)
		seed = nextSeed
	}

	return fillCommunityStats(view, toIntSlice(curMap), p.Resolution, levels), nil
}

// WriteResult publishes result's community assignment as a u32 node
// property named name, upserting so repeated algorithm runs never fail
// with AlreadyExists (spec §6, "Outputs produced for a consumer...
// community id (u32)").
func WriteResult(table *properties.Table, name string, result *Result) error {
	data := make([]uint32, len(result.Assignment))
	for i, c := range result.Assignment {
		data[i] = uint32(c)
	}
	return table.UpsertProperties(properties.NewColumn(name, data))
}
