// Package community implements Louvain and Leiden community detection
// over an undirected adjacency view: per-level modularity-greedy
// vertex moves, graph coarsening between levels, and (for Leiden) a
// refinement phase that splits poorly connected communities before
// coarsening (spec §4.6).
package community

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/parageon/pkg/errs"
)

// Algorithm selects which community detection method a Plan runs.
type Algorithm string

const (
	AlgorithmLouvain Algorithm = "louvain"
	AlgorithmLeiden  Algorithm = "leiden"
)

// Plan configures a community detection run, enumerating the
// parameter table of spec §4.6. Construct with NewPlan and adjust
// fields directly; call Validate (or just Run, which validates first)
// before use.
type Plan struct {
	Algorithm Algorithm `validate:"required,oneof=louvain leiden"`

	// OutputName is the node-property name the result community id is
	// written under (spec §4.6 "Output contract").
	OutputName string `validate:"required"`

	// EnableVertexFollowing pre-merges degree-1 chains into their
	// unique neighbor's community before level 0.
	EnableVertexFollowing bool

	// PerRoundModularityThreshold is Δ_round: a level's local-move
	// round stops once its modularity gain falls below this.
	PerRoundModularityThreshold float64 `validate:"gte=0"`

	// TotalModularityThreshold is Δ_total: coarsening stops once the
	// cumulative gain since level 0 falls below this.
	TotalModularityThreshold float64 `validate:"gte=0"`

	// MaxLevels caps the number of coarsening rounds (spec's
	// max_iterations); 0 means unbounded (run to convergence).
	MaxLevels int `validate:"gte=0"`

	// MinGraphSize stops coarsening once the coarsened graph has this
	// many nodes or fewer.
	MinGraphSize int `validate:"gte=0"`

	// Resolution scales the null-model term in modularity gain; 1.0 is
	// standard modularity.
	Resolution float64 `validate:"gt=0"`

	// Randomness is γ, the softmax temperature in Leiden's refinement
	// phase. Ignored by Louvain.
	Randomness float64 `validate:"gt=0"`

	// Deterministic selects the mod-BucketCount bucketed vertex
	// schedule instead of a single parallel pass over all nodes,
	// trading some convergence speed for a repeatable community
	// assignment across runs at a fixed thread count.
	Deterministic bool

	// BucketCount is the number of buckets the deterministic schedule
	// spreads vertices across; the spec's default is 16. Ignored
	// unless Deterministic is set.
	BucketCount int `validate:"omitempty,gt=0"`
}

// NewPlan returns a Plan with spec §4.6's defaults: resolution 1.0,
// Δ_round and Δ_total both 0.01, max 10 levels, min graph size 100,
// Leiden randomness 0.01, non-deterministic schedule.
func NewPlan(algorithm Algorithm, outputName string) *Plan {
	return &Plan{
		Algorithm:                   algorithm,
		OutputName:                  outputName,
		Resolution:                  1.0,
		PerRoundModularityThreshold: 0.01,
		TotalModularityThreshold:    0.01,
		MaxLevels:                   10,
		MinGraphSize:                100,
		Randomness:                  0.01,
		BucketCount:                 16,
	}
}

var validate = validator.New()

// Validate checks the plan's fields, formatting the first violation
// the way the teacher's request validators report struct-tag
// failures (spec §6, "unrecognized options fail InvalidArgument").
func (p *Plan) Validate() error {
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.InvalidArgument("Plan.Validate", err.Error())
	}
	for _, e := range validationErrs {
		return errs.InvalidArgument("Plan.Validate", fmt.Sprintf("%s failed %q", e.Field(), e.Tag()))
	}
	return errs.InvalidArgument("Plan.Validate", "unknown validation failure")
}
