// Package config loads named algorithm-plan presets — Louvain/Leiden
// parameter sets, k-Truss k, triangle-count algorithm selection — from
// a TOML document (spec §0.3), the way other_examples/stacktower loads
// its structured configuration with BurntSushi/toml.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dd0wney/parageon/pkg/community"
	"github.com/dd0wney/parageon/pkg/errs"
	"github.com/dd0wney/parageon/pkg/triangles"
)

// document mirrors the on-disk TOML shape: one table per preset kind,
// each keyed by preset name.
type document struct {
	Plans     map[string]planPreset     `toml:"plans"`
	KTruss    map[string]kTrussPreset   `toml:"ktruss"`
	Triangles map[string]trianglePreset `toml:"triangles"`
}

type planPreset struct {
	Algorithm                   string  `toml:"algorithm"`
	OutputName                  string  `toml:"output_name"`
	EnableVertexFollowing       bool    `toml:"enable_vertex_following"`
	PerRoundModularityThreshold float64 `toml:"per_round_modularity_threshold"`
	TotalModularityThreshold    float64 `toml:"total_modularity_threshold"`
	MaxLevels                   int     `toml:"max_levels"`
	MinGraphSize                int     `toml:"min_graph_size"`
	Resolution                  float64 `toml:"resolution"`
	Randomness                  float64 `toml:"randomness"`
	Deterministic               bool    `toml:"deterministic"`
	BucketCount                 int     `toml:"bucket_count"`
}

type kTrussPreset struct {
	K           int  `toml:"k"`
	PreTrimCore bool `toml:"pre_trim_core"`
}

type trianglePreset struct {
	Algorithm string `toml:"algorithm"` // "ordered", "node", or "edge"
}

// Plan is the union LoadPlan resolves a preset name into: exactly one
// field is non-nil, depending on which table in the document held
// name.
type Plan struct {
	Community         *community.Plan
	KTruss            *triangles.KTrussOptions
	TriangleAlgorithm *triangles.Algorithm
}

// LoadPlan reads the TOML document at path and resolves name against
// its plans, ktruss, and triangles tables, in that order, returning
// the first match (spec §0.3, "LoadPlan(path, name string) returning a
// community.Plan or triangles.KTrussOptions").
func LoadPlan(path, name string) (*Plan, error) {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, errs.InvalidArgument("config.LoadPlan", err.Error())
	}

	if preset, ok := doc.Plans[name]; ok {
		return &Plan{Community: preset.toCommunityPlan()}, nil
	}
	if preset, ok := doc.KTruss[name]; ok {
		return &Plan{KTruss: &triangles.KTrussOptions{K: preset.K, PreTrimCore: preset.PreTrimCore}}, nil
	}
	if preset, ok := doc.Triangles[name]; ok {
		algo, err := preset.toAlgorithm()
		if err != nil {
			return nil, err
		}
		return &Plan{TriangleAlgorithm: &algo}, nil
	}

	return nil, errs.NotFound("config.LoadPlan", "preset", name)
}

// toCommunityPlan builds a community.Plan from the preset, starting
// from NewPlan's defaults and overriding only fields the TOML document
// set to a non-zero value, so an omitted field keeps its spec default
// rather than silently becoming zero.
func (p planPreset) toCommunityPlan() *community.Plan {
	algo := community.Algorithm(p.Algorithm)
	if algo == "" {
		algo = community.AlgorithmLouvain
	}
	plan := community.NewPlan(algo, p.OutputName)
	plan.EnableVertexFollowing = p.EnableVertexFollowing
	plan.Deterministic = p.Deterministic
	if p.PerRoundModularityThreshold > 0 {
		plan.PerRoundModularityThreshold = p.PerRoundModularityThreshold
	}
	if p.TotalModularityThreshold > 0 {
		plan.TotalModularityThreshold = p.TotalModularityThreshold
	}
	if p.MaxLevels > 0 {
		plan.MaxLevels = p.MaxLevels
	}
	if p.MinGraphSize > 0 {
		plan.MinGraphSize = p.MinGraphSize
	}
	if p.Resolution > 0 {
		plan.Resolution = p.Resolution
	}
	if p.Randomness > 0 {
		plan.Randomness = p.Randomness
	}
	if p.BucketCount > 0 {
		plan.BucketCount = p.BucketCount
	}
	return plan
}

func (p trianglePreset) toAlgorithm() (triangles.Algorithm, error) {
	switch p.Algorithm {
	case "", "ordered":
		return triangles.OrderedCount, nil
	case "node":
		return triangles.NodeIteration, nil
	case "edge":
		return triangles.EdgeIteration, nil
	default:
		return 0, errs.InvalidArgument("config.LoadPlan", fmt.Sprintf("unknown triangle algorithm %q", p.Algorithm))
	}
}
