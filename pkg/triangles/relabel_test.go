package triangles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dd0wney/parageon/pkg/triangles"
)

func TestShouldRelabelAlwaysAndNever(t *testing.T) {
	view := diamond()
	assert.True(t, triangles.ShouldRelabel(triangles.RelabelAlways, view))
	assert.False(t, triangles.ShouldRelabel(triangles.RelabelNever, view))
}

func TestShouldRelabelAutoOnUniformDegree(t *testing.T) {
	// A 4-clique has uniform degree, so the p95/mean ratio is 1 — well
	// under the power-law threshold, so auto should not relabel.
	view := diamond()
	assert.False(t, triangles.ShouldRelabel(triangles.RelabelAuto, view))
}

func TestShouldRelabelAutoOnSkewedDegree(t *testing.T) {
	// A star graph: one hub connected to 19 leaves has extreme degree
	// skew (hub degree 19 vs. mean ~1.9), well past the power-law
	// threshold.
	edges := make([][2]uint32, 0, 19)
	for i := uint32(1); i <= 19; i++ {
		edges = append(edges, [2]uint32{0, i})
	}
	view := newSortedSym(20, edges)
	assert.True(t, triangles.ShouldRelabel(triangles.RelabelAuto, view))
}
