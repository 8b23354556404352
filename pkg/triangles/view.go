// Package triangles implements triangle counting, local clustering
// coefficients, and k-Truss decomposition over a sorted adjacency view
// (spec §4.7): a lighter "view + parallel for" exemplar alongside
// package community's multi-phase algorithms, sharing the same
// binary-search and ordered-intersection primitives across all three
// counting strategies and k-Truss's support check.
package triangles

import (
	"github.com/dd0wney/parageon/pkg/pools"
	"github.com/dd0wney/parageon/pkg/views"
)

// SortedView is the shape every operation in this package needs: a
// topology whose per-node adjacency is sorted ascending by destination,
// enabling both binary search (views.Sorted) and the two-pointer
// intersections triangle counting and k-Truss build on.
type SortedView interface {
	views.TopologyView
	views.Sorted
}

// sortedNeighbors copies v's destination list in adjacency order
// (already ascending for any SortedView), the starting point every
// counting strategy below intersects against. The backing slice comes
// from the shared uint32 pool; callers done with the result before
// returning must hand it back via releaseNeighbors.
func sortedNeighbors(view SortedView, v uint32) []uint32 {
	start, end := view.OutRange(v)
	out := pools.GetUint32s(int(end - start))
	for e := start; e < end; e++ {
		out = append(out, view.OutEdgeDst(e))
	}
	return out
}

// releaseNeighbors returns a slice obtained from sortedNeighbors or
// unremovedNeighbors to the pool. Safe to skip for slices that escape
// their caller's scope (e.g. are returned further up the stack).
func releaseNeighbors(s []uint32) {
	pools.PutUint32s(s)
}

// intersectCount returns the number of values common to two ascending,
// possibly-containing-duplicates slices via a two-pointer merge.
func intersectCount(a, b []uint32) int {
	var i, j, count int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}
	return count
}
