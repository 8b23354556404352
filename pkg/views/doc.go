// Package views implements the topology view cache (spec §4.4): named
// projections derived from a base topology (transposed, bidirectional,
// sorted, degree-relabeled, type-aware, undirected), each built once
// and cached behind a handle.
//
// This package depends only on a small structural interface
// (BaseTopology) rather than on package graph directly, so graph can
// own a *Cache without an import cycle: any type exposing NumNodes,
// NumEdges, OutRange, OutEdgeDst, and RawArrays satisfies it, and
// *graph.Topology does so without needing to know views exists.
package views
