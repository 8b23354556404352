// Package graph implements the in-memory property-graph substrate: a
// compressed-sparse-row topology, immutable once built, plus the owning
// Graph object that ties the topology to its node/edge property tables,
// its entity-type manager, and cache of derived topology views. A Graph
// holds one entity-type manager for both node and edge types; there is
// no separate manager per entity kind.
//
// The topology and property tables are supplied by an external loader
// (on-disk format, manifests, and distributed orchestration are out of
// scope, see spec.md §1); this package only owns what the loader hands
// it for the lifetime of the process.
package graph
