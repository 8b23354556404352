// Package pools provides object pooling for reducing GC pressure.
//
// Uint32Pool pools the node-id slices triangle counting and k-Truss
// allocate per vertex on every pass (neighbor lists, intersection
// buffers) — the teacher's byte/uint64/map pools served a storage and
// wire-protocol layer this module doesn't carry; see DESIGN.md for why
// they were dropped rather than kept unwired.
package pools
