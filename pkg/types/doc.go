// Package types implements the entity-type manager (spec §4.2): a
// registry of atomic type names interned to dense ids, composite types
// interned by their exact set of atomic ids, and the subtype/supertype
// queries derived from set containment between those ids.
package types
