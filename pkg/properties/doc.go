// Package properties implements columnar node/edge property tables
// (spec §4.3): an ordered collection of named, immutable-once-published
// columns addressed by property index, plus typed views that alias the
// underlying arrays without copying.
package properties
