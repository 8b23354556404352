package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

func NodeID(id uint64) Field {
	return Uint64("node_id", id)
}

func EdgeID(id uint64) Field {
	return Uint64("edge_id", id)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

// Graph-domain field helpers, named after the concepts
// pkg/views/pkg/community/pkg/triangles actually log (view kinds,
// coarsening levels, k-Truss's k, modularity, Jaccard's comparison
// node) rather than the HTTP/storage vocabulary a server package
// would reach for.

// ViewKind names which topology view kind a build/cache event concerns
// (spec §4.4's closed set of view kinds).
func ViewKind(kind string) Field {
	return String("view_kind", kind)
}

// Level identifies a coarsening level within a Louvain/Leiden run
// (spec §4.6 "Shared state per level").
func Level(n int) Field {
	return Int("level", n)
}

// Modularity records a modularity value Q (spec §4.6).
func Modularity(q float64) Field {
	return Float64("modularity", q)
}

// K records the k-Truss decomposition parameter (spec §4.7).
func K(k int) Field {
	return Int("k", k)
}

// AliveEdges records the number of edges surviving a k-Truss
// decomposition.
func AliveEdges(n int) Field {
	return Int("alive_edges", n)
}

// Rounds records how many fixpoint-iteration rounds an algorithm took.
func Rounds(n int) Field {
	return Int("rounds", n)
}

// CompareNode records the comparison node id a Jaccard similarity run
// was computed against.
func CompareNode(id uint64) Field {
	return Uint64("compare_node", id)
}
