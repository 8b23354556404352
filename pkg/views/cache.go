package views

import (
	"fmt"
	"sync"
	"time"

	"github.com/dd0wney/parageon/pkg/errs"
	"github.com/dd0wney/parageon/pkg/logging"
	"github.com/dd0wney/parageon/pkg/metrics"
)

// Cache builds and caches derived topology views over one immutable
// base topology. Repeated Build calls for the same Kind return the
// same handle; concurrent first-builders race on a per-kind mutex and
// only one of them actually constructs the view (double-checked
// publish), matching the teacher's storage view-cache discipline
// adapted from locked-map-of-handles to locked-map-of-Kind.
type Cache struct {
	base BaseTopology

	mu    sync.RWMutex
	views map[Kind]TopologyView

	// buildLocks serializes concurrent first-builds of the same kind
	// without holding mu (and therefore without blocking readers of
	// other already-cached kinds) while the build runs.
	buildLocks map[Kind]*sync.Mutex
	locksMu    sync.Mutex
}

// NewCache creates an empty view cache over base. base must not be
// mutated for the lifetime of the cache (the base topology is
// immutable after construction, per spec §3).
func NewCache(base BaseTopology) *Cache {
	return &Cache{
		base:       base,
		views:      make(map[Kind]TopologyView),
		buildLocks: make(map[Kind]*sync.Mutex),
	}
}

// Build returns the cached handle for kind, building it on first
// request. Kind-specific views that need extra input (EdgesSortedByProperty,
// EdgeTypeAwareBiDir) have their own Build* entry points below instead.
func (c *Cache) Build(kind Kind) (TopologyView, error) {
	switch kind {
	case Default, Transposed, BiDirectional, EdgesSortedByDestID,
		NodesSortedByDegree, NodesSortedByDegreeEdgesSortedByDestID, Undirected:
		return c.buildLocked(kind, func() (TopologyView, error) { return c.construct(kind) })
	default:
		return nil, errs.InvalidArgument("BuildView", fmt.Sprintf("kind %s requires extra input; use its dedicated Build method", kind))
	}
}

// BuildSortedByProperty builds (or returns the cached) EdgesSortedByProperty
// view, keyed additionally by property name per spec §4.4 ("the property
// name is part of the key"). edgeWeight[e] must give the sort key for
// base edge id e.
func (c *Cache) BuildSortedByProperty(propertyName string, edgeWeight []float64) (TopologyView, error) {
	if len(edgeWeight) != c.base.NumEdges() {
		return nil, errs.InvalidArgument("BuildSortedByProperty", "edgeWeight length must equal NumEdges")
	}
	// EdgesSortedByProperty has a single cache slot: a cached view built
	// over a different property is dropped here and rebuilt for this one.
	c.mu.Lock()
	if cached, ok := c.views[EdgesSortedByProperty].(*sortedByPropertyView); ok && cached.PropertyName() != propertyName {
		delete(c.views, EdgesSortedByProperty)
	}
	c.mu.Unlock()
	return c.buildLocked(EdgesSortedByProperty, func() (TopologyView, error) {
		return newSortedByPropertyView(c.base, propertyName, edgeWeight)
	})
}

// BuildTypeAware builds (or returns the cached) EdgeTypeAwareBiDir
// view. edgeTypeID[e] gives the entity-type id of base edge id e;
// numTypes bounds the id space (spec §4.4, §9).
func (c *Cache) BuildTypeAware(edgeTypeID []uint32, numTypes int) (TopologyView, error) {
	if len(edgeTypeID) != c.base.NumEdges() {
		return nil, errs.InvalidArgument("BuildTypeAware", "edgeTypeID length must equal NumEdges")
	}
	return c.buildLocked(EdgeTypeAwareBiDir, func() (TopologyView, error) {
		return newTypeAwareView(c.base, edgeTypeID, numTypes)
	})
}

// buildLocked returns the cached view for kind if present, otherwise
// runs build under a per-kind lock and publishes the result.
func (c *Cache) buildLocked(kind Kind, build func() (TopologyView, error)) (TopologyView, error) {
	c.mu.RLock()
	if v, ok := c.views[kind]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	lock := c.lockFor(kind)
	lock.Lock()
	defer lock.Unlock()

	// Double-checked: another goroutine may have published while we
	// waited for the lock.
	c.mu.RLock()
	if v, ok := c.views[kind]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	buildStart := time.Now()
	v, err := build()
	elapsed := time.Since(buildStart)
	reg := metrics.DefaultRegistry()
	if err != nil {
		reg.RecordViewBuild(kind.String(), "error", elapsed)
		logging.With(logging.Component("views")).Error("view build failed",
			logging.ViewKind(kind.String()), logging.Error(err))
		return nil, err
	}
	reg.RecordViewBuild(kind.String(), "ok", elapsed)
	logging.With(logging.Component("views")).Debug("view built",
		logging.ViewKind(kind.String()), logging.Latency(elapsed))

	c.mu.Lock()
	c.views[kind] = v
	size := len(c.views)
	c.mu.Unlock()
	reg.SetViewCacheSize(size)
	return v, nil
}

func (c *Cache) lockFor(kind Kind) *sync.Mutex {
	c.locksMu.Lock()
	defer c.locksMu.Unlock()
	l, ok := c.buildLocks[kind]
	if !ok {
		l = &sync.Mutex{}
		c.buildLocks[kind] = l
	}
	return l
}

// DropAll invalidates every cached view. Per spec §4.4, this only ever
// needs calling at graph destruction or an explicit drop_all_topologies;
// the base topology itself is immutable and never triggers it
// automatically.
func (c *Cache) DropAll() {
	c.mu.Lock()
	c.views = make(map[Kind]TopologyView)
	c.mu.Unlock()
	metrics.DefaultRegistry().SetViewCacheSize(0)
}

func (c *Cache) construct(kind Kind) (TopologyView, error) {
	switch kind {
	case Default:
		return &defaultView{base: c.base}, nil
	case Transposed:
		return newTransposedView(c.base)
	case BiDirectional:
		return newBiDirectionalView(c.base)
	case EdgesSortedByDestID:
		return newSortedDestView(c.base)
	case NodesSortedByDegree:
		return newDegreeSortedView(c.base, false)
	case NodesSortedByDegreeEdgesSortedByDestID:
		return newDegreeSortedView(c.base, true)
	case Undirected:
		return newUndirectedView(c.base)
	default:
		return nil, errs.InvalidArgument("BuildView", fmt.Sprintf("unsupported kind %s", kind))
	}
}
