package types

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/dd0wney/parageon/pkg/errs"
)

// TypeID identifies either an atomic type or a composite type in a
// single dense id space owned by a Manager.
type TypeID = uint32

// kind distinguishes how a TypeID's record should be interpreted.
type kind uint8

const (
	kindAtomic kind = iota
	kindComposite
)

// record is the manager's per-id bookkeeping: the atomic-id set that
// defines the type (a singleton for an atomic type, itself for a
// composite), plus its name if atomic.
type record struct {
	kind   kind
	name   string  // set only for atomic types
	atoms  []TypeID // sorted, deduplicated atomic ids; for an atomic type this is [self]
}

// Manager assigns dense ids to atomic type names, interns composite
// types (sets of atomic ids) to dense ids, and answers subtype queries
// by set containment. A zero Manager is not usable; use NewManager.
type Manager struct {
	mu sync.RWMutex

	records []record // indexed by TypeID

	byName      map[string]TypeID // atomic name -> id
	byAtomicSet map[string]TypeID // canonical encoded atom-set -> composite id
}

// NewManager returns an empty entity-type manager.
func NewManager() *Manager {
	return &Manager{
		byName:      make(map[string]TypeID),
		byAtomicSet: make(map[string]TypeID),
	}
}

// AddAtomicType returns the id for name, creating it if absent. The
// operation is idempotent: calling it twice with the same name returns
// the same id.
func (m *Manager) AddAtomicType(name string) TypeID {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byName[name]; ok {
		return id
	}

	id := TypeID(len(m.records))
	m.records = append(m.records, record{
		kind:  kindAtomic,
		name:  name,
		atoms: []TypeID{id},
	})
	m.byName[name] = id
	return id
}

// GetOrAddComposite returns the id for the exact set of atomic ids,
// creating it if no composite with that set has been interned yet.
// atomicIDs need not be sorted or deduplicated by the caller. Each
// entry must already belong to the manager as an atomic type.
func (m *Manager) GetOrAddComposite(atomicIDs []TypeID) (TypeID, error) {
	canon := canonicalize(atomicIDs)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range canon {
		if int(a) >= len(m.records) || m.records[a].kind != kindAtomic {
			return 0, errs.InvalidArgument("GetOrAddComposite", "atomic id does not belong to this manager")
		}
	}

	key := encodeSet(canon)
	if id, ok := m.byAtomicSet[key]; ok {
		return id, nil
	}

	id := TypeID(len(m.records))
	m.records = append(m.records, record{
		kind:  kindComposite,
		atoms: canon,
	})
	m.byAtomicSet[key] = id
	return id, nil
}

// IsSubtypeOf reports whether a's atomic-id set is a subset of b's. An
// atomic type is a subtype only of itself and composites that include
// it. Returns ErrInvalidArgument if either id does not belong to the
// manager.
func (m *Manager) IsSubtypeOf(a, b TypeID) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ra, err := m.recordFor(a)
	if err != nil {
		return false, err
	}
	rb, err := m.recordFor(b)
	if err != nil {
		return false, err
	}
	return isSubset(ra.atoms, rb.atoms), nil
}

// GetAtomicSubtypes enumerates the atomic ids contained in t.
func (m *Manager) GetAtomicSubtypes(t TypeID) ([]TypeID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, err := m.recordFor(t)
	if err != nil {
		return nil, err
	}
	out := make([]TypeID, len(r.atoms))
	copy(out, r.atoms)
	return out, nil
}

// GetSupertypes enumerates composite types whose atomic-id set contains
// t's atomic-id set (t itself is never returned, even when t is a
// composite whose set trivially contains itself).
func (m *Manager) GetSupertypes(t TypeID) ([]TypeID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rt, err := m.recordFor(t)
	if err != nil {
		return nil, err
	}

	var supers []TypeID
	for id := range m.records {
		if TypeID(id) == t {
			continue
		}
		r := &m.records[id]
		if r.kind != kindComposite {
			continue
		}
		if isSubset(rt.atoms, r.atoms) {
			supers = append(supers, TypeID(id))
		}
	}
	return supers, nil
}

// AtomicName returns the name of an atomic type. Fails with
// ErrInvalidArgument if t is not atomic or does not belong to the manager.
func (m *Manager) AtomicName(t TypeID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, err := m.recordFor(t)
	if err != nil {
		return "", err
	}
	if r.kind != kindAtomic {
		return "", errs.InvalidArgument("AtomicName", "type id is not atomic")
	}
	return r.name, nil
}

// NumTypes returns the total number of interned types (atomic + composite).
func (m *Manager) NumTypes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func (m *Manager) recordFor(t TypeID) (*record, error) {
	if int(t) >= len(m.records) {
		return nil, errs.InvalidArgument("types.Manager", "type id does not belong to this manager")
	}
	return &m.records[t], nil
}

// canonicalize sorts and deduplicates a slice of TypeIDs without
// mutating the caller's slice.
func canonicalize(ids []TypeID) []TypeID {
	out := make([]TypeID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	out = dedupeSorted(out)
	return out
}

func dedupeSorted(sorted []TypeID) []TypeID {
	if len(sorted) == 0 {
		return sorted
	}
	w := 1
	for r := 1; r < len(sorted); r++ {
		if sorted[r] != sorted[w-1] {
			sorted[w] = sorted[r]
			w++
		}
	}
	return sorted[:w]
}

// isSubset reports whether every element of a appears in b; both must
// already be sorted ascending.
func isSubset(a, b []TypeID) bool {
	i, j := 0, 0
	for i < len(a) {
		if j >= len(b) {
			return false
		}
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] > b[j]:
			j++
		default: // a[i] < b[j]: a[i] is missing from b
			return false
		}
	}
	return true
}

// encodeSet produces a canonical string key for a sorted, deduplicated
// id set, used to intern composites by exact set equality.
func encodeSet(sorted []TypeID) string {
	var sb strings.Builder
	for i, id := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}
