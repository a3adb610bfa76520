package store

import (
	"sync"

	"omegraph/internal/domain"
)

// Role qualifies why one entity references another
type Role string

const (
	RoleNone             Role = ""
	RoleEmissionFilter   Role = "emission_filter"
	RoleExcitationFilter Role = "excitation_filter"
	RoleDichroic         Role = "dichroic"
	RoleFilterSet        Role = "filter_set"
	RoleLightSource      Role = "light_source"
	RoleDetector         Role = "detector"
	RoleObjective        Role = "objective"
	RoleInstrument       Role = "instrument"
	RoleImage            Role = "image"
	RoleAnnotation       Role = "annotation"
)

// Roles lists every known role
var Roles = []Role{RoleNone, RoleEmissionFilter, RoleExcitationFilter, RoleDichroic,
	RoleFilterSet, RoleLightSource, RoleDetector, RoleObjective, RoleInstrument,
	RoleImage, RoleAnnotation}

// Reference is one outgoing link. To need not exist in any ContainerStore.
type Reference struct {
	To   domain.EntityID
	Role Role
}

// ReferenceStore records directed links between identities, with a reverse
// index for backward navigation
type ReferenceStore struct {
	mu      sync.RWMutex
	forward map[string][]Reference
	from    map[string]domain.EntityID
	order   []string
	reverse map[string][]domain.EntityID
}

// ReferenceReader is the lookup side of a ReferenceStore
type ReferenceReader interface {
	HasReference(from, to domain.EntityID) bool
	ReferencesOf(from domain.EntityID) []domain.EntityID
	ReferencesWithRole(from domain.EntityID, role Role) []domain.EntityID
	Outgoing(from domain.EntityID) []Reference
	ReferencedBy(to domain.EntityID) []domain.EntityID
	Count(fromType, toType *domain.EntityType) int
	FromKeys() []domain.EntityID
	Len() int
}

var _ ReferenceReader = (*ReferenceStore)(nil)

// NewReferenceStore creates an empty store
func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{
		forward: make(map[string][]Reference),
		from:    make(map[string]domain.EntityID),
		reverse: make(map[string][]domain.EntityID),
	}
}

// AddReference appends to to from's list
func (s *ReferenceStore) AddReference(from, to domain.EntityID) {
	s.AddRoleReference(from, to, RoleNone)
}

// AddRoleReference appends a role-qualified link. Duplicates are kept.
func (s *ReferenceStore) AddRoleReference(from, to domain.EntityID, role Role) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := from.Key()
	prev, seen := s.from[key]
	if !seen {
		s.order = append(s.order, key)
	}
	// keep whichever rendering carries a type so Count can filter on it
	if !seen || (prev.IsOpaque() && !from.IsOpaque()) {
		s.from[key] = from
	}
	s.forward[key] = append(s.forward[key], Reference{To: to, Role: role})
	s.reverse[to.Key()] = append(s.reverse[to.Key()], from)
}

// HasReference reports whether from links to to under any role
func (s *ReferenceStore) HasReference(from, to domain.EntityID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.forward[from.Key()] {
		if r.To.Equal(to) {
			return true
		}
	}
	return false
}

// ReferencesOf returns the targets of from in insertion order
func (s *ReferenceStore) ReferencesOf(from domain.EntityID) []domain.EntityID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := s.forward[from.Key()]
	out := make([]domain.EntityID, len(refs))
	for i, r := range refs {
		out[i] = r.To
	}
	return out
}

// ReferencesWithRole returns the targets of from recorded under role
func (s *ReferenceStore) ReferencesWithRole(from domain.EntityID, role Role) []domain.EntityID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.EntityID
	for _, r := range s.forward[from.Key()] {
		if r.Role == role {
			out = append(out, r.To)
		}
	}
	return out
}

// Outgoing returns from's references with their roles
func (s *ReferenceStore) Outgoing(from domain.EntityID) []Reference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := s.forward[from.Key()]
	out := make([]Reference, len(refs))
	copy(out, refs)
	return out
}

// ReferencedBy returns every from that links to to, one entry per link
func (s *ReferenceStore) ReferencedBy(to domain.EntityID) []domain.EntityID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	froms := s.reverse[to.Key()]
	out := make([]domain.EntityID, len(froms))
	copy(out, froms)
	return out
}

// Count returns the number of (from, to) pairs whose types match the
// filters. A nil filter matches anything; opaque ids only match nil.
func (s *ReferenceStore) Count(fromType, toType *domain.EntityType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for key, refs := range s.forward {
		if !typeMatches(s.from[key], fromType) {
			continue
		}
		for _, r := range refs {
			if typeMatches(r.To, toType) {
				n++
			}
		}
	}
	return n
}

func typeMatches(id domain.EntityID, want *domain.EntityType) bool {
	if want == nil {
		return true
	}
	t, ok := id.Type()
	return ok && t == *want
}

// FromKeys returns every from identity in first-insertion order
func (s *ReferenceStore) FromKeys() []domain.EntityID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.EntityID, len(s.order))
	for i, key := range s.order {
		out[i] = s.from[key]
	}
	return out
}

// RemoveFrom drops every outgoing link of from
func (s *ReferenceStore) RemoveFrom(from domain.EntityID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := from.Key()
	refs, ok := s.forward[key]
	if !ok {
		return 0
	}
	for _, r := range refs {
		toKey := r.To.Key()
		kept := s.reverse[toKey][:0]
		for _, f := range s.reverse[toKey] {
			if f.Key() != key {
				kept = append(kept, f)
			}
		}
		if len(kept) == 0 {
			delete(s.reverse, toKey)
		} else {
			s.reverse[toKey] = kept
		}
	}
	delete(s.forward, key)
	delete(s.from, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return len(refs)
}

// Len returns the number of distinct from identities
func (s *ReferenceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.forward)
}
