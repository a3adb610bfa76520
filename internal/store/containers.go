package store

import (
	"sort"
	"sync"

	"omegraph/internal/domain"
)

// ContainerStore maps identities to containers. It is the only place
// entities are created.
type ContainerStore struct {
	mu         sync.RWMutex
	containers map[string]*Container
	byType     map[domain.EntityType]map[string]*Container
	aliases    map[string]string
	seq        uint64
}

// ContainerReader is the lookup side of a ContainerStore
type ContainerReader interface {
	Get(id domain.EntityID) (*Container, bool)
	Contains(id domain.EntityID) bool
	Count(t *domain.EntityType, filter []domain.Coord) int
	CountAll() map[domain.EntityType]int
	All(t domain.EntityType) []*Container
	Types() []domain.EntityType
	Len() int
}

var _ ContainerReader = (*ContainerStore)(nil)

// NewContainerStore creates an empty store
func NewContainerStore() *ContainerStore {
	return &ContainerStore{
		containers: make(map[string]*Container),
		byType:     make(map[domain.EntityType]map[string]*Container),
		aliases:    make(map[string]string),
	}
}

// GetOrCreate returns the container for (t, coords), allocating a default
// entity on first use. Repeated calls return the same container.
func (s *ContainerStore) GetOrCreate(t domain.EntityType, coords ...domain.Coord) (*Container, error) {
	id := domain.Structural(t, coords...)
	key := id.Key()

	s.mu.RLock()
	c, ok := s.containers[key]
	s.mu.RUnlock()
	if ok {
		return c, nil
	}

	entity, err := domain.New(t)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.containers[key]; ok {
		return c, nil
	}
	s.seq++
	c = &Container{ID: id, Entity: entity, coords: id.Coordinates(), seq: s.seq}
	s.containers[key] = c
	typed, ok := s.byType[t]
	if !ok {
		typed = make(map[string]*Container)
		s.byType[t] = typed
	}
	typed[key] = c
	return c, nil
}

// Get looks up a container without creating one. Canonical keys are tried
// before external id aliases.
func (s *ContainerStore) Get(id domain.EntityID) (*Container, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(id.Key())
}

// Contains reports whether a container exists under id's canonical key.
// Aliases are not consulted.
func (s *ContainerStore) Contains(id domain.EntityID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.containers[id.Key()]
	return ok
}

func (s *ContainerStore) lookup(key string) (*Container, bool) {
	if c, ok := s.containers[key]; ok {
		return c, true
	}
	if canonical, ok := s.aliases[key]; ok {
		c, ok := s.containers[canonical]
		return c, ok
	}
	return nil, false
}

// SetExternalID records the source-assigned id on c's entity and registers
// it as an alias, replacing any alias the entity had before
func (s *ContainerStore) SetExternalID(c *Container, external string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev := c.Entity.ExternalID(); prev != "" && s.aliases[prev] == c.ID.Key() {
		delete(s.aliases, prev)
	}
	c.Entity.SetExternalID(external)
	if external != "" && external != c.ID.Key() {
		s.aliases[external] = c.ID.Key()
	}
}

// Count returns the number of containers of type t (any type when nil)
// whose coordinates include every coordinate in filter
func (s *ContainerStore) Count(t *domain.EntityType, filter []domain.Coord) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.containers
	if t != nil {
		set = s.byType[*t]
	}
	if len(filter) == 0 {
		return len(set)
	}
	n := 0
	for _, c := range set {
		if domain.Matches(c.coords, filter) {
			n++
		}
	}
	return n
}

// CountAll returns per-type totals
func (s *ContainerStore) CountAll() map[domain.EntityType]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.EntityType]int, len(s.byType))
	for t, set := range s.byType {
		out[t] = len(set)
	}
	return out
}

// All returns the containers of type t in creation order
func (s *ContainerStore) All(t domain.EntityType) []*Container {
	s.mu.RLock()
	set := s.byType[t]
	out := make([]*Container, 0, len(set))
	for _, c := range set {
		out = append(out, c)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Types lists the entity types present, in name order
func (s *ContainerStore) Types() []domain.EntityType {
	s.mu.RLock()
	out := make([]domain.EntityType, 0, len(s.byType))
	for t := range s.byType {
		out = append(out, t)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Remove deletes the container for id and any alias pointing at it
func (s *ContainerStore) Remove(id domain.EntityID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.lookup(id.Key())
	if !ok {
		return false
	}
	key := c.ID.Key()
	delete(s.containers, key)
	t := c.Type()
	delete(s.byType[t], key)
	if len(s.byType[t]) == 0 {
		delete(s.byType, t)
	}
	if ext := c.Entity.ExternalID(); ext != "" && s.aliases[ext] == key {
		delete(s.aliases, ext)
	}
	return true
}

// Len returns the total number of containers
func (s *ContainerStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.containers)
}
