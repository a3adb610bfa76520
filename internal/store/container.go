package store

import "omegraph/internal/domain"

// Container is the single record held for an allocated entity
type Container struct {
	ID     domain.EntityID
	Entity domain.Entity
	coords []domain.Coord
	seq    uint64
}

// Type returns the entity type of the payload
func (c *Container) Type() domain.EntityType {
	return c.Entity.EntityType()
}

// Coords returns the coordinates the container was created with, in order
func (c *Container) Coords() []domain.Coord {
	out := make([]domain.Coord, len(c.coords))
	copy(out, c.coords)
	return out
}

// Coord returns the value recorded for kind
func (c *Container) Coord(kind domain.Index) (int, bool) {
	return domain.Lookup(c.coords, kind)
}
