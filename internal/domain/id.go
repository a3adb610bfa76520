package domain

import (
	"strconv"
	"strings"
)

// EntityID identifies an entity either structurally (type plus ordered
// coordinates) or opaquely (an externally supplied string).
//
// Two ids are equal iff their canonical renderings are equal, so
// Opaque("Plate:0") equals Structural(TypePlate, At(PlateIndex, 0)).
// Use Equal or Key rather than ==.
type EntityID struct {
	canonical  string
	entityType EntityType
	coords     []Coord
}

// Structural builds the id of an entity of type t at the given coordinates
func Structural(t EntityType, coords ...Coord) EntityID {
	var b strings.Builder
	b.WriteString(string(t))
	for _, c := range coords {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c.Value))
	}
	cp := make([]Coord, len(coords))
	copy(cp, coords)
	return EntityID{canonical: b.String(), entityType: t, coords: cp}
}

// Opaque wraps an externally supplied identifier
func Opaque(raw string) EntityID {
	return EntityID{canonical: raw}
}

// ParseID reads a canonical rendering back into a structural id when it
// names a registered type with the right number of integer coordinates.
// Anything else becomes an opaque id.
func ParseID(s string) EntityID {
	parts := strings.Split(s, ":")
	schema, ok := schemas[EntityType(parts[0])]
	if !ok || len(parts)-1 != len(schema.Layout) {
		return Opaque(s)
	}
	coords := make([]Coord, len(schema.Layout))
	for i, kind := range schema.Layout {
		v, err := strconv.Atoi(parts[i+1])
		if err != nil {
			return Opaque(s)
		}
		coords[i] = Coord{Kind: kind, Value: v}
	}
	id := Structural(schema.Type, coords...)
	if id.canonical != s {
		// "+1" or "01" parse but do not round-trip
		return Opaque(s)
	}
	return id
}

// Canonical returns "<type>:<c1>[:<c2>...]" for structural ids and the raw
// string for opaque ones
func (id EntityID) Canonical() string {
	return id.canonical
}

// Key returns the map key for the id (its canonical form)
func (id EntityID) Key() string {
	return id.canonical
}

// String implements fmt.Stringer
func (id EntityID) String() string {
	return id.canonical
}

// Equal compares canonical renderings
func (id EntityID) Equal(other EntityID) bool {
	return id.canonical == other.canonical
}

// IsZero reports whether the id was never assigned
func (id EntityID) IsZero() bool {
	return id.canonical == ""
}

// IsOpaque reports whether the id carries no structural information
func (id EntityID) IsOpaque() bool {
	return id.entityType == ""
}

// Type returns the entity type of a structural id
func (id EntityID) Type() (EntityType, bool) {
	if id.entityType == "" {
		return "", false
	}
	return id.entityType, true
}

// Coordinates returns a copy of the structural coordinates, nil for opaque ids
func (id EntityID) Coordinates() []Coord {
	if id.coords == nil {
		return nil
	}
	cp := make([]Coord, len(id.coords))
	copy(cp, id.coords)
	return cp
}

// MarshalText renders the canonical form
func (id EntityID) MarshalText() ([]byte, error) {
	return []byte(id.canonical), nil
}

// UnmarshalText reads an id back as opaque; structure is not recoverable
// from text alone
func (id *EntityID) UnmarshalText(b []byte) error {
	*id = Opaque(string(b))
	return nil
}
