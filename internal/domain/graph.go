package domain

import "sort"

// Graph is the export view of a consolidated import unit
type Graph struct {
	Unit       string             `json:"unit" yaml:"unit"`
	Entities   []GraphEntity      `json:"entities" yaml:"entities"`
	References []GraphReference   `json:"references" yaml:"references"`
	Counts     map[EntityType]int `json:"counts" yaml:"counts"`
}

// GraphEntity is one entity in the export view
type GraphEntity struct {
	ID         string     `json:"id" yaml:"id"`
	Type       EntityType `json:"type" yaml:"type"`
	Label      string     `json:"label" yaml:"label"`
	ExternalID string     `json:"external_id,omitempty" yaml:"external_id,omitempty"`
	Coords     []Coord    `json:"coords,omitempty" yaml:"coords,omitempty"`
	Attributes Entity     `json:"attributes" yaml:"attributes"`
}

// GraphReference is a directed link. To may name an entity that is absent
// from Entities.
type GraphReference struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
}

// NewGraphEntity describes e as stored under id
func NewGraphEntity(id EntityID, coords []Coord, e Entity) GraphEntity {
	return GraphEntity{
		ID:         id.Canonical(),
		Type:       e.EntityType(),
		Label:      entityLabel(id, e),
		ExternalID: e.ExternalID(),
		Coords:     coords,
		Attributes: e,
	}
}

// Sort orders entities by type then id, and references by from then to
func (g *Graph) Sort() {
	sort.SliceStable(g.Entities, func(i, j int) bool {
		a, b := g.Entities[i], g.Entities[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return lessCoords(a.Coords, b.Coords, a.ID, b.ID)
	})
	sort.SliceStable(g.References, func(i, j int) bool {
		a, b := g.References[i], g.References[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
}

// Broken returns references whose target is not an entity of the graph
func (g *Graph) Broken() []GraphReference {
	ids := make(map[string]bool, len(g.Entities))
	for _, e := range g.Entities {
		ids[e.ID] = true
		if e.ExternalID != "" {
			ids[e.ExternalID] = true
		}
	}
	var out []GraphReference
	for _, r := range g.References {
		if !ids[r.To] {
			out = append(out, r)
		}
	}
	return out
}

func entityLabel(id EntityID, e Entity) string {
	if n, ok := e.(Named); ok && n.GetName() != "" {
		return n.GetName()
	}
	return id.Canonical()
}

// lessCoords compares numerically so Channel:0:10 sorts after Channel:0:2
func lessCoords(a, b []Coord, aid, bid string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Value != b[i].Value {
			return a[i].Value < b[i].Value
		}
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return aid < bid
}
