package store

import "omegraph/internal/domain"

// Snapshot builds the ordered export view of a finished pair of stores
func Snapshot(unit string, cs *ContainerStore, rs *ReferenceStore) *domain.Graph {
	g := &domain.Graph{
		Unit:       unit,
		Entities:   make([]domain.GraphEntity, 0, cs.Len()),
		References: []domain.GraphReference{},
		Counts:     cs.CountAll(),
	}

	for _, t := range cs.Types() {
		for _, c := range cs.All(t) {
			g.Entities = append(g.Entities, domain.NewGraphEntity(c.ID, c.Coords(), c.Entity))
		}
	}

	for _, from := range rs.FromKeys() {
		for _, r := range rs.Outgoing(from) {
			g.References = append(g.References, domain.GraphReference{
				From: from.Canonical(),
				To:   r.To.Canonical(),
				Role: string(r.Role),
			})
		}
	}

	g.Sort()
	return g
}
