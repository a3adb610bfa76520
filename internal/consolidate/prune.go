package consolidate

import (
	"context"
	"sort"

	"omegraph/internal/domain"
)

// PrunePlaceholders removes containers of a prunable type whose payload
// never received anything beyond coordinates. Their outgoing references go
// with them; references pointing at them are left dangling.
type PrunePlaceholders struct{}

func (PrunePlaceholders) Name() string { return "prune_placeholders" }

func (PrunePlaceholders) Run(ctx context.Context, st *State) error {
	types := make([]domain.EntityType, 0, len(st.Policy.Prunable))
	for t, ok := range st.Policy.Prunable {
		if ok {
			types = append(types, t)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		for _, c := range st.Containers.All(t) {
			p, ok := c.Entity.(domain.Placeholder)
			if !ok || !p.IsPlaceholder() || c.Entity.ExternalID() != "" {
				continue
			}
			st.Containers.Remove(c.ID)
			st.References.RemoveFrom(c.ID)
			st.Report.Pruned = append(st.Report.Pruned, c.ID)
		}
	}
	return nil
}
