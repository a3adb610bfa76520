package consolidate

import (
	"context"

	"go.uber.org/zap"

	"omegraph/internal/domain"
)

// MaterializeAncestors creates every parent implied by a container's
// coordinates that was never created explicitly. Existing parents are left
// untouched, so running it twice changes nothing.
type MaterializeAncestors struct{}

func (MaterializeAncestors) Name() string { return "materialize_ancestors" }

func (MaterializeAncestors) Run(ctx context.Context, st *State) error {
	cs := st.Containers
	for _, t := range cs.Types() {
		for _, c := range cs.All(t) {
			typ, coords := c.Type(), c.Coords()
			for {
				pt, pcoords, ok := domain.ParentOf(typ, coords)
				if !ok {
					break
				}
				pid := domain.Structural(pt, pcoords...)
				if !cs.Contains(pid) {
					parent, err := cs.GetOrCreate(pt, pcoords...)
					if err != nil {
						return err
					}
					if name, ok := st.Policy.DefaultNames[pt]; ok {
						if n, ok := parent.Entity.(domain.Named); ok {
							n.SetName(name)
						}
					}
					st.Report.Materialized = append(st.Report.Materialized, pid)
					st.Logger.Debug("Materialized ancestor",
						zap.String("id", pid.Canonical()),
						zap.String("child", c.ID.Canonical()))
				}
				typ, coords = pt, pcoords
			}
		}
	}
	return nil
}
