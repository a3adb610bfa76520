package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ConsolidateAll consolidates independent units concurrently, at most limit
// at a time (unbounded when limit <= 0). The first failure cancels the
// units that have not started yet.
func ConsolidateAll(ctx context.Context, units []*Unit, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, u := range units {
		g.Go(func() error {
			if _, err := u.Consolidate(ctx); err != nil {
				return fmt.Errorf("consolidate %s (%s): %w", u.Source, u.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}
