package consolidate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"omegraph/internal/domain"
	"omegraph/internal/store"
)

// State is what every pass operates on
type State struct {
	Containers *store.ContainerStore
	References *store.ReferenceStore
	Policy     Policy
	Report     *Report
	Logger     *zap.Logger
}

// Pass is one independent consolidation step
type Pass interface {
	Name() string
	Run(ctx context.Context, st *State) error
}

// Report records what consolidation changed
type Report struct {
	Materialized []domain.EntityID `json:"materialized"`
	Pruned       []domain.EntityID `json:"pruned"`
	Channels     []ChannelDisplay  `json:"channels"`
}

// Pipeline runs its passes in a fixed order
type Pipeline struct {
	passes []Pass
	policy Policy
	logger *zap.Logger
}

// DefaultPasses returns ancestor materialization, placeholder pruning and
// channel display derivation, in that order
func DefaultPasses() []Pass {
	return []Pass{MaterializeAncestors{}, PrunePlaceholders{}, DeriveChannelDisplay{}}
}

// New creates a pipeline. With no passes given it runs DefaultPasses.
func New(policy Policy, logger *zap.Logger, passes ...Pass) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(passes) == 0 {
		passes = DefaultPasses()
	}
	return &Pipeline{
		passes: passes,
		policy: policy,
		logger: logger.Named("consolidate"),
	}
}

// Run applies every pass to the stores. The context is checked between
// passes.
func (p *Pipeline) Run(ctx context.Context, cs *store.ContainerStore, rs *store.ReferenceStore) (*Report, error) {
	st := &State{
		Containers: cs,
		References: rs,
		Policy:     p.policy,
		Report:     &Report{},
		Logger:     p.logger,
	}

	for _, pass := range p.passes {
		if err := ctx.Err(); err != nil {
			return st.Report, err
		}
		start := time.Now()
		if err := pass.Run(ctx, st); err != nil {
			return st.Report, fmt.Errorf("%s: %w", pass.Name(), err)
		}
		p.logger.Debug("Consolidation pass finished",
			zap.String("pass", pass.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("containers", cs.Len()))
	}

	p.logger.Info("Consolidated",
		zap.Int("materialized", len(st.Report.Materialized)),
		zap.Int("pruned", len(st.Report.Pruned)),
		zap.Int("channels", len(st.Report.Channels)))
	return st.Report, nil
}
