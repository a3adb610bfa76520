package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"omegraph/internal/consolidate"
	"omegraph/internal/domain"
	"omegraph/internal/store"
)

var (
	// ErrConsolidated is returned when a unit is mutated or consolidated
	// after consolidation
	ErrConsolidated = errors.New("unit already consolidated")
	// ErrNotConsolidated is returned when a finished view is requested
	// before consolidation
	ErrNotConsolidated = errors.New("unit not consolidated")
)

// Unit is one import unit: a private ContainerStore/ReferenceStore pair that
// is filled by a single writer, consolidated once, then read concurrently.
type Unit struct {
	ID     uuid.UUID
	Source string

	containers *store.ContainerStore
	references *store.ReferenceStore
	pipeline   *consolidate.Pipeline
	bus        *EventBus
	logger     *zap.Logger

	mu           sync.RWMutex
	consolidated bool
	report       *consolidate.Report
}

// NewUnit creates an empty unit. A nil pipeline runs the default passes
// with the default policy; bus may be nil.
func NewUnit(source string, pipeline *consolidate.Pipeline, bus *EventBus, logger *zap.Logger) *Unit {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pipeline == nil {
		pipeline = consolidate.New(consolidate.DefaultPolicy(), logger)
	}
	u := &Unit{
		ID:         uuid.New(),
		Source:     source,
		containers: store.NewContainerStore(),
		references: store.NewReferenceStore(),
		pipeline:   pipeline,
		bus:        bus,
	}
	u.logger = logger.Named("unit").With(zap.String("unit", u.ID.String()), zap.String("source", source))
	bus.Publish(Event{Type: EventUnitCreated, Payload: u.event(nil)})
	return u
}

func (u *Unit) event(err error) UnitEvent {
	e := UnitEvent{UnitID: u.ID.String(), Source: u.Source}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

func (u *Unit) writable() error {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.consolidated {
		return ErrConsolidated
	}
	return nil
}

// GetOrCreate returns the container for (t, coords), creating it on first use
func (u *Unit) GetOrCreate(t domain.EntityType, coords ...domain.Coord) (*store.Container, error) {
	if err := u.writable(); err != nil {
		return nil, err
	}
	return u.containers.GetOrCreate(t, coords...)
}

// SetExternalID records a source-assigned id on c and makes it resolvable
func (u *Unit) SetExternalID(c *store.Container, external string) error {
	if err := u.writable(); err != nil {
		return err
	}
	u.containers.SetExternalID(c, external)
	return nil
}

// AddReference records from -> to
func (u *Unit) AddReference(from, to domain.EntityID) error {
	return u.AddRoleReference(from, to, store.RoleNone)
}

// AddRoleReference records from -> to under role
func (u *Unit) AddRoleReference(from, to domain.EntityID, role store.Role) error {
	if err := u.writable(); err != nil {
		return err
	}
	u.references.AddRoleReference(from, to, role)
	return nil
}

// Get looks up a container by canonical id or external alias
func (u *Unit) Get(id domain.EntityID) (*store.Container, bool) {
	return u.containers.Get(id)
}

// Containers returns a read-only view of the unit's containers. Writes go
// through the unit so the phase is enforced.
func (u *Unit) Containers() store.ContainerReader {
	return containerView{u.containers}
}

// References returns a read-only view of the unit's references
func (u *Unit) References() store.ReferenceReader {
	return referenceView{u.references}
}

// The views hide the stores' write methods from type assertions
type (
	containerView struct{ store.ContainerReader }
	referenceView struct{ store.ReferenceReader }
)

// Consolidate runs the pipeline exactly once. Later calls fail with
// ErrConsolidated. A failed run leaves the unit writable.
func (u *Unit) Consolidate(ctx context.Context) (*consolidate.Report, error) {
	u.mu.Lock()
	if u.consolidated {
		u.mu.Unlock()
		return nil, ErrConsolidated
	}

	report, err := u.pipeline.Run(ctx, u.containers, u.references)
	if err != nil {
		u.mu.Unlock()
		u.logger.Warn("Consolidation failed", zap.Error(err))
		u.bus.Publish(Event{Type: EventUnitFailed, Payload: u.event(err)})
		return nil, err
	}
	u.consolidated = true
	u.report = report
	u.mu.Unlock()

	u.logger.Info("Unit consolidated", zap.Int("containers", u.containers.Len()))
	u.bus.Publish(Event{Type: EventUnitConsolidated, Payload: u.event(nil)})
	return report, nil
}

// Consolidated reports whether the unit is in its read phase
func (u *Unit) Consolidated() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.consolidated
}

// Report returns the consolidation report
func (u *Unit) Report() (*consolidate.Report, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if !u.consolidated {
		return nil, ErrNotConsolidated
	}
	return u.report, nil
}

// Snapshot returns the export view of the consolidated unit
func (u *Unit) Snapshot() (*domain.Graph, error) {
	if !u.Consolidated() {
		return nil, ErrNotConsolidated
	}
	return store.Snapshot(u.ID.String(), u.containers, u.references), nil
}
