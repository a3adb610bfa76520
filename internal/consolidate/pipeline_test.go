package consolidate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"omegraph/internal/domain"
	"omegraph/internal/store"
)

func ptr[T any](v T) *T { return &v }

func create(t *testing.T, cs *store.ContainerStore, typ domain.EntityType, values ...int) *store.Container {
	t.Helper()
	coords, err := domain.Layout(typ, values...)
	require.NoError(t, err)
	c, err := cs.GetOrCreate(typ, coords...)
	require.NoError(t, err)
	return c
}

func run(t *testing.T, policy Policy, cs *store.ContainerStore, rs *store.ReferenceStore, passes ...Pass) *Report {
	t.Helper()
	report, err := New(policy, zap.NewNop(), passes...).Run(context.Background(), cs, rs)
	require.NoError(t, err)
	return report
}

func TestMaterializeAncestors(t *testing.T) {
	t.Run("creates one default parent per implied coordinate", func(t *testing.T) {
		cs, rs := store.NewContainerStore(), store.NewReferenceStore()
		explicit := create(t, cs, domain.TypePlate, 0)
		explicit.Entity.(*domain.Plate).Name = "Mine"
		create(t, cs, domain.TypeWell, 1, 0)
		create(t, cs, domain.TypeWell, 1, 1)

		report := run(t, DefaultPolicy(), cs, rs, MaterializeAncestors{})

		plate := domain.TypePlate
		assert.Equal(t, 2, cs.Count(&plate, nil))
		created, ok := cs.Get(domain.Opaque("Plate:1"))
		require.True(t, ok)
		assert.Equal(t, "Plate", created.Entity.(*domain.Plate).Name)
		assert.Equal(t, "Mine", explicit.Entity.(*domain.Plate).Name)
		require.Len(t, report.Materialized, 1)
		assert.Equal(t, "Plate:1", report.Materialized[0].Canonical())
	})

	t.Run("walks the whole chain", func(t *testing.T) {
		cs, rs := store.NewContainerStore(), store.NewReferenceStore()
		plane := create(t, cs, domain.TypePlane, 0, 0, 3)
		plane.Entity.(*domain.Plane).DeltaT = ptr(0.1)

		run(t, DefaultPolicy(), cs, rs, MaterializeAncestors{})

		assert.True(t, cs.Contains(domain.Opaque("Pixels:0:0")))
		img, ok := cs.Get(domain.Opaque("Image:0"))
		require.True(t, ok)
		assert.Equal(t, "Image", img.Entity.(*domain.Image).Name)
	})

	t.Run("is idempotent", func(t *testing.T) {
		cs, rs := store.NewContainerStore(), store.NewReferenceStore()
		create(t, cs, domain.TypeWellSample, 0, 2, 0)
		create(t, cs, domain.TypeRectangle, 4, 0)

		first := run(t, DefaultPolicy(), cs, rs, MaterializeAncestors{})
		n := cs.Len()
		second := run(t, DefaultPolicy(), cs, rs, MaterializeAncestors{})

		assert.Len(t, first.Materialized, 3)
		assert.Empty(t, second.Materialized)
		assert.Equal(t, n, cs.Len())
	})

	t.Run("types without a default name stay unnamed", func(t *testing.T) {
		cs, rs := store.NewContainerStore(), store.NewReferenceStore()
		create(t, cs, domain.TypeLightPath, 0, 1)

		run(t, DefaultPolicy(), cs, rs, MaterializeAncestors{})

		ch, ok := cs.Get(domain.Opaque("Channel:0:1"))
		require.True(t, ok)
		assert.Empty(t, ch.Entity.(*domain.Channel).Name)
	})
}

func TestPrunePlaceholders(t *testing.T) {
	cs, rs := store.NewContainerStore(), store.NewReferenceStore()

	bare := create(t, cs, domain.TypePlane, 0, 0, 0)
	p := bare.Entity.(*domain.Plane)
	p.TheZ, p.TheC, p.TheT = ptr(0), ptr(0), ptr(0)
	rs.AddReference(bare.ID, domain.Opaque("Annotation:0"))

	timed := create(t, cs, domain.TypePlane, 0, 0, 1)
	timed.Entity.(*domain.Plane).ExposureTime = ptr(12.5)

	identified := create(t, cs, domain.TypePlane, 0, 0, 2)
	cs.SetExternalID(identified, "urn:plane:2")

	unprunable := create(t, cs, domain.TypeWell, 0, 0)

	report := run(t, DefaultPolicy(), cs, rs, PrunePlaceholders{})

	_, ok := cs.Get(bare.ID)
	assert.False(t, ok, "coordinate-only plane should be pruned")
	assert.Empty(t, rs.ReferencesOf(bare.ID))
	require.Len(t, report.Pruned, 1)
	assert.True(t, report.Pruned[0].Equal(bare.ID))

	kept, ok := cs.Get(timed.ID)
	require.True(t, ok)
	assert.Equal(t, 12.5, *kept.Entity.(*domain.Plane).ExposureTime)
	assert.Equal(t, timed.Coords(), kept.Coords())

	assert.True(t, cs.Contains(identified.ID))
	assert.True(t, cs.Contains(unprunable.ID))
}

func TestPipeline(t *testing.T) {
	t.Run("runs the default passes in order", func(t *testing.T) {
		cs, rs := store.NewContainerStore(), store.NewReferenceStore()
		create(t, cs, domain.TypePlane, 0, 0, 0)
		create(t, cs, domain.TypeChannel, 0, 0)

		report := run(t, DefaultPolicy(), cs, rs)

		// the plane's pixels and image are materialized before the plane is pruned
		assert.True(t, cs.Contains(domain.Opaque("Pixels:0:0")))
		assert.True(t, cs.Contains(domain.Opaque("Image:0")))
		assert.False(t, cs.Contains(domain.Opaque("Plane:0:0:0")))
		assert.Len(t, report.Materialized, 2)
		assert.Len(t, report.Pruned, 1)
		require.Len(t, report.Channels, 1)
		assert.Equal(t, SourceDefault, report.Channels[0].Source)
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(DefaultPolicy(), nil).Run(ctx, store.NewContainerStore(), store.NewReferenceStore())
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("wraps pass errors with the pass name", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := New(DefaultPolicy(), nil, failingPass{err: boom}).Run(context.Background(), store.NewContainerStore(), store.NewReferenceStore())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failing")
	})
}

type failingPass struct{ err error }

func (failingPass) Name() string                            { return "failing" }
func (f failingPass) Run(context.Context, *State) error     { return f.err }
