package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatchReportsChangedFile(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "unit.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(watched, []byte("version: 1\n"), 0644))

	changed := make(chan string, 8)
	w := New([]string{watched}, func(path string) { changed <- path }, zap.NewNop()).
		WithDebounce(100 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(watched, []byte("version: 1\nsource: x\n"), 0644))
	}

	abs, err := filepath.Abs(watched)
	require.NoError(t, err)

	select {
	case path := <-changed:
		assert.Equal(t, abs, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	// Rapid writes collapse into a single notification
	select {
	case path := <-changed:
		t.Fatalf("unexpected second notification for %s", path)
	case <-time.After(400 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w := New([]string{filepath.Join(t.TempDir(), "absent", "unit.yaml")}, func(string) {}, nil)
	err := w.Watch(context.Background())
	require.Error(t, err)
}
