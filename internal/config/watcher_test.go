package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatcherPublishesReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "landing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field:\n  text: \"One\"\n"), 0o644))

	w, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("field:\n  text: \"Two\"\n"), 0o644))

	select {
	case cfg := <-w.Updates():
		assert.Equal(t, "Two", cfg.Field.Text)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload published")
	}
}

func TestWatcherIgnoresInvalidFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "landing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field:\n  text: \"One\"\n"), 0o644))

	w, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("field:\n  ease: 7\n"), 0o644))

	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected reload: %+v", cfg.Field)
	case <-time.After(600 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "landing.yaml")
	w, err := NewWatcher(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
}

func TestWatcherStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := NewWatcher(filepath.Join(t.TempDir(), "landing.yaml"), zap.NewNop())
	require.NoError(t, err)
	w.Stop()
}
