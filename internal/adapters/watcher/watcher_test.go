package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sameunit/internal/adapters/watcher"
	"go.trai.ch/sameunit/internal/core/ports"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "a_test.yaml")
	require.NoError(t, os.WriteFile(script, []byte("targets: {}\n"), 0o600))

	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	require.NoError(t, os.WriteFile(script, []byte("targets:\n  testA:\n"), 0o600))

	var got ports.WatchEvent
	for event := range w.Events() {
		if event.Path == script {
			got = event
			break
		}
	}
	require.NoError(t, ctx.Err())
	assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, got.Operation)
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), t.TempDir()))

	require.NoError(t, w.Stop())

	for range w.Events() {
		t.Fatal("no events expected after stop")
	}
}
