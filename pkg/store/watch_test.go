package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tableflip.dev/write/pkg/entry"
)

func TestWatchEmitsEntryChanges(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, dir, 20*time.Millisecond)
	require.NoError(t, err)

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	_, err = New().Write(dir, "240102-100000.txt", "hello")
	require.NoError(t, err)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventDirectoryInvalidated {
				return
			}
			require.Equal(t, "240102-100000.txt", evt.Name)
			return
		case <-deadline:
			t.Fatal("timed out waiting for entry change event")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, dir, 20*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))

	select {
	case evt := <-ch:
		if evt.Type != EventDirectoryInvalidated {
			t.Fatalf("unexpected event %+v", evt)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := Watch(ctx, dir, 0)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), 0)
	require.Error(t, err)
	require.Equal(t, entry.CodeIO, entry.CodeOf(err))
}
