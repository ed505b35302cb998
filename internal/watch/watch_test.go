package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/agenthands/advent/internal/watch"
)

func start(t *testing.T, path string) (chan struct{}, func()) {
	t.Helper()
	fired := make(chan struct{}, 16)
	w := watch.New(path, 50*time.Millisecond, nil, func(context.Context) {
		fired <- struct{}{}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	return fired, func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func TestWatcherFiresOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "day01.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	fired, stop := start(t, path)
	defer stop()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("b"), 0644))
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "day01.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	fired, stop := start(t, path)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "day02.txt"), []byte("b"), 0644))

	select {
	case <-fired:
		t.Fatal("change reported for another file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingDir(t *testing.T) {
	w := watch.New(filepath.Join(t.TempDir(), "nope", "day01.txt"), 0, nil, func(context.Context) {})
	err := w.Run(context.Background())
	assert.Error(t, err)
}
