package tlpconf

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_NotifiesOnExternalWrite(t *testing.T) {
	path := writeTemp(t, []byte("A=1\n"), 0o644)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher()
	w.debounce = 20 * time.Millisecond
	defer func() { _ = w.Close() }()

	var calls atomic.Int32
	require.NoError(t, w.Watch(ctx, path, func() { calls.Add(1) }))

	require.NoError(t, os.WriteFile(path, []byte("A=2\n"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_SkipNext(t *testing.T) {
	path := writeTemp(t, []byte("A=1\n"), 0o644)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher()
	w.debounce = 100 * time.Millisecond
	defer func() { _ = w.Close() }()

	var calls atomic.Int32
	require.NoError(t, w.Watch(ctx, path, func() { calls.Add(1) }))

	w.SkipNext()
	require.NoError(t, os.WriteFile(path, []byte("A=2\n"), 0o644))

	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_SkipNextExpires(t *testing.T) {
	path := writeTemp(t, []byte("A=1\n"), 0o644)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher()
	w.debounce = 50 * time.Millisecond
	defer func() { _ = w.Close() }()

	var calls atomic.Int32
	require.NoError(t, w.Watch(ctx, path, func() { calls.Add(1) }))

	// A save that never wrote leaves the skip behind.
	w.SkipNext()
	time.Sleep(300 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("A=2\n"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}
