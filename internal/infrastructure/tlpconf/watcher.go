package tlpconf

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/logging"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reports external modifications of the config file.
// The parent directory is watched so editors that replace the file are seen.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	debounce time.Duration
	timer    *time.Timer
	// skipUntil is the deadline of a pending SkipNext.
	skipUntil time.Time
}

var _ port.FileWatcher = (*Watcher)(nil)

// NewWatcher creates a Watcher. Call Watch to start it.
func NewWatcher() *Watcher {
	return &Watcher{debounce: defaultDebounce}
}

// Watch starts delivering change notifications for path to onChange until ctx
// is done or Close is called. onChange runs on the watcher goroutine.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	log := logging.FromContext(ctx)

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	w.mu.Lock()
	if w.fsw != nil {
		_ = w.fsw.Close()
	}
	w.fsw = fsw
	w.mu.Unlock()

	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = fsw.Close()
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				log.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("config file event")
				w.schedule(onChange)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("config watcher error")
			}
		}
	}()
	return nil
}

// schedule coalesces bursts of events into one notification.
func (w *Watcher) schedule(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		skip := time.Now().Before(w.skipUntil)
		w.skipUntil = time.Time{}
		w.mu.Unlock()
		if skip {
			return
		}
		onChange()
	})
}

// SkipNext suppresses the notification of a write we just made. It lapses
// after two debounce periods so a later external edit is still reported.
func (w *Watcher) SkipNext() {
	w.mu.Lock()
	w.skipUntil = time.Now().Add(2 * w.debounce)
	w.mu.Unlock()
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}
