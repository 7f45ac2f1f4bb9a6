package port

import "context"

// FileWatcher notifies about changes made to a file by other processes.
type FileWatcher interface {
	// Watch starts watching path. onChange runs on the watcher goroutine; callers
	// that touch UI state must hop to the main loop themselves.
	Watch(ctx context.Context, path string, onChange func()) error

	// SkipNext suppresses the notification of a write the caller has just
	// made. It expires shortly afterwards.
	SkipNext()

	Close() error
}
