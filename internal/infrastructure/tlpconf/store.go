package tlpconf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"github.com/bnema/tlpui/internal/application/port"
	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/logging"
)

const (
	// DefaultPath is where TLP reads its configuration.
	DefaultPath = "/etc/tlp.conf"

	lockRetryDelay = 50 * time.Millisecond
	lockTimeout    = 5 * time.Second
)

// Store implements port.ConfigStore on the local filesystem.
type Store struct {
	lockTimeout time.Duration
}

var _ port.ConfigStore = (*Store)(nil)

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{lockTimeout: lockTimeout}
}

// Load reads the settings in path.
func (s *Store) Load(ctx context.Context, path string) ([]*entity.ConfigEntry, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	entries := Parse(data)
	log.Debug().Str("path", path).Int("entries", len(entries)).Msg("config loaded")
	return entries, nil
}

// Save writes changes into path under an exclusive lock. The file is re-read
// while locked so concurrent edits to other lines are kept.
func (s *Store) Save(ctx context.Context, path string, changes []entity.Change) error {
	if len(changes) == 0 {
		return nil
	}
	log := logging.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat config %s: %w", path, err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	lock := flock.New(path)
	locked, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock config %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("lock config %s: held by another process", path)
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil {
			log.Warn().Err(uerr).Str("path", path).Msg("failed to unlock config")
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	updated, err := Apply(data, changes)
	if err != nil {
		return fmt.Errorf("update config %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("open config %s for writing: %w", path, err)
	}
	if _, err := f.Write(updated); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("changes", len(changes)).Msg("config saved")
	return nil
}

// Writable reports whether the current user may write path.
func (s *Store) Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
