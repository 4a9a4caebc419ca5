// Store: the versioned, atomically-swappable catalog reference.
// Readers grab a snapshot pointer once per request and keep it; a reload
// builds a complete new catalog and swaps the pointer, so an in-flight
// request sees either the entirely-old or entirely-new tables.
package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// LoadFunc builds a fresh catalog snapshot
type LoadFunc func() (*Catalog, error)

// Store holds the active catalog snapshot
type Store struct {
	active atomic.Pointer[Catalog]

	mu      sync.Mutex // serializes reloads
	load    LoadFunc
	version int
	logger  *zap.Logger
}

// NewStore loads the initial snapshot and returns a ready store
func NewStore(load LoadFunc, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{load: load, logger: logger}
	c, err := load()
	if err != nil {
		return nil, err
	}
	s.version = 1
	c.Version = 1
	s.active.Store(c)
	return s, nil
}

// NewStaticStore wraps an already-built catalog; used by tests and the
// one-shot CLI where reloads never happen.
func NewStaticStore(c *Catalog) *Store {
	s := &Store{
		load:    func() (*Catalog, error) { return c, nil },
		version: c.Version,
		logger:  zap.NewNop(),
	}
	s.active.Store(c)
	return s
}

// Current returns the active snapshot. Never nil after NewStore succeeds.
func (s *Store) Current() *Catalog {
	return s.active.Load()
}

// Reload builds a new snapshot and swaps it in. On failure the active
// snapshot is left untouched.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.load()
	if err != nil {
		s.logger.Error("catalog reload failed; keeping active snapshot",
			zap.Int("active_version", s.version), zap.Error(err))
		return err
	}

	s.version++
	c.Version = s.version
	s.active.Store(c)
	s.logger.Info("catalog reloaded",
		zap.Int("version", c.Version),
		zap.String("content_hash", c.ContentHash))
	return nil
}

// Watch reloads the catalog when files under dir change. Events are
// debounced because editors and atomic-rename writers emit bursts.
// Blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}
	s.logger.Info("watching catalog directory", zap.String("dir", dir))

	var timer *time.Timer
	const debounce = 250 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if err := s.Reload(); err != nil {
					s.logger.Warn("hot reload skipped", zap.Error(err))
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}
