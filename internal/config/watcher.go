package config

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/dshills/wsjump/internal/watcher"
)

// ReloadFunc receives the reloaded configuration, or the error that
// prevented loading it.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a configuration file when it changes on disk.
type Watcher struct {
	path     string
	fw       *watcher.FileWatcher
	onReload ReloadFunc

	reloads atomic.Int64
}

// WatcherOption configures a Watcher.
type WatcherOption = watcher.Option

// WithDebounce sets the settle time before a reload. Zero reloads on every event.
func WithDebounce(d time.Duration) WatcherOption {
	return watcher.WithDebounce(d)
}

// NewWatcher starts watching path and calls onReload after each change.
func NewWatcher(path string, onReload ReloadFunc, opts ...WatcherOption) (*Watcher, error) {
	if onReload == nil {
		return nil, fmt.Errorf("config watcher for %s: %w", path, watcher.ErrNilCallback)
	}
	if _, err := FormatFor(path); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{path: absPath, onReload: onReload}
	fw, err := watcher.New(absPath, w.changed, opts...)
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	w.fw = fw
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Reloads returns how many reloads have been delivered.
func (w *Watcher) Reloads() int64 {
	return w.reloads.Load()
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) changed(err error) {
	w.reloads.Add(1)
	if err != nil {
		w.onReload(nil, err)
		return
	}
	cfg, err := Load(w.path)
	w.onReload(cfg, err)
}
