// Package watcher reports changes to a single file on disk.
//
// The containing directory is watched rather than the file itself, so
// editors that save by renaming a temporary file over the original are
// picked up as well. Bursts of events are debounced into one notification.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to
// settle before notifying.
const DefaultDebounce = 100 * time.Millisecond

// ErrNilCallback is returned when New is given no change callback.
var ErrNilCallback = errors.New("watcher: nil change callback")

// ChangeFunc is called after the watched file changed. err is non-nil when
// the underlying watch reported an error instead.
type ChangeFunc func(err error)

// FileWatcher watches one file.
type FileWatcher struct {
	path     string
	fsw      *fsnotify.Watcher
	onChange ChangeFunc
	debounce time.Duration

	changes atomic.Int64

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithDebounce sets the settle time before a notification. Zero notifies on
// every event.
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// New starts watching path and calls onChange after each change.
func New(path string, onChange ChangeFunc, opts ...Option) (*FileWatcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("%w for %s", ErrNilCallback, path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	w := &FileWatcher{
		path:     absPath,
		fsw:      fsw,
		onChange: onChange,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	return w.path
}

// Changes returns how many notifications have been delivered.
func (w *FileWatcher) Changes() int64 {
	return w.changes.Load()
}

// Close stops the watcher. It is safe to call more than once.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

func (w *FileWatcher) loop() {
	defer w.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if w.debounce == 0 {
				w.deliver(nil)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.deliver(fmt.Errorf("watching %s: %w", w.path, err))

		case <-fire:
			fire = nil
			w.deliver(nil)
		}
	}
}

// relevant reports whether ev touches the watched file.
func (w *FileWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}

func (w *FileWatcher) deliver(err error) {
	select {
	case <-w.closeCh:
		return
	default:
	}
	w.changes.Add(1)
	w.onChange(err)
}
