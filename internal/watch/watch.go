// Package watch reports changes to a fixed set of files.
package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a change
// is reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher groups bursts of file events into single change reports. The
// parent directories are watched so that editors replacing a file by rename
// are noticed too.
type Watcher struct {
	files    map[string]bool
	dirs     []string
	debounce time.Duration
	logger   *slog.Logger
}

type Option func(*Watcher)

func Debounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func Logger(l *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

func New(files []string, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		files:    make(map[string]bool, len(files)),
		debounce: DefaultDebounce,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		w.files[abs] = true
		if dir := filepath.Dir(abs); !dirs[dir] {
			dirs[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run blocks until ctx is done, calling onChange from its own goroutine with
// the sorted paths that changed during each burst.
func (w *Watcher) Run(ctx context.Context, onChange func(changed []string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			w.logger.Debug("file event", "file", name, "op", event.Op.String())
			pending[name] = true
			timer.Reset(w.debounce)
		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			pending = make(map[string]bool)
			onChange(changed)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}
