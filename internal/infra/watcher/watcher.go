package watcher

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher re-runs a callback whenever a single file changes. The parent
// directory is watched so editors that replace the file on save are seen.
type Watcher struct {
	debounce time.Duration
	log      *slog.Logger
}

type Option func(*Watcher)

// WithDebounce coalesces bursts of events into one callback.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

func New(opts ...Option) *Watcher {
	w := &Watcher{
		debounce: defaultDebounce,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch blocks until ctx is done, calling onChange after path is written,
// created or renamed into place. Callback errors are logged and watching
// continues.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func(context.Context) error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &domain.OpError{Op: "watcher.watch", Kind: domain.KindInvalidInput, Path: path, Err: err}
	}
	if _, err := os.Stat(abs); err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return &domain.OpError{Op: "watcher.watch", Kind: kind, Path: abs, Err: err}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return &domain.OpError{Op: "watcher.watch", Kind: domain.KindExecution, Path: abs, Err: err}
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return &domain.OpError{Op: "watcher.watch", Kind: domain.KindExecution, Path: abs, Err: err}
	}
	w.log.Info("watch.started", "path", abs)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watch.stopped", "path", abs)
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !relevant(ev.Op) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch.error", "path", abs, "err", err)

		case <-timer.C:
			w.log.Debug("watch.triggered", "path", abs)
			if err := onChange(ctx); err != nil {
				w.log.Error("watch.callback_failed", "path", abs, "err", err)
			}
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
