package confloader

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yndnr/randapi-go/internal/telemetry/logger"
)

// DefaultWatchDebounce coalesces the bursts of events editors produce for a
// single save.
const DefaultWatchDebounce = 200 * time.Millisecond

// Watcher calls a function whenever one configuration file is written or
// recreated. The parent directory is watched so replace-by-rename saves are
// seen too.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	onChange func()
	debounce time.Duration
	log      logger.Logger

	done chan struct{}
	once sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithWatchLogger sets the logger.
func WithWatchLogger(l logger.Logger) WatchOption {
	return func(w *Watcher) { w.log = l }
}

// WithWatchDebounce sets the quiet period before onChange runs. Zero calls
// onChange once per event.
func WithWatchDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.debounce = d }
}

// NewWatcher starts watching path. The file itself need not exist yet, but
// its directory must.
func NewWatcher(path string, onChange func(), opts ...WatchOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		onChange: onChange,
		debounce: DefaultWatchDebounce,
		log:      logger.Default(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run delivers change notifications until ctx is done or Stop is called.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info("config watcher started", "file", w.path)

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
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("config file event", "file", ev.Name, "op", ev.Op.String())
			if w.debounce <= 0 {
				w.onChange()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.onChange()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("config watcher error", "error", err)
		case <-ctx.Done():
			return w.Stop()
		case <-w.done:
			return nil
		}
	}
}

// Stop releases the underlying watcher. Extra calls are no-ops.
func (w *Watcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.log.Info("config watcher stopped")
	})
	return err
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}
