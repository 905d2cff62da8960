package watcher

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"scooper/internal/eventbus"
)

// DefaultDebounce is used when no debounce is configured
const DefaultDebounce = 300 * time.Millisecond

// ErrAlreadyStarted is returned by Start on a running watcher
var ErrAlreadyStarted = errors.New("watcher already started")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the directory must stay quiet before a rescan is requested.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher requests a rescan whenever the buckets directory changes.
// Bursts of filesystem events (a `scoop bucket add` clones a whole repo)
// collapse into one request.
type Watcher struct {
	dir      string
	bus      eventbus.EventBus
	debounce time.Duration

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	timer   *time.Timer
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

// New creates a watcher for dir that publishes on bus
func New(dir string, bus eventbus.EventBus, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		bus:      bus,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching until ctx is done or Stop is called
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	w.fsw = fsw
	w.cancel = cancel
	w.started = true

	w.wg.Add(1)
	go w.loop(ctx, fsw)

	return nil
}

// Stop stops watching and waits for the event loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.cancel()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.started = false
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			// Bucket add/remove shows up as create/remove/rename of a top-level dir
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.trigger(event.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error on %s: %v", w.dir, err)
			w.bus.Publish(eventbus.ErrorEvent{Message: "Watching buckets failed", Err: err})
		}
	}
}

// trigger (re)arms the debounce timer
func (w *Watcher) trigger(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.started {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.bus.Publish(eventbus.ScanRequestedEvent{Reason: "buckets changed: " + name})
	})
}
