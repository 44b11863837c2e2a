package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/cascadeui/cascade/internal/menu"
)

// Event conveys a freshly loaded menu definition or an error from a poll. An
// event is only emitted when the file's content actually changed, so every
// successful event is a structure change.
type Event struct {
	Def menu.Definition
	Err error
}

// Watcher polls the menu definition file at a fixed interval and publishes a
// structure-changed event whenever the file's content differs from the last
// successful load.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls path every interval. The first poll
// always emits, so consumers start from the file's current state.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startDefinitionPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of definition events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current read
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startDefinitionPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)

	var lastRaw []byte
	var lastErr string
	first := true

	go w.poll(func(context.Context) (Event, bool) {
		throttle.wait()
		raw, err := os.ReadFile(w.path)
		if err != nil {
			lastRaw = nil
			first = true
			if err.Error() == lastErr {
				return Event{}, false
			}
			lastErr = err.Error()
			return Event{Err: err}, true
		}
		if !first && string(raw) == string(lastRaw) {
			return Event{}, false
		}
		first = false
		lastRaw = raw
		def, err := menu.ParseDefinition(raw)
		if err != nil {
			if err.Error() == lastErr {
				return Event{}, false
			}
			lastErr = err.Error()
			return Event{Err: err}, true
		}
		lastErr = ""
		return Event{Def: def}, true
	})
}

func (w *Watcher) poll(fetch func(context.Context) (Event, bool)) {
	defer w.wg.Done()

	emit := func() bool {
		evt, changed := fetch(w.ctx)
		if !changed {
			return true
		}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
