package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/write/pkg/entry"
)

// EventType describes the nature of a directory change notification.
type EventType int

const (
	// EventEntryChanged indicates a journal file was created, written,
	// renamed or removed.
	EventEntryChanged EventType = iota

	// EventDirectoryInvalidated signals that the change could not be
	// classified and callers should reload the whole listing.
	EventDirectoryInvalidated
)

// Event is emitted by Watch when the journal directory changes.
type Event struct {
	Type EventType
	Name string
}

// DefaultThrottle is how long Watch coalesces bursts of changes.
const DefaultThrottle = 100 * time.Millisecond

// Watch streams change events for dir until ctx is cancelled. Callers should
// drain the returned channel; events are dropped rather than blocking the
// watcher. The channel is closed once ctx is done or the watcher fails.
func Watch(ctx context.Context, dir string, delay time.Duration) (<-chan Event, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, &entry.ValidationError{Field: "directory", Reason: "required"}
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &entry.IOError{Op: "watch", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &entry.IOError{Op: "watch", Path: dir, Err: errors.New("not a directory")}
	}
	if delay <= 0 {
		delay = DefaultThrottle
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			_ = watcher.Close()
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, &entry.IOError{Op: "watch", Path: dir, Err: err}
	}

	events := make(chan Event, 64)

	go func() {
		// A throttle flush may still be running when the loop exits.
		var (
			mu     sync.Mutex
			closed bool
		)
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer closeWatcher()

		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// The consumer reloads the full listing anyway.
			}
		}

		throttle := newEventThrottle(delay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventDirectoryInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op == fsnotify.Chmod {
					continue
				}
				name := filepath.Base(evt.Name)
				if !entry.IsEntryFile(name) {
					continue
				}
				throttle.Enqueue(Event{Type: EventEntryChanged, Name: name}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a view reloads once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Name] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, names := range pending {
		for name := range names {
			send(Event{Type: eventType, Name: name})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
