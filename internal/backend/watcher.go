// Package backend watches the directories the two panes currently display and
// reports changes so the UI can re-list them. Navigation itself stays
// synchronous; the watcher only triggers refreshes.
package backend

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event reports filesystem activity under a watched pane directory, or a
// watcher error.
type Event struct {
	Path string
	Err  error
}

// Watcher wraps fsnotify and coalesces change bursts so a large copy does not
// flood the UI with refreshes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	interval time.Duration
	events   chan Event

	mu      sync.Mutex
	watched map[string]struct{}

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher starts a watcher that flushes coalesced events every interval.
func NewWatcher(interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	w := &Watcher{
		fsw:      fsw,
		interval: interval,
		events:   make(chan Event, 16),
		watched:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Events returns the channel of coalesced change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// SetPaths replaces the watch set with the given directories. Unwatchable
// paths are skipped; a pane showing an unreadable directory simply gets no
// refresh events.
func (w *Watcher) SetPaths(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	next := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		next[p] = struct{}{}
	}
	for p := range w.watched {
		if _, keep := next[p]; !keep {
			_ = w.fsw.Remove(p)
			delete(w.watched, p)
		}
	}
	for p := range next {
		if _, ok := w.watched[p]; ok {
			continue
		}
		if err := w.fsw.Add(p); err == nil {
			w.watched[p] = struct{}{}
		}
	}
}

// Stop shuts the watcher down and closes the events channel once the loop
// has drained.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsw.Close()
	w.wg.Wait()
	close(w.events)
}

// loop collects fsnotify events into a dirty set and flushes one Event per
// dirty directory on each tick.
func (w *Watcher) loop() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	dirty := make(map[string]struct{})
	for {
		select {
		case <-w.done:
			return
		case evt, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if dir := w.dirFor(evt.Name); dir != "" {
				dirty[dir] = struct{}{}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.events <- Event{Err: err}:
			case <-w.done:
				return
			}
		case <-ticker.C:
			for dir := range dirty {
				delete(dirty, dir)
				select {
				case w.events <- Event{Path: dir}:
				case <-w.done:
					return
				}
			}
		}
	}
}

// dirFor maps an event path back to the watched directory containing it.
func (w *Watcher) dirFor(name string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	for dir := range w.watched {
		if name == dir || hasParent(name, dir) {
			return dir
		}
	}
	return ""
}

func hasParent(name, dir string) bool {
	if len(name) <= len(dir) {
		return false
	}
	sep := name[len(dir)]
	return name[:len(dir)] == dir && (sep == '/' || sep == '\\')
}
