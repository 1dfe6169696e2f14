package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op is the kind of filesystem change a Watcher reports.
type Op int

const (
	OpWrite Op = iota
	OpCreate
	OpRemove
	OpRename
)

func (op Op) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpCreate:
		return "create"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Event is one observed change to a watched file.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher watches a flat set of files — a config file and the scripts
// it names — for changes, mapping each fsnotify event onto one of the
// handful of operations a reload loop cares about. Events are not
// merged; fsnotify events carrying none of those operations (such as a
// bare chmod) are dropped.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	events  chan Event
	errors  chan error
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a Watcher and begins watching each given path.
// Paths that don't exist yet are skipped; watching a config file that
// hasn't been written yet is the caller's problem to retry, not this
// package's.
func NewWatcher(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		events:  make(chan Event, 32),
		errors:  make(chan error, 8),
		closeCh: make(chan struct{}),
	}

	for _, p := range paths {
		_ = fsw.Add(p) // best-effort: a missing path is not fatal here
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	var op Op
	switch {
	case ev.Has(fsnotify.Remove):
		op = OpRemove
	case ev.Has(fsnotify.Rename):
		op = OpRename
	case ev.Has(fsnotify.Create):
		op = OpCreate
	case ev.Has(fsnotify.Write):
		op = OpWrite
	default:
		return
	}

	select {
	case w.events <- Event{Path: ev.Name, Op: op, Time: time.Now()}:
	default:
		// event channel full: drop rather than block the fsnotify goroutine
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// Events returns the channel of file-change events.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors returns the channel of watch errors.
func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	close(w.events)
	close(w.errors)
	return w.fsw.Close()
}
