package config

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/pluginlua"
)

// Reloader ties a TOML config file and the Lua scripts it names to a
// keyscope.Engine: it loads the config, loads each script through a
// pluginlua.Bridge, and — when Watch is running — reacts to changes to
// the config file or any loaded script by revoking every
// previously-registered script binding and loading everything again.
type Reloader struct {
	path   string
	engine *keyscope.Engine
	sink   keyscope.DiagnosticSink

	mu      sync.Mutex
	cfg     Config
	state   *pluginlua.State
	bridge  *pluginlua.Bridge
	watcher *Watcher
}

// NewReloader creates a Reloader for the config file at path, bound to
// engine. sink, if non-nil, receives script load and handler-invocation
// errors.
func NewReloader(path string, engine *keyscope.Engine, sink keyscope.DiagnosticSink) *Reloader {
	return &Reloader{path: path, engine: engine, sink: sink}
}

// Load reads the config file and (re)loads its scripts. Safe to call
// repeatedly; each call builds a new Lua state and loads the scripts
// into it, then revokes the previous state's bindings and closes it.
func (r *Reloader) Load() error {
	cfg, err := Load(r.path)
	if err != nil {
		return err
	}

	state := pluginlua.NewState()
	bridge := pluginlua.NewBridge(r.engine, state, r.sink)
	bridge.Install(state.L)

	dir := filepath.Dir(r.path)
	for _, p := range cfg.ScriptPaths(dir) {
		if err := state.LoadFile(p); err != nil {
			if r.sink != nil {
				r.sink.Error("config: loading script %s: %v", p, err)
			}
		}
	}

	r.mu.Lock()
	prevState, prevBridge := r.state, r.bridge
	r.cfg, r.state, r.bridge = cfg, state, bridge
	r.mu.Unlock()

	if prevBridge != nil {
		prevBridge.RevokeAll()
	}
	if prevState != nil {
		_ = prevState.Close()
	}

	return nil
}

// Config returns the most recently loaded configuration.
func (r *Reloader) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}

// State returns the Lua state backing the current script load, or nil
// before the first Load. Exposed so a host (or test) can inspect
// script-side globals directly; callers must route access through
// State.Execute rather than touching State.L concurrently.
func (r *Reloader) State() *pluginlua.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Watch starts a filesystem watcher over the config file and every
// currently-loaded script, calling Load again whenever any of them
// change. It runs until ctx is cancelled or Close is called.
func (r *Reloader) Watch(ctx context.Context) error {
	r.mu.Lock()
	cfg := r.cfg
	r.mu.Unlock()

	paths := append([]string{r.path}, cfg.ScriptPaths(filepath.Dir(r.path))...)
	w, err := NewWatcher(paths...)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.watcher = w
	r.mu.Unlock()

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-w.Events():
				if !ok {
					return
				}
				if err := r.Load(); err != nil && r.sink != nil {
					r.sink.Error("config: reload failed: %v", err)
				}
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				if r.sink != nil {
					r.sink.Error("config: watch error: %v", err)
				}
			}
		}
	}()

	return nil
}

// Close tears down the current Lua state and stops the watcher, if
// running.
func (r *Reloader) Close() {
	r.mu.Lock()
	state, bridge, watcher := r.state, r.bridge, r.watcher
	r.state, r.bridge, r.watcher = nil, nil, nil
	r.mu.Unlock()

	if bridge != nil {
		bridge.RevokeAll()
	}
	if state != nil {
		_ = state.Close()
	}
	if watcher != nil {
		_ = watcher.Close()
	}
}
