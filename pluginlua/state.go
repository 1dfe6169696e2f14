package pluginlua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// State wraps a gopher-lua LState opened with only the safe standard
// libraries a keymap script plausibly needs: base, table, string, and
// math. io, os, debug, and package are left closed — a binding script
// has no business touching the filesystem or spawning processes.
type State struct {
	L *lua.LState

	mu     sync.Mutex
	closed bool
}

// NewState creates a sandboxed Lua state.
func NewState() *State {
	l := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(l)
	return &State{L: l}
}

func openSafeLibraries(l *lua.LState) {
	lua.OpenBase(l)
	lua.OpenTable(l)
	lua.OpenString(l)
	lua.OpenMath(l)

	// Intentionally not opened: io, os, debug, package/require — a
	// binding script has no legitimate use for any of them.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		l.SetGlobal(name, lua.LNil)
	}
}

// LoadString executes a Lua source string, typically to register
// bindings via the keyscope.bind bridge function.
func (s *State) LoadString(source string) error {
	return s.Execute(func(l *lua.LState) error { return l.DoString(source) })
}

// LoadFile executes a Lua file.
func (s *State) LoadFile(path string) error {
	return s.Execute(func(l *lua.LState) error { return l.DoFile(path) })
}

// Execute runs fn against the Lua state under the state's lock,
// recovering any Lua panic into an error. gopher-lua's LState isn't
// safe for concurrent use, and a keybinding script has no need for the
// queued, run-on-a-dedicated-goroutine serialization a busier embedder
// might: a keyscope Handler firing from the host's event loop and a
// script load both just need mutual exclusion with each other, which
// the mutex already guarding Close gives for free.
func (s *State) Execute(fn func(l *lua.LState) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pluginlua: lua panic: %v", r)
		}
	}()
	return fn(s.L)
}

// Close releases the Lua state. Safe to call more than once.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
