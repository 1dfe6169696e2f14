package pluginlua

import (
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyscope"
)

// Bridge installs the "keyscope" Lua module: bind/unbind functions that
// register and revoke keyscope.Engine bindings whose handler calls back
// into the script that registered them.
type Bridge struct {
	engine *keyscope.Engine
	state  *State
	sink   keyscope.DiagnosticSink

	mu      sync.Mutex
	nextID  int
	handles map[int]keyscope.Handle
}

// NewBridge creates a Bridge over engine. All Lua handler invocations
// are serialized through state's lock, which must be the same State
// Install is later called on. sink, if non-nil, receives
// handler-invocation errors; it may be the same sink the engine itself
// was constructed with.
func NewBridge(engine *keyscope.Engine, state *State, sink keyscope.DiagnosticSink) *Bridge {
	return &Bridge{
		engine:  engine,
		state:   state,
		sink:    sink,
		handles: make(map[int]keyscope.Handle),
	}
}

// Install registers the "keyscope" global table into L.
func (b *Bridge) Install(l *lua.LState) {
	mod := l.NewTable()
	l.SetField(mod, "bind", l.NewFunction(b.bind))
	l.SetField(mod, "unbind", l.NewFunction(b.unbind))
	l.SetGlobal("keyscope", mod)
}

// bind(sequence, selector, fn, opts?) -> id
//
// sequence is a table of raw stroke-spec strings, e.g. {"g", "d"} or
// {"<C-p>"}. selector is a selector-engine string, or "" for no scoping.
// opts may set "desc".
func (b *Bridge) bind(l *lua.LState) int {
	if b.engine == nil {
		l.RaiseError("bind: %v", ErrNoEngine)
		return 0
	}

	seqTbl := l.CheckTable(1)
	selector := l.OptString(2, "")
	fn := l.CheckFunction(3)

	var desc string
	if l.GetTop() >= 4 {
		opts := l.CheckTable(4)
		desc = getTableString(l, opts, "desc")
	}

	var seq []string
	seqTbl.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			seq = append(seq, string(s))
		}
	})
	if len(seq) == 0 {
		l.ArgError(1, "sequence must be a non-empty table of stroke strings")
		return 0
	}

	handle := b.engine.Register([]keyscope.Binding{{
		Sequence:    seq,
		Selector:    selector,
		Handler:     b.makeHandler(fn),
		Description: desc,
	}})

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handles[id] = handle
	b.mu.Unlock()

	l.Push(lua.LNumber(id))
	return 1
}

// RevokeAll revokes every binding this Bridge has issued and forgets
// their handles. Used to clear a script's bindings before reloading it.
func (b *Bridge) RevokeAll() {
	b.mu.Lock()
	handles := make([]keyscope.Handle, 0, len(b.handles))
	for id, h := range b.handles {
		handles = append(handles, h)
		delete(b.handles, id)
	}
	b.mu.Unlock()

	for _, h := range handles {
		h.Revoke()
	}
}

// unbind(id) -> bool
func (b *Bridge) unbind(l *lua.LState) int {
	id := l.CheckInt(1)

	b.mu.Lock()
	handle, ok := b.handles[id]
	if ok {
		delete(b.handles, id)
	}
	b.mu.Unlock()

	if !ok {
		l.Push(lua.LFalse)
		return 1
	}
	handle.Revoke()
	l.Push(lua.LTrue)
	return 1
}

// makeHandler adapts a Lua function into a keyscope.Handler, routing
// the call through State.Execute so it never runs concurrently with
// another script load or handler invocation — including when invoked
// from the host's event loop rather than from script-load time.
func (b *Bridge) makeHandler(fn *lua.LFunction) keyscope.Handler {
	return func(args any) bool {
		var consumed bool
		err := b.state.Execute(func(l *lua.LState) error {
			l.Push(fn)
			nargs := 0
			if args != nil {
				l.Push(toLuaValue(l, args))
				nargs = 1
			}
			if err := l.PCall(nargs, 1, nil); err != nil {
				return err
			}
			ret := l.Get(-1)
			l.Pop(1)
			consumed = ret == lua.LTrue
			return nil
		})
		if err != nil && b.sink != nil {
			b.sink.Error("pluginlua: handler invocation failed: %v", err)
		}
		return consumed
	}
}

func toLuaValue(l *lua.LState, v any) lua.LValue {
	switch x := v.(type) {
	case string:
		return lua.LString(x)
	case int:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case bool:
		return lua.LBool(x)
	default:
		return lua.LNil
	}
}

func getTableString(l *lua.LState, tbl *lua.LTable, field string) string {
	if s, ok := l.GetField(tbl, field).(lua.LString); ok {
		return string(s)
	}
	return ""
}
