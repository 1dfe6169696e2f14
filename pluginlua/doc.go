// Package pluginlua lets a host load Lua scripts that register keyboard
// bindings through a keyscope.Engine. A script calls the global
// keyscope.bind(sequence, selector, fn, opts) to install a binding whose
// handler invokes back into the script; keyscope.unbind(handle) revokes
// it.
//
// gopher-lua's LState is not goroutine-safe: every Lua call, whether it
// originates from a script loading at startup or from a keyscope
// Handler firing on the host's event-loop goroutine, is serialized
// through State.Execute's lock.
package pluginlua
