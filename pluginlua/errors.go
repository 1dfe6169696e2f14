package pluginlua

import "errors"

var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("pluginlua: state is closed")

	// ErrNoEngine is raised as a Lua error by the bind bridge function when
	// no keyscope.Engine was supplied to NewBridge.
	ErrNoEngine = errors.New("pluginlua: no engine configured")

	// ErrUnknownHandle names a bind handle id the bridge did not issue, or
	// one already revoked and forgotten. unbind does not raise it: for such
	// an id it returns false to the script.
	ErrUnknownHandle = errors.New("pluginlua: unknown bind handle")
)
