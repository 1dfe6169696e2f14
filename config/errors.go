package config

import "errors"

var (
	// ErrWatcherClosed reports use of a Watcher after Close. No Watcher
	// method returns it: Close is idempotent and returns nil when repeated.
	ErrWatcherClosed = errors.New("config: watcher is closed")
)

// ParseError wraps a TOML parse failure with the offending path.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "config: parsing " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
