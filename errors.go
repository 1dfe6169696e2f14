package keyscope

import "errors"

// Sentinel errors for per-binding validation failures during
// Engine.Register. Register does not return them: a failing binding is
// skipped and its wrapped error is logged via the engine's
// DiagnosticSink rather than aborting the whole batch.
var (
	ErrEmptySequence   = errors.New("keyscope: binding has an empty sequence")
	ErrBadStroke       = errors.New("keyscope: stroke did not normalize")
	ErrInvalidSelector = errors.New("keyscope: selector is not valid")
)
