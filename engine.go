package keyscope

import "time"

// DefaultAmbiguityWindow is the duration of the pending window: how long
// the engine waits after a stroke that extends a partial match before
// committing a deferred exact match.
const DefaultAmbiguityWindow = 1 * time.Second

// Engine holds one Binding Registry and one Pending State. It is the
// entry point a host application constructs and drives from its own
// key-press listener.
//
// The engine is single-threaded and cooperative with respect to
// Process: all matching state transitions are expected to happen on the
// host's event loop, with no internal locking on that path. Register
// and Handle.Revoke, by contrast, are safe to call from any goroutine at
// any time — the registry guards itself independently.
type Engine struct {
	layout Layout

	canon    Canonicalizer
	selector SelectorEngine
	sink     DiagnosticSink
	clock    Clock
	deliver  func(KeyEvent)

	ambiguityWindow time.Duration

	registry *Registry
	pending  pendingState

	metrics *Metrics
	hooks   hookSet
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithCanonicalizer sets the keystroke canonicalizer. Required — New
// panics if none is supplied, since the engine cannot classify any
// event without one.
func WithCanonicalizer(c Canonicalizer) Option {
	return func(e *Engine) { e.canon = c }
}

// WithSelectorEngine sets the selector engine. Required for the same
// reason as WithCanonicalizer.
func WithSelectorEngine(s SelectorEngine) Option {
	return func(e *Engine) { e.selector = s }
}

// WithLayout sets the keyboard layout passed through to the
// canonicalizer. Defaults to nil, which the default canonicalizer
// treats as US-English.
func WithLayout(layout Layout) Option {
	return func(e *Engine) { e.layout = layout }
}

// WithDiagnosticSink sets the sink that receives registration warnings
// and handler-panic reports. Defaults to a sink that discards output.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithClock sets the clock used to schedule the ambiguity timer.
// Defaults to a clock backed by time.AfterFunc.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithAmbiguityWindow overrides the one-second default pending window.
func WithAmbiguityWindow(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.ambiguityWindow = d
		}
	}
}

// WithDeliver sets the host hook that redelivers a replayed event clone
// onto its original target through the host's own listener chain. If
// unset, replayed events are dropped after their state-machine effects
// are undone — a host that cares about replay fidelity (most do) must
// supply this.
func WithDeliver(fn func(KeyEvent)) Option {
	return func(e *Engine) { e.deliver = fn }
}

// WithMetrics enables dispatch metrics collection, retrievable via
// Engine.Metrics.
func WithMetrics() Option {
	return func(e *Engine) { e.metrics = newMetrics() }
}

// New constructs an Engine. WithCanonicalizer and WithSelectorEngine
// must both be supplied.
func New(opts ...Option) *Engine {
	e := &Engine{
		sink:            discardSink{},
		ambiguityWindow: DefaultAmbiguityWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.canon == nil {
		panic("keyscope: New requires WithCanonicalizer")
	}
	if e.selector == nil {
		panic("keyscope: New requires WithSelectorEngine")
	}
	if e.clock == nil {
		e.clock = realClock{}
	}
	e.registry = newRegistry(e.canon, e.selector, e.layout, e.sink)
	return e
}

// Layout returns the keyboard layout the engine was constructed with.
func (e *Engine) Layout() Layout {
	return e.layout
}

// Register normalizes and adds bindings, returning a Handle that
// revokes exactly this batch.
func (e *Engine) Register(bindings []Binding) Handle {
	return e.registry.register(bindings)
}

// Metrics returns the engine's metrics collector, or nil if
// WithMetrics was not supplied.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// discardSink is the default DiagnosticSink: it drops everything.
type discardSink struct{}

func (discardSink) Warn(string, ...any)  {}
func (discardSink) Error(string, ...any) {}

// realClock is the default Clock, backed directly by time.AfterFunc —
// the same mechanism the teacher's action batcher uses for its own
// delayed flush.
type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return realTimer{t: time.AfterFunc(d, f)}
}

type realTimer struct{ t *time.Timer }

func (r realTimer) Stop() bool { return r.t.Stop() }
