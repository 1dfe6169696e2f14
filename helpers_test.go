package keyscope

import (
	"fmt"
	"time"
)

// fakeNode is a minimal keyscope.Node for root-package tests: an id
// (used by fakeSelector for matching) and a parent pointer.
type fakeNode struct {
	id     string
	parent *fakeNode
}

func (n *fakeNode) Parent() Node {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

// fakeEvent is a minimal KeyEvent: Canonicalize reads r/name/mods
// directly, Target/CurrentTarget bound the scoped walk, and
// PreventDefault/StopPropagation/Clone behave per the real contract —
// Clone copies everything except the propagation-control flags, which
// reset, mirroring termhost.Event's Clone.
type fakeEvent struct {
	r         rune
	hasRune   bool
	name      string
	mods      Modifiers
	target    *fakeNode
	current   *fakeNode
	prevented bool
	stopped   bool
}

func (e *fakeEvent) Target() Node { return e.target }
func (e *fakeEvent) CurrentTarget() Node {
	if e.current != nil {
		return e.current
	}
	return e.target
}
func (e *fakeEvent) PreventDefault()  { e.prevented = true }
func (e *fakeEvent) StopPropagation() { e.stopped = true }
func (e *fakeEvent) Clone() KeyEvent {
	c := *e
	c.prevented = false
	c.stopped = false
	return &c
}
func (e *fakeEvent) Rune() (rune, bool) { return e.r, e.hasRune }
func (e *fakeEvent) KeyName() string    { return e.name }
func (e *fakeEvent) Mods() Modifiers    { return e.mods }

// fakeCanonicalizer treats a rune as its own single-character stroke
// and a key name as its own stroke, so tests can author sequences like
// []string{"g", "d"} directly. Normalize("invalid", _) fails, for
// exercising Registry's validation-error path.
type fakeCanonicalizer struct{}

func (fakeCanonicalizer) Canonicalize(event KeyEvent, _ Layout) Stroke {
	if r, ok := event.Rune(); ok {
		return Stroke(string(r))
	}
	if name := event.KeyName(); name != "" {
		return Stroke(name)
	}
	return ""
}

func (fakeCanonicalizer) Normalize(strokeString string, _ Layout) (Stroke, error) {
	if strokeString == "invalid" {
		return "", errFakeNormalize
	}
	return Stroke(strokeString), nil
}

var errFakeNormalize = fakeNormalizeError{}

type fakeNormalizeError struct{}

func (fakeNormalizeError) Error() string { return "fake: cannot normalize" }

// fakeSelector treats a selector string as a node id to match against,
// except "bad" which is never a valid selector, and "" is handled by
// the caller (registry.go never calls IsValid/Matches for an empty
// selector). Specificity is just the selector's length so two
// differently-scoped bindings can be given a deterministic precedence
// order in tests.
type fakeSelector struct{}

func (fakeSelector) IsValid(selector string) bool { return selector != "bad" }
func (fakeSelector) Specificity(selector string) int { return len(selector) }
func (fakeSelector) Matches(node Node, selector string) bool {
	n, ok := node.(*fakeNode)
	return ok && n != nil && n.id == selector
}

// fakeTimer is a controllable Timer: Stop is idempotent and reports
// whether it actually stopped a pending fire.
type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// fire invokes the timer's callback directly, simulating expiry. It
// does not check t.stopped — callers decide whether a "stopped" timer
// should still be fired, same as the real race time.Timer.Stop() has
// against an in-flight callback.
func (t *fakeTimer) fire() { t.fn() }

// fakeClock records every AfterFunc call instead of scheduling
// anything, so tests can fire (or not fire) the ambiguity timer
// explicitly rather than racing a real one.
type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(_ time.Duration, f func()) Timer {
	t := &fakeTimer{fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) last() *fakeTimer {
	if len(c.timers) == 0 {
		return nil
	}
	return c.timers[len(c.timers)-1]
}

// fakeSink captures Warn/Error calls for assertion instead of writing
// anywhere.
type fakeSink struct {
	warns  []string
	errors []string
}

func (s *fakeSink) Warn(format string, args ...any) {
	s.warns = append(s.warns, fmt.Sprintf(format, args...))
}
func (s *fakeSink) Error(format string, args ...any) {
	s.errors = append(s.errors, fmt.Sprintf(format, args...))
}

func newEngine(opts ...Option) (*Engine, *fakeClock, *fakeSink) {
	clock := &fakeClock{}
	sink := &fakeSink{}
	base := []Option{
		WithCanonicalizer(fakeCanonicalizer{}),
		WithSelectorEngine(fakeSelector{}),
		WithClock(clock),
		WithDiagnosticSink(sink),
	}
	e := New(append(base, opts...)...)
	return e, clock, sink
}
