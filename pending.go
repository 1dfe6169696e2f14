package keyscope

// deferredMatch is a captured snapshot of the best exact-match candidate
// set seen so far during a pending window, to be dispatched if the
// ambiguity timer fires before the sequence disambiguates further.
type deferredMatch struct {
	bindings []*normalizedBinding
	event    KeyEvent
}

// pendingState is the engine's transient matching state. It exists once
// per Engine and is cleared on abort and on commit (immediate or
// timer-driven). Engine has no dispose or teardown method, so nothing
// else clears it or stops an armed timer.
type pendingState struct {
	sequence   []Stroke
	deferred   *deferredMatch
	suppressed []KeyEvent
	timer      Timer
	replaying  bool
}

// idle reports whether the pending state holds no accumulated strokes.
// This is state S0 of the controller.
func (p *pendingState) idle() bool {
	return len(p.sequence) == 0
}

// reset clears all transient state, stopping any armed timer. It does
// not touch replaying — callers managing replay clear that flag
// themselves once the replay dispatch loop has fully returned.
func (p *pendingState) reset() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.sequence = nil
	p.deferred = nil
	p.suppressed = nil
}
