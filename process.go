package keyscope

// Process is the engine's single entry point, called by the host from
// its own key-press listener. It drives the Pending-State Controller:
// canonicalize, classify, then either dispatch immediately, extend a
// pending window, or abort and replay.
//
// Process never panics out to the caller; a handler panic is recovered
// and reported via the diagnostic sink.
func (e *Engine) Process(event KeyEvent) {
	if e.pending.replaying {
		return
	}

	stroke := e.canon.Canonicalize(event, e.layout)
	if stroke == "" {
		return
	}

	e.pending.sequence = append(e.pending.sequence, stroke)
	bindings := e.registry.snapshot()
	exact, partial := classifyAll(bindings, e.pending.sequence)
	live := len(partial) > 0 && anyMatchesPath(partial, event, e.selector)

	if e.metrics != nil {
		e.metrics.recordClassification(len(exact) > 0, live, false)
	}

	switch {
	case len(exact) == 0 && !live:
		e.abortAndReplay()

	case !live: // len(exact) > 0, no live partial: dispatch now
		e.dispatchExactNow(exact, event)

	default: // live partial: extend or enter the pending window
		event.PreventDefault()
		event.StopPropagation()
		e.pending.suppressed = append(e.pending.suppressed, event)
		if len(exact) > 0 {
			e.pending.deferred = &deferredMatch{bindings: exact, event: event}
		}
		e.armTimer()
	}
}

// dispatchExactNow runs the scoped dispatch for an immediate exact
// match and returns the controller to S0. Any events suppressed earlier
// in this pending run are implicitly released, not replayed — they were
// consumed by the completed sequence.
func (e *Engine) dispatchExactNow(exact []*normalizedBinding, event KeyEvent) {
	scopedDispatch(exact, event, e.selector, e.sink, &e.hooks, e.metrics)
	e.pending.reset()
}

// abortAndReplay returns the controller to S0 without a match, faithfully
// redelivering any events suppressed during the abandoned pending run.
// The event that triggered the abort is left completely untouched.
func (e *Engine) abortAndReplay() {
	suppressed := e.pending.suppressed
	e.pending.reset()
	if len(suppressed) == 0 {
		return
	}

	e.pending.replaying = true
	if e.deliver != nil {
		replay(suppressed, e.deliver)
	}
	e.pending.replaying = false
}

// armTimer (re)starts the ambiguity timer from now. Called on every
// partial-preserving transition, per §4.4's "restarted on every
// partial-preserving transition" rule.
func (e *Engine) armTimer() {
	if e.pending.timer != nil {
		e.pending.timer.Stop()
	}
	e.pending.timer = e.clock.AfterFunc(e.ambiguityWindow, e.onTimerFire)
}

// onTimerFire runs when the ambiguity timer expires without further
// disambiguation. If a deferred exact match was captured, it is
// dispatched now against its snapshotted event; the rest of the
// suppressed buffer is discarded (implicitly released, same as an
// immediate exact dispatch). Otherwise every suppressed event is
// replayed.
//
// Clock implementations must invoke this callback on whatever goroutine
// drives Process — the engine keeps no lock on the pending state, by
// design (§5: single-threaded and cooperative).
func (e *Engine) onTimerFire() {
	dm := e.pending.deferred
	suppressed := e.pending.suppressed
	e.pending.sequence = nil
	e.pending.deferred = nil
	e.pending.suppressed = nil
	e.pending.timer = nil

	if dm != nil {
		if e.metrics != nil {
			e.metrics.recordClassification(false, false, true)
		}
		scopedDispatch(dm.bindings, dm.event, e.selector, e.sink, &e.hooks, e.metrics)
		return
	}

	e.pending.replaying = true
	if e.deliver != nil {
		replay(suppressed, e.deliver)
	}
	e.pending.replaying = false
}
