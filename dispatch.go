package keyscope

import (
	"sort"
	"time"
)

// scopedDispatch walks the ancestor chain from event.Target() to
// event.CurrentTarget(). At each visited node it filters exact to the
// bindings whose selector matches that node, sorts the survivors by
// specificity descending (ties broken by registration order — first
// registered wins), and invokes handlers in that order. A truthy return
// suppresses the event and stops the walk; a falsy return tries the
// next candidate at the same node. The walk terminates once
// currentTarget is reached, regardless of result.
//
// Handler panics are recovered and reported via sink; a recovered
// handler is treated as though it had returned falsy.
func scopedDispatch(exact []*normalizedBinding, event KeyEvent, selector SelectorEngine, sink DiagnosticSink, hooks *hookSet, metrics *Metrics) bool {
	if len(exact) == 0 {
		return false
	}

	order := make(map[*normalizedBinding]int, len(exact))
	for i, nb := range exact {
		order[nb] = i
	}

	node := event.Target()
	currentTarget := event.CurrentTarget()
	for {
		survivors := make([]*normalizedBinding, 0, len(exact))
		for _, nb := range exact {
			if nb.selector == "" || selector.Matches(node, nb.selector) {
				survivors = append(survivors, nb)
			}
		}

		sort.SliceStable(survivors, func(i, j int) bool {
			a, b := survivors[i], survivors[j]
			if a.specificity != b.specificity {
				return a.specificity > b.specificity
			}
			return order[a] < order[b]
		})

		for _, nb := range survivors {
			if invokeHandler(nb, event, sink, hooks, metrics) {
				event.PreventDefault()
				event.StopPropagation()
				return true
			}
		}

		if node == nil || node == currentTarget {
			return false
		}
		node = node.Parent()
	}
}

// anyMatchesPath reports whether at least one binding's selector matches
// some node on event's path from Target() to CurrentTarget(). A binding
// with an empty selector always matches. Used to decide whether a
// partial match is actually live for this event before the engine
// suppresses it (§4.4): an unrelated scope's partial must never stall
// propagation.
func anyMatchesPath(bindings []*normalizedBinding, event KeyEvent, selector SelectorEngine) bool {
	currentTarget := event.CurrentTarget()
	for node := event.Target(); ; node = node.Parent() {
		for _, nb := range bindings {
			if nb.selector == "" || selector.Matches(node, nb.selector) {
				return true
			}
		}
		if node == nil || node == currentTarget {
			return false
		}
	}
}

// invokeHandler calls a binding's handler, recovering from a panic and
// reporting it to sink. A panicking handler is treated as not having
// consumed the event. When metrics is non-nil, the handler call's
// wall-clock duration is recorded whether or not the handler consumed
// the event; a call that panics, or that a pre-hook cancels, is not
// recorded.
func invokeHandler(nb *normalizedBinding, event KeyEvent, sink DiagnosticSink, hooks *hookSet, metrics *Metrics) (consumed bool) {
	defer func() {
		if r := recover(); r != nil {
			if sink != nil {
				sink.Error("keyscope: handler panic: %v", r)
			}
			consumed = false
		}
	}()

	if nb.handler == nil {
		return false
	}

	b := nb.toBinding()
	if hooks != nil && !hooks.runPre(event, b) {
		return false
	}

	start := time.Now()
	consumed = nb.handler(nb.args)
	if metrics != nil {
		metrics.recordDispatch(time.Since(start))
	}

	if hooks != nil {
		hooks.runPost(event, b, consumed)
	}
	return consumed
}
