package keyscope

// replay redelivers each suppressed event to its original target in
// original order, as a faithful clone, so the host and any bypassed
// listener observe it as if the engine had never interfered.
//
// The caller must have set e.pending.replaying = true before invoking
// replay and must clear it once replay returns; Engine.Process checks the flag and
// returns immediately, untouched, for any event that arrives while a
// replay is in flight — this guards against the replayed clones being
// re-suppressed into a new pending cycle.
func replay(events []KeyEvent, deliver func(KeyEvent)) {
	for _, e := range events {
		deliver(e.Clone())
	}
}
