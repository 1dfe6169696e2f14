package keyscope

// matchKind classifies how a binding's sequence relates to the strokes
// accumulated so far.
type matchKind int

const (
	matchNone matchKind = iota
	matchPartial
	matchExact
)

// classify compares a binding's sequence against the accumulated
// strokes. It is a pure function: given the same inputs it always
// returns the same classification.
func classify(seq []Stroke, accumulated []Stroke) matchKind {
	if len(accumulated) > len(seq) {
		return matchNone
	}
	for i, s := range accumulated {
		if s != seq[i] {
			return matchNone
		}
	}
	if len(accumulated) == len(seq) {
		return matchExact
	}
	return matchPartial
}

// classification is the result of matching one registered binding
// against the accumulated strokes.
type classification struct {
	binding *normalizedBinding
	kind    matchKind
}

// classifyAll classifies every binding against the accumulated strokes,
// preserving registry order. It performs no mutation and has no side
// effects — the Pending-State Controller decides what to do with the
// result.
func classifyAll(bindings []*normalizedBinding, accumulated []Stroke) (exact, partial []*normalizedBinding) {
	for _, nb := range bindings {
		switch classify(nb.sequence, accumulated) {
		case matchExact:
			exact = append(exact, nb)
		case matchPartial:
			partial = append(partial, nb)
		}
	}
	return exact, partial
}
