package keyscope

// Stroke is an opaque, already-normalized token representing one atomic
// key press with its modifier set. The engine treats strokes as
// uninterpreted, equality-comparable values; only the Canonicalizer
// understands their internal structure.
type Stroke string

// Handler is invoked when a binding fires. It returns true if it consumed
// the event (stopping the scoped walk) or false to let the dispatcher try
// the next candidate.
type Handler func(args any) bool

// Binding is a record authored by the caller of Engine.Register.
type Binding struct {
	// Sequence is an ordered, non-empty sequence of raw stroke strings,
	// each conforming to the Canonicalizer's grammar.
	Sequence []string

	// Selector scopes the binding to document nodes matching this
	// selector string, in the SelectorEngine's selector language.
	Selector string

	// Handler is invoked with Args when the binding fires.
	Handler Handler

	// Args is an opaque value passed to Handler.
	Args any

	// Description documents the binding for help overlays. Not
	// interpreted by the engine.
	Description string
}

// normalizedBinding is produced at registration time once a Binding has
// been validated against the Canonicalizer and SelectorEngine.
type normalizedBinding struct {
	sequence    []Stroke
	selector    string
	specificity int
	handler     Handler
	args        any
	description string

	batch *batch // the registration batch this binding belongs to
}

// batch is the internal representation of one Engine.Register call. A
// Handle is a thin capability wrapping a pointer to one.
type batch struct {
	bindings []*normalizedBinding
	revoked  bool
}

// Handle is an opaque, idempotent revocation capability returned from
// Register. Invoking Revoke removes exactly the bindings registered in
// that batch; calling it again is a no-op.
type Handle struct {
	b *batch
	r *Registry
}

// Revoke removes every binding registered in this handle's batch. It is
// safe to call more than once.
func (h Handle) Revoke() {
	if h.b == nil || h.r == nil {
		return
	}
	h.r.unregister(h.b)
}

// Bindings returns the normalized bindings this handle's batch
// registered, even after Revoke — useful for a host building a "what
// does this shortcut do" help overlay. The returned slice must not be
// mutated.
func (h Handle) Bindings() []Binding {
	if h.b == nil {
		return nil
	}
	out := make([]Binding, 0, len(h.b.bindings))
	for _, nb := range h.b.bindings {
		out = append(out, nb.toBinding())
	}
	return out
}

func (nb *normalizedBinding) toBinding() Binding {
	seq := make([]string, len(nb.sequence))
	for i, s := range nb.sequence {
		seq[i] = string(s)
	}
	return Binding{
		Sequence:    seq,
		Selector:    nb.selector,
		Handler:     nb.handler,
		Args:        nb.args,
		Description: nb.description,
	}
}
