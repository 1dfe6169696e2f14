package keyscope

import (
	"fmt"
	"sync"
)

// Registry holds the set of currently-registered bindings in insertion
// order. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	bindings []*normalizedBinding

	canon    Canonicalizer
	selector SelectorEngine
	layout   Layout
	sink     DiagnosticSink
}

func newRegistry(canon Canonicalizer, selector SelectorEngine, layout Layout, sink DiagnosticSink) *Registry {
	return &Registry{
		canon:    canon,
		selector: selector,
		layout:   layout,
		sink:     sink,
	}
}

// register validates and appends bindings, returning a Handle that
// revokes exactly this batch. A binding that fails validation is
// skipped and logged; the rest of the batch still registers.
func (r *Registry) register(bindings []Binding) Handle {
	b := &batch{}

	for i, in := range bindings {
		nb, err := r.normalize(in)
		if err != nil {
			if r.sink != nil {
				r.sink.Warn("keyscope: skipping binding %d: %v", i, err)
			}
			continue
		}
		nb.batch = b
		b.bindings = append(b.bindings, nb)
	}

	r.mu.Lock()
	r.bindings = append(r.bindings, b.bindings...)
	r.mu.Unlock()

	return Handle{b: b, r: r}
}

func (r *Registry) normalize(in Binding) (*normalizedBinding, error) {
	if len(in.Sequence) == 0 {
		return nil, ErrEmptySequence
	}

	seq := make([]Stroke, len(in.Sequence))
	for i, raw := range in.Sequence {
		s, err := r.canon.Normalize(raw, r.layout)
		if err != nil {
			return nil, fmt.Errorf("%w: stroke %d (%q): %v", ErrBadStroke, i, raw, err)
		}
		seq[i] = s
	}

	specificity := 0
	if in.Selector != "" {
		if !r.selector.IsValid(in.Selector) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSelector, in.Selector)
		}
		specificity = r.selector.Specificity(in.Selector)
	}

	return &normalizedBinding{
		sequence:    seq,
		selector:    in.Selector,
		specificity: specificity,
		handler:     in.Handler,
		args:        in.Args,
		description: in.Description,
	}, nil
}

// unregister removes every binding belonging to b. Idempotent: a batch
// already revoked (or never registered) is a no-op.
func (r *Registry) unregister(b *batch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.revoked {
		return
	}
	b.revoked = true

	if len(b.bindings) == 0 {
		return
	}

	kept := r.bindings[:0:0]
	for _, nb := range r.bindings {
		if nb.batch != b {
			kept = append(kept, nb)
		}
	}
	r.bindings = kept
}

// snapshot returns the current bindings in registration order. The
// returned slice must not be mutated by the caller.
func (r *Registry) snapshot() []*normalizedBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bindings
}
