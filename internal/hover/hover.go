// Package hover tracks pointer enter/leave transitions over a region and
// reports them to a handler as a single boolean.
package hover

// Handler receives true when the pointer enters and false when it leaves.
type Handler func(hovered bool)

// Tracker holds the bound handler and the last known hover state of one
// region. The zero Tracker is ready to use and reports nothing.
type Tracker struct {
	handler Handler
	inside  bool
}

// Bind installs handler, replacing any previous one. A nil handler unbinds.
// The current hover state is kept.
func (t *Tracker) Bind(handler Handler) {
	t.handler = handler
}

// Unbind removes the handler and forgets the hover state.
func (t *Tracker) Unbind() {
	t.handler = nil
	t.inside = false
}

// Hovered reports whether the pointer was inside at the last update.
func (t *Tracker) Hovered() bool {
	return t.inside
}

// Update records whether the pointer is inside the region. The handler is
// only called on transitions.
func (t *Tracker) Update(inside bool) {
	if inside == t.inside {
		return
	}
	t.inside = inside
	if t.handler != nil {
		t.handler(inside)
	}
}
