package spinbutton

import "github.com/muurk/spinbutton/internal/logging"

// Key identifies the keys a spin button reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return "other"
	}
}

// KeyEvent is a key press with its modifier state.
type KeyEvent struct {
	Key  Key
	Alt  bool
	Ctrl bool
	Meta bool
}

func (e KeyEvent) hasModifier() bool {
	return e.Alt || e.Ctrl || e.Meta
}

// Button identifies one of the two activation controls.
type Button int

const (
	ButtonIncrement Button = iota
	ButtonDecrement
)

// String returns the button name.
func (b Button) String() string {
	if b == ButtonIncrement {
		return "increment"
	}
	return "decrement"
}

// Focus marks the widget focused, unless it is disabled.
func (w *Widget) Focus() {
	w.state.HasFocus = !w.cfg.Disabled
}

// Blur marks the widget unfocused.
func (w *Widget) Blur() {
	w.state.HasFocus = false
}

// HandleKey applies a key press. It returns true when the key was consumed
// and its default action should be suppressed; false means the event must be
// passed through unmodified.
func (w *Widget) HandleKey(ev KeyEvent) bool {
	if w.cfg.Disabled || w.cfg.Readonly || ev.hasModifier() {
		logging.LogKeyEvent(w.cfg.ID, ev.Key.String(), false)
		return false
	}
	switch ev.Key {
	case KeyUp:
		w.Increment()
	case KeyDown:
		w.Decrement()
	case KeyHome:
		w.mutate(ValueOf(w.res.Min), "home")
	case KeyEnd:
		w.mutate(ValueOf(w.res.Max), "end")
	default:
		logging.LogKeyEvent(w.cfg.ID, ev.Key.String(), false)
		return false
	}
	logging.LogKeyEvent(w.cfg.ID, ev.Key.String(), true)
	return true
}

// Activate presses an activation button. Buttons are inert while the widget
// is disabled or readonly. It reports whether the value changed.
func (w *Widget) Activate(b Button) bool {
	if w.cfg.Disabled || w.cfg.Readonly {
		return false
	}
	if b == ButtonIncrement {
		return w.Increment()
	}
	return w.Decrement()
}
