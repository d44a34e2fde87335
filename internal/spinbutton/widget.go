package spinbutton

import (
	"go.uber.org/zap"

	"github.com/muurk/spinbutton/internal/logging"
)

// State is the mutable part of a spin button.
type State struct {
	Value    Value
	HasFocus bool
}

// Option configures a Widget at construction.
type Option func(*Widget)

// WithOnChange registers the change notification handler. It is called
// synchronously after every internal mutation that changes the value.
func WithOnChange(fn func(Value)) Option {
	return func(w *Widget) {
		w.onChange = fn
	}
}

// Widget is a spin button instance: configuration, derived configuration
// and state. The zero Widget is not usable; call New.
type Widget struct {
	cfg   Config
	res   Resolved
	state State

	onChange  func(Value)
	notifying bool
}

// New creates a widget seeded with the externally supplied value.
func New(cfg Config, initial Value, opts ...Option) *Widget {
	w := &Widget{}
	for _, opt := range opts {
		opt(w)
	}
	w.Configure(cfg)
	w.state.Value = initial
	return w
}

// Configure replaces the configuration and recomputes everything derived
// from it. A disabled widget loses focus. No notification is emitted.
func (w *Widget) Configure(cfg Config) {
	if cfg.ID == "" && w.cfg.ID != "" {
		cfg.ID = w.cfg.ID
	}
	w.cfg = cfg.withDefaults()
	w.res = ResolveConfig(w.cfg)
	if w.cfg.Disabled {
		w.state.HasFocus = false
	}
}

// Config returns the current configuration, defaults filled in.
func (w *Widget) Config() Config {
	return w.cfg
}

// Resolved returns the effective numeric configuration.
func (w *Widget) Resolved() Resolved {
	return w.res
}

// State returns a snapshot of the widget state.
func (w *Widget) State() State {
	return w.state
}

// Value returns the current value.
func (w *Widget) Value() Value {
	return w.state.Value
}

// ID returns the value display identifier.
func (w *Widget) ID() string {
	return w.cfg.ID
}

// HasFocus reports whether the widget currently has focus.
func (w *Widget) HasFocus() bool {
	return w.state.HasFocus
}

// SetExternal re-synchronises the value from outside. The value is not
// clamped and no notification is emitted. It is honoured even when the widget
// is disabled, readonly, or in the middle of a change notification.
func (w *Widget) SetExternal(v Value) {
	w.state.Value = v
}

// SetValue stores value clamped or wrapped into range. It is a no-op when the
// widget is disabled. It reports whether the value changed.
func (w *Widget) SetValue(value float64) bool {
	if w.cfg.Disabled {
		return false
	}
	return w.mutate(ValueOf(ClampOrWrap(value, w.res.Min, w.res.Max, w.cfg.Wrap)), "set")
}

// Increment moves the value one step up. An absent value becomes min.
func (w *Widget) Increment() bool {
	if w.cfg.Disabled {
		return false
	}
	cur, ok := w.state.Value.Float()
	if !ok {
		return w.mutate(ValueOf(w.res.Min), "increment")
	}
	return w.SetValue(w.res.stepFrom(cur, 1))
}

// Decrement moves the value one step down. An absent value becomes max when
// wrapping, min otherwise.
func (w *Widget) Decrement() bool {
	if w.cfg.Disabled {
		return false
	}
	cur, ok := w.state.Value.Float()
	if !ok {
		start := w.res.Min
		if w.cfg.Wrap {
			start = w.res.Max
		}
		return w.mutate(ValueOf(start), "decrement")
	}
	return w.SetValue(w.res.stepFrom(cur, -1))
}

// FormattedValue is the value fixed to the resolved precision, "" when absent.
func (w *Widget) FormattedValue() string {
	v, ok := w.state.Value.Float()
	if !ok {
		return ""
	}
	return w.res.Format(v)
}

// DisplayText is the formatter output, or FormattedValue when no formatter
// is configured. Absent values display as "".
func (w *Widget) DisplayText() string {
	v, ok := w.state.Value.Float()
	if !ok {
		return ""
	}
	if w.cfg.Formatter != nil {
		return w.cfg.Formatter(v)
	}
	return w.res.Format(v)
}

// mutate stores next and notifies when it differs from the current value.
// Mutations requested by a change handler are dropped so a handler can never
// loop back into another notification.
func (w *Widget) mutate(next Value, source string) bool {
	if w.notifying {
		logging.Debug("Ignoring re-entrant spin button mutation",
			zap.String("id", w.cfg.ID),
			zap.String("source", source),
		)
		return false
	}
	prev := w.state.Value
	if prev.Equal(next) {
		return false
	}
	w.state.Value = next
	logging.LogValueChange(w.cfg.ID, prev.String(), next.String(), source)
	w.notify(next)
	return true
}

func (w *Widget) notify(v Value) {
	if w.onChange == nil {
		return
	}
	w.notifying = true
	defer func() { w.notifying = false }()
	w.onChange(v)
}
