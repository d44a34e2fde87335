package spinbutton

import "testing"

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		start    Value
		ev       KeyEvent
		consumed bool
		want     Value
	}{
		{"up increments", Config{Min: 0, Max: 10}, ValueOf(3), KeyEvent{Key: KeyUp}, true, ValueOf(4)},
		{"down decrements", Config{Min: 0, Max: 10}, ValueOf(3), KeyEvent{Key: KeyDown}, true, ValueOf(2)},
		{"home jumps to min", Config{Min: 0, Max: 10}, ValueOf(3), KeyEvent{Key: KeyHome}, true, ValueOf(0)},
		{"end jumps to max", Config{Min: 0, Max: 10}, ValueOf(3), KeyEvent{Key: KeyEnd}, true, ValueOf(10)},
		{"home ignores wrap", Config{Min: 0, Max: 10, Wrap: true}, Absent(), KeyEvent{Key: KeyHome}, true, ValueOf(0)},
		{"end ignores wrap", Config{Min: 0, Max: 10, Wrap: true}, Absent(), KeyEvent{Key: KeyEnd}, true, ValueOf(10)},
		{"alt passes through", Config{Min: 0, Max: 10}, ValueOf(3), KeyEvent{Key: KeyUp, Alt: true}, false, ValueOf(3)},
		{"ctrl passes through", Config{Min: 0, Max: 10}, ValueOf(3), KeyEvent{Key: KeyDown, Ctrl: true}, false, ValueOf(3)},
		{"meta passes through", Config{Min: 0, Max: 10}, ValueOf(3), KeyEvent{Key: KeyEnd, Meta: true}, false, ValueOf(3)},
		{"other key passes through", Config{Min: 0, Max: 10}, ValueOf(3), KeyEvent{Key: KeyOther}, false, ValueOf(3)},
		{"readonly passes through", Config{Min: 0, Max: 10, Readonly: true}, ValueOf(3), KeyEvent{Key: KeyUp}, false, ValueOf(3)},
		{"disabled passes through", Config{Min: 0, Max: 10, Disabled: true}, ValueOf(3), KeyEvent{Key: KeyHome}, false, ValueOf(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.cfg, tt.start)
			if got := w.HandleKey(tt.ev); got != tt.consumed {
				t.Errorf("HandleKey() = %v, want %v", got, tt.consumed)
			}
			if !w.Value().Equal(tt.want) {
				t.Errorf("value = %v, want %v", w.Value(), tt.want)
			}
		})
	}
}

func TestBoundaryKeysNotify(t *testing.T) {
	rec := &recorder{}
	w := New(Config{Min: 0, Max: 10}, ValueOf(5), WithOnChange(rec.onChange))

	w.HandleKey(KeyEvent{Key: KeyHome})
	w.HandleKey(KeyEvent{Key: KeyEnd})
	// Already at max: consumed, but nothing changes
	if !w.HandleKey(KeyEvent{Key: KeyEnd}) {
		t.Error("End at max should still be consumed")
	}

	if len(rec.values) != 2 {
		t.Fatalf("got %d notifications, want 2", len(rec.values))
	}
	if !rec.values[0].Equal(ValueOf(0)) || !rec.values[1].Equal(ValueOf(10)) {
		t.Errorf("notifications = %v, want [0 10]", rec.values)
	}
}

func TestActivate(t *testing.T) {
	w := New(Config{Min: 0, Max: 10}, ValueOf(5))
	if !w.Activate(ButtonIncrement) || !w.Value().Equal(ValueOf(6)) {
		t.Errorf("increment button: value = %v, want 6", w.Value())
	}
	if !w.Activate(ButtonDecrement) || !w.Value().Equal(ValueOf(5)) {
		t.Errorf("decrement button: value = %v, want 5", w.Value())
	}

	ro := New(Config{Min: 0, Max: 10, Readonly: true}, ValueOf(5))
	if ro.Activate(ButtonIncrement) {
		t.Error("readonly widget buttons must be inert")
	}
	// Programmatic and external changes still work when readonly
	ro.SetExternal(ValueOf(8))
	if !ro.Value().Equal(ValueOf(8)) {
		t.Errorf("readonly SetExternal: value = %v, want 8", ro.Value())
	}
}

func TestFocusBlur(t *testing.T) {
	w := New(Config{}, Absent())
	w.Focus()
	if !w.HasFocus() {
		t.Error("Focus() did not set focus")
	}
	w.Blur()
	if w.HasFocus() {
		t.Error("Blur() did not clear focus")
	}
}
