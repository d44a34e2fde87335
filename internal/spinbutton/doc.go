// Package spinbutton implements the value model and interaction state machine
// of a numeric spin button.
//
// A spin button holds a single bounded number that the user moves up or down
// in fixed steps, from the keyboard (Up, Down, Home, End), from a pair of
// increment/decrement buttons, or programmatically. The package is free of any
// rendering technology: presentation layers feed it events and read back the
// accessibility attributes it derives.
//
// # Numeric Model
//
// Raw configuration (numbers or numeric strings) is resolved into effective
// bounds with fallbacks of min=1, max=100 and step=1:
//
//	res := spinbutton.ResolveConfig(spinbutton.Config{Min: "0", Max: 1, Step: "0.25"})
//	// res.Precision == 2, res.Multiplier == 100
//
// Increment and decrement scale the value by the multiplier, floor it and
// scale it back so that steps such as 0.1 never accumulate binary rounding
// error. Values produced by the widget itself are clamped to [min, max], or
// wrapped to the opposite bound when Wrap is set. Values assigned from outside
// with SetExternal are accepted as-is.
//
// # Interaction
//
//	w := spinbutton.New(spinbutton.Config{Min: 1, Max: 5}, spinbutton.Absent(),
//	    spinbutton.WithOnChange(func(v spinbutton.Value) { fmt.Println(v) }),
//	)
//	w.HandleKey(spinbutton.KeyEvent{Key: spinbutton.KeyUp}) // prints 1
//
// HandleKey reports whether the event was consumed; unconsumed events should
// be passed on unmodified by the caller.
//
// # Accessibility
//
// DeriveAttributes is a pure function of State and Config. Attributes.Map
// renders the ARIA attribute names with absent attributes omitted entirely.
//
// # Threading
//
// A Widget is not safe for concurrent use. It is meant to be owned by a single
// event loop that delivers one event at a time.
package spinbutton
