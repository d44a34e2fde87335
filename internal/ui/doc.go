// Package ui renders a spin button in the terminal.
//
// Model is a Bubble Tea model wrapping a spinbutton.Widget. It turns key
// presses, mouse presses and terminal focus reports into controller events
// and draws the widget with Lipgloss:
//
//	[ − ]   42   [ + ]
//
// Vertical widgets stack the increment button on top. The group border is
// colored by validity, then focus. Button icons are padded wider while the
// widget has focus, and the button under the pointer is highlighted.
//
// # Messages
//
// Every interaction that changes the value produces a ValueChangedMsg.
// SetValueMsg stores a value from outside without clamping and without a
// ValueChangedMsg. StepMsg presses a button.
//
// Mouse coordinates are resolved through a HitMap built from the same
// layout pass as View, offset by Model.Origin. Run the program on the
// alternate screen so the view starts at the top-left cell.
//
// Printer renders the non-interactive attribute reports of the attrs
// command.
//
// # Logging Integration
//
// The widget owns the terminal while it runs. Logging is controlled via the
// SPINBUTTON_LOG_LEVEL environment variable and should be sent to a file with
// SPINBUTTON_LOG_FILE; when the level is unset zap is silent.
package ui
