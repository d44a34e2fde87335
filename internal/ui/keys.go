package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

// KeyMap defines the key bindings of the spin button screen.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	StepUp   key.Binding
	StepDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.StepUp, k.StepDown},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+up"),
			key.WithHelp("↑", "increment"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "shift+down"),
			key.WithHelp("↓", "decrement"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "shift+home"),
			key.WithHelp("home", "minimum"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "shift+end"),
			key.WithHelp("end", "maximum"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "press increment"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "press decrement"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("enter", "q", "esc", "ctrl+c"),
			key.WithHelp("enter/q", "done"),
		),
	}
}

// event resolves a key press through the bindings. Presses that match no
// navigation binding keep only their alt/ctrl modifiers so the controller
// can reject them; everything else becomes KeyOther.
func (k KeyMap) event(msg tea.KeyMsg) spinbutton.KeyEvent {
	switch {
	case key.Matches(msg, k.Up):
		return spinbutton.KeyEvent{Key: spinbutton.KeyUp}
	case key.Matches(msg, k.Down):
		return spinbutton.KeyEvent{Key: spinbutton.KeyDown}
	case key.Matches(msg, k.Home):
		return spinbutton.KeyEvent{Key: spinbutton.KeyHome}
	case key.Matches(msg, k.End):
		return spinbutton.KeyEvent{Key: spinbutton.KeyEnd}
	}
	ev := translateKey(msg)
	if !ev.Alt && !ev.Ctrl {
		ev.Key = spinbutton.KeyOther
	}
	return ev
}

// translateKey maps a terminal key press onto a controller key event.
// Shift is not a modifier for the widget; alt and ctrl are.
func translateKey(msg tea.KeyMsg) spinbutton.KeyEvent {
	ev := spinbutton.KeyEvent{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyUp, tea.KeyShiftUp:
		ev.Key = spinbutton.KeyUp
	case tea.KeyDown, tea.KeyShiftDown:
		ev.Key = spinbutton.KeyDown
	case tea.KeyHome, tea.KeyShiftHome:
		ev.Key = spinbutton.KeyHome
	case tea.KeyEnd, tea.KeyShiftEnd:
		ev.Key = spinbutton.KeyEnd
	case tea.KeyCtrlUp, tea.KeyCtrlShiftUp:
		ev.Key, ev.Ctrl = spinbutton.KeyUp, true
	case tea.KeyCtrlDown, tea.KeyCtrlShiftDown:
		ev.Key, ev.Ctrl = spinbutton.KeyDown, true
	case tea.KeyCtrlHome, tea.KeyCtrlShiftHome:
		ev.Key, ev.Ctrl = spinbutton.KeyHome, true
	case tea.KeyCtrlEnd, tea.KeyCtrlShiftEnd:
		ev.Key, ev.Ctrl = spinbutton.KeyEnd, true
	default:
		ev.Key = spinbutton.KeyOther
	}
	return ev
}
