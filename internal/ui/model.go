package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/spinbutton/internal/hover"
	"github.com/muurk/spinbutton/internal/spinbutton"
)

// ValueChangedMsg is emitted when a user interaction changes the value.
type ValueChangedMsg struct {
	ID    string
	Value spinbutton.Value
}

// SetValueMsg assigns the value from outside. It is stored as given and
// produces no ValueChangedMsg; the WithOnExternal handler sees it instead.
type SetValueMsg struct {
	Value spinbutton.Value
}

// StepMsg presses a button programmatically.
type StepMsg struct {
	Button spinbutton.Button
}

// buttonHover holds hover state shared between copies of a Model.
type buttonHover struct {
	trackers [2]hover.Tracker
	hovered  [2]bool
}

// Model is the Bubble Tea model of a spin button.
type Model struct {
	widget     *spinbutton.Widget
	keys       KeyMap
	help       help.Model
	hover      *buttonHover
	onExternal func(spinbutton.Value)

	// Origin is the screen cell of the view's top-left corner, used to
	// translate mouse coordinates.
	Origin struct{ X, Y int }

	Width    int
	Done     bool
	ShowHelp bool
}

// NewModel wraps w. The widget takes focus unless it is disabled.
func NewModel(w *spinbutton.Widget) Model {
	w.Focus()
	hs := &buttonHover{}
	for i := range hs.trackers {
		hs.trackers[i].Bind(func(hovered bool) {
			hs.hovered[i] = hovered
		})
	}
	return Model{
		widget:   w,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		hover:    hs,
		ShowHelp: true,
	}
}

// Widget returns the wrapped widget.
func (m Model) Widget() *spinbutton.Widget {
	return m.widget
}

// Keys returns the active key map.
func (m Model) Keys() KeyMap {
	return m.keys
}

// WithOnExternal returns a copy of m that calls fn with the stored value
// after each SetValueMsg. It runs on the event loop, so it is ordered with
// the widget's own change notifications.
func (m Model) WithOnExternal(fn func(spinbutton.Value)) Model {
	m.onExternal = fn
	return m
}

// WithKeyMap returns a copy of m using keys.
func (m Model) WithKeyMap(keys KeyMap) Model {
	m.keys = keys
	return m
}

// Hovered reports whether the pointer is over button b.
func (m Model) Hovered(b spinbutton.Button) bool {
	return m.hover.hovered[b]
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.widget.Value()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.FocusMsg:
		m.widget.Focus()
		return m, nil

	case tea.BlurMsg:
		m.widget.Blur()
		return m, nil

	case SetValueMsg:
		m.widget.SetExternal(msg.Value)
		if m.onExternal != nil {
			m.onExternal(m.widget.Value())
		}
		return m, nil

	case StepMsg:
		m.widget.Activate(msg.Button)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if !m.widget.HasFocus() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.StepUp):
			m.widget.Activate(spinbutton.ButtonIncrement)
		case key.Matches(msg, m.keys.StepDown):
			m.widget.Activate(spinbutton.ButtonDecrement)
		default:
			m.widget.HandleKey(m.keys.event(msg))
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, m.changed(before)
}

// changed returns a command announcing the current value when it differs
// from before.
func (m Model) changed(before spinbutton.Value) tea.Cmd {
	after := m.widget.Value()
	if after.Equal(before) {
		return nil
	}
	id := m.widget.ID()
	return func() tea.Msg {
		return ValueChangedMsg{ID: id, Value: after}
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	_, hits := m.render()
	hit := hits.Test(msg.X-m.Origin.X, msg.Y-m.Origin.Y)

	m.hover.trackers[spinbutton.ButtonIncrement].Update(hit != nil && hit.Part == spinbutton.PartIncrement)
	m.hover.trackers[spinbutton.ButtonDecrement].Update(hit != nil && hit.Part == spinbutton.PartDecrement)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if hit == nil {
		m.widget.Blur()
		return
	}
	m.widget.Focus()
	switch hit.Part {
	case spinbutton.PartIncrement:
		m.widget.Activate(spinbutton.ButtonIncrement)
	case spinbutton.PartDecrement:
		m.widget.Activate(spinbutton.ButtonDecrement)
	}
}

// View implements tea.Model
func (m Model) View() string {
	body, _ := m.render()

	var b strings.Builder
	b.WriteString(body)

	if field, ok := m.widget.HiddenField(); ok {
		b.WriteString("\n")
		b.WriteString(FieldStyle.Render(field.Name + "=" + field.Value))
	}
	if m.ShowHelp {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")
	return b.String()
}

// render draws the label and the bordered widget, and maps the parts it
// drew to view-relative cells.
func (m Model) render() (string, *HitMap) {
	hits := &HitMap{}
	attrs := m.widget.Attributes()
	group := m.widget.Group()

	top := 0
	var label string
	if attrs.Label != "" {
		label = LabelStyle.Render(attrs.Label)
		top = lipgloss.Height(label)
	}

	var parts []string
	var order []spinbutton.Part
	for _, p := range m.widget.Layout() {
		s := m.renderPart(p)
		if s == "" {
			continue
		}
		parts = append(parts, s)
		order = append(order, p)
	}

	var inner string
	if group.Vertical {
		inner = lipgloss.JoinVertical(lipgloss.Center, parts...)
	} else {
		inner = lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}
	innerW, innerH := lipgloss.Width(inner), lipgloss.Height(inner)

	// Inside the one-cell border.
	x, y := 1, top+1
	for i, s := range parts {
		w, h := lipgloss.Width(s), lipgloss.Height(s)
		if group.Vertical {
			hits.Add(order[i], Rect{X: x + (innerW-w)/2, Y: y, W: w, H: h})
			y += h
		} else {
			hits.Add(order[i], Rect{X: x, Y: y + (innerH-h)/2, W: w, H: h})
			x += w
		}
	}

	boxed := GroupStyle(group.Focus, group.Valid, group.Invalid, group.Disabled).Render(inner)
	if label != "" {
		return lipgloss.JoinVertical(lipgloss.Left, label, boxed), hits
	}
	return boxed, hits
}

func (m Model) renderPart(p spinbutton.Part) string {
	buttons := m.widget.Buttons()
	switch p {
	case spinbutton.PartIncrement:
		return m.renderButton(buttons[spinbutton.ButtonIncrement], IconIncrement)
	case spinbutton.PartDecrement:
		return m.renderButton(buttons[spinbutton.ButtonDecrement], IconDecrement)
	case spinbutton.PartSpin:
		text := m.widget.DisplayText()
		style := ValueStyle
		if text == "" {
			text = m.widget.Config().Placeholder
			style = PlaceholderStyle
		}
		width := lipgloss.Width(text) + 2
		if width < MinDisplayWidth {
			width = MinDisplayWidth
		}
		return style.Width(width).Render(text)
	default:
		return ""
	}
}

func (m Model) renderButton(attrs spinbutton.ButtonAttributes, icon string) string {
	style := ButtonStyle
	switch {
	case attrs.Disabled:
		style = ButtonDisabledStyle
	case m.hover.hovered[attrs.Button]:
		style = ButtonHoverStyle
	}
	return style.Padding(0, ButtonPadding(attrs.IconScale)).Render(icon)
}
