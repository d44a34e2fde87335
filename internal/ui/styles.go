package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, focus ring
	SuccessColor = lipgloss.Color("#43BF6D") // Green - valid state
	ErrorColor   = lipgloss.Color("#FF5555") // Red - invalid state
	WarningColor = lipgloss.Color("#FFA500") // Orange - hovered button
	MutedColor   = lipgloss.Color("#626262") // Gray - placeholder, disabled
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	MinDisplayWidth  = 8   // Minimum width of the value display
)

// Button icons
const (
	IconIncrement = "+"
	IconDecrement = "−"
)

var (
	// HeaderTitleStyle is for report titles (e.g., "SPIN BUTTON ATTRIBUTES")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command path
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Range:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// AttrKeyStyle is for attribute names in reports
	AttrKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(18)

	// AttrValueStyle is for attribute values in reports
	AttrValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// LabelStyle is for the accessible label above the widget
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// ValueStyle is for the value display
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Align(lipgloss.Center)

	// PlaceholderStyle is for the placeholder shown with no value
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true).
				Align(lipgloss.Center)

	// ButtonStyle is for an enabled button icon
	ButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// ButtonHoverStyle is for the button under the mouse pointer
	ButtonHoverStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ButtonDisabledStyle is for inert buttons
	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// FieldStyle is for the hidden form field line
	FieldStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// HeaderBorderStyle returns the border style for report headers
func HeaderBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2) // Account for border characters
}

// GroupStyle returns the border around the widget for the given flags.
// Validity wins over focus, disabled wins over both.
func GroupStyle(focus, valid, invalid, disabled bool) lipgloss.Style {
	color := MutedColor
	switch {
	case disabled:
		color = MutedColor
	case invalid:
		color = ErrorColor
	case valid:
		color = SuccessColor
	case focus:
		color = PrimaryColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// ButtonPadding returns the horizontal padding that renders an icon at scale.
func ButtonPadding(scale float64) int {
	if scale > 1.25 {
		return 2
	}
	return 1
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
