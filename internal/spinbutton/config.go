package spinbutton

import (
	"github.com/google/uuid"
)

// Default accessible labels of the activation buttons.
const (
	DefaultLabelIncrement = "Increment"
	DefaultLabelDecrement = "Decrement"
)

// Config is the external configuration of a spin button. It is treated as
// immutable between calls to Widget.Configure.
type Config struct {
	// Min, Max and Step accept a Go number or a numeric string.
	Min  any
	Max  any
	Step any

	Wrap     bool
	Disabled bool
	Readonly bool
	Required bool

	// State is the explicit validity: nil (unset), true or false.
	State *bool

	// Formatter overrides the display text. It never changes the value or
	// the numeric attributes.
	Formatter func(float64) string

	// ID identifies the value display element. A random one is generated
	// when empty.
	ID string

	// Name and Form describe the hidden form field. No field exists
	// without a Name.
	Name string
	Form string

	Placeholder    string
	LabelIncrement string
	LabelDecrement string
	AriaLabel      string
	AriaControls   string

	// Layout only.
	Inline   bool
	Vertical bool
}

// Valid returns a pointer usable as Config.State.
func Valid(b bool) *bool {
	return &b
}

// withDefaults fills the identifier and button labels.
func (c Config) withDefaults() Config {
	if c.ID == "" {
		c.ID = NewID()
	}
	if c.LabelIncrement == "" {
		c.LabelIncrement = DefaultLabelIncrement
	}
	if c.LabelDecrement == "" {
		c.LabelDecrement = DefaultLabelDecrement
	}
	return c
}

// NewID returns a fresh value display identifier.
func NewID() string {
	return "spinbutton-" + uuid.NewString()[:8]
}
