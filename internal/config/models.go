package config

import (
	"github.com/muurk/spinbutton/internal/spinbutton"
)

// CurrentVersion is the only configuration file version understood.
const CurrentVersion = 1

// Registry represents the entire user configuration file.
// It stores named spin button profiles and application preferences.
type Registry struct {
	Version     int                 `yaml:"version"`
	Profiles    map[string]*Profile `yaml:"profiles,omitempty"` // Keyed by profile name
	Preferences *Preferences        `yaml:"preferences,omitempty"`

	path string
}

// Profile is a saved spin button configuration.
// Min, Max and Step keep whatever YAML scalar was written (number or
// string); they are resolved with the usual fallbacks when used.
type Profile struct {
	Description string `yaml:"description,omitempty"`

	Min  any `yaml:"min,omitempty"`
	Max  any `yaml:"max,omitempty"`
	Step any `yaml:"step,omitempty"`

	Value *float64 `yaml:"value,omitempty"` // Initial value; absent when unset

	Wrap     bool  `yaml:"wrap,omitempty"`
	Disabled bool  `yaml:"disabled,omitempty"`
	Readonly bool  `yaml:"readonly,omitempty"`
	Required bool  `yaml:"required,omitempty"`
	State    *bool `yaml:"state,omitempty"` // Explicit validity

	Name        string `yaml:"name,omitempty"` // Hidden form field name
	Form        string `yaml:"form,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	Label       string `yaml:"label,omitempty"` // Accessible label

	LabelIncrement string `yaml:"label_increment,omitempty"`
	LabelDecrement string `yaml:"label_decrement,omitempty"`

	Inline   bool `yaml:"inline,omitempty"`
	Vertical bool `yaml:"vertical,omitempty"`

	DateBase string `yaml:"date_base,omitempty"` // YYYY-MM-DD; displays values as day offsets
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	LogLevel       string `yaml:"log_level,omitempty"`       // Empty keeps logging silent
	LogFile        string `yaml:"log_file,omitempty"`        // Log destination while the widget runs
	DefaultProfile string `yaml:"default_profile,omitempty"` // Profile used when --profile is not given
	Listen         string `yaml:"listen,omitempty"`          // Default binding address
	Advertise      bool   `yaml:"advertise"`                 // Announce the binding over mDNS
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Profiles:    make(map[string]*Profile),
		Preferences: &Preferences{},
	}
}

// GetProfile retrieves a profile by name.
// Returns nil if the profile doesn't exist in the registry.
func (r *Registry) GetProfile(name string) *Profile {
	return r.Profiles[name]
}

// SetProfile stores or replaces a profile.
func (r *Registry) SetProfile(name string, p *Profile) {
	if r.Profiles == nil {
		r.Profiles = make(map[string]*Profile)
	}
	r.Profiles[name] = p
}

// DeleteProfile removes a profile and reports whether it existed.
func (r *Registry) DeleteProfile(name string) bool {
	if _, ok := r.Profiles[name]; !ok {
		return false
	}
	delete(r.Profiles, name)
	if r.Preferences != nil && r.Preferences.DefaultProfile == name {
		r.Preferences.DefaultProfile = ""
	}
	return true
}

// WidgetConfig converts the profile into a widget configuration.
func (p *Profile) WidgetConfig() spinbutton.Config {
	return spinbutton.Config{
		Min:            p.Min,
		Max:            p.Max,
		Step:           p.Step,
		Wrap:           p.Wrap,
		Disabled:       p.Disabled,
		Readonly:       p.Readonly,
		Required:       p.Required,
		State:          p.State,
		Name:           p.Name,
		Form:           p.Form,
		Placeholder:    p.Placeholder,
		AriaLabel:      p.Label,
		LabelIncrement: p.LabelIncrement,
		LabelDecrement: p.LabelDecrement,
		Inline:         p.Inline,
		Vertical:       p.Vertical,
	}
}

// InitialValue returns the profile's starting value.
func (p *Profile) InitialValue() spinbutton.Value {
	return spinbutton.ValueFromPtr(p.Value)
}
