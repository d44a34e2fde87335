package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/spinbutton/internal/config"
	"github.com/muurk/spinbutton/internal/dateutil"
	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/spinbutton"
)

// Global flags
var (
	configPath  string
	profileName string
	logLevel    string
	logFile     string
)

// widgetFlags are the per-widget settings. Explicit flags override the
// selected profile.
var widgetFlags struct {
	min, max, step string
	value          string
	state          string

	wrap, disabled, readonly, required bool
	inline, vertical                   bool

	id, name, form, placeholder string
	labelInc, labelDec          string
	ariaLabel, ariaControls     string
	dateBase                    string
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Configuration file (default: user config dir)")
	pf.StringVar(&profileName, "profile", "", "Saved profile to start from")
	pf.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file")

	pf.StringVar(&widgetFlags.min, "min", "", "Minimum value (default 1)")
	pf.StringVar(&widgetFlags.max, "max", "", "Maximum value (default 100)")
	pf.StringVar(&widgetFlags.step, "step", "", "Step size (default 1)")
	pf.StringVar(&widgetFlags.value, "value", "", "Initial value (empty for none)")
	pf.StringVar(&widgetFlags.state, "state", "", "Explicit validity (valid, invalid)")
	pf.BoolVar(&widgetFlags.wrap, "wrap", false, "Wrap around at the bounds instead of clamping")
	pf.BoolVar(&widgetFlags.disabled, "disabled", false, "Disable the widget")
	pf.BoolVar(&widgetFlags.readonly, "readonly", false, "Make the widget read-only")
	pf.BoolVar(&widgetFlags.required, "required", false, "Mark a value as required")
	pf.BoolVar(&widgetFlags.inline, "inline", false, "Inline layout")
	pf.BoolVar(&widgetFlags.vertical, "vertical", false, "Vertical layout (increment on top)")
	pf.StringVar(&widgetFlags.id, "id", "", "Widget id (generated when empty)")
	pf.StringVar(&widgetFlags.name, "name", "", "Form field name; prints name=value on exit")
	pf.StringVar(&widgetFlags.form, "form", "", "Form the field belongs to")
	pf.StringVar(&widgetFlags.placeholder, "placeholder", "", "Text shown while there is no value")
	pf.StringVar(&widgetFlags.labelInc, "label-increment", "", "Accessible label of the increment button")
	pf.StringVar(&widgetFlags.labelDec, "label-decrement", "", "Accessible label of the decrement button")
	pf.StringVar(&widgetFlags.ariaLabel, "label", "", "Accessible label of the widget")
	pf.StringVar(&widgetFlags.ariaControls, "controls", "", "Id of the element the widget controls")
	pf.StringVar(&widgetFlags.dateBase, "date-base", "", "Show values as days after this YYYY-MM-DD date")
}

// initLogging resolves the log settings from flags, then preferences, then
// the environment.
func initLogging(cmd *cobra.Command) error {
	level, file := logLevel, logFile
	if level == "" || file == "" {
		if reg, err := config.Load(configPath); err == nil {
			if level == "" {
				level = reg.Preferences.LogLevel
			}
			if file == "" {
				file = reg.Preferences.LogFile
			}
		}
	}
	return logging.Initialize(level, file)
}

// loadRegistry opens the configuration file named by --config.
func loadRegistry() (*config.Registry, error) {
	reg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return reg, nil
}

// resolveProfile merges the chosen profile with explicitly set flags. The
// returned profile is a copy.
func resolveProfile(cmd *cobra.Command, reg *config.Registry) (*config.Profile, error) {
	name := profileName
	if name == "" && reg.Preferences != nil {
		name = reg.Preferences.DefaultProfile
	}

	p := &config.Profile{}
	if name != "" {
		saved := reg.GetProfile(name)
		if saved == nil {
			if profileName != "" {
				return nil, fmt.Errorf("profile %q not found", name)
			}
			logging.Warn("Default profile missing; using flags only")
		} else {
			copied := *saved
			p = &copied
		}
	}

	flags := cmd.Flags()
	changed := flags.Changed

	if changed("min") {
		p.Min = widgetFlags.min
	}
	if changed("max") {
		p.Max = widgetFlags.max
	}
	if changed("step") {
		p.Step = widgetFlags.step
	}
	if changed("value") {
		v, err := parseValue(widgetFlags.value)
		if err != nil {
			return nil, err
		}
		p.Value = nil
		if f, ok := v.Float(); ok {
			p.Value = &f
		}
	}
	if changed("state") {
		state, err := parseState(widgetFlags.state)
		if err != nil {
			return nil, err
		}
		p.State = state
	}
	if changed("wrap") {
		p.Wrap = widgetFlags.wrap
	}
	if changed("disabled") {
		p.Disabled = widgetFlags.disabled
	}
	if changed("readonly") {
		p.Readonly = widgetFlags.readonly
	}
	if changed("required") {
		p.Required = widgetFlags.required
	}
	if changed("inline") {
		p.Inline = widgetFlags.inline
	}
	if changed("vertical") {
		p.Vertical = widgetFlags.vertical
	}
	if changed("name") {
		p.Name = widgetFlags.name
	}
	if changed("form") {
		p.Form = widgetFlags.form
	}
	if changed("placeholder") {
		p.Placeholder = widgetFlags.placeholder
	}
	if changed("label-increment") {
		p.LabelIncrement = widgetFlags.labelInc
	}
	if changed("label-decrement") {
		p.LabelDecrement = widgetFlags.labelDec
	}
	if changed("label") {
		p.Label = widgetFlags.ariaLabel
	}
	if changed("date-base") {
		p.DateBase = widgetFlags.dateBase
	}
	return p, nil
}

// widgetConfig turns a resolved profile into a widget configuration.
func widgetConfig(p *config.Profile) (spinbutton.Config, error) {
	cfg := p.WidgetConfig()
	cfg.ID = widgetFlags.id
	cfg.AriaControls = widgetFlags.ariaControls

	if p.DateBase != "" {
		base, ok := dateutil.ParseYMD(p.DateBase)
		if !ok {
			return cfg, fmt.Errorf("invalid date base %q (want YYYY-MM-DD)", p.DateBase)
		}
		cfg.Formatter = dayFormatter(base)
	}
	return cfg, nil
}

// dayFormatter displays a value as the date that many days after base.
func dayFormatter(base time.Time) func(float64) string {
	return func(v float64) string {
		s, _ := dateutil.FormatYMD(dateutil.AddDays(base, int(math.Round(v))))
		return s
	}
}

// buildWidget creates the widget described by the profile and flags.
func buildWidget(cmd *cobra.Command, reg *config.Registry, opts ...spinbutton.Option) (*spinbutton.Widget, error) {
	p, err := resolveProfile(cmd, reg)
	if err != nil {
		return nil, err
	}
	cfg, err := widgetConfig(p)
	if err != nil {
		return nil, err
	}
	return spinbutton.New(cfg, p.InitialValue(), opts...), nil
}

// parseValue accepts a number, or "" / "null" for no value.
func parseValue(s string) (spinbutton.Value, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return spinbutton.Absent(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return spinbutton.Absent(), fmt.Errorf("invalid value %q: not a number", s)
	}
	return spinbutton.ValueOf(f), nil
}

func parseState(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "valid", "true":
		return spinbutton.Valid(true), nil
	case "invalid", "false":
		return spinbutton.Valid(false), nil
	default:
		return nil, fmt.Errorf("invalid state %q (want valid or invalid)", s)
	}
}
