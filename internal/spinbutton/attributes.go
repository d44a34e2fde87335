package spinbutton

// Accessibility role and live-region constants.
const (
	RoleSpinButton = "spinbutton"
	RoleGroup      = "group"
	LiveOff        = "off"
)

// Icon scales of the activation buttons.
const (
	IconScaleFocused = 1.5
	IconScaleDefault = 1.25
)

// Attributes is the accessible attribute set of the value display element.
type Attributes struct {
	ID       string
	Role     string
	Tabbable bool
	Live     string

	ValueMin float64
	ValueMax float64
	// ValueNow is absent when the widget holds no value.
	ValueNow Value
	// ValueText is only meaningful when HasValueText is true.
	ValueText    string
	HasValueText bool

	Invalid  bool
	Required bool

	Label    string
	Controls string
}

// DeriveAttributes computes the accessibility attributes from state and cfg.
// It has no side effects.
func DeriveAttributes(state State, cfg Config) Attributes {
	res := ResolveConfig(cfg)
	hasValue := !state.Value.IsAbsent()
	required := cfg.Required && !cfg.Readonly && !cfg.Disabled

	attrs := Attributes{
		ID:       cfg.ID,
		Role:     RoleSpinButton,
		Tabbable: !cfg.Disabled,
		Live:     LiveOff,
		ValueMin: res.Min,
		ValueMax: res.Max,
		ValueNow: state.Value,
		Invalid:  (cfg.State != nil && !*cfg.State) || (required && !hasValue),
		Required: required,
		Label:    cfg.AriaLabel,
		Controls: cfg.AriaControls,
	}
	if v, ok := state.Value.Float(); ok {
		attrs.HasValueText = true
		if cfg.Formatter != nil {
			attrs.ValueText = cfg.Formatter(v)
		} else {
			attrs.ValueText = res.Format(v)
		}
	}
	return attrs
}

// Map renders the attributes under their ARIA names. Absent attributes are
// left out rather than given a sentinel value.
func (a Attributes) Map() map[string]string {
	m := map[string]string{
		"role":          a.Role,
		"aria-live":     a.Live,
		"aria-valuemin": formatNumber(a.ValueMin),
		"aria-valuemax": formatNumber(a.ValueMax),
	}
	if a.ID != "" {
		m["id"] = a.ID
	}
	if a.Tabbable {
		m["tabindex"] = "0"
	}
	if v, ok := a.ValueNow.Float(); ok {
		m["aria-valuenow"] = formatNumber(v)
	}
	if a.HasValueText {
		m["aria-valuetext"] = a.ValueText
	}
	if a.Invalid {
		m["aria-invalid"] = "true"
	}
	if a.Required {
		m["aria-required"] = "true"
	}
	if a.Label != "" {
		m["aria-label"] = a.Label
	}
	if a.Controls != "" {
		m["aria-controls"] = a.Controls
	}
	return m
}

// Attributes derives the attribute set for the widget's current state.
func (w *Widget) Attributes() Attributes {
	return DeriveAttributes(w.state, w.cfg)
}

// ButtonAttributes describes one activation control.
type ButtonAttributes struct {
	Button    Button
	Label     string
	Controls  string // id of the value display element
	Tabbable  bool   // always false: buttons stay out of the tab sequence
	Disabled  bool
	IconScale float64
}

// Buttons returns the increment and decrement controls, in that order.
func (w *Widget) Buttons() [2]ButtonAttributes {
	scale := IconScaleDefault
	if w.state.HasFocus {
		scale = IconScaleFocused
	}
	inert := w.cfg.Disabled || w.cfg.Readonly
	return [2]ButtonAttributes{
		{
			Button:    ButtonIncrement,
			Label:     w.cfg.LabelIncrement,
			Controls:  w.cfg.ID,
			Disabled:  inert,
			IconScale: scale,
		},
		{
			Button:    ButtonDecrement,
			Label:     w.cfg.LabelDecrement,
			Controls:  w.cfg.ID,
			Disabled:  inert,
			IconScale: scale,
		},
	}
}

// HiddenField is the form field carrying the value on submission.
type HiddenField struct {
	Name  string
	Form  string
	Value string
}

// HiddenField returns the form field, and false when no field name is
// configured.
func (w *Widget) HiddenField() (HiddenField, bool) {
	if w.cfg.Name == "" {
		return HiddenField{}, false
	}
	return HiddenField{
		Name:  w.cfg.Name,
		Form:  w.cfg.Form,
		Value: w.FormattedValue(),
	}, true
}

// Group describes the grouping container.
type Group struct {
	Role     string
	Disabled bool
	Readonly bool
	Focus    bool
	Valid    bool
	Invalid  bool
	Inline   bool
	Vertical bool
}

// Group returns the container flags. Readonly is only reported for an
// enabled widget, and inline layout never combines with vertical.
func (w *Widget) Group() Group {
	g := Group{
		Role:     RoleGroup,
		Disabled: w.cfg.Disabled,
		Readonly: w.cfg.Readonly && !w.cfg.Disabled,
		Focus:    w.state.HasFocus,
		Vertical: w.cfg.Vertical,
		Inline:   w.cfg.Inline && !w.cfg.Vertical,
	}
	if w.cfg.State != nil {
		g.Valid = *w.cfg.State
		g.Invalid = !*w.cfg.State
	}
	return g
}

// Classes returns the presentation classes of the set flags.
func (g Group) Classes() []string {
	var classes []string
	if g.Disabled {
		classes = append(classes, "disabled")
	}
	if g.Readonly {
		classes = append(classes, "readonly")
	}
	if g.Focus {
		classes = append(classes, "focus")
	}
	if g.Valid {
		classes = append(classes, "is-valid")
	}
	if g.Invalid {
		classes = append(classes, "is-invalid")
	}
	return classes
}

// Part is one element of the rendered widget.
type Part int

const (
	PartDecrement Part = iota
	PartHidden
	PartSpin
	PartIncrement
)

// Layout returns the element order. Vertical widgets stack increment on top.
func (w *Widget) Layout() []Part {
	if w.cfg.Vertical {
		return []Part{PartIncrement, PartHidden, PartSpin, PartDecrement}
	}
	return []Part{PartDecrement, PartHidden, PartSpin, PartIncrement}
}

// String returns the part name.
func (p Part) String() string {
	switch p {
	case PartDecrement:
		return "decrement"
	case PartHidden:
		return "hidden"
	case PartSpin:
		return "spin"
	case PartIncrement:
		return "increment"
	default:
		return "unknown"
	}
}
