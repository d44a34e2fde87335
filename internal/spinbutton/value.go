package spinbutton

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a spin button value: either a number or absent. The zero Value is
// absent, which is distinct from 0.
type Value struct {
	n   float64
	set bool
}

// Absent returns the "no value entered yet" Value.
func Absent() Value {
	return Value{}
}

// ValueOf wraps f. NaN becomes absent.
func ValueOf(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{n: f, set: true}
}

// ValueFromPtr converts an optional number into a Value.
func ValueFromPtr(f *float64) Value {
	if f == nil {
		return Value{}
	}
	return ValueOf(*f)
}

// Float returns the number and whether it is present.
func (v Value) Float() (float64, bool) {
	return v.n, v.set
}

// IsAbsent reports whether no number is held.
func (v Value) IsAbsent() bool {
	return !v.set
}

// Equal reports whether both values are absent or hold the same number.
func (v Value) Equal(o Value) bool {
	if v.set != o.set {
		return false
	}
	return !v.set || v.n == o.n
}

// String returns the shortest decimal form of the number, or "" when absent.
func (v Value) String() string {
	if !v.set {
		return ""
	}
	return formatNumber(v.n)
}

// MarshalJSON encodes the value as a JSON number, or null when absent.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.set || math.IsInf(v.n, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v.n)
}

// UnmarshalJSON accepts a JSON number, a numeric string or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	f, ok := parseNumber(raw)
	if !ok {
		*v = Value{}
		return nil
	}
	*v = ValueOf(f)
	return nil
}

// formatNumber renders f the way a number is stringified for attributes:
// shortest round-trip form, no exponent.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
