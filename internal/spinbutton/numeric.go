package spinbutton

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Fallbacks used when min, max or step are missing or unparsable.
const (
	DefaultMin  = 1
	DefaultMax  = 100
	DefaultStep = 1
)

// Resolved is the effective numeric configuration derived from a Config.
type Resolved struct {
	Min        float64
	Max        float64
	Step       float64
	Precision  int     // decimal digits in Step
	Multiplier float64 // 10^Precision
}

// ResolveConfig derives the effective bounds, step and precision of cfg.
func ResolveConfig(cfg Config) Resolved {
	step := Resolve(cfg.Step, DefaultStep)
	precision := PrecisionOf(step)
	return Resolved{
		Min:        Resolve(cfg.Min, DefaultMin),
		Max:        Resolve(cfg.Max, DefaultMax),
		Step:       step,
		Precision:  precision,
		Multiplier: math.Pow10(precision),
	}
}

// Resolve parses raw as a float and returns fallback when that fails.
// raw may be any Go numeric kind, a numeric string, a json.Number or nil.
func Resolve(raw any, fallback float64) float64 {
	if f, ok := parseNumber(raw); ok {
		return f
	}
	return fallback
}

func parseNumber(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		return parseNumber(string(v))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case *float64:
		if v == nil {
			return 0, false
		}
		f = *v
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// PrecisionOf returns the number of decimal digits in step, or 0 when step
// is integral.
func PrecisionOf(step float64) int {
	if math.IsInf(step, 0) || math.IsNaN(step) || math.Floor(step) == step {
		return 0
	}
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// ClampOrWrap bounds value to [min, max]. Out-of-range values snap to the
// nearest bound, or to the opposite bound when wrap is set.
func ClampOrWrap(value, min, max float64, wrap bool) float64 {
	switch {
	case value > max:
		if wrap {
			return min
		}
		return max
	case value < min:
		if wrap {
			return max
		}
		return min
	default:
		return value
	}
}

// gridTolerance is how close, relative to its magnitude, a scaled value must
// be to an integer to count as sitting on it.
const gridTolerance = 1e-9

// stepFrom moves current by dir steps using integer-scaled arithmetic.
// Scaled values within gridTolerance of an integer are snapped before the
// floor, so 0.29*100 (28.999999999999996) counts as 29.
func (r Resolved) stepFrom(current float64, dir float64) float64 {
	scaled := current*r.Multiplier + dir*r.Step*r.Multiplier
	return math.Floor(snapToGrid(scaled)) / r.Multiplier
}

// snapToGrid rounds x to the nearest integer when it is within
// gridTolerance of it and returns x unchanged otherwise.
func snapToGrid(x float64) float64 {
	nearest := math.Round(x)
	if math.Abs(x-nearest) <= gridTolerance*math.Max(1, math.Abs(x)) {
		return nearest
	}
	return x
}

// Format renders v with Precision fixed decimals.
func (r Resolved) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', r.Precision, 64)
}
