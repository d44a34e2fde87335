package spinbutton

import (
	"encoding/json"
	"math"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		fallback float64
		want     float64
	}{
		{"nil uses fallback", nil, 100, 100},
		{"int", 5, 1, 5},
		{"float", 0.25, 1, 0.25},
		{"numeric string", "12.5", 1, 12.5},
		{"padded string", " 3 ", 1, 3},
		{"negative string", "-4", 1, -4},
		{"empty string", "", 1, 1},
		{"garbage string", "abc", 100, 100},
		{"NaN string", "NaN", 1, 1},
		{"NaN float", math.NaN(), 7, 7},
		{"json number", json.Number("2.5"), 1, 2.5},
		{"unsupported type", []int{1}, 9, 9},
		{"uint8", uint8(8), 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.raw, tt.fallback); got != tt.want {
				t.Errorf("Resolve(%v, %v) = %v, want %v", tt.raw, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	res := ResolveConfig(Config{Min: "oops", Max: nil, Step: "x"})

	if res.Min != DefaultMin || res.Max != DefaultMax || res.Step != DefaultStep {
		t.Errorf("ResolveConfig() = %+v, want defaults 1/100/1", res)
	}
	if res.Precision != 0 || res.Multiplier != 1 {
		t.Errorf("integral step should give precision 0, multiplier 1, got %d, %v", res.Precision, res.Multiplier)
	}
}

func TestPrecisionOf(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{1, 0},
		{10, 0},
		{0.1, 1},
		{0.25, 2},
		{1.5, 1},
		{0.001, 3},
		{2.125, 3},
	}

	for _, tt := range tests {
		if got := PrecisionOf(tt.step); got != tt.want {
			t.Errorf("PrecisionOf(%v) = %d, want %d", tt.step, got, tt.want)
		}
	}
}

func TestClampOrWrap(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		wrap  bool
		want  float64
	}{
		{"in range", 5, false, 5},
		{"at min", 0, false, 0},
		{"at max", 10, true, 10},
		{"above max clamps", 11, false, 10},
		{"above max wraps", 11, true, 0},
		{"below min clamps", -1, false, 0},
		{"below min wraps", -1, true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampOrWrap(tt.value, 0, 10, tt.wrap); got != tt.want {
				t.Errorf("ClampOrWrap(%v, 0, 10, %v) = %v, want %v", tt.value, tt.wrap, got, tt.want)
			}
		})
	}
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Value `json:"a"`
		B Value `json:"b"`
	}{A: ValueOf(1.5), B: Absent()})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"a":1.5,"b":null}` {
		t.Errorf("Marshal() = %s", data)
	}

	var v Value
	if err := json.Unmarshal([]byte(`"7"`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if f, ok := v.Float(); !ok || f != 7 {
		t.Errorf("Unmarshal(\"7\") = %v, %v", f, ok)
	}
	if err := json.Unmarshal([]byte(`null`), &v); err != nil || !v.IsAbsent() {
		t.Errorf("Unmarshal(null) should give absent, got %v (err %v)", v, err)
	}
}

func TestValueOfNaNIsAbsent(t *testing.T) {
	if !ValueOf(math.NaN()).IsAbsent() {
		t.Error("ValueOf(NaN) should be absent")
	}
	if ValueOf(0).IsAbsent() {
		t.Error("ValueOf(0) must not be absent")
	}
	if ValueOf(0).Equal(Absent()) {
		t.Error("0 and absent must differ")
	}
}

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.29 * 100, 29},
		{28.999999999999996 - 1, 28},
		{15.5, 15.5},
		{-6.999999999999999, -7},
		{1e12 + 0.5, 1e12 + 0.5},
		{0, 0},
	}
	for _, tt := range tests {
		if got := snapToGrid(tt.in); got != tt.want {
			t.Errorf("snapToGrid(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
