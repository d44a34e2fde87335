package dateutil

import (
	"testing"
	"time"
)

func TestParseYMD(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		wantOK bool
		want   string
	}{
		{"plain", "2024-03-09", true, "2024-03-09"},
		{"unpadded", "2024-3-9", true, "2024-03-09"},
		{"surrounding space", " 2024-12-31 ", true, "2024-12-31"},
		{"day overflow normalises", "2024-02-30", true, "2024-03-01"},
		{"time object", time.Date(2023, 7, 4, 18, 30, 0, 0, time.UTC), true, "2023-07-04"},
		{"slashes", "2024/03/09", false, ""},
		{"trailing text", "2024-03-09T10:00", false, ""},
		{"empty", "", false, ""},
		{"zero time", time.Time{}, false, ""},
		{"nil pointer", (*time.Time)(nil), false, ""},
		{"number", 20240309, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatYMD(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("FormatYMD(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("FormatYMD(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseYMDDropsTime(t *testing.T) {
	d, ok := ParseYMD(time.Date(2023, 7, 4, 18, 30, 15, 0, time.Local))
	if !ok {
		t.Fatal("ParseYMD() failed")
	}
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("time of day not dropped: %v", d)
	}
}

func TestDatesEqual(t *testing.T) {
	morning := time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 1, 15, 22, 0, 0, 0, time.Local)

	if !DatesEqual(morning, evening) {
		t.Error("same day at different times should be equal")
	}
	if !DatesEqual("2024-01-15", evening) {
		t.Error("string and time on same day should be equal")
	}
	if DatesEqual("2024-01-15", "2024-01-16") {
		t.Error("different days should not be equal")
	}
}

func TestDatesEqualNonDates(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"both unparsable", "soon", 42, true},
		{"nil and date", nil, "2024-01-15", false},
		{"date and garbage", "2024-01-15", "15/01/2024", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DatesEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("DatesEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	base, _ := ParseYMD("2024-02-28")
	if got, _ := FormatYMD(AddDays(base, 1)); got != "2024-02-29" {
		t.Errorf("AddDays(+1) = %s, want 2024-02-29", got)
	}
	if got, _ := FormatYMD(AddDays(base, -28)); got != "2024-01-31" {
		t.Errorf("AddDays(-28) = %s, want 2024-01-31", got)
	}
}
