package ui

import (
	"testing"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 19, true},  // Bottom-right corner
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMap(t *testing.T) {
	var hm HitMap
	hm.Add(spinbutton.PartSpin, Rect{X: 0, Y: 0, W: 20, H: 3})
	hm.Add(spinbutton.PartIncrement, Rect{X: 15, Y: 0, W: 5, H: 3})
	hm.Add(spinbutton.PartHidden, Rect{X: 0, Y: 0, W: 0, H: 3})

	if r := hm.Test(16, 1); r == nil || r.Part != spinbutton.PartIncrement {
		t.Errorf("later region should win, got %v", r)
	}
	if r := hm.Test(2, 1); r == nil || r.Part != spinbutton.PartSpin {
		t.Errorf("expected spin region, got %v", r)
	}
	if r := hm.Test(25, 1); r != nil {
		t.Errorf("expected miss, got %v", r)
	}
	if len(hm.Regions()) != 2 {
		t.Errorf("empty regions should be skipped, got %d", len(hm.Regions()))
	}
}
