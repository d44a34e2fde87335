package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderAttributesSorted(t *testing.T) {
	out := RenderAttributes(map[string]string{
		"role":          "spinbutton",
		"aria-valuenow": "",
		"id":            "spin-1",
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	for i, want := range []string{"aria-valuenow", "id", "role"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[0], "-") {
		t.Errorf("empty value should render as '-': %q", lines[0])
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(70)

	p.PrintHeader("Spin button attributes", "spinbutton attrs", map[string]string{"Range": "0..10"})
	p.PrintAttributes(map[string]string{"role": "spinbutton"})

	out := buf.String()
	for _, want := range []string{"SPIN BUTTON ATTRIBUTES", "spinbutton attrs", "Range:", "0..10", "role"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
