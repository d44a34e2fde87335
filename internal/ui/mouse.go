package ui

import (
	"github.com/muurk/spinbutton/internal/spinbutton"
)

// Rect is a clickable screen area in cell coordinates. W and H are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region ties a rendered widget part to its screen area.
type Region struct {
	Part spinbutton.Part
	Rect Rect
}

// HitMap resolves screen cells to widget parts.
type HitMap struct {
	regions []Region
}

// Add registers a part. Later regions take priority over earlier ones.
func (h *HitMap) Add(part spinbutton.Part, r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	h.regions = append(h.regions, Region{Part: part, Rect: r})
}

// Test returns the region at (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order.
func (h *HitMap) Regions() []Region {
	return h.regions
}
