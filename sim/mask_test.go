package sim

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskSetAtCount(t *testing.T) {
	m := NewMask(70, 3) // spans two words per row
	pts := [][2]int{{0, 0}, {63, 1}, {64, 1}, {69, 2}}
	for _, p := range pts {
		m.Set(p[0], p[1])
	}
	for _, p := range pts {
		if !m.At(p[0], p[1]) {
			t.Fatalf("expected pixel (%d,%d) set", p[0], p[1])
		}
	}
	if m.At(1, 0) {
		t.Fatalf("pixel (1,0) should be clear")
	}
	if got := m.Count(); got != len(pts) {
		t.Fatalf("expected count %d, got %d", len(pts), got)
	}

	// out of bounds is a no-op
	m.Set(-1, 0)
	m.Set(70, 0)
	if got := m.Count(); got != len(pts) {
		t.Fatalf("out-of-bounds set changed count to %d", got)
	}
}

func TestMaskOverlaps(t *testing.T) {
	a := NewMask(10, 10)
	a.Set(9, 9)
	b := NewMask(10, 10)
	b.Set(0, 0)

	cases := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"exact_touch", 9, 9, true},
		{"one_past", 10, 10, false},
		{"far_apart", 100, 0, false},
		{"negative_offset_miss", -5, -5, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := a.Overlaps(b, c.dx, c.dy); got != c.want {
				t.Fatalf("Overlaps(%d,%d) = %v, want %v", c.dx, c.dy, got, c.want)
			}
		})
	}

	// boxes overlap but opaque pixels do not
	c := NewMask(10, 10)
	c.Set(0, 0)
	d := NewMask(10, 10)
	d.Set(9, 9)
	if c.Overlaps(d, 0, 0) {
		t.Fatalf("disjoint pixels inside overlapping boxes should not collide")
	}
	if !c.Overlaps(c, 0, 0) {
		t.Fatalf("mask should overlap itself at zero offset")
	}
}

func TestMaskFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 16}) // at threshold, stays clear
	img.SetNRGBA(2, 0, color.NRGBA{255, 0, 0, 17})
	// (3,0) fully transparent

	m := MaskFromImage(img, 16)
	if !m.At(0, 0) || !m.At(2, 0) {
		t.Fatalf("opaque pixels missing from mask")
	}
	if m.At(1, 0) || m.At(3, 0) {
		t.Fatalf("transparent pixels leaked into mask")
	}
	if m.Count() != 2 {
		t.Fatalf("expected 2 opaque pixels, got %d", m.Count())
	}
}
