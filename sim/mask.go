package sim

import "image"

// Mask is a per-pixel opacity grid used for the authoritative collision test
// after the cheap bounding-box pre-check.
type Mask struct {
	W, H  int
	words []uint64
}

// NewMask creates an empty w x h mask.
func NewMask(w, h int) *Mask {
	if w <= 0 || h <= 0 {
		return &Mask{}
	}
	wordsPerRow := (w + 63) / 64
	return &Mask{W: w, H: h, words: make([]uint64, wordsPerRow*h)}
}

func (m *Mask) wordsPerRow() int {
	return (m.W + 63) / 64
}

// Set marks pixel (x, y) as opaque.
func (m *Mask) Set(x, y int) {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.words[y*m.wordsPerRow()+x/64] |= 1 << uint(x%64)
}

// At reports whether pixel (x, y) is opaque.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.words[y*m.wordsPerRow()+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, w := range m.words {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	return n
}

// Overlaps reports whether any opaque pixel of other, offset by (dx, dy)
// relative to m's origin, coincides with an opaque pixel of m.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	if m == nil || other == nil || m.W == 0 || other.W == 0 {
		return false
	}
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.W, dx+other.W)
	y1 := min(m.H, dy+other.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// MaskFromImage builds a mask from an image's alpha channel. Pixels with
// alpha above threshold are opaque.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	if img == nil {
		return &Mask{}
	}
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}
	return m
}
