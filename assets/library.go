package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/dragon-runner/sim"
)

const frameDuration = 0.15

// Library holds every sprite's frames, both as GPU images for drawing and as
// collision masks derived from the same pixels. One Library serves the whole
// process.
type Library struct {
	sets   [sim.SpriteKindCount]*sim.FrameSet
	images [sim.SpriteKindCount][]*ebiten.Image
}

// NewLibrary draws all sprites and derives their masks. Panics if any sprite
// renders with an empty mask, since collision would silently never fire.
func NewLibrary() *Library {
	l := &Library{}

	l.add(sim.SpriteSamuraiRun, samuraiRunFrames())
	l.add(sim.SpriteSamuraiJump, samuraiJumpFrames())
	l.add(sim.SpriteSamuraiDuck, samuraiDuckFrames())
	l.add(sim.SpriteRock, rockFrames())
	l.add(sim.SpriteBarrel, barrelFrames())
	l.add(sim.SpriteBamboo, bambooFrames())
	l.add(sim.SpriteBoulder, boulderFrames())
	l.add(sim.SpriteDragonRed, dragonFrames(colornames.Crimson))
	l.add(sim.SpriteDragonGreen, dragonFrames(colornames.Forestgreen))
	l.add(sim.SpriteDragonBlack, dragonFrames(color.NRGBA{40, 40, 48, 255}))
	l.add(sim.SpriteTicketBlue, ticketFrames(colornames.Deepskyblue))
	l.add(sim.SpriteTicketYellow, ticketFrames(colornames.Gold))

	for kind := sim.SpriteKind(0); kind < sim.SpriteKindCount; kind++ {
		if l.sets[kind] == nil {
			panic("assets: no frames for sprite " + kind.String())
		}
	}
	return l
}

func (l *Library) add(kind sim.SpriteKind, frames []*image.NRGBA) {
	set := &sim.FrameSet{
		Width:         float64(frames[0].Bounds().Dx()),
		Height:        float64(frames[0].Bounds().Dy()),
		FrameDuration: frameDuration,
	}
	for _, f := range frames {
		mask := sim.MaskFromImage(f, 16)
		if mask.Count() == 0 {
			panic("assets: empty mask for sprite " + kind.String())
		}
		set.Frames = append(set.Frames, sim.Frame{Mask: mask})
		l.images[kind] = append(l.images[kind], ebiten.NewImageFromImage(f))
	}
	l.sets[kind] = set
}

// FrameSet implements sim.FrameSource.
func (l *Library) FrameSet(kind sim.SpriteKind) *sim.FrameSet {
	if kind < 0 || kind >= sim.SpriteKindCount {
		return nil
	}
	return l.sets[kind]
}

// Image returns the drawable frame. frame wraps.
func (l *Library) Image(kind sim.SpriteKind, frame int) *ebiten.Image {
	imgs := l.images[kind]
	return imgs[frame%len(imgs)]
}

// --- drawing helpers ---

func canvas(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func fillRect(img *image.NRGBA, x, y, w, h int, c color.Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if image.Pt(xx, yy).In(img.Bounds()) {
				img.Set(xx, yy, c)
			}
		}
	}
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.Color) {
	for yy := cy - r; yy <= cy+r; yy++ {
		for xx := cx - r; xx <= cx+r; xx++ {
			dx, dy := xx-cx, yy-cy
			if dx*dx+dy*dy <= r*r && image.Pt(xx, yy).In(img.Bounds()) {
				img.Set(xx, yy, c)
			}
		}
	}
}

// fillTriangle fills the triangle (x0,y0)-(x1,y1)-(x2,y2) by sign tests.
func fillTriangle(img *image.NRGBA, x0, y0, x1, y1, x2, y2 int, c color.Color) {
	minX := min(x0, min(x1, x2))
	maxX := max(x0, max(x1, x2))
	minY := min(y0, min(y1, y2))
	maxY := max(y0, max(y1, y2))

	edge := func(ax, ay, bx, by, px, py int) int {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	for yy := minY; yy <= maxY; yy++ {
		for xx := minX; xx <= maxX; xx++ {
			w0 := edge(x0, y0, x1, y1, xx, yy)
			w1 := edge(x1, y1, x2, y2, xx, yy)
			w2 := edge(x2, y2, x0, y0, xx, yy)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				if image.Pt(xx, yy).In(img.Bounds()) {
					img.Set(xx, yy, c)
				}
			}
		}
	}
}

// --- sprite builders ---

var (
	samuraiRobe = color.NRGBA{180, 30, 40, 255}
	samuraiSash = color.NRGBA{240, 230, 200, 255}
	samuraiSkin = color.NRGBA{235, 200, 170, 255}
	bladeSteel  = color.NRGBA{200, 210, 225, 255}
)

func samuraiRunFrames() []*image.NRGBA {
	var frames []*image.NRGBA
	for pose := 0; pose < 2; pose++ {
		img := canvas(48, 72)
		// torso and robe
		fillRect(img, 14, 18, 20, 30, samuraiRobe)
		fillRect(img, 14, 32, 20, 4, samuraiSash)
		// head
		fillCircle(img, 24, 10, 8, samuraiSkin)
		fillRect(img, 16, 2, 16, 4, color.NRGBA{30, 30, 30, 255}) // topknot band
		// sword on the back
		fillRect(img, 33, 12, 4, 26, bladeSteel)
		// legs alternate per pose
		if pose == 0 {
			fillRect(img, 14, 48, 8, 22, samuraiRobe)
			fillRect(img, 28, 48, 8, 16, samuraiRobe)
		} else {
			fillRect(img, 14, 48, 8, 16, samuraiRobe)
			fillRect(img, 28, 48, 8, 22, samuraiRobe)
		}
		frames = append(frames, img)
	}
	return frames
}

func samuraiJumpFrames() []*image.NRGBA {
	img := canvas(48, 72)
	fillRect(img, 14, 18, 20, 30, samuraiRobe)
	fillRect(img, 14, 32, 20, 4, samuraiSash)
	fillCircle(img, 24, 10, 8, samuraiSkin)
	fillRect(img, 33, 12, 4, 26, bladeSteel)
	// legs tucked
	fillRect(img, 14, 48, 10, 12, samuraiRobe)
	fillRect(img, 26, 48, 10, 12, samuraiRobe)
	return []*image.NRGBA{img}
}

func samuraiDuckFrames() []*image.NRGBA {
	img := canvas(64, 40)
	fillRect(img, 8, 14, 40, 26, samuraiRobe)
	fillCircle(img, 52, 12, 8, samuraiSkin)
	fillRect(img, 20, 22, 28, 4, samuraiSash)
	return []*image.NRGBA{img}
}

func rockFrames() []*image.NRGBA {
	img := canvas(36, 36)
	gray := color.NRGBA{120, 120, 125, 255}
	fillCircle(img, 18, 22, 13, gray)
	fillCircle(img, 10, 26, 9, gray)
	fillCircle(img, 26, 26, 9, color.NRGBA{100, 100, 105, 255})
	return []*image.NRGBA{img}
}

func barrelFrames() []*image.NRGBA {
	img := canvas(56, 56)
	wood := color.NRGBA{140, 95, 50, 255}
	band := color.NRGBA{70, 60, 55, 255}
	fillRect(img, 6, 2, 44, 52, wood)
	fillRect(img, 6, 10, 44, 4, band)
	fillRect(img, 6, 42, 44, 4, band)
	return []*image.NRGBA{img}
}

func bambooFrames() []*image.NRGBA {
	img := canvas(26, 110)
	stalk := color.NRGBA{90, 160, 70, 255}
	node := color.NRGBA{60, 120, 50, 255}
	fillRect(img, 8, 0, 10, 110, stalk)
	for y := 16; y < 110; y += 24 {
		fillRect(img, 6, y, 14, 3, node)
	}
	// leaf
	fillTriangle(img, 16, 20, 26, 10, 24, 24, stalk)
	return []*image.NRGBA{img}
}

func boulderFrames() []*image.NRGBA {
	img := canvas(90, 90)
	fillCircle(img, 45, 45, 43, color.NRGBA{110, 105, 100, 255})
	fillCircle(img, 32, 36, 8, color.NRGBA{90, 85, 82, 255})
	fillCircle(img, 58, 56, 10, color.NRGBA{95, 90, 86, 255})
	return []*image.NRGBA{img}
}

func dragonFrames(body color.Color) []*image.NRGBA {
	var frames []*image.NRGBA
	for pose := 0; pose < 2; pose++ {
		img := canvas(80, 50)
		// serpentine body
		fillRect(img, 14, 20, 52, 12, body)
		// head with snout
		fillCircle(img, 12, 26, 9, body)
		fillTriangle(img, 4, 22, 4, 30, 0, 26, colornames.Orange)
		// tail
		fillTriangle(img, 66, 20, 66, 32, 79, 26, body)
		// wings flap per pose
		if pose == 0 {
			fillTriangle(img, 30, 20, 52, 20, 41, 2, body)
		} else {
			fillTriangle(img, 30, 32, 52, 32, 41, 49, body)
		}
		frames = append(frames, img)
	}
	return frames
}

func ticketFrames(c color.Color) []*image.NRGBA {
	img := canvas(40, 40)
	fillCircle(img, 20, 20, 17, c)
	fillCircle(img, 20, 20, 10, color.NRGBA{255, 255, 255, 230})
	fillCircle(img, 20, 20, 5, c)
	return []*image.NRGBA{img}
}
