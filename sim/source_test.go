package sim

// stubSource supplies solid rectangular masks at the shipped sprite sizes so
// simulation tests run without the asset library.
type stubSource struct {
	sets map[SpriteKind]*FrameSet
}

func solidFrameSet(w, h, frames int) *FrameSet {
	fs := &FrameSet{Width: float64(w), Height: float64(h), FrameDuration: 0.15}
	for i := 0; i < frames; i++ {
		m := NewMask(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				m.Set(x, y)
			}
		}
		fs.Frames = append(fs.Frames, Frame{Mask: m})
	}
	return fs
}

func newStubSource() *stubSource {
	return &stubSource{sets: map[SpriteKind]*FrameSet{
		SpriteSamuraiRun:   solidFrameSet(48, 72, 2),
		SpriteSamuraiJump:  solidFrameSet(48, 72, 1),
		SpriteSamuraiDuck:  solidFrameSet(64, 40, 1),
		SpriteRock:         solidFrameSet(36, 36, 1),
		SpriteBarrel:       solidFrameSet(56, 56, 1),
		SpriteBamboo:       solidFrameSet(26, 110, 1),
		SpriteBoulder:      solidFrameSet(90, 90, 1),
		SpriteDragonRed:    solidFrameSet(80, 50, 2),
		SpriteDragonGreen:  solidFrameSet(80, 50, 2),
		SpriteDragonBlack:  solidFrameSet(80, 50, 2),
		SpriteTicketBlue:   solidFrameSet(40, 40, 1),
		SpriteTicketYellow: solidFrameSet(40, 40, 1),
	}}
}

func (s *stubSource) FrameSet(kind SpriteKind) *FrameSet {
	return s.sets[kind]
}
