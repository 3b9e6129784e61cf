package sim

import "fmt"

// SpriteKind identifies a decoded frame set in the asset library. The
// simulation only consumes masks and frame timing; images stay on the render
// side.
type SpriteKind int

const (
	SpriteSamuraiRun SpriteKind = iota
	SpriteSamuraiJump
	SpriteSamuraiDuck
	SpriteRock
	SpriteBarrel
	SpriteBamboo
	SpriteBoulder
	SpriteDragonRed
	SpriteDragonGreen
	SpriteDragonBlack
	SpriteTicketBlue
	SpriteTicketYellow
	SpriteKindCount
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteSamuraiRun:
		return "samurai_run"
	case SpriteSamuraiJump:
		return "samurai_jump"
	case SpriteSamuraiDuck:
		return "samurai_duck"
	case SpriteRock:
		return "rock"
	case SpriteBarrel:
		return "barrel"
	case SpriteBamboo:
		return "bamboo"
	case SpriteBoulder:
		return "boulder"
	case SpriteDragonRed:
		return "dragon_red"
	case SpriteDragonGreen:
		return "dragon_green"
	case SpriteDragonBlack:
		return "dragon_black"
	case SpriteTicketBlue:
		return "ticket_blue"
	case SpriteTicketYellow:
		return "ticket_yellow"
	default:
		return "?"
	}
}

// Frame is a single animation frame's collision data.
type Frame struct {
	Mask *Mask
}

// FrameSet is an ordered sequence of frames plus timing metadata, validated
// by the asset loader before any entity using it may spawn.
type FrameSet struct {
	Frames        []Frame
	Width, Height float64
	FrameDuration float64 // seconds per frame
}

// FrameSource supplies decoded frame sets per sprite kind. Implemented by the
// asset library collaborator.
type FrameSource interface {
	FrameSet(kind SpriteKind) *FrameSet
}

// mustFrameSet asserts the asset pipeline contract: every spawnable kind has
// a decoded frame set with non-empty masks.
func mustFrameSet(src FrameSource, kind SpriteKind) *FrameSet {
	fs := src.FrameSet(kind)
	if fs == nil || len(fs.Frames) == 0 {
		panic(fmt.Sprintf("sim: no frame set for sprite kind %s", kind))
	}
	for i, f := range fs.Frames {
		if f.Mask == nil || f.Mask.Count() == 0 {
			panic(fmt.Sprintf("sim: empty collision mask for %s frame %d", kind, i))
		}
	}
	return fs
}
