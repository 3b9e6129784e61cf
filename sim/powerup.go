package sim

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragon-runner/common"
)

// PowerUpKind is the closed set of collectible effects.
type PowerUpKind int

const (
	PowerUpBlueDash PowerUpKind = iota
	PowerUpYellowTornado
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBlueDash:
		return "blue_dash"
	case PowerUpYellowTornado:
		return "yellow_tornado"
	default:
		return "?"
	}
}

// SpriteKind maps the power-up kind to its ticket sprite.
func (k PowerUpKind) SpriteKind() SpriteKind {
	if k == PowerUpBlueDash {
		return SpriteTicketBlue
	}
	return SpriteTicketYellow
}

const (
	pickupAltitude = 160 // px above ground
	bobAmplitude   = 15
	bobRate        = 6 // rad/s
)

// PowerUp is an uncollected ticket floating above the obstacle track.
type PowerUp struct {
	Kind PowerUpKind
	Pos  cp.Vector

	baseY    float64
	bobTimer float64
	frames   *FrameSet
}

func newPowerUp(kind PowerUpKind, x float64, src FrameSource) *PowerUp {
	fs := mustFrameSet(src, kind.SpriteKind())
	y := float64(common.GroundY - pickupAltitude)
	return &PowerUp{
		Kind:   kind,
		Pos:    cp.Vector{X: x, Y: y},
		baseY:  y,
		frames: fs,
	}
}

// Update scrolls the ticket left with a sinusoidal bob.
func (p *PowerUp) Update(dt, scroll float64) {
	p.Pos.X -= scroll * dt
	p.bobTimer += bobRate * dt
	p.Pos.Y = p.baseY + math.Sin(p.bobTimer)*bobAmplitude
}

func (p *PowerUp) AABB() common.Rect {
	return common.Rect{X: p.Pos.X, Y: p.Pos.Y, Width: p.frames.Width, Height: p.frames.Height}
}

func (p *PowerUp) Mask() *Mask {
	return p.frames.Frames[0].Mask
}

// OffScreen reports whether the ticket has exited the left bound.
func (p *PowerUp) OffScreen() bool {
	return p.Pos.X+p.frames.Width < -50
}
