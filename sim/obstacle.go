package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragon-runner/common"
)

// ObstacleKind is the closed set of obstacle variants.
type ObstacleKind int

const (
	ObstacleRock ObstacleKind = iota
	ObstacleBarrel
	ObstacleBamboo
	ObstacleBoulder
	ObstacleDragonRed
	ObstacleDragonGreen
	ObstacleDragonBlack
	ObstacleKindCount
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleRock:
		return "rock"
	case ObstacleBarrel:
		return "barrel"
	case ObstacleBamboo:
		return "bamboo"
	case ObstacleBoulder:
		return "boulder"
	case ObstacleDragonRed:
		return "dragon_red"
	case ObstacleDragonGreen:
		return "dragon_green"
	case ObstacleDragonBlack:
		return "dragon_black"
	default:
		return "?"
	}
}

// IsDragon reports whether the kind is a flying enemy.
func (k ObstacleKind) IsDragon() bool {
	return k == ObstacleDragonRed || k == ObstacleDragonGreen || k == ObstacleDragonBlack
}

// SpriteKind maps the obstacle kind to its frame set.
func (k ObstacleKind) SpriteKind() SpriteKind {
	switch k {
	case ObstacleRock:
		return SpriteRock
	case ObstacleBarrel:
		return SpriteBarrel
	case ObstacleBamboo:
		return SpriteBamboo
	case ObstacleBoulder:
		return SpriteBoulder
	case ObstacleDragonRed:
		return SpriteDragonRed
	case ObstacleDragonGreen:
		return SpriteDragonGreen
	default:
		return SpriteDragonBlack
	}
}

// Band is the discrete vertical lane a flying enemy occupies. Ground is used
// by every non-dragon kind.
type Band int

const (
	BandGround Band = iota
	BandLow         // hugs the ground, jump over it
	BandMid         // chest height, duck under it
	BandHigh        // sails overhead, no action needed
)

func (b Band) String() string {
	switch b {
	case BandGround:
		return "ground"
	case BandLow:
		return "low"
	case BandMid:
		return "mid"
	default:
		return "high"
	}
}

// bandY returns the top coordinate for an entity of the given height in the
// band.
func bandY(b Band, height float64) float64 {
	switch b {
	case BandLow:
		return common.GroundY - height
	case BandMid:
		return common.GroundY - height - 70
	case BandHigh:
		return common.GroundY - height - 140
	default:
		return common.GroundY - height
	}
}

const boulderSpinRate = 10 // rad/s, visual only

// Obstacle is a live hazard scrolling toward the player. Pos is the top-left
// corner.
type Obstacle struct {
	Kind ObstacleKind
	Band Band
	Pos  cp.Vector

	// SpeedMul scales the scroll speed: boulders roll ahead of the ground,
	// green dragons lag slightly.
	SpeedMul float64
	Spin     float64 // radians, boulder render rotation

	frames     *FrameSet
	frame      int
	frameTimer float64
}

func newObstacle(kind ObstacleKind, band Band, x float64, src FrameSource) *Obstacle {
	fs := mustFrameSet(src, kind.SpriteKind())
	o := &Obstacle{
		Kind:     kind,
		Band:     band,
		frames:   fs,
		SpeedMul: 1,
	}
	switch {
	case kind == ObstacleBoulder:
		o.SpeedMul = 1.3
	case kind == ObstacleDragonGreen:
		o.SpeedMul = 0.95
	}
	o.Pos = cp.Vector{X: x, Y: bandY(band, fs.Height)}
	return o
}

// Update scrolls the obstacle left and advances its animation.
func (o *Obstacle) Update(dt, scroll float64) {
	o.Pos.X -= scroll * o.SpeedMul * dt
	if o.Kind == ObstacleBoulder {
		o.Spin -= boulderSpinRate * dt
	}
	if len(o.frames.Frames) > 1 && o.frames.FrameDuration > 0 {
		o.frameTimer += dt
		for o.frameTimer >= o.frames.FrameDuration {
			o.frameTimer -= o.frames.FrameDuration
			o.frame = (o.frame + 1) % len(o.frames.Frames)
		}
	}
}

// AABB returns the bounding box for the cheap collision pre-check.
func (o *Obstacle) AABB() common.Rect {
	return common.Rect{X: o.Pos.X, Y: o.Pos.Y, Width: o.frames.Width, Height: o.frames.Height}
}

// Mask returns the current frame's collision mask.
func (o *Obstacle) Mask() *Mask {
	return o.frames.Frames[o.frame].Mask
}

// Frame returns the current animation frame index for rendering.
func (o *Obstacle) Frame() int {
	return o.frame
}

// OffScreen reports whether the obstacle has fully exited the left bound.
func (o *Obstacle) OffScreen() bool {
	return o.Pos.X+o.frames.Width < -100
}
