package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragon-runner/common"
)

// playerState is the interface each concrete player state implements.
type playerState interface {
	Name() string
	Enter(p *Player)
	HandleInput(p *Player, ev InputEvent)
	Physics(p *Player, dt float64)
}

// Concrete states

type runningState struct{}

func (runningState) Name() string    { return "running" }
func (runningState) Enter(p *Player) { p.alignToGround() }
func (runningState) HandleInput(p *Player, ev InputEvent) {
	switch ev {
	case InputJumpPressed:
		p.jump()
	case InputDuckPressed:
		p.setState(stateDucking)
	}
}
func (runningState) Physics(p *Player, dt float64) {}

type jumpingState struct{}

func (jumpingState) Name() string { return "jumping" }
func (jumpingState) Enter(p *Player) {
	// Jumps always start grounded; snap the feet to the ground for the jump
	// frame's height before lift-off.
	p.alignToGround()
	p.jumpBufferTimer = p.cfg.JumpBufferWindow
}
func (jumpingState) HandleInput(p *Player, ev InputEvent) {
	// A second press inside the buffer window upgrades to a double jump.
	// Outside the window the press is dropped.
	if ev == InputJumpPressed && p.jumpBufferTimer > 0 {
		p.Vel.Y = p.cfg.DoubleJumpVelocity
		p.setState(stateDoubleJumping)
		p.events.Push(EventDoubleJump)
	}
}
func (jumpingState) Physics(p *Player, dt float64) {
	p.integrate(dt)
}

type doubleJumpingState struct{}

func (doubleJumpingState) Name() string                         { return "doublejump" }
func (doubleJumpingState) Enter(p *Player)                      {}
func (doubleJumpingState) HandleInput(p *Player, ev InputEvent) {}
func (doubleJumpingState) Physics(p *Player, dt float64)        { p.integrate(dt) }

type duckingState struct{}

func (duckingState) Name() string { return "ducking" }
func (duckingState) Enter(p *Player) {
	p.alignToGround()
}
func (duckingState) HandleInput(p *Player, ev InputEvent) {
	switch ev {
	case InputDuckReleased:
		p.setState(stateRunning)
	case InputJumpPressed:
		// Stand up and jump in one motion.
		p.setState(stateRunning)
		p.jump()
	}
}
func (duckingState) Physics(p *Player, dt float64) {}

type defeatedState struct{}

func (defeatedState) Name() string                         { return "defeated" }
func (defeatedState) Enter(p *Player)                      {}
func (defeatedState) HandleInput(p *Player, ev InputEvent) {}
func (defeatedState) Physics(p *Player, dt float64)        {}

// singletons for each state to avoid allocating on every transition
var (
	stateRunning       playerState = &runningState{}
	stateJumping       playerState = &jumpingState{}
	stateDoubleJumping playerState = &doubleJumpingState{}
	stateDucking       playerState = &duckingState{}
	stateDefeated      playerState = &defeatedState{}
)

const playerX = 100 // fixed lane

// Player owns the runner's physics and animation state machine. It is mutated
// only by HandleInput/Update and by collision outcomes.
type Player struct {
	cfg    *Config
	events *Events

	Pos cp.Vector // top-left
	Vel cp.Vector

	state playerState

	runFrames  *FrameSet
	jumpFrames *FrameSet
	duckFrames *FrameSet
	frame      int
	frameTimer float64

	jumpBufferTimer float64
	dashRemaining   float64
	tornadoArmed    bool
	defeated        bool
}

func NewPlayer(cfg *Config, src FrameSource, events *Events) *Player {
	p := &Player{
		cfg:        cfg,
		events:     events,
		runFrames:  mustFrameSet(src, SpriteSamuraiRun),
		jumpFrames: mustFrameSet(src, SpriteSamuraiJump),
		duckFrames: mustFrameSet(src, SpriteSamuraiDuck),
		state:      stateRunning,
	}
	p.Pos = cp.Vector{X: playerX}
	p.alignToGround()
	return p
}

func (p *Player) setState(s playerState) {
	p.state = s
	p.frame = 0
	p.frameTimer = 0
	s.Enter(p)
}

// HandleInput feeds one logical input event into the state machine. Invalid
// transitions are no-ops.
func (p *Player) HandleInput(ev InputEvent) {
	p.state.HandleInput(p, ev)
}

func (p *Player) jump() {
	p.Vel.Y = p.cfg.JumpVelocity
	p.setState(stateJumping)
	p.events.Push(EventJump)
}

// integrate advances vertical motion under gravity and handles landing.
func (p *Player) integrate(dt float64) {
	p.Pos.Y += p.Vel.Y * dt
	p.Vel.Y += p.cfg.Gravity * dt

	ground := common.GroundY - p.frames().Height
	if p.Pos.Y >= ground {
		p.Pos.Y = ground
		p.Vel.Y = 0
		p.setState(stateRunning)
	}
}

func (p *Player) alignToGround() {
	p.Pos.Y = common.GroundY - p.frames().Height
}

// Update advances physics, timers, and animation for one frame.
func (p *Player) Update(dt float64, d Difficulty) {
	if p.jumpBufferTimer > 0 {
		p.jumpBufferTimer -= dt
	}
	if p.dashRemaining > 0 {
		p.dashRemaining -= dt
		if p.dashRemaining < 0 {
			p.dashRemaining = 0
		}
	}

	p.state.Physics(p, dt)

	fs := p.frames()
	if len(fs.Frames) > 1 && fs.FrameDuration > 0 {
		p.frameTimer += dt
		for p.frameTimer >= fs.FrameDuration {
			p.frameTimer -= fs.FrameDuration
			p.frame = (p.frame + 1) % len(fs.Frames)
		}
	}
}

// ApplyPowerUp activates a collected power-up. A new pickup replaces any
// active effect: BlueDash restarts its full duration; YellowTornado is armed
// and consumed by the world on the nearest obstacle ahead.
func (p *Player) ApplyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpBlueDash:
		p.dashRemaining = p.cfg.DashDuration
	case PowerUpYellowTornado:
		p.tornadoArmed = true
	}
	p.events.Push(EventPowerUp)
}

// TakeHit defeats the player unless invincible.
func (p *Player) TakeHit() {
	if p.Invincible() || p.defeated {
		return
	}
	p.defeated = true
	p.setState(stateDefeated)
	p.events.Push(EventHit)
}

// Invincible reports whether a BlueDash is active.
func (p *Player) Invincible() bool {
	return p.dashRemaining > 0
}

// DashRemaining returns seconds of BlueDash left.
func (p *Player) DashRemaining() float64 {
	return p.dashRemaining
}

// TornadoArmed reports whether a YellowTornado is waiting for a target.
func (p *Player) TornadoArmed() bool {
	return p.tornadoArmed
}

func (p *Player) disarmTornado() {
	p.tornadoArmed = false
}

// Defeated reports whether the player has been hit.
func (p *Player) Defeated() bool {
	return p.defeated
}

// Grounded reports whether the player is on the ground.
func (p *Player) Grounded() bool {
	return p.state == stateRunning || p.state == stateDucking
}

// Ducking reports whether the player is ducking.
func (p *Player) Ducking() bool {
	return p.state == stateDucking
}

// StateName names the current movement state for snapshots and logs.
func (p *Player) StateName() string {
	return p.state.Name()
}

func (p *Player) frames() *FrameSet {
	switch p.state {
	case stateDucking:
		return p.duckFrames
	case stateJumping, stateDoubleJumping:
		return p.jumpFrames
	default:
		return p.runFrames
	}
}

// SpriteKind returns the sprite for the current state.
func (p *Player) SpriteKind() SpriteKind {
	switch p.state {
	case stateDucking:
		return SpriteSamuraiDuck
	case stateJumping, stateDoubleJumping:
		return SpriteSamuraiJump
	default:
		return SpriteSamuraiRun
	}
}

// Frame returns the current animation frame index.
func (p *Player) Frame() int {
	return p.frame
}

// AABB returns the player's bounding box for the collision pre-check. The
// box follows the current frame set, so ducking shrinks it.
func (p *Player) AABB() common.Rect {
	fs := p.frames()
	return common.Rect{X: p.Pos.X, Y: p.Pos.Y, Width: fs.Width, Height: fs.Height}
}

// Mask returns the collision mask of the current animation frame.
func (p *Player) Mask() *Mask {
	fs := p.frames()
	return fs.Frames[p.frame%len(fs.Frames)].Mask
}
