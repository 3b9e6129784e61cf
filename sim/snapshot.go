package sim

import "github.com/milk9111/dragon-runner/common"

// SpriteInstance is one drawable sprite in a snapshot.
type SpriteInstance struct {
	Kind     SpriteKind
	Frame    int
	X, Y     float64
	W, H     float64
	Rotation float64
}

// ParticleView is one drawable particle.
type ParticleView struct {
	Kind  ParticleKind
	X, Y  float64
	Size  float64
	Alpha float64
}

// LayerView is one parallax background element.
type LayerView struct {
	Kind  LayerKind
	X, Y  float64
	Scale float64
}

// Snapshot is a read-only view of the world for rendering. It copies out
// everything the renderer needs so drawing never touches live state.
type Snapshot struct {
	Player        SpriteInstance
	PlayerState   string
	Invincible    bool
	DashRemaining float64
	DashDuration  float64
	TornadoReady  bool

	Obstacles []SpriteInstance
	Pickups   []SpriteInstance
	Particles []ParticleView

	Phase        float64
	IsDay        bool
	AmbientLight float64
	SunX, SunY   float64
	Layers       []LayerView

	Score    int
	Speed    float64
	GameOver bool

	ShowHitboxes bool
	Hitboxes     []common.Rect
}

// Snapshot captures the current frame for the renderer.
func (w *World) Snapshot() Snapshot {
	d := w.curve.At(w.elapsed)
	speed := d.Speed
	if w.player.Invincible() {
		speed *= 1 + w.cfg.DashSpeedBonus
	}

	pBox := w.player.AABB()
	snap := Snapshot{
		Player: SpriteInstance{
			Kind:  w.player.SpriteKind(),
			Frame: w.player.Frame(),
			X:     pBox.X,
			Y:     pBox.Y,
			W:     pBox.Width,
			H:     pBox.Height,
		},
		PlayerState:   w.player.StateName(),
		Invincible:    w.player.Invincible(),
		DashRemaining: w.player.DashRemaining(),
		DashDuration:  w.cfg.DashDuration,
		TornadoReady:  w.player.TornadoArmed(),
		Phase:         w.env.Phase,
		IsDay:         w.env.IsDay(),
		AmbientLight:  AmbientLight(w.env.Phase),
		Score:         int(w.score),
		Speed:         speed,
		GameOver:      w.over,
		ShowHitboxes:  w.showHitboxes,
	}
	snap.SunX, snap.SunY = SunMoonPos(w.env.Phase)

	for _, o := range w.obstacles {
		box := o.AABB()
		snap.Obstacles = append(snap.Obstacles, SpriteInstance{
			Kind:     o.Kind.SpriteKind(),
			Frame:    o.Frame(),
			X:        box.X,
			Y:        box.Y,
			W:        box.Width,
			H:        box.Height,
			Rotation: o.Spin,
		})
	}
	for _, p := range w.pickups {
		box := p.AABB()
		snap.Pickups = append(snap.Pickups, SpriteInstance{
			Kind: p.Kind.SpriteKind(),
			X:    box.X,
			Y:    box.Y,
			W:    box.Width,
			H:    box.Height,
		})
	}

	for _, pt := range w.particles.Particles() {
		snap.Particles = append(snap.Particles, ParticleView{
			Kind:  pt.Kind,
			X:     pt.Pos.X,
			Y:     pt.Pos.Y,
			Size:  pt.Size,
			Alpha: pt.Alpha,
		})
	}

	for _, l := range w.env.Layers {
		snap.Layers = append(snap.Layers, LayerView{Kind: l.Kind, X: l.X, Y: l.Y, Scale: l.Scale})
	}

	if w.showHitboxes {
		snap.Hitboxes = append(snap.Hitboxes, pBox)
		for _, o := range w.obstacles {
			snap.Hitboxes = append(snap.Hitboxes, o.AABB())
		}
		for _, p := range w.pickups {
			snap.Hitboxes = append(snap.Hitboxes, p.AABB())
		}
	}

	return snap
}
