package sim

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

// World is the owning context for one round of the simulation. All state is
// rebuilt from scratch on restart; there are no package-level globals.
type World struct {
	cfg *Config
	rng *rand.Rand
	src FrameSource

	curve     DifficultyCurve
	events    Events
	player    *Player
	env       *Environment
	spawner   *Spawner
	particles *ParticleSystem
	collider  *CollisionEngine

	obstacles []*Obstacle
	pickups   []*PowerUp

	elapsed       float64
	score         float64
	lastMilestone int
	over          bool
	showHitboxes  bool

	dustTimer  float64
	flameTimer float64
}

// NewWorld builds a fresh round. src must satisfy the asset contract for
// every spawnable kind; a missing mask panics on first use.
func NewWorld(cfg *Config, src FrameSource, weights WeightSource, seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	w := &World{
		cfg:       cfg,
		rng:       rng,
		src:       src,
		curve:     NewDifficultyCurve(cfg),
		collider:  NewCollisionEngine(),
		particles: NewParticleSystem(cfg.ParticleCap, rng),
		env:       NewEnvironment(cfg, rng),
	}
	w.player = NewPlayer(cfg, src, &w.events)
	w.spawner = NewSpawner(cfg, src, weights, rng)
	return w
}

// HandleInput routes one logical input event. Unknown or out-of-order events
// are silently ignored.
func (w *World) HandleInput(ev InputEvent) {
	if w.over {
		return
	}
	switch ev {
	case InputToggleDayNight:
		w.env.ToggleMode()
	case InputToggleHitboxes:
		w.showHitboxes = !w.showHitboxes
	case InputDebugSpawnDragon:
		w.obstacles = append(w.obstacles, w.spawner.SpawnDragon())
	default:
		w.player.HandleInput(ev)
	}
}

// Update advances the simulation by dt seconds in the fixed per-frame order:
// player, spawner, environment, entity motion, collision, particles,
// score/difficulty. Event triggers are drained by the caller afterwards.
func (w *World) Update(dt float64) {
	if w.over {
		return
	}
	w.elapsed += dt
	d := w.curve.At(w.elapsed)

	speed := d.Speed
	if w.player.Invincible() {
		speed *= 1 + w.cfg.DashSpeedBonus
	}

	w.player.Update(dt, d)
	w.emitPlayerTrail(dt)

	obs, pus := w.spawner.Update(dt, d, speed)
	w.obstacles = append(w.obstacles, obs...)
	w.pickups = append(w.pickups, pus...)

	w.env.Update(dt, speed, w.particles)

	for _, o := range w.obstacles {
		o.Update(dt, speed)
	}
	for _, p := range w.pickups {
		p.Update(dt, speed)
	}
	w.dropOffScreen()

	w.consumeTornado()
	w.resolveCollisions()

	w.particles.Update(dt)

	if !w.over {
		w.score += w.cfg.ScorePerSecond * dt
		if m := int(w.score) / w.cfg.MilestoneEvery; m > w.lastMilestone {
			w.lastMilestone = m
			w.events.Push(EventMilestone)
		}
	}
}

func (w *World) emitPlayerTrail(dt float64) {
	if w.player.Invincible() {
		w.flameTimer += dt
		for w.flameTimer >= w.cfg.FlamePeriod {
			w.flameTimer -= w.cfg.FlamePeriod
			box := w.player.AABB()
			w.particles.Emit(ParticleFlame, cp.Vector{X: box.X, Y: box.Y + box.Height*0.6}, 1)
		}
	}
	if w.player.Grounded() && !w.player.Ducking() {
		w.dustTimer += dt
		for w.dustTimer >= w.cfg.DustPeriod {
			w.dustTimer -= w.cfg.DustPeriod
			box := w.player.AABB()
			w.particles.Emit(ParticleDust, cp.Vector{X: box.X, Y: box.Y + box.Height}, 1)
		}
	}
}

// consumeTornado spends an armed YellowTornado on the nearest obstacle ahead
// of the player, converting it into debris.
func (w *World) consumeTornado() {
	if !w.player.TornadoArmed() || len(w.obstacles) == 0 {
		return
	}
	var target *Obstacle
	idx := -1
	for i, o := range w.obstacles {
		if o.Pos.X <= w.player.Pos.X+20 {
			continue
		}
		if target == nil || o.Pos.X < target.Pos.X {
			target = o
			idx = i
		}
	}
	if target == nil {
		return
	}
	w.shatter(target)
	w.obstacles = append(w.obstacles[:idx], w.obstacles[idx+1:]...)
	w.score += w.cfg.TornadoScoreBonus
	w.events.Push(EventSlash)
	w.player.disarmTornado()
}

func (w *World) shatter(o *Obstacle) {
	w.particles.Emit(ParticleDebris, cp.Vector{X: o.Pos.X, Y: o.Pos.Y}, 8)
}

func (w *World) resolveCollisions() {
	for _, res := range w.collider.Test(w.player, w.obstacles, w.pickups) {
		switch res.Kind {
		case OutcomePickup:
			w.player.ApplyPowerUp(res.Pickup.Kind)
			w.removePickup(res.Pickup)
			box := w.player.AABB()
			w.particles.Emit(ParticleSparkle, cp.Vector{X: box.X, Y: box.Y}, 10)
		case OutcomeShatter:
			w.shatter(res.Obstacle)
			w.removeObstacle(res.Obstacle)
		case OutcomeHit:
			w.player.TakeHit()
			if w.player.Defeated() {
				w.over = true
			}
		}
	}
}

// dropOffScreen removes entities past the left bound. Destroyed entities are
// removed outright, never flagged.
func (w *World) dropOffScreen() {
	live := w.obstacles[:0]
	for _, o := range w.obstacles {
		if !o.OffScreen() {
			live = append(live, o)
		}
	}
	w.obstacles = live

	livePU := w.pickups[:0]
	for _, p := range w.pickups {
		if !p.OffScreen() {
			livePU = append(livePU, p)
		}
	}
	w.pickups = livePU
}

func (w *World) removeObstacle(o *Obstacle) {
	for i, x := range w.obstacles {
		if x == o {
			w.obstacles = append(w.obstacles[:i], w.obstacles[i+1:]...)
			return
		}
	}
}

func (w *World) removePickup(p *PowerUp) {
	for i, x := range w.pickups {
		if x == p {
			w.pickups = append(w.pickups[:i], w.pickups[i+1:]...)
			return
		}
	}
}

// Events returns the frame event queue for audio/HUD collaborators.
func (w *World) Events() *Events {
	return &w.events
}

// Score returns the current integer score.
func (w *World) Score() int {
	return int(w.score)
}

// GameOver reports whether the round has ended. A finished world freezes:
// Update becomes a no-op and all entity state stays inspectable.
func (w *World) GameOver() bool {
	return w.over
}

// Player exposes the player for collaborators and tests.
func (w *World) Player() *Player {
	return w.player
}

// Environment exposes day/night state.
func (w *World) Environment() *Environment {
	return w.env
}
