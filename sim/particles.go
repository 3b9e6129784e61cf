package sim

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragon-runner/common"
)

// ParticleKind tags a particle's look and motion profile.
type ParticleKind int

const (
	ParticleDust ParticleKind = iota
	ParticlePetal
	ParticleSparkle
	ParticleDebris
	ParticleFlame
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleDust:
		return "dust"
	case ParticlePetal:
		return "petal"
	case ParticleSparkle:
		return "sparkle"
	case ParticleDebris:
		return "debris"
	case ParticleFlame:
		return "flame"
	default:
		return "?"
	}
}

const debrisGravity = 870 // px/s^2, lighter than the player so chunks hang

// Particle is a short-lived decorative element. Alpha decreases
// monotonically; a particle is removed once alpha reaches zero or its
// lifetime expires.
type Particle struct {
	Pos   cp.Vector
	Vel   cp.Vector
	Life  float64 // seconds remaining
	Alpha float64 // 1..0
	decay float64 // alpha lost per second
	Size  float64
	Kind  ParticleKind
}

// ParticleSystem owns a capacity-bounded pool. Emitting past capacity evicts
// the oldest particles first instead of growing.
type ParticleSystem struct {
	max int
	p   []Particle
	rng *rand.Rand
}

func NewParticleSystem(capacity int, rng *rand.Rand) *ParticleSystem {
	if capacity <= 0 {
		capacity = 256
	}
	return &ParticleSystem{
		max: capacity,
		p:   make([]Particle, 0, capacity),
		rng: rng,
	}
}

// Emit spawns count particles of the given kind around pos.
func (ps *ParticleSystem) Emit(kind ParticleKind, pos cp.Vector, count int) {
	for i := 0; i < count; i++ {
		ps.add(ps.spawn(kind, pos))
	}
}

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.p) >= ps.max {
		// FIFO eviction: update keeps insertion order, so index 0 is oldest.
		copy(ps.p, ps.p[1:])
		ps.p = ps.p[:len(ps.p)-1]
	}
	ps.p = append(ps.p, p)
}

func (ps *ParticleSystem) spawn(kind ParticleKind, pos cp.Vector) Particle {
	r := ps.rng
	p := Particle{
		Pos:   pos,
		Kind:  kind,
		Life:  0.5 + r.Float64()*0.6,
		Alpha: 1,
		decay: 1.2 + r.Float64()*1.8, // 0.02..0.05 per frame in the old engine
	}
	switch kind {
	case ParticlePetal:
		p.Vel = cp.Vector{X: rangeF(r, -60, 60), Y: rangeF(r, 30, 90)}
		p.Size = rangeF(r, 3, 5)
		p.Life = 1.0 + r.Float64()
	case ParticleDebris:
		p.Vel = cp.Vector{X: rangeF(r, -300, 300), Y: rangeF(r, -360, -120)}
		p.Size = rangeF(r, 4, 7)
	case ParticleSparkle:
		p.Vel = cp.Vector{X: rangeF(r, -60, 60), Y: rangeF(r, -120, -30)}
		p.Size = rangeF(r, 2, 4)
	case ParticleDust:
		p.Vel = cp.Vector{X: rangeF(r, -120, -30), Y: rangeF(r, -30, 0)}
		p.Size = rangeF(r, 3, 6)
	case ParticleFlame:
		p.Vel = cp.Vector{X: rangeF(r, -200, -120), Y: rangeF(r, -40, 40)}
		p.Size = rangeF(r, 4, 8)
		p.Life = 0.25 + r.Float64()*0.2
		p.decay = 3.5
	}
	return p
}

// Update advances and compacts the pool, removing every particle whose alpha
// or lifetime has run out.
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.p[:0]
	for i := range ps.p {
		p := &ps.p[i]
		p.Pos = p.Pos.Add(p.Vel.Mult(dt))
		if p.Kind == ParticleDebris {
			p.Vel.Y += debrisGravity * dt
		}
		p.Life -= dt
		p.Alpha = common.Clamp(p.Alpha-p.decay*dt, 0, 1)
		if p.Alpha <= 0 || p.Life <= 0 {
			continue
		}
		live = append(live, *p)
	}
	ps.p = live
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.p)
}

// Particles returns the live pool in insertion order for rendering.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.p
}

func rangeF(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
