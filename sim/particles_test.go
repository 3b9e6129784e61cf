package sim

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestParticleSystemCapacityEviction(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ps := NewParticleSystem(8, rng)

	ps.Emit(ParticleDust, cp.Vector{X: 1}, 8)
	if ps.Len() != 8 {
		t.Fatalf("expected 8 particles, got %d", ps.Len())
	}

	// one past capacity evicts the oldest, never grows
	ps.Emit(ParticleDebris, cp.Vector{X: 2}, 1)
	if ps.Len() != 8 {
		t.Fatalf("expected capacity hold at 8, got %d", ps.Len())
	}
	pool := ps.Particles()
	if pool[len(pool)-1].Kind != ParticleDebris {
		t.Fatalf("newest particle should survive eviction")
	}

	ps.Emit(ParticleSparkle, cp.Vector{}, 100)
	if ps.Len() != 8 {
		t.Fatalf("bulk emit past capacity grew pool to %d", ps.Len())
	}
}

func TestParticleSystemTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ps := NewParticleSystem(64, rng)
	for _, kind := range []ParticleKind{ParticleDust, ParticlePetal, ParticleSparkle, ParticleDebris, ParticleFlame} {
		ps.Emit(kind, cp.Vector{X: 100, Y: 100}, 10)
	}

	dt := 1.0 / 60
	for i := 0; i < 60*5; i++ {
		ps.Update(dt)
	}
	if ps.Len() != 0 {
		t.Fatalf("all particles should expire, %d remain", ps.Len())
	}
}

func TestParticleAlphaMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ps := NewParticleSystem(4, rng)
	ps.Emit(ParticlePetal, cp.Vector{}, 1)

	prev := ps.Particles()[0].Alpha
	dt := 1.0 / 60
	for ps.Len() > 0 {
		ps.Update(dt)
		if ps.Len() == 0 {
			break
		}
		a := ps.Particles()[0].Alpha
		if a > prev {
			t.Fatalf("alpha increased from %v to %v", prev, a)
		}
		prev = a
	}
}

func TestDebrisFalls(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	ps := NewParticleSystem(4, rng)
	ps.Emit(ParticleDebris, cp.Vector{}, 1)

	v0 := ps.Particles()[0].Vel.Y
	ps.Update(0.1)
	if ps.Len() == 0 {
		t.Fatalf("debris expired immediately")
	}
	if v1 := ps.Particles()[0].Vel.Y; v1 <= v0 {
		t.Fatalf("debris should accelerate downward, vel %v -> %v", v0, v1)
	}
}
