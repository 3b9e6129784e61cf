package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/dragon-runner/common"
)

func TestEnvironmentPhaseAdvance(t *testing.T) {
	cfg := DefaultConfig()
	env := NewEnvironment(cfg, rand.New(rand.NewSource(1)))

	if !env.IsDay() {
		t.Fatalf("a run starts at midday")
	}

	dt := 1.0 / 60
	steps := int(cfg.CyclePeriod / 2 / dt)
	for i := 0; i < steps; i++ {
		env.Update(dt, 400, nil)
	}
	// half a cycle later it is night
	if env.IsDay() {
		t.Fatalf("expected night after half a cycle, phase %v", env.Phase)
	}
	for i := 0; i < steps; i++ {
		env.Update(dt, 400, nil)
	}
	if !env.IsDay() {
		t.Fatalf("expected day again after a full cycle, phase %v", env.Phase)
	}
	if env.Phase < 0 || env.Phase >= 1 {
		t.Fatalf("phase must stay in [0,1), got %v", env.Phase)
	}
}

func TestEnvironmentToggleBlends(t *testing.T) {
	cfg := DefaultConfig()
	env := NewEnvironment(cfg, rand.New(rand.NewSource(2)))

	start := env.Phase
	env.ToggleMode()
	// the jump is not instantaneous
	if env.Phase != start {
		t.Fatalf("toggle should not move the phase before the next update")
	}

	dt := 1.0 / 60
	env.Update(dt, 400, nil)
	moved := env.Phase - start
	if moved >= 0.5 {
		t.Fatalf("toggle applied as a hard cut: moved %v in one frame", moved)
	}

	// after the blend window the full half-cycle has been folded in
	steps := int(cfg.ToggleBlend/dt) + 2
	for i := 0; i < steps; i++ {
		env.Update(dt, 400, nil)
	}
	elapsed := dt * float64(steps+1)
	want := start + 0.5 + elapsed/cfg.CyclePeriod
	if math.Abs(env.Phase-want) > 1e-9 {
		t.Fatalf("phase after blend = %v, want %v", env.Phase, want)
	}
	if env.IsDay() {
		t.Fatalf("toggle from day should land in night")
	}
}

func TestEnvironmentTogglesCancel(t *testing.T) {
	cfg := DefaultConfig()
	env := NewEnvironment(cfg, rand.New(rand.NewSource(3)))

	env.ToggleMode()
	env.ToggleMode()

	dt := 1.0 / 60
	steps := int(2*cfg.ToggleBlend/dt) + 2
	for i := 0; i < steps; i++ {
		env.Update(dt, 400, nil)
	}
	// two half-cycle jumps make a full cycle: same mode as the start
	if !env.IsDay() {
		t.Fatalf("double toggle should return to day, phase %v", env.Phase)
	}
}

func TestEnvironmentLayersWrap(t *testing.T) {
	cfg := DefaultConfig()
	env := NewEnvironment(cfg, rand.New(rand.NewSource(4)))

	for i := 0; i < 60*120; i++ {
		env.Update(1.0/60, 960, nil)
		for _, l := range env.Layers {
			if l.X < -200 {
				t.Fatalf("layer %v fell off the left edge at %v", l.Kind, l.X)
			}
		}
	}
}

func TestEnvironmentAmbientParticles(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(5))
	env := NewEnvironment(cfg, rng)
	ps := NewParticleSystem(cfg.ParticleCap, rng)

	for i := 0; i < 60; i++ {
		env.Update(1.0/60, 400, ps)
	}
	petals := 0
	for _, p := range ps.Particles() {
		if p.Kind == ParticlePetal {
			petals++
		}
		if p.Kind == ParticleSparkle {
			t.Fatalf("sparkles are a night effect")
		}
	}
	if petals == 0 {
		t.Fatalf("daytime should shed petals")
	}
}

func TestAmbientLight(t *testing.T) {
	cases := []struct {
		phase float64
		want  float64
	}{
		{0.25, 1}, // midday
		{0.75, 0}, // midnight
		{0, 0.5},
		{0.5, 0.5},
	}
	for _, c := range cases {
		if got := AmbientLight(c.phase); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("AmbientLight(%v) = %v, want %v", c.phase, got, c.want)
		}
	}
}

func TestSunMoonArc(t *testing.T) {
	x0, _ := SunMoonPos(0)
	if x0 != 80 {
		t.Fatalf("half-cycle start x = %v, want 80", x0)
	}
	_, yMid := SunMoonPos(0.25)
	if yMid != 50 {
		t.Fatalf("arc apex y = %v, want 50", yMid)
	}
	// moon retraces the same arc
	mx, my := SunMoonPos(0.75)
	sx, sy := SunMoonPos(0.25)
	if mx != sx || my != sy {
		t.Fatalf("moon apex (%v,%v) differs from sun apex (%v,%v)", mx, my, sx, sy)
	}
	xEnd, _ := SunMoonPos(0.499999)
	if xEnd < common.BaseWidth-81 {
		t.Fatalf("half-cycle end x = %v, want near %v", xEnd, common.BaseWidth-80)
	}
}
