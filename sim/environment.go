package sim

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dragon-runner/common"
)

// LayerKind tags a parallax layer element.
type LayerKind int

const (
	LayerPagoda LayerKind = iota
	LayerCloud
	LayerLantern
)

// ParallaxLayer is one background element scrolling at a fraction of the
// ground speed.
type ParallaxLayer struct {
	Kind  LayerKind
	X, Y  float64
	Speed float64 // fraction of scroll speed
	Scale float64
}

// Environment owns the day/night phase and the parallax background. Phase is
// continuous in [0,1): [0,0.5) is day, [0.5,1) is night. It advances with
// elapsed time, never with tick counts.
type Environment struct {
	cfg *Config
	rng *rand.Rand

	Phase float64
	// blendLeft is the phase distance still to be folded in after a toggle,
	// spread over cfg.ToggleBlend seconds instead of applied as a hard cut.
	blendLeft float64

	Layers []ParallaxLayer

	petalAccum   float64
	sparkleAccum float64
}

func NewEnvironment(cfg *Config, rng *rand.Rand) *Environment {
	e := &Environment{cfg: cfg, rng: rng, Phase: 0.25} // start at midday
	for i := 0; i < 3; i++ {
		e.Layers = append(e.Layers, ParallaxLayer{
			Kind: LayerPagoda, X: float64(i*400 + 100), Y: common.GroundY - 140, Speed: 0.2, Scale: 1,
		})
	}
	for i := 0; i < 4; i++ {
		e.Layers = append(e.Layers, ParallaxLayer{
			Kind:  LayerCloud,
			X:     rng.Float64() * common.BaseWidth,
			Y:     20 + rng.Float64()*140,
			Speed: 0.1 + rng.Float64()*0.15,
			Scale: 0.8 + rng.Float64()*0.6,
		})
	}
	for i := 0; i < 3; i++ {
		e.Layers = append(e.Layers, ParallaxLayer{
			Kind: LayerLantern, X: rng.Float64() * common.BaseWidth, Y: 120 + rng.Float64()*100, Speed: 0.12, Scale: 1,
		})
	}
	return e
}

// IsDay reports whether the phase is in the day half of the cycle.
func (e *Environment) IsDay() bool {
	return e.Phase < 0.5
}

// ToggleMode schedules a half-cycle phase jump, blended over the configured
// window so the sky never pops.
func (e *Environment) ToggleMode() {
	e.blendLeft += 0.5
}

// Update advances the phase and parallax layers and emits ambient particles.
// scroll is the current ground speed in px/s.
func (e *Environment) Update(dt, scroll float64, particles *ParticleSystem) {
	adv := dt / e.cfg.CyclePeriod
	if e.blendLeft > 0 {
		step := dt * 0.5 / e.cfg.ToggleBlend
		if step > e.blendLeft {
			step = e.blendLeft
		}
		e.blendLeft -= step
		adv += step
	}
	e.Phase += adv
	e.Phase -= math.Floor(e.Phase)

	for i := range e.Layers {
		l := &e.Layers[i]
		l.X -= scroll * l.Speed * dt
		if l.X < -200 {
			l.X = common.BaseWidth + 50 + e.rng.Float64()*250
			if l.Kind == LayerCloud {
				l.Y = 30 + e.rng.Float64()*130
				l.Scale = 0.8 + e.rng.Float64()*0.6
			}
		}
	}

	if particles == nil {
		return
	}
	if e.IsDay() {
		e.petalAccum += 6 * dt
		for e.petalAccum >= 1 {
			e.petalAccum--
			particles.Emit(ParticlePetal, cp.Vector{X: e.rng.Float64() * common.BaseWidth, Y: -10}, 1)
		}
	} else {
		e.sparkleAccum += 3 * dt
		for e.sparkleAccum >= 1 {
			e.sparkleAccum--
			particles.Emit(ParticleSparkle, cp.Vector{X: e.rng.Float64() * common.BaseWidth, Y: common.BaseHeight}, 1)
		}
	}
}

// AmbientLight returns the light scalar for a phase: 1 at midday, 0 at
// midnight. Pure function of phase.
func AmbientLight(phase float64) float64 {
	return 0.5 + 0.5*math.Sin(2*math.Pi*phase)
}

// SunMoonPos returns the screen position of the sun (day) or moon (night)
// along an arc, as a pure function of phase.
func SunMoonPos(phase float64) (x, y float64) {
	// Progress through the current half-cycle.
	t := math.Mod(phase*2, 1)
	x = common.Lerp(80, common.BaseWidth-80, t)
	y = 160 - 110*math.Sin(math.Pi*t)
	return x, y
}
