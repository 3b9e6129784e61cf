package sim

import (
	"math/rand"

	"github.com/milk9111/dragon-runner/common"
)

// WeightSource supplies the base spawn weight per obstacle kind for the
// current difficulty. The spawner applies the dragon frequency multiplier on
// top, so every source honors the difficulty curve.
type WeightSource interface {
	Weights(d Difficulty) map[ObstacleKind]float64
}

// StaticWeights is a fixed weight table.
type StaticWeights map[ObstacleKind]float64

func (w StaticWeights) Weights(Difficulty) map[ObstacleKind]float64 {
	return w
}

// DefaultWeights mirrors the stock distribution: rock .25, barrel .20,
// bamboo .20, dragons .25 split 5:4:1 red:green:black, boulder .10.
func DefaultWeights() StaticWeights {
	return StaticWeights{
		ObstacleRock:        0.25,
		ObstacleBarrel:      0.20,
		ObstacleBamboo:      0.20,
		ObstacleBoulder:     0.10,
		ObstacleDragonRed:   0.125,
		ObstacleDragonGreen: 0.10,
		ObstacleDragonBlack: 0.025,
	}
}

// Spawner procedurally schedules obstacles and power-up tickets. It owns the
// countdown to the next spawn and enforces the fairness invariant: two ground
// obstacles are never scheduled closer than the reaction gap for the current
// scroll speed.
type Spawner struct {
	cfg     *Config
	rng     *rand.Rand
	src     FrameSource
	weights WeightSource

	countdown float64
	// sinceGroundPx accumulates scroll distance since the last ground spawn.
	sinceGroundPx float64
	sinceBambooPx float64
	lastKind      ObstacleKind
	haveLast      bool
	lastBambooAt  float64
	elapsed       float64
}

func NewSpawner(cfg *Config, src FrameSource, weights WeightSource, rng *rand.Rand) *Spawner {
	if weights == nil {
		weights = DefaultWeights()
	}
	s := &Spawner{
		cfg:          cfg,
		rng:          rng,
		src:          src,
		weights:      weights,
		lastBambooAt: -1e9,
	}
	s.sinceGroundPx = 1e9
	s.sinceBambooPx = 1e9
	s.countdown = s.nextInterval(Difficulty{IntervalScale: 1})
	return s
}

// Update advances the spawn countdown and returns any entities spawned this
// frame. speed is the effective scroll speed in px/s.
func (s *Spawner) Update(dt float64, d Difficulty, speed float64) ([]*Obstacle, []*PowerUp) {
	s.elapsed += dt
	s.sinceGroundPx += speed * dt
	s.sinceBambooPx += speed * dt

	var obs []*Obstacle
	var pus []*PowerUp

	s.countdown -= dt
	if s.countdown <= 0 {
		if o := s.spawnOne(d, speed); o != nil {
			obs = append(obs, o)
			s.countdown = s.nextInterval(d)
		} else {
			// Fairness gap not yet open; retry shortly rather than bunching.
			s.countdown = 0.1
		}
	}

	if s.rng.Float64() < s.cfg.PowerUpRate*dt {
		kind := PowerUpBlueDash
		if s.rng.Intn(2) == 1 {
			kind = PowerUpYellowTornado
		}
		pus = append(pus, newPowerUp(kind, common.BaseWidth, s.src))
	}

	return obs, pus
}

func (s *Spawner) nextInterval(d Difficulty) float64 {
	lo, hi := s.cfg.SpawnIntervalMin, s.cfg.SpawnIntervalMax
	return (lo + s.rng.Float64()*(hi-lo)) * d.IntervalScale
}

// MinGroundGap returns the minimum horizontal distance between consecutive
// ground obstacles for the given scroll speed.
func (s *Spawner) MinGroundGap(speed float64) float64 {
	gap := speed * s.cfg.ReactionTime
	if gap < s.cfg.MinGapPx {
		gap = s.cfg.MinGapPx
	}
	return gap
}

func (s *Spawner) spawnOne(d Difficulty, speed float64) *Obstacle {
	kind := s.pickKind(d)

	if !kind.IsDragon() && s.sinceGroundPx < s.MinGroundGap(speed) {
		return nil
	}

	// Bamboo needs a standing jump window: never twice in a row, and both a
	// time and a distance cooldown.
	if kind == ObstacleBamboo {
		tooSoon := s.elapsed-s.lastBambooAt < s.cfg.BambooCooldown
		tooClose := s.sinceBambooPx < s.cfg.BambooCooldownPx
		if (s.haveLast && s.lastKind == ObstacleBamboo) || tooSoon || tooClose {
			kind = ObstacleRock
		}
	}

	band := BandGround
	if kind.IsDragon() {
		band = Band(1 + s.rng.Intn(3)) // uniform over Low/Mid/High
	}

	o := newObstacle(kind, band, common.BaseWidth, s.src)
	if kind == ObstacleBamboo {
		s.lastBambooAt = s.elapsed
		s.sinceBambooPx = 0
	}
	if !kind.IsDragon() {
		s.sinceGroundPx = 0
	}
	s.lastKind = kind
	s.haveLast = true
	return o
}

func (s *Spawner) pickKind(d Difficulty) ObstacleKind {
	base := s.weights.Weights(d)
	total := 0.0
	weighted := make([]float64, ObstacleKindCount)
	for k := ObstacleKind(0); k < ObstacleKindCount; k++ {
		w := base[k]
		if w <= 0 {
			continue
		}
		if k.IsDragon() {
			w *= d.DragonMult
		}
		weighted[k] = w
		total += w
	}
	if total <= 0 {
		return ObstacleRock
	}
	r := s.rng.Float64() * total
	for k := ObstacleKind(0); k < ObstacleKindCount; k++ {
		r -= weighted[k]
		if r < 0 {
			return k
		}
	}
	return ObstacleRock
}

// SpawnDragon force-spawns a dragon just off the right edge. Debug only.
func (s *Spawner) SpawnDragon() *Obstacle {
	kinds := []ObstacleKind{ObstacleDragonRed, ObstacleDragonGreen, ObstacleDragonBlack}
	kind := kinds[s.rng.Intn(len(kinds))]
	band := Band(1 + s.rng.Intn(3))
	return newObstacle(kind, band, common.BaseWidth+10, s.src)
}
