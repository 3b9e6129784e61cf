package sim

import (
	"math/rand"
	"testing"
)

func TestSpawnerGroundGapFairness(t *testing.T) {
	cfg := DefaultConfig()
	src := newStubSource()
	rng := rand.New(rand.NewSource(7))
	s := NewSpawner(cfg, src, nil, rng)

	const speed = 600.0
	dt := 1.0 / 60
	minGap := s.MinGroundGap(speed)

	dist := 0.0
	first := true
	groundSpawns := 0
	for i := 0; i < 60*180; i++ {
		dist += speed * dt
		obs, _ := s.Update(dt, Difficulty{IntervalScale: 0.45, DragonMult: 2.5}, speed)
		for _, o := range obs {
			if o.Kind.IsDragon() {
				continue
			}
			groundSpawns++
			if !first && dist < minGap {
				t.Fatalf("ground obstacles %v px apart, want >= %v", dist, minGap)
			}
			first = false
			dist = 0
		}
	}
	if groundSpawns < 20 {
		t.Fatalf("expected a healthy number of ground spawns, got %d", groundSpawns)
	}
}

func TestSpawnerBambooNeverConsecutive(t *testing.T) {
	cfg := DefaultConfig()
	src := newStubSource()
	rng := rand.New(rand.NewSource(11))
	// bamboo-heavy table to force the substitution path
	weights := StaticWeights{ObstacleBamboo: 0.9, ObstacleRock: 0.1}
	s := NewSpawner(cfg, src, weights, rng)

	dt := 1.0 / 60
	prevBamboo := false
	saw := map[ObstacleKind]int{}
	for i := 0; i < 60*300; i++ {
		obs, _ := s.Update(dt, Difficulty{IntervalScale: 1, DragonMult: 1}, 400)
		for _, o := range obs {
			saw[o.Kind]++
			isBamboo := o.Kind == ObstacleBamboo
			if isBamboo && prevBamboo {
				t.Fatalf("two bamboo in a row after %d spawns", saw[ObstacleBamboo])
			}
			prevBamboo = isBamboo
		}
	}
	if saw[ObstacleBamboo] == 0 {
		t.Fatalf("expected some bamboo spawns, table %v", saw)
	}
	if saw[ObstacleRock] == 0 {
		t.Fatalf("expected rock substitutions, table %v", saw)
	}
}

func TestSpawnerDragonBands(t *testing.T) {
	cfg := DefaultConfig()
	src := newStubSource()
	rng := rand.New(rand.NewSource(13))
	weights := StaticWeights{ObstacleDragonRed: 1}
	s := NewSpawner(cfg, src, weights, rng)

	dt := 1.0 / 60
	bands := map[Band]int{}
	for i := 0; i < 60*240; i++ {
		obs, _ := s.Update(dt, Difficulty{IntervalScale: 1, DragonMult: 1}, 400)
		for _, o := range obs {
			if !o.Kind.IsDragon() {
				t.Fatalf("unexpected kind %s with dragon-only weights", o.Kind)
			}
			bands[o.Band]++
		}
	}
	for _, b := range []Band{BandLow, BandMid, BandHigh} {
		if bands[b] == 0 {
			t.Fatalf("band %s never used, distribution %v", b, bands)
		}
	}
	if bands[BandGround] != 0 {
		t.Fatalf("dragons must never spawn in the ground band")
	}
}

func TestSpawnerPowerUps(t *testing.T) {
	cfg := DefaultConfig()
	src := newStubSource()
	rng := rand.New(rand.NewSource(17))
	s := NewSpawner(cfg, src, nil, rng)

	dt := 1.0 / 60
	kinds := map[PowerUpKind]int{}
	for i := 0; i < 60*600; i++ {
		_, pus := s.Update(dt, Difficulty{IntervalScale: 1, DragonMult: 1}, 400)
		for _, pu := range pus {
			kinds[pu.Kind]++
		}
	}
	// expectation is PowerUpRate per second; 600s at 0.18/s ~ 108
	total := kinds[PowerUpBlueDash] + kinds[PowerUpYellowTornado]
	if total < 50 || total > 200 {
		t.Fatalf("power-up count %d far from expectation", total)
	}
	if kinds[PowerUpBlueDash] == 0 || kinds[PowerUpYellowTornado] == 0 {
		t.Fatalf("both ticket kinds should appear, got %v", kinds)
	}
}

func TestSpawnDragonDebug(t *testing.T) {
	cfg := DefaultConfig()
	src := newStubSource()
	s := NewSpawner(cfg, src, nil, rand.New(rand.NewSource(19)))

	for i := 0; i < 20; i++ {
		o := s.SpawnDragon()
		if !o.Kind.IsDragon() {
			t.Fatalf("debug spawn produced %s", o.Kind)
		}
		if o.Band == BandGround {
			t.Fatalf("debug dragon in ground band")
		}
	}
}

func TestPickKindRespectsDragonMult(t *testing.T) {
	cfg := DefaultConfig()
	src := newStubSource()
	rng := rand.New(rand.NewSource(23))
	s := NewSpawner(cfg, src, nil, rng)

	count := func(mult float64) int {
		dragons := 0
		for i := 0; i < 5000; i++ {
			if s.pickKind(Difficulty{DragonMult: mult}).IsDragon() {
				dragons++
			}
		}
		return dragons
	}

	low := count(1)
	high := count(2.5)
	if high <= low {
		t.Fatalf("dragon share should grow with the multiplier, %d vs %d", low, high)
	}
}
