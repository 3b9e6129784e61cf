package sim

// Config carries every tuning value the simulation reads. All rates are in
// pixels and seconds so behavior is independent of the render rate. Defaults
// match the tuning shipped in prefabs/tuning.yaml.
type Config struct {
	// Player physics.
	Gravity            float64 // px/s^2, downward positive
	JumpVelocity       float64 // px/s, negative is up
	DoubleJumpVelocity float64
	JumpBufferWindow   float64 // seconds after a jump during which a second press double-jumps

	// Scroll speed curve.
	StartSpeed float64 // px/s
	MaxSpeed   float64
	SpeedRamp  float64 // px/s gained per second, clamped at MaxSpeed

	// Spawning.
	SpawnIntervalMin float64 // seconds, before difficulty scaling
	SpawnIntervalMax float64
	MinIntervalScale float64 // floor for the difficulty interval multiplier
	ReactionTime     float64 // min ground gap = max(MinGapPx, speed*ReactionTime)
	MinGapPx         float64
	BambooCooldown   float64 // seconds between bamboo spawns
	BambooCooldownPx float64 // scroll distance between bamboo spawns
	PowerUpRate      float64 // expected pickups per second
	DragonRampTime   float64 // seconds until dragon weight reaches its ceiling
	MaxDragonMult    float64

	// Power-ups.
	DashDuration      float64 // seconds of BlueDash invincibility
	DashSpeedBonus    float64 // fractional speed bonus while dashing
	TornadoScoreBonus float64

	// Environment.
	CyclePeriod float64 // seconds for a full day+night cycle
	ToggleBlend float64 // seconds to blend the half-cycle jump of a toggle

	// Particles.
	ParticleCap int

	// Score.
	ScorePerSecond float64
	MilestoneEvery int

	// Emission cadence.
	DustPeriod  float64 // seconds between running dust puffs
	FlamePeriod float64 // seconds between dash trail flames
}

// DefaultConfig returns the stock tuning. The original engine ran at a fixed
// 60 fps; per-frame values are converted to per-second here.
func DefaultConfig() *Config {
	return &Config{
		Gravity:            2340, // 0.65 px/frame^2
		JumpVelocity:       -750, // -12.5 px/frame
		DoubleJumpVelocity: -600,
		JumpBufferWindow:   0.35,

		StartSpeed: 360, // 6 px/frame
		MaxSpeed:   960,
		SpeedRamp:  5.4,

		SpawnIntervalMin: 0.9,
		SpawnIntervalMax: 2.0,
		MinIntervalScale: 0.45,
		ReactionTime:     0.55,
		MinGapPx:         140,
		BambooCooldown:   4.0,
		BambooCooldownPx: 300,
		PowerUpRate:      0.18,
		DragonRampTime:   90,
		MaxDragonMult:    2.5,

		DashDuration:      5.0,
		DashSpeedBonus:    0.25,
		TornadoScoreBonus: 50,

		CyclePeriod: 40,
		ToggleBlend: 0.5,

		ParticleCap: 256,

		ScorePerSecond: 12,
		MilestoneEvery: 100,

		DustPeriod:  0.2,
		FlamePeriod: 0.05,
	}
}
