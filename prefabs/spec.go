package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/dragon-runner/sim"
)

// TuningSpec is the yaml shape of prefabs/tuning.yaml. Zero fields fall back
// to the stock value, so a partial file only overrides what it names.
type TuningSpec struct {
	Physics struct {
		Gravity            float64 `yaml:"gravity"`
		JumpVelocity       float64 `yaml:"jump_velocity"`
		DoubleJumpVelocity float64 `yaml:"double_jump_velocity"`
		JumpBufferWindow   float64 `yaml:"jump_buffer_window"`
	} `yaml:"physics"`

	Speed struct {
		Start float64 `yaml:"start"`
		Max   float64 `yaml:"max"`
		Ramp  float64 `yaml:"ramp"`
	} `yaml:"speed"`

	Spawning struct {
		IntervalMin      float64 `yaml:"interval_min"`
		IntervalMax      float64 `yaml:"interval_max"`
		MinIntervalScale float64 `yaml:"min_interval_scale"`
		ReactionTime     float64 `yaml:"reaction_time"`
		MinGapPx         float64 `yaml:"min_gap_px"`
		BambooCooldown   float64 `yaml:"bamboo_cooldown"`
		BambooCooldownPx float64 `yaml:"bamboo_cooldown_px"`
		PowerUpRate      float64 `yaml:"power_up_rate"`
		DragonRampTime   float64 `yaml:"dragon_ramp_time"`
		MaxDragonMult    float64 `yaml:"max_dragon_mult"`
	} `yaml:"spawning"`

	PowerUps struct {
		DashDuration      float64 `yaml:"dash_duration"`
		DashSpeedBonus    float64 `yaml:"dash_speed_bonus"`
		TornadoScoreBonus float64 `yaml:"tornado_score_bonus"`
	} `yaml:"power_ups"`

	Environment struct {
		CyclePeriod float64 `yaml:"cycle_period"`
		ToggleBlend float64 `yaml:"toggle_blend"`
	} `yaml:"environment"`

	Particles struct {
		Cap int `yaml:"cap"`
	} `yaml:"particles"`

	Score struct {
		PerSecond      float64 `yaml:"per_second"`
		MilestoneEvery int     `yaml:"milestone_every"`
	} `yaml:"score"`
}

// LoadTuning reads tuning.yaml and merges it over the stock config.
func LoadTuning() (*sim.Config, error) {
	data, err := Load("tuning.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load tuning.yaml: %w", err)
	}

	var spec TuningSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal tuning.yaml: %w", err)
	}

	cfg := spec.ToConfig()
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("prefabs: tuning.yaml: %w", err)
	}
	return cfg, nil
}

// ToConfig merges the spec over DefaultConfig. Only non-zero fields override.
func (s *TuningSpec) ToConfig() *sim.Config {
	cfg := sim.DefaultConfig()

	setF(&cfg.Gravity, s.Physics.Gravity)
	setF(&cfg.JumpVelocity, s.Physics.JumpVelocity)
	setF(&cfg.DoubleJumpVelocity, s.Physics.DoubleJumpVelocity)
	setF(&cfg.JumpBufferWindow, s.Physics.JumpBufferWindow)

	setF(&cfg.StartSpeed, s.Speed.Start)
	setF(&cfg.MaxSpeed, s.Speed.Max)
	setF(&cfg.SpeedRamp, s.Speed.Ramp)

	setF(&cfg.SpawnIntervalMin, s.Spawning.IntervalMin)
	setF(&cfg.SpawnIntervalMax, s.Spawning.IntervalMax)
	setF(&cfg.MinIntervalScale, s.Spawning.MinIntervalScale)
	setF(&cfg.ReactionTime, s.Spawning.ReactionTime)
	setF(&cfg.MinGapPx, s.Spawning.MinGapPx)
	setF(&cfg.BambooCooldown, s.Spawning.BambooCooldown)
	setF(&cfg.BambooCooldownPx, s.Spawning.BambooCooldownPx)
	setF(&cfg.PowerUpRate, s.Spawning.PowerUpRate)
	setF(&cfg.DragonRampTime, s.Spawning.DragonRampTime)
	setF(&cfg.MaxDragonMult, s.Spawning.MaxDragonMult)

	setF(&cfg.DashDuration, s.PowerUps.DashDuration)
	setF(&cfg.DashSpeedBonus, s.PowerUps.DashSpeedBonus)
	setF(&cfg.TornadoScoreBonus, s.PowerUps.TornadoScoreBonus)

	setF(&cfg.CyclePeriod, s.Environment.CyclePeriod)
	setF(&cfg.ToggleBlend, s.Environment.ToggleBlend)

	if s.Particles.Cap != 0 {
		cfg.ParticleCap = s.Particles.Cap
	}

	setF(&cfg.ScorePerSecond, s.Score.PerSecond)
	if s.Score.MilestoneEvery != 0 {
		cfg.MilestoneEvery = s.Score.MilestoneEvery
	}

	return cfg
}

func setF(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

// Validate rejects tuning that the simulation cannot run with.
func Validate(cfg *sim.Config) error {
	switch {
	case cfg.Gravity <= 0:
		return fmt.Errorf("gravity must be positive, got %v", cfg.Gravity)
	case cfg.JumpVelocity >= 0:
		return fmt.Errorf("jump_velocity must be negative (up), got %v", cfg.JumpVelocity)
	case cfg.DoubleJumpVelocity >= 0:
		return fmt.Errorf("double_jump_velocity must be negative (up), got %v", cfg.DoubleJumpVelocity)
	case cfg.StartSpeed <= 0 || cfg.MaxSpeed < cfg.StartSpeed:
		return fmt.Errorf("speed range %v..%v is invalid", cfg.StartSpeed, cfg.MaxSpeed)
	case cfg.SpawnIntervalMin <= 0 || cfg.SpawnIntervalMax < cfg.SpawnIntervalMin:
		return fmt.Errorf("spawn interval %v..%v is invalid", cfg.SpawnIntervalMin, cfg.SpawnIntervalMax)
	case cfg.MinIntervalScale <= 0 || cfg.MinIntervalScale > 1:
		return fmt.Errorf("min_interval_scale must be in (0,1], got %v", cfg.MinIntervalScale)
	case cfg.MaxDragonMult < 1:
		return fmt.Errorf("max_dragon_mult must be >= 1, got %v", cfg.MaxDragonMult)
	case cfg.DashDuration <= 0:
		return fmt.Errorf("dash_duration must be positive, got %v", cfg.DashDuration)
	case cfg.CyclePeriod <= 0:
		return fmt.Errorf("cycle_period must be positive, got %v", cfg.CyclePeriod)
	case cfg.ParticleCap <= 0:
		return fmt.Errorf("particle cap must be positive, got %v", cfg.ParticleCap)
	}
	return nil
}
