package sim

import "github.com/milk9111/dragon-runner/common"

// Difficulty is the derived state of the difficulty curve at a point in time.
// Speed and DragonMult never decrease with elapsed time; IntervalScale never
// increases. All three are clamped.
type Difficulty struct {
	Elapsed       float64
	Speed         float64 // scroll speed, px/s
	IntervalScale float64 // multiplies the spawn interval range, in (0, 1]
	DragonMult    float64 // multiplies dragon kind weights, >= 1
}

// DifficultyCurve derives Difficulty from elapsed game time.
type DifficultyCurve struct {
	cfg *Config
}

func NewDifficultyCurve(cfg *Config) DifficultyCurve {
	return DifficultyCurve{cfg: cfg}
}

// At returns the difficulty state after elapsed seconds of play.
func (c DifficultyCurve) At(elapsed float64) Difficulty {
	cfg := c.cfg
	if elapsed < 0 {
		elapsed = 0
	}
	speed := common.Clamp(cfg.StartSpeed+cfg.SpeedRamp*elapsed, cfg.StartSpeed, cfg.MaxSpeed)

	// Interval shrinks in step with the speed ramp.
	frac := 0.0
	if cfg.MaxSpeed > cfg.StartSpeed {
		frac = (speed - cfg.StartSpeed) / (cfg.MaxSpeed - cfg.StartSpeed)
	}
	interval := common.Clamp(1-frac*(1-cfg.MinIntervalScale), cfg.MinIntervalScale, 1)

	ramp := 1.0
	if cfg.DragonRampTime > 0 {
		ramp = common.Clamp(elapsed/cfg.DragonRampTime, 0, 1)
	}
	dragon := common.Clamp(1+(cfg.MaxDragonMult-1)*ramp, 1, cfg.MaxDragonMult)

	return Difficulty{
		Elapsed:       elapsed,
		Speed:         speed,
		IntervalScale: interval,
		DragonMult:    dragon,
	}
}
