package audio

// SampleRate is the synthesis and playback rate in Hz.
const SampleRate = 22050

// SoundType identifies one synthesized effect.
type SoundType int

const (
	SoundJump SoundType = iota
	SoundDoubleJump
	SoundSlash
	SoundHit
	SoundPowerUp
	SoundMilestone
	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundJump:
		return "jump"
	case SoundDoubleJump:
		return "double_jump"
	case SoundSlash:
		return "slash"
	case SoundHit:
		return "hit"
	case SoundPowerUp:
		return "power_up"
	case SoundMilestone:
		return "milestone"
	default:
		return "?"
	}
}
