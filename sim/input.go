package sim

// InputEvent is a logical input event. Mapping from physical keys happens
// outside the simulation.
type InputEvent int

const (
	InputJumpPressed InputEvent = iota
	InputDuckPressed
	InputDuckReleased
	InputToggleDayNight
	InputDebugSpawnDragon
	InputToggleHitboxes
)

func (e InputEvent) String() string {
	switch e {
	case InputJumpPressed:
		return "jump"
	case InputDuckPressed:
		return "duck"
	case InputDuckReleased:
		return "duck_release"
	case InputToggleDayNight:
		return "toggle_day_night"
	case InputDebugSpawnDragon:
		return "debug_spawn_dragon"
	case InputToggleHitboxes:
		return "toggle_hitboxes"
	default:
		return "?"
	}
}
