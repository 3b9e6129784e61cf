package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/dragon-runner/sim"
)

// Input translates keyboard state into logical simulation events once per
// frame. Debug keys are dead unless the game runs with -debug.
type Input struct {
	debug bool
}

func NewInput(debug bool) *Input {
	return &Input{debug: debug}
}

// Poll returns this frame's input events in press order.
func (i *Input) Poll() []sim.InputEvent {
	var evs []sim.InputEvent

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) {
		evs = append(evs, sim.InputJumpPressed)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		evs = append(evs, sim.InputDuckPressed)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowDown) || inpututil.IsKeyJustReleased(ebiten.KeyS) {
		evs = append(evs, sim.InputDuckReleased)
	}

	if i.debug {
		if inpututil.IsKeyJustPressed(ebiten.KeyT) {
			evs = append(evs, sim.InputToggleDayNight)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyG) {
			evs = append(evs, sim.InputDebugSpawnDragon)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyH) {
			evs = append(evs, sim.InputToggleHitboxes)
		}
	}

	return evs
}

// PausePressed reports the pause toggle press.
func (i *Input) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// StartPressed reports the menu/restart confirm press.
func (i *Input) StartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
