package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/dragon-runner/common"
	"github.com/milk9111/dragon-runner/sim"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func drawHUD(screen *ebiten.Image, snap *sim.Snapshot, hiScore int, debug bool) {
	drawText(screen, fmt.Sprintf("SCORE %d", snap.Score), 16, 16)
	drawText(screen, fmt.Sprintf("BEST  %d", hiScore), 16, 34)

	if snap.Invincible {
		// dash meter drains right to left
		frac := common.Clamp(snap.DashRemaining/snap.DashDuration, 0, 1)
		vector.DrawFilledRect(screen, 16, 56, 120, 8, color.NRGBA{40, 40, 60, 200}, false)
		vector.DrawFilledRect(screen, 16, 56, float32(120*frac), 8, color.NRGBA{80, 180, 255, 255}, false)
	}
	if snap.TornadoReady {
		vector.DrawFilledCircle(screen, 150, 60, 8, color.NRGBA{255, 210, 60, 255}, true)
	}

	if snap.ShowHitboxes {
		for _, r := range snap.Hitboxes {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, color.NRGBA{255, 0, 0, 255}, false)
		}
	}

	if debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("fps %.1f  speed %.0f  state %s", ebiten.ActualFPS(), snap.Speed, snap.PlayerState), 16, common.BaseHeight-24)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, s, hudFace, op)
}
