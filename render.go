package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/dragon-runner/assets"
	"github.com/milk9111/dragon-runner/common"
	"github.com/milk9111/dragon-runner/sim"
)

var (
	daySky    = color.NRGBA{135, 206, 235, 255}
	nightSky  = color.NRGBA{18, 24, 48, 255}
	dayGround = color.NRGBA{96, 128, 56, 255}
	sunColor  = color.NRGBA{255, 200, 60, 255}
	moonColor = color.NRGBA{225, 225, 235, 255}
)

func drawWorld(screen *ebiten.Image, snap *sim.Snapshot, lib *assets.Library) {
	drawSky(screen, snap.AmbientLight)
	drawSunMoon(screen, snap)

	for _, l := range snap.Layers {
		drawLayer(screen, l, snap.AmbientLight)
	}

	drawGround(screen, snap.AmbientLight)

	for _, s := range snap.Obstacles {
		drawSprite(screen, lib, s)
	}
	for _, s := range snap.Pickups {
		drawSprite(screen, lib, s)
	}
	drawSprite(screen, lib, snap.Player)

	for _, p := range snap.Particles {
		drawParticle(screen, p)
	}
}

// drawBackdrop paints the menu background before any round exists.
func drawBackdrop(screen *ebiten.Image) {
	drawSky(screen, 1)
	drawGround(screen, 1)
}

func drawSky(screen *ebiten.Image, light float64) {
	screen.Fill(lerpColor(nightSky, daySky, light))
}

func drawGround(screen *ebiten.Image, light float64) {
	g := dimColor(dayGround, 0.35+0.65*light)
	vector.DrawFilledRect(screen, 0, common.GroundY, common.BaseWidth, common.BaseHeight-common.GroundY, g, false)
}

func drawSunMoon(screen *ebiten.Image, snap *sim.Snapshot) {
	c := moonColor
	if snap.IsDay {
		c = sunColor
	}
	vector.DrawFilledCircle(screen, float32(snap.SunX), float32(snap.SunY), 28, c, true)
}

func drawLayer(screen *ebiten.Image, l sim.LayerView, light float64) {
	x, y := float32(l.X), float32(l.Y)
	s := float32(l.Scale)
	switch l.Kind {
	case sim.LayerPagoda:
		body := dimColor(color.NRGBA{70, 50, 60, 255}, 0.4+0.6*light)
		// three stacked tiers, narrowing upward
		vector.DrawFilledRect(screen, x, y+80*s, 120*s, 60*s, body, false)
		vector.DrawFilledRect(screen, x+15*s, y+40*s, 90*s, 40*s, body, false)
		vector.DrawFilledRect(screen, x+30*s, y, 60*s, 40*s, body, false)
	case sim.LayerCloud:
		c := dimColor(color.NRGBA{240, 240, 245, 220}, 0.5+0.5*light)
		vector.DrawFilledCircle(screen, x, y, 22*s, c, true)
		vector.DrawFilledCircle(screen, x+24*s, y-6*s, 18*s, c, true)
		vector.DrawFilledCircle(screen, x+46*s, y, 20*s, c, true)
	case sim.LayerLantern:
		// lanterns glow brighter the darker it gets
		glow := 0.3 + 0.7*(1-light)
		c := dimColor(color.NRGBA{255, 150, 70, 255}, glow)
		vector.DrawFilledCircle(screen, x, y, 10*s, c, true)
	}
}

func drawSprite(screen *ebiten.Image, lib *assets.Library, s sim.SpriteInstance) {
	img := lib.Image(s.Kind, s.Frame)
	op := &ebiten.DrawImageOptions{}
	if s.Rotation != 0 {
		op.GeoM.Translate(-s.W/2, -s.H/2)
		op.GeoM.Rotate(s.Rotation)
		op.GeoM.Translate(s.W/2, s.H/2)
	}
	op.GeoM.Translate(s.X, s.Y)
	screen.DrawImage(img, op)
}

func drawParticle(screen *ebiten.Image, p sim.ParticleView) {
	var c color.NRGBA
	switch p.Kind {
	case sim.ParticleDust:
		c = color.NRGBA{200, 190, 170, 255}
	case sim.ParticlePetal:
		c = color.NRGBA{255, 170, 200, 255}
	case sim.ParticleSparkle:
		c = color.NRGBA{255, 255, 210, 255}
	case sim.ParticleDebris:
		c = color.NRGBA{130, 125, 120, 255}
	case sim.ParticleFlame:
		c = color.NRGBA{255, 140, 40, 255}
	}
	a := common.Clamp(p.Alpha, 0, 1)
	c.A = uint8(a * 255)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), c, true)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = common.Clamp(t, 0, 1)
	return color.NRGBA{
		R: uint8(common.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(common.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(common.Lerp(float64(a.B), float64(b.B), t)),
		A: 255,
	}
}

func dimColor(c color.NRGBA, f float64) color.NRGBA {
	f = common.Clamp(f, 0, 1)
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
