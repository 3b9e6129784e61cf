package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dragon-runner/assets"
	"github.com/milk9111/dragon-runner/audio"
	"github.com/milk9111/dragon-runner/common"
	"github.com/milk9111/dragon-runner/prefabs"
	"github.com/milk9111/dragon-runner/sim"
)

type gameMode int

const (
	modeMenu gameMode = iota
	modePlaying
	modePaused
	modeGameOver
)

type Game struct {
	mode gameMode

	cfg      *sim.Config
	lib      *assets.Library
	sounds   *audio.Manager
	director *prefabs.Director
	input    *Input
	world    *sim.World

	seed    int64
	rounds  int64
	hiScore int
	debug   bool

	watcher *prefabs.Watcher

	menuUI     *ebitenui.UI
	pauseUI    *ebitenui.UI
	gameOverUI *ebitenui.UI
}

func NewGame(debug, mute bool, seed int64) *Game {
	cfg, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("tuning: %v (using stock values)", err)
		cfg = sim.DefaultConfig()
	}

	g := &Game{
		cfg:      cfg,
		lib:      assets.NewLibrary(),
		sounds:   audio.NewManager(nil),
		director: prefabs.NewDirector(),
		input:    NewInput(debug),
		seed:     seed,
		hiScore:  LoadHighScore(),
		debug:    debug,
	}
	g.sounds.SetMuted(mute)
	g.menuUI = NewMenuUI(g)
	g.pauseUI = NewPauseUI(g)
	g.gameOverUI = NewGameOverUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("watch: %v (hot reload disabled)", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

func (g *Game) startRound() {
	g.rounds++
	g.world = sim.NewWorld(g.cfg, g.lib, g.director, g.seed+g.rounds)
	g.mode = modePlaying
}

func (g *Game) endRound() {
	if s := g.world.Score(); s > g.hiScore {
		g.hiScore = s
		if err := SaveHighScore(s); err != nil {
			log.Printf("highscore: %v", err)
		}
	}
	g.mode = modeGameOver
}

func (g *Game) Update() error {
	g.pollReload()

	switch g.mode {
	case modeMenu:
		g.menuUI.Update()
		if g.input.StartPressed() {
			g.startRound()
		}
	case modePlaying:
		if g.input.PausePressed() {
			g.mode = modePaused
			return nil
		}
		dt := 1.0 / float64(ebiten.TPS())
		for _, ev := range g.input.Poll() {
			g.world.HandleInput(ev)
		}
		g.world.Update(dt)
		for _, ev := range g.world.Events().Drain() {
			g.sounds.Play(soundFor(ev))
		}
		if g.world.GameOver() {
			g.endRound()
		}
	case modePaused:
		// the world is frozen but stays drawable
		g.pauseUI.Update()
		if g.input.PausePressed() {
			g.mode = modePlaying
		}
	case modeGameOver:
		g.gameOverUI.Update()
		if g.input.StartPressed() {
			g.startRound()
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.world != nil {
		snap := g.world.Snapshot()
		drawWorld(screen, &snap, g.lib)
		drawHUD(screen, &snap, g.hiScore, g.debug)
	} else {
		drawBackdrop(screen)
	}

	switch g.mode {
	case modeMenu:
		g.menuUI.Draw(screen)
	case modePaused:
		g.pauseUI.Draw(screen)
	case modeGameOver:
		g.gameOverUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// pollReload applies edited tuning and scripts during a debug run.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		cfg, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("reload tuning: %v", err)
			return
		}
		// The live world holds a pointer to the config, so copying in place
		// applies the new values mid-round.
		*g.cfg = *cfg
		log.Printf("reloaded %s", name)
	case ".tengo":
		if err := g.director.Reload(); err != nil {
			log.Printf("reload director: %v", err)
			return
		}
		log.Printf("reloaded %s", name)
	}
}

func soundFor(ev sim.EventKind) audio.SoundType {
	switch ev {
	case sim.EventJump:
		return audio.SoundJump
	case sim.EventDoubleJump:
		return audio.SoundDoubleJump
	case sim.EventSlash:
		return audio.SoundSlash
	case sim.EventHit:
		return audio.SoundHit
	case sim.EventPowerUp:
		return audio.SoundPowerUp
	default:
		return audio.SoundMilestone
	}
}
