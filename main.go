package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dragon-runner/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug keys and hot reload")
	mute := flag.Bool("mute", false, "disable audio")
	seed := flag.Int64("seed", 0, "spawn RNG seed (0 uses the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("dragon runner")

	game := NewGame(*debug, *mute, *seed)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
