package main

import (
	"log"
	"math/rand/v2"
	"os"

	"github.com/faiface/beep"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/gfx-demo/internal/config"
	"github.com/iburimskiy/gfx-demo/internal/display"
	"github.com/iburimskiy/gfx-demo/internal/game"
	"github.com/iburimskiy/gfx-demo/internal/sound"
)

func main() {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	cue := sound.New(beep.SampleRate(config.SampleRate), config.ToneDuration, config.ToneVolume)
	if err := cue.Init(); err != nil {
		// Non-fatal, the demo runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer cue.Close()

	scene := game.NewScene(config.WindowWidth, config.WindowHeight, config.BallCount, rng,
		game.WithBounceHandler(func(b game.Bounce) {
			if b.Has(game.BounceX) {
				cue.Click(config.ToneX)
			}
			if b.Has(game.BounceY) {
				cue.Click(config.ToneY)
			}
		}),
	)

	win := display.New(config.WindowTitle, config.WindowWidth, config.WindowHeight)
	driver := game.NewDriver(scene, win)

	log.Printf("Starting %dx%d with %d balls", config.WindowWidth, config.WindowHeight, config.BallCount)
	if err := win.Run(driver.Step); err != nil {
		cue.Close()
		fatal(err)
	}
	log.Printf("Exiting after %d frames", driver.Frames())
}

// fatal reports err in the log and, where a desktop is available, in a
// dialog, then exits.
func fatal(err error) {
	log.Printf("Fatal: %v", err)
	if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
		log.Printf("Error dialog failed: %v", derr)
	}
	os.Exit(1)
}
