package main

import (
	"flag"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"maze-level/internal/game"
	"maze-level/internal/render"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	mapPath := flag.String("map", "", "JSON map file (default: built-in maze)")
	tileSize := flag.Int("tile", game.DefaultTileSize, "tile size in pixels")
	fps := flag.Int("fps", game.DefaultFPS, "redraw rate in frames per second")
	label := flag.String("label", game.DefaultLabel, "label shown under the level")
	lenient := flag.Bool("lenient", false, "accept tile codes outside the tile set")
	flag.Parse()

	sketch, _, err := game.Setup(game.Config{
		MapPath:  *mapPath,
		TileSize: *tileSize,
		Label:    *label,
		Lenient:  *lenient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("setup level")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("open terminal")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("init terminal")
	}
	defer screen.Fini()

	run(screen, sketch, *fps)
}

// run redraws on every loop frame until a quit key arrives.
func run(screen tcell.Screen, sketch *game.Sketch, fps int) {
	loop := game.NewLoop(fps)
	_, frames := loop.Subscribe()
	go loop.Run()
	defer loop.Stop()

	quitCh := make(chan struct{})
	go func() {
		defer close(quitCh)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return
				}
			}
		}
	}()

	canvas := sketch.NewCanvas()
	for {
		select {
		case <-quitCh:
			return
		case _, ok := <-frames:
			if !ok {
				return
			}
			sketch.DrawScene(canvas)
			render.Present(screen, canvas, sketch.Label)
		}
	}
}
