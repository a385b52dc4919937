package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"maze-level/internal/ebitenhost"
	"maze-level/internal/game"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	mapPath := flag.String("map", "", "JSON map file (default: built-in maze)")
	tileSize := flag.Int("tile", game.DefaultTileSize, "tile size in pixels")
	fps := flag.Int("fps", game.DefaultFPS, "redraw rate in frames per second")
	label := flag.String("label", game.DefaultLabel, "label drawn with the level")
	lenient := flag.Bool("lenient", false, "accept tile codes outside the tile set")
	flag.Parse()

	sketch, name, err := game.Setup(game.Config{
		MapPath:  *mapPath,
		TileSize: *tileSize,
		Label:    *label,
		Lenient:  *lenient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("setup level")
	}

	if err := ebitenhost.Run(sketch, name, *fps); err != nil {
		log.Fatal().Err(err).Msg("window")
	}
}
