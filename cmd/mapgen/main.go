package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"maze-level/internal/maps"
)

var generators = map[string]func(rows, cols int, seed int64) [][]int{
	"maze": generateMaze,
	"cave": generateCave,
}

func main() {
	genType := flag.String("type", "maze", "generator type (maze, cave)")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	size := flag.String("size", "16x11", "map size as WxH in tiles")
	name := flag.String("name", "", "map name (default: generator type)")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	gen, ok := generators[*genType]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown generator type %q (available: maze, cave)\n", *genType)
		os.Exit(1)
	}

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *name == "" {
		*name = *genType
	}

	fmt.Fprintf(os.Stderr, "Generating %dx%d %s map %q (seed %d)...\n", w, h, *genType, *name, *seed)

	grid, err := maps.NewTileGrid(gen(h, w, *seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: generated grid is invalid: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if err := maps.EncodeMap(&buf, &maps.Map{Name: *name, Grid: grid}); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding map: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(buf.Bytes())
	} else {
		if err := os.WriteFile(*out, buf.Bytes(), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", *out, buf.Len())
	}

	total := grid.RowCount() * grid.ColCount()
	fmt.Fprintf(os.Stderr, "\nTile distribution:\n")
	for _, def := range maps.Tiles {
		c := grid.Count(def.Code)
		fmt.Fprintf(os.Stderr, "  %-8s %5d (%5.1f%%)\n", def.Name, c, float64(c)/float64(total)*100)
	}
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 5 {
		return 0, 0, fmt.Errorf("invalid width %q (minimum 5)", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 5 {
		return 0, 0, fmt.Errorf("invalid height %q (minimum 5)", parts[1])
	}
	return w, h, nil
}
