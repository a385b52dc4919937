package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"maze-level/internal/game"
	"maze-level/internal/level"
	"maze-level/internal/maps"
	"maze-level/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools validate <maps-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(args[0]))
	case "viz":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools viz <map-file>")
			os.Exit(1)
		}
		runViz(args[0])
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools stats <map-file>")
			os.Exit(1)
		}
		runStats(args[0])
	case "png":
		os.Exit(runPNG(args))
	case "all":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: maptools all <maps-dir>")
			os.Exit(1)
		}
		os.Exit(runAll(args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: maptools <command> <path>

Commands:
  validate <maps-dir>                    Validate all maps in directory
  viz      <map-file>                    Render map as truecolor blocks
  stats    <map-file>                    Show tile distribution and walkable %
  png      [-tile N] [-label S] <map-file> <out.png>   Render map to a PNG
  all      <maps-dir>                    Run validate + viz + stats for all maps`)
}

// loadOrExit reads a map leniently so viz and stats can show unknown codes.
func loadOrExit(path string) *maps.Map {
	m, err := maps.LoadMap(path, maps.Lenient())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return m
}

// --- validate ---

func runValidate(dir string) int {
	allMaps, err := maps.LoadMaps(dir, maps.Lenient())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		return 1
	}

	names := make([]string, 0, len(allMaps))
	for name := range allMaps {
		names = append(names, name)
	}
	sort.Strings(names)

	errors := 0
	for _, name := range names {
		m := allMaps[name]
		g := m.Grid
		fmt.Printf("Validating %q...\n", name)

		mapErrors := 0
		g.Each(func(row, col int, code maps.TileCode) {
			if !code.Known() {
				fmt.Printf("  ERROR: cell (%d,%d) has unknown tile code %d\n", row, col, code)
				mapErrors++
			}
		})

		open := 0
		g.Each(func(row, col int, code maps.TileCode) {
			edge := row == 0 || col == 0 || row == g.RowCount()-1 || col == g.ColCount()-1
			if edge && code != maps.Wall {
				open++
			}
		})
		if open > 0 {
			fmt.Printf("  WARN: %d border cells are not walls\n", open)
		}

		if mapErrors == 0 {
			fmt.Printf("  OK (%d rows x %d cols)\n", g.RowCount(), g.ColCount())
		}
		errors += mapErrors
	}

	if errors > 0 {
		fmt.Printf("\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Printf("\nAll %d maps valid\n", len(allMaps))
	return 0
}

// --- viz ---

// tileBlock returns two truecolor spaces so a cell looks roughly square.
func tileBlock(code maps.TileCode) string {
	c := render.TileColor(code)
	if !code.Known() {
		return fmt.Sprintf("\033[48;2;%d;%d;%dm??\033[0m", c.R, c.G, c.B)
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", c.R, c.G, c.B)
}

func runViz(path string) {
	m := loadOrExit(path)
	g := m.Grid

	fmt.Printf("%s (%d rows x %d cols)\n", m.Name, g.RowCount(), g.ColCount())

	var sb strings.Builder
	g.Each(func(row, col int, code maps.TileCode) {
		sb.WriteString(tileBlock(code))
		if col == g.ColCount()-1 {
			sb.WriteByte('\n')
		}
	})
	fmt.Print(sb.String())
}

// --- stats ---

func runStats(path string) {
	m := loadOrExit(path)
	g := m.Grid
	total := g.RowCount() * g.ColCount()

	fmt.Printf("%s (%dx%d = %d tiles)\n\n", m.Name, g.ColCount(), g.RowCount(), total)

	counts := make(map[maps.TileCode]int)
	walkable := 0
	g.Each(func(row, col int, code maps.TileCode) {
		counts[code]++
		if code.Def().Walkable {
			walkable++
		}
	})

	codes := make([]maps.TileCode, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return counts[codes[i]] > counts[codes[j]] })

	for _, code := range codes {
		pct := float64(counts[code]) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Printf("  %-10s %4d (%5.1f%%) %s\n", code, counts[code], pct, bar)
	}

	fmt.Printf("\nWalkable: %d/%d (%.1f%%)\n", walkable, total, float64(walkable)/float64(total)*100)
}

// --- png ---

func runPNG(args []string) int {
	fs := flag.NewFlagSet("png", flag.ExitOnError)
	tileSize := fs.Int("tile", game.DefaultTileSize, "tile size in pixels")
	label := fs.String("label", "", "label drawn over the level")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: maptools png [-tile N] [-label S] <map-file> <out.png>")
		return 1
	}

	m := loadOrExit(fs.Arg(0))
	l, err := level.New(m.Grid, *tileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sketch := game.NewSketch(l, *label)
	canvas := sketch.NewCanvas()
	sketch.Draw(canvas)

	if err := writePNG(fs.Arg(1), canvas); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Wrote %s (%dx%d px)\n", fs.Arg(1), l.PixelWidth(), l.PixelHeight())
	return 0
}

// writePNG encodes the canvas to path, including any error from closing it.
func writePNG(path string, canvas *render.Raster) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.EncodePNG(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// --- all ---

func runAll(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading directory: %v\n", err)
		return 1
	}

	// Run validate first
	fmt.Println("=== VALIDATE ===")
	code := runValidate(dir)
	if code != 0 {
		return code
	}

	// Then viz + stats for each map
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		fmt.Printf("\n=== VIZ: %s ===\n", entry.Name())
		runViz(path)
		fmt.Printf("\n=== STATS: %s ===\n", entry.Name())
		runStats(path)
	}

	return 0
}
