package main

import (
	"math/rand"

	"maze-level/internal/maps"
)

const (
	floor = int(maps.Floor)
	wall  = int(maps.Wall)
)

type point struct{ row, col int }

var directions = [4]point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func filled(rows, cols, code int) [][]int {
	tiles := make([][]int, rows)
	for r := range tiles {
		tiles[r] = make([]int, cols)
		for c := range tiles[r] {
			tiles[r][c] = code
		}
	}
	return tiles
}

// generateMaze carves a perfect maze with a randomized depth-first search.
// Rooms sit on odd coordinates; even dimensions lose their last row/column.
func generateMaze(rows, cols int, seed int64) [][]int {
	rows -= 1 - rows%2
	cols -= 1 - cols%2
	rng := rand.New(rand.NewSource(seed))
	tiles := filled(rows, cols, wall)

	start := point{1, 1}
	tiles[start.row][start.col] = floor
	stack := []point{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var options []point
		for _, d := range directions {
			next := point{cur.row + 2*d.row, cur.col + 2*d.col}
			if next.row > 0 && next.row < rows-1 && next.col > 0 && next.col < cols-1 && tiles[next.row][next.col] == wall {
				options = append(options, d)
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := options[rng.Intn(len(options))]
		tiles[cur.row+d.row][cur.col+d.col] = floor
		next := point{cur.row + 2*d.row, cur.col + 2*d.col}
		tiles[next.row][next.col] = floor
		stack = append(stack, next)
	}
	return tiles
}

// generateCave thresholds fractal noise into rock and open floor, walls the
// border, then keeps only the largest open region.
func generateCave(rows, cols int, seed int64) [][]int {
	noise := newSimplex(seed)
	tiles := make([][]int, rows)
	for r := range tiles {
		tiles[r] = make([]int, cols)
		for c := range tiles[r] {
			edge := r == 0 || c == 0 || r == rows-1 || c == cols-1
			if edge || noise.fractal(float64(c), float64(r), 0.08, 3) > 0.55 {
				tiles[r][c] = wall
			}
		}
	}

	// Fill every open region except the largest
	seen := make(map[point]bool)
	var regions []map[point]bool
	largest := -1
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := point{r, c}
			if tiles[r][c] != floor || seen[p] {
				continue
			}
			region := floodFill(tiles, p)
			for q := range region {
				seen[q] = true
			}
			regions = append(regions, region)
			if largest < 0 || len(region) > len(regions[largest]) {
				largest = len(regions) - 1
			}
		}
	}
	for i, region := range regions {
		if i == largest {
			continue
		}
		for p := range region {
			tiles[p.row][p.col] = wall
		}
	}
	return tiles
}

// floodFill returns the set of floor tiles reachable from start.
func floodFill(tiles [][]int, start point) map[point]bool {
	region := map[point]bool{start: true}
	stack := []point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range directions {
			np := point{p.row + d.row, p.col + d.col}
			if np.row < 0 || np.row >= len(tiles) || np.col < 0 || np.col >= len(tiles[0]) {
				continue
			}
			if region[np] || tiles[np.row][np.col] != floor {
				continue
			}
			region[np] = true
			stack = append(stack, np)
		}
	}
	return region
}
