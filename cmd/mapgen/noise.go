package main

import (
	"math"
	"math/rand"
)

// simplex generates 2D simplex noise with a seed-shuffled permutation table.
type simplex struct {
	perm [512]int
}

func newSimplex(seed int64) *simplex {
	sn := &simplex{}
	r := rand.New(rand.NewSource(seed))

	p := r.Perm(256)
	for i := 0; i < 512; i++ {
		sn.perm[i] = p[i&255]
	}
	return sn
}

const (
	skewF2   = 0.3660254037844386  // (sqrt(3) - 1) / 2
	unskewG2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

func gradDot(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// at returns noise in [-1, 1].
func (sn *simplex) at(x, y float64) float64 {
	s := (x + y) * skewF2
	i, j := math.Floor(x+s), math.Floor(y+s)
	t := (i + j) * unskewG2

	// corner offsets: origin, middle (depends on the triangle), far
	x0, y0 := x-(i-t), y-(j-t)
	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	corners := [3][2]float64{
		{x0, y0},
		{x0 - float64(i1) + unskewG2, y0 - float64(j1) + unskewG2},
		{x0 - 1 + 2*unskewG2, y0 - 1 + 2*unskewG2},
	}

	ii, jj := int(i)&255, int(j)&255
	hashes := [3]int{
		sn.perm[ii+sn.perm[jj]],
		sn.perm[ii+i1+sn.perm[jj+j1]],
		sn.perm[ii+1+sn.perm[jj+1]],
	}

	var sum float64
	for k, c := range corners {
		falloff := 0.5 - c[0]*c[0] - c[1]*c[1]
		if falloff > 0 {
			falloff *= falloff
			sum += falloff * falloff * gradDot(hashes[k], c[0], c[1])
		}
	}
	return 70 * sum
}

// fractal sums octaves of noise and normalizes to [0, 1].
func (sn *simplex) fractal(x, y, freq float64, octaves int) float64 {
	var total, maxAmp float64
	amp := 1.0
	for o := 0; o < octaves; o++ {
		total += sn.at(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= 2
		amp *= 0.5
	}
	return math.Max(0, math.Min(1, (total/maxAmp+1)/2))
}
