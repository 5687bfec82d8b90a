// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package distfield

import (
	"math"

	"github.com/gazed/atlas/raster"
)

// backgroundSquared stands in for +inf in the squared-distance domain; the
// original source uses 1e20, large enough that no real image distance
// will reach it but small enough to stay finite in float64 arithmetic.
const backgroundSquared = 1e20

// Parabola is the exact Felzenszwalb-Huttenlocher Euclidean distance
// transform: two 1-D lower-envelope-of-parabolas passes (rows, then
// columns) on squared distances, square-rooted on emission. Distances are
// measured to the nearest foreground pixel that has a background
// 4-neighbour, so such edge pixels read 0 and deeper foreground pixels
// read a negative distance.
type Parabola struct{}

// Compute implements Transform.
func (Parabola) Compute(input *raster.Image) (*raster.Image, error) {
	w, h := input.Width(), input.Height()
	out, err := newOutput(w, h)
	if err != nil {
		return nil, err
	}

	grid := make([][]float64, h)
	for y := uint32(0); y < h; y++ {
		row := make([]float64, w)
		for x := uint32(0); x < w; x++ {
			if foreground(input, x, y) && isBoundary(input, x, y, w, h) {
				row[x] = 0
			} else {
				row[x] = backgroundSquared
			}
		}
		grid[y] = envelope1D(row)
	}

	for x := uint32(0); x < w; x++ {
		col := make([]float64, h)
		for y := uint32(0); y < h; y++ {
			col[y] = grid[y][x]
		}
		col = envelope1D(col)
		for y := uint32(0); y < h; y++ {
			v := float32(math.Sqrt(col[y]))
			if foreground(input, x, y) {
				v = -v
			}
			out.PutFloat32(x, y, v)
		}
	}
	return out, nil
}

// envelope1D is the 1-D squared-distance lower envelope transform of
// spec.md §4.3: a single sweep builds the envelope of parabolas rooted at
// each sample, a second sweep reads off the minimum at every position.
func envelope1D(f []float64) []float64 {
	n := len(f)
	apex := make([]int, n)
	rng := make([]float64, n+1)
	apex[0] = 0
	rng[0] = math.Inf(-1)
	rng[1] = math.Inf(1)

	k := 0
	for q := 1; q < n; q++ {
		s := intersection(f, q, apex[k])
		for s <= rng[k] {
			k--
			s = intersection(f, q, apex[k])
		}
		k++
		apex[k] = q
		rng[k] = s
		rng[k+1] = math.Inf(1)
	}

	out := make([]float64, n)
	k = 0
	for q := 0; q < n; q++ {
		for rng[k+1] < float64(q) {
			k++
		}
		d := float64(q - apex[k])
		out[q] = d*d + f[apex[k]]
	}
	return out
}

// intersection returns the x-coordinate where the parabolas rooted at q
// and at apex (in f's squared-distance domain) cross.
func intersection(f []float64, q, apex int) float64 {
	return ((f[q] + float64(q*q)) - (f[apex] + float64(apex*apex))) / (2 * float64(q-apex))
}
