// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package distfield

import (
	"math"

	"github.com/gazed/atlas/raster"
)

// offset is a sweep-relaxation candidate neighbour and its Euclidean length.
type offset struct {
	dx, dy int
	length float64
}

// forwardOffsets and backwardOffsets implement spec §4.2 step 3/4: the
// backward pass is the point-reflection of the forward one, swept in
// reverse raster order.
var forwardOffsets = []offset{{-1, -1, math.Sqrt2}, {0, -1, 1}, {1, -1, math.Sqrt2}, {-1, 0, 1}}
var backwardOffsets = []offset{{1, 1, math.Sqrt2}, {0, 1, 1}, {-1, 1, math.Sqrt2}, {1, 0, 1}}

// DeadReckoning is an approximate signed Euclidean distance transform: a
// two-pass propagation sweep that tracks, per pixel, the nearest boundary
// position found so far.
type DeadReckoning struct{}

// Compute implements Transform.
func (DeadReckoning) Compute(input *raster.Image) (*raster.Image, error) {
	w, h := input.Width(), input.Height()
	out, err := newOutput(w, h)
	if err != nil {
		return nil, err
	}

	posX := make([]int32, w*h)
	posY := make([]int32, w*h)
	dist := make([]float64, w*h)
	idx := func(x, y uint32) int { return int(y*w + x) }

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			i := idx(x, y)
			posX[i], posY[i] = int32(x), int32(y)
			if isBoundary(input, x, y, w, h) {
				dist[i] = 0
			} else {
				dist[i] = math.Inf(1)
			}
		}
	}

	relax := func(x, y uint32, off offset) {
		tx, ty := int(x)+off.dx, int(y)+off.dy
		if tx < 0 || ty < 0 || tx >= int(w) || ty >= int(h) {
			return
		}
		p, t := idx(x, y), idx(uint32(tx), uint32(ty))
		if dist[t]+off.length < dist[p] {
			posX[p], posY[p] = posX[t], posY[t]
			ddx := float64(x) - float64(posX[p])
			ddy := float64(y) - float64(posY[p])
			dist[p] = math.Hypot(ddx, ddy)
		}
	}

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			for _, off := range forwardOffsets {
				relax(x, y, off)
			}
		}
	}
	for y := h; y > 0; y-- {
		for x := w; x > 0; x-- {
			for _, off := range backwardOffsets {
				relax(x-1, y-1, off)
			}
		}
	}

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			v := float32(dist[idx(x, y)])
			if foreground(input, x, y) {
				v = -v
			}
			out.PutFloat32(x, y, v)
		}
	}
	return out, nil
}

// isBoundary reports whether p differs in foreground/background status
// from at least one in-grid 4-neighbour, per spec.md's Open Question
// resolution: 4-neighbours only, never 8.
func isBoundary(input *raster.Image, x, y, w, h uint32) bool {
	self := foreground(input, x, y)
	type nb struct{ dx, dy int }
	for _, n := range []nb{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nx, ny := int(x)+n.dx, int(y)+n.dy
		if nx < 0 || ny < 0 || nx >= int(w) || ny >= int(h) {
			continue
		}
		if foreground(input, uint32(nx), uint32(ny)) != self {
			return true
		}
	}
	return false
}
