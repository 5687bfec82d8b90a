// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package distfield computes signed Euclidean distance fields from 1-bit
// foreground/background masks, using either an approximate sweep-based
// algorithm (Dead Reckoning) or the exact Felzenszwalb-Huttenlocher
// parabola-envelope algorithm.
package distfield

import "github.com/gazed/atlas/raster"

// Transform computes a signed distance field from a 1-bit mask. The
// returned image has the same width and height as input, at bit depth 32,
// storing one float32 per pixel (negative inside the foreground, positive
// outside), readable via raster.Image.AtFloat32.
type Transform interface {
	Compute(input *raster.Image) (*raster.Image, error)
}

func foreground(input *raster.Image, x, y uint32) bool {
	return input.GetPixelU32(x, y) != 0
}

func newOutput(w, h uint32) (*raster.Image, error) {
	return raster.New(w, h, raster.Depth32)
}
