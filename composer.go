// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package atlas

import (
	"fmt"

	"github.com/gazed/atlas/distfield"
	"github.com/gazed/atlas/pack"
	"github.com/gazed/atlas/raster"
)

// distanceFieldBackground is the value composeDistanceFieldAtlas pre-fills
// the atlas with: a large positive distance, per spec.md §4.7, so any
// unplaced margin reads as "far outside" rather than zero (which would
// read as "on the boundary").
const distanceFieldBackground = float32(1e6)

// composeBitmapAtlas implements spec.md §4.7's compose_bitmap_atlas:
// allocate an atlas at packing.AtlasSize, then copy each input glyph into
// a padding-contracted view of its placement rect.
func composeBitmapAtlas(inputs []*raster.Image, packing pack.Packing, padding uint32, bitDepth raster.BitDepth) (*raster.Image, error) {
	if len(inputs) != len(packing.Rects) {
		return nil, newError(ErrArgument, fmt.Sprintf("input count %d != rect count %d", len(inputs), len(packing.Rects)), nil)
	}
	atlasImg, err := raster.New(packing.AtlasSize.X, packing.AtlasSize.Y, bitDepth)
	if err != nil {
		return nil, newError(ErrUnsupportedFormat, "allocate atlas image", err)
	}
	atlasImg.Clear()

	for i, rect := range packing.Rects {
		view := atlasImg.View(rect.Min(), rect.Max(), padding)
		view.Load(inputs[i])
	}
	return atlasImg, nil
}

// composeDistanceFieldAtlas implements spec.md §4.7's
// compose_distance_field_atlas: allocate a 32-bit-float atlas pre-filled
// with the DT background value, then run algo on each input and copy the
// resulting field into its placement rect's view (no padding — the DT already saw source
// padding baked into the rasterised glyph, see BuildOptions.SourcePadding).
func composeDistanceFieldAtlas(inputs []*raster.Image, packing pack.Packing, algo distfield.Transform) (*raster.Image, error) {
	if len(inputs) != len(packing.Rects) {
		return nil, newError(ErrArgument, fmt.Sprintf("input count %d != rect count %d", len(inputs), len(packing.Rects)), nil)
	}
	atlasImg, err := raster.New(packing.AtlasSize.X, packing.AtlasSize.Y, raster.Depth32)
	if err != nil {
		return nil, newError(ErrUnsupportedFormat, "allocate distance field atlas", err)
	}
	fillFloat(atlasImg, distanceFieldBackground)

	for i, rect := range packing.Rects {
		field, err := algo.Compute(inputs[i])
		if err != nil {
			return nil, newError(ErrArgument, "compute distance field", err)
		}
		view := atlasImg.View(rect.Min(), rect.Max(), 0)
		copyFloat(view, field)
	}
	return atlasImg, nil
}

func fillFloat(img *raster.Image, v float32) {
	w, h := img.Width(), img.Height()
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			img.PutFloat32(x, y, v)
		}
	}
}

func copyFloat(dst, src *raster.Image) {
	w, h := src.Width(), src.Height()
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			dst.PutFloat32(x, y, src.AtFloat32(x, y))
		}
	}
}
