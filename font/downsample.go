// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package font

import (
	"fmt"

	"github.com/gazed/atlas/raster"
)

// Downsampler reduces a rasterised glyph mask by an integer ratio before packing, one output pixel per ratio x ratio input
// block, selected by the CLI's --dsalgo flag.
type Downsampler interface {
	Downsample(input *raster.Image, ratio uint32) (*raster.Image, error)
}

// CenterDownsampler takes the single sample nearest the center of each
// input block — cheapest, and exact when the source was rendered at an
// integer multiple of the target size.
type CenterDownsampler struct{}

// AverageDownsampler takes the mean of each input block — smooths
// aliasing at the cost of softening sharp edges.
type AverageDownsampler struct{}

// MinDownsampler takes the minimum value in each input block. On a
// 1-bit glyph mask (1 = foreground) a block becomes foreground only if
// every pixel in it is foreground, so thin strokes can thin out or vanish.
type MinDownsampler struct{}

// blockBounds validates the inputs shared by every kernel: downsampling
// runs on the rasterised glyph mask before the distance transform, never
// on the transform's 32-bit float output (whose bit pattern isn't an
// integer magnitude, so block-averaging or block-comparing it directly
// would be meaningless).
func blockBounds(input *raster.Image, ratio uint32) (outW, outH uint32, err error) {
	if ratio == 0 {
		return 0, 0, fmt.Errorf("font: downsampling ratio must be >= 1")
	}
	if input.BitDepth() == raster.Depth32 {
		return 0, 0, fmt.Errorf("font: downsampling runs on the glyph mask, not a 32-bit distance field")
	}
	return input.Width() / ratio, input.Height() / ratio, nil
}

// Downsample implements Downsampler.
func (CenterDownsampler) Downsample(input *raster.Image, ratio uint32) (*raster.Image, error) {
	outW, outH, err := blockBounds(input, ratio)
	if err != nil {
		return nil, err
	}
	out, err := raster.New(outW, outH, input.BitDepth())
	if err != nil {
		return nil, err
	}
	center := ratio / 2
	for y := uint32(0); y < outH; y++ {
		for x := uint32(0); x < outW; x++ {
			out.SetPixelU32(x, y, input.GetPixelU32(x*ratio+center, y*ratio+center))
		}
	}
	return out, nil
}

// Downsample implements Downsampler.
func (AverageDownsampler) Downsample(input *raster.Image, ratio uint32) (*raster.Image, error) {
	outW, outH, err := blockBounds(input, ratio)
	if err != nil {
		return nil, err
	}
	out, err := raster.New(outW, outH, input.BitDepth())
	if err != nil {
		return nil, err
	}
	blockArea := ratio * ratio
	for y := uint32(0); y < outH; y++ {
		for x := uint32(0); x < outW; x++ {
			var sum uint64
			for by := uint32(0); by < ratio; by++ {
				for bx := uint32(0); bx < ratio; bx++ {
					sum += uint64(input.GetPixelU32(x*ratio+bx, y*ratio+by))
				}
			}
			out.SetPixelU32(x, y, uint32(sum/uint64(blockArea)))
		}
	}
	return out, nil
}

// Downsample implements Downsampler.
func (MinDownsampler) Downsample(input *raster.Image, ratio uint32) (*raster.Image, error) {
	outW, outH, err := blockBounds(input, ratio)
	if err != nil {
		return nil, err
	}
	out, err := raster.New(outW, outH, input.BitDepth())
	if err != nil {
		return nil, err
	}
	for y := uint32(0); y < outH; y++ {
		for x := uint32(0); x < outW; x++ {
			min := input.GetPixelU32(x*ratio, y*ratio)
			for by := uint32(0); by < ratio; by++ {
				for bx := uint32(0); bx < ratio; bx++ {
					if v := input.GetPixelU32(x*ratio+bx, y*ratio+by); v < min {
						min = v
					}
				}
			}
			out.SetPixelU32(x, y, min)
		}
	}
	return out, nil
}

// ByName resolves the --dsalgo flag value to a Downsampler.
func ByName(name string) (Downsampler, error) {
	switch name {
	case "center":
		return CenterDownsampler{}, nil
	case "average":
		return AverageDownsampler{}, nil
	case "min":
		return MinDownsampler{}, nil
	default:
		return nil, fmt.Errorf("font: unknown downsampling algorithm %q", name)
	}
}
