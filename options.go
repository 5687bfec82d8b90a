// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package atlas is the DT driver and atlas composer: it orchestrates
// rasterisation, optional downsampling, optional distance-field
// computation, rectangle packing, and final atlas composition into one
// raster.Image, configured by a plain options struct with a
// defaults-carrying constructor, the shape taken from the ambient
// template's root Config (see DESIGN.md's "Dropped teacher code" entry for
// config.go).
package atlas

import (
	"github.com/gazed/atlas/font"
	"github.com/gazed/atlas/geom"
	"github.com/gazed/atlas/pack"
)

// DistanceFieldAlgo selects which distfield.Transform a build applies, or
// none for a raw bitmap atlas.
type DistanceFieldAlgo int

const (
	// NoDistanceField emits the rasterised glyph bitmaps unmodified.
	NoDistanceField DistanceFieldAlgo = iota
	// DeadReckoning applies the approximate sweep-based transform.
	DeadReckoning
	// Parabola applies the exact Felzenszwalb-Huttenlocher transform.
	Parabola
)

// PackingAlgo selects which pack.Packer a build uses.
type PackingAlgo int

const (
	// ShelfPacking uses the O(n) next-fit shelf packer.
	ShelfPacking PackingAlgo = iota
	// MaxRectsPacking uses the denser Best-Short-Side-Fit packer.
	MaxRectsPacking
)

// BuildOptions configures one atlas build. The zero value is not useful;
// construct with NewBuildOptions to get its documented defaults, then
// override individual fields.
type BuildOptions struct {
	// FontBytes is the raw TTF/OTF font data. Exactly one of FontBytes or
	// FontPath must resolve to real bytes by the time Build runs.
	FontBytes []byte
	// FontPath, if FontBytes is nil, is read from disk.
	FontPath string
	// FontSize is the rasterisation size in points.
	FontSize float64

	// Runes is the set of code points to rasterise. Duplicates are
	// harmless; order does not affect the resulting packing (inputs are
	// de-duplicated and sorted by code point before packing).
	Runes []rune

	// SourcePadding is the margin, in final (post-downsampling) output
	// pixels, rasterised around each glyph's ink before packing. Per
	// spec.md §9's Open Question resolution, the renderer scales this by
	// Downsampling before rasterising so the padding survives
	// downsampling intact.
	SourcePadding uint32
	// AtlasPadding is the margin a bitmap-atlas compose contracts each
	// placement rect by before copying glyph content in. It has no effect
	// on distance-field atlases (distfield composition writes the whole
	// placement rect, see spec.md §4.7).
	AtlasPadding uint32

	// Downsampling is the integer ratio applied to each rasterised glyph
	// before packing. 0 and 1 both mean "no downsampling".
	Downsampling uint32
	// Downsampler selects the reduction kernel when Downsampling > 1.
	Downsampler font.Downsampler

	// DistanceField selects the DT applied before composition, or
	// NoDistanceField for a raw bitmap atlas.
	DistanceField DistanceFieldAlgo
	// DynamicRangeBlack/White are the DT value range mapped to the output
	// pixel range (spec.md §6's -r/--dynamicrange, default -30..20).
	// Build does not read them: it returns the float distance-field atlas,
	// and the caller applies the range when exporting it with
	// raster.ExportPNGFloat.
	DynamicRangeBlack float32
	DynamicRangeWhite float32
	// OutputBitDepth is the atlas PNG's bit depth. Raw bitmap atlases use
	// 1 or 8; distance-field atlases use 8 or 16.
	OutputBitDepth uint8

	// Packing selects the rectangle packer.
	Packing PackingAlgo
	// Rotate allows a packer to swap a rect's width/height to improve
	// density (spec.md §4's "optionally allowing 90° rotation"; not
	// exposed on the CLI surface of spec.md §6, available for programmatic
	// callers and the property tests of spec.md §8).
	Rotate bool
	// FixedAtlasSize, if non-zero, packs into exactly this size and fails
	// with an ErrCapacity *Error if every rect doesn't fit. Zero means
	// flexible: the initial size is predicted by pack.PredictSize and
	// grown as needed.
	FixedAtlasSize geom.Vec2[uint32]

	// FaceName/Bold/Italic/Charset feed the descriptor's "info" line;
	// they have no effect on the raster output.
	FaceName string
	Bold     bool
	Italic   bool
	Charset  string
}

// NewBuildOptions returns BuildOptions with spec.md §6's documented CLI
// defaults: 128px size, no padding, no downsampling, shelf packing, a
// dynamic range of -30..20, 8-bit output.
func NewBuildOptions() BuildOptions {
	return BuildOptions{
		FontSize:          128,
		Downsampling:      1,
		Downsampler:       font.CenterDownsampler{},
		DynamicRangeBlack: -30,
		DynamicRangeWhite: 20,
		OutputBitDepth:    8,
		Packing:           ShelfPacking,
		Charset:           "ANSI",
	}
}

// packer resolves the Packing enum to a concrete pack.Packer.
func (o BuildOptions) packer() pack.Packer {
	switch o.Packing {
	case MaxRectsPacking:
		return pack.MaxRects{}
	default:
		return pack.Shelf{}
	}
}

func (o BuildOptions) ratio() uint32 {
	if o.Downsampling == 0 {
		return 1
	}
	return o.Downsampling
}
