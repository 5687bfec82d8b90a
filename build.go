// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package atlas

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/gazed/atlas/distfield"
	"github.com/gazed/atlas/font"
	"github.com/gazed/atlas/geom"
	"github.com/gazed/atlas/pack"
	"github.com/gazed/atlas/raster"
)

// GlyphInfo is one rasterised, packed glyph's placement and pen metrics,
// in atlas-resolution pixels (i.e. after any downsampling has already
// been applied) — the unit descriptor.Build scales back up by the
// downsampling ratio per spec.md §6's "scaling factor" rule.
type GlyphInfo struct {
	Rune     rune
	Rect     geom.Rect[uint32]
	XOffset  int
	YOffset  int
	XAdvance int
}

// Result is everything a build produced: the composed atlas image, the
// packing it was placed with, one GlyphInfo per depictable glyph, the set
// of requested glyphs the font could not render, and the inputs a
// descriptor needs to reproduce scaled metrics.
type Result struct {
	Image           *raster.Image
	Packing         pack.Packing
	Glyphs          []GlyphInfo
	NonDepictable   map[rune]struct{}
	DownsampleRatio uint32
	LineHeight      int
	Ascent          int
	Options         BuildOptions
}

// KernPair is one non-zero kerning adjustment between two glyphs, in
// atlas-resolution pixels. Build does not compute these itself (most
// callers never need them); a caller that emits "kerning" lines calls
// Kernings separately and passes the result to descriptor.Build.
type KernPair struct {
	A, B   rune
	Amount int
}

// Build rasterises opts.Runes, optionally downsamples and distance-fields
// each glyph, packs every placed glyph into one atlas, and composes the
// final raster.Image. It is the DT driver spec.md §2 names: the one place
// glyph rasterisation, downsampling, the distance transform, and packing
// all meet.
func Build(opts BuildOptions) (*Result, error) {
	fontBytes, err := resolveFontBytes(opts)
	if err != nil {
		return nil, err
	}

	rasterizer, err := font.NewRasterizer(fontBytes, opts.FontSize)
	if err != nil {
		return nil, newError(ErrDecode, "parse font", err)
	}
	defer rasterizer.Close()

	ratio := opts.ratio()
	downsampler := opts.Downsampler
	if downsampler == nil {
		downsampler = font.CenterDownsampler{}
	}
	renderPadding := opts.SourcePadding * ratio

	runes := uniqueSorted(opts.Runes)

	type glyph struct {
		ch   rune
		img  *raster.Image
		mX   int
		mY   int
		mAdv int
	}
	glyphs := make([]glyph, 0, len(runes))
	nonDepictable := map[rune]struct{}{}

	for _, ch := range runes {
		if !rasterizer.HasGlyph(ch) {
			nonDepictable[ch] = struct{}{}
			slog.Warn("glyph not in font, skipping", "rune", ch, "codepoint", fmt.Sprintf("U+%04X", ch))
			continue
		}
		img, metrics, err := rasterizer.RenderGlyph(ch, renderPadding)
		if err != nil {
			return nil, newError(ErrDecode, fmt.Sprintf("rasterise rune %q", ch), err)
		}
		bx, by, adv := metrics.BearingX, metrics.BearingY, metrics.Advance
		if ratio > 1 {
			img, err = downsampler.Downsample(img, ratio)
			if err != nil {
				return nil, newError(ErrArgument, "downsample glyph", err)
			}
			bx, by, adv = bx/int(ratio), by/int(ratio), adv/int(ratio)
		}
		glyphs = append(glyphs, glyph{ch: ch, img: img, mX: bx, mY: by, mAdv: adv})
	}

	sizes := make([]geom.Vec2[uint32], len(glyphs))
	for i, g := range glyphs {
		sizes[i] = geom.V2(g.img.Width(), g.img.Height())
	}

	atlasSize := opts.FixedAtlasSize
	flexible := atlasSize.X == 0 && atlasSize.Y == 0
	if flexible {
		atlasSize = pack.PredictSize(sizes)
	}

	packing := opts.packer().Pack(sizes, atlasSize, flexible, opts.Rotate)
	if len(sizes) > 0 && len(packing.Rects) == 0 {
		return nil, newError(ErrCapacity, "rectangles do not fit in the atlas", nil)
	}

	inputs := make([]*raster.Image, len(glyphs))
	for i, g := range glyphs {
		inputs[i] = g.img
	}

	var atlasImg *raster.Image
	if opts.DistanceField == NoDistanceField {
		atlasImg, err = composeBitmapAtlas(inputs, packing, opts.AtlasPadding, bitDepthFor(opts.OutputBitDepth))
	} else {
		atlasImg, err = composeDistanceFieldAtlas(inputs, packing, transformFor(opts.DistanceField))
	}
	if err != nil {
		return nil, err
	}

	infos := make([]GlyphInfo, len(glyphs))
	for i, g := range glyphs {
		rect := geom.Rect[uint32]{}
		if i < len(packing.Rects) {
			rect = packing.Rects[i]
		}
		infos[i] = GlyphInfo{
			Rune:     g.ch,
			Rect:     rect,
			XOffset:  g.mX,
			YOffset:  g.mY,
			XAdvance: g.mAdv,
		}
	}

	return &Result{
		Image:           atlasImg,
		Packing:         packing,
		Glyphs:          infos,
		NonDepictable:   nonDepictable,
		DownsampleRatio: ratio,
		LineHeight:      rasterizer.LineHeight() / int(ratio),
		Ascent:          rasterizer.Ascent() / int(ratio),
		Options:         opts,
	}, nil
}

// Kernings computes kerning for every ordered pair of glyphs opts.Runes
// contains, in atlas-resolution pixels, omitting zero and non-depictable
// pairs — SPEC_FULL.md §10's supplemented feature, grounded on the original
// FntWriter::setKerningInfo loop (see DESIGN.md).
func Kernings(opts BuildOptions, nonDepictable map[rune]struct{}) ([]KernPair, error) {
	fontBytes, err := resolveFontBytes(opts)
	if err != nil {
		return nil, err
	}
	rasterizer, err := font.NewRasterizer(fontBytes, opts.FontSize)
	if err != nil {
		return nil, newError(ErrDecode, "parse font", err)
	}
	defer rasterizer.Close()

	ratio := int(opts.ratio())
	runes := uniqueSorted(opts.Runes)
	var out []KernPair
	for _, a := range runes {
		if _, skip := nonDepictable[a]; skip {
			continue
		}
		for _, b := range runes {
			if _, skip := nonDepictable[b]; skip {
				continue
			}
			amount := rasterizer.Kern(a, b) / ratio
			if amount != 0 {
				out = append(out, KernPair{A: a, B: b, Amount: amount})
			}
		}
	}
	return out, nil
}

func resolveFontBytes(opts BuildOptions) ([]byte, error) {
	if len(opts.FontBytes) > 0 {
		return opts.FontBytes, nil
	}
	if opts.FontPath == "" {
		return nil, newError(ErrArgument, "exactly one of FontBytes or FontPath must be set", nil)
	}
	data, err := os.ReadFile(opts.FontPath)
	if err != nil {
		return nil, newError(ErrInputNotFound, "read font file "+opts.FontPath, err)
	}
	return data, nil
}

func uniqueSorted(runes []rune) []rune {
	seen := map[rune]struct{}{}
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func bitDepthFor(bits uint8) raster.BitDepth {
	switch bits {
	case 1:
		return raster.Depth1
	default:
		return raster.Depth8
	}
}

func transformFor(algo DistanceFieldAlgo) distfield.Transform {
	if algo == Parabola {
		return distfield.Parabola{}
	}
	return distfield.DeadReckoning{}
}
