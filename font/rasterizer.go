// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package font wraps golang.org/x/image/font to rasterise individual
// glyphs from TTF/OTF data into raster.Image masks, locates installed
// fonts by family name, and downsamples rendered glyphs before packing.
package font

import (
	"fmt"
	"image"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gazed/atlas/raster"
)

// Metrics describes one rasterised glyph's placement relative to the pen
// position: BearingX/BearingY locate the glyph's content corner, Advance
// is the pen movement to the next glyph, both in whole pixels.
type Metrics struct {
	Rune     rune
	Width    int
	Height   int
	BearingX int
	BearingY int
	Advance  int
}

// Rasterizer parses a TTF/OTF font once and renders glyph masks from it
// at a fixed size, mirroring the parse-once/walk-rune-set pattern used
// throughout the ambient font-loading code this module is built from.
type Rasterizer struct {
	face xfont.Face
	size float64
}

// NewRasterizer parses fontBytes and prepares to render glyphs at
// sizePoints, rendered at 72 DPI with no hinting (matching the ambient
// template's choice: atlas generation wants consistent, hinting-free
// metrics rather than screen-optimised ones).
func NewRasterizer(fontBytes []byte, sizePoints float64) (*Rasterizer, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    sizePoints,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font: new face: %w", err)
	}
	return &Rasterizer{face: face, size: sizePoints}, nil
}

// Close releases the underlying font face.
func (r *Rasterizer) Close() error { return r.face.Close() }

// LineHeight is the recommended distance between baselines, in pixels.
func (r *Rasterizer) LineHeight() int { return r.face.Metrics().Height.Round() }

// Ascent is the recommended distance from baseline to text top, in pixels.
func (r *Rasterizer) Ascent() int { return r.face.Metrics().Ascent.Round() }

// Kern returns the kerning adjustment between r0 and r1, in pixels.
func (r *Rasterizer) Kern(r0, r1 rune) int {
	return r.face.Kern(r0, r1).Round()
}

// HasGlyph reports whether the font defines a rasterisable glyph for ch.
func (r *Rasterizer) HasGlyph(ch rune) bool {
	_, ok := r.face.GlyphAdvance(ch)
	return ok
}

// RenderGlyph rasterises ch into a 1-bit mask of size
// (bbox.dx+2*padding) x (bbox.dy+2*padding), the glyph's ink occupying
// the padding-inset interior. Coverage is thresholded to a clean
// foreground/background mask before it reaches raster.Image — spec.md §1
// treats anti-aliased glyph input as out of scope.
func (r *Rasterizer) RenderGlyph(ch rune, padding uint32) (*raster.Image, Metrics, error) {
	bounds, adv, ok := r.face.GlyphBounds(ch)
	if !ok {
		return nil, Metrics{}, fmt.Errorf("font: no glyph for rune %q", ch)
	}

	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	w, h := maxX-minX, maxY-minY
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	pad := int(padding)
	dst := image.NewAlpha(image.Rect(0, 0, w+2*pad, h+2*pad))
	dot := fixed.P(-minX+pad, -minY+pad)
	dr, mask, maskp, _, _ := r.face.Glyph(dot, ch)
	draw.DrawMask(dst, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)

	// Non-goal per spec.md §1: "anti-aliased glyph input" — threshold the
	// rasteriser's coverage mask to 1 bit before it ever reaches Image, so
	// every downstream consumer (distfield, packing, composer) sees a
	// clean foreground/background mask.
	mono := thresholdToMono(dst)
	img, err := raster.FromMonoBitmap(mono)
	if err != nil {
		return nil, Metrics{}, err
	}

	m := Metrics{
		Rune:     ch,
		Width:    w + 2*pad,
		Height:   h + 2*pad,
		BearingX: minX,
		BearingY: minY,
		Advance:  adv.Round(),
	}
	return img, m, nil
}

// threshold is the minimum alpha coverage (out of 255) a pixel needs to
// count as foreground when flattening an anti-aliased glyph mask to 1 bit.
const threshold = 128

// thresholdToMono packs src's alpha coverage into a 1-bit-per-pixel
// MSB-first buffer, the layout raster.FromMonoBitmap expects.
func thresholdToMono(src *image.Alpha) raster.MonoBitmap {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	pitch := (w + 7) / 8
	buf := make([]byte, pitch*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if src.AlphaAt(src.Bounds().Min.X+x, src.Bounds().Min.Y+y).A >= threshold {
				buf[y*pitch+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return raster.MonoBitmap{
		Width:     w,
		Rows:      h,
		Pitch:     pitch,
		PixelMode: raster.PixelModeMono,
		Buffer:    buf,
	}
}
