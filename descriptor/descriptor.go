// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package descriptor serialises atlas metadata into the plain-text,
// line-oriented bmfont-style format spec.md §6 specifies: one "info" line,
// one "common" line, one "page" line, a "chars" count followed by one
// "char" line per depictable glyph, and a "kernings" count followed by one
// "kerning" line per non-zero pair. The reader this is grounded on —
// gazed-vu's load/fnt.go, which parses exactly this format to drive text
// rendering — only reads the format; this package is the writer spec.md
// §6 says is "routine" but whose schema it pins down precisely.
package descriptor

import (
	"fmt"
	"strings"

	"github.com/gazed/atlas"
)

// Options controls the non-derivable fields of the "info" line; everything
// else (scaleW/scaleH, char/kerning data) comes from the atlas.Result.
type Options struct {
	FaceName string
	PageFile string
	Bold     bool
	Italic   bool
	Charset  string
}

// Build renders the descriptor text for result, scaling every pixel metric
// in the "common", "char", and "kerning" lines by result.DownsampleRatio
// per spec.md §6: "If a scaling factor is in effect (downsampling), all
// pixel metrics in common and every char/kerning line are multiplied by
// the factor; xadvance always is."
func Build(result *atlas.Result, kernings []atlas.KernPair, opts Options) string {
	factor := int(result.DownsampleRatio)
	if factor == 0 {
		factor = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "info face=%q size=%d bold=%s italic=%s charset=%q unicode=1\n",
		opts.FaceName, int(result.Options.FontSize), boolFlag(opts.Bold), boolFlag(opts.Italic), opts.Charset)

	fmt.Fprintf(&b, "common lineHeight=%d base=%d scaleW=%d scaleH=%d pages=1 packed=0\n",
		result.LineHeight*factor, result.Ascent*factor,
		int(result.Packing.AtlasSize.X)*factor, int(result.Packing.AtlasSize.Y)*factor)

	fmt.Fprintf(&b, "page id=0 file=%q\n", opts.PageFile)

	fmt.Fprintf(&b, "chars count=%d\n", len(result.Glyphs))
	for _, g := range result.Glyphs {
		fmt.Fprintf(&b, "char id=%d x=%d y=%d width=%d height=%d xoffset=%d yoffset=%d xadvance=%d page=0 chnl=15\n",
			g.Rune,
			int(g.Rect.Position.X)*factor, int(g.Rect.Position.Y)*factor,
			int(g.Rect.Size.X)*factor, int(g.Rect.Size.Y)*factor,
			g.XOffset*factor, g.YOffset*factor, g.XAdvance*factor)
	}

	fmt.Fprintf(&b, "kernings count=%d\n", len(kernings))
	for _, k := range kernings {
		fmt.Fprintf(&b, "kerning first=%d second=%d amount=%d\n", k.A, k.B, k.Amount*factor)
	}

	return b.String()
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
