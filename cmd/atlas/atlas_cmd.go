// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	atlaspkg "github.com/gazed/atlas"
	"github.com/gazed/atlas/descriptor"
	"github.com/gazed/atlas/font"
	"github.com/gazed/atlas/preset"
	"github.com/gazed/atlas/raster"
)

// atlasOpts is the flat options struct every "atlas" subcommand flag fills
// in, mirroring noisetorch's CLIOpts/parseCLIOpts shape (see DESIGN.md).
type atlasOpts struct {
	outfile      string
	distfield    string
	packing      string
	glyph        string
	charcodes    intsFlag
	presetName   string
	fontsize     int
	fontname     string
	fontpath     string
	padding      int
	downsampling int
	dsalgo       string
	dynamicrange string
	writeFnt     bool
}

func runAtlas(args []string) error {
	fs := flag.NewFlagSet("atlas", flag.ContinueOnError)
	opt := atlasOpts{packing: "shelf", fontsize: 128, dsalgo: "center", dynamicrange: "-30 20"}

	fs.StringVar(&opt.distfield, "d", "", "apply a distance transform: deadrec or parabola")
	fs.StringVar(&opt.distfield, "distfield", "", "apply a distance transform: deadrec or parabola")
	fs.StringVar(&opt.packing, "k", opt.packing, "packing algorithm: shelf or maxrects")
	fs.StringVar(&opt.packing, "packing", opt.packing, "packing algorithm: shelf or maxrects")
	fs.StringVar(&opt.glyph, "g", "", "UTF-8 text; each code point is one glyph")
	fs.StringVar(&opt.glyph, "glyph", "", "UTF-8 text; each code point is one glyph")
	fs.Var(&opt.charcodes, "c", "extra character codes as integers")
	fs.Var(&opt.charcodes, "charcode", "extra character codes as integers")
	fs.StringVar(&opt.presetName, "preset", "", "predefined code point set: ascii or preset20180319")
	fs.IntVar(&opt.fontsize, "s", opt.fontsize, "pixel size")
	fs.IntVar(&opt.fontsize, "fontsize", opt.fontsize, "pixel size")
	fs.StringVar(&opt.fontname, "f", "", "installed font family name")
	fs.StringVar(&opt.fontname, "fontname", "", "installed font family name")
	fs.StringVar(&opt.fontpath, "fontpath", "", "font file path")
	fs.IntVar(&opt.padding, "p", 0, "padding in pixels around each glyph")
	fs.IntVar(&opt.padding, "padding", 0, "padding in pixels around each glyph")
	fs.IntVar(&opt.downsampling, "w", 1, "integer downsampling ratio")
	fs.IntVar(&opt.downsampling, "downsampling", 1, "integer downsampling ratio")
	fs.StringVar(&opt.dsalgo, "dsalgo", opt.dsalgo, "downsample kernel: center, average, or min")
	fs.StringVar(&opt.dynamicrange, "r", opt.dynamicrange, "distance field dynamic range \"black white\"")
	fs.StringVar(&opt.dynamicrange, "dynamicrange", opt.dynamicrange, "distance field dynamic range \"black white\"")
	fs.BoolVar(&opt.writeFnt, "fnt", false, "also write a .fnt descriptor next to the atlas")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("atlas: missing <outfile.png>")
	}
	opt.outfile = fs.Arg(0)

	return buildAndWriteAtlas(opt)
}

func buildAndWriteAtlas(opt atlasOpts) error {
	if (opt.fontname == "") == (opt.fontpath == "") {
		return fmt.Errorf("atlas: exactly one of -f/--fontname or --fontpath is required")
	}
	if opt.distfield == "" && opt.dynamicrange != "-30 20" {
		return fmt.Errorf("atlas: -r/--dynamicrange requires -d/--distfield")
	}

	fontPath := opt.fontpath
	if fontPath == "" {
		found, err := font.FindFont(opt.fontname)
		if err != nil {
			return fmt.Errorf("atlas: %w", err)
		}
		fontPath = found
	}

	runes, err := glyphSet(opt)
	if err != nil {
		return err
	}

	downsampler, err := font.ByName(opt.dsalgo)
	if err != nil {
		return fmt.Errorf("atlas: %w", err)
	}
	packingAlgo := atlaspkg.ShelfPacking
	switch opt.packing {
	case "shelf":
	case "maxrects":
		packingAlgo = atlaspkg.MaxRectsPacking
	default:
		return fmt.Errorf("atlas: unknown packing algorithm %q", opt.packing)
	}
	dfAlgo := atlaspkg.NoDistanceField
	switch opt.distfield {
	case "":
	case "deadrec":
		dfAlgo = atlaspkg.DeadReckoning
	case "parabola":
		dfAlgo = atlaspkg.Parabola
	default:
		return fmt.Errorf("atlas: unknown distance field algorithm %q", opt.distfield)
	}
	black, white, err := parseDynamicRange(opt.dynamicrange)
	if err != nil {
		return fmt.Errorf("atlas: %w", err)
	}

	opts := atlaspkg.NewBuildOptions()
	opts.FontPath = fontPath
	opts.FontSize = float64(opt.fontsize)
	opts.Runes = runes
	// A single CLI -p/--padding flag sets the glyph's rasterisation-time
	// margin; no additional atlas-compose contraction is applied on top
	// of it (see atlas.BuildOptions.AtlasPadding doc for the distinction
	// this resolves spec.md §9's Open Question into).
	opts.SourcePadding = uint32(max(0, opt.padding))
	opts.AtlasPadding = 0
	opts.Downsampling = uint32(max(1, opt.downsampling))
	opts.Downsampler = downsampler
	opts.DistanceField = dfAlgo
	opts.DynamicRangeBlack = black
	opts.DynamicRangeWhite = white
	opts.Packing = packingAlgo
	opts.FaceName = strings.TrimSuffix(filepath.Base(fontPath), filepath.Ext(fontPath))
	opts.Charset = "ANSI"

	result, err := atlaspkg.Build(opts)
	if err != nil {
		return fmt.Errorf("atlas: %w", err)
	}
	for ch := range result.NonDepictable {
		fmt.Fprintf(os.Stderr, "Warning: glyph U+%04X is not depictable by this font\n", ch)
	}

	out, err := os.Create(opt.outfile)
	if err != nil {
		return fmt.Errorf("atlas: create %s: %w", opt.outfile, err)
	}
	defer out.Close()

	pngDepth := raster.BitDepth(opts.OutputBitDepth)
	if dfAlgo == atlaspkg.NoDistanceField {
		err = raster.EncodePNG(out, result.Image)
	} else {
		err = raster.ExportPNGFloat(out, result.Image, black, white, pngDepth)
	}
	if err != nil {
		return fmt.Errorf("atlas: encode %s: %w", opt.outfile, err)
	}

	if opt.writeFnt {
		kernings, err := atlaspkg.Kernings(opts, result.NonDepictable)
		if err != nil {
			return fmt.Errorf("atlas: %w", err)
		}
		fntPath := strings.TrimSuffix(opt.outfile, filepath.Ext(opt.outfile)) + ".fnt"
		text := descriptor.Build(result, kernings, descriptor.Options{
			FaceName: opts.FaceName,
			PageFile: filepath.Base(opt.outfile),
			Charset:  opts.Charset,
		})
		if err := os.WriteFile(fntPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("atlas: write %s: %w", fntPath, err)
		}
	}
	return nil
}

// glyphSet resolves -g/--glyph, -c/--charcode, and --preset into one rune
// set. -g text is normalised to NFC first, per SPEC_FULL.md §6, so
// combining-mark sequences resolve to the code points the font's cmap
// expects.
func glyphSet(opt atlasOpts) ([]rune, error) {
	var runes []rune
	if opt.glyph != "" {
		runes = append(runes, []rune(norm.NFC.String(opt.glyph))...)
	}
	for _, c := range opt.charcodes {
		runes = append(runes, rune(c))
	}
	if opt.presetName != "" {
		set, ok := preset.Runes(opt.presetName)
		if !ok {
			return nil, fmt.Errorf("atlas: unknown preset %q (have: %s)", opt.presetName, strings.Join(preset.Names(), ", "))
		}
		runes = append(runes, set...)
	}
	if len(runes) == 0 {
		return nil, fmt.Errorf("atlas: no glyphs requested (use -g, -c, or --preset)")
	}
	return runes, nil
}
