// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gazed/atlas/distfield"
	"github.com/gazed/atlas/raster"
)

func runDistfield(args []string) error {
	fs := flag.NewFlagSet("distfield", flag.ContinueOnError)
	algo := fs.String("a", "deadrec", "distance transform algorithm: deadrec or parabola")
	dynamicrange := fs.String("r", "-30 20", "dynamic range \"black white\"")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("distfield: usage: distfield <input.png> <output.png> [flags]")
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	var transform distfield.Transform
	switch *algo {
	case "deadrec":
		transform = distfield.DeadReckoning{}
	case "parabola":
		transform = distfield.Parabola{}
	default:
		return fmt.Errorf("distfield: unknown algorithm %q", *algo)
	}
	black, white, err := parseDynamicRange(*dynamicrange)
	if err != nil {
		return fmt.Errorf("distfield: %w", err)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("distfield: open %s: %w", inPath, err)
	}
	defer in.Close()

	// raster.DecodePNG truncates grayscale samples to their high bit with
	// no colour inversion, so the input PNG's set bit (sample value 1,
	// typically the lighter colour) is what distfield.Transform treats as
	// foreground, matching the raster.FromMonoBitmap "1 = foreground"
	// convention documented in raster/mono.go.
	src, err := raster.DecodePNG(in, raster.Depth1, true)
	if err != nil {
		return fmt.Errorf("distfield: decode %s: %w", inPath, err)
	}

	field, err := transform.Compute(src)
	if err != nil {
		return fmt.Errorf("distfield: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("distfield: create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := raster.ExportPNGFloat(out, field, black, white, raster.Depth8); err != nil {
		return fmt.Errorf("distfield: encode %s: %w", outPath, err)
	}
	return nil
}
