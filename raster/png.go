// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/gazed/atlas/geom"
)

// Float is the set of float kinds ExportPNG can map through a [min, max]
// window before quantising to the target bit depth.
type Float interface {
	~float32 | ~float64
}

// maxValue returns the largest integer value representable at bitDepth.
func maxValue(bitDepth BitDepth) uint32 {
	return uint32(1)<<uint(bitDepth) - 1
}

// EncodePNG writes img as a grayscale PNG. image/png's encoder only ever
// emits 8-bit or 16-bit grayscale, so bit depths below 8 are widened to
// 8-bit on the way out (values are rescaled, not just zero-extended, so a
// 1-bit image still comes out visually black/white); 16-bit images are
// written at full 16-bit depth. 32-bit images must go through
// ExportPNGFloat first.
func EncodePNG(w io.Writer, img *Image) error {
	if img.bitDepth == 32 {
		return fmt.Errorf("raster: EncodePNG cannot export a 32-bit image directly, use ExportPNGFloat")
	}
	gray, err := toStdImage(img)
	if err != nil {
		return err
	}
	return png.Encode(w, gray)
}

// ExportPNGFloat maps a 32-bit-per-pixel float image (read as raw
// IEEE-754 bit patterns via GetPixelU32) into an integer grayscale PNG at
// outDepth, via clamp((v-pMin)/(pMax-pMin), 0, 1) * maxValue(outDepth).
func ExportPNGFloat[P Float](w io.Writer, img *Image, pMin, pMax P, outDepth BitDepth) error {
	if img.bitDepth != 32 {
		return fmt.Errorf("raster: ExportPNGFloat requires a 32-bit source image, got %d", img.bitDepth)
	}
	out, err := New(img.Width(), img.Height(), outDepth)
	if err != nil {
		return err
	}
	span := float64(pMax - pMin)
	maxOut := float64(maxValue(outDepth))
	width, height := img.Width(), img.Height()
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			bits := img.GetPixelU32(x, y)
			v := P(math.Float32frombits(bits))
			normalized := geom.Clamp(float64(v-pMin)/span, 0, 1)
			out.SetPixelU32(x, y, uint32(math.Round(normalized*maxOut)))
		}
	}
	return EncodePNG(w, out)
}

// PutFloat32 stores v as its raw IEEE-754 bit pattern at (x, y) of a
// 32-bit image — the representation distance fields are held in.
func (img *Image) PutFloat32(x, y uint32, v float32) {
	img.SetPixelU32(x, y, math.Float32bits(v))
}

// AtFloat32 reads the raw IEEE-754 bit pattern stored at (x, y) of a
// 32-bit image back out as a float32.
func (img *Image) AtFloat32(x, y uint32) float32 {
	return math.Float32frombits(img.GetPixelU32(x, y))
}

func toStdImage(img *Image) (image.Image, error) {
	width, height := int(img.Width()), int(img.Height())
	switch BitDepth(img.bitDepth) {
	case Depth1, Depth2, Depth4, Depth8:
		gray := image.NewGray(image.Rect(0, 0, width, height))
		scale := 255 / maxValue(BitDepth(img.bitDepth))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := img.GetPixelU32(uint32(x), uint32(y))
				gray.SetGray(x, y, color.Gray{Y: uint8(v * scale)})
			}
		}
		return gray, nil
	case Depth16:
		gray16 := image.NewGray16(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				gray16.SetGray16(x, y, color.Gray16{Y: uint16(img.GetPixelU32(uint32(x), uint32(y)))})
			}
		}
		return gray16, nil
	default:
		return nil, fmt.Errorf("raster: unsupported PNG export bit depth %d", img.bitDepth)
	}
}

// DecodePNG reads a grayscale PNG and returns an Image at its native bit
// depth, or at forcedDepth when forced is true (truncating higher-depth
// samples down).
func DecodePNG(r io.Reader, forcedDepth BitDepth, forced bool) (*Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode png: %w", err)
	}

	bounds := src.Bounds()
	width, height := uint32(bounds.Dx()), uint32(bounds.Dy())

	nativeDepth := Depth8
	if _, ok := src.(*image.Gray16); ok {
		nativeDepth = Depth16
	}
	depth := nativeDepth
	if forced {
		depth = forcedDepth
	}

	img, err := New(width, height, depth)
	if err != nil {
		return nil, err
	}

	shift := uint(0)
	if nativeDepth == Depth16 && depth != Depth16 {
		shift = 16 - uint(depth)
	} else if nativeDepth == Depth8 && depth != Depth8 && depth < Depth8 {
		shift = 8 - uint(depth)
	}

	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			r16, _, _, _ := src.At(bounds.Min.X+int(x), bounds.Min.Y+int(y)).RGBA()
			v := r16 >> 8 // reduce to 8-bit luma; grayscale images carry equal channels
			if nativeDepth == Depth16 {
				v = r16
			}
			img.SetPixelU32(x, y, uint32(v)>>shift)
		}
	}
	return img, nil
}
