// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster

import "fmt"

// PixelMode identifies the coverage format of an externally rasterised
// glyph bitmap, mirroring the small set FreeType-style rasterisers emit.
type PixelMode int

const (
	PixelModeMono  PixelMode = iota // 1 bit per pixel
	PixelModeGray2                  // 2 bits per pixel
	PixelModeGray4                  // 4 bits per pixel
	PixelModeGray8                  // 8 bits per pixel
)

// MonoBitmap is an externally rasterised glyph mask: Width and Rows give
// its dimensions, Pitch the byte stride of Buffer's rows (which may exceed
// the minimal stride), and PixelMode its bit depth.
//
// Buffer polarity: a set bit (or, for multi-bit depths, a high value)
// means foreground/ink. This is the convention every downstream package in
// this module assumes — distfield, pack, and the atlas composer all read
// "1 = foreground". golang.org/x/image/font glyph masks already use this
// polarity (alpha 255 = covered), so adapting them needs no inversion;
// only the byte-accurate repacking below.
type MonoBitmap struct {
	Width, Rows int
	Pitch       int
	PixelMode   PixelMode
	Buffer      []byte
}

func (m PixelMode) bitDepth() BitDepth {
	switch m {
	case PixelModeMono:
		return Depth1
	case PixelModeGray2:
		return Depth2
	case PixelModeGray4:
		return Depth4
	default:
		return Depth8
	}
}

// FromMonoBitmap adopts an externally rasterised glyph mask into an Image,
// repacking each row into the minimal stride for its bit depth and
// masking off any tail bits past width in the last byte of each row.
func FromMonoBitmap(m MonoBitmap) (*Image, error) {
	if m.Width < 0 || m.Rows < 0 {
		return nil, fmt.Errorf("raster: negative bitmap dimensions %dx%d", m.Width, m.Rows)
	}
	width, height := uint32(m.Width), uint32(m.Rows)
	depth := m.PixelMode.bitDepth()
	img, err := New(width, height, depth)
	if err != nil {
		return nil, err
	}

	stride := img.buf.stride
	for y := uint32(0); y < height; y++ {
		srcRow := m.Buffer[int(y)*m.Pitch:]
		copy(img.buf.bytes[int(y)*stride:int(y+1)*stride], srcRow[:stride])
	}

	if tailBits := (width*uint32(depth))%8 != 0; tailBits {
		usedBits := (width * uint32(depth)) % 8
		mask := byte(0xFF << (8 - usedBits))
		for y := uint32(0); y < height; y++ {
			idx := int(y)*stride + stride - 1
			img.buf.bytes[idx] &= mask
		}
	}

	return img, nil
}
