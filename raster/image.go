// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package raster is the bitmap substrate the rest of the atlas pipeline
// builds on: a reference-counted, multi-bit-depth 2D pixel buffer with
// aliasing sub-views, a PNG codec, and conversions to/from externally
// rasterised glyph masks.
package raster

import (
	"fmt"

	"github.com/gazed/atlas/geom"
)

// buffer is the shared backing store a family of Image views alias. Go's
// garbage collector releases it once the last Image holding a pointer to
// it becomes unreachable — there is no manual refcounting to get wrong.
type buffer struct {
	bytes  []byte
	stride int // bytes per row
}

// Image is a 2D raster at a fixed bit depth, addressed through a
// view-window onto a possibly-shared buffer. The zero value is not usable;
// construct with New, FromMonoBitmap, or DecodePNG.
type Image struct {
	buf      *buffer
	bitDepth int
	minX     uint32
	minY     uint32
	maxX     uint32
	maxY     uint32
}

// BitDepth identifies one of the supported per-pixel storage widths.
type BitDepth int

const (
	Depth1  BitDepth = 1
	Depth2  BitDepth = 2
	Depth4  BitDepth = 4
	Depth8  BitDepth = 8
	Depth16 BitDepth = 16
	Depth32 BitDepth = 32
)

// Stride returns the minimal row length in bytes for width pixels at the
// given bit depth: ceil(width*bitDepth/8).
func Stride(width uint32, bitDepth BitDepth) int {
	bits := int(width) * int(bitDepth)
	return (bits + 7) / 8
}

// New allocates a zeroed width×height image at the given bit depth.
func New(width, height uint32, bitDepth BitDepth) (*Image, error) {
	switch bitDepth {
	case Depth1, Depth2, Depth4, Depth8, Depth16, Depth32:
	default:
		return nil, fmt.Errorf("raster: unsupported bit depth %d", bitDepth)
	}
	stride := Stride(width, bitDepth)
	return &Image{
		buf:      &buffer{bytes: make([]byte, int(height)*stride), stride: stride},
		bitDepth: int(bitDepth),
		maxX:     width,
		maxY:     height,
	}, nil
}

// Width returns the view's width in pixels.
func (img *Image) Width() uint32 { return img.maxX - img.minX }

// Height returns the view's height in pixels.
func (img *Image) Height() uint32 { return img.maxY - img.minY }

// BitDepth returns the bit depth pixels are stored at.
func (img *Image) BitDepth() BitDepth { return BitDepth(img.bitDepth) }

// View returns an aliasing sub-window covering [min, max) in the current
// view's coordinate space, contracted by padding pixels on every side.
// Writes through the returned Image are visible through img and vice versa.
func (img *Image) View(min, max geom.Vec2[uint32], padding uint32) *Image {
	return &Image{
		buf:      img.buf,
		bitDepth: img.bitDepth,
		minX:     img.minX + min.X + padding,
		minY:     img.minY + min.Y + padding,
		maxX:     img.minX + max.X - padding,
		maxY:     img.minY + max.Y - padding,
	}
}

func (img *Image) checkBounds(x, y uint32) {
	w, h := img.Width(), img.Height()
	if x >= w || y >= h {
		panic(fmt.Sprintf("raster: coordinate (%d,%d) out of bounds for %dx%d image", x, y, w, h))
	}
}

// GetPixelU32 reads one pixel. For bit depths <= 8 the value occupies the
// low bitDepth bits of the result; for depths > 8 the full big-endian
// multi-byte value is returned.
func (img *Image) GetPixelU32(x, y uint32) uint32 {
	img.checkBounds(x, y)
	ox, oy := x+img.minX, y+img.minY
	stride := img.buf.stride
	if img.bitDepth <= 8 {
		pixelsPerByte := 8 / img.bitDepth
		byteOff := oy*uint32(stride) + ox/uint32(pixelsPerByte)
		b := img.buf.bytes[byteOff]
		bitPos := ox % uint32(pixelsPerByte)
		shift := 8 - (bitPos+1)*uint32(img.bitDepth)
		mask := byte(1<<uint(img.bitDepth)) - 1
		return uint32(b>>shift) & uint32(mask)
	}

	bytesPerPixel := img.bitDepth / 8
	base := oy*uint32(stride) + ox*uint32(bytesPerPixel)
	var v uint32
	for i := 0; i < bytesPerPixel; i++ {
		v <<= 8
		v |= uint32(img.buf.bytes[base+uint32(i)])
	}
	return v
}

// SetPixelU32 writes one pixel, preserving neighbouring sub-byte pixels
// that share the same byte.
func (img *Image) SetPixelU32(x, y uint32, value uint32) {
	img.checkBounds(x, y)
	ox, oy := x+img.minX, y+img.minY
	stride := img.buf.stride
	if img.bitDepth <= 8 {
		pixelsPerByte := 8 / img.bitDepth
		byteOff := oy*uint32(stride) + ox/uint32(pixelsPerByte)
		bitPos := ox % uint32(pixelsPerByte)
		shift := 8 - (bitPos+1)*uint32(img.bitDepth)
		mask := (byte(1<<uint(img.bitDepth)) - 1) << shift
		in := byte(value<<shift) & mask
		cur := img.buf.bytes[byteOff]
		img.buf.bytes[byteOff] = cur&^mask | in
		return
	}

	bytesPerPixel := img.bitDepth / 8
	base := oy*uint32(stride) + ox*uint32(bytesPerPixel)
	for i := bytesPerPixel - 1; i >= 0; i-- {
		img.buf.bytes[base+uint32(i)] = byte(value)
		value >>= 8
	}
}

// Clear sets every pixel in the view window to zero.
func (img *Image) Clear() {
	w, h := img.Width(), img.Height()
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			img.SetPixelU32(x, y, 0)
		}
	}
}

// FillRect sets every pixel in the window-relative rectangle [origin,
// origin+size) to value.
func (img *Image) FillRect(origin, size geom.Vec2[uint32], value uint32) {
	for y := uint32(0); y < size.Y; y++ {
		for x := uint32(0); x < size.X; x++ {
			img.SetPixelU32(origin.X+x, origin.Y+y, value)
		}
	}
}

// Load copies src into img pixel-by-pixel, starting at img's origin.
// src and img may differ in bit depth: values are rescaled from src's
// range to img's range (e.g. a 1-bit mask's 1 becomes 255 when loaded
// into an 8-bit image), so a loaded glyph mask reads as full-intensity
// coverage rather than a barely-visible low integer.
func (img *Image) Load(src *Image) {
	w, h := src.Width(), src.Height()
	if dw, dh := img.Width(), img.Height(); w > dw || h > dh {
		panic("raster: Load source does not fit destination view")
	}
	// Depth32 stores a float32 bit pattern, not a linear intensity value,
	// so it is never rescaled even if the other side's depth differs.
	rescale := src.bitDepth != img.bitDepth && src.bitDepth != int(Depth32) && img.bitDepth != int(Depth32)
	var srcMax, dstMax uint32
	if rescale {
		srcMax = 1<<uint(src.bitDepth) - 1
		dstMax = 1<<uint(img.bitDepth) - 1
	}
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			v := src.GetPixelU32(x, y)
			if rescale {
				v = v * dstMax / srcMax
			}
			img.SetPixelU32(x, y, v)
		}
	}
}
