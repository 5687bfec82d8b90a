// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package raster

import (
	"bytes"
	"testing"

	"github.com/gazed/atlas/geom"
)

func TestPixelRoundTripAllDepths(t *testing.T) {
	for _, depth := range []BitDepth{Depth1, Depth2, Depth4, Depth8, Depth16} {
		depth := depth
		t.Run("", func(t *testing.T) {
			img, err := New(8, 8, depth)
			if err != nil {
				t.Fatal(err)
			}
			maxVal := maxValue(depth)
			values := []uint32{0, maxVal}
			if maxVal > 2 {
				values = append(values, maxVal/2, 1)
			}
			for _, v := range values {
				img.SetPixelU32(3, 4, v)
				if got := img.GetPixelU32(3, 4); got != v {
					t.Fatalf("depth %d: set %d, got %d", depth, v, got)
				}
			}
		})
	}
}

func TestSetPixelDoesNotDisturbNeighbours(t *testing.T) {
	img, err := New(8, 8, Depth2)
	if err != nil {
		t.Fatal(err)
	}
	for x := uint32(0); x < 4; x++ {
		img.SetPixelU32(x, 0, x)
	}
	img.SetPixelU32(1, 0, 3)
	want := []uint32{0, 3, 2, 3}
	for x, w := range want {
		if got := img.GetPixelU32(uint32(x), 0); got != w {
			t.Errorf("x=%d: got %d, want %d", x, got, w)
		}
	}
}

func TestViewAliasesParent(t *testing.T) {
	img, err := New(20, 20, Depth8)
	if err != nil {
		t.Fatal(err)
	}
	view := img.View(geom.V2[uint32](5, 5), geom.V2[uint32](15, 15), 0)
	if view.Width() != 10 || view.Height() != 10 {
		t.Fatalf("view size = %dx%d, want 10x10", view.Width(), view.Height())
	}
	view.SetPixelU32(0, 0, 42)
	if got := img.GetPixelU32(5, 5); got != 42 {
		t.Errorf("write through view not visible in parent: got %d", got)
	}

	for y := uint32(0); y < 10; y++ {
		for x := uint32(0); x < 10; x++ {
			view.SetPixelU32(x, y, 255-view.GetPixelU32(x, y))
		}
	}
	for y := uint32(0); y < 10; y++ {
		for x := uint32(0); x < 10; x++ {
			view.SetPixelU32(x, y, 255-view.GetPixelU32(x, y))
		}
	}
	if got := img.GetPixelU32(5, 5); got != 42 {
		t.Errorf("double complement should restore original, got %d", got)
	}
}

func TestViewPadding(t *testing.T) {
	img, err := New(20, 20, Depth8)
	if err != nil {
		t.Fatal(err)
	}
	view := img.View(geom.V2[uint32](0, 0), geom.V2[uint32](10, 10), 2)
	if view.Width() != 6 || view.Height() != 6 {
		t.Fatalf("padded view size = %dx%d, want 6x6", view.Width(), view.Height())
	}
	view.SetPixelU32(0, 0, 7)
	if got := img.GetPixelU32(2, 2); got != 7 {
		t.Errorf("padded view origin should map to parent (2,2), got %d", got)
	}
}

func TestFillRectAndClear(t *testing.T) {
	img, err := New(10, 10, Depth8)
	if err != nil {
		t.Fatal(err)
	}
	img.FillRect(geom.V2[uint32](2, 2), geom.V2[uint32](4, 4), 9)
	for y := uint32(2); y < 6; y++ {
		for x := uint32(2); x < 6; x++ {
			if got := img.GetPixelU32(x, y); got != 9 {
				t.Errorf("(%d,%d) = %d, want 9", x, y, got)
			}
		}
	}
	if got := img.GetPixelU32(0, 0); got != 0 {
		t.Errorf("outside fill rect should stay 0, got %d", got)
	}
	img.Clear()
	if got := img.GetPixelU32(3, 3); got != 0 {
		t.Errorf("clear should zero, got %d", got)
	}
}

func TestPNGRoundTrip(t *testing.T) {
	for _, depth := range []BitDepth{Depth1, Depth8, Depth16} {
		depth := depth
		t.Run("", func(t *testing.T) {
			img, err := New(8, 8, depth)
			if err != nil {
				t.Fatal(err)
			}
			maxVal := maxValue(depth)
			img.SetPixelU32(1, 1, maxVal)
			img.SetPixelU32(6, 6, maxVal/2)

			var buf bytes.Buffer
			if err := EncodePNG(&buf, img); err != nil {
				t.Fatal(err)
			}

			decoded, err := DecodePNG(&buf, depth, depth != Depth8)
			if err != nil {
				t.Fatal(err)
			}
			for y := uint32(0); y < 8; y++ {
				for x := uint32(0); x < 8; x++ {
					if got, want := decoded.GetPixelU32(x, y), img.GetPixelU32(x, y); got != want {
						t.Errorf("depth %d (%d,%d) = %d, want %d", depth, x, y, got, want)
					}
				}
			}
		})
	}
}

func TestLoadRescalesBitDepth(t *testing.T) {
	src, err := New(2, 2, Depth1)
	if err != nil {
		t.Fatal(err)
	}
	src.SetPixelU32(0, 0, 1)

	dst, err := New(2, 2, Depth8)
	if err != nil {
		t.Fatal(err)
	}
	dst.Load(src)
	if got := dst.GetPixelU32(0, 0); got != 255 {
		t.Errorf("1-bit foreground loaded into 8-bit should read 255, got %d", got)
	}
	if got := dst.GetPixelU32(1, 0); got != 0 {
		t.Errorf("1-bit background loaded into 8-bit should read 0, got %d", got)
	}
}

func TestLoadSameDepthIsUnscaled(t *testing.T) {
	src, err := New(2, 2, Depth8)
	if err != nil {
		t.Fatal(err)
	}
	src.SetPixelU32(0, 0, 0x10)

	dst, err := New(2, 2, Depth8)
	if err != nil {
		t.Fatal(err)
	}
	dst.Load(src)
	if got := dst.GetPixelU32(0, 0); got != 0x10 {
		t.Errorf("same-depth load should copy raw values, got %d", got)
	}
}

func TestImage8x8Depth16ExactRecovery(t *testing.T) {
	img, err := New(8, 8, Depth16)
	if err != nil {
		t.Fatal(err)
	}
	img.SetPixelU32(3, 4, 26781)
	img.SetPixelU32(4, 5, 42949)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodePNG(&buf, Depth16, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := decoded.GetPixelU32(3, 4); got != 26781 {
		t.Errorf("(3,4) = %d, want 26781", got)
	}
	if got := decoded.GetPixelU32(4, 5); got != 42949 {
		t.Errorf("(4,5) = %d, want 42949", got)
	}
	for y := uint32(0); y < 8; y++ {
		for x := uint32(0); x < 8; x++ {
			if (x == 3 && y == 4) || (x == 4 && y == 5) {
				continue
			}
			if got := decoded.GetPixelU32(x, y); got != 0 {
				t.Errorf("(%d,%d) = %d, want 0", x, y, got)
			}
		}
	}
}
