// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package pack places a set of axis-aligned rectangles into an atlas,
// either of a fixed size or one that grows to fit, using one of two
// algorithms: a fast shelf next-fit packer and a denser MaxRects packer.
package pack

import (
	"math/bits"

	"github.com/gazed/atlas/geom"
)

// Packing is the result of packing a set of rectangle sizes into an atlas.
// Rects[i] corresponds to the i-th size passed to Pack; it is the zero
// value if packing failed to place every rectangle.
type Packing struct {
	AtlasSize geom.Vec2[uint32]
	Rects     []geom.Rect[uint32]
}

// Packer places a sequence of rectangle sizes into an atlas.
//
// Pack returns a Packing with one Rect per input size, in the same order.
// If flexible is true the atlas may grow past atlasSize: MaxRects grows
// either side, Shelf grows only the height, so under Shelf a rectangle
// wider than atlasSize still fails. Failure to place a rectangle returns a
// Packing with a nil Rects slice (the capacity-error sentinel of spec §7). If rotate is
// true a rectangle's emitted size may have its width and height swapped.
type Packer interface {
	Pack(sizes []geom.Vec2[uint32], atlasSize geom.Vec2[uint32], flexible, rotate bool) Packing
}

// CeilLog2 returns the smallest k such that 2^k >= num. CeilLog2(0) is 0.
func CeilLog2(num uint64) uint {
	if num == 0 {
		return 0
	}
	if num&(num-1) == 0 { // power of two
		return uint(bits.Len64(num)) - 1
	}
	return uint(bits.Len64(num))
}

// PredictSize derives an initial flexible-mode atlas size from a set of
// rectangle sizes, per spec §4.6: big enough to hold their combined area,
// rounded up to a power-of-two width and height, widened as needed so
// every individual rectangle still fits along its own axis.
func PredictSize(sizes []geom.Vec2[uint32]) geom.Vec2[uint32] {
	var areaSum uint64
	var maxW, maxH uint32
	for _, s := range sizes {
		areaSum += uint64(s.X) * uint64(s.Y)
		if s.X > maxW {
			maxW = s.X
		}
		if s.Y > maxH {
			maxH = s.Y
		}
	}

	areaExp := CeilLog2(areaSum)
	heightExp := areaExp / 2
	widthExp := areaExp - heightExp
	minWidthExp := CeilLog2(uint64(maxW))
	minHeightExp := CeilLog2(uint64(maxH))

	if widthExp < minWidthExp {
		widthExp = minWidthExp
		heightExp = max(minHeightExp, areaExp-widthExp)
	} else if heightExp < minHeightExp {
		heightExp = minHeightExp
		widthExp = max(minWidthExp, areaExp-heightExp)
	}

	return geom.V2(uint32(1)<<widthExp, uint32(1)<<heightExp)
}
