// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pack

import "github.com/gazed/atlas/geom"

// Shelf packs rectangles left-to-right in horizontal bands ("shelves") of
// uniform height, closing a shelf and opening a new one once the current
// one runs out of width. It is O(n) and fast, at the cost of wasted space
// compared to MaxRects.
type Shelf struct{}

// Pack implements Packer.
func (Shelf) Pack(sizes []geom.Vec2[uint32], atlasSize geom.Vec2[uint32], flexible, rotate bool) Packing {
	s := &shelfState{atlasSize: atlasSize, flexible: flexible}
	rects := make([]geom.Rect[uint32], len(sizes))
	for i, size := range sizes {
		placed, ok := s.packNext(size, rotate)
		if !ok {
			return Packing{}
		}
		rects[i] = placed
	}
	return Packing{AtlasSize: s.atlasSize, Rects: rects}
}

type shelfState struct {
	atlasSize        geom.Vec2[uint32]
	flexible         bool
	currentShelfSize geom.Vec2[uint32] // (used width, height) of the open shelf
	usedHeight       uint32            // y-coordinate of the open shelf's top
}

func (s *shelfState) packNext(size geom.Vec2[uint32], rotate bool) (geom.Rect[uint32], bool) {
	if rotate {
		return s.packNextRotated(size)
	}
	return s.packNextFixed(size)
}

func (s *shelfState) packNextFixed(size geom.Vec2[uint32]) (geom.Rect[uint32], bool) {
	if s.currentShelfSize.X+size.X > s.atlasSize.X {
		s.openShelf()
		if size.X > s.atlasSize.X {
			return geom.Rect[uint32]{}, false
		}
	}

	if s.usedHeight+size.Y > s.atlasSize.Y {
		if !s.flexible {
			return geom.Rect[uint32]{}, false
		}
		finalHeight := s.usedHeight + size.Y
		doublings := CeilLog2(ceilDiv(uint64(finalHeight), uint64(s.atlasSize.Y)))
		s.atlasSize.Y <<= doublings
	}

	return s.store(size), true
}

func (s *shelfState) packNextRotated(size geom.Vec2[uint32]) (geom.Rect[uint32], bool) {
	minSide, maxSide := size.MinMax()
	remainingWidth := s.atlasSize.X - s.currentShelfSize.X
	remainingHeight := s.atlasSize.Y - s.usedHeight

	switch {
	case s.currentShelfSize.Y >= maxSide && remainingWidth >= minSide:
		return s.store(geom.V2(minSide, maxSide)), true
	case remainingWidth >= maxSide && remainingHeight >= minSide:
		return s.store(geom.V2(maxSide, minSide)), true
	default:
		s.openShelf()
		if maxSide > s.atlasSize.X {
			return s.packNextFixed(geom.V2(minSide, maxSide))
		}
		return s.packNextFixed(geom.V2(maxSide, minSide))
	}
}

func (s *shelfState) openShelf() {
	s.usedHeight += s.currentShelfSize.Y
	s.currentShelfSize = geom.Vec2[uint32]{}
}

func (s *shelfState) store(size geom.Vec2[uint32]) geom.Rect[uint32] {
	placed := geom.Rect[uint32]{Position: geom.V2(s.currentShelfSize.X, s.usedHeight), Size: size}
	s.currentShelfSize.X += size.X
	if size.Y > s.currentShelfSize.Y {
		s.currentShelfSize.Y = size.Y
	}
	return placed
}

func ceilDiv(dividend, divisor uint64) uint64 {
	return (dividend + divisor - 1) / divisor
}
