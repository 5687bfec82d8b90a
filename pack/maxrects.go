// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package pack

import (
	"math"

	"github.com/gazed/atlas/geom"
)

// MaxRects packs rectangles by maintaining the set of maximal free
// rectangles remaining in the atlas and, for each input, choosing the free
// rectangle that best matches it by the Best-Short-Side-Fit heuristic.
// Denser than Shelf, at higher per-placement cost.
type MaxRects struct{}

// Pack implements Packer.
func (MaxRects) Pack(sizes []geom.Vec2[uint32], atlasSize geom.Vec2[uint32], flexible, rotate bool) Packing {
	m := &maxRectsState{
		atlasSize: atlasSize,
		flexible:  flexible,
		freeList:  []geom.Rect[uint32]{{Position: geom.Vec2[uint32]{}, Size: atlasSize}},
	}
	rects := make([]geom.Rect[uint32], len(sizes))
	for i, size := range sizes {
		placed, ok := m.pack(size, rotate)
		if !ok {
			return Packing{}
		}
		rects[i] = placed
	}
	return Packing{AtlasSize: m.atlasSize, Rects: rects}
}

type maxRectsState struct {
	atlasSize geom.Vec2[uint32]
	flexible  bool
	freeList  []geom.Rect[uint32]
}

// bssfScore scores how well toBePlaced fits into free using the Best
// Short Side Fit heuristic; a math.MaxUint64 score marks "does not fit".
func bssfScore(free, toBePlaced geom.Rect[uint32]) uint64 {
	if !free.CanContain(toBePlaced) {
		return math.MaxUint64
	}
	remW := uint64(free.Size.X) - uint64(toBePlaced.Size.X)
	remH := uint64(free.Size.Y) - uint64(toBePlaced.Size.Y)
	if remW < remH {
		return remW
	}
	return remH
}

// findFreeRect selects the best-scoring free rectangle for size, trying
// the rotated orientation too when rotate is allowed, and returns the
// chosen free-list index along with the (possibly swapped) size to place.
func (m *maxRectsState) findFreeRect(size geom.Vec2[uint32], rotate bool) (idx int, placedSize geom.Vec2[uint32], score uint64) {
	idx, score = -1, math.MaxUint64
	candidate := geom.Rect[uint32]{Size: size}
	for i, free := range m.freeList {
		if s := bssfScore(free, candidate); s < score {
			idx, score, placedSize = i, s, size
		}
	}

	if rotate {
		rotated := geom.Rect[uint32]{Size: size.Swap()}
		rIdx, rScore := -1, uint64(math.MaxUint64)
		for i, free := range m.freeList {
			if s := bssfScore(free, rotated); s < rScore {
				rIdx, rScore = i, s
			}
		}
		if rIdx >= 0 && rScore < score {
			return rIdx, rotated.Size, rScore
		}
	}
	return idx, placedSize, score
}

func (m *maxRectsState) pack(size geom.Vec2[uint32], rotate bool) (geom.Rect[uint32], bool) {
	idx, placedSize, score := m.findFreeRect(size, rotate)
	for score == math.MaxUint64 {
		if !m.flexible {
			return geom.Rect[uint32]{}, false
		}
		m.grow()
		idx, placedSize, score = m.findFreeRect(size, rotate)
	}

	placed := geom.Rect[uint32]{Position: m.freeList[idx].Position, Size: placedSize}
	m.cropFreeList(placed)
	m.pruneFreeList()
	return placed, true
}

// grow doubles the shorter side of the atlas (height, on a tie), extending
// every free rectangle that touched the far edge along that axis and
// adding the newly opened strip as a free rectangle, so the free-list
// stays consistent with the wider/taller atlas in one step.
func (m *maxRectsState) grow() {
	if m.atlasSize.X < m.atlasSize.Y {
		old := m.atlasSize.X
		for i, free := range m.freeList {
			if free.Position.X+free.Size.X == m.atlasSize.X {
				m.freeList[i].Size.X += old
			}
		}
		m.atlasSize.X *= 2
		m.freeList = append(m.freeList, geom.R(old, 0, old, m.atlasSize.Y))
	} else {
		old := m.atlasSize.Y
		for i, free := range m.freeList {
			if free.Position.Y+free.Size.Y == m.atlasSize.Y {
				m.freeList[i].Size.Y += old
			}
		}
		m.atlasSize.Y *= 2
		m.freeList = append(m.freeList, geom.R(0, old, m.atlasSize.X, old))
	}
}

// cropFreeList replaces every free rectangle that intersects placed with
// the up to 4 maximal sub-rectangles remaining after subtracting placed.
func (m *maxRectsState) cropFreeList(placed geom.Rect[uint32]) {
	kept := make([]geom.Rect[uint32], 0, len(m.freeList))
	for _, free := range m.freeList {
		if !free.Overlaps(placed) {
			kept = append(kept, free)
			continue
		}
		// A free rectangle wholly covered by placed yields no pieces and is dropped.
		kept = append(kept, cropRect(free, placed)...)
	}
	m.freeList = kept
}

// cropRect subtracts bbox from rect, returning the maximal (possibly
// overlapping) sub-rectangles of rect that remain outside bbox. Returns
// nil if rect does not intersect bbox.
func cropRect(rect, bbox geom.Rect[uint32]) []geom.Rect[uint32] {
	rectMin, rectMax := rect.Position, rect.Max()
	bboxMin, bboxMax := bbox.Position, bbox.Max()
	var out []geom.Rect[uint32]

	if bboxMin.X < rectMax.X && bboxMax.X > rectMin.X {
		if inRange(bboxMin.Y, rectMin.Y, rectMax.Y) {
			out = append(out, geom.Rect[uint32]{Position: rectMin, Size: geom.V2(rect.Size.X, bboxMin.Y-rectMin.Y)})
		}
		if inRange(bboxMax.Y, rectMin.Y, rectMax.Y) {
			out = append(out, geom.Rect[uint32]{Position: geom.V2(rectMin.X, bboxMax.Y), Size: geom.V2(rect.Size.X, rectMax.Y-bboxMax.Y)})
		}
	}

	if bboxMin.Y < rectMax.Y && bboxMax.Y > rectMin.Y {
		if inRange(bboxMin.X, rectMin.X, rectMax.X) {
			out = append(out, geom.Rect[uint32]{Position: rectMin, Size: geom.V2(bboxMin.X-rectMin.X, rect.Size.Y)})
		}
		if inRange(bboxMax.X, rectMin.X, rectMax.X) {
			out = append(out, geom.Rect[uint32]{Position: geom.V2(bboxMax.X, rectMin.Y), Size: geom.V2(rectMax.X-bboxMax.X, rect.Size.Y)})
		}
	}
	return out
}

func inRange(v, lo, hi uint32) bool { return v > lo && v < hi }

// pruneFreeList removes every free rectangle wholly contained in another,
// by swapping it to the end of the slice and shrinking.
func (m *maxRectsState) pruneFreeList() {
	if len(m.freeList) == 0 {
		return
	}
	end := len(m.freeList) - 1
	for i := 0; i < end; i++ {
		for j := i + 1; j <= end; {
			if m.freeList[i].Contains(m.freeList[j]) {
				m.freeList[j] = m.freeList[end]
				end--
			} else if m.freeList[j].Contains(m.freeList[i]) {
				m.freeList[i] = m.freeList[end]
				end--
				break
			} else {
				j++
			}
		}
	}
	m.freeList = m.freeList[:end+1]
}
