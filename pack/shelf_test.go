// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package pack

import (
	"testing"

	"github.com/gazed/atlas/geom"
)

func packedDisjoint(t *testing.T, p Packing) {
	t.Helper()
	for i := range p.Rects {
		for j := i + 1; j < len(p.Rects); j++ {
			if p.Rects[i].Overlaps(p.Rects[j]) {
				t.Errorf("rects %d and %d overlap: %v, %v", i, j, p.Rects[i], p.Rects[j])
			}
		}
	}
}

func packedWithinAtlas(t *testing.T, p Packing) {
	t.Helper()
	bounds := geom.R[uint32](0, 0, p.AtlasSize.X, p.AtlasSize.Y)
	for i, r := range p.Rects {
		if !bounds.Contains(r) {
			t.Errorf("rect %d %v not contained in atlas %v", i, r, p.AtlasSize)
		}
	}
}

func TestShelfPacksDisjointAndComplete(t *testing.T) {
	sizes := []geom.Vec2[uint32]{geom.V2[uint32](3, 2), geom.V2[uint32](4, 5), geom.V2[uint32](2, 2)}
	p := Shelf{}.Pack(sizes, geom.V2[uint32](16, 16), false, false)
	if len(p.Rects) != len(sizes) {
		t.Fatalf("got %d rects, want %d", len(p.Rects), len(sizes))
	}
	packedDisjoint(t, p)
	packedWithinAtlas(t, p)
	for i, r := range p.Rects {
		if r.Size != sizes[i] {
			t.Errorf("rect %d size = %v, want %v", i, r.Size, sizes[i])
		}
	}
}

func TestShelfRejectsWhenFixed(t *testing.T) {
	sizes := []geom.Vec2[uint32]{geom.V2[uint32](2, 1)}
	p := Shelf{}.Pack(sizes, geom.V2[uint32](1, 1), false, false)
	if p.Rects != nil {
		t.Errorf("expected rejection, got %v", p)
	}
}

func TestShelfFitsExactAtlas(t *testing.T) {
	sizes := []geom.Vec2[uint32]{geom.V2[uint32](1, 1)}
	p := Shelf{}.Pack(sizes, geom.V2[uint32](1, 1), false, false)
	if len(p.Rects) != 1 || p.Rects[0] != geom.R[uint32](0, 0, 1, 1) {
		t.Errorf("got %v", p)
	}
}

func TestShelfRotationPlacesBothOrientations(t *testing.T) {
	sizes := []geom.Vec2[uint32]{geom.V2[uint32](2, 1), geom.V2[uint32](1, 2)}
	p := Shelf{}.Pack(sizes, geom.V2[uint32](2, 2), false, true)
	if len(p.Rects) != 2 {
		t.Fatalf("got %d rects", len(p.Rects))
	}
	packedDisjoint(t, p)
	packedWithinAtlas(t, p)
}

func TestShelfGrowsWhenFlexible(t *testing.T) {
	sizes := []geom.Vec2[uint32]{
		geom.V2[uint32](1, 2), geom.V2[uint32](3, 4),
		geom.V2[uint32](5, 6), geom.V2[uint32](7, 8),
	}
	p := Shelf{}.Pack(sizes, geom.V2[uint32](8, 4), true, false)
	if len(p.Rects) != len(sizes) {
		t.Fatalf("got %d rects, want %d", len(p.Rects), len(sizes))
	}
	packedDisjoint(t, p)
	packedWithinAtlas(t, p)
}

func TestCeilLog2(t *testing.T) {
	cases := []struct {
		in   uint64
		want uint
	}{
		{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3},
		{1 << 10, 10}, {1<<10 + 1, 11},
	}
	for _, c := range cases {
		if got := CeilLog2(c.in); got != c.want {
			t.Errorf("CeilLog2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPredictSizeFitsEveryRect(t *testing.T) {
	sizes := []geom.Vec2[uint32]{geom.V2[uint32](1, 2), geom.V2[uint32](3, 4), geom.V2[uint32](5, 6), geom.V2[uint32](7, 8)}
	pred := PredictSize(sizes)
	for _, s := range sizes {
		if s.X > pred.X || s.Y > pred.Y {
			t.Errorf("predicted size %v too small for rect %v", pred, s)
		}
	}
}
