// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package distfield

import (
	"math"
	"testing"

	"github.com/gazed/atlas/raster"
)

// square builds a 1-bit mask with a foreground square occupying
// [lo, hi) x [lo, hi) inside a w x h grid.
func square(t *testing.T, w, h, lo, hi uint32) *raster.Image {
	t.Helper()
	img, err := raster.New(w, h, raster.Depth1)
	if err != nil {
		t.Fatal(err)
	}
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			img.SetPixelU32(x, y, 1)
		}
	}
	return img
}

func TestDeadReckoningBoundaryIsZero(t *testing.T) {
	img := square(t, 10, 10, 3, 7)
	out, err := DeadReckoning{}.Compute(img)
	if err != nil {
		t.Fatal(err)
	}
	if v := out.AtFloat32(3, 3); v != 0 {
		t.Errorf("boundary pixel (3,3) = %v, want 0", v)
	}
	if v := out.AtFloat32(0, 0); v <= 0 {
		t.Errorf("background corner should be strictly positive, got %v", v)
	}
	if v := out.AtFloat32(5, 5); v >= 0 {
		t.Errorf("foreground interior should be strictly negative, got %v", v)
	}
}

func TestParabolaBoundaryIsZero(t *testing.T) {
	img := square(t, 10, 10, 3, 7)
	out, err := Parabola{}.Compute(img)
	if err != nil {
		t.Fatal(err)
	}
	if v := out.AtFloat32(3, 3); v != 0 {
		t.Errorf("boundary pixel (3,3) = %v, want 0", v)
	}
	if v := out.AtFloat32(0, 0); v <= 0 {
		t.Errorf("background corner should be strictly positive, got %v", v)
	}
	if v := out.AtFloat32(5, 5); v >= 0 {
		t.Errorf("foreground interior should be strictly negative, got %v", v)
	}
}

func TestParabolaExactDistanceFromSinglePixel(t *testing.T) {
	img, err := raster.New(11, 11, raster.Depth1)
	if err != nil {
		t.Fatal(err)
	}
	img.SetPixelU32(5, 5, 1)
	out, err := Parabola{}.Compute(img)
	if err != nil {
		t.Fatal(err)
	}
	want := float32(math.Hypot(3, 4))
	if got := out.AtFloat32(8, 9); math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("distance from (8,9) to (5,5) = %v, want %v", got, want)
	}
}

func TestDeadReckoningMonotoneAwayFromBoundary(t *testing.T) {
	img := square(t, 20, 20, 8, 12)
	out, err := DeadReckoning{}.Compute(img)
	if err != nil {
		t.Fatal(err)
	}
	prev := float32(0)
	for x := uint32(12); x < 19; x++ {
		v := out.AtFloat32(x, 10)
		if v < prev {
			t.Errorf("distance decreased moving away from boundary at x=%d: %v < %v", x, v, prev)
		}
		prev = v
	}
}

func TestTransformImplementsInterface(t *testing.T) {
	var _ Transform = DeadReckoning{}
	var _ Transform = Parabola{}
}
