// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package font

import (
	"image"
	"testing"
)

func TestThresholdToMonoPacksBitsMSBFirst(t *testing.T) {
	src := image.NewAlpha(image.Rect(0, 0, 9, 2))
	src.SetAlpha(0, 0, image.Alpha{A: 255})
	src.SetAlpha(8, 0, image.Alpha{A: 200})
	src.SetAlpha(1, 1, image.Alpha{A: 64})

	mono := thresholdToMono(src)
	if mono.Width != 9 || mono.Rows != 2 || mono.Pitch != 2 {
		t.Fatalf("unexpected dimensions: %+v", mono)
	}
	if mono.Buffer[0]&0x80 == 0 {
		t.Error("pixel (0,0) should be foreground (MSB of byte 0)")
	}
	if mono.Buffer[1]&0x80 == 0 {
		t.Error("pixel (8,0), the first bit of byte 1, should be foreground")
	}
	if mono.Buffer[2] != 0 {
		t.Errorf("row 1 below threshold should be all background, got %08b", mono.Buffer[2])
	}
}

func TestByNameUnknownAlgorithm(t *testing.T) {
	if _, err := ByName("bogus"); err == nil {
		t.Error("expected an error for an unknown downsampling algorithm")
	}
}
