// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package atlas

import (
	"errors"
	"testing"

	"github.com/gazed/atlas/distfield"
	"github.com/gazed/atlas/raster"
)

func TestUniqueSortedDedupsAndOrders(t *testing.T) {
	got := uniqueSorted([]rune{'c', 'a', 'c', 'b', 'a'})
	want := []rune{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBitDepthFor(t *testing.T) {
	if d := bitDepthFor(1); d != raster.Depth1 {
		t.Errorf("bitDepthFor(1) = %v, want Depth1", d)
	}
	if d := bitDepthFor(8); d != raster.Depth8 {
		t.Errorf("bitDepthFor(8) = %v, want Depth8", d)
	}
}

func TestTransformFor(t *testing.T) {
	if _, ok := transformFor(Parabola).(distfield.Parabola); !ok {
		t.Error("transformFor(Parabola) did not return a Parabola transform")
	}
	if _, ok := transformFor(DeadReckoning).(distfield.DeadReckoning); !ok {
		t.Error("transformFor(DeadReckoning) did not return a DeadReckoning transform")
	}
}

func TestResolveFontBytesRequiresOneSource(t *testing.T) {
	_, err := resolveFontBytes(BuildOptions{})
	if err == nil {
		t.Fatal("expected an error when neither FontBytes nor FontPath is set")
	}
	var atlasErr *Error
	if !errors.As(err, &atlasErr) || atlasErr.Kind != ErrArgument {
		t.Errorf("expected ErrArgument, got %v", err)
	}
}

func TestResolveFontBytesMissingFile(t *testing.T) {
	_, err := resolveFontBytes(BuildOptions{FontPath: "/nonexistent/does-not-exist.ttf"})
	var atlasErr *Error
	if !errors.As(err, &atlasErr) || atlasErr.Kind != ErrInputNotFound {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
}

func TestBuildOptionsRatioDefaultsToOne(t *testing.T) {
	if r := (BuildOptions{}).ratio(); r != 1 {
		t.Errorf("zero-value Downsampling should ratio to 1, got %d", r)
	}
	if r := (BuildOptions{Downsampling: 4}).ratio(); r != 4 {
		t.Errorf("ratio() should pass through an explicit Downsampling, got %d", r)
	}
}
