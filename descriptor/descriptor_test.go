// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package descriptor_test

import (
	"strings"
	"testing"

	"github.com/gazed/atlas"
	"github.com/gazed/atlas/descriptor"
	"github.com/gazed/atlas/geom"
	"github.com/gazed/atlas/pack"
)

func fakeResult(ratio uint32) *atlas.Result {
	return &atlas.Result{
		Packing: pack.Packing{
			AtlasSize: geom.V2[uint32](64, 64),
			Rects:     []geom.Rect[uint32]{geom.R[uint32](0, 0, 10, 12)},
		},
		Glyphs: []atlas.GlyphInfo{
			{Rune: 'A', Rect: geom.R[uint32](0, 0, 10, 12), XOffset: 1, YOffset: 2, XAdvance: 11},
		},
		NonDepictable:   map[rune]struct{}{},
		DownsampleRatio: ratio,
		LineHeight:      16,
		Ascent:          12,
		Options:         atlas.BuildOptions{FontSize: 32},
	}
}

func TestBuildBasicFields(t *testing.T) {
	result := fakeResult(1)
	out := descriptor.Build(result, nil, descriptor.Options{
		FaceName: "Test Sans", PageFile: "out.png", Charset: "ANSI",
	})

	for _, want := range []string{
		`info face="Test Sans" size=32 bold=0 italic=0 charset="ANSI" unicode=1`,
		"common lineHeight=16 base=12 scaleW=64 scaleH=64 pages=1 packed=0",
		`page id=0 file="out.png"`,
		"chars count=1",
		"char id=65 x=0 y=0 width=10 height=12 xoffset=1 yoffset=2 xadvance=11 page=0 chnl=15",
		"kernings count=0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing line %q\ngot:\n%s", want, out)
		}
	}
}

func TestBuildScalesByDownsampleRatio(t *testing.T) {
	result := fakeResult(2)
	out := descriptor.Build(result, []atlas.KernPair{{A: 'A', B: 'V', Amount: 3}}, descriptor.Options{})

	for _, want := range []string{
		"common lineHeight=32 base=24 scaleW=128 scaleH=128 pages=1 packed=0",
		"char id=65 x=0 y=0 width=20 height=24 xoffset=2 yoffset=4 xadvance=22 page=0 chnl=15",
		"kerning first=65 second=86 amount=6",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing scaled line %q\ngot:\n%s", want, out)
		}
	}
}

func TestBuildOmitsNonDepictable(t *testing.T) {
	result := fakeResult(1)
	result.NonDepictable[0x2603] = struct{}{}
	out := descriptor.Build(result, nil, descriptor.Options{})
	if strings.Contains(out, "id=9731") { // U+2603 SNOWMAN
		t.Error("non-depictable glyph must not appear as a char line")
	}
}
