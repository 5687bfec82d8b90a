// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package preset holds named sets of codepoints the --preset CLI flag
// can seed a glyph set from, without requiring the caller to type out a
// long run of characters on the command line.
package preset

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

var presets map[string][]rune

func init() {
	var raw struct {
		ASCII          string `yaml:"ascii"`
		Preset20180319 []int  `yaml:"preset20180319"`
	}
	if err := yaml.Unmarshal(presetsYAML, &raw); err != nil {
		panic(fmt.Sprintf("preset: malformed embedded presets.yaml: %v", err))
	}

	asciiRunes := make([]rune, 0, len(raw.ASCII))
	for _, r := range raw.ASCII {
		asciiRunes = append(asciiRunes, r)
	}

	codepoints := make([]rune, len(raw.Preset20180319))
	for i, cp := range raw.Preset20180319 {
		codepoints[i] = rune(cp)
	}

	presets = map[string][]rune{
		"ascii":          asciiRunes,
		"preset20180319": codepoints,
	}
}

// Names returns every known preset name, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runes returns the codepoints in the named preset. ok is false if name
// is not a known preset.
func Runes(name string) (runes []rune, ok bool) {
	r, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make([]rune, len(r))
	copy(out, r)
	return out, true
}
