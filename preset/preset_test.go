// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package preset

import "testing"

func TestASCIIPresetExcludesSpace(t *testing.T) {
	runes, ok := Runes("ascii")
	if !ok {
		t.Fatal("expected ascii preset to exist")
	}
	if len(runes) != 94 {
		t.Errorf("got %d runes, want 94", len(runes))
	}
	for _, r := range runes {
		if r == ' ' {
			t.Error("ascii preset should exclude space")
		}
		if r < '!' || r > '~' {
			t.Errorf("rune %q outside printable ASCII range", r)
		}
	}
}

func TestPreset20180319Count(t *testing.T) {
	runes, ok := Runes("preset20180319")
	if !ok {
		t.Fatal("expected preset20180319 to exist")
	}
	if len(runes) != 282 {
		t.Errorf("got %d runes, want 282", len(runes))
	}
}

func TestUnknownPresetNotOK(t *testing.T) {
	if _, ok := Runes("does-not-exist"); ok {
		t.Error("expected unknown preset to report !ok")
	}
}

func TestRunesReturnsACopy(t *testing.T) {
	a, _ := Runes("ascii")
	a[0] = 'Z'
	b, _ := Runes("ascii")
	if b[0] == 'Z' {
		t.Error("mutating one Runes() result should not affect another")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
}
