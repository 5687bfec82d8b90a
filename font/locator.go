// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package font

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindFont locates an installed font file by family name (case-insensitive,
// matched against the font's file name, or on Windows against the font's
// registry entry name). Each platform provides its own
// search strategy in a locator_<os>.go file, following the same
// filename-selects-the-build convention the ambient template's device
// package uses for its per-OS native layers (os_windows.go, os_darwin.go,
// and so on) — no build tags needed, the Go toolchain picks the right
// file from the GOOS suffix alone.
func FindFont(family string) (string, error) {
	return findFont(family)
}

// walkFontDirs searches dirs (which need not exist) for the first font
// file (.ttf/.otf/.ttc) whose base name contains family, case-insensitive.
func walkFontDirs(dirs []string, family string) (string, error) {
	want := strings.ToLower(family)
	var found string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil || found != "" {
				return nil
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".ttf" && ext != ".otf" && ext != ".ttc" {
				return nil
			}
			name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ext))
			if strings.Contains(name, want) {
				found = path
			}
			return nil
		})
		if found != "" {
			return found, nil
		}
	}
	return "", fmt.Errorf("font: no installed font file found for family %q", family)
}
