// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package font

import (
	"os"
	"path/filepath"
)

func findFont(family string) (string, error) {
	home, _ := os.UserHomeDir()
	dirs := []string{
		"/System/Library/Fonts",
		"/Library/Fonts",
	}
	if home != "" {
		dirs = append(dirs, filepath.Join(home, "Library/Fonts"))
	}
	return walkFontDirs(dirs, family)
}
