// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package font

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const fontsRegistryPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`

func findFont(family string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, fontsRegistryPath, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("font: open fonts registry key: %w", err)
	}
	defer k.Close()

	names, err := k.ReadValueNames(-1)
	if err != nil {
		return "", fmt.Errorf("font: read fonts registry values: %w", err)
	}

	want := strings.ToLower(family)
	fontsDir := filepath.Join(os.Getenv("SystemRoot"), "Fonts")
	for _, name := range names {
		entry := strings.ToLower(strings.TrimSuffix(name, " (TrueType)"))
		if !strings.Contains(entry, want) {
			continue
		}
		file, _, err := k.GetStringValue(name)
		if err != nil {
			continue
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(fontsDir, file)
		}
		return file, nil
	}
	return "", fmt.Errorf("font: no installed font registered for family %q", family)
}
