// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// intsFlag implements flag.Value for spec.md §6's "-c, --charcode <int>...":
// each occurrence of the flag appends one value, and a single occurrence
// may also list several comma-separated values.
type intsFlag []int64

func (f *intsFlag) String() string {
	if f == nil {
		return ""
	}
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

func (f *intsFlag) Set(s string) error {
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseInt(tok, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid charcode %q: %w", tok, err)
		}
		*f = append(*f, v)
	}
	return nil
}

// parseDynamicRange parses spec.md §6's "-r, --dynamicrange <black>
// <white>" pair, accepted as a single flag value ("-30 20" or "-30,20")
// since Go's flag package, unlike the original's CLI11 parser, does not
// support a single flag consuming two separate argv tokens.
func parseDynamicRange(s string) (black, white float32, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("--dynamicrange wants two numbers, e.g. \"-30 20\", got %q", s)
	}
	b, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dynamic range black value %q: %w", fields[0], err)
	}
	w, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid dynamic range white value %q: %w", fields[1], err)
	}
	return float32(b), float32(w), nil
}
