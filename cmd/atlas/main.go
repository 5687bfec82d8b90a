// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command atlas is the CLI surface spec.md §6 describes: two
// subcommands, "atlas" (rasterise a font and pack a glyph atlas) and
// "distfield" (apply a distance transform to an existing 1-bit PNG),
// dispatched the way noisetorch's cli.go builds one flat CLIOpts struct
// from a flag.FlagSet per invocation (see DESIGN.md).
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fail("usage: atlas <atlas|distfield> ...")
	}

	var err error
	switch os.Args[1] {
	case "atlas":
		err = runAtlas(os.Args[2:])
	case "distfield":
		err = runDistfield(os.Args[2:])
	default:
		fail(fmt.Sprintf("unknown subcommand %q (want \"atlas\" or \"distfield\")", os.Args[1]))
	}
	if err != nil {
		fail(err.Error())
	}
}

// fail prints the spec.md §7-mandated "Error: <message>" to stderr and
// exits with code 2.
func fail(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(2)
}
