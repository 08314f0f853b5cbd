// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <name> <seed.py>...",
	Short: "Show the module-discovery order for a name",
	Long: `Discover lists, in order, the candidate modules the inference engine
would search for call sites of the given name, starting from the seed
modules. The order is deterministic; files whose text does not contain
the name are filtered out before parsing.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		seeds, err := seedModules(args[1:])
		if err != nil {
			return err
		}
		sess := newSession(settings)
		n := 0
		for m := range sess.Discover(seeds, args[0]) {
			n++
			fmt.Printf("%2d. %s\n", n, m.Path)
		}
		if n == 0 {
			fmt.Println("no candidates")
		}
		return nil
	},
}
