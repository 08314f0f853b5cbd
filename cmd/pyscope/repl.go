// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"go.pyscope.dev/internal/index"
	"go.pyscope.dev/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl <dir> [seed.py...]",
	Short: "Interactively query names against a directory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		ix, err := index.Open(cacheApp, args[0])
		if err != nil {
			return err
		}
		seedPaths := args[1:]
		if len(seedPaths) == 0 && len(ix.Files) > 0 {
			seedPaths = ix.Files[:1]
		}
		seeds, err := seedModules(seedPaths)
		if err != nil {
			return err
		}
		repl.REPL(newSession(settings), seeds, ix)
		return nil
	},
}
