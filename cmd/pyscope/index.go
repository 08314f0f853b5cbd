// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.pyscope.dev/internal/index"
)

var indexCmd = &cobra.Command{
	Use:   "index <dir>",
	Short: "Build (or refresh) the identifier index of a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix, err := index.Open(cacheApp, args[0])
		if err != nil {
			return err
		}
		color.New(color.Bold).Printf("%s\n", ix.Root)
		fmt.Printf("  files: %d\n", len(ix.Files))
		fmt.Printf("  names: %d\n", len(ix.Names))
		return nil
	},
}

var refsCmd = &cobra.Command{
	Use:   "refs <name> <dir>",
	Short: "List the files referencing a name, with counts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, dir := args[0], args[1]
		ix, err := index.Open(cacheApp, dir)
		if err != nil {
			return err
		}
		refs := ix.Refs(name)
		if len(refs) == 0 {
			fmt.Printf("no references to %s\n", name)
			return nil
		}
		for _, ref := range refs {
			fmt.Printf("%s\t%d\n", ref.Path, ref.Count)
		}
		return nil
	},
}
