// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The pyscope command inspects a source tree the way the dynamic
// inference engines see it: it indexes identifiers, lists references,
// and shows the deterministic module-discovery order for a name.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.pyscope.dev/dynamic"
	"go.pyscope.dev/internal/index"
	"go.pyscope.dev/syntax"
)

const cacheApp = "pyscope"

var rootCmd = &cobra.Command{
	Use:   "pyscope",
	Short: "Dynamic-inference tooling for Python sources",
	Long:  `pyscope indexes identifiers and answers discovery queries over a source tree`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch mode, _ := cmd.Flags().GetString("color"); mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		default:
			color.NoColor = !isTerminal(os.Stdout)
		}
	},
}

func main() {
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(refsCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("settings", "", "TOML settings file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadSettings reads the --settings file, or the defaults without one.
func loadSettings(cmd *cobra.Command) (dynamic.Settings, error) {
	path, _ := cmd.Flags().GetString("settings")
	if path == "" {
		return dynamic.DefaultSettings(), nil
	}
	return dynamic.LoadSettings(path)
}

// newSession builds a discovery-grade session: modules are parsed at the
// lexical level only (the full parser and evaluator are collaborators of
// the library, not of this tool).
func newSession(settings dynamic.Settings) *dynamic.Session {
	parse := func(path string, src []byte) (*syntax.Module, error) {
		return index.Skeleton(path, src), nil
	}
	return dynamic.NewSession(nil, parse, settings)
}

// seedModules loads the given paths as skeleton seed modules.
func seedModules(paths []string) ([]*syntax.Module, error) {
	var seeds []*syntax.Module
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", p, err)
		}
		seeds = append(seeds, index.Skeleton(p, src))
	}
	return seeds, nil
}
