// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package index builds a lexical identifier index over a source
// directory: for each identifier, the files referencing it and how
// often. It works at the same cheap textual level as module discovery's
// pre-filter, so it needs no parser. The CLI and the REPL use it to
// answer "where is this name referenced" queries and to seed discovery.
package index

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"go.pyscope.dev/syntax"
)

// schemaVersion is bumped whenever the snapshot format changes.
const schemaVersion uint16 = 1

// An Index maps identifier names to the files referencing them.
type Index struct {
	Schema uint16
	Root   string
	Files  []string         // indexed files, sorted
	Names  map[string][]Ref // identifier -> references, in file order
}

// A Ref counts the occurrences of a name within one file.
type Ref struct {
	Path  string
	Count uint32
}

// Build indexes every source file under dir. Files are scanned in
// parallel; unreadable files are skipped. The result is deterministic:
// files and references are ordered by path.
func Build(dir string) (*Index, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	perFile := make([]map[string]int, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return nil // skip unreadable candidates
			}
			perFile[i] = ScanIdents(src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := &Index{
		Schema: schemaVersion,
		Root:   dir,
		Files:  files,
		Names:  make(map[string][]Ref),
	}
	for i, counts := range perFile {
		for name, n := range counts {
			count, err := safecast.Conv[uint32](n)
			if err != nil {
				count = math.MaxUint32
			}
			ix.Names[name] = append(ix.Names[name], Ref{Path: files[i], Count: count})
		}
	}
	return ix, nil
}

// Refs returns the references of name, in file order.
func (ix *Index) Refs(name string) []Ref { return ix.Names[name] }

// AllNames returns every indexed identifier, sorted.
func (ix *Index) AllNames() []string {
	names := make([]string, 0, len(ix.Names))
	for name := range ix.Names {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Skeleton builds a path-only module for src, with its referenced-name
// table filled at the lexical level. It stands in for the external
// parser where only discovery-grade information is needed.
func Skeleton(path string, src []byte) *syntax.Module {
	m := syntax.NewModule(path)
	for name := range ScanIdents(src) {
		m.UsedNames[name] = nil
	}
	return m
}

// ScanIdents counts the identifiers in raw source text. It is a lexical
// scan: letters and underscores start an identifier, letters, digits and
// underscores continue one. Comments and string contents are not
// distinguished, matching the textual pre-filter used by discovery.
func ScanIdents(src []byte) map[string]int {
	counts := make(map[string]int)
	i := 0
	for i < len(src) {
		c := src[i]
		if !identStart(c) {
			i++
			continue
		}
		j := i + 1
		for j < len(src) && identPart(src[j]) {
			j++
		}
		counts[string(src[i:j])]++
		i = j
	}
	return counts
}

func identStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || (c >= '0' && c <= '9')
}

func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
