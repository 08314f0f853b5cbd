// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"bytes"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.pyscope.dev/syntax"
)

// sourceExt is the recognized source-file extension.
const sourceExt = ".py"

func isSourcePath(path string) bool {
	return strings.HasSuffix(path, sourceExt)
}

// Discover returns a lazy sequence of candidate modules that may
// reference name. The seed modules are yielded first (those with no path
// or a recognized source extension). If cross-module search is enabled,
// the sequence continues with the sibling source files of every seed's
// directory plus the configured extra paths, in lexicographic path order
// so two runs over the same file system yield the same sequence. Files
// are loaded cache-first; an uncached file is parsed only if its raw
// text contains name. Read, decode or parse failures skip the file.
//
// The sequence is restartable by calling Discover again; it is not
// resumable.
func (s *Session) Discover(seeds []*syntax.Module, name string) iter.Seq[*syntax.Module] {
	return func(yield func(*syntax.Module) bool) {
		seen := make(map[string]bool)
		for _, m := range seeds {
			if m.Path != "" && !isSourcePath(m.Path) {
				continue
			}
			seen[m.Path] = true
			if !yield(m) {
				return
			}
		}

		if !s.settings.DynamicParamsForOtherModules {
			return
		}

		candidates := make(map[string]bool)
		for _, p := range s.settings.AdditionalDynamicModules {
			if !seen[p] {
				candidates[p] = true
			}
		}
		dirs := make(map[string]bool)
		for p := range seen {
			if p != "" {
				dirs[filepath.Dir(p)] = true
			}
		}
		for dir := range dirs {
			entries, err := os.ReadDir(dir)
			if err != nil {
				continue // partial failures must not abort discovery
			}
			for _, e := range entries {
				if e.IsDir() || !isSourcePath(e.Name()) {
					continue
				}
				full := filepath.Join(dir, e.Name())
				if !seen[full] {
					candidates[full] = true
				}
			}
		}

		for _, p := range slices.Sorted(maps.Keys(candidates)) {
			m := s.loadCandidate(p, name)
			if m == nil {
				continue
			}
			if !yield(m) {
				return
			}
		}
	}
}

// loadCandidate returns the module for path, consulting the session's
// module cache first. An uncached file is read and parsed only if its
// text contains name; any failure yields nil.
func (s *Session) loadCandidate(path, name string) *syntax.Module {
	if m, ok := s.modules[path]; ok {
		return m
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	if !bytes.Contains(src, []byte(name)) {
		return nil // cannot possibly reference the name
	}
	if s.parse == nil {
		return nil
	}
	m, err := s.parse(path, src)
	if err != nil || m == nil {
		return nil
	}
	s.modules[path] = m
	return m
}
