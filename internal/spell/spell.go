// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spell proposes an alternative for an identifier query that
// matched nothing in the index.
package spell

import (
	"strings"
	"unicode"
)

// Suggest returns the indexed name most similar to query, or "" when
// nothing comes close. names is the index's name table; only its keys
// are consulted, so it can be passed without copying.
//
// Comparison ignores case and underscores, the two ways Python
// identifiers commonly vary (set_speed, setSpeed, SET_SPEED). A
// candidate qualifies when fixing it takes at most half the query's
// length in edits; ties go to the lexicographically smallest name so
// the suggestion is stable across runs.
func Suggest[V any](query string, names map[string]V) string {
	q := fold(query)
	limit := len(q) / 2

	var best string
	bestD := limit + 1
	for name := range names {
		d := editDistance(q, fold(name))
		if d < bestD || (d == bestD && best != "" && name < best) {
			bestD = d
			best = name
		}
	}
	return best
}

func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '_' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// editDistance returns the Levenshtein distance between a and b,
// computed over two rolling rows of the usual dynamic program.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
