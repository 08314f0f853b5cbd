// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// A Position describes the location of a rune of input.
// The zero Position is invalid and means "position unknown".
type Position struct {
	Path string // name of file
	Line int32  // 1-based line number; 0 if unknown
	Col  int32  // 1-based column (rune) number; 0 if unknown
}

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.Line > 0 }

// Before reports whether p appears strictly before q in the same file.
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}

func (p Position) String() string {
	if p.Path != "" {
		if p.IsValid() {
			return fmt.Sprintf("%s:%d:%d", p.Path, p.Line, p.Col)
		}
		return p.Path
	}
	if p.IsValid() {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return "<unknown>"
}

// add returns the position at the end of s, assuming it is on one line.
func (p Position) add(s string) Position {
	p.Col += int32(len(s))
	return p
}
