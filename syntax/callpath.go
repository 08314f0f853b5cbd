// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A PathSeg is one segment of a flattened call path.
// Each dotted part of each link in a call chain contributes a segment.
type PathSeg struct {
	Name string
	Pos  Position
	Link *Call // the chain link the segment came from
}

// CallPath flattens a chained call or attribute expression into its
// ordered name segments. The expression a.b(x).c(y) flattens to the
// segments a, b, c; argument packs do not contribute segments.
func (x *Call) CallPath() []PathSeg {
	var segs []PathSeg
	for link := x; link != nil; link = link.Next {
		if link.Name == nil {
			continue
		}
		pos := link.Name.NamePos
		for _, part := range link.Name.Parts {
			segs = append(segs, PathSeg{Name: part, Pos: pos, Link: link})
			pos = pos.add(part + ".")
		}
	}
	return segs
}
