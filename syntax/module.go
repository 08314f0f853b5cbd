// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A Module is one parsed source unit.
type Module struct {
	Path  string // source path; empty for synthetic or builtin modules
	Scope *Scope // module-level scope

	// UsedNames maps every name segment referenced in the module to the
	// nodes referencing it, in source order. Values are the outermost
	// *Statement or *ImportStmt containing the reference. It is normally
	// populated by the parser; IndexNames derives it from the tree.
	UsedNames map[string][]Node
}

// NewModule returns a module with an empty module scope.
func NewModule(path string) *Module {
	m := &Module{
		Path:      path,
		UsedNames: make(map[string][]Node),
	}
	m.Scope = &Scope{
		Kind:     ModuleScope,
		StartPos: Position{Path: path, Line: 1, Col: 1},
		Owner:    m,
	}
	return m
}

// IndexNames rebuilds the module's referenced-name table from its tree.
// Each name segment is recorded under the outermost statement or import
// containing it; a statement appears at most once per name.
func (m *Module) IndexNames() {
	used := make(map[string][]Node)

	var ref Node // outermost enclosing *Statement or *ImportStmt
	var stack []Node
	Walk(m.Scope, func(n Node) bool {
		if n == nil {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top == ref {
				ref = nil
			}
			return true
		}
		stack = append(stack, n)
		switch n := n.(type) {
		case *Statement, *ImportStmt:
			if ref == nil {
				ref = n
			}
		case *Name:
			if ref == nil {
				break
			}
			for _, part := range n.Parts {
				refs := used[part]
				if len(refs) > 0 && refs[len(refs)-1] == ref {
					continue // already recorded for this statement
				}
				used[part] = append(refs, ref)
			}
		}
		return true
	})

	m.UsedNames = used
}
