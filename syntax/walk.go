// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// Walk traverses a syntax tree in depth-first order.
// It starts by calling f(n); n must not be nil.
// If f returns true, Walk calls itself
// recursively for each non-nil child of n,
// then calls f(nil).
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		panic("nil")
	}
	if !f(n) {
		return
	}

	switch n := n.(type) {
	case *Statement:
		for _, a := range n.Assigns {
			for _, t := range a.Targets {
				Walk(t, f)
			}
		}
		for _, x := range n.Exprs {
			Walk(x, f)
		}

	case *ImportStmt:
		if n.From != nil {
			Walk(n.From, f)
		}
		for _, nm := range n.Names {
			Walk(nm, f)
		}

	case *AssertStmt:
		if n.Cond != nil {
			Walk(n.Cond, f)
		}

	case *Name, *Literal:
		// leaves

	case *Call:
		if n.Name != nil {
			Walk(n.Name, f)
		}
		if n.Exec != nil {
			Walk(n.Exec, f)
		}
		if n.Next != nil {
			Walk(n.Next, f)
		}

	case *SeqLit:
		for _, e := range n.Elems {
			Walk(e, f)
		}

	case *MapLit:
		for _, e := range n.Entries {
			Walk(e.Key, f)
			Walk(e.Value, f)
		}

	case *Scope:
		if n.Name != nil {
			Walk(n.Name, f)
		}
		for _, p := range n.Params {
			Walk(p, f)
		}
		for _, b := range n.Body {
			Walk(b, f)
		}

	case *Flow:
		for _, in := range n.Inputs {
			Walk(in, f)
		}
		for _, b := range n.Body {
			Walk(b, f)
		}

	case *Param:
		if n.Name != nil {
			Walk(n.Name, f)
		}
		if n.Default != nil {
			Walk(n.Default, f)
		}

	default:
		panic(fmt.Sprintf("unexpected node type: %T", n))
	}

	f(nil)
}
