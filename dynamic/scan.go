// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import "go.pyscope.dev/syntax"

// ScanCalls returns every call expression in stmt that invokes name,
// descending into container literals, chained call links, and argument
// packs. Each match is reported as the head of its chain, so the full
// call path remains available to the caller. ScanCalls is a pure
// function of its inputs; absent matches yield an empty result.
func ScanCalls(stmt *syntax.Statement, name string) []*syntax.Call {
	return scanStatement(stmt, name, false)
}

// scanStatement is ScanCalls plus an option to scan assignment target
// lists as well.
func scanStatement(stmt *syntax.Statement, name string, assigns bool) []*syntax.Call {
	var check []syntax.Expr
	check = append(check, stmt.Exprs...)
	if assigns {
		for _, a := range stmt.Assigns {
			check = append(check, a.Targets...)
		}
	}

	var result []*syntax.Call
	for _, x := range check {
		switch x := x.(type) {
		case *syntax.SeqLit:
			result = append(result, scanSeq(x, name)...)

		case *syntax.MapLit:
			for _, e := range x.Entries {
				result = append(result, scanStatement(e.Key, name, false)...)
				result = append(result, scanStatement(e.Value, name, false)...)
			}

		case *syntax.Call:
			for link := x; link != nil; link = link.Next {
				if link.Name != nil && link.Name.Contains(name) {
					result = append(result, x)
				}
				// Arguments may hide further call sites:
				// foo(bar(baz)) must find baz.
				if link.Exec != nil {
					result = append(result, scanSeq(link.Exec, name)...)
				}
			}
		}
	}
	return result
}

func scanSeq(arr *syntax.SeqLit, name string) []*syntax.Call {
	var result []*syntax.Call
	for _, elem := range arr.Elems {
		result = append(result, scanStatement(elem, name, false)...)
	}
	return result
}
