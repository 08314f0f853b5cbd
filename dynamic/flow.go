// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import "go.pyscope.dev/syntax"

// guardName is the call recognized as a runtime type guard.
const guardName = "isinstance"

// NarrowType infers a narrowed type set for a variable from the
// control-flow information around it:
//
//	if isinstance(k, str):
//	    k.  # here k is a str
//
// flow is the enclosing construct: a scope (whose asserts are consulted
// in reverse source order, skipping any at or after pos) or a
// single-condition if/while flow. The first source producing a
// non-empty result wins. Everything that is not the exact isinstance
// idiom yields an empty result.
func (s *Session) NarrowType(flow syntax.Node, name string, pos syntax.Position) []Value {
	if !s.settings.DynamicFlowInformation {
		return nil
	}

	if sc, ok := flow.(*syntax.Scope); ok {
		for i := len(sc.Asserts) - 1; i >= 0; i-- {
			a := sc.Asserts[i]
			// Only asserts already executed by the query point count.
			if !pos.IsValid() || !syntax.Start(a).Before(pos) {
				continue
			}
			if r := s.guardTypes(a.Cond, name); len(r) > 0 {
				return r
			}
		}
	}

	if fl, ok := flow.(*syntax.Flow); ok {
		if (fl.Kind == syntax.IfFlow || fl.Kind == syntax.WhileFlow) && len(fl.Inputs) == 1 {
			return s.guardTypes(fl.Inputs[0], name)
		}
	}
	return nil
}

// guardTypes matches one statement against the type-guard idiom
// isinstance(name(), type_or_tuple) and returns the narrowed types.
// Any structural deviation fails the match silently.
func (s *Session) guardTypes(stmt *syntax.Statement, name string) []Value {
	call := soleCall(stmt)
	if call == nil || call.Name == nil || call.Name.String() != guardName {
		return nil
	}
	if call.Exec == nil || len(call.Exec.Elems) != 2 {
		return nil
	}

	obj := soleCall(call.Exec.Elems[0])
	if obj == nil || obj.Name == nil || obj.Name.String() != name {
		return nil
	}

	types := soleExpr(call.Exec.Elems[1])
	switch types.(type) {
	case *syntax.Call, *syntax.Name, *syntax.SeqLit:
		// can denote a single type or a tuple of types
	default:
		return nil
	}

	var result []Value
	for _, v := range s.eval.EvalExpr(s, types) {
		elems := []Value{v}
		if seq, ok := v.(Sequence); ok {
			elems = seq.Elems()
		}
		for _, t := range elems {
			result = append(result, s.eval.Execute(s, t)...)
		}
	}
	return result
}

// soleExpr returns the statement's only top-level expression, or nil.
func soleExpr(stmt *syntax.Statement) syntax.Expr {
	if stmt != nil && len(stmt.Exprs) == 1 {
		return stmt.Exprs[0]
	}
	return nil
}

func soleCall(stmt *syntax.Statement) *syntax.Call {
	c, _ := soleExpr(stmt).(*syntax.Call)
	return c
}
