// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import "go.pyscope.dev/syntax"

// A Value is a concrete analysis result produced by the evaluator:
// a type, an instance, or a literal value.
type Value interface {
	Type() string
	String() string
}

// A Sequence is a Value holding an ordered collection of values,
// such as a tuple of type references.
type Sequence interface {
	Value
	Elems() []Value
}

// A Definition is one resolution of a name to a definition site.
type Definition interface {
	// Origin returns the underlying function or class scope the
	// definition refers to, unwrapping any evaluator decoration.
	// Definitions are compared by this identity, never by name.
	Origin() *syntax.Scope
}

// FindOptions constrain an Evaluator.FindName search.
type FindOptions struct {
	Pos            syntax.Position // restrict to names visible here; zero means unconstrained
	Global         bool            // search enclosing scopes, not only the given one
	SkipDecorators bool            // do not follow decorators when resolving
}

// An Evaluator is the general expression and name evaluator this package
// re-enters to resolve and execute discovered call sites. It is an
// external collaborator; only its contract is defined here.
//
// Calls into the Evaluator may recurse back into this package. The
// implementation must bound that mutual recursion (by depth or by a
// visited set); without such a bound a cyclic call graph recurses
// indefinitely.
type Evaluator interface {
	// ResolveCallPath resolves the leading segments of a call path
	// against a starting scope, returning the candidate scopes the
	// remaining segments should be searched in.
	ResolveCallPath(s *Session, path []syntax.PathSeg, scope *syntax.Scope, pos syntax.Position) []*syntax.Scope

	// FindName resolves a name within a scope to its definitions.
	FindName(s *Session, scope *syntax.Scope, name string, opts FindOptions) []Definition

	// FollowPath executes the matched call against the given definitions
	// and applies the trailing segments to the results. call is the chain
	// link whose name matched; its Exec holds the argument pack of the
	// execution, so distinct call sites arrive as distinct links.
	// Executing a call against a watched function notifies the session's
	// watchers (Session.ObserveCall) with the observed argument bindings.
	FollowPath(s *Session, call *syntax.Call, rest []syntax.PathSeg, defs []Definition, scope *syntax.Scope)

	// EvalStatement evaluates a statement to its concrete results.
	EvalStatement(s *Session, stmt *syntax.Statement) []Value

	// EvalExpr evaluates a single expression to its concrete results.
	EvalExpr(s *Session, x syntax.Expr) []Value

	// Execute executes or instantiates a value, e.g. a type reference,
	// returning the resulting instances.
	Execute(s *Session, v Value) []Value
}

// A ParseFunc parses one source file into a module. It is supplied by the
// external parser; module discovery invokes it on demand for candidate
// files that pass the textual pre-filter.
type ParseFunc func(path string, src []byte) (*syntax.Module, error)
