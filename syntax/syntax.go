// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax defines the syntax-node data model that the inference
// engine operates on.
//
// The nodes form a closed set: every variant the engine must handle is
// declared here, and traversals switch exhaustively over them. Trees are
// produced by an external parser and borrowed by the analysis; nothing in
// this module mutates a tree after construction, with the sole exception
// of Module.IndexNames, which fills in the referenced-name table a parser
// would normally supply.
package syntax

import (
	"slices"
	"strings"
)

// A Node is a node in a parsed-source tree.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)
}

// Start returns the start position of the node.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the node.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// A Stmt is a statement.
type Stmt interface {
	Node
	stmt()
}

func (*Statement) stmt()  {}
func (*ImportStmt) stmt() {}
func (*AssertStmt) stmt() {}

// An Expr is an expression.
type Expr interface {
	Node
	expr()
}

func (*Name) expr()    {}
func (*Call) expr()    {}
func (*SeqLit) expr()  {}
func (*MapLit) expr()  {}
func (*Literal) expr() {}

// A Statement is a simple statement: an ordered list of top-level
// expressions, optionally preceded by assignment target lists.
//
//	a, b = f(x), [g(y)]
type Statement struct {
	StartPos Position
	EndPos   Position
	Assigns  []Assign // assignment target lists, outermost first
	Exprs    []Expr   // right-hand side expression list
	Parent   Node     // enclosing *Scope or *Flow
}

// An Assign is one assignment target list and its operator.
type Assign struct {
	Op      string // "=", "+=", ...
	Targets []Expr
}

func (x *Statement) Span() (start, end Position) {
	return x.StartPos, x.EndPos
}

// Scope returns the innermost scope enclosing the statement.
func (x *Statement) Scope() *Scope {
	for n := x.Parent; n != nil; {
		switch p := n.(type) {
		case *Scope:
			return p
		case *Flow:
			n = p.Parent
		default:
			return nil
		}
	}
	return nil
}

// An ImportStmt binds names from another module:
//
//	import a.b
//	from a import b, c
type ImportStmt struct {
	ImportPos Position
	From      *Name   // module in a from-import; nil otherwise
	Names     []*Name // imported names
	Parent    Node
}

func (x *ImportStmt) Span() (start, end Position) {
	end = x.ImportPos
	if n := len(x.Names); n > 0 {
		_, end = x.Names[n-1].Span()
	}
	return x.ImportPos, end
}

// An AssertStmt is an assertion: assert Cond.
type AssertStmt struct {
	AssertPos Position
	Cond      *Statement
	Parent    Node
}

func (x *AssertStmt) Span() (start, end Position) {
	end = x.AssertPos.add("assert")
	if x.Cond != nil {
		_, end = x.Cond.Span()
	}
	return x.AssertPos, end
}

// A Name is a possibly dotted name reference: a, a.b.c.
type Name struct {
	NamePos Position
	Parts   []string // dotted segments, in order
}

func (x *Name) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.String())
}

// String returns the dotted form of the name.
func (x *Name) String() string { return strings.Join(x.Parts, ".") }

// Last returns the final segment of the name.
func (x *Name) Last() string {
	if len(x.Parts) == 0 {
		return ""
	}
	return x.Parts[len(x.Parts)-1]
}

// Contains reports whether any segment of the name equals s.
func (x *Name) Contains(s string) bool { return slices.Contains(x.Parts, s) }

// A Call is one link in a chained call or attribute expression.
// The expression a.b(x).c(y) is a chain of two links: the head link
// invokes a.b with x, and its Next link invokes c with y against the
// result. A link with a nil Exec is a bare name or attribute reference.
type Call struct {
	StartPos Position
	Name     *Name   // invoked or referenced name
	Exec     *SeqLit // argument pack; nil if the link is not invoked
	Next     *Call   // trailing link applied to this link's result
}

func (x *Call) Span() (start, end Position) {
	last := x
	for last.Next != nil {
		last = last.Next
	}
	switch {
	case last.Exec != nil:
		_, end = last.Exec.Span()
	case last.Name != nil:
		_, end = last.Name.Span()
	default:
		end = last.StartPos
	}
	return x.StartPos, end
}

// A SeqKind distinguishes the sequential container forms.
type SeqKind int8

const (
	ListLit  SeqKind = iota // [ ... ]
	TupleLit                // ( ... )
	SetLit                  // { ... } without keys
	ArgList                 // call argument pack
)

// A SeqLit is a sequential container literal or an argument pack.
// Each element is a full statement, as produced by the parser.
type SeqLit struct {
	Lpos  Position
	Kind  SeqKind
	Elems []*Statement
	Rpos  Position
}

func (x *SeqLit) Span() (start, end Position) {
	return x.Lpos, x.Rpos
}

// A MapLit is a keyed container literal: {k: v, ...}.
type MapLit struct {
	Lpos    Position
	Entries []MapEntry
	Rpos    Position
}

// A MapEntry is one key/value pair of a MapLit.
type MapEntry struct {
	Key   *Statement
	Value *Statement
}

func (x *MapLit) Span() (start, end Position) {
	return x.Lpos, x.Rpos
}

// A Literal is a literal string or number.
type Literal struct {
	TokenPos Position
	Raw      string      // uninterpreted text
	Value    interface{} // = string | int64 | float64
}

func (x *Literal) Span() (start, end Position) {
	return x.TokenPos, x.TokenPos.add(x.Raw)
}

// A ScopeKind distinguishes module, function and class scopes.
type ScopeKind int8

const (
	ModuleScope ScopeKind = iota
	FunctionScope
	ClassScope
)

func (k ScopeKind) String() string {
	switch k {
	case ModuleScope:
		return "module"
	case FunctionScope:
		return "function"
	case ClassScope:
		return "class"
	}
	return "invalid"
}

// A Scope is a module body, function definition or class definition.
type Scope struct {
	Kind     ScopeKind
	StartPos Position
	EndPos   Position
	Name     *Name  // nil for module scopes
	Parent   *Scope // enclosing scope; nil at module level
	Params   []*Param
	Body     []Node        // statements, nested scopes and flows, in order
	Asserts  []*AssertStmt // asserts anywhere in this scope, source order
	Owner    *Module       // module scopes only
}

func (x *Scope) Span() (start, end Position) {
	return x.StartPos, x.EndPos
}

// Module returns the module owning the scope, following parents.
func (x *Scope) Module() *Module {
	for sc := x; sc != nil; sc = sc.Parent {
		if sc.Kind == ModuleScope {
			return sc.Owner
		}
	}
	return nil
}

// Append adds body nodes to the scope, setting their parent links and
// registering asserts.
func (x *Scope) Append(nodes ...Node) {
	for _, n := range nodes {
		setParent(n, x)
		x.Body = append(x.Body, n)
		if a, ok := n.(*AssertStmt); ok {
			x.Asserts = append(x.Asserts, a)
		}
	}
}

// A FlowKind tags a control-flow construct.
type FlowKind int8

const (
	IfFlow FlowKind = iota
	WhileFlow
	ForFlow
	ElseFlow
	TryFlow
)

func (k FlowKind) String() string {
	switch k {
	case IfFlow:
		return "if"
	case WhileFlow:
		return "while"
	case ForFlow:
		return "for"
	case ElseFlow:
		return "else"
	case TryFlow:
		return "try"
	}
	return "invalid"
}

// A Flow is a control-flow construct with an ordered sequence of
// condition inputs and a body.
type Flow struct {
	StartPos Position
	EndPos   Position
	Kind     FlowKind
	Inputs   []*Statement // condition inputs, in order
	Body     []Node
	Parent   Node // enclosing *Scope or *Flow
}

func (x *Flow) Span() (start, end Position) {
	return x.StartPos, x.EndPos
}

// Append adds body nodes to the flow, setting their parent links.
// Asserts are registered on the enclosing scope.
func (x *Flow) Append(nodes ...Node) {
	for _, n := range nodes {
		setParent(n, x)
		x.Body = append(x.Body, n)
		if a, ok := n.(*AssertStmt); ok {
			if sc := x.scope(); sc != nil {
				sc.Asserts = append(sc.Asserts, a)
			}
		}
	}
}

func (x *Flow) scope() *Scope {
	for n := x.Parent; n != nil; {
		switch p := n.(type) {
		case *Scope:
			return p
		case *Flow:
			n = p.Parent
		default:
			return nil
		}
	}
	return nil
}

// A StarKind marks a parameter's unpack form.
type StarKind int8

const (
	NoStar   StarKind = iota
	Star              // *args
	StarStar          // **kwargs
)

// A Param is one parameter declaration of a function.
type Param struct {
	StartPos Position
	Star     StarKind
	Name     *Name
	Default  *Statement // nil if the parameter has no default
	Func     *Scope     // owning function
}

func (x *Param) Span() (start, end Position) {
	end = x.StartPos
	switch {
	case x.Default != nil:
		_, end = x.Default.Span()
	case x.Name != nil:
		_, end = x.Name.Span()
	}
	return x.StartPos, end
}

func setParent(n Node, parent Node) {
	switch n := n.(type) {
	case *Statement:
		n.Parent = parent
	case *ImportStmt:
		n.Parent = parent
	case *AssertStmt:
		n.Parent = parent
	case *Flow:
		n.Parent = parent
	case *Scope:
		if sc, ok := parent.(*Scope); ok {
			n.Parent = sc
		}
	}
}
