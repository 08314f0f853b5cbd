package dynamic

// Shared fixtures: tree builders and fake collaborators. Tests in this
// package hand-build syntax trees (the parser is an external
// collaborator) and drive the engines through a scriptable evaluator.

import (
	"go.pyscope.dev/syntax"
)

func pos(line, col int32) syntax.Position {
	return syntax.Position{Line: line, Col: col}
}

func nm(line int32, parts ...string) *syntax.Name {
	return &syntax.Name{NamePos: pos(line, 1), Parts: parts}
}

func intLit(v int64) *syntax.Literal {
	return &syntax.Literal{Raw: "0", Value: v}
}

func stmtOf(xs ...syntax.Expr) *syntax.Statement {
	return &syntax.Statement{Exprs: xs}
}

func argPack(elems ...*syntax.Statement) *syntax.SeqLit {
	return &syntax.SeqLit{Kind: syntax.ArgList, Elems: elems}
}

// callx builds an invoked chain link; attr builds a bare reference link.
func callx(n *syntax.Name, args ...*syntax.Statement) *syntax.Call {
	return &syntax.Call{StartPos: n.NamePos, Name: n, Exec: argPack(args...)}
}

func attr(n *syntax.Name) *syntax.Call {
	return &syntax.Call{StartPos: n.NamePos, Name: n}
}

// newFunc adds a function scope with the given parameters to mod.
func newFunc(mod *syntax.Module, line int32, name string, params ...string) *syntax.Scope {
	fn := &syntax.Scope{
		Kind:     syntax.FunctionScope,
		StartPos: pos(line, 1),
		Name:     nm(line, name),
	}
	for _, p := range params {
		fn.Params = append(fn.Params, &syntax.Param{StartPos: pos(line, 1), Name: nm(line, p), Func: fn})
	}
	mod.Scope.Append(fn)
	return fn
}

// guardStmt builds the statement isinstance(v(), t).
func guardStmt(line int32, v string, types syntax.Expr) *syntax.Statement {
	return stmtOf(callx(nm(line, "isinstance"),
		stmtOf(attr(nm(line, v))),
		stmtOf(types),
	))
}

// fakeEval is a scriptable Evaluator; nil hooks return empty results.
type fakeEval struct {
	resolvePath func(*Session, []syntax.PathSeg, *syntax.Scope, syntax.Position) []*syntax.Scope
	findName    func(*Session, *syntax.Scope, string, FindOptions) []Definition
	followPath  func(*Session, *syntax.Call, []syntax.PathSeg, []Definition, *syntax.Scope)
	evalStmt    func(*Session, *syntax.Statement) []Value
	evalExpr    func(*Session, syntax.Expr) []Value
	execute     func(*Session, Value) []Value
}

func (e *fakeEval) ResolveCallPath(s *Session, path []syntax.PathSeg, scope *syntax.Scope, pos syntax.Position) []*syntax.Scope {
	if e.resolvePath == nil {
		return nil
	}
	return e.resolvePath(s, path, scope, pos)
}

func (e *fakeEval) FindName(s *Session, scope *syntax.Scope, name string, opts FindOptions) []Definition {
	if e.findName == nil {
		return nil
	}
	return e.findName(s, scope, name, opts)
}

func (e *fakeEval) FollowPath(s *Session, call *syntax.Call, rest []syntax.PathSeg, defs []Definition, scope *syntax.Scope) {
	if e.followPath != nil {
		e.followPath(s, call, rest, defs, scope)
	}
}

// observeArgs is a followPath hook behaving like a real evaluator: it
// executes the matched link by binding its arguments, in order, to the
// declared parameter names of fn.
func observeArgs(fn *syntax.Scope) func(*Session, *syntax.Call, []syntax.PathSeg, []Definition, *syntax.Scope) {
	return func(s *Session, call *syntax.Call, rest []syntax.PathSeg, defs []Definition, scope *syntax.Scope) {
		if call.Exec == nil {
			return
		}
		var bindings []Binding
		for i, arg := range call.Exec.Elems {
			if i < len(fn.Params) {
				bindings = append(bindings, Binding{Name: fn.Params[i].Name.Last(), Value: arg})
			}
		}
		s.ObserveCall(fn, bindings)
	}
}

func (e *fakeEval) EvalStatement(s *Session, stmt *syntax.Statement) []Value {
	if e.evalStmt == nil {
		return nil
	}
	return e.evalStmt(s, stmt)
}

func (e *fakeEval) EvalExpr(s *Session, x syntax.Expr) []Value {
	if e.evalExpr == nil {
		return nil
	}
	return e.evalExpr(s, x)
}

func (e *fakeEval) Execute(s *Session, v Value) []Value {
	if e.execute == nil {
		return nil
	}
	return e.execute(s, v)
}

// typeEval evaluates name expressions to type references and executes
// type references to instances; enough for the narrowing tests.
func typeEval() *fakeEval {
	return &fakeEval{
		evalExpr: func(s *Session, x syntax.Expr) []Value {
			switch x := x.(type) {
			case *syntax.Name:
				return []Value{typeVal(x.Last())}
			case *syntax.Call:
				if x.Name != nil {
					return []Value{typeVal(x.Name.Last())}
				}
			case *syntax.SeqLit:
				var elems []Value
				for _, e := range x.Elems {
					if n, ok := e.Exprs[0].(*syntax.Call); ok && n.Name != nil {
						elems = append(elems, typeVal(n.Name.Last()))
					}
				}
				return []Value{tupleVal(elems)}
			}
			return nil
		},
		execute: func(s *Session, v Value) []Value {
			if t, ok := v.(typeVal); ok {
				return []Value{instVal(t)}
			}
			return nil
		},
	}
}

type typeVal string // a type reference

func (v typeVal) Type() string   { return "type" }
func (v typeVal) String() string { return string(v) }

type instVal string // an instance of the named type

func (v instVal) Type() string   { return string(v) }
func (v instVal) String() string { return string(v) + "()" }

type tupleVal []Value // a tuple of type references

func (v tupleVal) Type() string   { return "tuple" }
func (v tupleVal) String() string { return "(...)" }
func (v tupleVal) Elems() []Value { return v }

type fakeDef struct{ origin *syntax.Scope }

func (d fakeDef) Origin() *syntax.Scope { return d.origin }
