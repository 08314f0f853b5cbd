// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"slices"

	"go.pyscope.dev/syntax"
)

// constructorName is the language's constructor-method name. A function
// so named inside a class is invoked through the class name.
const constructorName = "__init__"

// InferParam infers the values that flow into a parameter by searching
// the discovered modules for call sites of its owning function and
// re-executing them through the evaluator. The result is memoized for
// the session. It returns an empty result when parameter inference is
// disabled, when no call site is found, or when no resolved definition
// matches the owning function.
func (s *Session) InferParam(p *syntax.Param) []Value {
	if !s.settings.DynamicParams {
		return nil
	}
	if vals, ok := s.params[p]; ok {
		return vals
	}
	// Mark the search in progress: a recursive re-entry for the same
	// parameter sees an empty result instead of recursing forever.
	s.params[p] = nil

	vals := s.searchParam(p)
	s.params[p] = vals
	return vals
}

func (s *Session) searchParam(p *syntax.Param) []Value {
	fn := p.Func
	if fn == nil || fn.Name == nil || p.Name == nil {
		return nil
	}
	mod := fn.Module()
	if mod == nil {
		return nil
	}

	// Instantiations of a class are calls to its constructor.
	searchName := fn.Name.Last()
	target := fn
	if searchName == constructorName && fn.Parent != nil && fn.Parent.Kind == syntax.ClassScope {
		searchName = fn.Parent.Name.Last()
		target = fn.Parent
	}
	paramName := p.Name.Last()

	w, release := s.Watch(fn)
	defer release()

	// Backtracking: take the first module that yields any observation.
	// Later modules are not examined once one has produced matches.
	var found [][]Binding
	for m := range s.Discover([]*syntax.Module{mod}, searchName) {
		if obs := s.searchModule(m, searchName, target, w); len(obs) > 0 {
			found = obs
			break
		}
	}

	var result []Value
	for _, bindings := range found {
		for _, b := range bindings {
			if b.Name == paramName && b.Value != nil {
				result = append(result, s.eval.EvalStatement(s, b.Value)...)
			}
		}
	}
	return result
}

// searchModule finds and executes every call site of name in mod whose
// resolved definition is target, and returns the bindings accumulated on
// the watcher. The result is memoized per (module, name) for the
// session.
func (s *Session) searchModule(mod *syntax.Module, name string, target *syntax.Scope, w *ParamWatcher) [][]Binding {
	key := searchKey{mod, name}
	if obs, ok := s.searches[key]; ok {
		return obs
	}
	s.searches[key] = nil // in progress

	for _, ref := range mod.UsedNames[name] {
		stmt, ok := ref.(*syntax.Statement)
		if !ok {
			continue // imports and definitions do not bind arguments
		}
		for _, call := range ScanCalls(stmt, name) {
			s.followCallSite(stmt, call, name, target)
		}
	}

	obs := slices.Clone(w.calls)
	s.searches[key] = obs
	return obs
}

// followCallSite resolves one scanned call site and, if its definition
// is identical to target, instructs the evaluator to execute it, which
// notifies the watcher with the observed argument bindings.
func (s *Session) followCallSite(stmt *syntax.Statement, call *syntax.Call, name string, target *syntax.Scope) {
	path := call.CallPath()

	// Split at the rightmost occurrence: an earlier occurrence could be
	// an unrelated use of the name in the same path.
	i := lastSegIndex(path, name)
	if i < 0 {
		return
	}
	first, last := path[:i], path[i+1:]

	// Without trailing segments the matched link is the execution itself;
	// a bare reference has no argument pack and cannot bind parameters.
	if len(last) == 0 && path[i].Link.Exec == nil {
		return
	}

	pos := syntax.Start(call)
	scopes := []*syntax.Scope{stmt.Scope()}
	if len(first) > 0 {
		// The prefix (e.g. an attribute chain before a method name)
		// must itself be resolved to find the owning scopes.
		scopes = s.eval.ResolveCallPath(s, first, stmt.Scope(), pos)
		pos = syntax.Position{}
	}

	for _, scope := range scopes {
		if scope == nil {
			continue
		}
		defs := s.eval.FindName(s, scope, name, FindOptions{
			Pos:            pos,
			Global:         len(first) == 0,
			SkipDecorators: true,
		})
		matched := false
		for _, d := range defs {
			// Compare by declaration identity, not by name: a
			// same-named but different function must be ignored.
			if d.Origin() == target {
				matched = true
				break
			}
		}
		if matched {
			s.eval.FollowPath(s, path[i].Link, last, defs, scope)
		}
	}
}

func lastSegIndex(path []syntax.PathSeg, name string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Name == name {
			return i
		}
	}
	return -1
}
