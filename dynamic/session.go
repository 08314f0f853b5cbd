// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import "go.pyscope.dev/syntax"

// A Session holds the state of one analysis session: the configuration,
// the collaborators, and the session-scoped caches. The Session is
// threaded as the first argument through the evaluator.
//
// Cache entries are never invalidated mid-session; discarding the
// Session is the only teardown point. A Session must not be used from
// more than one goroutine.
type Session struct {
	eval     Evaluator
	parse    ParseFunc
	settings Settings

	modules  map[string]*syntax.Module     // parsed-module cache, by path
	params   map[*syntax.Param][]Value     // InferParam results
	searches map[searchKey][][]Binding     // per-module search results
	watchers map[*syntax.Scope][]*ParamWatcher
}

type searchKey struct {
	mod  *syntax.Module
	name string
}

// NewSession returns a session using the given evaluator and parser
// collaborators. eval may be nil if only Discover is used.
func NewSession(eval Evaluator, parse ParseFunc, settings Settings) *Session {
	return &Session{
		eval:     eval,
		parse:    parse,
		settings: settings,
		modules:  make(map[string]*syntax.Module),
		params:   make(map[*syntax.Param][]Value),
		searches: make(map[searchKey][][]Binding),
		watchers: make(map[*syntax.Scope][]*ParamWatcher),
	}
}

// Settings returns the session's configuration.
func (s *Session) Settings() Settings { return s.settings }

// A Binding is one observed association of a declared parameter name
// with the argument statement supplied for it at a call site.
type Binding struct {
	Name  string
	Value *syntax.Statement
}

// A ParamWatcher accumulates the argument bindings observed while the
// evaluator executes calls against a watched function. One observation
// is recorded per executed call.
type ParamWatcher struct {
	calls [][]Binding
}

// Calls returns the observations recorded so far.
func (w *ParamWatcher) Calls() [][]Binding { return w.calls }

// Watch registers a watcher on a function or class definition and
// returns it together with its release function. Registration is
// strictly paired: callers must release (typically via defer) on every
// exit path, or the watcher would corrupt unrelated searches.
func (s *Session) Watch(fn *syntax.Scope) (*ParamWatcher, func()) {
	w := &ParamWatcher{}
	s.watchers[fn] = append(s.watchers[fn], w)
	release := func() {
		ws := s.watchers[fn]
		for i, x := range ws {
			if x == w {
				s.watchers[fn] = append(ws[:i:i], ws[i+1:]...)
				break
			}
		}
		if len(s.watchers[fn]) == 0 {
			delete(s.watchers, fn)
		}
	}
	return w, release
}

// ObserveCall records one executed call against fn. It is invoked by the
// evaluator whenever it resolves and executes a call, and is a no-op
// unless fn is currently watched.
func (s *Session) ObserveCall(fn *syntax.Scope, bindings []Binding) {
	for _, w := range s.watchers[fn] {
		w.calls = append(w.calls, bindings)
	}
}
