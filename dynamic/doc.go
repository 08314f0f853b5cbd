// Copyright 2026 The PyScope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamic infers types and values that cannot be determined from
// syntax alone.
//
// It has two independent engines:
//
//   - dynamic parameter inference: given a parameter, find every call site
//     of its owning function across the discovered modules, re-execute
//     those calls through the external evaluator, and record the argument
//     values that flow into the parameter
//     (Session.InferParam);
//
//   - flow narrowing: given an enclosing control-flow construct or scope
//     and a variable name, recognize the isinstance type-guard idiom in
//     if/while conditions and asserts and translate it into a narrowed
//     type set (Session.NarrowType).
//
// Both engines are consumed by the general evaluator, which is itself an
// external collaborator of this package: name resolution, call execution
// and value construction happen behind the Evaluator interface. Failures
// inside this package degrade to empty results rather than errors.
//
// Everything is single-threaded and re-entrant by recursion only. The
// evaluator may recurse back into this package while resolving a call
// path; the per-parameter and per-module memo tables return an empty
// result for a computation already in progress, which is the only
// recursion bound this package provides. The Evaluator implementation
// must enforce its own recursion-depth or visited-set bound.
package dynamic
