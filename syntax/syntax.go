// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax defines the declaration-level abstract syntax tree that the
// resolver consumes. It is deliberately thin: lexing, parsing, and
// expression-level syntax are the responsibility of an external parser.
// This package only fixes the shape of the handful of node kinds that
// introduce or reference declarations, so that package resolve can walk them
// with an ordinary Go type switch — the "visitor" contract is the AST type
// system itself, delivered to the resolver in document order.
package syntax

import "fmt"

// A Position identifies a location in a source file.
// It is opaque to the resolver beyond string formatting for diagnostics.
type Position struct {
	File string
	Line int32
	Col  int32
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// IsValid reports whether the position was actually set by a parser, as
// opposed to being the zero value used for synthetic nodes such as the
// built-in "halt" and "null" events.
func (p Position) IsValid() bool { return p.Line != 0 || p.Col != 0 || p.File != "" }

// A Node is any syntax-tree node that can be located in source text.
// Declaration-producing nodes and the identifiers within them implement it.
type Node interface {
	Span() (start, end Position)
}

// An Ident is a bare name occurrence together with its source position.
// It is the unit the stub pass keys declarations on and the binding pass
// keys references on.
type Ident struct {
	Name string
	Pos  Position
}

func (id *Ident) Span() (start, end Position) { return id.Pos, id.Pos }

// A QualPath is a group-qualified name such as g1.g2.state: zero or more
// group-name components followed by a final component, as used by goto and
// push targets (spec §4.4).
type QualPath struct {
	Groups []*Ident
	Final  *Ident
}

func (q *QualPath) Span() (start, end Position) {
	if len(q.Groups) > 0 {
		start = q.Groups[0].Pos
	} else {
		start = q.Final.Pos
	}
	return start, q.Final.Pos
}

func (q *QualPath) String() string {
	s := ""
	for _, g := range q.Groups {
		s += g.Name + "."
	}
	return s + q.Final.Name
}

// A TypeExpr is an opaque handle to a type subtree, produced by the external
// parser. The resolver never inspects its internals; it hands the TypeExpr
// and the current scope to the caller-supplied type resolver collaborator
// (package types). The two accessors below are the only "typed accessors"
// the core needs directly, per §6: whether the subtree denotes a type this
// module refuses to support (a foreign/extern type) and where it came from.
type TypeExpr interface {
	Node
	IsForeign() bool
}
