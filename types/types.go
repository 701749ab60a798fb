// Package types defines the PLanguageType value the resolver attaches to
// events, interfaces, machines, and function signatures, and the
// TypeResolver collaborator contract through which an external type checker
// turns a syntax.TypeExpr into one. Type resolution itself — what a written
// type subtree actually means — is out of scope for this module (spec §1);
// this package only fixes the boundary the resolver calls across.
package types

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// A PLanguageType is an opaque, resolved type. The resolver treats it as a
// value it stores and compares, never as something it interprets.
type PLanguageType interface {
	// Name returns the type's canonical printable name, for diagnostics.
	Name() string

	// Equals reports whether two resolved types denote the same type.
	Equals(PLanguageType) bool
}

// nullType is the type every optional payload/return/parameter defaults to
// when the source omits one (spec §3 global invariants: "non-null return
// type, defaulting to Null").
type nullType struct{}

func (nullType) Name() string             { return "null" }
func (nullType) Equals(o PLanguageType) bool { _, ok := o.(nullType); return ok }

// Null is the well-known default PLanguageType.
var Null PLanguageType = nullType{}

// A TypeResolver is the external collaborator that interprets a
// syntax.TypeExpr in a given scope and produces a PLanguageType, or an error
// if the subtree denotes something this module has no representation for.
// The resolver package supplies the current scope; it never inspects the
// TypeExpr itself beyond its IsForeign and Span accessors.
type TypeResolver interface {
	Resolve(sc *scope.Scope, expr syntax.TypeExpr) (PLanguageType, error)
}
