// Package decl is the Declaration object model of spec §3: one type per
// declaration kind, each carrying its kind-specific attributes and a
// back-reference to the syntax node that introduced it. Every declaration
// type here implements scope.Declaration so it can be filed into a
// scope.Scope.
package decl

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
	"go.smlang.dev/types"
)

// An Event is a declared or built-in event (spec §3). Node is nil only for
// the two built-ins, "halt" and "null".
type Event struct {
	Name    string
	Node    *syntax.EventDecl
	Payload types.PLanguageType

	// Assume/Assert hold the cardinality bounds, or -1 if the source gave
	// none.
	Assume int
	Assert int
}

func (e *Event) DeclKind() scope.Kind { return scope.KindEvent }
func (e *Event) DeclName() string     { return e.Name }

// NewBuiltinEvent creates one of the two built-in events, "halt" and "null",
// that every top-level scope carries even with zero program units (spec §8
// boundary behavior). It has no source node and a Null payload.
func NewBuiltinEvent(name string) *Event {
	return &Event{Name: name, Payload: types.Null, Assume: -1, Assert: -1}
}
