package resolve

import (
	"fmt"

	"go.smlang.dev/decl"
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// Every error kind below implements error and carries a syntax.Position for
// diagnostics, following the shape of go.starlark.net/resolve.Error
// ("<pos>: <message>", see _examples/other_examples/kubernetes-kubernetes__resolve.go).
// Analysis returns the first one it encounters; per spec §7 they are never
// caught internally, and multiple errors are never accumulated by
// AnalyzeCompilationUnit itself.

// A DuplicateDeclaration reports a local-scope collision detected by the
// Collision Matrix (spec §4.1.1).
type DuplicateDeclaration struct {
	New, Existing scope.Declaration
	Pos           syntax.Position
}

func (e *DuplicateDeclaration) Error() string {
	return fmt.Sprintf("%s: %s %q conflicts with existing %s %q",
		e.Pos, e.New.DeclKind(), e.New.DeclName(), e.Existing.DeclKind(), e.Existing.DeclName())
}

// A MissingDeclaration reports a name lookup that found nothing.
type MissingDeclaration struct {
	Name string
	Kind scope.Kind
	Pos  syntax.Position
	Hint string // "did you mean" suggestion, or ""
}

func (e *MissingDeclaration) Error() string {
	msg := fmt.Sprintf("%s: undefined %s: %s", e.Pos, e.Kind, e.Name)
	if e.Hint != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", e.Hint)
	}
	return msg
}

// A MissingEvent reports an event name that could not be found while
// binding an event set literal.
type MissingEvent struct {
	Set  string
	Name string
	Pos  syntax.Position
	Hint string
}

func (e *MissingEvent) Error() string {
	msg := fmt.Sprintf("%s: event set %q: undefined event: %s", e.Pos, e.Set, e.Name)
	if e.Hint != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", e.Hint)
	}
	return msg
}

// A DuplicateStartState reports a second state marked START within one
// machine.
type DuplicateStartState struct {
	Machine     *decl.Machine
	Conflicting *decl.State
	Pos         syntax.Position
}

func (e *DuplicateStartState) Error() string {
	return fmt.Sprintf("%s: machine %q already has a start state; %q cannot also be start",
		e.Pos, e.Machine.Name, e.Conflicting.Name)
}

// A DuplicateEntry reports a second entry handler declared for one state.
type DuplicateEntry struct {
	State *decl.State
	Pos   syntax.Position
}

func (e *DuplicateEntry) Error() string {
	return fmt.Sprintf("%s: state %q already has an entry handler", e.Pos, e.State.Name)
}

// A DuplicateExit reports a second exit handler declared for one state.
type DuplicateExit struct {
	State *decl.State
	Pos   syntax.Position
}

func (e *DuplicateExit) Error() string {
	return fmt.Sprintf("%s: state %q already has an exit handler", e.Pos, e.State.Name)
}

// A DuplicateHandler reports a second action for the same event in one
// state.
type DuplicateHandler struct {
	Event *decl.Event
	State *decl.State
	Pos   syntax.Position
}

func (e *DuplicateHandler) Error() string {
	return fmt.Sprintf("%s: state %q already handles event %q", e.Pos, e.State.Name, e.Event.Name)
}

// A MachineWithoutStartState reports a machine whose body closed with no
// state marked START.
type MachineWithoutStartState struct {
	Machine *decl.Machine
	Pos     syntax.Position
}

func (e *MachineWithoutStartState) Error() string {
	return fmt.Sprintf("%s: machine %q has no start state", e.Pos, e.Machine.Name)
}

// A NotImplemented reports use of a recognized-but-unsupported feature:
// annotation sets, foreign types, foreign functions, or a state slot naming
// a FunctionProto (spec §4.3, §9 Open Question 2).
type NotImplemented struct {
	Feature string
	Pos     syntax.Position
}

func (e *NotImplemented) Error() string {
	return fmt.Sprintf("%s: not implemented: %s", e.Pos, e.Feature)
}
