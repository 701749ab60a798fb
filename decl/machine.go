package decl

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
	"go.smlang.dev/types"
)

// A Machine is a machine (IsSpec == false) or spec machine (IsSpec == true)
// declaration. Machine and SpecMachine share one Go type because the
// Collision Matrix treats them identically (spec §4.1.1); see
// syntax.MachineDecl's doc comment.
type Machine struct {
	Name       string
	Node       *syntax.MachineDecl
	IsSpec     bool
	Scope      *scope.Scope
	Payload    types.PLanguageType
	Assume     int
	Assert     int
	Interfaces []*Interface
	Receives   *EventSet // nil if the machine declared none
	Sends      *EventSet
	Observes   *EventSet // mandatory (non-nil) when IsSpec

	Fields     []*Variable
	Methods    []*Function
	Groups     []*StateGroup
	States     []*State
	StartState *State
}

func (m *Machine) DeclKind() scope.Kind { return scope.KindMachine }
func (m *Machine) DeclName() string     { return m.Name }

// A MachineProto is an externally-supplied machine prototype declaration.
type MachineProto struct {
	Name    string
	Node    *syntax.MachineProtoDecl
	Payload types.PLanguageType
}

func (m *MachineProto) DeclKind() scope.Kind { return scope.KindMachineProto }
func (m *MachineProto) DeclName() string     { return m.Name }
