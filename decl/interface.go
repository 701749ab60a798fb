package decl

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
	"go.smlang.dev/types"
)

// An Interface declares a payload type and the events a machine that
// implements it may receive.
type Interface struct {
	Name             string
	Node             *syntax.InterfaceDecl
	Payload          types.PLanguageType
	ReceivableEvents *EventSet
}

func (i *Interface) DeclKind() scope.Kind { return scope.KindInterface }
func (i *Interface) DeclName() string     { return i.Name }
