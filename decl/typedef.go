package decl

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
	"go.smlang.dev/types"
)

// A TypeDef aliases a name to a resolved type.
type TypeDef struct {
	Name string
	Node *syntax.TypeDefDecl
	Type types.PLanguageType
}

func (t *TypeDef) DeclKind() scope.Kind { return scope.KindTypeDef }
func (t *TypeDef) DeclName() string     { return t.Name }
