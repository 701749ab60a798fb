package decl

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
	"go.smlang.dev/types"
)

// A Variable is a machine field, a function local, or a bound parameter.
// Only fields must satisfy IsParam == false (spec §3 global invariants). Node
// is a *syntax.VariableDecl for a field or local and a *syntax.ParamDecl for
// a parameter; both introduce a Variable, so Node holds whichever one did.
type Variable struct {
	Name    string
	Node    syntax.Node
	Type    types.PLanguageType
	IsParam bool
}

func (v *Variable) DeclKind() scope.Kind { return scope.KindVariable }
func (v *Variable) DeclName() string     { return v.Name }

// A FormalParameter is used only inside a FunctionProto's signature; it is
// never entered into any scope (spec §3).
type FormalParameter struct {
	Name string
	Type types.PLanguageType
}

// A Signature is the shape shared by Function and FunctionProto: an ordered
// parameter list and a return type, both guaranteed non-nil once bound
// (defaulting to types.Null).
type Signature struct {
	Parameters []ITypedName
	ReturnType types.PLanguageType
}

// An ITypedName is anything with a name and a resolved type: either a
// *Variable (named function parameter) or a *FormalParameter (function
// prototype parameter).
type ITypedName interface {
	TypedName() (name string, typ types.PLanguageType)
}

func (v *Variable) TypedName() (string, types.PLanguageType) { return v.Name, v.Type }

func (p *FormalParameter) TypedName() (string, types.PLanguageType) { return p.Name, p.Type }
