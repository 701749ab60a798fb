package decl

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// A Function is a named function or an anonymous handler (Name == "").
// Owner is nil for a top-level named function; otherwise it is the machine
// the function belongs to (spec §3).
type Function struct {
	Name          string
	Node          *syntax.FunctionDecl
	Owner         *Machine
	Signature     Signature
	LocalVars     []*Variable
	Scope         *scope.Scope // this function's own lexical scope
}

func (f *Function) DeclKind() scope.Kind { return scope.KindFunction }
func (f *Function) DeclName() string     { return f.Name }

// A FunctionProto is an externally-supplied function prototype, declared at
// top level. Creates lists the machines it is permitted to construct.
type FunctionProto struct {
	Name      string
	Node      *syntax.FunctionProtoDecl
	Signature Signature
	Creates   []*Machine
}

func (f *FunctionProto) DeclKind() scope.Kind { return scope.KindFunctionProto }
func (f *FunctionProto) DeclName() string     { return f.Name }
