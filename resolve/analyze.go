// Package resolve implements the declaration resolver and scope binder: it
// turns a set of parsed syntax.Programs into a fully linked, name-resolved
// Graph, in two full tree walks (spec §4.2, §4.3) followed by an optional
// debug validation pass (§4.5).
package resolve

import (
	"go.smlang.dev/decl"
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
	"go.smlang.dev/types"
)

// RunValidator gates the debug-only validator (spec §4.5). It is a
// package-level toggle in the same style as go.starlark.net/resolve's
// AllowNestedDef: off by default, set by an embedder that wants the extra
// pass, never read from the environment or a config file.
var RunValidator = false

// AnalyzeCompilationUnit resolves every declaration across programs against
// one shared top-level scope and returns the resulting Graph, or the first
// error any declaration produced. Programs are processed in the order
// given; the first error aborts analysis entirely, and no partially bound
// Graph is returned on failure.
func AnalyzeCompilationUnit(resolver types.TypeResolver, programs ...*syntax.Program) (*Graph, error) {
	top := scope.New(nil)
	g := newGraph(top)

	halt := decl.NewBuiltinEvent("halt")
	null := decl.NewBuiltinEvent("null")
	if _, ok := top.Put(halt); !ok {
		panic("resolve: built-in event halt could not be registered")
	}
	if _, ok := top.Put(null); !ok {
		panic("resolve: built-in event null could not be registered")
	}

	if err := runStubPass(g, programs); err != nil {
		return nil, err
	}
	if err := runBindPass(g, resolver, programs); err != nil {
		return nil, err
	}
	if RunValidator {
		if err := validate(g); err != nil {
			panic(err)
		}
	}
	return g, nil
}
