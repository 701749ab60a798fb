package resolve

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// A Graph is the durable artifact AnalyzeCompilationUnit produces: the
// top-level scope, the bidirectional syntax-node/declaration map (spec §3
// item 4), and each program's own top-level declarations for callers that
// want to walk a single file's contribution.
type Graph struct {
	TopLevel *scope.Scope

	// NodeToDecl maps every declaration-producing syntax node to the
	// Declaration it produced. It is total over declaration-producing nodes
	// and injective (spec §4.2 post-conditions).
	NodeToDecl map[syntax.Node]scope.Declaration

	// NodeToScope maps every scope-introducing syntax node (a Machine, a
	// StateGroup, a Function, or an anonymous handler) to the scope it
	// introduced. The binding pass reconstructs its scope stack purely from
	// this map, written once by the stub pass (spec §4.3).
	NodeToScope map[syntax.Node]*scope.Scope

	// ProgramDecls maps each program's Path to the declarations it
	// contributed at top level, in source order.
	ProgramDecls map[string][]scope.Declaration
}

func newGraph(top *scope.Scope) *Graph {
	return &Graph{
		TopLevel:     top,
		NodeToDecl:   make(map[syntax.Node]scope.Declaration),
		NodeToScope:  make(map[syntax.Node]*scope.Scope),
		ProgramDecls: make(map[string][]scope.Declaration),
	}
}

// declFor looks up the Declaration a node produced, if any.
func (g *Graph) declFor(n syntax.Node) (scope.Declaration, bool) {
	d, ok := g.NodeToDecl[n]
	return d, ok
}
