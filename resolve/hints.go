package resolve

import "go.smlang.dev/scope"

// namesOfKind collects every name of kind k visible from sc, walking up
// through ancestor scopes. Used only to build "did you mean" hints
// (_examples/other_examples/kubernetes-kubernetes__resolve.go's spellcheck
// calls, adapted here for a fixed declaration namespace instead of a
// dynamic binding environment).
func namesOfKind(sc *scope.Scope, k scope.Kind) []string {
	var out []string
	for cur := sc; cur != nil; cur = cur.Parent() {
		for _, d := range cur.AllDecls() {
			if d.DeclKind() == k {
				out = append(out, d.DeclName())
			}
		}
	}
	return out
}

// localNamesOfKind collects every name of kind k local to sc, with no
// ancestor walk. Used for qualified state resolution (spec §4.4), which is
// strictly local at each path step.
func localNamesOfKind(sc *scope.Scope, k scope.Kind) []string {
	var out []string
	for _, d := range sc.AllDecls() {
		if d.DeclKind() == k {
			out = append(out, d.DeclName())
		}
	}
	return out
}
