package resolve

import (
	"fmt"

	"go.smlang.dev/decl"
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// A ValidationError reports an invariant from spec §3/§8 that a successful
// analysis nonetheless violated. It signals a bug in the resolver itself,
// never a problem with the input source (validate only ever runs when
// RunValidator is set).
type ValidationError struct {
	Decl    scope.Declaration
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validate: %s %q: %s", e.Decl.DeclKind(), e.Decl.DeclName(), e.Message)
}

// validate walks every scope reachable from the graph's top level and
// checks each declaration it finds against the invariants of §3 (the
// testable properties of §8). It returns the first violation found.
func validate(g *Graph) error {
	return validateScope(g, g.TopLevel)
}

func validateScope(g *Graph, sc *scope.Scope) error {
	for _, d := range sc.AllDecls() {
		if err := validateDecl(g, d); err != nil {
			return err
		}
	}
	for _, child := range sc.Children() {
		if err := validateScope(g, child); err != nil {
			return err
		}
	}
	return nil
}

func validateDecl(g *Graph, d scope.Declaration) error {
	switch v := d.(type) {
	case *decl.Event:
		if v.Node == nil && v.Name != "halt" && v.Name != "null" {
			return &ValidationError{d, "no source node and not a built-in"}
		}
		if v.Node != nil {
			if err := checkBidirectional(g, v.Node, d); err != nil {
				return err
			}
		}

	case *decl.Enum:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}

	case *decl.EnumElem:
		found := false
		for _, e := range v.Parent.Elems {
			if e == v {
				found = true
				break
			}
		}
		if !found {
			return &ValidationError{d, "not present in parent enum's element list"}
		}
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}

	case *decl.TypeDef:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}

	case *decl.EventSet:
		if !v.Anon {
			if v.Node == nil {
				return &ValidationError{d, "named event set has no source node"}
			}
			if err := checkBidirectional(g, v.Node, d); err != nil {
				return err
			}
		}

	case *decl.Variable:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}

	case *decl.StateGroup:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}

	case *decl.State:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}

	case *decl.MachineProto:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}

	case *decl.Function:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}
		// Anonymous state-slot handlers are owned by their machine but never
		// join its Methods list (spec §3: Methods collects only named
		// functions; an anonymous handler is reachable only via the state
		// that mentions it).
		if v.Owner != nil && v.Name != "" {
			found := false
			for _, m := range v.Owner.Methods {
				if m == v {
					found = true
					break
				}
			}
			if !found {
				return &ValidationError{d, "owner does not list this function as a method"}
			}
		}
		if err := validateSignature(d, v.Signature); err != nil {
			return err
		}

	case *decl.FunctionProto:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}
		if err := validateSignature(d, v.Signature); err != nil {
			return err
		}

	case *decl.Interface:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}
		if v.Payload == nil {
			return &ValidationError{d, "payload type is nil"}
		}

	case *decl.Machine:
		if err := checkBidirectional(g, v.Node, d); err != nil {
			return err
		}
		if v.Payload == nil {
			return &ValidationError{d, "payload type is nil"}
		}
		if v.StartState == nil {
			return &ValidationError{d, "no start state"}
		}
		all := flattenStates(v)
		startFound := false
		startCount := 0
		for _, st := range all {
			if st.IsStart {
				startCount++
			}
			if st == v.StartState {
				startFound = true
			}
		}
		if !startFound {
			return &ValidationError{d, "start state not reachable from machine's states/groups"}
		}
		if startCount != 1 {
			return &ValidationError{d, "more than one state marked as start"}
		}
		for _, f := range v.Fields {
			if f.IsParam {
				return &ValidationError{d, "machine field has IsParam set"}
			}
		}
	}
	return nil
}

func validateSignature(d scope.Declaration, sig decl.Signature) error {
	if sig.ReturnType == nil {
		return &ValidationError{d, "return type is nil"}
	}
	for _, p := range sig.Parameters {
		_, typ := p.TypedName()
		if typ == nil {
			return &ValidationError{d, "a parameter has a nil type"}
		}
	}
	return nil
}

func checkBidirectional(g *Graph, node syntax.Node, d scope.Declaration) error {
	if got, ok := g.NodeToDecl[node]; !ok || got != d {
		return &ValidationError{d, "source node does not map back to this declaration"}
	}
	return nil
}

// flattenStates returns every State reachable from m, both its top-level
// States and every State nested in its Groups/SubGroups.
func flattenStates(m *decl.Machine) []*decl.State {
	out := append([]*decl.State(nil), m.States...)
	for _, g := range m.Groups {
		out = append(out, flattenGroupStates(g)...)
	}
	return out
}

func flattenGroupStates(g *decl.StateGroup) []*decl.State {
	out := append([]*decl.State(nil), g.States...)
	for _, sub := range g.SubGroups {
		out = append(out, flattenGroupStates(sub)...)
	}
	return out
}
