package resolve

import (
	"go.smlang.dev/decl"
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// stubber carries the traversal-local state of the stub pass (spec §4.2).
// Per the design notes ("stateful listener during traversal"), all of this
// lives on an explicit struct threaded through the walk, never in package
// globals.
type stubber struct {
	g          *Graph
	scopeStack []*scope.Scope
}

func (s *stubber) top() *scope.Scope { return s.scopeStack[len(s.scopeStack)-1] }

func (s *stubber) push(sc *scope.Scope) { s.scopeStack = append(s.scopeStack, sc) }

func (s *stubber) pop() { s.scopeStack = s.scopeStack[:len(s.scopeStack)-1] }

// put inserts d into the current scope and records it in the Node→Decl map,
// or returns a *DuplicateDeclaration if the Collision Matrix rejects it.
func (s *stubber) put(node syntax.Node, d scope.Declaration, pos syntax.Position) error {
	existing, ok := s.top().Put(d)
	if !ok {
		return &DuplicateDeclaration{New: d, Existing: existing, Pos: pos}
	}
	s.g.NodeToDecl[node] = d
	return nil
}

// runStubPass walks every program once, creating empty declaration objects
// and scopes and establishing all names (spec §4.2).
func runStubPass(g *Graph, programs []*syntax.Program) error {
	s := &stubber{g: g}
	s.push(g.TopLevel)
	for _, p := range programs {
		var out []scope.Declaration
		for _, d := range p.Decls {
			dd, err := s.stubTopDecl(d)
			if err != nil {
				return err
			}
			if dd != nil {
				out = append(out, dd)
			}
		}
		g.ProgramDecls[p.Path] = out
	}
	return nil
}

func (s *stubber) stubTopDecl(d syntax.Decl) (scope.Declaration, error) {
	switch n := d.(type) {
	case *syntax.EventDecl:
		ev := &decl.Event{Name: n.Name.Name, Node: n, Assume: -1, Assert: -1}
		if err := s.put(n, ev, n.Name.Pos); err != nil {
			return nil, err
		}
		return ev, nil

	case *syntax.EventSetDecl:
		set := decl.NewEventSet(n.Name.Name, false)
		set.Node = n
		if err := s.put(n, set, n.Name.Pos); err != nil {
			return nil, err
		}
		return set, nil

	case *syntax.EnumDecl:
		en := &decl.Enum{Name: n.Name.Name, Node: n}
		if err := s.put(n, en, n.Name.Pos); err != nil {
			return nil, err
		}
		for _, elemNode := range n.Elems {
			el := &decl.EnumElem{Name: elemNode.Name.Name, Node: elemNode}
			if err := s.put(elemNode, el, elemNode.Name.Pos); err != nil {
				return nil, err
			}
			en.AddElem(el)
		}
		return en, nil

	case *syntax.TypeDefDecl:
		td := &decl.TypeDef{Name: n.Name.Name, Node: n}
		if err := s.put(n, td, n.Name.Pos); err != nil {
			return nil, err
		}
		return td, nil

	case *syntax.InterfaceDecl:
		iface := &decl.Interface{Name: n.Name.Name, Node: n}
		if err := s.put(n, iface, n.Name.Pos); err != nil {
			return nil, err
		}
		return iface, nil

	case *syntax.MachineDecl:
		return s.stubMachine(n)

	case *syntax.MachineProtoDecl:
		mp := &decl.MachineProto{Name: n.Name.Name, Node: n}
		if err := s.put(n, mp, n.Name.Pos); err != nil {
			return nil, err
		}
		return mp, nil

	case *syntax.FunctionDecl:
		fn, err := s.stubFunction(n, nil)
		if err != nil {
			return nil, err
		}
		return fn, nil

	case *syntax.FunctionProtoDecl:
		fp := &decl.FunctionProto{Name: n.Name.Name, Node: n}
		if err := s.put(n, fp, n.Name.Pos); err != nil {
			return nil, err
		}
		return fp, nil
	}
	panic("unreachable decl kind")
}

func (s *stubber) stubMachine(n *syntax.MachineDecl) (*decl.Machine, error) {
	m := &decl.Machine{Name: n.Name.Name, Node: n, IsSpec: n.IsSpec}
	if err := s.put(n, m, n.Name.Pos); err != nil {
		return nil, err
	}
	m.Scope = scope.New(s.top())
	s.g.NodeToScope[n] = m.Scope
	s.push(m.Scope)
	defer s.pop()

	for _, fieldNode := range n.Fields {
		v := &decl.Variable{Name: fieldNode.Name.Name, Node: fieldNode, IsParam: false}
		if err := s.put(fieldNode, v, fieldNode.Name.Pos); err != nil {
			return nil, err
		}
		m.Fields = append(m.Fields, v)
	}
	for _, methodNode := range n.Methods {
		fn, err := s.stubFunction(methodNode, m)
		if err != nil {
			return nil, err
		}
		m.Methods = append(m.Methods, fn)
	}
	for _, groupNode := range n.Groups {
		g, err := s.stubGroup(groupNode, m)
		if err != nil {
			return nil, err
		}
		m.Groups = append(m.Groups, g)
	}
	for _, stateNode := range n.States {
		st, err := s.stubState(stateNode, m)
		if err != nil {
			return nil, err
		}
		m.States = append(m.States, st)
	}
	return m, nil
}

func (s *stubber) stubGroup(n *syntax.StateGroupDecl, parent interface{}) (*decl.StateGroup, error) {
	g := &decl.StateGroup{Name: n.Name.Name, Node: n, Parent: parent}
	if err := s.put(n, g, n.Name.Pos); err != nil {
		return nil, err
	}
	g.Scope = scope.New(s.top())
	s.g.NodeToScope[n] = g.Scope
	s.push(g.Scope)
	defer s.pop()

	for _, stateNode := range n.States {
		st, err := s.stubState(stateNode, g)
		if err != nil {
			return nil, err
		}
		g.States = append(g.States, st)
	}
	for _, subNode := range n.SubGroups {
		sub, err := s.stubGroup(subNode, g)
		if err != nil {
			return nil, err
		}
		g.SubGroups = append(g.SubGroups, sub)
	}
	return g, nil
}

func (s *stubber) stubState(n *syntax.StateDecl, parent interface{}) (*decl.State, error) {
	st := &decl.State{Name: n.Name.Name, Node: n, Parent: parent, Actions: make(map[*decl.Event]decl.StateAction)}
	if err := s.put(n, st, n.Name.Pos); err != nil {
		return nil, err
	}
	for _, entryNode := range n.Entries {
		if entryNode.Anon != nil {
			if _, err := s.stubFunction(entryNode.Anon, nil); err != nil {
				return nil, err
			}
		}
	}
	for _, exitNode := range n.Exits {
		if exitNode.Anon != nil {
			if _, err := s.stubFunction(exitNode.Anon, nil); err != nil {
				return nil, err
			}
		}
	}
	for _, actionNode := range n.Actions {
		if actionNode.Fn != nil && actionNode.Fn.Anon != nil {
			if _, err := s.stubFunction(actionNode.Fn.Anon, nil); err != nil {
				return nil, err
			}
		}
		if actionNode.TransitionFn != nil && actionNode.TransitionFn.Anon != nil {
			if _, err := s.stubFunction(actionNode.TransitionFn.Anon, nil); err != nil {
				return nil, err
			}
		}
	}
	return st, nil
}

// stubFunction creates a Function declaration (named if n.Name != nil,
// anonymous otherwise), its scope, and stub Variables for its parameters
// and locals. owner is attached at bind time; passing it through here would
// be attribute-filling, which the stub pass does not do.
func (s *stubber) stubFunction(n *syntax.FunctionDecl, ownerHint *decl.Machine) (*decl.Function, error) {
	fn := &decl.Function{Node: n}
	if n.Name != nil {
		fn.Name = n.Name.Name
		if err := s.put(n, fn, n.Name.Pos); err != nil {
			return nil, err
		}
	} else {
		// Anonymous handler: no name, so no scope.Put, but it is still keyed
		// in the Node→Decl map by its own syntax node.
		s.g.NodeToDecl[n] = fn
	}

	fn.Scope = scope.New(s.top())
	s.g.NodeToScope[n] = fn.Scope
	s.push(fn.Scope)
	defer s.pop()

	for _, p := range n.Params {
		v := &decl.Variable{Name: p.Name.Name, Node: p, IsParam: true}
		if err := s.put(p, v, p.Name.Pos); err != nil {
			return nil, err
		}
	}
	for _, l := range n.Locals {
		v := &decl.Variable{Name: l.Name.Name, Node: l, IsParam: false}
		if err := s.put(l, v, l.Name.Pos); err != nil {
			return nil, err
		}
		fn.LocalVars = append(fn.LocalVars, v)
	}
	return fn, nil
}
