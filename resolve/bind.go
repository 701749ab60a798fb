package resolve

import (
	"log"

	"go.smlang.dev/decl"
	"go.smlang.dev/internal/spell"
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
	"go.smlang.dev/types"
)

// trace guards ancestor-walk and qualified-state lookup tracing, in the
// style of go.starlark.net/resolve's lookupLexical: a compile-time constant,
// never a runtime flag, so the dead branch costs nothing when off.
const trace = false

// binder carries the traversal-local state of the binding pass (spec §4.3).
// The scope stack is reconstructed from the same Node→Scope map the stub
// pass wrote, rather than re-derived from tree shape; machine/state/
// function-prototype have no nesting in this language so they are held as
// single "current" slots, while functions and state groups can nest and are
// held as stacks. There is no current-enum or current-event-set slot:
// bindEnum and the event-set binders receive the declaration directly.
type binder struct {
	g        *Graph
	resolver types.TypeResolver

	scopeStack    []*scope.Scope
	machine       *decl.Machine
	state         *decl.State
	functionProto *decl.FunctionProto
	functionStack []*decl.Function
	groupStack    []*decl.StateGroup
}

func (b *binder) top() *scope.Scope { return b.scopeStack[len(b.scopeStack)-1] }

func (b *binder) push(sc *scope.Scope) { b.scopeStack = append(b.scopeStack, sc) }

func (b *binder) pop() { b.scopeStack = b.scopeStack[:len(b.scopeStack)-1] }

func (b *binder) pushFunction(f *decl.Function) { b.functionStack = append(b.functionStack, f) }

func (b *binder) popFunction() { b.functionStack = b.functionStack[:len(b.functionStack)-1] }

func (b *binder) pushGroup(g *decl.StateGroup) { b.groupStack = append(b.groupStack, g) }

func (b *binder) popGroup() { b.groupStack = b.groupStack[:len(b.groupStack)-1] }

func (b *binder) decl(n syntax.Node) scope.Declaration { return b.g.NodeToDecl[n] }

// traceLookup logs an ancestor-scope lookup when trace is enabled, covering
// every Scope.Lookup call site in this file alongside resolveQualPath's own
// local-lookup tracing.
func traceLookup(kind scope.Kind, name string) {
	if trace {
		log.Printf("lookup: %s %q", kind, name)
	}
}

// runBindPass walks every program a second time, filling the attributes the
// stub pass left empty (spec §4.3).
func runBindPass(g *Graph, resolver types.TypeResolver, programs []*syntax.Program) error {
	b := &binder{g: g, resolver: resolver}
	b.push(g.TopLevel)
	for _, p := range programs {
		for _, d := range p.Decls {
			if err := b.bindTopDecl(d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *binder) bindTopDecl(d syntax.Decl) error {
	switch n := d.(type) {
	case *syntax.EventDecl:
		return b.bindEvent(n)
	case *syntax.EventSetDecl:
		return b.bindEventSetDecl(n)
	case *syntax.EnumDecl:
		return b.bindEnum(n)
	case *syntax.TypeDefDecl:
		return b.bindTypeDef(n)
	case *syntax.InterfaceDecl:
		return b.bindInterface(n)
	case *syntax.MachineDecl:
		return b.bindMachine(n)
	case *syntax.MachineProtoDecl:
		return b.bindMachineProto(n)
	case *syntax.FunctionDecl:
		return b.bindFunction(n, nil)
	case *syntax.FunctionProtoDecl:
		return b.bindFunctionProto(n)
	}
	panic("unreachable decl kind")
}

func (b *binder) resolveType(expr syntax.TypeExpr) (types.PLanguageType, error) {
	if expr == nil {
		return types.Null, nil
	}
	if expr.IsForeign() {
		start, _ := expr.Span()
		return nil, &NotImplemented{Feature: "foreign type", Pos: start}
	}
	return b.resolver.Resolve(b.top(), expr)
}

func (b *binder) bindEvent(n *syntax.EventDecl) error {
	if len(n.Annotations) > 0 {
		return &NotImplemented{Feature: "annotationSet", Pos: n.Name.Pos}
	}
	ev := b.decl(n).(*decl.Event)
	typ, err := b.resolveType(n.Payload)
	if err != nil {
		return err
	}
	ev.Payload = typ
	ev.Assume, ev.Assert = -1, -1
	if n.Cardinality != nil {
		if n.Cardinality.Assume != nil {
			ev.Assume = int(n.Cardinality.Assume.Value)
		}
		if n.Cardinality.Assert != nil {
			ev.Assert = int(n.Cardinality.Assert.Value)
		}
	}
	return nil
}

// bindEventSetLiteral looks up each token in the current scope and adds it
// to set, failing MissingEvent on the first name that does not resolve.
func (b *binder) bindEventSetLiteral(set *decl.EventSet, lit *syntax.EventSetLiteral) error {
	for _, id := range lit.Events {
		traceLookup(scope.KindEvent, id.Name)
		d, ok := b.top().Lookup(scope.KindEvent, id.Name)
		if !ok {
			hint := spell.Nearest(id.Name, namesOfKind(b.top(), scope.KindEvent))
			return &MissingEvent{Set: set.Name, Name: id.Name, Pos: id.Pos, Hint: hint}
		}
		set.Add(d.(*decl.Event))
	}
	return nil
}

func (b *binder) bindEventSetDecl(n *syntax.EventSetDecl) error {
	set := b.decl(n).(*decl.EventSet)
	return b.bindEventSetLiteral(set, n.Literal)
}

// resolveEventSetRef resolves a named-or-inline event set reference,
// synthesizing an anonymous EventSet under syntheticName for an inline
// literal (spec §3: "anonymous, owned by a Machine/Interface/SpecMachine,
// with a synthetic name").
func (b *binder) resolveEventSetRef(ref *syntax.EventSetRef, syntheticName string) (*decl.EventSet, error) {
	if ref == nil {
		return nil, nil
	}
	if ref.Name != nil {
		traceLookup(scope.KindEventSet, ref.Name.Name)
		d, ok := b.top().Lookup(scope.KindEventSet, ref.Name.Name)
		if !ok {
			hint := spell.Nearest(ref.Name.Name, namesOfKind(b.top(), scope.KindEventSet))
			return nil, &MissingDeclaration{Name: ref.Name.Name, Kind: scope.KindEventSet, Pos: ref.Name.Pos, Hint: hint}
		}
		return d.(*decl.EventSet), nil
	}
	set := decl.NewEventSet(syntheticName, true)
	if err := b.bindEventSetLiteral(set, ref.Literal); err != nil {
		return nil, err
	}
	return set, nil
}

func (b *binder) bindEnum(n *syntax.EnumDecl) error {
	for i, elemNode := range n.Elems {
		el := b.decl(elemNode).(*decl.EnumElem)
		if elemNode.Numbered {
			el.Value = elemNode.Value.Value
		} else {
			el.Value = int64(i)
		}
	}
	return nil
}

func (b *binder) bindTypeDef(n *syntax.TypeDefDecl) error {
	td := b.decl(n).(*decl.TypeDef)
	typ, err := b.resolveType(n.RHS)
	if err != nil {
		return err
	}
	td.Type = typ
	return nil
}

func (b *binder) bindInterface(n *syntax.InterfaceDecl) error {
	if len(n.Annotations) > 0 {
		return &NotImplemented{Feature: "annotationSet", Pos: n.Name.Pos}
	}
	iface := b.decl(n).(*decl.Interface)
	typ, err := b.resolveType(n.Payload)
	if err != nil {
		return err
	}
	iface.Payload = typ
	set, err := b.resolveEventSetRef(n.ReceivableEvents, n.Name.Name+"$eventset")
	if err != nil {
		return err
	}
	iface.ReceivableEvents = set
	return nil
}

func (b *binder) bindMachineProto(n *syntax.MachineProtoDecl) error {
	mp := b.decl(n).(*decl.MachineProto)
	typ, err := b.resolveType(n.Payload)
	if err != nil {
		return err
	}
	mp.Payload = typ
	return nil
}

func (b *binder) bindFunctionProto(n *syntax.FunctionProtoDecl) error {
	fp := b.decl(n).(*decl.FunctionProto)
	prevFP := b.functionProto
	b.functionProto = fp
	defer func() { b.functionProto = prevFP }()

	retType, err := b.resolveType(n.ReturnType)
	if err != nil {
		return err
	}
	fp.Signature.ReturnType = retType
	for _, p := range n.Params {
		typ, err := b.resolveType(p.Type)
		if err != nil {
			return err
		}
		fp.Signature.Parameters = append(fp.Signature.Parameters, &decl.FormalParameter{Name: p.Name.Name, Type: typ})
	}
	for _, createIdent := range n.Creates {
		traceLookup(scope.KindMachine, createIdent.Name)
		d, ok := b.top().Lookup(scope.KindMachine, createIdent.Name)
		if !ok {
			hint := spell.Nearest(createIdent.Name, namesOfKind(b.top(), scope.KindMachine))
			return &MissingDeclaration{Name: createIdent.Name, Kind: scope.KindMachine, Pos: createIdent.Pos, Hint: hint}
		}
		fp.Creates = append(fp.Creates, d.(*decl.Machine))
	}
	return nil
}

// bindFunction binds a named function or method. owner is nil for a
// top-level function.
func (b *binder) bindFunction(n *syntax.FunctionDecl, owner *decl.Machine) error {
	fn := b.decl(n).(*decl.Function)
	fn.Owner = owner
	b.pushFunction(fn)
	defer b.popFunction()
	return b.bindFunctionBody(n, fn)
}

func (b *binder) bindFunctionBody(n *syntax.FunctionDecl, fn *decl.Function) error {
	if n.Foreign {
		return &NotImplemented{Feature: "foreign function", Pos: n.Pos}
	}
	b.push(b.g.NodeToScope[n])
	defer b.pop()

	retType, err := b.resolveType(n.ReturnType)
	if err != nil {
		return err
	}
	fn.Signature.ReturnType = retType

	for _, p := range n.Params {
		v := b.decl(p).(*decl.Variable)
		typ, err := b.resolveType(p.Type)
		if err != nil {
			return err
		}
		v.Type = typ
		fn.Signature.Parameters = append(fn.Signature.Parameters, v)
	}
	for _, l := range n.Locals {
		v := b.decl(l).(*decl.Variable)
		typ, err := b.resolveType(l.Type)
		if err != nil {
			return err
		}
		v.Type = typ
	}
	return nil
}

// resolveHandler resolves a state slot's HandlerRef: a lookup by name, or an
// anonymous handler whose Function was already created in the stub pass.
func (b *binder) resolveHandler(ref *syntax.HandlerRef) (*decl.Function, error) {
	if ref.Name != nil {
		traceLookup(scope.KindFunction, ref.Name.Name)
		if d, ok := b.top().Lookup(scope.KindFunction, ref.Name.Name); ok {
			return d.(*decl.Function), nil
		}
		traceLookup(scope.KindFunctionProto, ref.Name.Name)
		if _, ok := b.top().Lookup(scope.KindFunctionProto, ref.Name.Name); ok {
			return nil, &NotImplemented{Feature: "function prototype as state handler", Pos: ref.Name.Pos}
		}
		hint := spell.Nearest(ref.Name.Name, namesOfKind(b.top(), scope.KindFunction))
		return nil, &MissingDeclaration{Name: ref.Name.Name, Kind: scope.KindFunction, Pos: ref.Name.Pos, Hint: hint}
	}

	fn := b.decl(ref.Anon).(*decl.Function)
	fn.Owner = b.machine
	b.pushFunction(fn)
	defer b.popFunction()
	if err := b.bindFunctionBody(ref.Anon, fn); err != nil {
		return nil, err
	}
	return fn, nil
}

func (b *binder) bindMachine(n *syntax.MachineDecl) error {
	if len(n.Annotations) > 0 {
		return &NotImplemented{Feature: "annotationSet", Pos: n.Name.Pos}
	}
	m := b.decl(n).(*decl.Machine)

	m.Assume, m.Assert = -1, -1
	if n.Cardinality != nil {
		if n.Cardinality.Assume != nil {
			m.Assume = int(n.Cardinality.Assume.Value)
		}
		if n.Cardinality.Assert != nil {
			m.Assert = int(n.Cardinality.Assert.Value)
		}
	}

	b.push(m.Scope)
	prevMachine := b.machine
	b.machine = m
	defer func() { b.pop(); b.machine = prevMachine }()

	for _, ifaceIdent := range n.Interfaces {
		traceLookup(scope.KindInterface, ifaceIdent.Name)
		d, ok := b.top().Lookup(scope.KindInterface, ifaceIdent.Name)
		if !ok {
			hint := spell.Nearest(ifaceIdent.Name, namesOfKind(b.top(), scope.KindInterface))
			return &MissingDeclaration{Name: ifaceIdent.Name, Kind: scope.KindInterface, Pos: ifaceIdent.Pos, Hint: hint}
		}
		m.Interfaces = append(m.Interfaces, d.(*decl.Interface))
	}

	var err error
	m.Receives, err = b.resolveEventSetRef(n.Receives, m.Name+"$receives")
	if err != nil {
		return err
	}
	m.Sends, err = b.resolveEventSetRef(n.Sends, m.Name+"$sends")
	if err != nil {
		return err
	}
	if n.IsSpec {
		if n.Observes != nil {
			m.Observes, err = b.resolveEventSetRef(n.Observes, m.Name+"$eventset")
			if err != nil {
				return err
			}
		} else {
			m.Observes = decl.NewEventSet(m.Name+"$eventset", true)
		}
	}

	for _, fieldNode := range n.Fields {
		v := b.decl(fieldNode).(*decl.Variable)
		typ, err := b.resolveType(fieldNode.Type)
		if err != nil {
			return err
		}
		v.Type = typ
	}
	for _, methodNode := range n.Methods {
		if err := b.bindFunction(methodNode, m); err != nil {
			return err
		}
	}
	for _, groupNode := range n.Groups {
		if err := b.bindGroup(groupNode); err != nil {
			return err
		}
	}
	for _, stateNode := range n.States {
		if err := b.bindState(stateNode); err != nil {
			return err
		}
	}

	if m.StartState == nil {
		return &MachineWithoutStartState{Machine: m, Pos: n.Name.Pos}
	}
	return nil
}

func (b *binder) bindGroup(n *syntax.StateGroupDecl) error {
	g := b.decl(n).(*decl.StateGroup)
	b.push(b.g.NodeToScope[n])
	b.pushGroup(g)
	defer func() { b.pop(); b.popGroup() }()

	for _, stateNode := range n.States {
		if err := b.bindState(stateNode); err != nil {
			return err
		}
	}
	for _, subNode := range n.SubGroups {
		if err := b.bindGroup(subNode); err != nil {
			return err
		}
	}
	return nil
}

func (b *binder) bindState(n *syntax.StateDecl) error {
	if len(n.Annotations) > 0 {
		return &NotImplemented{Feature: "annotationSet", Pos: n.Name.Pos}
	}
	st := b.decl(n).(*decl.State)

	switch n.Temperature {
	case syntax.TempHot:
		st.Temperature = decl.Hot
	case syntax.TempCold:
		st.Temperature = decl.Cold
	default:
		st.Temperature = decl.Warm
	}

	if n.IsStart {
		if b.machine.StartState != nil {
			return &DuplicateStartState{Machine: b.machine, Conflicting: st, Pos: n.Name.Pos}
		}
		st.IsStart = true
		b.machine.StartState = st
	}

	prevState := b.state
	b.state = st
	defer func() { b.state = prevState }()

	for _, entryNode := range n.Entries {
		fn, err := b.resolveHandler(entryNode)
		if err != nil {
			return err
		}
		if st.Entry != nil {
			return &DuplicateEntry{State: st, Pos: n.Name.Pos}
		}
		st.Entry = fn
	}
	for _, exitNode := range n.Exits {
		fn, err := b.resolveHandler(exitNode)
		if err != nil {
			return err
		}
		if st.Exit != nil {
			return &DuplicateExit{State: st, Pos: n.Name.Pos}
		}
		st.Exit = fn
	}
	for _, actionNode := range n.Actions {
		if err := b.bindAction(actionNode, st); err != nil {
			return err
		}
	}

	if st.IsStart {
		if st.Entry != nil {
			b.machine.Payload = st.Entry.Signature.ReturnType
		} else {
			b.machine.Payload = types.Null
		}
	}
	return nil
}

func (b *binder) resolveQualPath(qp *syntax.QualPath) (*decl.State, error) {
	if trace {
		log.Printf("resolveQualPath: %s in machine %s", qp, b.machine.Name)
	}
	sc := b.machine.Scope
	for _, g := range qp.Groups {
		d, ok := sc.Get(scope.KindStateGroup, g.Name)
		if !ok {
			hint := spell.Nearest(g.Name, localNamesOfKind(sc, scope.KindStateGroup))
			return nil, &MissingDeclaration{Name: g.Name, Kind: scope.KindStateGroup, Pos: g.Pos, Hint: hint}
		}
		sc = d.(*decl.StateGroup).Scope
	}
	d, ok := sc.Get(scope.KindState, qp.Final.Name)
	if !ok {
		hint := spell.Nearest(qp.Final.Name, localNamesOfKind(sc, scope.KindState))
		return nil, &MissingDeclaration{Name: qp.Final.Name, Kind: scope.KindState, Pos: qp.Final.Pos, Hint: hint}
	}
	return d.(*decl.State), nil
}

func (b *binder) bindAction(n *syntax.StateActionDecl, st *decl.State) error {
	var makeAction func(ev *decl.Event) decl.StateAction

	switch n.Kind {
	case syntax.ActionDefer:
		makeAction = func(ev *decl.Event) decl.StateAction { return &decl.DeferAction{Event: ev} }

	case syntax.ActionIgnore:
		makeAction = func(ev *decl.Event) decl.StateAction { return &decl.IgnoreAction{Event: ev} }

	case syntax.ActionGoto:
		target, err := b.resolveQualPath(n.Target)
		if err != nil {
			return err
		}
		var transFn *decl.Function
		if n.TransitionFn != nil {
			transFn, err = b.resolveHandler(n.TransitionFn)
			if err != nil {
				return err
			}
		}
		makeAction = func(ev *decl.Event) decl.StateAction {
			return &decl.GotoStateAction{Event: ev, Target: target, TransitionFn: transFn}
		}

	case syntax.ActionPush:
		target, err := b.resolveQualPath(n.Target)
		if err != nil {
			return err
		}
		makeAction = func(ev *decl.Event) decl.StateAction { return &decl.PushStateAction{Event: ev, Target: target} }

	case syntax.ActionDo:
		fn, err := b.resolveHandler(n.Fn)
		if err != nil {
			return err
		}
		makeAction = func(ev *decl.Event) decl.StateAction { return &decl.DoAction{Event: ev, Fn: fn} }
	}

	for _, evIdent := range n.Events {
		traceLookup(scope.KindEvent, evIdent.Name)
		d, ok := b.top().Lookup(scope.KindEvent, evIdent.Name)
		if !ok {
			hint := spell.Nearest(evIdent.Name, namesOfKind(b.top(), scope.KindEvent))
			return &MissingDeclaration{Name: evIdent.Name, Kind: scope.KindEvent, Pos: evIdent.Pos, Hint: hint}
		}
		ev := d.(*decl.Event)
		if _, exists := st.Actions[ev]; exists {
			return &DuplicateHandler{Event: ev, State: st, Pos: n.Pos}
		}
		st.Actions[ev] = makeAction(ev)
	}
	return nil
}
