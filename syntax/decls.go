package syntax

// A Program is one parsed compilation-unit file: an ordered list of
// top-level declarations. AnalyzeCompilationUnit accepts any number of
// Programs and treats them as sharing a single global namespace, processed
// in the order given (spec §5).
type Program struct {
	Path  string
	Decls []Decl
}

func (p *Program) Span() (start, end Position) {
	if len(p.Decls) == 0 {
		return
	}
	start, _ = p.Decls[0].Span()
	_, end = p.Decls[len(p.Decls)-1].Span()
	return
}

// A Decl is any top-level, declaration-producing syntax node.
type Decl interface {
	Node
	decl()
}

func (*EventDecl) decl()        {}
func (*EventSetDecl) decl()     {}
func (*EnumDecl) decl()         {}
func (*TypeDefDecl) decl()      {}
func (*InterfaceDecl) decl()    {}
func (*MachineDecl) decl()      {}
func (*MachineProtoDecl) decl() {}
func (*FunctionDecl) decl()     {}
func (*FunctionProtoDecl) decl() {}

// An AnnotationSet is recognized syntax that this module explicitly refuses
// to implement (spec §1 Non-goals, §9 Open Question 2). EventDecl,
// InterfaceDecl, StateDecl and MachineDecl may carry one or more of these;
// the binder rejects the declaration
// with NotImplemented("annotationSet") the moment it sees one.
type AnnotationSet struct {
	Name *Ident
}

func (a *AnnotationSet) Span() (start, end Position) { return a.Name.Span() }

// A CardinalityDecl carries the optional assume/assert bounds attached to an
// Event or Machine declaration. A nil pointer means "absent" (spec: -1).
type CardinalityDecl struct {
	Assume *IntLit
	Assert *IntLit
}

// An IntLit is an integer literal appearing in source, e.g. an assume/assert
// bound or a numbered enum element's value.
type IntLit struct {
	Value int64
	Pos   Position
}

func (n *IntLit) Span() (start, end Position) { return n.Pos, n.Pos }

// An EventDecl declares a named event and its optional payload type and
// cardinality.
type EventDecl struct {
	Name        *Ident
	Payload     TypeExpr // nil => defaults to Null
	Cardinality *CardinalityDecl
	Annotations []*AnnotationSet
}

func (n *EventDecl) Span() (start, end Position) { return n.Name.Span() }

// An EventSetLiteral is an inline `{ E1, E2, ... }` token list. It is not
// itself a Decl; it appears embedded in an EventSetDecl, an InterfaceDecl,
// or a Machine's Receives/Sends/Observes slot.
type EventSetLiteral struct {
	Events []*Ident
	LBrace Position
	RBrace Position
}

func (n *EventSetLiteral) Span() (start, end Position) { return n.LBrace, n.RBrace }

// An EventSetDecl declares a named, reusable event set.
type EventSetDecl struct {
	Name    *Ident
	Literal *EventSetLiteral
}

func (n *EventSetDecl) Span() (start, end Position) { return n.Name.Span() }

// An EventSetRef appears wherever an event set may be given either by name
// or as an inline literal: Interface.ReceivableEvents and a Machine's
// Receives/Sends/Observes slots.
type EventSetRef struct {
	Name    *Ident           // set if the source used `= Iden`
	Literal *EventSetLiteral // set if the source gave an inline literal
}

func (n *EventSetRef) Span() (start, end Position) {
	if n.Name != nil {
		return n.Name.Span()
	}
	return n.Literal.Span()
}

// An EnumElemDecl is one member of an EnumDecl, either plain (value assigned
// by the binder from the running element count) or numbered (value taken
// from a literal in source).
type EnumElemDecl struct {
	Name     *Ident
	Numbered bool
	Value    *IntLit // set iff Numbered
}

func (n *EnumElemDecl) Span() (start, end Position) { return n.Name.Span() }

// An EnumDecl declares a named enumeration and its ordered elements.
type EnumDecl struct {
	Name  *Ident
	Elems []*EnumElemDecl
}

func (n *EnumDecl) Span() (start, end Position) { return n.Name.Span() }

// A TypeDefDecl declares a type alias.
type TypeDefDecl struct {
	Name *Ident
	RHS  TypeExpr
}

func (n *TypeDefDecl) Span() (start, end Position) { return n.Name.Span() }

// An InterfaceDecl declares a named interface: a payload type plus the set
// of events a machine implementing it may receive.
type InterfaceDecl struct {
	Name             *Ident
	Payload          TypeExpr // nil => defaults to Null
	ReceivableEvents *EventSetRef
	Annotations      []*AnnotationSet
}

func (n *InterfaceDecl) Span() (start, end Position) { return n.Name.Span() }

// A ParamDecl is one formal parameter of a Function or FunctionProto
// signature.
type ParamDecl struct {
	Name *Ident
	Type TypeExpr
}

func (n *ParamDecl) Span() (start, end Position) { return n.Name.Span() }

// A VariableDecl declares a named, typed variable: a machine field or a
// function-local. Parameters are declared by ParamDecl instead.
type VariableDecl struct {
	Name *Ident
	Type TypeExpr
}

func (n *VariableDecl) Span() (start, end Position) { return n.Name.Span() }

// A FunctionDecl declares a function body. Name is nil for an anonymous
// handler attached directly to a state's entry/exit/action slot.
type FunctionDecl struct {
	Name       *Ident // nil for anonymous handlers
	Params     []*ParamDecl
	ReturnType TypeExpr // nil => defaults to Null
	Locals     []*VariableDecl
	Foreign    bool // bodyless, externally supplied — rejected as NotImplemented
	Pos        Position
}

func (n *FunctionDecl) Span() (start, end Position) {
	if n.Name != nil {
		return n.Name.Span()
	}
	return n.Pos, n.Pos
}

// A FunctionProtoDecl declares an externally-supplied function prototype.
// It may name the machines it is permitted to construct (Creates).
type FunctionProtoDecl struct {
	Name       *Ident
	Params     []*ParamDecl
	ReturnType TypeExpr
	Creates    []*Ident
}

func (n *FunctionProtoDecl) Span() (start, end Position) { return n.Name.Span() }

// A HandlerRef is how a state's entry/exit/action slot names its handler:
// either a reference to a previously (or later) declared Function/
// FunctionProto by name, or an inline anonymous FunctionDecl.
type HandlerRef struct {
	Name *Ident        // set if the source named an existing function
	Anon *FunctionDecl // set if the source gave an inline handler body
}

func (n *HandlerRef) Span() (start, end Position) {
	if n.Name != nil {
		return n.Name.Span()
	}
	return n.Anon.Span()
}

// Temperature is the source token, if any, marking a state WARM (default),
// HOT, or COLD.
type Temperature uint8

const (
	TempDefault Temperature = iota // no token present; binder applies WARM
	TempWarm
	TempHot
	TempCold
)

// An ActionKind distinguishes the five forms a StateActionDecl may take.
type ActionKind uint8

const (
	ActionDefer ActionKind = iota
	ActionIgnore
	ActionGoto
	ActionPush
	ActionDo
)

// A StateActionDecl binds one or more trigger events to a single action
// within an enclosing StateDecl.
type StateActionDecl struct {
	Events       []*Ident
	Kind         ActionKind
	Target       *QualPath   // set iff Kind is ActionGoto or ActionPush
	TransitionFn *HandlerRef // optional, set only for ActionGoto
	Fn           *HandlerRef // set iff Kind is ActionDo
	Pos          Position
}

func (n *StateActionDecl) Span() (start, end Position) { return n.Pos, n.Pos }

// A StateDecl declares one state of a machine or state group.
type StateDecl struct {
	Name        *Ident
	IsStart     bool
	Temperature Temperature
	Entries     []*HandlerRef // more than one is a DuplicateEntry error
	Exits       []*HandlerRef // more than one is a DuplicateExit error
	Actions     []*StateActionDecl
	Annotations []*AnnotationSet
}

func (n *StateDecl) Span() (start, end Position) { return n.Name.Span() }

// A StateGroupDecl declares a named, arbitrarily nestable grouping of states.
type StateGroupDecl struct {
	Name      *Ident
	States    []*StateDecl
	SubGroups []*StateGroupDecl
}

func (n *StateGroupDecl) Span() (start, end Position) { return n.Name.Span() }

// A MachineDecl declares a machine (IsSpec == false) or a spec machine
// (IsSpec == true). The Collision Matrix treats machines and spec machines
// as occupying the same name bucket (spec §4.1.1): both conflict with the
// same set of other kinds, so this module models them with a single Decl
// type distinguished by IsSpec.
type MachineDecl struct {
	Name        *Ident
	IsSpec      bool
	Cardinality *CardinalityDecl
	Interfaces  []*Ident
	Receives    *EventSetRef
	Sends       *EventSetRef
	Observes    *EventSetRef // nil if absent; a spec machine then gets an empty set
	Fields      []*VariableDecl
	Methods     []*FunctionDecl
	Groups      []*StateGroupDecl
	States      []*StateDecl
	Annotations []*AnnotationSet
}

func (n *MachineDecl) Span() (start, end Position) { return n.Name.Span() }

// A MachineProtoDecl declares an externally-supplied machine prototype.
type MachineProtoDecl struct {
	Name    *Ident
	Payload TypeExpr
}

func (n *MachineProtoDecl) Span() (start, end Position) { return n.Name.Span() }
