package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.smlang.dev/decl"
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
	"go.smlang.dev/types"
)

// fakeType is a trivial types.PLanguageType used only so resolveType has
// something concrete to hand back; no scenario below exercises a
// user-written type subtree deeply enough to need more.
type fakeType struct{ name string }

func (t fakeType) Name() string { return t.name }
func (t fakeType) Equals(o types.PLanguageType) bool {
	other, ok := o.(fakeType)
	return ok && other.name == t.name
}

type fakeTypeExpr struct {
	name    string
	foreign bool
}

func (e fakeTypeExpr) Span() (a, b syntax.Position) { return syntax.Position{}, syntax.Position{} }
func (e fakeTypeExpr) IsForeign() bool              { return e.foreign }

type fakeResolver struct{}

func (fakeResolver) Resolve(sc *scope.Scope, expr syntax.TypeExpr) (types.PLanguageType, error) {
	return fakeType{expr.(fakeTypeExpr).name}, nil
}

func ident(name string) *syntax.Ident { return &syntax.Ident{Name: name} }

func TestZeroProgramUnits(t *testing.T) {
	g, err := AnalyzeCompilationUnit(fakeResolver{})
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}
	if _, ok := g.TopLevel.Get(scope.KindEvent, "halt"); !ok {
		t.Error("top-level scope missing built-in event halt")
	}
	if _, ok := g.TopLevel.Get(scope.KindEvent, "null"); !ok {
		t.Error("top-level scope missing built-in event null")
	}
	if len(g.TopLevel.AllDecls()) != 2 {
		t.Errorf("top-level scope has %d decls, want exactly the 2 built-ins", len(g.TopLevel.AllDecls()))
	}
}

func TestMinimalMachine(t *testing.T) {
	eventE := &syntax.EventDecl{Name: ident("E")}
	stateS := &syntax.StateDecl{
		Name:    ident("S"),
		IsStart: true,
		Entries: []*syntax.HandlerRef{{Anon: &syntax.FunctionDecl{}}},
	}
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{stateS}}
	prog := &syntax.Program{Path: "minimal", Decls: []syntax.Decl{eventE, machineM}}

	g, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}

	evD, ok := g.TopLevel.Get(scope.KindEvent, "E")
	if !ok {
		t.Fatal("event E not found at top level")
	}
	ev := evD.(*decl.Event)
	if ev.Payload != types.Null {
		t.Errorf("event E payload = %v, want Null", ev.Payload)
	}

	mD, ok := g.TopLevel.Get(scope.KindMachine, "M")
	if !ok {
		t.Fatal("machine M not found at top level")
	}
	m := mD.(*decl.Machine)
	if m.Payload != types.Null {
		t.Errorf("machine M payload = %v, want Null", m.Payload)
	}
	if m.StartState == nil || m.StartState.Name != "S" {
		t.Fatalf("machine M start state = %v, want S", m.StartState)
	}
	if !m.StartState.IsStart {
		t.Error("start state S.IsStart = false")
	}
	if m.StartState.Temperature != decl.Warm {
		t.Errorf("start state temperature = %v, want Warm", m.StartState.Temperature)
	}
	if m.StartState.Entry == nil {
		t.Fatal("start state S has no entry handler bound")
	}
	if len(m.Methods) != 0 {
		t.Errorf("machine M methods = %v, want none (anonymous handlers are not methods)", m.Methods)
	}
	if len(m.Fields) != 0 {
		t.Errorf("machine M fields = %v, want none", m.Fields)
	}
}

// TestRunValidatorAcceptsAnonymousHandler runs the debug validator over the
// same minimal machine as TestMinimalMachine, whose only function is an
// anonymous entry handler. A validator that mistakenly required every
// Owner-having Function to appear in its machine's Methods list would panic
// on this input (spec §3: Methods collects only named functions).
func TestRunValidatorAcceptsAnonymousHandler(t *testing.T) {
	orig := RunValidator
	RunValidator = true
	defer func() { RunValidator = orig }()

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("validator rejected a valid anonymous-handler machine: %v", r)
		}
	}()

	eventE := &syntax.EventDecl{Name: ident("E")}
	stateS := &syntax.StateDecl{
		Name:    ident("S"),
		IsStart: true,
		Entries: []*syntax.HandlerRef{{Anon: &syntax.FunctionDecl{}}},
	}
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{stateS}}
	prog := &syntax.Program{Path: "minimal", Decls: []syntax.Decl{eventE, machineM}}

	if _, err := AnalyzeCompilationUnit(fakeResolver{}, prog); err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}
}

func TestStartStateUniqueness(t *testing.T) {
	stateA := &syntax.StateDecl{Name: ident("A"), IsStart: true}
	stateB := &syntax.StateDecl{Name: ident("B"), IsStart: true}
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{stateA, stateB}}
	prog := &syntax.Program{Path: "dup-start", Decls: []syntax.Decl{machineM}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	dup, ok := err.(*DuplicateStartState)
	if !ok {
		t.Fatalf("error = %v (%T), want *DuplicateStartState", err, err)
	}
	if dup.Machine.Name != "M" || dup.Conflicting.Name != "B" {
		t.Errorf("DuplicateStartState = {%s, %s}, want {M, B}", dup.Machine.Name, dup.Conflicting.Name)
	}
}

func TestDuplicateEntry(t *testing.T) {
	stateA := &syntax.StateDecl{
		Name:    ident("A"),
		IsStart: true,
		Entries: []*syntax.HandlerRef{
			{Anon: &syntax.FunctionDecl{}},
			{Anon: &syntax.FunctionDecl{}},
		},
	}
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{stateA}}
	prog := &syntax.Program{Path: "dup-entry", Decls: []syntax.Decl{machineM}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	dup, ok := err.(*DuplicateEntry)
	if !ok {
		t.Fatalf("error = %v (%T), want *DuplicateEntry", err, err)
	}
	if dup.State.Name != "A" {
		t.Errorf("DuplicateEntry.State.Name = %q, want %q", dup.State.Name, "A")
	}
}

func TestDuplicateExit(t *testing.T) {
	stateA := &syntax.StateDecl{
		Name:    ident("A"),
		IsStart: true,
		Exits: []*syntax.HandlerRef{
			{Anon: &syntax.FunctionDecl{}},
			{Anon: &syntax.FunctionDecl{}},
		},
	}
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{stateA}}
	prog := &syntax.Program{Path: "dup-exit", Decls: []syntax.Decl{machineM}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	dup, ok := err.(*DuplicateExit)
	if !ok {
		t.Fatalf("error = %v (%T), want *DuplicateExit", err, err)
	}
	if dup.State.Name != "A" {
		t.Errorf("DuplicateExit.State.Name = %q, want %q", dup.State.Name, "A")
	}
}

func TestQualifiedTransition(t *testing.T) {
	eventE := &syntax.EventDecl{Name: ident("E")}
	stateT := &syntax.StateDecl{Name: ident("T")}
	groupG2 := &syntax.StateGroupDecl{Name: ident("G2"), States: []*syntax.StateDecl{stateT}}
	groupG1 := &syntax.StateGroupDecl{Name: ident("G1"), SubGroups: []*syntax.StateGroupDecl{groupG2}}

	action := &syntax.StateActionDecl{
		Events: []*syntax.Ident{ident("E")},
		Kind:   syntax.ActionGoto,
		Target: &syntax.QualPath{Groups: []*syntax.Ident{ident("G1"), ident("G2")}, Final: ident("T")},
	}
	stateA := &syntax.StateDecl{Name: ident("A"), IsStart: true, Actions: []*syntax.StateActionDecl{action}}
	machineM := &syntax.MachineDecl{
		Name:   ident("M"),
		States: []*syntax.StateDecl{stateA},
		Groups: []*syntax.StateGroupDecl{groupG1},
	}
	prog := &syntax.Program{Path: "qualified", Decls: []syntax.Decl{eventE, machineM}}

	g, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}

	mD, _ := g.TopLevel.Get(scope.KindMachine, "M")
	m := mD.(*decl.Machine)
	evD, _ := g.TopLevel.Get(scope.KindEvent, "E")
	ev := evD.(*decl.Event)

	sa, ok := m.StartState.Actions[ev]
	if !ok {
		t.Fatal("start state A has no action for event E")
	}
	goTo, ok := sa.(*decl.GotoStateAction)
	if !ok {
		t.Fatalf("action for E is %T, want *decl.GotoStateAction", sa)
	}
	if goTo.Target == nil || goTo.Target.Name != "T" {
		t.Fatalf("goto target = %v, want state T", goTo.Target)
	}
	wantTarget := m.Groups[0].SubGroups[0].States[0]
	if goTo.Target != wantTarget {
		t.Error("goto target is not the same *decl.State object reachable via M.Groups[0].SubGroups[0].States[0]")
	}
}

func TestNamespaceConflictAcrossKinds(t *testing.T) {
	typeX := &syntax.TypeDefDecl{Name: ident("X")}
	machineX := &syntax.MachineDecl{Name: ident("X"), States: []*syntax.StateDecl{{Name: ident("S"), IsStart: true}}}
	prog := &syntax.Program{Path: "conflict", Decls: []syntax.Decl{typeX, machineX}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	dup, ok := err.(*DuplicateDeclaration)
	if !ok {
		t.Fatalf("error = %v (%T), want *DuplicateDeclaration", err, err)
	}
	if dup.New.DeclKind() != scope.KindMachine || dup.Existing.DeclKind() != scope.KindTypeDef {
		t.Errorf("DuplicateDeclaration = {new:%v, existing:%v}, want {machine, type}", dup.New.DeclKind(), dup.Existing.DeclKind())
	}
}

func TestEventEnumElemConflict(t *testing.T) {
	enumC := &syntax.EnumDecl{Name: ident("C"), Elems: []*syntax.EnumElemDecl{{Name: ident("A")}}}
	eventA := &syntax.EventDecl{Name: ident("A")}
	prog := &syntax.Program{Path: "enum-event-conflict", Decls: []syntax.Decl{enumC, eventA}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	dup, ok := err.(*DuplicateDeclaration)
	if !ok {
		t.Fatalf("error = %v (%T), want *DuplicateDeclaration", err, err)
	}
	if dup.New.DeclKind() != scope.KindEvent || dup.Existing.DeclKind() != scope.KindEnumElem {
		t.Errorf("DuplicateDeclaration = {new:%v, existing:%v}, want {event, enum element}", dup.New.DeclKind(), dup.Existing.DeclKind())
	}
}

func TestNumberedEnumWithGaps(t *testing.T) {
	enumE := &syntax.EnumDecl{Name: ident("E"), Elems: []*syntax.EnumElemDecl{
		{Name: ident("X"), Numbered: true, Value: &syntax.IntLit{Value: 3}},
		{Name: ident("Y")},
		{Name: ident("Z"), Numbered: true, Value: &syntax.IntLit{Value: 10}},
	}}
	prog := &syntax.Program{Path: "enum-gaps", Decls: []syntax.Decl{enumE}}

	g, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}
	enD, _ := g.TopLevel.Get(scope.KindEnum, "E")
	en := enD.(*decl.Enum)

	got := make(map[string]int64, len(en.Elems))
	for _, el := range en.Elems {
		got[el.Name] = el.Value
	}
	want := map[string]int64{"X": 3, "Y": 1, "Z": 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("enum element values mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingEventHint(t *testing.T) {
	eventConnected := &syntax.EventDecl{Name: ident("connected")}
	setDecl := &syntax.EventSetDecl{
		Name:    ident("S"),
		Literal: &syntax.EventSetLiteral{Events: []*syntax.Ident{ident("conected")}},
	}
	prog := &syntax.Program{Path: "typo", Decls: []syntax.Decl{eventConnected, setDecl}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	missing, ok := err.(*MissingEvent)
	if !ok {
		t.Fatalf("error = %v (%T), want *MissingEvent", err, err)
	}
	if missing.Hint != "connected" {
		t.Errorf("MissingEvent.Hint = %q, want %q", missing.Hint, "connected")
	}
}

func TestAnnotationSetNotImplemented(t *testing.T) {
	eventE := &syntax.EventDecl{Name: ident("E"), Annotations: []*syntax.AnnotationSet{{Name: ident("deprecated")}}}
	prog := &syntax.Program{Path: "annotated", Decls: []syntax.Decl{eventE}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	ni, ok := err.(*NotImplemented)
	if !ok {
		t.Fatalf("error = %v (%T), want *NotImplemented", err, err)
	}
	if ni.Feature != "annotationSet" {
		t.Errorf("NotImplemented.Feature = %q, want %q", ni.Feature, "annotationSet")
	}
}

func TestForeignFunctionNotImplemented(t *testing.T) {
	fnDecl := &syntax.FunctionDecl{Name: ident("f"), Foreign: true}
	prog := &syntax.Program{Path: "foreign", Decls: []syntax.Decl{fnDecl}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	ni, ok := err.(*NotImplemented)
	if !ok {
		t.Fatalf("error = %v (%T), want *NotImplemented", err, err)
	}
	if ni.Feature != "foreign function" {
		t.Errorf("NotImplemented.Feature = %q, want %q", ni.Feature, "foreign function")
	}
}

func TestFunctionPrototypeAsHandlerNotImplemented(t *testing.T) {
	protoDecl := &syntax.FunctionProtoDecl{Name: ident("proto")}
	stateS := &syntax.StateDecl{
		Name:    ident("S"),
		IsStart: true,
		Entries: []*syntax.HandlerRef{{Name: ident("proto")}},
	}
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{stateS}}
	prog := &syntax.Program{Path: "proto-handler", Decls: []syntax.Decl{protoDecl, machineM}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	ni, ok := err.(*NotImplemented)
	if !ok {
		t.Fatalf("error = %v (%T), want *NotImplemented", err, err)
	}
	if ni.Feature != "function prototype as state handler" {
		t.Errorf("NotImplemented.Feature = %q, want %q", ni.Feature, "function prototype as state handler")
	}
}

func TestAddingLaterFileDoesNotChangeEarlierDeclarations(t *testing.T) {
	eventE := &syntax.EventDecl{Name: ident("E")}
	prog1 := &syntax.Program{Path: "first", Decls: []syntax.Decl{eventE}}

	g1, err := AnalyzeCompilationUnit(fakeResolver{}, prog1)
	if err != nil {
		t.Fatalf("first analysis error = %v", err)
	}
	ev1, _ := g1.TopLevel.Get(scope.KindEvent, "E")

	eventF := &syntax.EventDecl{Name: ident("F")}
	prog2 := &syntax.Program{Path: "second", Decls: []syntax.Decl{eventF}}

	g2, err := AnalyzeCompilationUnit(fakeResolver{}, prog1, prog2)
	if err != nil {
		t.Fatalf("second analysis error = %v", err)
	}
	ev2, _ := g2.TopLevel.Get(scope.KindEvent, "E")

	if diff := cmp.Diff(ev1.(*decl.Event).Name, ev2.(*decl.Event).Name); diff != "" {
		t.Errorf("event E name changed by adding a later file (-first +second):\n%s", diff)
	}
	if ev1.(*decl.Event).Payload != ev2.(*decl.Event).Payload {
		t.Error("event E payload changed by adding a later file")
	}
}

func TestInterfaceBinding(t *testing.T) {
	eventConnected := &syntax.EventDecl{Name: ident("Connected")}
	ifaceI := &syntax.InterfaceDecl{
		Name:             ident("I"),
		Payload:          fakeTypeExpr{name: "Payload"},
		ReceivableEvents: &syntax.EventSetRef{Literal: &syntax.EventSetLiteral{Events: []*syntax.Ident{ident("Connected")}}},
	}
	machineM := &syntax.MachineDecl{
		Name:       ident("M"),
		Interfaces: []*syntax.Ident{ident("I")},
		States:     []*syntax.StateDecl{{Name: ident("S"), IsStart: true}},
	}
	prog := &syntax.Program{Path: "interface", Decls: []syntax.Decl{eventConnected, ifaceI, machineM}}

	g, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}

	ifD, ok := g.TopLevel.Get(scope.KindInterface, "I")
	if !ok {
		t.Fatal("interface I not found at top level")
	}
	iface := ifD.(*decl.Interface)
	if iface.Payload != (fakeType{"Payload"}) {
		t.Errorf("interface I payload = %v, want fakeType{Payload}", iface.Payload)
	}
	if iface.ReceivableEvents == nil || iface.ReceivableEvents.Len() != 1 {
		t.Errorf("interface I receivable events len = %v, want 1", iface.ReceivableEvents)
	}

	mD, _ := g.TopLevel.Get(scope.KindMachine, "M")
	m := mD.(*decl.Machine)
	if len(m.Interfaces) != 1 || m.Interfaces[0] != iface {
		t.Errorf("machine M interfaces = %v, want [I]", m.Interfaces)
	}
}

func TestMachineProtoAndTypeDefBinding(t *testing.T) {
	typeT := &syntax.TypeDefDecl{Name: ident("T"), RHS: fakeTypeExpr{name: "Underlying"}}
	protoP := &syntax.MachineProtoDecl{Name: ident("P"), Payload: fakeTypeExpr{name: "Payload"}}
	prog := &syntax.Program{Path: "proto-typedef", Decls: []syntax.Decl{typeT, protoP}}

	g, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}

	tdD, ok := g.TopLevel.Get(scope.KindTypeDef, "T")
	if !ok {
		t.Fatal("type T not found at top level")
	}
	if tdD.(*decl.TypeDef).Type != (fakeType{"Underlying"}) {
		t.Errorf("type T = %v, want fakeType{Underlying}", tdD.(*decl.TypeDef).Type)
	}

	mpD, ok := g.TopLevel.Get(scope.KindMachineProto, "P")
	if !ok {
		t.Fatal("machine prototype P not found at top level")
	}
	if mpD.(*decl.MachineProto).Payload != (fakeType{"Payload"}) {
		t.Errorf("machine prototype P payload = %v, want fakeType{Payload}", mpD.(*decl.MachineProto).Payload)
	}
}

func TestFunctionPrototypeCreatesMachine(t *testing.T) {
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{{Name: ident("S"), IsStart: true}}}
	protoP := &syntax.FunctionProtoDecl{Name: ident("spawn"), Creates: []*syntax.Ident{ident("M")}}
	prog := &syntax.Program{Path: "proto-creates", Decls: []syntax.Decl{machineM, protoP}}

	g, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}

	mD, _ := g.TopLevel.Get(scope.KindMachine, "M")
	m := mD.(*decl.Machine)
	fpD, ok := g.TopLevel.Get(scope.KindFunctionProto, "spawn")
	if !ok {
		t.Fatal("function prototype spawn not found at top level")
	}
	fp := fpD.(*decl.FunctionProto)
	if len(fp.Creates) != 1 || fp.Creates[0] != m {
		t.Errorf("function prototype spawn Creates = %v, want [M]", fp.Creates)
	}
}

func TestSpecMachineObservesDefaultsToEmptySet(t *testing.T) {
	machineM := &syntax.MachineDecl{
		Name:   ident("M"),
		IsSpec: true,
		States: []*syntax.StateDecl{{Name: ident("S"), IsStart: true}},
	}
	prog := &syntax.Program{Path: "spec-machine", Decls: []syntax.Decl{machineM}}

	g, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}

	mD, _ := g.TopLevel.Get(scope.KindMachine, "M")
	m := mD.(*decl.Machine)
	if !m.IsSpec {
		t.Fatal("machine M is not marked IsSpec")
	}
	if m.Observes == nil {
		t.Fatal("spec machine M has nil Observes, want a synthesized empty set")
	}
	if m.Observes.Len() != 0 {
		t.Errorf("spec machine M Observes has %d members, want 0", m.Observes.Len())
	}
}

func TestSpecMachineObservesFromExplicitSet(t *testing.T) {
	eventE := &syntax.EventDecl{Name: ident("E")}
	machineM := &syntax.MachineDecl{
		Name:     ident("M"),
		IsSpec:   true,
		Observes: &syntax.EventSetRef{Literal: &syntax.EventSetLiteral{Events: []*syntax.Ident{ident("E")}}},
		States:   []*syntax.StateDecl{{Name: ident("S"), IsStart: true}},
	}
	prog := &syntax.Program{Path: "spec-machine-observes", Decls: []syntax.Decl{eventE, machineM}}

	g, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	if err != nil {
		t.Fatalf("AnalyzeCompilationUnit() error = %v", err)
	}

	mD, _ := g.TopLevel.Get(scope.KindMachine, "M")
	m := mD.(*decl.Machine)
	if m.Observes == nil || m.Observes.Len() != 1 {
		t.Errorf("spec machine M Observes len = %v, want 1", m.Observes)
	}
}

func TestMachineWithoutStartState(t *testing.T) {
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{{Name: ident("S")}}}
	prog := &syntax.Program{Path: "no-start", Decls: []syntax.Decl{machineM}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	missing, ok := err.(*MachineWithoutStartState)
	if !ok {
		t.Fatalf("error = %v (%T), want *MachineWithoutStartState", err, err)
	}
	if missing.Machine.Name != "M" {
		t.Errorf("MachineWithoutStartState.Machine.Name = %q, want %q", missing.Machine.Name, "M")
	}
}

func TestDuplicateHandlerAction(t *testing.T) {
	ignoreAction := &syntax.StateActionDecl{Events: []*syntax.Ident{ident("E")}, Kind: syntax.ActionIgnore}
	deferAction := &syntax.StateActionDecl{Events: []*syntax.Ident{ident("E")}, Kind: syntax.ActionDefer}
	eventE := &syntax.EventDecl{Name: ident("E")}
	stateA := &syntax.StateDecl{
		Name:    ident("A"),
		IsStart: true,
		Actions: []*syntax.StateActionDecl{ignoreAction, deferAction},
	}
	machineM := &syntax.MachineDecl{Name: ident("M"), States: []*syntax.StateDecl{stateA}}
	prog := &syntax.Program{Path: "dup-handler", Decls: []syntax.Decl{eventE, machineM}}

	_, err := AnalyzeCompilationUnit(fakeResolver{}, prog)
	dup, ok := err.(*DuplicateHandler)
	if !ok {
		t.Fatalf("error = %v (%T), want *DuplicateHandler", err, err)
	}
	if dup.Event.Name != "E" || dup.State.Name != "A" {
		t.Errorf("DuplicateHandler = {event:%s, state:%s}, want {E, A}", dup.Event.Name, dup.State.Name)
	}
}
