package scope

import "testing"

type fakeDecl struct {
	kind Kind
	name string
}

func (d fakeDecl) DeclKind() Kind { return d.kind }
func (d fakeDecl) DeclName() string { return d.name }

func TestPutAndGet(t *testing.T) {
	s := New(nil)
	ev := fakeDecl{KindEvent, "E"}
	if _, ok := s.Put(ev); !ok {
		t.Fatalf("Put(%v) failed unexpectedly", ev)
	}
	got, ok := s.Get(KindEvent, "E")
	if !ok || got != ev {
		t.Fatalf("Get(event, E) = %v, %v; want %v, true", got, ok, ev)
	}
	if _, ok := s.Get(KindEvent, "missing"); ok {
		t.Fatalf("Get(event, missing) succeeded unexpectedly")
	}
}

func TestPutCollision(t *testing.T) {
	s := New(nil)
	if _, ok := s.Put(fakeDecl{KindEvent, "A"}); !ok {
		t.Fatal("first Put failed")
	}
	// EnumElem conflicts with an existing Event of the same name.
	existing, ok := s.Put(fakeDecl{KindEnumElem, "A"})
	if ok {
		t.Fatal("Put(EnumElem A) should have collided with Event A")
	}
	if existing.DeclKind() != KindEvent {
		t.Fatalf("collision existing kind = %v, want event", existing.DeclKind())
	}
}

func TestPutNoCollisionAcrossUnrelatedKinds(t *testing.T) {
	s := New(nil)
	if _, ok := s.Put(fakeDecl{KindEnumElem, "X"}); !ok {
		t.Fatal("first Put failed")
	}
	// A Variable named X does not conflict with an EnumElem named X.
	if _, ok := s.Put(fakeDecl{KindVariable, "X"}); !ok {
		t.Fatal("Put(Variable X) should not collide with EnumElem X")
	}
}

func TestLookupWalksAncestors(t *testing.T) {
	root := New(nil)
	root.Put(fakeDecl{KindMachine, "M"})
	child := New(root)
	if _, ok := child.Get(KindMachine, "M"); ok {
		t.Fatal("Get should not see ancestor declarations")
	}
	got, ok := child.Lookup(KindMachine, "M")
	if !ok || got.DeclName() != "M" {
		t.Fatalf("Lookup(machine, M) = %v, %v; want M, true", got, ok)
	}
}

func TestSetParentKeepsChildrenConsistent(t *testing.T) {
	a := New(nil)
	b := New(nil)
	child := New(a)
	if len(a.Children()) != 1 || len(b.Children()) != 0 {
		t.Fatalf("initial children: a=%d b=%d, want 1, 0", len(a.Children()), len(b.Children()))
	}
	child.SetParent(b)
	if len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Fatalf("after SetParent: a=%d b=%d, want 0, 1", len(a.Children()), len(b.Children()))
	}
	if child.Parent() != b {
		t.Fatalf("child.Parent() = %v, want %v", child.Parent(), b)
	}
}

func TestAllDecls(t *testing.T) {
	s := New(nil)
	s.Put(fakeDecl{KindEvent, "A"})
	s.Put(fakeDecl{KindVariable, "B"})
	if len(s.AllDecls()) != 2 {
		t.Fatalf("AllDecls() = %d entries, want 2", len(s.AllDecls()))
	}
}
