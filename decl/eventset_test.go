package decl

import "testing"

func TestEventSetSortedOrder(t *testing.T) {
	s := NewEventSet("S", false)
	s.Add(&Event{Name: "zeta"})
	s.Add(&Event{Name: "alpha"})
	s.Add(&Event{Name: "mid"})

	sorted := s.Sorted()
	if len(sorted) != 3 {
		t.Fatalf("Sorted() len = %d, want 3", len(sorted))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, e := range sorted {
		if e.Name != want[i] {
			t.Fatalf("Sorted()[%d] = %q, want %q", i, e.Name, want[i])
		}
	}
}

func TestEventSetAddIsIdempotent(t *testing.T) {
	s := NewEventSet("S", false)
	e := &Event{Name: "E"}
	s.Add(e)
	s.Add(e)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestEventSetHas(t *testing.T) {
	s := NewEventSet("S", false)
	s.Add(&Event{Name: "E"})
	if !s.Has("E") {
		t.Fatal("Has(E) = false, want true")
	}
	if s.Has("missing") {
		t.Fatal("Has(missing) = true, want false")
	}
}
