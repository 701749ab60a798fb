package decl

import (
	"sort"

	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// An EventSet is a named or anonymous, ordered set of Events. Iteration via
// Sorted is always by event name, to keep downstream output deterministic
// (spec §5, §9 "EventSet iteration order").
type EventSet struct {
	Name     string // synthetic name for anonymous sets, e.g. "M$eventset"
	Anon     bool
	Node     *syntax.EventSetDecl // nil for an anonymous, synthesized set
	byName   map[string]*Event
	inserted []*Event // insertion order, kept for diagnostics only
}

func NewEventSet(name string, anon bool) *EventSet {
	return &EventSet{Name: name, Anon: anon, byName: make(map[string]*Event)}
}

func (s *EventSet) DeclKind() scope.Kind { return scope.KindEventSet }
func (s *EventSet) DeclName() string     { return s.Name }

// Add inserts e into the set. Adding the same event twice is a no-op.
func (s *EventSet) Add(e *Event) {
	if _, ok := s.byName[e.Name]; ok {
		return
	}
	s.byName[e.Name] = e
	s.inserted = append(s.inserted, e)
}

// Has reports whether e (by name) is a member.
func (s *EventSet) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Sorted returns the set's events in deterministic, name-sorted order.
func (s *EventSet) Sorted() []*Event {
	out := make([]*Event, 0, len(s.byName))
	for _, e := range s.byName {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of events in the set.
func (s *EventSet) Len() int { return len(s.byName) }
