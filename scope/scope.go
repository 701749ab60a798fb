// Package scope implements the Declaration Table described in spec §4.1: a
// lexical scope partitioned into kind-specific sub-dictionaries, linked to an
// optional parent, with local insertion (subject to the Collision Matrix)
// and ancestor-chained lookup.
//
// The parent/child linkage follows the shape used by
// _examples/other_examples/pulumi-pulumi__scope.go's Scope/Scopes types; the
// per-kind partitioning follows bitgirder's mingle-compiler buildScope,
// generalized from "one dictionary" to "one dictionary per Kind" so that a
// TypeDef and a Variable of the same name never collide with each other.
package scope

// A Declaration is anything a Scope can hold. Concrete declaration types
// live in package decl; Scope only needs enough to file and look them up.
type Declaration interface {
	DeclKind() Kind
	DeclName() string
}

// A Scope is one lexical scope: a set of kind-partitioned name tables, an
// optional parent, and the set of scopes nested directly within it.
type Scope struct {
	parent   *Scope
	children []*Scope
	byKind   [numKinds]map[string]Declaration
}

const numKinds = int(KindVariable) + 1

// New creates a scope whose parent is p. Passing a nil parent creates a
// root scope (the top-level scope of spec §3 is one such root).
func New(p *Scope) *Scope {
	s := &Scope{parent: p}
	if p != nil {
		p.children = append(p.children, s)
	}
	return s
}

// Parent returns the scope's parent, or nil if it is a root.
func (s *Scope) Parent() *Scope { return s.parent }

// Children returns the scopes nested directly within s.
func (s *Scope) Children() []*Scope { return s.children }

// SetParent reparents s, removing it from its old parent's child list (if
// any) and appending it to the new parent's child list, keeping both links
// consistent (spec §4.1: "the two are kept consistent").
func (s *Scope) SetParent(p *Scope) {
	if s.parent != nil {
		siblings := s.parent.children
		for i, c := range siblings {
			if c == s {
				s.parent.children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	s.parent = p
	if p != nil {
		p.children = append(p.children, s)
	}
}

// Put inserts d under its own DeclKind/DeclName, checking the Collision
// Matrix against this scope's local declarations only (spec §4.1.1: "the
// local scope only"). On success it returns (d, true). On a collision it
// returns the pre-existing declaration that d collides with and false; the
// caller (package resolve) is responsible for turning that into a
// DuplicateDeclaration error, since Scope has no notion of syntax positions.
func (s *Scope) Put(d Declaration) (existing Declaration, ok bool) {
	k := d.DeclKind()
	for existingKind, table := range s.byKind {
		if table == nil {
			continue
		}
		if prev, found := table[d.DeclName()]; found && conflicts(k, Kind(existingKind)) {
			return prev, false
		}
	}
	if s.byKind[k] == nil {
		s.byKind[k] = make(map[string]Declaration)
	}
	s.byKind[k][d.DeclName()] = d
	return d, true
}

// Get returns the local declaration of the given kind and name, if any. It
// does not consult ancestor scopes.
func (s *Scope) Get(k Kind, name string) (Declaration, bool) {
	table := s.byKind[k]
	if table == nil {
		return nil, false
	}
	d, ok := table[name]
	return d, ok
}

// Lookup walks s and its ancestors, returning the first declaration of the
// given kind and name it finds.
func (s *Scope) Lookup(k Kind, name string) (Declaration, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if d, ok := cur.Get(k, name); ok {
			return d, true
		}
	}
	return nil, false
}

// AllDecls returns every declaration local to s, across all kinds. The
// result is grouped by Kind in Kind order; within one kind the order follows
// Go map iteration and is not deterministic, so callers needing a stable
// order must sort the result themselves.
func (s *Scope) AllDecls() []Declaration {
	var out []Declaration
	for _, table := range s.byKind {
		for _, d := range table {
			out = append(out, d)
		}
	}
	return out
}
