package decl

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// An Enum is a named enumeration with an insertion-ordered element list.
// Elements are attached one at a time during the stub pass; their order
// in Elems is also the order used to compute plain elements' values (spec
// §4.3, §9 Open Question 1).
type Enum struct {
	Name  string
	Node  *syntax.EnumDecl
	Elems []*EnumElem
}

func (e *Enum) DeclKind() scope.Kind { return scope.KindEnum }
func (e *Enum) DeclName() string     { return e.Name }

// AddElem appends el to the enum's ordered element list and sets el's
// parent link, detaching el from any prior parent first (spec §3: "moving
// an element detaches from prior parent").
func (e *Enum) AddElem(el *EnumElem) {
	if el.Parent != nil {
		el.Parent.removeElem(el)
	}
	el.Parent = e
	e.Elems = append(e.Elems, el)
}

func (e *Enum) removeElem(el *EnumElem) {
	for i, x := range e.Elems {
		if x == el {
			e.Elems = append(e.Elems[:i], e.Elems[i+1:]...)
			return
		}
	}
}

// An EnumElem is one member of an Enum: a name, an integer value, and an
// exclusive back-reference to its parent.
type EnumElem struct {
	Name   string
	Node   *syntax.EnumElemDecl
	Value  int64
	Parent *Enum
}

func (e *EnumElem) DeclKind() scope.Kind { return scope.KindEnumElem }
func (e *EnumElem) DeclName() string     { return e.Name }
