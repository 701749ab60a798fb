package decl

import (
	"go.smlang.dev/scope"
	"go.smlang.dev/syntax"
)

// Temperature classifies a state; WARM is the default.
type Temperature uint8

const (
	Warm Temperature = iota
	Hot
	Cold
)

// A StateGroup is a named, arbitrarily nestable grouping of states.
type StateGroup struct {
	Name      string
	Node      *syntax.StateGroupDecl
	Parent    interface{} // *Machine or *StateGroup
	Scope     *scope.Scope
	States    []*State
	SubGroups []*StateGroup
}

func (g *StateGroup) DeclKind() scope.Kind { return scope.KindStateGroup }
func (g *StateGroup) DeclName() string     { return g.Name }

// A State is one state of a machine or state group.
type State struct {
	Name        string
	Node        *syntax.StateDecl
	Parent      interface{} // *Machine or *StateGroup
	Temperature Temperature
	IsStart     bool
	Entry       *Function
	Exit        *Function
	Actions     map[*Event]StateAction
}

func (s *State) DeclKind() scope.Kind { return scope.KindState }
func (s *State) DeclName() string     { return s.Name }

// A StateAction is the polymorphic action a State takes in response to one
// triggering Event (spec §3): Defer, Ignore, GotoState, PushState, or
// DoAction.
type StateAction interface {
	Trigger() *Event
}

type DeferAction struct{ Event *Event }

func (a *DeferAction) Trigger() *Event { return a.Event }

type IgnoreAction struct{ Event *Event }

func (a *IgnoreAction) Trigger() *Event { return a.Event }

type GotoStateAction struct {
	Event        *Event
	Target       *State
	TransitionFn *Function // optional
}

func (a *GotoStateAction) Trigger() *Event { return a.Event }

type PushStateAction struct {
	Event  *Event
	Target *State
}

func (a *PushStateAction) Trigger() *Event { return a.Event }

type DoAction struct {
	Event *Event
	Fn    *Function
}

func (a *DoAction) Trigger() *Event { return a.Event }
