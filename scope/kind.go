package scope

// A Kind tags the namespace a Declaration lives in. The resolver's Collision
// Matrix (spec §4.1.1) is indexed by Kind.
type Kind uint8

const (
	KindEvent Kind = iota
	KindEventSet
	KindEnum
	KindEnumElem
	KindTypeDef
	KindInterface
	KindMachine // also covers spec machines; see syntax.MachineDecl doc.
	KindMachineProto
	KindFunction
	KindFunctionProto
	KindStateGroup
	KindState
	KindVariable
)

var kindNames = [...]string{
	KindEvent:         "event",
	KindEventSet:      "event set",
	KindEnum:          "enum",
	KindEnumElem:      "enum element",
	KindTypeDef:       "type",
	KindInterface:     "interface",
	KindMachine:       "machine",
	KindMachineProto:  "machine prototype",
	KindFunction:      "function",
	KindFunctionProto: "function prototype",
	KindStateGroup:    "state group",
	KindState:         "state",
	KindVariable:      "variable",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown kind"
}
