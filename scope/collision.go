package scope

// collisionMatrix implements spec §4.1.1: it is indexed by the Kind being
// inserted and lists every Kind that a same-named local declaration of that
// kind is not allowed to coexist with. Only the inserting kind's row is
// consulted, never the existing kind's row. As transcribed here every
// conflicting pair is listed in both rows (e.g. Event lists EnumElem and
// EnumElem lists Event), so the result is the same in either direction.
var collisionMatrix = map[Kind][]Kind{
	KindTypeDef:       {KindTypeDef, KindEnum, KindInterface, KindMachine, KindMachineProto},
	KindEnum:          {KindEnum, KindInterface, KindTypeDef, KindMachine, KindMachineProto},
	KindEvent:         {KindEvent, KindEnumElem},
	KindEventSet:      {KindEventSet},
	KindInterface:     {KindInterface, KindEnum, KindTypeDef, KindMachine, KindMachineProto},
	KindMachine:       {KindMachine, KindInterface, KindEnum, KindTypeDef},
	KindMachineProto:  {KindMachineProto, KindInterface, KindEnum, KindTypeDef},
	KindFunction:      {KindFunction},
	KindFunctionProto: {KindFunctionProto},
	KindStateGroup:    {KindStateGroup},
	KindEnumElem:      {KindEnumElem, KindEvent},
	KindVariable:      {KindVariable},
	KindState:         {KindState},
}

// conflicts reports whether inserting a declaration of kind `inserting`
// would collide with an existing local declaration of kind `existing`.
func conflicts(inserting, existing Kind) bool {
	for _, k := range collisionMatrix[inserting] {
		if k == existing {
			return true
		}
	}
	return false
}
