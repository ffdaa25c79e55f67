package typing

// BaseKind is the scalar kind underlying a value type.
type BaseKind int

// Enumeration of base kinds.
const (
	BaseNone BaseKind = iota
	BaseBoolean
	BaseInteger
)

// CallableKind indicates whether a value type names a subroutine and what
// kind of subroutine it is.
type CallableKind int

// Enumeration of callable kinds.
const (
	CallNone CallableKind = iota
	CallFunction
	CallProcedure
)

// ValType is the semantic type of an AMPL name or expression.  For a function,
// Base and Array describe the return type.  A procedure has no base kind.
// Value types are comparable with `==`.
type ValType struct {
	Base     BaseKind
	Array    bool
	Callable CallableKind
}

// The predefined value types.
var (
	None         = ValType{}
	Boolean      = ValType{Base: BaseBoolean}
	Integer      = ValType{Base: BaseInteger}
	BooleanArray = ValType{Base: BaseBoolean, Array: true}
	IntegerArray = ValType{Base: BaseInteger, Array: true}
	Procedure    = ValType{Callable: CallProcedure}
)

// Function returns the type of a function returning ret.
func Function(ret ValType) ValType {
	return ValType{Base: ret.Base, Array: ret.Array, Callable: CallFunction}
}

// -----------------------------------------------------------------------------

// IsCallable returns whether t names a function or a procedure.
func (t ValType) IsCallable() bool {
	return t.Callable != CallNone
}

// IsFunction returns whether t names a function.
func (t ValType) IsFunction() bool {
	return t.Callable == CallFunction
}

// IsProcedure returns whether t names a procedure.
func (t ValType) IsProcedure() bool {
	return t.Callable == CallProcedure
}

// IsVariable returns whether t is the type of a variable.
func (t ValType) IsVariable() bool {
	return t.Callable == CallNone && t.Base != BaseNone
}

// IsArray returns whether t is an array value.  A function returning an array
// is not itself an array.
func (t ValType) IsArray() bool {
	return t.Array && t.Callable == CallNone
}

// ElemType returns the type of an element of the array type t.
func (t ValType) ElemType() ValType {
	return ValType{Base: t.Base}
}

// ReturnType returns the type of the value produced by calling t.  Procedures
// and non-callable types return None.
func (t ValType) ReturnType() ValType {
	if t.Callable != CallFunction {
		return None
	}

	return ValType{Base: t.Base, Array: t.Array}
}

// -----------------------------------------------------------------------------

// ArgCompatible returns whether an argument of type arg may be passed to a
// formal parameter of type formal.  Array arguments must match exactly,
// scalars must agree on their base kind, and any callable is accepted where a
// callable is expected.
func ArgCompatible(arg, formal ValType) bool {
	if arg.IsCallable() || formal.IsCallable() {
		return arg.IsCallable() && formal.IsCallable()
	}

	if arg.Array || formal.Array {
		return arg == formal
	}

	return arg.Base == formal.Base
}

// -----------------------------------------------------------------------------

func (t ValType) String() string {
	switch t.Callable {
	case CallProcedure:
		return "procedure"
	case CallFunction:
		return t.ReturnType().String() + " function"
	}

	var s string
	switch t.Base {
	case BaseBoolean:
		s = "boolean"
	case BaseInteger:
		s = "integer"
	default:
		return "none"
	}

	if t.Array {
		s += " array"
	}

	return s
}
