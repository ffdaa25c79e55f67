package sem

import (
	"fmt"

	"amplc/typing"
)

// IDProperties describes a declared name.
type IDProperties struct {
	// Type is the semantic type of the name.
	Type typing.ValType

	// Offset is the frame slot of a variable.  For a subroutine it is the
	// width of the enclosing frame at the point of declaration.  Zero means
	// no slot has been assigned yet: slots are numbered from one.
	Offset uint

	// Params is the ordered list of parameter types of a subroutine.  It is
	// empty for variables.
	Params []typing.ValType
}

// Arity returns the number of parameters of a subroutine.
func (p *IDProperties) Arity() int {
	return len(p.Params)
}

func (p *IDProperties) String() string {
	if p.Type.IsCallable() {
		return fmt.Sprintf("_[%s]", p.Type)
	}

	return fmt.Sprintf("%d[%s]", p.Offset, p.Type)
}

// releaseProperties drops the references held by p once its scope closes.
func releaseProperties(p *IDProperties) {
	p.Params = nil
}
