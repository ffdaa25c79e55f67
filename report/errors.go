package report

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a compile error.  It must be one of the enumerated
// error kinds below.
type ErrorKind int

// Enumeration of compile error kinds.
const (
	ErrLexical ErrorKind = iota

	// syntactic
	ErrExpect
	ErrExpectedFactor
	ErrExpectedTypeSpecifier
	ErrExpectedStatement
	ErrExpectedExprOrArrayAlloc
	ErrExpectedExprOrString
	ErrUnreachable

	// name resolution
	ErrMultipleDefinition
	ErrUnknownIdentifier
	ErrNotAVariable
	ErrNotAnArray
	ErrNotAFunction
	ErrNotAProcedure

	// typing
	ErrExpectedScalar
	ErrIllegalArrayOperation
	ErrIncompatibleTypes
	ErrMissingReturnExpr
	ErrReturnExprNotAllowed
	ErrTooFewArguments
	ErrTooManyArguments
)

var errorKindNames = map[ErrorKind]string{
	ErrLexical:                  "lexical",
	ErrExpect:                   "expect",
	ErrExpectedFactor:           "expected factor",
	ErrExpectedTypeSpecifier:    "expected type specifier",
	ErrExpectedStatement:        "expected statement",
	ErrExpectedExprOrArrayAlloc: "expected expression or array allocation",
	ErrExpectedExprOrString:     "expected expression or string",
	ErrUnreachable:              "unreachable",
	ErrMultipleDefinition:       "multiple definition",
	ErrUnknownIdentifier:        "unknown identifier",
	ErrNotAVariable:             "not a variable",
	ErrNotAnArray:               "not an array",
	ErrNotAFunction:             "not a function",
	ErrNotAProcedure:            "not a procedure",
	ErrExpectedScalar:           "expected scalar",
	ErrIllegalArrayOperation:    "illegal array operation",
	ErrIncompatibleTypes:        "incompatible types",
	ErrMissingReturnExpr:        "missing return expression",
	ErrReturnExprNotAllowed:     "return expression not allowed",
	ErrTooFewArguments:          "too few arguments",
	ErrTooManyArguments:         "too many arguments",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Category returns the class of diagnostic the kind belongs to: "lexical",
// "syntax", "name" or "type".
func (k ErrorKind) Category() string {
	switch {
	case k == ErrLexical:
		return "lexical"
	case k <= ErrUnreachable:
		return "syntax"
	case k <= ErrNotAProcedure:
		return "name"
	default:
		return "type"
	}
}

// -----------------------------------------------------------------------------

// CompileError is an error in the source text being compiled.  The file is
// known by whoever handles the error and thus isn't stored in it.
type CompileError struct {
	// The kind of the error.
	Kind ErrorKind

	// The position at which the error occurs.
	Pos SourcePos

	// The error message.
	Message string
}

func (ce *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", ce.Pos, ce.Message)
}

// Raise creates a new compile error.
func Raise(pos SourcePos, kind ErrorKind, msg string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Pos: pos, Message: fmt.Sprintf(msg, args...)}
}

// KindOf returns the kind of the compile error wrapped in err if there is one.
func KindOf(err error) (ErrorKind, bool) {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		return cerr.Kind, true
	}

	return 0, false
}
