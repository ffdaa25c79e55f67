package syntax

import (
	"fmt"
	"io"

	"amplc/report"
	"amplc/sem"
	"amplc/typing"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse as well as any
// semantic actions they perform during parsing.

// Parser is the parser and type checker for an AMPL source file.  It makes a
// single pass over the token stream: declarations are entered into the symbol
// table as they are parsed, every reference is resolved against it, and every
// expression-shaped production returns the type of the value it denotes.  No
// syntax tree is built.  All parsing functions assume that they begin with the
// parser centered on the first token of their production and must consume all
// tokens (including the last) of their production, leaving the parser on the
// next token.  The first error encountered ends the parse.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source file.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// symbols is the symbol table names are declared in and resolved against.
	symbols *sem.SymbolTable

	// returnType is the type of the subroutine whose body is being parsed.
	// The main body is treated as a procedure.
	returnType typing.ValType

	// trace receives the production trace.  It is nil unless tracing is
	// enabled.
	trace *tracer
}

// NewParser creates a new parser reading tokens from lexer and declaring names
// in symbols.
func NewParser(lexer *Lexer, symbols *sem.SymbolTable) *Parser {
	return &Parser{
		lexer:   lexer,
		symbols: symbols,
	}
}

// EnableTrace makes the parser write a trace of the productions it enters and
// leaves to w.
func (p *Parser) EnableTrace(w io.Writer) {
	p.trace = &tracer{w: w}
}

// Parse parses and checks a complete program.  It returns the first error
// encountered, which is a *report.CompileError for any problem in the source
// text.
func (p *Parser) Parse() error {
	// move the parser onto the first token
	if err := p.next(); err != nil {
		return err
	}

	if err := p.parseProgram(); err != nil {
		return err
	}

	if !p.got(TOK_EOF) {
		return report.Raise(p.tok.Pos, report.ErrUnreachable, "unreachable: %s", TokenName(p.tok.Kind))
	}

	return nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}

	p.tok = tok
	return nil
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// expect checks that the parser is on a token of a given kind and moves the
// parser forward.
func (p *Parser) expect(kind int) error {
	if !p.got(kind) {
		return p.reject(report.ErrExpect, TokenName(kind))
	}

	return p.next()
}

// expectIdentifier checks that the parser is on an identifier and moves the
// parser forward.  It returns the name and position of the identifier.
func (p *Parser) expectIdentifier() (string, report.SourcePos, error) {
	if !p.got(TOK_ID) {
		return "", report.SourcePos{}, p.reject(report.ErrExpect, TokenName(TOK_ID))
	}

	name, pos := p.tok.Value, p.tok.Pos
	return name, pos, p.next()
}

// startsExpr returns whether the current token can begin an expression.
func (p *Parser) startsExpr() bool {
	return p.gotOneOf(TOK_ID, TOK_NUM, TOK_LPAREN, TOK_NOT, TOK_TRUE, TOK_FALSE, TOK_MINUS)
}

// -----------------------------------------------------------------------------

// reject returns an error for the current token: what was expected in its
// place and what was found.
func (p *Parser) reject(kind report.ErrorKind, expected string) error {
	return report.Raise(p.tok.Pos, kind, "expected %s, but found %s", expected, TokenName(p.tok.Kind))
}

// checkTypes returns an incompatible types error at pos unless found is the
// expected type.  The context message and its arguments describe where the
// value occurs.
func (p *Parser) checkTypes(found, expected typing.ValType, pos report.SourcePos, context string, args ...interface{}) error {
	if found == expected {
		return nil
	}

	return report.Raise(
		pos,
		report.ErrIncompatibleTypes,
		"incompatible types (expected %s, found %s) %s",
		expected,
		found,
		fmt.Sprintf(context, args...),
	)
}

// rejectArray returns an illegal array operation error at pos if t is an
// array.  op names the operation.
func (p *Parser) rejectArray(t typing.ValType, pos report.SourcePos, op string) error {
	if t.IsArray() {
		return p.illegalArrayOp(pos, op)
	}

	return nil
}

// illegalArrayOp returns an illegal array operation error at pos for the
// operation op.
func (p *Parser) illegalArrayOp(pos report.SourcePos, op string) error {
	return report.Raise(pos, report.ErrIllegalArrayOperation, "%s is an illegal array operation", op)
}
