package syntax

import (
	"errors"

	"amplc/report"
	"amplc/sem"
	"amplc/typing"
)

// lookup resolves a name that occurs at pos.
func (p *Parser) lookup(name string, pos report.SourcePos) (*sem.IDProperties, error) {
	if props, ok := p.symbols.FindName(name); ok {
		return props, nil
	}

	return nil, report.Raise(pos, report.ErrUnknownIdentifier, "unknown identifier '%s'", name)
}

// declare enters a name declared at pos into the innermost scope.
func (p *Parser) declare(name string, pos report.SourcePos, props *sem.IDProperties) error {
	if err := p.symbols.InsertName(name, props); err != nil {
		return p.declareError(name, pos, err)
	}

	return nil
}

// declareError converts a symbol table error for a name declared at pos into
// the error returned by the parser.
func (p *Parser) declareError(name string, pos report.SourcePos, err error) error {
	if errors.Is(err, sem.ErrMultipleDefinition) {
		return report.Raise(pos, report.ErrMultipleDefinition, "multiple definition of '%s'", name)
	}

	return err
}

// -----------------------------------------------------------------------------

// index = "[" simple "]" .
// The index must be an integer.
func (p *Parser) parseIndex(name string) error {
	defer p.enter("index")()

	if err := p.expect(TOK_LBRACK); err != nil {
		return err
	}

	pos := p.tok.Pos
	t, err := p.parseSimple()
	if err != nil {
		return err
	}

	if err := p.checkTypes(t, typing.Integer, pos, "for array index of '%s'", name); err != nil {
		return err
	}

	return p.expect(TOK_RBRACK)
}

// arglist = "(" expr {"," expr} ")" .
// The arguments are checked against the parameters of the subroutine named
// name: their number must equal its arity and each must be compatible with
// the corresponding parameter.
func (p *Parser) parseArglist(name string, props *sem.IDProperties) error {
	defer p.enter("arglist")()

	if err := p.expect(TOK_LPAREN); err != nil {
		return err
	}

	i := 0
	if p.startsExpr() {
		for {
			if props.Arity() == 0 {
				return report.Raise(p.tok.Pos, report.ErrTooManyArguments, "too many arguments for call to '%s'", name)
			}

			pos := p.tok.Pos
			t, err := p.parseExpr()
			if err != nil {
				return err
			}

			if formal := props.Params[i]; !typing.ArgCompatible(t, formal) {
				return report.Raise(
					pos,
					report.ErrIncompatibleTypes,
					"incompatible types (expected %s, found %s) for argument %d of call to '%s'",
					formal,
					t,
					i+1,
					name,
				)
			}

			i++

			if !p.got(TOK_COMMA) {
				break
			}

			// the comma already announces an argument the subroutine lacks
			if i >= props.Arity() {
				return report.Raise(p.tok.Pos, report.ErrTooManyArguments, "too many arguments for call to '%s'", name)
			}

			if err := p.next(); err != nil {
				return err
			}
		}
	}

	if i < props.Arity() {
		return report.Raise(p.tok.Pos, report.ErrTooFewArguments, "too few arguments for call to '%s'", name)
	}

	return p.expect(TOK_RPAREN)
}
