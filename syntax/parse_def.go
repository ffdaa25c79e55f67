package syntax

import (
	"amplc/report"
	"amplc/sem"
	"amplc/typing"
)

// program = "program" id ":" {subdef} "main" ":" body ["end"] .
// The main body is checked as the body of a procedure.
func (p *Parser) parseProgram() error {
	defer p.enter("program")()

	if err := p.expect(TOK_PROGRAM); err != nil {
		return err
	}

	if _, _, err := p.expectIdentifier(); err != nil {
		return err
	}

	if err := p.expect(TOK_COLON); err != nil {
		return err
	}

	for p.got(TOK_ID) {
		if err := p.parseSubdef(); err != nil {
			return err
		}
	}

	if err := p.expect(TOK_MAIN); err != nil {
		return err
	}

	if err := p.expect(TOK_COLON); err != nil {
		return err
	}

	p.returnType = typing.Procedure
	if err := p.parseBody(); err != nil {
		return err
	}

	return p.skipEnd()
}

// param is a formal parameter collected while its subroutine header is parsed.
type param struct {
	name string
	pos  report.SourcePos
	typ  typing.ValType
}

// subdef = id "(" type id {"," type id} ")" ["->" type] ":" body ["end"] .
// The subroutine is declared in the program scope before its body is parsed,
// so it may call itself.  Its parameters are declared in the new local scope
// in order, taking the first frame slots.
func (p *Parser) parseSubdef() error {
	defer p.enter("subdef")()

	name, namePos, err := p.expectIdentifier()
	if err != nil {
		return err
	}

	if err := p.expect(TOK_LPAREN); err != nil {
		return err
	}

	var params []param
	for {
		typ, err := p.parseType()
		if err != nil {
			return err
		}

		paramName, paramPos, err := p.expectIdentifier()
		if err != nil {
			return err
		}

		params = append(params, param{name: paramName, pos: paramPos, typ: typ})

		if !p.got(TOK_COMMA) {
			break
		}

		if err := p.next(); err != nil {
			return err
		}
	}

	if err := p.expect(TOK_RPAREN); err != nil {
		return err
	}

	subType := typing.Procedure
	if p.got(TOK_ARROW) {
		if err := p.next(); err != nil {
			return err
		}

		ret, err := p.parseType()
		if err != nil {
			return err
		}

		subType = typing.Function(ret)
	}

	if err := p.expect(TOK_COLON); err != nil {
		return err
	}

	props := &sem.IDProperties{
		Type:   subType,
		Offset: p.symbols.VariablesWidth(),
		Params: make([]typing.ValType, len(params)),
	}
	for i, prm := range params {
		props.Params[i] = prm.typ
	}

	if err := p.symbols.OpenSubroutine(name, props); err != nil {
		return p.declareError(name, namePos, err)
	}

	for _, prm := range params {
		if err := p.declare(prm.name, prm.pos, &sem.IDProperties{Type: prm.typ}); err != nil {
			return err
		}
	}

	p.returnType = subType
	if err := p.parseBody(); err != nil {
		return err
	}

	if err := p.skipEnd(); err != nil {
		return err
	}

	p.symbols.CloseSubroutine()
	return nil
}

// body = {vardef} statements .
func (p *Parser) parseBody() error {
	defer p.enter("body")()

	for p.gotOneOf(TOK_BOOL, TOK_INT) {
		if err := p.parseVardef(); err != nil {
			return err
		}
	}

	return p.parseStatements()
}

// type = ("bool" | "int") ["array"] .
func (p *Parser) parseType() (typing.ValType, error) {
	defer p.enter("type")()

	var typ typing.ValType
	switch p.tok.Kind {
	case TOK_BOOL:
		typ = typing.Boolean
	case TOK_INT:
		typ = typing.Integer
	default:
		return typing.None, p.reject(report.ErrExpectedTypeSpecifier, "type specifier")
	}

	if err := p.next(); err != nil {
		return typing.None, err
	}

	if p.got(TOK_ARRAY) {
		typ.Array = true

		if err := p.next(); err != nil {
			return typing.None, err
		}
	}

	return typ, nil
}

// vardef = type id {"," id} ";" .
// Each name is declared in the innermost scope and given a frame slot.
func (p *Parser) parseVardef() error {
	defer p.enter("vardef")()

	typ, err := p.parseType()
	if err != nil {
		return err
	}

	for {
		name, pos, err := p.expectIdentifier()
		if err != nil {
			return err
		}

		if err := p.declare(name, pos, &sem.IDProperties{Type: typ}); err != nil {
			return err
		}

		if !p.got(TOK_COMMA) {
			break
		}

		if err := p.next(); err != nil {
			return err
		}
	}

	return p.expect(TOK_SEMICOLON)
}

// skipEnd consumes the optional "end" closing a body.
func (p *Parser) skipEnd() error {
	if p.got(TOK_END) {
		return p.next()
	}

	return nil
}
