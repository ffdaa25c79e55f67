package syntax

import (
	"amplc/report"
	"amplc/typing"
)

// expr = simple [relop simple] .
// relop = "=" | "/=" | ">" | ">=" | "<" | "<=" .
// Neither operand may be an array.  The operands of "=" and "/=" must have
// the same type; the operands of the ordering operators must be integers.
// The result is boolean.
func (p *Parser) parseExpr() (typing.ValType, error) {
	defer p.enter("expr")()

	lhsPos := p.tok.Pos
	lhs, err := p.parseSimple()
	if err != nil {
		return typing.None, err
	}

	if !p.gotOneOf(TOK_EQ, TOK_NE, TOK_GT, TOK_GE, TOK_LT, TOK_LE) {
		return lhs, nil
	}

	op := p.tok
	opName := TokenName(op.Kind)
	if lhs.IsArray() {
		return typing.None, p.illegalArrayOp(op.Pos, opName)
	}

	if err := p.next(); err != nil {
		return typing.None, err
	}

	rhsPos := p.tok.Pos
	rhs, err := p.parseSimple()
	if err != nil {
		return typing.None, err
	}

	if rhs.IsArray() {
		return typing.None, p.illegalArrayOp(op.Pos, opName)
	}

	switch op.Kind {
	case TOK_EQ, TOK_NE:
		if err := p.checkTypes(rhs, lhs, rhsPos, "for operator %s", opName); err != nil {
			return typing.None, err
		}
	default:
		if err := p.checkOperands(lhs, rhs, typing.Integer, lhsPos, rhsPos, opName); err != nil {
			return typing.None, err
		}
	}

	return typing.Boolean, nil
}

// simple = ["-"] term {addop term} .
// addop = "-" | "or" | "+" .
// Unary minus and the arithmetic operators take integers, "or" takes
// booleans.  No operand may be an array.
func (p *Parser) parseSimple() (typing.ValType, error) {
	defer p.enter("simple")()

	lhsPos := p.tok.Pos

	var lhs typing.ValType
	if p.got(TOK_MINUS) {
		if err := p.next(); err != nil {
			return typing.None, err
		}

		pos := p.tok.Pos
		t, err := p.parseTerm()
		if err != nil {
			return typing.None, err
		}

		if err := p.rejectArray(t, lhsPos, "unary minus"); err != nil {
			return typing.None, err
		}

		if err := p.checkTypes(t, typing.Integer, pos, "for unary minus"); err != nil {
			return typing.None, err
		}

		lhs = typing.Integer
	} else {
		t, err := p.parseTerm()
		if err != nil {
			return typing.None, err
		}

		lhs = t
	}

	for p.gotOneOf(TOK_MINUS, TOK_OR, TOK_PLUS) {
		operand := typing.Integer
		if p.got(TOK_OR) {
			operand = typing.Boolean
		}

		t, err := p.parseBinaryOperand(lhs, lhsPos, operand, p.parseTerm)
		if err != nil {
			return typing.None, err
		}

		lhs = t
	}

	return lhs, nil
}

// term = factor {mulop factor} .
// mulop = "and" | "/" | "*" | "rem" .
// "and" takes booleans, the arithmetic operators take integers.  No operand
// may be an array.
func (p *Parser) parseTerm() (typing.ValType, error) {
	defer p.enter("term")()

	lhsPos := p.tok.Pos
	lhs, err := p.parseFactor()
	if err != nil {
		return typing.None, err
	}

	for p.gotOneOf(TOK_AND, TOK_DIV, TOK_MUL, TOK_REM) {
		operand := typing.Integer
		if p.got(TOK_AND) {
			operand = typing.Boolean
		}

		lhs, err = p.parseBinaryOperand(lhs, lhsPos, operand, p.parseFactor)
		if err != nil {
			return typing.None, err
		}
	}

	return lhs, nil
}

// factor = id [index | arglist] | num | "(" expr ")" | "not" factor
// | "true" | "false" .
// An indexed name must be an array and yields its element type.  A called
// name must be a function and yields its return type.  "not" takes a boolean.
func (p *Parser) parseFactor() (typing.ValType, error) {
	defer p.enter("factor")()

	switch p.tok.Kind {
	case TOK_ID:
		return p.parseNameFactor()
	case TOK_NUM:
		return typing.Integer, p.next()
	case TOK_TRUE, TOK_FALSE:
		return typing.Boolean, p.next()
	case TOK_LPAREN:
		if err := p.next(); err != nil {
			return typing.None, err
		}

		t, err := p.parseExpr()
		if err != nil {
			return typing.None, err
		}

		return t, p.expect(TOK_RPAREN)
	case TOK_NOT:
		opPos := p.tok.Pos
		if err := p.next(); err != nil {
			return typing.None, err
		}

		pos := p.tok.Pos
		t, err := p.parseFactor()
		if err != nil {
			return typing.None, err
		}

		if err := p.rejectArray(t, opPos, "'not'"); err != nil {
			return typing.None, err
		}

		return typing.Boolean, p.checkTypes(t, typing.Boolean, pos, "for 'not'")
	default:
		return typing.None, p.reject(report.ErrExpectedFactor, "factor")
	}
}

// parseNameFactor parses the `id [index | arglist]` alternative of factor.
func (p *Parser) parseNameFactor() (typing.ValType, error) {
	name, pos, err := p.expectIdentifier()
	if err != nil {
		return typing.None, err
	}

	props, err := p.lookup(name, pos)
	if err != nil {
		return typing.None, err
	}

	switch {
	case p.got(TOK_LBRACK):
		if !props.Type.IsArray() {
			return typing.None, report.Raise(pos, report.ErrNotAnArray, "'%s' is not an array", name)
		}

		return props.Type.ElemType(), p.parseIndex(name)
	case p.got(TOK_LPAREN):
		if !props.Type.IsFunction() {
			return typing.None, report.Raise(pos, report.ErrNotAFunction, "'%s' is not a function", name)
		}

		return props.Type.ReturnType(), p.parseArglist(name, props)
	default:
		return props.Type, nil
	}
}

// -----------------------------------------------------------------------------

// parseBinaryOperand parses the operator the parser is on and its right
// operand using parseRHS.  Both operands must be of the type operand, which is
// the type of the result.  An array on the left is rejected at the operator
// before the right operand is read.
func (p *Parser) parseBinaryOperand(
	lhs typing.ValType,
	lhsPos report.SourcePos,
	operand typing.ValType,
	parseRHS func() (typing.ValType, error),
) (typing.ValType, error) {
	op := p.tok
	opName := TokenName(op.Kind)
	if lhs.IsArray() {
		return typing.None, p.illegalArrayOp(op.Pos, opName)
	}

	if err := p.next(); err != nil {
		return typing.None, err
	}

	rhsPos := p.tok.Pos
	rhs, err := parseRHS()
	if err != nil {
		return typing.None, err
	}

	if rhs.IsArray() {
		return typing.None, p.illegalArrayOp(op.Pos, opName)
	}

	if err := p.checkOperands(lhs, rhs, operand, lhsPos, rhsPos, opName); err != nil {
		return typing.None, err
	}

	return operand, nil
}

// checkOperands checks that both operands of the operator opName have the
// type operand.
func (p *Parser) checkOperands(lhs, rhs, operand typing.ValType, lhsPos, rhsPos report.SourcePos, opName string) error {
	if err := p.checkTypes(lhs, operand, lhsPos, "for operator %s", opName); err != nil {
		return err
	}

	return p.checkTypes(rhs, operand, rhsPos, "for operator %s", opName)
}
