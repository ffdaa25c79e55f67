package syntax

import (
	"amplc/report"
	"amplc/typing"
)

// statements = "chillax" | statement {";" statement} [";"] .
// A trailing ";" is only accepted before "end", "elif", "else" or the end of
// the file.
func (p *Parser) parseStatements() error {
	defer p.enter("statements")()

	if p.got(TOK_CHILLAX) {
		return p.next()
	}

	if err := p.parseStatement(); err != nil {
		return err
	}

	for p.got(TOK_SEMICOLON) {
		if err := p.next(); err != nil {
			return err
		}

		if p.gotOneOf(TOK_END, TOK_ELIF, TOK_ELSE, TOK_EOF) {
			break
		}

		if err := p.parseStatement(); err != nil {
			return err
		}
	}

	return nil
}

// statement = assign | call | if | input | output | return | while .
func (p *Parser) parseStatement() error {
	defer p.enter("statement")()

	switch p.tok.Kind {
	case TOK_LET:
		return p.parseAssign()
	case TOK_ID:
		return p.parseCall()
	case TOK_IF:
		return p.parseIf()
	case TOK_INPUT:
		return p.parseInput()
	case TOK_OUTPUT:
		return p.parseOutput()
	case TOK_RETURN:
		return p.parseReturn()
	case TOK_WHILE:
		return p.parseWhile()
	default:
		return p.reject(report.ErrExpectedStatement, "statement")
	}
}

// assign = "let" id [index] "=" (expr | "array" simple) .
// The target must be a variable.  An expression must have the type of the
// target, or its element type if the target is indexed.  An allocation is
// only legal for an unindexed array and its size must be an integer.
func (p *Parser) parseAssign() error {
	defer p.enter("assign")()

	if err := p.next(); err != nil {
		return err
	}

	name, pos, err := p.expectIdentifier()
	if err != nil {
		return err
	}

	props, err := p.lookup(name, pos)
	if err != nil {
		return err
	}

	target := props.Type
	if target.IsCallable() {
		return report.Raise(pos, report.ErrNotAVariable, "'%s' is not a variable", name)
	}

	indexed := p.got(TOK_LBRACK)
	if indexed {
		if !target.IsArray() {
			return report.Raise(pos, report.ErrNotAnArray, "'%s' is not an array", name)
		}

		if err := p.parseIndex(name); err != nil {
			return err
		}
	}

	if err := p.expect(TOK_EQ); err != nil {
		return err
	}

	switch {
	case p.got(TOK_ARRAY):
		allocPos := p.tok.Pos
		if !target.IsArray() {
			return report.Raise(pos, report.ErrNotAnArray, "'%s' is not an array", name)
		} else if indexed {
			return p.checkTypes(target, target.ElemType(), allocPos, "for allocation to indexed array '%s'", name)
		}

		if err := p.next(); err != nil {
			return err
		}

		sizePos := p.tok.Pos
		size, err := p.parseSimple()
		if err != nil {
			return err
		}

		return p.checkTypes(size, typing.Integer, sizePos, "for array size of '%s'", name)
	case p.startsExpr():
		exprPos := p.tok.Pos
		t, err := p.parseExpr()
		if err != nil {
			return err
		}

		if indexed {
			target = target.ElemType()
		}

		return p.checkTypes(t, target, exprPos, "for assignment to '%s'", name)
	default:
		return p.reject(report.ErrExpectedExprOrArrayAlloc, "expression or array allocation")
	}
}

// call = id arglist .
// The name must denote a procedure.
func (p *Parser) parseCall() error {
	defer p.enter("call")()

	name, pos, err := p.expectIdentifier()
	if err != nil {
		return err
	}

	props, err := p.lookup(name, pos)
	if err != nil {
		return err
	}

	if !props.Type.IsProcedure() {
		return report.Raise(pos, report.ErrNotAProcedure, "'%s' is not a procedure", name)
	}

	return p.parseArglist(name, props)
}

// if = "if" expr ":" statements {"elif" expr ":" statements} ["else" ":"
// statements] "end" .
// Every guard must be boolean.
func (p *Parser) parseIf() error {
	defer p.enter("if")()

	if err := p.next(); err != nil {
		return err
	}

	if err := p.parseGuardedBlock("'if' guard"); err != nil {
		return err
	}

	for p.got(TOK_ELIF) {
		if err := p.next(); err != nil {
			return err
		}

		if err := p.parseGuardedBlock("'elif' guard"); err != nil {
			return err
		}
	}

	if p.got(TOK_ELSE) {
		if err := p.next(); err != nil {
			return err
		}

		if err := p.expect(TOK_COLON); err != nil {
			return err
		}

		if err := p.parseStatements(); err != nil {
			return err
		}
	}

	return p.expect(TOK_END)
}

// while = "while" expr ":" statements "end" .
// The guard must be boolean.
func (p *Parser) parseWhile() error {
	defer p.enter("while")()

	if err := p.next(); err != nil {
		return err
	}

	if err := p.parseGuardedBlock("'while' guard"); err != nil {
		return err
	}

	return p.expect(TOK_END)
}

// parseGuardedBlock parses `expr ":" statements` with a boolean guard.  guard
// describes the guard in type errors.
func (p *Parser) parseGuardedBlock(guard string) error {
	pos := p.tok.Pos
	t, err := p.parseExpr()
	if err != nil {
		return err
	}

	if err := p.checkTypes(t, typing.Boolean, pos, "for %s", guard); err != nil {
		return err
	}

	if err := p.expect(TOK_COLON); err != nil {
		return err
	}

	return p.parseStatements()
}

// input = "input" "(" id [index] ")" .
// The name must be a variable.  An array must be indexed and a scalar must
// not be.
func (p *Parser) parseInput() error {
	defer p.enter("input")()

	if err := p.next(); err != nil {
		return err
	}

	if err := p.expect(TOK_LPAREN); err != nil {
		return err
	}

	name, pos, err := p.expectIdentifier()
	if err != nil {
		return err
	}

	props, err := p.lookup(name, pos)
	if err != nil {
		return err
	}

	if props.Type.IsCallable() {
		return report.Raise(pos, report.ErrNotAVariable, "'%s' is not a variable", name)
	}

	if p.got(TOK_LBRACK) {
		if !props.Type.IsArray() {
			return report.Raise(pos, report.ErrNotAnArray, "'%s' is not an array", name)
		}

		if err := p.parseIndex(name); err != nil {
			return err
		}
	} else if props.Type.IsArray() {
		return report.Raise(pos, report.ErrExpectedScalar, "expected scalar variable instead of '%s'", name)
	}

	return p.expect(TOK_RPAREN)
}

// output = "output" "(" (string | expr) {".." (string | expr)} ")" .
// No expression may be an array.
func (p *Parser) parseOutput() error {
	defer p.enter("output")()

	if err := p.next(); err != nil {
		return err
	}

	if err := p.expect(TOK_LPAREN); err != nil {
		return err
	}

	for {
		switch {
		case p.got(TOK_STR):
			if err := p.next(); err != nil {
				return err
			}
		case p.startsExpr():
			pos := p.tok.Pos
			t, err := p.parseExpr()
			if err != nil {
				return err
			}

			if err := p.rejectArray(t, pos, "'output'"); err != nil {
				return err
			}
		default:
			return p.reject(report.ErrExpectedExprOrString, "expression or string")
		}

		if !p.got(TOK_DOTDOT) {
			break
		}

		if err := p.next(); err != nil {
			return err
		}
	}

	return p.expect(TOK_RPAREN)
}

// return = "return" [expr] .
// A function must return a value of its return type; a procedure returns
// nothing.
func (p *Parser) parseReturn() error {
	defer p.enter("return")()

	if err := p.next(); err != nil {
		return err
	}

	if !p.returnType.IsFunction() {
		if p.startsExpr() {
			return report.Raise(p.tok.Pos, report.ErrReturnExprNotAllowed, "a return expression is not allowed for a procedure")
		}

		return nil
	}

	if !p.startsExpr() {
		return report.Raise(p.tok.Pos, report.ErrMissingReturnExpr, "missing return expression for a function")
	}

	pos := p.tok.Pos
	t, err := p.parseExpr()
	if err != nil {
		return err
	}

	return p.checkTypes(t, p.returnType.ReturnType(), pos, "for 'return' statement")
}
