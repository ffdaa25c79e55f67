package syntax

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"amplc/report"
)

// Lexer turns AMPL source text into tokens.
type Lexer struct {
	file *bufio.Reader

	// tokBuff holds the lexeme of the token being built.
	tokBuff strings.Builder

	// line and col are the position of the next rune.
	line, col int

	// startPos is the position of the first rune of the token being built.
	startPos report.SourcePos
}

// NewLexer creates a new lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		file: bufio.NewReader(r),
		line: 1,
		col:  1,
	}
}

// NextToken skips blanks and comments and lexes the token that follows them.
// Once the input is exhausted it keeps returning EOF tokens.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '{':
			if err := l.skipComment(); err != nil {
				return nil, err
			}
		case '"':
			return l.lexStringLit()
		default:
			if isDigit(c) {
				return l.lexNumLit()
			} else if isLetter(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// -----------------------------------------------------------------------------

// symbolPatterns maps every operator and punctuation symbol to its token kind.
var symbolPatterns = map[string]int{
	"=":  TOK_EQ,
	"/=": TOK_NE,
	">":  TOK_GT,
	">=": TOK_GE,
	"<":  TOK_LT,
	"<=": TOK_LE,

	"-": TOK_MINUS,
	"+": TOK_PLUS,
	"/": TOK_DIV,
	"*": TOK_MUL,

	",":  TOK_COMMA,
	":":  TOK_COLON,
	";":  TOK_SEMICOLON,
	"->": TOK_ARROW,
	"(":  TOK_LPAREN,
	")":  TOK_RPAREN,
	"[":  TOK_LBRACK,
	"]":  TOK_RBRACK,
	"..": TOK_DOTDOT,
}

// symbolPrefixes is the set of strings that begin a longer symbol without
// being a symbol themselves.
var symbolPrefixes = map[string]struct{}{
	".": {},
}

// lexPunctOrOper lexes a punctuation or operator symbol using longest match.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	c, _ := l.eat()

	kind, ok := symbolPatterns[l.tokBuff.String()]
	if _, isPrefix := symbolPrefixes[l.tokBuff.String()]; !ok && !isPrefix {
		return nil, report.Raise(l.startPos, report.ErrLexical, "illegal character '%c' (ASCII #%d)", c, c)
	}

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		if c == -1 {
			break
		}

		if _kind, match := symbolPatterns[l.tokBuff.String()+string(c)]; match {
			l.eat()
			kind = _kind
			ok = true
		} else {
			break
		}
	}

	if !ok {
		return nil, report.Raise(l.startPos, report.ErrLexical, "illegal character '%c' (ASCII #%d)", c, c)
	}

	return l.makeToken(kind), nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps every reserved word to its token kind.
var keywordPatterns = map[string]int{
	"program": TOK_PROGRAM,
	"main":    TOK_MAIN,
	"chillax": TOK_CHILLAX,

	"let":    TOK_LET,
	"if":     TOK_IF,
	"elif":   TOK_ELIF,
	"else":   TOK_ELSE,
	"end":    TOK_END,
	"input":  TOK_INPUT,
	"output": TOK_OUTPUT,
	"return": TOK_RETURN,
	"while":  TOK_WHILE,

	"array": TOK_ARRAY,
	"bool":  TOK_BOOL,
	"int":   TOK_INT,

	"not":   TOK_NOT,
	"true":  TOK_TRUE,
	"false": TOK_FALSE,
	"and":   TOK_AND,
	"or":    TOK_OR,
	"rem":   TOK_REM,
}

// lexIdentOrKeyword lexes a word: a letter followed by letters, digits and
// underscores.  Reserved words become keyword tokens.
func (l *Lexer) lexIdentOrKeyword() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isLetter(c) && !isDigit(c) && c != '_' {
			break
		}

		l.eat()
	}

	if kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kind), nil
	}

	return l.makeToken(TOK_ID), nil
}

// -----------------------------------------------------------------------------

// lexNumLit lexes a decimal integer literal.  Its value must fit in a signed
// 32-bit integer.
func (l *Lexer) lexNumLit() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		} else if !isDigit(c) {
			break
		}

		l.eat()
	}

	if _, err := strconv.ParseInt(l.tokBuff.String(), 10, 32); err != nil {
		return nil, report.Raise(l.startPos, report.ErrLexical, "number too large")
	}

	return l.makeToken(TOK_NUM), nil
}

// lexStringLit lexes a string literal.  The quotes are not part of the token
// value; escape sequences are kept as written.
func (l *Lexer) lexStringLit() (*Token, error) {
	l.mark()
	l.skip()

	for {
		c, err := l.peek()
		if err != nil {
			return nil, err
		}

		switch {
		case c == -1 || c == '\n':
			return nil, report.Raise(l.startPos, report.ErrLexical, "string not closed")
		case c == '"':
			l.skip()
			return l.makeToken(TOK_STR), nil
		case c == '\\':
			escPos := l.pos()
			l.eat()

			c, err = l.peek()
			if err != nil {
				return nil, err
			}

			switch c {
			case 'n', 't', '"', '\\':
				l.eat()
			case -1, '\n':
				return nil, report.Raise(l.startPos, report.ErrLexical, "string not closed")
			default:
				return nil, report.Raise(escPos, report.ErrLexical, "illegal escape code '\\%c' in string", c)
			}
		case c < ' ' || c > '~':
			return nil, report.Raise(l.pos(), report.ErrLexical, "non-printable character (ASCII #%d) in string", c)
		default:
			l.eat()
		}
	}
}

// -----------------------------------------------------------------------------

// skipComment skips a comment.  Comments are delimited by braces and nest.
func (l *Lexer) skipComment() error {
	l.mark()
	l.skip()

	for depth := 1; depth > 0; {
		c, err := l.skip()
		if err != nil {
			return err
		}

		switch c {
		case -1:
			return report.Raise(l.startPos, report.ErrLexical, "comment not closed")
		case '{':
			depth++
		case '}':
			depth--
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// mark records the current position as the start of a token.
func (l *Lexer) mark() {
	l.startPos = l.pos()
}

// pos returns the position of the next character.
func (l *Lexer) pos() report.SourcePos {
	return report.SourcePos{Line: l.line, Col: l.col}
}

// makeToken builds a token of kind from the buffered lexeme, which it clears.
func (l *Lexer) makeToken(kind int) *Token {
	tok := &Token{Kind: kind, Value: l.tokBuff.String(), Pos: l.startPos}
	l.tokBuff.Reset()
	return tok
}

// -----------------------------------------------------------------------------

// eat consumes the next rune and appends it to the lexeme.  At the end of the
// input it returns -1.
func (l *Lexer) eat() (rune, error) {
	c, err := l.read()
	if err == nil && c > -1 {
		l.tokBuff.WriteRune(c)
	}

	return c, err
}

// skip consumes the next rune without appending it to the lexeme.  At the end
// of the input it returns -1.
func (l *Lexer) skip() (rune, error) {
	return l.read()
}

// peek returns the next rune without consuming it.  At the end of the input
// it returns -1.
func (l *Lexer) peek() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, err
	}

	return c, l.file.UnreadRune()
}

// read consumes the next rune and advances the position past it.
func (l *Lexer) read() (rune, error) {
	c, _, err := l.file.ReadRune()
	if err == io.EOF {
		return -1, nil
	} else if err != nil {
		return 0, err
	}

	switch c {
	case '\n':
		l.line++
		l.col = 1
	case '\t':
		l.col += 4
	default:
		l.col++
	}

	return c, nil
}

// -----------------------------------------------------------------------------

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
