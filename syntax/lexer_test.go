package syntax

import (
	"strings"
	"testing"

	"amplc/report"
)

// lexAll returns every token of src up to and including the EOF token.
func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	l := NewLexer(strings.NewReader(src))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("lexing %q: %v", src, err)
		}

		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

// lexError returns the first error produced while lexing src.
func lexError(src string) error {
	l := NewLexer(strings.NewReader(src))

	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		} else if tok.Kind == TOK_EOF {
			return nil
		}
	}
}

func TestLexerTokenKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []int
	}{
		{"empty", "", []int{TOK_EOF}},
		{"header", "program p: main", []int{TOK_PROGRAM, TOK_ID, TOK_COLON, TOK_MAIN, TOK_EOF}},
		{"relational", ">= > <= < /= =", []int{TOK_GE, TOK_GT, TOK_LE, TOK_LT, TOK_NE, TOK_EQ, TOK_EOF}},
		{"longest match", "->-..", []int{TOK_ARROW, TOK_MINUS, TOK_DOTDOT, TOK_EOF}},
		{"no spaces", "a[i]=(b,c);", []int{TOK_ID, TOK_LBRACK, TOK_ID, TOK_RBRACK, TOK_EQ, TOK_LPAREN, TOK_ID, TOK_COMMA, TOK_ID, TOK_RPAREN, TOK_SEMICOLON, TOK_EOF}},
		{"arithmetic", "x+1*2/y rem z", []int{TOK_ID, TOK_PLUS, TOK_NUM, TOK_MUL, TOK_NUM, TOK_DIV, TOK_ID, TOK_REM, TOK_ID, TOK_EOF}},
		{"statements", "let if elif else end input output return while chillax", []int{TOK_LET, TOK_IF, TOK_ELIF, TOK_ELSE, TOK_END, TOK_INPUT, TOK_OUTPUT, TOK_RETURN, TOK_WHILE, TOK_CHILLAX, TOK_EOF}},
		{"types and logic", "bool int array not true false and or", []int{TOK_BOOL, TOK_INT, TOK_ARRAY, TOK_NOT, TOK_TRUE, TOK_FALSE, TOK_AND, TOK_OR, TOK_EOF}},
		{"keyword prefix", "ends integer", []int{TOK_ID, TOK_ID, TOK_EOF}},
		{"comments", "a { one { two } one } b", []int{TOK_ID, TOK_ID, TOK_EOF}},
		{"whitespace", " \t\r\n\v\fa", []int{TOK_ID, TOK_EOF}},
		{"string", `output("x = " .. x)`, []int{TOK_OUTPUT, TOK_LPAREN, TOK_STR, TOK_DOTDOT, TOK_ID, TOK_RPAREN, TOK_EOF}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			toks := lexAll(t, test.src)

			if len(toks) != len(test.want) {
				t.Fatalf("got %d tokens, want %d", len(toks), len(test.want))
			}

			for i, tok := range toks {
				if tok.Kind != test.want[i] {
					t.Errorf("token %d: got %s, want %s", i, TokenName(tok.Kind), TokenName(test.want[i]))
				}
			}
		})
	}
}

func TestLexerValues(t *testing.T) {
	toks := lexAll(t, `a_1b 2147483647 "say \"hi\"\n" ""`)

	want := []string{"a_1b", "2147483647", `say \"hi\"\n`, "", ""}
	for i, tok := range toks {
		if tok.Value != want[i] {
			t.Errorf("token %d: value %q, want %q", i, tok.Value, want[i])
		}
	}
}

func TestLexerPositions(t *testing.T) {
	toks := lexAll(t, "program p:\n\tmain {x}\n  end\n")

	want := []report.SourcePos{
		{Line: 1, Col: 1},
		{Line: 1, Col: 9},
		{Line: 1, Col: 10},
		{Line: 2, Col: 5},
		{Line: 3, Col: 3},
		{Line: 4, Col: 1},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, tok := range toks {
		if tok.Pos != want[i] {
			t.Errorf("token %d (%s): position %s, want %s", i, TokenName(tok.Kind), tok.Pos, want[i])
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
		pos  report.SourcePos
	}{
		{"illegal character", "a $", "illegal character '$' (ASCII #36)", report.SourcePos{Line: 1, Col: 3}},
		{"leading underscore", "_a", "illegal character '_' (ASCII #95)", report.SourcePos{Line: 1, Col: 1}},
		{"single dot", "a . b", "illegal character '.' (ASCII #46)", report.SourcePos{Line: 1, Col: 3}},
		{"dot at end", "a.", "illegal character '.' (ASCII #46)", report.SourcePos{Line: 1, Col: 2}},
		{"unclosed comment", "a\n{ x { y }", "comment not closed", report.SourcePos{Line: 2, Col: 1}},
		{"number too large", "2147483648", "number too large", report.SourcePos{Line: 1, Col: 1}},
		{"unclosed string", `"abc`, "string not closed", report.SourcePos{Line: 1, Col: 1}},
		{"newline in string", "\"ab\ncd\"", "string not closed", report.SourcePos{Line: 1, Col: 1}},
		{"illegal escape", `x "a\qb"`, `illegal escape code '\q' in string`, report.SourcePos{Line: 1, Col: 5}},
		{"non-printable", "\"a\x01\"", "non-printable character (ASCII #1) in string", report.SourcePos{Line: 1, Col: 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := lexError(test.src)
			if err == nil {
				t.Fatal("no error")
			}

			cerr, ok := err.(*report.CompileError)
			if !ok {
				t.Fatalf("error %v is not a compile error", err)
			}

			if cerr.Kind != report.ErrLexical {
				t.Errorf("kind = %s, want %s", cerr.Kind, report.ErrLexical)
			}
			if cerr.Message != test.msg {
				t.Errorf("message = %q, want %q", cerr.Message, test.msg)
			}
			if cerr.Pos != test.pos {
				t.Errorf("position = %s, want %s", cerr.Pos, test.pos)
			}
		})
	}
}
