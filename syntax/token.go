package syntax

import "amplc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  For identifiers and numbers this is the
	// lexeme; for strings it is the content between the quotes.
	Value string

	// The position of the first character of the token.
	Pos report.SourcePos
}

// Enumeration of token kinds.
const (
	TOK_EOF = iota

	TOK_ID
	TOK_NUM
	TOK_STR

	TOK_PROGRAM
	TOK_MAIN
	TOK_CHILLAX
	TOK_LET
	TOK_IF
	TOK_ELIF
	TOK_ELSE
	TOK_END
	TOK_INPUT
	TOK_OUTPUT
	TOK_RETURN
	TOK_WHILE

	TOK_ARRAY
	TOK_BOOL
	TOK_INT

	TOK_NOT
	TOK_TRUE
	TOK_FALSE

	// relational operators
	TOK_EQ
	TOK_NE
	TOK_GT
	TOK_GE
	TOK_LT
	TOK_LE

	// additive operators
	TOK_MINUS
	TOK_OR
	TOK_PLUS

	// multiplicative operators
	TOK_AND
	TOK_DIV
	TOK_MUL
	TOK_REM

	TOK_COMMA
	TOK_COLON
	TOK_SEMICOLON
	TOK_ARROW
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACK
	TOK_RBRACK
	TOK_DOTDOT
)

// tokenNames maps each token kind to the name used for it in diagnostics.
var tokenNames = map[int]string{
	TOK_EOF: "end-of-file",
	TOK_ID:  "identifier",
	TOK_NUM: "number",
	TOK_STR: "string",

	TOK_PROGRAM: "'program'",
	TOK_MAIN:    "'main'",
	TOK_CHILLAX: "'chillax'",
	TOK_LET:     "'let'",
	TOK_IF:      "'if'",
	TOK_ELIF:    "'elif'",
	TOK_ELSE:    "'else'",
	TOK_END:     "'end'",
	TOK_INPUT:   "'input'",
	TOK_OUTPUT:  "'output'",
	TOK_RETURN:  "'return'",
	TOK_WHILE:   "'while'",
	TOK_ARRAY:   "'array'",
	TOK_BOOL:    "'bool'",
	TOK_INT:     "'int'",
	TOK_NOT:     "'not'",
	TOK_TRUE:    "'true'",
	TOK_FALSE:   "'false'",

	TOK_EQ:    "'='",
	TOK_NE:    "'/='",
	TOK_GT:    "'>'",
	TOK_GE:    "'>='",
	TOK_LT:    "'<'",
	TOK_LE:    "'<='",
	TOK_MINUS: "'-'",
	TOK_OR:    "'or'",
	TOK_PLUS:  "'+'",
	TOK_AND:   "'and'",
	TOK_DIV:   "'/'",
	TOK_MUL:   "'*'",
	TOK_REM:   "'rem'",

	TOK_COMMA:     "','",
	TOK_COLON:     "':'",
	TOK_SEMICOLON: "';'",
	TOK_ARROW:     "'->'",
	TOK_LPAREN:    "'('",
	TOK_RPAREN:    "')'",
	TOK_LBRACK:    "'['",
	TOK_RBRACK:    "']'",
	TOK_DOTDOT:    "'..'",
}

// TokenName returns the diagnostic name of a token kind.
func TokenName(kind int) string {
	if name, ok := tokenNames[kind]; ok {
		return name
	}

	return "unknown token"
}
