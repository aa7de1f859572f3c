package parser

// Token kinds produced by the lexer. The lexer only classifies shape;
// whether an identifier is a specifier, qualifier or storage class is
// decided by the classifiers in classify.go.
const (
	EOF = iota
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	STAR
	IDENTIFIER
	NUMBER
)

// Kind of the last symbol the declarator parser consumed. Used to decide
// what an open parenthesis means and whether a second identifier is legal.
const (
	symNothing = iota
	symName
	symType
	symParens
	symPointer
)

type Token struct {
	Kind int
	Text string
}

// TokenString returns a readable name for a token kind, for error messages
// and tests.
func TokenString(kind int) string {
	switch kind {
	case EOF:
		return "EOF"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	case COMMA:
		return "COMMA"
	case SEMICOLON:
		return "SEMICOLON"
	case STAR:
		return "STAR"
	case IDENTIFIER:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	}
	return "UNKNOWN"
}
