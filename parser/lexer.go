package parser

// Lexer splits one input line into declaration tokens. A lexer instance is
// created fresh for every line; the single-token pushback lives in the
// parser, not here.
type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(line string) *Lexer {
	return &Lexer{input: []rune(line)}
}

var punctuation = map[rune]int{
	'(': LPAREN,
	')': RPAREN,
	'[': LBRACKET,
	']': RBRACKET,
	',': COMMA,
	';': SEMICOLON,
	'*': STAR,
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Next returns the next token on the line, or a token of kind EOF once the
// line is exhausted. Identifiers are [A-Za-z][A-Za-z0-9]*; numeric tokens
// are scanned greedily as [0-9][A-Za-z0-9.]* and validated later by
// IsIntLiteral. Any other leading character is a lexical error.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{Kind: EOF}, nil
	}

	c := l.input[l.pos]
	if kind, ok := punctuation[c]; ok {
		l.pos++
		return Token{Kind: kind, Text: string(c)}, nil
	}

	if isLetter(c) {
		start := l.pos
		for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
			l.pos++
		}
		return Token{Kind: IDENTIFIER, Text: string(l.input[start:l.pos])}, nil
	}

	if isDigit(c) {
		start := l.pos
		for l.pos < len(l.input) &&
			(isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) || l.input[l.pos] == '.') {
			l.pos++
		}
		return Token{Kind: NUMBER, Text: string(l.input[start:l.pos])}, nil
	}

	return Token{}, syntaxErrorf("unexpected token %c", c)
}
