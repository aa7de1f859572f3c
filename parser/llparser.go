package parser

import "fmt"

// LLParser recognizes one C declaration per instance with a single token of
// lookahead. All the scratch state the four mutually recursive grammar rules
// share lives here, so a fresh parser needs no reset and nothing leaks
// between parses.
type LLParser struct {
	lexer    *Lexer
	pushback *Token // the one-token lookahead slot

	last         int    // kind of the last symbol read (symName, symType, symParens)
	nameFound    bool   // an identifier was seen at the current nesting level
	storageClass string // pending storage class, written out after the name
	funcNestLev  int    // how many function parameter lists are open
}

func NewLLParser(lexer *Lexer) *LLParser {
	return &LLParser{lexer: lexer, last: symNothing}
}

// ParseDeclaration translates one declaration into its English description,
// e.g. "int *(*f)(int, char **);" into
// "f: pointer to function (int, pointer to pointer to char) returning
// pointer to int".
func ParseDeclaration(line string) (string, error) {
	decl, err := Parse(line)
	if err != nil {
		return "", err
	}
	return decl.Describe(), nil
}

// Parse returns the declarator tree for one declaration. Callers that only
// want the text use ParseDeclaration.
func Parse(line string) (*FullDecl, error) {
	p := NewLLParser(NewLexer(line))
	return p.ParseFullDecl()
}

func (p *LLParser) next() (Token, error) {
	if p.pushback != nil {
		tok := *p.pushback
		p.pushback = nil
		return tok, nil
	}
	return p.lexer.Next()
}

// unread returns a token to the lookahead slot. Pushing back while the slot
// is occupied is a bug in the parser, not in the input.
func (p *LLParser) unread(tok Token) error {
	if p.pushback != nil {
		return fmt.Errorf("internal error: lookahead slot already occupied")
	}
	p.pushback = &tok
	return nil
}

func (p *LLParser) Errorf(format string, args ...any) error {
	return syntaxErrorf(format, args...)
}

// ParseFullDecl parses a complete declarator with its type: a variable, a
// function, a pointer, or one function parameter.
func (p *LLParser) ParseFullDecl() (*FullDecl, error) {
	ts, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.last = symType
	if ts == nil {
		return nil, p.Errorf("expected type")
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == EOF || tok.Kind == SEMICOLON {
		return nil, p.Errorf("missing object")
	}
	if err := p.unread(tok); err != nil {
		return nil, err
	}

	decl, err := p.parseDecl("")
	if err != nil {
		return nil, err
	}

	out := &FullDecl{Type: ts, Decl: decl}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseDecl parses the pointer/qualifier chain in front of a direct
// declarator. prevQualifier is the qualifier seen at the previous level of
// the same chain; a different qualifier at the same pointer level is a
// conflict, and a pointer clears it since any qualifier may follow a "*".
func (p *LLParser) parseDecl(prevQualifier string) (DeclNode, error) {
	level := &PointerLevel{}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == STAR {
		level.Pointer = true
		prevQualifier = ""
	} else if err := p.unread(tok); err != nil {
		return nil, err
	}

	// restrict applies only to pointers
	for {
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == IDENTIFIER && tok.Text == "restrict" {
			if !level.Pointer {
				return nil, p.Errorf("restrict qualifier applies to pointers only")
			}
			level.Restrict = true
			continue
		}
		break
	}
	if err := p.unread(tok); err != nil {
		return nil, err
	}

	tok, err = p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == IDENTIFIER && IsQualifier(tok.Text) {
		if prevQualifier != "" && prevQualifier != tok.Text {
			return nil, p.Errorf("%s incompatible with previous qualifier %s",
				tok.Text, prevQualifier)
		}
		prevQualifier = tok.Text
		level.Qualifier = tok.Text
	} else if err := p.unread(tok); err != nil {
		return nil, err
	}

	if !level.Pointer && level.Qualifier == "" {
		return p.parseDirectDecl(&DirectDecl{})
	}

	inner, err := p.parseDecl(prevQualifier)
	if err != nil {
		return nil, err
	}
	level.Inner = inner
	return level, nil
}

// parseDeclList parses a comma separated list of parameters up to the
// closing parenthesis. Each parameter may independently carry its own name:
// the identifier-seen flag is cleared on entry and the caller's value
// restored on exit.
func (p *LLParser) parseDeclList(fn *FuncSuffix) error {
	saved := p.nameFound
	p.nameFound = false

	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind == EOF {
		return p.Errorf("unexpected end of list")
	}
	if tok.Kind == RPAREN {
		if p.storageClass != "" {
			return p.Errorf("unexpected storage class")
		}
		return nil
	}
	if tok.Kind != COMMA {
		if err := p.unread(tok); err != nil {
			return err
		}
	}

	param, err := p.ParseFullDecl()
	if err != nil {
		return err
	}
	fn.Params = append(fn.Params, param)

	if err := p.parseDeclList(fn); err != nil {
		return err
	}
	p.nameFound = saved
	return nil
}

// parseDirectDecl parses a direct declarator: the name, grouping
// parentheses, and any function/array suffixes, accumulated into d.
func (p *LLParser) parseDirectDecl(d *DirectDecl) (DeclNode, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	if tok.Kind == EOF {
		return d, nil
	}

	// pointer or restrict past the pointer chain
	if tok.Kind == STAR || (tok.Kind == IDENTIFIER && tok.Text == "restrict") {
		return nil, p.Errorf("unexpected token %s", tok.Text)
	}

	if tok.Kind == RPAREN && p.last != symName && p.last != symType {
		return nil, p.Errorf("expected identifier or type before %s token", tok.Text)
	}

	if tok.Kind == RBRACKET {
		return nil, p.Errorf("unexpected token %s", tok.Text)
	}

	if tok.Kind == SEMICOLON {
		return d, nil
	}

	// type names may not appear inside a direct declarator
	if tok.Kind == IDENTIFIER && IsReserved(tok.Text) {
		return nil, p.Errorf("unexpected token %s", tok.Text)
	}

	if tok.Kind == IDENTIFIER {
		// at most one bare identifier per nesting level
		if p.nameFound && p.last != symType {
			return nil, p.Errorf("unexpected identifier %s", tok.Text)
		}
		p.nameFound = true
		d.Base = &NameRef{Name: tok.Text, Storage: p.storageClass}
		p.storageClass = ""
		p.last = symName
		return p.parseDirectDecl(d)
	}

	if tok.Kind == NUMBER {
		return nil, p.Errorf("unexpected token %s", tok.Text)
	}

	if tok.Kind == LPAREN {
		return p.parseParen(d)
	}

	if tok.Kind == LBRACKET {
		return p.parseArray(d)
	}

	// a comma or list-closing parenthesis ends this declarator; give the
	// token back to whoever is parsing the list
	if err := p.unread(tok); err != nil {
		return nil, err
	}
	return d, nil
}

// parseParen handles an open parenthesis inside a direct declarator, which
// is one of: an empty "()" pair, a function parameter list, or grouping.
func (p *LLParser) parseParen(d *DirectDecl) (DeclNode, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == EOF {
		return nil, p.Errorf("unmatching parentheses")
	}

	if tok.Kind == RPAREN {
		// a function declared without a parameter list
		if !p.nameFound {
			return nil, p.Errorf("expected identifier")
		}
		d.Suffixes = append(d.Suffixes, &FuncSuffix{})
		return p.parseDirectDecl(d)
	}

	p.last = symParens

	// a type starts a parameter list
	if tok.Kind == IDENTIFIER && IsReserved(tok.Text) {
		if !p.nameFound {
			return nil, p.Errorf("expected identifier before ( token")
		}
		if err := p.unread(tok); err != nil {
			return nil, err
		}

		fn := &FuncSuffix{}
		p.funcNestLev++
		if err := p.parseDeclList(fn); err != nil {
			return nil, err
		}
		p.funcNestLev--
		if err := fn.checkVoidParams(); err != nil {
			return nil, err
		}
		d.Suffixes = append(d.Suffixes, fn)

		// no bare identifier may follow the parameter list
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return d, nil
		}
		if tok.Kind == IDENTIFIER {
			return nil, p.Errorf("unexpected identifier %s", tok.Text)
		}
		if err := p.unread(tok); err != nil {
			return nil, err
		}
		return p.parseDirectDecl(d)
	}

	// grouping; the grouped declarator cannot itself start with ( or [
	if tok.Kind == LPAREN || tok.Kind == LBRACKET {
		return nil, p.Errorf("unexpected token %s", tok.Text)
	}
	if err := p.unread(tok); err != nil {
		return nil, err
	}

	inner, err := p.parseDecl("")
	if err != nil {
		return nil, err
	}
	d.Base = &Grouped{Inner: inner}

	tok, err = p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != RPAREN {
		return nil, p.Errorf("unbalanced parentheses")
	}

	// no bare identifier may follow the closing parenthesis
	tok, err = p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == EOF {
		return d, nil
	}
	if tok.Kind == IDENTIFIER {
		return nil, p.Errorf("unexpected identifier %s", tok.Text)
	}
	if err := p.unread(tok); err != nil {
		return nil, err
	}
	return p.parseDirectDecl(d)
}

// parseArray handles an open bracket inside a direct declarator.
func (p *LLParser) parseArray(d *DirectDecl) (DeclNode, error) {
	// brackets cannot precede the identifier, except in a parameter list
	// where the parameter may be abstract
	if !p.nameFound && p.funcNestLev == 0 {
		return nil, p.Errorf("expected identifier before [ token")
	}

	arr := &ArraySuffix{}
	if err := p.parseArraySuffix(arr, ""); err != nil {
		return nil, err
	}
	if arr.Static && arr.Length == "" {
		return nil, p.Errorf("expected array length after static")
	}
	d.Suffixes = append(d.Suffixes, arr)
	return p.parseDirectDecl(d)
}

// parseArraySuffix consumes the bracket contents after "[": optional
// qualifiers and a static marker (parameter arrays only, C99) in any order,
// then either the closing bracket or an integer length followed by it.
// lastQualifier carries the qualifier seen by an earlier recursive call so
// that conflicting qualifiers are rejected and repeats tolerated.
func (p *LLParser) parseArraySuffix(arr *ArraySuffix, lastQualifier string) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind == EOF {
		return p.Errorf("unbalanced brackets")
	}

	switch {
	case tok.Kind == IDENTIFIER && (IsQualifier(tok.Text) || tok.Text == "restrict"):
		if p.funcNestLev == 0 {
			return p.Errorf("static or type qualifiers in non-parameter array declarator")
		}
		if lastQualifier != "" && lastQualifier != tok.Text {
			return p.Errorf("%s incompatible with previous qualifier %s",
				tok.Text, arr.Qualifier)
		}
		arr.Qualifier = tok.Text
		return p.parseArraySuffix(arr, tok.Text)

	case tok.Kind == IDENTIFIER && tok.Text == "static":
		if p.funcNestLev == 0 {
			return p.Errorf("static or type qualifiers in non-parameter array declarator")
		}
		arr.Static = true
		return p.parseArraySuffix(arr, lastQualifier)

	case tok.Kind == NUMBER && IsIntLiteral(tok.Text):
		arr.Length = tok.Text
		tok, err = p.next()
		if err != nil {
			return err
		}
		if tok.Kind != RBRACKET {
			return p.Errorf("unbalanced brackets")
		}
		return nil

	case tok.Kind == RBRACKET:
		return nil

	default:
		return p.Errorf("unbalanced brackets")
	}
}
