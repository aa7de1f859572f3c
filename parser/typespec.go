package parser

import "strings"

// A type may carry at most four specifiers ("unsigned long long int").
const maxSpecifiers = 4

// TypeSpec is the canonical form of one type occurrence: at most one
// qualifier plus the specifiers in encounter order. Storage classes are not
// part of the type; they attach to the declared name.
type TypeSpec struct {
	Qualifier  string
	Specifiers []string
}

func (ts *TypeSpec) String() string {
	var sb strings.Builder
	if ts.Qualifier != "" {
		sb.WriteString(ts.Qualifier)
		sb.WriteByte(' ')
	}
	sb.WriteString(strings.Join(ts.Specifiers, " "))
	return sb.String()
}

// isVoid reports whether the rendered type begins with the bare "void"
// specifier, which is what the array-of-void rule keys on.
func (ts *TypeSpec) isVoid() bool {
	return ts.Qualifier == "" && len(ts.Specifiers) > 0 && ts.Specifiers[0] == "void"
}

// legalPairs holds every unordered specifier pair that may appear together
// in one declaration. Everything else is rejected, including signed/unsigned
// with void. A pair of identical specifiers is only listed for "long".
var legalPairs = map[[2]string]bool{
	pairKey("char", "signed"):     true,
	pairKey("char", "unsigned"):   true,
	pairKey("short", "int"):       true,
	pairKey("short", "signed"):    true,
	pairKey("short", "unsigned"):  true,
	pairKey("int", "long"):        true,
	pairKey("int", "signed"):      true,
	pairKey("int", "unsigned"):    true,
	pairKey("long", "long"):       true,
	pairKey("long", "signed"):     true,
	pairKey("long", "unsigned"):   true,
	pairKey("long", "double"):     true,
	pairKey("float", "signed"):    true,
	pairKey("float", "unsigned"):  true,
	pairKey("double", "signed"):   true,
	pairKey("double", "unsigned"): true,
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func checkSpecifierPair(first, second string) error {
	if legalPairs[pairKey(first, second)] {
		return nil
	}
	return syntaxErrorf("specifier %s incompatible with %s", second, first)
}

// parseType consumes specifiers, qualifiers and storage classes until the
// first token that is none of these, which is pushed back. Returns nil
// (without error) when the line ends during the scan; the caller reports the
// missing declarator. With no explicit specifier the type defaults to int.
func (p *LLParser) parseType() (*TypeSpec, error) {
	ts := &TypeSpec{}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return nil, nil
		}
		if tok.Kind != IDENTIFIER || !IsReserved(tok.Text) {
			if err := p.unread(tok); err != nil {
				return nil, err
			}
			break
		}

		switch {
		case IsSpecifier(tok.Text):
			if len(ts.Specifiers) == maxSpecifiers {
				return nil, syntaxErrorf("too many specifiers")
			}
			ts.Specifiers = append(ts.Specifiers, tok.Text)

		case IsQualifier(tok.Text):
			switch ts.Qualifier {
			case "", tok.Text:
				// a repeated identical qualifier is ignored (C99)
				ts.Qualifier = tok.Text
			default:
				return nil, syntaxErrorf("%s incompatible with previous qualifier %s",
					tok.Text, ts.Qualifier)
			}

		case IsStorageClass(tok.Text):
			if p.storageClass != "" {
				return nil, syntaxErrorf("unexpected storage class")
			}
			p.storageClass = tok.Text
		}
	}

	if len(ts.Specifiers) == 0 {
		ts.Specifiers = append(ts.Specifiers, "int")
	}

	for i := 0; i < len(ts.Specifiers); i++ {
		for j := i + 1; j < len(ts.Specifiers); j++ {
			if err := checkSpecifierPair(ts.Specifiers[i], ts.Specifiers[j]); err != nil {
				return nil, err
			}
		}
	}

	// "long long" and "long double" are fine, a third long/double is not
	longs := 0
	for _, spec := range ts.Specifiers {
		if spec == "long" || spec == "double" {
			longs++
		}
	}
	if longs > 2 {
		return nil, syntaxErrorf("too many long specifiers")
	}

	return ts, nil
}
