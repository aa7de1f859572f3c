package parser

import (
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// The declarator tree. The parser builds it bottom-up and the description is
// rendered in one pass at the end; composition rules (no function returning
// an array, no array of functions, ...) are checked structurally on the tree
// in validate.go.

type DeclNode interface {
	describe(sb *strings.Builder)
}

// NameRef is the declared identifier together with the storage class that
// was pending when the name was seen.
type NameRef struct {
	Name    string
	Storage string
}

func (n *NameRef) describe(sb *strings.Builder) {
	sb.WriteString(n.Name)
	sb.WriteString(": ")
	if n.Storage != "" {
		sb.WriteString(n.Storage)
		sb.WriteByte(' ')
	}
}

// Grouped is a parenthesized inner declarator.
type Grouped struct {
	Inner DeclNode
}

func (g *Grouped) describe(sb *strings.Builder) {
	if g.Inner != nil {
		g.Inner.describe(sb)
	}
}

// PointerLevel is one level of the pointer/qualifier chain in front of a
// direct declarator. A level with Pointer unset carries only a qualifier.
type PointerLevel struct {
	Pointer   bool
	Restrict  bool
	Qualifier string
	Inner     DeclNode
}

func (p *PointerLevel) describe(sb *strings.Builder) {
	if p.Inner != nil {
		p.Inner.describe(sb)
	}
	if p.Qualifier != "" {
		sb.WriteString(p.Qualifier)
		sb.WriteByte(' ')
	}
	if p.Restrict {
		sb.WriteString("restrict ")
	}
	if p.Pointer {
		sb.WriteString("pointer to ")
	}
}

// Suffix is a function or array wrapping applied to a direct declarator.
type Suffix interface {
	describe(sb *strings.Builder)
}

// FuncSuffix is a parameter list. An empty Params slice is the bare "()"
// form; a parameter list proper always has at least one entry.
type FuncSuffix struct {
	Params []*FullDecl
}

func (f *FuncSuffix) describe(sb *strings.Builder) {
	if len(f.Params) == 0 {
		sb.WriteString("function() returning ")
		return
	}
	sb.WriteString("function (")
	texts := gfn.Map(f.Params, func(p *FullDecl) string { return p.Describe() })
	sb.WriteString(strings.Join(texts, ", "))
	sb.WriteString(") returning ")
}

type ArraySuffix struct {
	Qualifier string
	Static    bool
	Length    string
}

func (a *ArraySuffix) describe(sb *strings.Builder) {
	if a.Qualifier != "" {
		sb.WriteString(a.Qualifier)
		sb.WriteByte(' ')
	}
	sb.WriteString("array[")
	if a.Static {
		sb.WriteString("at least ")
	}
	sb.WriteString(a.Length)
	sb.WriteString("] of ")
}

// DirectDecl is a direct declarator: an optional base (the name, or a
// grouped inner declarator) followed by function/array suffixes in source
// order. An abstract parameter like a plain "int" has neither.
type DirectDecl struct {
	Base     DeclNode
	Suffixes []Suffix
}

func (d *DirectDecl) describe(sb *strings.Builder) {
	if d.Base != nil {
		d.Base.describe(sb)
	}
	for _, s := range d.Suffixes {
		s.describe(sb)
	}
}

// FullDecl is a complete declaration: a declarator plus its base type. It is
// also the representation of a single function parameter.
type FullDecl struct {
	Type *TypeSpec
	Decl DeclNode
}

// Describe renders the English description, e.g.
// "f: pointer to function (int) returning pointer to char".
func (f *FullDecl) Describe() string {
	var sb strings.Builder
	if f.Decl != nil {
		f.Decl.describe(&sb)
	}
	sb.WriteString(f.Type.String())
	return sb.String()
}
