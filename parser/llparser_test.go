package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check an expected parse failure
func assertSyntaxError(t *testing.T, input string, err error, contains string) {
	t.Helper()
	require.Error(t, err, "input %q: expected an error", input)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr, "input %q: expected a *SyntaxError, got %T", input, err)
	assert.Contains(t, err.Error(), contains, "input %q", input)
}

func TestDescribeDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain variable", "int x;", "x: int"},
		{"semicolon is optional", "int x", "x: int"},
		{"pointer", "int *x;", "x: pointer to int"},
		{"pointer to pointer", "int **x;", "x: pointer to pointer to int"},
		{"abstract pointer", "int *", "pointer to int"},
		{"array with length", "int a[5];", "a: array[5] of int"},
		{"array without length", "int a[];", "a: array[] of int"},
		{"array of pointers", "char *p[10];", "p: array[10] of pointer to char"},
		{"empty parameter list", "int f();", "f: function() returning int"},
		{"void parameter list", "int f(void);", "f: function (void) returning int"},
		{"abstract parameters", "int f(int, char);", "f: function (int, char) returning int"},
		{"named parameters", "int f(int a, char b);", "f: function (a: int, b: char) returning int"},
		{"grouped name", "int (x);", "x: int"},
		{"restrict pointer", "int * restrict p;", "p: restrict pointer to int"},
		{"qualified restrict pointer", "int *restrict const p;", "p: const restrict pointer to int"},
		{"pointer to function",
			"char *(*f)(int, char **);",
			"f: pointer to function (int, pointer to pointer to char) returning pointer to char"},
		{"function returning pointer to array",
			"int (*f())[];",
			"f: function() returning pointer to array[] of int"},
		{"static array length in parameter",
			"int f(int a[static 10]);",
			"f: function (a: array[at least 10] of int) returning int"},
		{"qualified array in parameter",
			"int f(int a[const]);",
			"f: function (a: const array[] of int) returning int"},
		{"array parameter decays per its declarator",
			"void f(char *v[]);",
			"f: function (v: array[] of pointer to char) returning void"},
		{"void pointers may repeat",
			"void qsort(void *base, int n, int size, int (*cmp)(void *, void *));",
			"qsort: function (base: pointer to void, n: int, size: int, " +
				"cmp: pointer to function (pointer to void, pointer to void) returning int) returning void"},
		{"trailing comma yields an implicit int parameter",
			"int f(int,);", "f: function (int, int) returning int"},
		{"storage class attaches to the name", "static long counter;", "counter: static long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := ParseDeclaration(tt.input)
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.expected, actual, "input %q", tt.input)
		})
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		errorContains string
	}{
		{"empty input", "", "expected type"},
		{"type only", "int", "expected type"},
		{"no declarator", "int ;", "missing object"},
		{"lexical error", "$", "unexpected token $"},
		{"two identifiers", "int x y;", "unexpected identifier y"},
		{"restrict without pointer", "restrict int x;", "restrict qualifier applies to pointers only"},
		{"restrict after type", "int restrict x;", "restrict qualifier applies to pointers only"},
		{"empty grouping", "int ();", "expected identifier"},
		{"parameter list without name", "int (int);", "expected identifier before ( token"},
		{"unclosed grouping", "int (x;", "unbalanced parentheses"},
		{"unclosed parameter list", "int f(", "unmatching parentheses"},
		{"list ends mid parameter", "int f(int x", "unexpected end of list"},
		{"nested grouping", "int ((x));", "unexpected token ("},
		{"bracket opens grouping", "int ([5]x);", "unexpected token ["},
		{"identifier after grouping", "int (x) y;", "unexpected identifier y"},
		{"identifier after parameter list", "int f(int) x;", "unexpected identifier x"},
		{"array before identifier", "int [5];", "expected identifier before [ token"},
		{"orphan closing bracket", "int x];", "unexpected token ]"},
		{"number as declarator", "int *5;", "unexpected token 5"},
		{"qualifier in non-parameter array", "int arr[const 5];",
			"static or type qualifiers in non-parameter array declarator"},
		{"static in non-parameter array", "int arr[static 5];",
			"static or type qualifiers in non-parameter array declarator"},
		{"static without length", "void f(int a[static]);", "expected array length after static"},
		{"invalid octal array length", "int a[08];", "unbalanced brackets"},
		{"identifier as array length", "int a[x];", "unbalanced brackets"},
		{"unclosed bracket", "int a[5", "unbalanced brackets"},
		{"storage class as last parameter", "int f(static);", "unexpected storage class"},
		{"void after a parameter", "void f(int, void);", "void must be the only parameter"},
		{"void before a parameter", "void f(void, int);", "void must be the only parameter"},
		{"named void parameter", "void f(void x, int b);", "void must be the only parameter"},
		{"qualified void after a parameter", "void f(int, const void, int);", "void must be the only parameter"},
		{"qualified void before a parameter", "void f(const void, int);", "void must be the only parameter"},
		{"function returning function", "int f()();", "cannot return function"},
		{"function returning array", "int f()[5];", "cannot return array"},
		{"array of functions", "int a[5]();", "cannot declare array of functions"},
		{"array of void", "void a[5];", "cannot declare array of void"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeclaration(tt.input)
			assertSyntaxError(t, tt.input, err, tt.errorContains)
		})
	}
}

// Parsing the same input twice must give identical output; each Parse builds
// a fresh parser so nothing carries over between calls.
func TestParseIsDeterministic(t *testing.T) {
	inputs := []string{
		"int x;",
		"char *(*f)(int, char **);",
		"void qsort(void *base, int n, int size, int (*cmp)(void *, void *));",
	}
	for _, input := range inputs {
		first, err := ParseDeclaration(input)
		require.NoError(t, err)
		second, err := ParseDeclaration(input)
		require.NoError(t, err)
		assert.Equal(t, first, second, "input %q", input)
	}
}

// A failed parse must leave no storage class, identifier flag or nesting
// depth behind for the next one.
func TestStateResetsAfterError(t *testing.T) {
	failures := []string{
		"static extern int x;",
		"int f(int x",
		"void f(int, void);",
		"int arr[static 5];",
	}
	for _, bad := range failures {
		_, err := ParseDeclaration(bad)
		require.Error(t, err, "input %q", bad)

		out, err := ParseDeclaration("int f();")
		require.NoError(t, err, "after failing input %q", bad)
		assert.Equal(t, "f: function() returning int", out, "after failing input %q", bad)
	}
}

// The declarator tree behind the text, for one representative input.
func TestDeclaratorTree(t *testing.T) {
	decl, err := Parse("char *(*f)(int, char **);")
	require.NoError(t, err)
	require.NotNil(t, decl.Type)
	assert.Equal(t, "char", decl.Type.String())

	outer, ok := decl.Decl.(*PointerLevel)
	require.True(t, ok, "expected *PointerLevel at the root, got %T", decl.Decl)
	assert.True(t, outer.Pointer)

	direct, ok := outer.Inner.(*DirectDecl)
	require.True(t, ok, "expected *DirectDecl, got %T", outer.Inner)
	require.Len(t, direct.Suffixes, 1)

	fn, ok := direct.Suffixes[0].(*FuncSuffix)
	require.True(t, ok, "expected *FuncSuffix, got %T", direct.Suffixes[0])
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "int", fn.Params[0].Describe())
	assert.Equal(t, "pointer to pointer to char", fn.Params[1].Describe())

	group, ok := direct.Base.(*Grouped)
	require.True(t, ok, "expected *Grouped base, got %T", direct.Base)
	inner, ok := group.Inner.(*PointerLevel)
	require.True(t, ok, "expected *PointerLevel inside the grouping, got %T", group.Inner)
	assert.True(t, inner.Pointer)

	name, ok := inner.Inner.(*DirectDecl)
	require.True(t, ok)
	ref, ok := name.Base.(*NameRef)
	require.True(t, ok, "expected *NameRef, got %T", name.Base)
	assert.Equal(t, "f", ref.Name)
}

// Pushing back while the lookahead slot is occupied is a parser bug and must
// be reported, not silently dropped.
func TestUnreadTwice(t *testing.T) {
	p := NewLLParser(NewLexer("int x;"))
	tok, err := p.next()
	require.NoError(t, err)
	require.NoError(t, p.unread(tok))
	err = p.unread(tok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookahead slot")
}
