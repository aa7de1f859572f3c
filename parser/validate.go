package parser

// Composition checks over the finished declarator tree. The wrappings of a
// declaration read left to right in the description (innermost declarator
// first), so flattening the tree in render order gives the neighbor of every
// function/array wrapping: "function ... returning <next>" and
// "array[...] of <next>".

const (
	wrapFunc = iota
	wrapArray
	wrapPointer
	// a qualifier-only declarator level still separates its neighbors
	// ("... returning const int")
	wrapQual
)

func flattenWrappers(node DeclNode, out []int) []int {
	switch n := node.(type) {
	case *DirectDecl:
		out = flattenWrappers(n.Base, out)
		for _, s := range n.Suffixes {
			switch s.(type) {
			case *FuncSuffix:
				out = append(out, wrapFunc)
			case *ArraySuffix:
				out = append(out, wrapArray)
			}
		}
	case *Grouped:
		out = flattenWrappers(n.Inner, out)
	case *PointerLevel:
		out = flattenWrappers(n.Inner, out)
		if n.Pointer {
			out = append(out, wrapPointer)
		} else if n.Qualifier != "" {
			out = append(out, wrapQual)
		}
	}
	return out
}

// validate rejects the compositions that are syntactically reachable but
// semantically illegal. The void-parameter rule is enforced earlier, when
// each parameter list completes (see FuncSuffix.checkVoidParams).
func (f *FullDecl) validate() error {
	wraps := flattenWrappers(f.Decl, nil)
	for i, w := range wraps {
		next := -1
		if i+1 < len(wraps) {
			next = wraps[i+1]
		}
		switch w {
		case wrapFunc:
			if next == wrapArray {
				return syntaxErrorf("cannot return array")
			}
			if next == wrapFunc {
				return syntaxErrorf("cannot return function")
			}
		case wrapArray:
			if next == wrapFunc {
				return syntaxErrorf("cannot declare array of functions")
			}
			if next == -1 && f.Type.isVoid() {
				return syntaxErrorf("cannot declare array of void")
			}
		}
	}
	return nil
}

// checkVoidParams rejects "void" alongside other parameters. Only an
// unwrapped void counts; a pointer to void is a perfectly good parameter.
// A qualifier on the void does not save it.
func (f *FuncSuffix) checkVoidParams() error {
	if len(f.Params) < 2 {
		return nil
	}
	for _, param := range f.Params {
		voidType := len(param.Type.Specifiers) > 0 && param.Type.Specifiers[0] == "void"
		if voidType && len(flattenWrappers(param.Decl, nil)) == 0 {
			return syntaxErrorf("void must be the only parameter")
		}
	}
	return nil
}
