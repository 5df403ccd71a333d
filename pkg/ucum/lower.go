package ucum

// lowerMainTerm flattens a parse tree into the canonical term sequence a
// Unit holds, applying inversion to the right-hand side of every "/" (so
// that "a/b.c" means a·b⁻¹·c⁻¹, not (a/b)·c) and to the whole sequence when
// a leading slash is present.
func lowerMainTerm(mt mainTermAST) []Term {
	terms := lowerTerm(mt.term)
	if mt.leadingSlash {
		terms = invertTerms(terms)
	}
	if len(terms) == 0 {
		return []Term{UnityTerm()}
	}
	return terms
}

func lowerTerm(t termAST) []Term {
	left := lowerComponent(t.component)
	if t.op == 0 {
		return left
	}
	right := lowerTerm(*t.next)
	if t.op == '/' {
		right = invertTerms(right)
	}
	return append(left, right...)
}

func lowerComponent(c componentAST) []Term {
	switch c.kind {
	case componentParen:
		return lowerTerm(*c.paren)
	case componentAnnotationOnly:
		return []Term{{Annotation: c.annotation}}
	default:
		return []Term{c.term}
	}
}

func invertTerms(terms []Term) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = t.invert()
	}
	return out
}
