package ucum

import (
	"strconv"

	"github.com/hl7-ucum/ucum-go/internal/ucumdata"
)

// Term is one factor·prefix·atom^exponent{annotation} element of a Unit.
// All of Factor, Prefix, Atom, Exponent, and Annotation may be absent; the
// zero Term (no factor, no prefix, no atom, no exponent, no annotation) is
// not a legal term on its own except as the canonical unity term produced
// by UnityTerm.
type Term struct {
	Factor     *int
	Prefix     *ucumdata.Prefix
	Atom       *ucumdata.Atom
	Exponent   *int
	Annotation string
}

// UnityTerm returns the canonical dimensionless identity term.
func UnityTerm() Term {
	return Term{}
}

// IsUnity reports whether t carries no factor, prefix, atom, or annotation
// (an exponent alone on an atomless term is still unity: it has nothing to
// raise to a power).
func (t Term) IsUnity() bool {
	return t.Factor == nil && t.Prefix == nil && t.Atom == nil && t.Annotation == ""
}

func (t Term) factorOrOne() int {
	if t.Factor == nil {
		return 1
	}
	return *t.Factor
}

func (t Term) exponentOrOne() int {
	if t.Exponent == nil {
		return 1
	}
	return *t.Exponent
}

// invert negates the term's effective exponent, canonicalizing an effective
// exponent of 1 back to an absent Exponent field so that a second invert
// restores the original representation.
func (t Term) invert() Term {
	out := t
	neg := -t.exponentOrOne()
	if neg == 1 {
		out.Exponent = nil
	} else {
		v := neg
		out.Exponent = &v
	}
	return out
}

// withExponentScaled returns t with its effective exponent multiplied by n,
// applying the same absent-means-1 canonicalization as invert.
func (t Term) withExponentScaled(n int) Term {
	out := t
	e := t.exponentOrOne() * n
	if e == 1 {
		out.Exponent = nil
	} else {
		v := e
		out.Exponent = &v
	}
	return out
}

// key identifies the (factor, prefix, atom, annotation) quadruple used by
// reduction to decide whether two terms combine.
type termKey struct {
	factor     int
	prefixCode string
	atomCode   string
	annotation string
}

func (t Term) key() termKey {
	k := termKey{factor: t.factorOrOne(), annotation: t.Annotation}
	if t.Prefix != nil {
		k.prefixCode = t.Prefix.Code
	}
	if t.Atom != nil {
		k.atomCode = t.Atom.Code
	}
	return k
}

// symbol renders the term's prefix+atom (or bare "1") portion, without
// factor, exponent, or annotation.
func (t Term) symbol() string {
	if t.Atom == nil {
		return ""
	}
	s := t.Atom.Code
	if t.Prefix != nil {
		s = t.Prefix.Code + s
	}
	return s
}

// expression renders t in canonical textual form.
func (t Term) expression() string {
	var out string
	if t.Factor != nil {
		out += strconv.Itoa(*t.Factor)
	}
	out += t.symbol()
	if out == "" && t.Annotation == "" {
		out = "1"
	}
	if t.Exponent != nil {
		out += strconv.Itoa(*t.Exponent)
	}
	if t.Annotation != "" {
		out += "{" + t.Annotation + "}"
	}
	return out
}
