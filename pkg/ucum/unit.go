package ucum

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Unit is an ordered, non-empty sequence of terms whose semantic product is
// the unit; the canonical identity is a single unity term.
type Unit struct {
	Terms []Term
}

// Parse lowers a UCUM expression into a Unit.
func Parse(expr string) (Unit, error) {
	mt, err := parseExpression(expr)
	if err != nil {
		return Unit{}, err
	}
	return Unit{Terms: lowerMainTerm(mt)}, nil
}

// MustParse is Parse, panicking on error; intended for package-level unit
// literals, not for parsing untrusted input.
func MustParse(expr string) Unit {
	u, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return u
}

// unityUnit is the canonical dimensionless identity.
func unityUnit() Unit {
	return Unit{Terms: []Term{UnityTerm()}}
}

// Composition returns the dimensional exponent vector of u: the sum, over
// every term, of that term's atom composition scaled by its exponent.
// Factor, prefix, and annotation do not contribute.
func (u Unit) Composition() Composition {
	var out Composition
	for _, t := range u.Terms {
		if t.Atom == nil {
			continue
		}
		out = out.Add(t.Atom.Comp.Scale(t.exponentOrOne()))
	}
	return out
}

// annotations returns the multiset of non-empty annotations in u, as a
// count map, for commensurability comparison.
func (u Unit) annotations() map[string]int {
	out := map[string]int{}
	for _, t := range u.Terms {
		if t.Annotation != "" {
			out[t.Annotation]++
		}
	}
	return out
}

func sameAnnotations(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// IsCompatibleWith reports whether u and other are commensurable: equal
// composition and equal annotation multisets.
func (u Unit) IsCompatibleWith(other Unit) bool {
	return u.Composition() == other.Composition() && sameAnnotations(u.annotations(), other.annotations())
}

// Scalar is the unit's value in base units, i.e. its scalar contribution
// evaluated with an implied calling value of 1. For a special (non-ratio)
// unit this is convert_to(1).
func (u Unit) Scalar() float64 {
	if sc, ok := u.special(); ok {
		return sc.toBase(1)
	}
	product := 1.0
	for _, t := range u.Terms {
		product *= ratioTermScalar(t)
	}
	return product
}

// Magnitude converts value, expressed in u, to its base-unit equivalent.
// For ratio units this is value*u.Scalar(); for a special unit it applies
// convert_to(value) directly, honoring the calling value rather than 1.
func (u Unit) Magnitude(value float64) float64 {
	if sc, ok := u.special(); ok {
		return sc.toBase(value)
	}
	return value * u.Scalar()
}

// fromBaseValue converts a base-unit value into u's own units; the inverse
// of Magnitude.
func (u Unit) fromBaseValue(baseValue float64) float64 {
	if sc, ok := u.special(); ok {
		return sc.fromBase(baseValue)
	}
	scalar := u.Scalar()
	return baseValue / scalar
}

// Invert negates every term's exponent.
func (u Unit) Invert() Unit {
	return Unit{Terms: invertTerms(u.Terms)}
}

// Pow raises every term's exponent by n; Pow(0) yields unity.
func (u Unit) Pow(n int) Unit {
	if n == 0 {
		return unityUnit()
	}
	out := make([]Term, len(u.Terms))
	for i, t := range u.Terms {
		out[i] = t.withExponentScaled(n)
	}
	return Unit{Terms: out}
}

// Mul concatenates u's and other's term sequences with no simplification.
func (u Unit) Mul(other Unit) Unit {
	out := make([]Term, 0, len(u.Terms)+len(other.Terms))
	out = append(out, u.Terms...)
	out = append(out, other.Terms...)
	return Unit{Terms: out}
}

// Div concatenates u with the inversion of other.
func (u Unit) Div(other Unit) Unit {
	return u.Mul(other.Invert())
}

// Reduce combines terms sharing a (factor, prefix, atom, annotation)
// quadruple by summing their exponents, drops any term whose resulting
// exponent is zero unless it is annotation-only, and falls back to unity
// if nothing remains.
func (u Unit) Reduce() Unit {
	type bucket struct {
		term     Term
		exponent int
		hasAtom  bool
	}
	order := make([]termKey, 0, len(u.Terms))
	buckets := map[termKey]*bucket{}
	for _, t := range u.Terms {
		k := t.key()
		b, ok := buckets[k]
		if !ok {
			b = &bucket{term: t, hasAtom: t.Atom != nil}
			buckets[k] = b
			order = append(order, k)
		}
		b.exponent += t.exponentOrOne()
	}
	out := make([]Term, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		if b.exponent == 0 && b.term.Annotation == "" {
			continue
		}
		reduced := b.term
		if b.exponent == 1 {
			reduced.Exponent = nil
		} else {
			e := b.exponent
			reduced.Exponent = &e
		}
		out = append(out, reduced)
	}
	if len(out) == 0 {
		out = []Term{UnityTerm()}
	}
	return Unit{Terms: out}
}

// ToReduced is an alias for Reduce matching the public operation name.
func (u Unit) ToReduced() Unit {
	return u.Reduce()
}

// ToFraction splits u into the subsequence of terms with positive exponent
// (numerator, annotation-only and factor-only terms included) and the
// subsequence with negative exponent, re-inverted to positive form
// (denominator). A numerator with no terms becomes the canonical unity unit;
// a denominator with no terms is left with no terms.
func (u Unit) ToFraction() (numerator, denominator Unit) {
	var numTerms, denTerms []Term
	for _, t := range u.Terms {
		if t.exponentOrOne() < 0 {
			denTerms = append(denTerms, t.invert())
		} else {
			numTerms = append(numTerms, t)
		}
	}
	if len(numTerms) == 0 {
		numTerms = []Term{UnityTerm()}
	}
	numerator = Unit{Terms: numTerms}
	denominator = Unit{Terms: denTerms}
	return numerator, denominator
}

// Expression renders u in canonical textual form: numerator terms joined by
// ".", then "/" and denominator terms joined by ".". A numerator consisting
// only of the unity placeholder suppresses to the empty string unless the
// whole expression would otherwise be empty, in which case it renders "1".
func (u Unit) Expression() string {
	num, den := u.ToFraction()
	var numExpr string
	if !(len(num.Terms) == 1 && num.Terms[0].IsUnity()) {
		numExpr = joinTermExpressions(num.Terms)
	}
	result := numExpr
	if len(den.Terms) > 0 {
		result += "/" + joinTermExpressions(den.Terms)
	}
	if result == "" {
		result = "1"
	}
	return result
}

func joinTermExpressions(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.expression()
	}
	return strings.Join(parts, ".")
}

// FieldEq reports structural equality of u and other: the same terms,
// compared after sorting both sequences by scalar contribution.
func (u Unit) FieldEq(other Unit) bool {
	a := sortedByScalar(u.Terms)
	b := sortedByScalar(other.Terms)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !termsFieldEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sortedByScalar(terms []Term) []Term {
	out := append([]Term(nil), terms...)
	sort.SliceStable(out, func(i, j int) bool {
		if ki, kj := termSortKey(out[i]), termSortKey(out[j]); ki != kj {
			return ki < kj
		}
		if si, sj := out[i].symbol(), out[j].symbol(); si != sj {
			return si < sj
		}
		if out[i].Annotation != out[j].Annotation {
			return out[i].Annotation < out[j].Annotation
		}
		if fi, fj := out[i].factorOrOne(), out[j].factorOrOne(); fi != fj {
			return fi < fj
		}
		return out[i].exponentOrOne() < out[j].exponentOrOne()
	})
	return out
}

func termSortKey(t Term) float64 {
	if t.Atom != nil && t.Atom.Special {
		// Special atoms have no fixed ratio scalar; order them after every
		// ratio term. Equal keys are ordered by sortedByScalar's tiebreak
		// (prefix+atom code, annotation, factor, exponent).
		return 1e300
	}
	return ratioTermScalar(t)
}

func termsFieldEqual(a, b Term) bool {
	if a.factorOrOne() != b.factorOrOne() || a.exponentOrOne() != b.exponentOrOne() {
		return false
	}
	if a.Annotation != b.Annotation {
		return false
	}
	var aPrefix, bPrefix, aAtom, bAtom string
	if a.Prefix != nil {
		aPrefix = a.Prefix.Code
	}
	if b.Prefix != nil {
		bPrefix = b.Prefix.Code
	}
	if a.Atom != nil {
		aAtom = a.Atom.Code
	}
	if b.Atom != nil {
		bAtom = b.Atom.Code
	}
	return aPrefix == bPrefix && aAtom == bAtom
}

// Hash digests u's composition and the string form of its scalar, agreeing
// with scalar+annotation equality.
func (u Unit) Hash() uint64 {
	h := fnv.New64a()
	comp := u.Composition()
	for _, v := range comp {
		h.Write([]byte{byte(v), byte(v >> 8)})
	}
	h.Write([]byte(strconv.FormatFloat(u.Scalar(), 'g', -1, 64)))
	keys := make([]string, 0, len(u.annotations()))
	for k := range u.annotations() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte(k))
	}
	return h.Sum64()
}
