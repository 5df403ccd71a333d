package ucum

import (
	"strconv"
	"strings"

	"github.com/hl7-ucum/ucum-go/internal/ucumdata"
)

// prefixCodesByLength holds every prefix primary/secondary code, longest
// first, so prefix splitting always prefers the longest candidate (e.g. the
// two-character "da" prefix over a one-character false match). This is the
// generator's own longest-match ordering (internal/ucumdata.PrefixCodesByLength),
// not a runtime recomputation of it.
var prefixCodesByLength = ucumdata.PrefixCodesByLength

// resolveAtomPrefixAtom tries to resolve s as a bare atom code first, then
// as a (prefix, metric atom) pair, longest prefix candidate first. This is
// the runtime mirror of the generator's own catalog-time resolution in
// internal/ucumgen/analyzer.
func resolveAtomPrefixAtom(s string) (prefix *ucumdata.Prefix, atom *ucumdata.Atom, ok bool) {
	if a, found := ucumdata.AtomByCode(s); found {
		return nil, &a, true
	}
	for _, pc := range prefixCodesByLength {
		if !strings.HasPrefix(s, pc) {
			continue
		}
		rest := s[len(pc):]
		if rest == "" {
			continue
		}
		a, found := ucumdata.AtomByCode(rest)
		if !found || !a.Metric {
			continue
		}
		p, _ := ucumdata.PrefixByCode(pc)
		return &p, &a, true
	}
	return nil, nil, false
}

// splitTrailingExponent strips an optional signed integer suffix from s,
// returning the remainder and the parsed exponent, or ok=false if s has no
// such suffix (no catalog atom code ends in a bare digit, so this split is
// unambiguous).
func splitTrailingExponent(s string) (remainder string, exponent int, ok bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, false
	}
	if i > 0 && (s[i-1] == '+' || s[i-1] == '-') {
		i--
	}
	digits := s[i:]
	remainder = s[:i]
	if remainder == "" {
		return s, 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return s, 0, false
	}
	return remainder, n, true
}

// splitLeadingFactor strips a leading unsigned integer prefix from s.
func splitLeadingFactor(s string) (remainder string, factor int, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return s, 0, false
	}
	return s[i:], n, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// recognizeAnnotatable parses one annotatable run — the "factor? prefix?
// atom exponent?" or "1" production, plus the component-level bare-factor
// fallback — against the longest match the atom/prefix tables allow.
func recognizeAnnotatable(run string, offset int) (Term, error) {
	if run == "1" {
		return Term{}, nil
	}

	// factor? prefix? atom exponent?, trying with no leading factor first.
	if term, ok := tryAnnotatable(run, nil); ok {
		return term, nil
	}
	if rest, factor, ok := splitLeadingFactor(run); ok {
		if term, ok := tryAnnotatable(rest, &factor); ok {
			return term, nil
		}
	}

	if isAllDigits(run) {
		factor, _ := strconv.Atoi(run)
		return Term{Factor: &factor}, nil
	}

	return Term{}, newParseError(KindUnknownSymbol, offset, run, "no atom or prefix matches %q", run)
}

func tryAnnotatable(symbolAndExponent string, factor *int) (Term, bool) {
	remainder := symbolAndExponent
	var exponent *int
	if rem, exp, ok := splitTrailingExponent(symbolAndExponent); ok {
		remainder = rem
		e := exp
		exponent = &e
	}
	if remainder == "" {
		return Term{}, false
	}
	prefix, atom, ok := resolveAtomPrefixAtom(remainder)
	if !ok {
		return Term{}, false
	}
	return Term{Factor: factor, Prefix: prefix, Atom: atom, Exponent: exponent}, true
}
