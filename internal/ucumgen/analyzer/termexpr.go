package analyzer

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// resolvedFactor is the scalar contribution and dimension of one fully
// resolved unit-expression, the generator-time analogue of what pkg/ucum's
// term evaluator produces at runtime. It exists only so internal/ucumgen
// can compute composition vectors and base-unit factors for catalog
// records without importing pkg/ucum, which would create an import cycle
// (pkg/ucum depends on the tables this package produces).
type resolvedFactor struct {
	Factor decimal.Decimal
	Comp   Composition
}

// evalExpr evaluates a catalog unit-expression string such as "kg.m/s2",
// "N/m2", "[pi].rad/180" or "Ohm-1" against the atoms resolved so far.
// Division binds to everything already multiplied on its left and inverts
// every factor after the first '/', so "a/b/c" evaluates as a/(b.c). For a
// single '/' this agrees with pkg/ucum's parser; with more than one it does
// not, since the parser re-inverts the right side at each '/'.
func (a *Analyzer) evalExpr(expr string) (resolvedFactor, error) {
	if expr == "1" {
		return resolvedFactor{Factor: decimal.NewFromInt(1), Comp: Composition{}}, nil
	}

	result := resolvedFactor{Factor: decimal.NewFromInt(1), Comp: Composition{}}
	dividing := false

	for _, token := range splitTerms(expr) {
		op := token.op
		rf, err := a.evalFactor(token.text)
		if err != nil {
			return resolvedFactor{}, err
		}
		if op == '/' {
			dividing = true
		}
		if dividing {
			result.Factor = result.Factor.Div(rf.Factor)
			result.Comp = result.Comp.Sub(rf.Comp)
		} else {
			result.Factor = result.Factor.Mul(rf.Factor)
			result.Comp = result.Comp.Add(rf.Comp)
		}
	}
	return result, nil
}

type termToken struct {
	op   byte // 0 for the first token, '.' or '/' otherwise
	text string
}

// splitTerms splits a dot/slash-separated expression into operator-tagged
// factor tokens, e.g. "kg.m/s2" -> [{0,"kg"} {'.',"m"} {'/',"s2"}].
func splitTerms(expr string) []termToken {
	var tokens []termToken
	var b strings.Builder
	op := byte(0)
	depth := 0
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, termToken{op: op, text: b.String()})
			b.Reset()
		}
	}
	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		switch ch {
		case '[':
			depth++
			b.WriteByte(ch)
		case ']':
			depth--
			b.WriteByte(ch)
		case '.', '/':
			if depth > 0 {
				b.WriteByte(ch)
				continue
			}
			flush()
			op = ch
		default:
			b.WriteByte(ch)
		}
	}
	flush()
	return tokens
}

// evalFactor resolves one atom-with-exponent factor, e.g. "cm2", "s-1",
// "[lb_av]", "umol".
func (a *Analyzer) evalFactor(token string) (resolvedFactor, error) {
	if isNumericLiteral(token) {
		d, err := decimal.NewFromString(token)
		if err != nil {
			return resolvedFactor{}, fmt.Errorf("invalid numeric factor %q: %w", token, err)
		}
		return resolvedFactor{Factor: d, Comp: Composition{}}, nil
	}

	body, exponent := splitExponent(token)

	atom, err := a.resolve(body)
	if err != nil {
		if !errors.Is(err, errUnknownRef) {
			return resolvedFactor{}, err
		}
		prefix, rest, ok := a.splitPrefix(body)
		if !ok {
			return resolvedFactor{}, err
		}
		restAtom, rerr := a.resolve(rest)
		if rerr != nil {
			return resolvedFactor{}, rerr
		}
		base := resolvedFactor{Factor: restAtom.Factor.Mul(prefix.Value), Comp: restAtom.Comp}
		return powResolved(base, exponent), nil
	}

	base := resolvedFactor{Factor: atom.Factor, Comp: atom.Comp}
	return powResolved(base, exponent), nil
}

func powResolved(base resolvedFactor, exponent int) resolvedFactor {
	if exponent == 1 {
		return base
	}
	abs := exponent
	if abs < 0 {
		abs = -abs
	}
	factor := decimal.NewFromInt(1)
	for i := 0; i < abs; i++ {
		factor = factor.Mul(base.Factor)
	}
	if exponent < 0 {
		factor = decimal.NewFromInt(1).Div(factor)
	}
	return resolvedFactor{Factor: factor, Comp: base.Comp.Scale(exponent)}
}

// splitPrefix peels the longest known prefix code off the front of body,
// requiring the remaining suffix to name a metric-eligible atom. Prefix
// codes are tried longest-first so "da" (deka) is not mistaken for "d"
// (deci) followed by an atom named "a".
func (a *Analyzer) splitPrefix(body string) (prefixEntry, string, bool) {
	codes := make([]string, 0, len(a.prefixes))
	for code := range a.prefixes {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return len(codes[i]) > len(codes[j]) })

	for _, code := range codes {
		if !strings.HasPrefix(body, code) {
			continue
		}
		rest := body[len(code):]
		if base, ok := a.atoms[rest]; ok {
			if !base.Metric {
				continue
			}
			return a.prefixes[code], rest, true
		}
		if u, ok := a.units[rest]; ok {
			if !u.Metric {
				continue
			}
			return a.prefixes[code], rest, true
		}
	}
	return prefixEntry{}, "", false
}

// isNumericLiteral reports whether token is a bare number (e.g. "180",
// "1000", "0.9") rather than an atom reference. These appear in catalog
// expressions like "[pi].rad/180" as plain divisors with no dimension.
func isNumericLiteral(token string) bool {
	if token == "" {
		return false
	}
	seenDigit := false
	for i, r := range token {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' && i > 0:
			// allowed
		default:
			return false
		}
	}
	return seenDigit
}

// splitExponent strips a trailing optional-sign digit run from a factor
// token, e.g. "cm2" -> ("cm", 2), "s-1" -> ("s", -1), "[pi]" -> ("[pi]", 1).
func splitExponent(token string) (string, int) {
	i := len(token)
	for i > 0 && token[i-1] >= '0' && token[i-1] <= '9' {
		i--
	}
	if i > 0 && i < len(token) && token[i-1] == '-' {
		i--
	}
	if i == len(token) || i == 0 {
		return token, 1
	}
	n, err := strconv.Atoi(token[i:])
	if err != nil {
		return token, 1
	}
	return token[:i], n
}
