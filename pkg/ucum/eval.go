package ucum

import "math"

// specialConversion is the (convert_to, convert_from) function pair a
// special (non-ratio) atom uses instead of a scalar factor. convert_to maps
// a value expressed in the special unit to the atom's base-unit dimension;
// convert_from is its inverse.
type specialConversion struct {
	toBase   func(float64) float64
	fromBase func(float64) float64
}

// specialConversions is keyed by Atom.Function, matching the names the
// catalog assigns each non-ratio atom (Cel, [degF], [pH], Np, B).
var specialConversions = map[string]specialConversion{
	"cel": {
		toBase:   func(v float64) float64 { return v + 273.15 },
		fromBase: func(v float64) float64 { return v - 273.15 },
	},
	"degf": {
		toBase:   func(v float64) float64 { return (v + 459.67) * 5 / 9 },
		fromBase: func(v float64) float64 { return v*9/5 - 459.67 },
	},
	"ph": {
		toBase:   func(v float64) float64 { return math.Pow(10, -v) },
		fromBase: func(v float64) float64 { return -math.Log10(v) },
	},
	"neper": {
		toBase:   math.Exp,
		fromBase: math.Log,
	},
	"bel": {
		toBase:   func(v float64) float64 { return math.Pow(10, v) },
		fromBase: math.Log10,
	},
}

// isSpecial reports whether u is a single special-atom term; per the
// definition-model invariant, a special atom carries no factor or prefix
// and an exponent of 1, and never combines with other terms.
func (u Unit) isSpecial() bool {
	if len(u.Terms) != 1 {
		return false
	}
	t := u.Terms[0]
	return t.Atom != nil && t.Atom.Special && t.Factor == nil && t.Prefix == nil && (t.Exponent == nil || *t.Exponent == 1)
}

func (u Unit) special() (specialConversion, bool) {
	if !u.isSpecial() {
		return specialConversion{}, false
	}
	sc, ok := specialConversions[u.Terms[0].Atom.Function]
	return sc, ok
}

// ratioTermScalar computes a non-special term's scalar contribution:
// (factor * prefix-value * atom-factor) ^ exponent.
func ratioTermScalar(t Term) float64 {
	base := float64(t.factorOrOne())
	if t.Prefix != nil {
		pv, _ := t.Prefix.Value.Float64()
		base *= pv
	}
	if t.Atom != nil {
		af, _ := t.Atom.Factor.Float64()
		base *= af
	}
	return math.Pow(base, float64(t.exponentOrOne()))
}
