package ucum

import "github.com/shopspring/decimal"

// This file mirrors pkg/fhirpath/types/decimal.go and quantity.go's use of
// shopspring/decimal: an arbitrary-precision conversion path alongside the
// float64 path §4.7/§4.8 require, for callers that need it (e.g. chained
// unit conversions where float64 rounding would accumulate). Special-unit
// functions (Cel, [degF], [pH], Np, B) are defined over float64 only — they
// involve exp/log/pow, which shopspring/decimal does not provide — so a
// conversion touching a special unit falls back to the float64 path and
// redecimalizes the result.

// ScalarDecimal is Scalar computed with decimal.Decimal arithmetic for
// non-special units. For a special unit it redecimalizes the float64
// Scalar(), since the special function pair is only defined over float64.
func (u Unit) ScalarDecimal() decimal.Decimal {
	if u.isSpecial() {
		return decimal.NewFromFloat(u.Scalar())
	}
	product := decimal.NewFromInt(1)
	for _, t := range u.Terms {
		product = product.Mul(ratioTermScalarDecimal(t))
	}
	return product
}

func ratioTermScalarDecimal(t Term) decimal.Decimal {
	base := decimal.NewFromInt(int64(t.factorOrOne()))
	if t.Prefix != nil {
		base = base.Mul(t.Prefix.Value)
	}
	if t.Atom != nil {
		base = base.Mul(t.Atom.Factor)
	}
	return decimalPow(base, t.exponentOrOne())
}

// decimalPow raises base to an integer power, including negative exponents,
// since decimal.Decimal has no built-in integer-power operation.
func decimalPow(base decimal.Decimal, exp int) decimal.Decimal {
	if exp == 0 {
		return decimal.NewFromInt(1)
	}
	n := exp
	neg := n < 0
	if neg {
		n = -n
	}
	result := decimal.NewFromInt(1)
	for i := 0; i < n; i++ {
		result = result.Mul(base)
	}
	if neg {
		result = decimal.NewFromInt(1).DivRound(result, 34)
	}
	return result
}

// ConvertToDecimal is ConvertTo computed with decimal.Decimal arithmetic,
// returning the converted value alongside the resolved destination unit.
// Conversions touching a special unit fall back to ConvertTo's float64
// path, since the special function pair has no decimal equivalent.
func (m Measurement) ConvertToDecimal(unitOrExpr any) (decimal.Decimal, Unit, error) {
	target, err := resolveUnit(unitOrExpr)
	if err != nil {
		return decimal.Decimal{}, Unit{}, err
	}
	if !m.unit.IsCompatibleWith(target) {
		return decimal.Decimal{}, Unit{}, &IncompatibleUnitsError{LHS: m.unit.Expression(), RHS: target.Expression()}
	}
	if m.unit.isSpecial() || target.isSpecial() {
		converted, err := m.ConvertTo(target)
		if err != nil {
			return decimal.Decimal{}, Unit{}, err
		}
		return decimal.NewFromFloat(converted.value), target, nil
	}
	base := decimal.NewFromFloat(m.value).Mul(m.unit.ScalarDecimal())
	result := base.DivRound(target.ScalarDecimal(), 20)
	return result, target, nil
}
