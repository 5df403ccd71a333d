package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCompositionMeter(t *testing.T) {
	u := MustParse("m")
	comp := u.Composition()
	assert.Equal(t, 1, comp[Length])
	assert.Equal(t, 0, comp[Mass])
}

func TestUnitCompositionForce(t *testing.T) {
	// newton: kg.m/s2
	u := MustParse("N")
	comp := u.Composition()
	assert.Equal(t, 1, comp[Length])
	assert.Equal(t, 1, comp[Mass])
	assert.Equal(t, -2, comp[Time])
}

func TestUnitCompositionDimensionlessFactor(t *testing.T) {
	u := MustParse("10")
	assert.True(t, u.Composition().IsDimensionless())
}

func TestUnitIsCompatibleWith(t *testing.T) {
	km := MustParse("km")
	m := MustParse("m")
	assert.True(t, km.IsCompatibleWith(m))

	s := MustParse("s")
	assert.False(t, km.IsCompatibleWith(s))
}

func TestUnitIsCompatibleWithAnnotations(t *testing.T) {
	annotated := MustParse("m{foo}")
	plain := MustParse("m")
	assert.False(t, annotated.IsCompatibleWith(plain))

	sameAnnotation := MustParse("m{foo}")
	assert.True(t, annotated.IsCompatibleWith(sameAnnotation))
}

func TestUnitScalarScientificCount(t *testing.T) {
	u := MustParse("10*3/s2")
	assert.InDelta(t, 1000.0, u.Scalar(), 1e-9)
}

func TestUnitScalarKilometer(t *testing.T) {
	u := MustParse("km")
	assert.InDelta(t, 1000.0, u.Scalar(), 1e-9)
}

func TestUnitScalarCelsiusIsConvertToOne(t *testing.T) {
	u := MustParse("Cel")
	assert.InDelta(t, 274.15, u.Scalar(), 1e-9)
}

func TestUnitMagnitudeRatio(t *testing.T) {
	u := MustParse("km")
	assert.InDelta(t, 3000.0, u.Magnitude(3), 1e-9)
}

func TestUnitMagnitudeSpecialHonorsCallingValue(t *testing.T) {
	u := MustParse("Cel")
	assert.InDelta(t, 274.15, u.Magnitude(1), 1e-9)
	assert.InDelta(t, 373.15, u.Magnitude(100), 1e-9)
}

func TestUnitFromBaseValueRatio(t *testing.T) {
	u := MustParse("km")
	assert.InDelta(t, 3.0, u.fromBaseValue(3000), 1e-9)
}

func TestUnitFromBaseValueSpecial(t *testing.T) {
	u := MustParse("Cel")
	assert.InDelta(t, 0.0, u.fromBaseValue(273.15), 1e-9)
}

func TestUnitIsSpecialRejectsMalformedExponent(t *testing.T) {
	celAtom := MustParse("Cel").Terms[0].Atom
	exp := 2
	malformed := Unit{Terms: []Term{{Atom: celAtom, Exponent: &exp}}}
	_, ok := malformed.special()
	assert.False(t, ok, "a special atom carrying an exponent is not a well-formed special term")
}

func TestUnitIsSpecialRejectsFactor(t *testing.T) {
	celAtom := MustParse("Cel").Terms[0].Atom
	factor := 2
	malformed := Unit{Terms: []Term{{Atom: celAtom, Factor: &factor}}}
	_, ok := malformed.special()
	assert.False(t, ok, "a special atom carrying a factor is not a well-formed special term")
}

func TestUnitInvertInvolutive(t *testing.T) {
	u := MustParse("km/10m")
	twice := u.Invert().Invert()
	assert.True(t, u.FieldEq(twice))
}

func TestUnitInvert(t *testing.T) {
	u := MustParse("m")
	inv := u.Invert()
	require.Len(t, inv.Terms, 1)
	require.NotNil(t, inv.Terms[0].Exponent)
	assert.Equal(t, -1, *inv.Terms[0].Exponent)
}

func TestUnitPowZeroYieldsUnity(t *testing.T) {
	u := MustParse("m.s")
	zero := u.Pow(0)
	assert.True(t, zero.FieldEq(unityUnit()))
}

func TestUnitPowTwo(t *testing.T) {
	u := MustParse("m")
	sq := u.Pow(2)
	require.Len(t, sq.Terms, 1)
	require.NotNil(t, sq.Terms[0].Exponent)
	assert.Equal(t, 2, *sq.Terms[0].Exponent)
}

func TestUnitMulConcatenates(t *testing.T) {
	a := MustParse("m")
	b := MustParse("s")
	product := a.Mul(b)
	require.Len(t, product.Terms, 2)
}

func TestUnitDivConcatenatesInverted(t *testing.T) {
	a := MustParse("m")
	b := MustParse("s")
	quotient := a.Div(b)
	require.Len(t, quotient.Terms, 2)
	require.NotNil(t, quotient.Terms[1].Exponent)
	assert.Equal(t, -1, *quotient.Terms[1].Exponent)
}

func TestUnitReduceCombinesLikeTerms(t *testing.T) {
	u := MustParse("m.m")
	reduced := u.Reduce()
	require.Len(t, reduced.Terms, 1)
	require.NotNil(t, reduced.Terms[0].Exponent)
	assert.Equal(t, 2, *reduced.Terms[0].Exponent)
}

func TestUnitReduceCancelsToUnity(t *testing.T) {
	u := MustParse("m/m")
	reduced := u.Reduce()
	require.Len(t, reduced.Terms, 1)
	assert.True(t, reduced.Terms[0].IsUnity())
}

func TestUnitReduceKeepsDistinctAnnotations(t *testing.T) {
	u := MustParse("m{a}.m{b}")
	reduced := u.Reduce()
	assert.Len(t, reduced.Terms, 2)
}

func TestUnitToFractionKmPerTenM(t *testing.T) {
	u := MustParse("km/10m")
	num, den := u.ToFraction()
	require.Len(t, num.Terms, 1)
	require.Len(t, den.Terms, 1)
	assert.Nil(t, den.Terms[0].Exponent)
	require.NotNil(t, den.Terms[0].Factor)
	assert.Equal(t, 10, *den.Terms[0].Factor)
}

func TestUnitToFractionPureNumerator(t *testing.T) {
	u := MustParse("m")
	num, den := u.ToFraction()
	require.Len(t, num.Terms, 1)
	assert.Empty(t, den.Terms)
}

func TestUnitExpressionRoundTrips(t *testing.T) {
	cases := []string{"km/10m", "2km2{x}/s", "10", "1", "m", "/s", "kg.m/s2"}
	for _, in := range cases {
		u := MustParse(in)
		assert.Equal(t, in, u.Expression(), in)
	}
}

func TestUnitFieldEqIgnoresTermOrder(t *testing.T) {
	a := MustParse("m.s")
	b := MustParse("s.m")
	assert.True(t, a.FieldEq(b))
}

func TestUnitFieldEqDistinguishesAnnotation(t *testing.T) {
	a := MustParse("m{foo}")
	b := MustParse("m{bar}")
	assert.False(t, a.FieldEq(b))
}

func TestUnitFieldEqFactorNilVsExplicitOne(t *testing.T) {
	factorOne := 1
	explicit := Unit{Terms: []Term{{Factor: &factorOne, Atom: MustParse("m").Terms[0].Atom}}}
	bare := MustParse("m")
	assert.True(t, explicit.FieldEq(bare))
}

func TestUnitHashAgreesWithFieldEq(t *testing.T) {
	a := MustParse("m.s")
	b := MustParse("s.m")
	require.True(t, a.FieldEq(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestUnitHashDiffersForIncompatibleUnits(t *testing.T) {
	a := MustParse("m")
	b := MustParse("s")
	assert.NotEqual(t, a.Hash(), b.Hash())
}
