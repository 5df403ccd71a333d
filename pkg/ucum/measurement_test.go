package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeasurementAcceptsUnitOrString(t *testing.T) {
	_, err := NewMeasurement(1000, "m")
	require.NoError(t, err)

	u := MustParse("m")
	_, err = NewMeasurement(1000, u)
	require.NoError(t, err)
}

func TestNewMeasurementRejectsUnknownUnitString(t *testing.T) {
	_, err := NewMeasurement(1, "qqzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUnitString)
}

func TestConvertToMeterToKilometer(t *testing.T) {
	m, err := NewMeasurement(1000, "m")
	require.NoError(t, err)
	km, err := m.ConvertTo("km")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, km.Value(), 1e-9)
	assert.Equal(t, "km", km.Unit().Expression())
}

func TestConvertToIncompatibleUnitsErrors(t *testing.T) {
	m, err := NewMeasurement(1, "m")
	require.NoError(t, err)
	_, err = m.ConvertTo("s")
	require.Error(t, err)
	assert.ErrorIs(t, err, new(IncompatibleUnitsError))
}

func TestConvertToCelsiusToKelvin(t *testing.T) {
	m, err := NewMeasurement(1, "Cel")
	require.NoError(t, err)
	k, err := m.ConvertTo("K")
	require.NoError(t, err)
	assert.InDelta(t, 274.15, k.Value(), 1e-9)
}

func TestConvertToFahrenheitToCelsius(t *testing.T) {
	m, err := NewMeasurement(32, "[degF]")
	require.NoError(t, err)
	c, err := m.ConvertTo("Cel")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c.Value(), 1e-9)
}

func TestConvertToKelvinToCelsius(t *testing.T) {
	m, err := NewMeasurement(274.15, "K")
	require.NoError(t, err)
	c, err := m.ConvertTo("Cel")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Value(), 1e-9)
}

func TestConvertToBetweenTwoSpecialUnits(t *testing.T) {
	m, err := NewMeasurement(0, "Cel")
	require.NoError(t, err)
	f, err := m.ConvertTo("[degF]")
	require.NoError(t, err)
	assert.InDelta(t, 32.0, f.Value(), 1e-9)
}

func TestAddConvertsOtherFirst(t *testing.T) {
	a, err := NewMeasurement(1, "km")
	require.NoError(t, err)
	b, err := NewMeasurement(500, "m")
	require.NoError(t, err)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, sum.Value(), 1e-9)
	assert.Equal(t, "km", sum.Unit().Expression())
}

func TestSubConvertsOtherFirst(t *testing.T) {
	a, err := NewMeasurement(1, "km")
	require.NoError(t, err)
	b, err := NewMeasurement(500, "m")
	require.NoError(t, err)
	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, diff.Value(), 1e-9)
}

func TestAddRejectsIncompatibleUnits(t *testing.T) {
	a, err := NewMeasurement(1, "km")
	require.NoError(t, err)
	b, err := NewMeasurement(1, "s")
	require.NoError(t, err)
	_, err = a.Add(b)
	require.Error(t, err)
}

func TestMulConcatenatesUnits(t *testing.T) {
	a, err := NewMeasurement(2, "m")
	require.NoError(t, err)
	b, err := NewMeasurement(3, "s")
	require.NoError(t, err)
	product := a.Mul(b)
	assert.InDelta(t, 6.0, product.Value(), 1e-9)
	assert.Len(t, product.Unit().Terms, 2)
}

func TestDivByZeroErrors(t *testing.T) {
	a, err := NewMeasurement(2, "m")
	require.NoError(t, err)
	zero, err := NewMeasurement(0, "s")
	require.NoError(t, err)
	_, err = a.Div(zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestDivConcatenatesInvertedUnit(t *testing.T) {
	a, err := NewMeasurement(6, "m")
	require.NoError(t, err)
	b, err := NewMeasurement(3, "s")
	require.NoError(t, err)
	quotient, err := a.Div(b)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, quotient.Value(), 1e-9)
}

func TestMeasurementFieldEq(t *testing.T) {
	a, err := NewMeasurement(1, "m.s")
	require.NoError(t, err)
	b, err := NewMeasurement(1, "s.m")
	require.NoError(t, err)
	assert.True(t, a.FieldEq(b))
}

func TestMeasurementFieldEqDiffersByValue(t *testing.T) {
	a, err := NewMeasurement(1, "m")
	require.NoError(t, err)
	b, err := NewMeasurement(2, "m")
	require.NoError(t, err)
	assert.False(t, a.FieldEq(b))
}

func TestMeasurementHashAgreesWithFieldEq(t *testing.T) {
	a, err := NewMeasurement(5, "m.s")
	require.NoError(t, err)
	b, err := NewMeasurement(5, "s.m")
	require.NoError(t, err)
	require.True(t, a.FieldEq(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestMeasurementIsFinite(t *testing.T) {
	m, err := NewMeasurement(1, "m")
	require.NoError(t, err)
	assert.True(t, m.IsFinite())
}

func TestConvertToDecimalRatioUnit(t *testing.T) {
	m, err := NewMeasurement(1000, "m")
	require.NoError(t, err)
	result, unit, err := m.ConvertToDecimal("km")
	require.NoError(t, err)
	assert.Equal(t, "km", unit.Expression())
	f, _ := result.Float64()
	assert.InDelta(t, 1.0, f, 1e-9)
}

func TestConvertToDecimalFallsBackForSpecialUnit(t *testing.T) {
	m, err := NewMeasurement(1, "Cel")
	require.NoError(t, err)
	result, _, err := m.ConvertToDecimal("K")
	require.NoError(t, err)
	f, _ := result.Float64()
	assert.InDelta(t, 274.15, f, 1e-9)
}

func TestConvertToDecimalRejectsIncompatibleUnits(t *testing.T) {
	m, err := NewMeasurement(1, "m")
	require.NoError(t, err)
	_, _, err = m.ConvertToDecimal("s")
	require.Error(t, err)
}
