package ucum

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
)

// Measurement pairs a finite floating-point value with a Unit.
type Measurement struct {
	value float64
	unit  Unit
}

// resolveUnit accepts either a Unit or a UCUM expression string, matching
// the "unit_or_string" convenience the public operations expose.
func resolveUnit(unitOrExpr any) (Unit, error) {
	switch v := unitOrExpr.(type) {
	case Unit:
		return v, nil
	case string:
		u, err := Parse(v)
		if err != nil {
			return Unit{}, fmt.Errorf("%w: %q: %v", ErrUnknownUnitString, v, err)
		}
		return u, nil
	default:
		return Unit{}, fmt.Errorf("%w: unsupported unit argument type %T", ErrUnknownUnitString, unitOrExpr)
	}
}

// NewMeasurement pairs value with a unit, which may be a Unit or a UCUM
// expression string.
func NewMeasurement(value float64, unitOrExpr any) (Measurement, error) {
	u, err := resolveUnit(unitOrExpr)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: value, unit: u}, nil
}

// Value returns the measurement's value in its own unit.
func (m Measurement) Value() float64 { return m.value }

// Unit returns the measurement's unit.
func (m Measurement) Unit() Unit { return m.unit }

// baseValue returns m's value expressed in base units, honoring the
// special-unit function protocol (§4.7/§4.8) via Unit.Magnitude.
func (m Measurement) baseValue() float64 {
	return m.unit.Magnitude(m.value)
}

// ConvertTo converts m to another commensurable unit (Unit or expression
// string). Mixed special-unit conversions (e.g. Cel to [degF]) go through
// the base unit: convert_to on the source, convert_from on the
// destination.
func (m Measurement) ConvertTo(unitOrExpr any) (Measurement, error) {
	target, err := resolveUnit(unitOrExpr)
	if err != nil {
		return Measurement{}, err
	}
	if !m.unit.IsCompatibleWith(target) {
		return Measurement{}, &IncompatibleUnitsError{LHS: m.unit.Expression(), RHS: target.Expression()}
	}
	base := m.baseValue()
	return Measurement{value: target.fromBaseValue(base), unit: target}, nil
}

// Add returns m+other; the result's unit is m's, with other converted to
// it first. Requires commensurability.
func (m Measurement) Add(other Measurement) (Measurement, error) {
	converted, err := other.ConvertTo(m.unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: m.value + converted.value, unit: m.unit}, nil
}

// Sub returns m-other; the result's unit is m's, with other converted to
// it first. Requires commensurability.
func (m Measurement) Sub(other Measurement) (Measurement, error) {
	converted, err := other.ConvertTo(m.unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: m.value - converted.value, unit: m.unit}, nil
}

// Mul multiplies values and concatenates unit terms, without reduction.
func (m Measurement) Mul(other Measurement) Measurement {
	return Measurement{value: m.value * other.value, unit: m.unit.Mul(other.unit)}
}

// Div divides values and concatenates m's unit with the inversion of
// other's, without reduction.
func (m Measurement) Div(other Measurement) (Measurement, error) {
	if other.value == 0 {
		return Measurement{}, ErrDivideByZero
	}
	return Measurement{value: m.value / other.value, unit: m.unit.Div(other.unit)}, nil
}

// FieldEq reports structural equality: equal value and field-equal units.
func (m Measurement) FieldEq(other Measurement) bool {
	return m.value == other.value && m.unit.FieldEq(other.unit)
}

// Hash digests m's value and its unit's hash, agreeing with FieldEq.
func (m Measurement) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatFloat(m.value, 'g', -1, 64)))
	var unitHashBytes [8]byte
	uh := m.unit.Hash()
	for i := range unitHashBytes {
		unitHashBytes[i] = byte(uh >> (8 * i))
	}
	h.Write(unitHashBytes[:])
	return h.Sum64()
}

// IsFinite reports whether m's value is a finite float, per the error
// taxonomy's note that non-finite special-unit conversions are returned
// as-is rather than treated as errors.
func (m Measurement) IsFinite() bool {
	return !math.IsInf(m.value, 0) && !math.IsNaN(m.value)
}
