package ucum

import "github.com/hl7-ucum/ucum-go/internal/ucumdata"

// Dimension indexes one of the seven UCUM base quantities.
type Dimension = ucumdata.Dimension

// The seven base dimensions a Composition is built from.
const (
	Length            = ucumdata.Length
	Mass              = ucumdata.Mass
	Time              = ucumdata.Time
	ElectricCharge    = ucumdata.ElectricCharge
	Temperature       = ucumdata.Temperature
	LuminousIntensity = ucumdata.LuminousIntensity
	PlaneAngle        = ucumdata.PlaneAngle
)

// Composition is a signed-integer exponent vector over the seven base
// dimensions; it is the dimensional "shape" of a Unit, independent of
// scale. Two compositions are equal iff their non-zero entries agree,
// which for the fixed-size array representation is ordinary ==.
type Composition = ucumdata.Composition
