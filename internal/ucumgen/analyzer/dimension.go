package analyzer

// Dimension names one of the seven base quantities a composition is built
// from. These match the Dim field of catalog.BaseUnit records.
type Dimension string

const (
	Length            Dimension = "Length"
	Mass              Dimension = "Mass"
	Time              Dimension = "Time"
	ElectricCharge    Dimension = "ElectricCharge"
	Temperature       Dimension = "Temperature"
	LuminousIntensity Dimension = "LuminousIntensity"
	PlaneAngle        Dimension = "PlaneAngle"
)

// Dimensions lists the seven base dimensions in the fixed order the
// generator emits composition vectors in. The generated Composition arrays
// are positional, so this order must match internal/ucumdata's Dimension
// constants.
var Dimensions = []Dimension{
	Length, Mass, Time, ElectricCharge, Temperature, LuminousIntensity, PlaneAngle,
}

// Composition is an exponent vector over the seven base dimensions, e.g.
// force is {Length: 1, Mass: 1, Time: -2}. Dimensions absent from the map
// have an implicit exponent of zero.
type Composition map[Dimension]int

// Add returns the pointwise sum of two compositions (dimension of a
// product).
func (c Composition) Add(other Composition) Composition {
	return c.scale(1, other, 1)
}

// Sub returns c - other (dimension of a quotient).
func (c Composition) Sub(other Composition) Composition {
	return c.scale(1, other, -1)
}

// Scale returns c multiplied by n (dimension of a power).
func (c Composition) Scale(n int) Composition {
	return c.scale(n, nil, 0)
}

func (c Composition) scale(selfFactor int, other Composition, otherFactor int) Composition {
	out := make(Composition, len(c)+len(other))
	for d, e := range c {
		out[d] += e * selfFactor
	}
	for d, e := range other {
		out[d] += e * otherFactor
	}
	for d, e := range out {
		if e == 0 {
			delete(out, d)
		}
	}
	return out
}

// IsDimensionless reports whether every exponent in the composition is zero.
func (c Composition) IsDimensionless() bool {
	for _, e := range c {
		if e != 0 {
			return false
		}
	}
	return true
}
