package ucumdata

import "github.com/shopspring/decimal"

// Atom is one UCUM atom: a base unit (meter, second, ...) or a derived unit
// (newton, degree Celsius, international inch, ...).
type Atom struct {
	Code          string
	SecondaryCode string
	Symbol        string
	Names         []string

	// Base is true for the seven dimensionally-independent units.
	Base bool

	Class    string
	Property string

	// Metric reports whether this atom accepts SI/binary prefixes.
	Metric bool

	// Special is true for non-ratio units (Celsius, pH, ...) whose
	// conversion is a function pair rather than a scalar factor.
	Special bool

	// Arbitrary is true for units with no fixed relationship to SI
	// (international units, arbitrary units). Compatibility checks compare
	// compositions and annotations only and do not consult this flag.
	Arbitrary bool

	// Function names the conversion function pair for a Special atom, e.g.
	// "cel", "degf", "ph", "neper", "bel". Empty for ratio atoms.
	Function string

	// Factor is this atom's scalar value in terms of its base units. For a
	// Special atom, Factor is unused; Comp still names the dimension the
	// function's base-unit side is expressed in.
	Factor decimal.Decimal

	Comp Composition
}

// Prefix is a metric or binary prefix (kilo, micro, kibi, ...).
type Prefix struct {
	Code          string
	SecondaryCode string
	Symbol        string
	Names         []string
	Value         decimal.Decimal
}
