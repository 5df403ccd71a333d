// Package catalog loads the declarative UCUM unit table: the JSON record of
// base units, prefixes and derived units that internal/ucumgen/generator
// turns into the internal/ucumdata lookup tables compiled into pkg/ucum.
//
// The catalog is the single source of truth for the runtime's unit
// knowledge. Nothing in pkg/ucum hand-encodes an atom or a prefix; it all
// flows from here through the analyzer and generator.
package catalog

import "encoding/json"

// BaseUnit is one of the seven dimensionally-independent UCUM units. Its
// Dim names the base dimension it defines (one of the constants in
// internal/ucumgen/analyzer).
type BaseUnit struct {
	Code          string   `json:"code"`
	SecondaryCode string   `json:"secondary_code"`
	Symbol        string   `json:"symbol"`
	Names         []string `json:"names"`
	Dim           string   `json:"dim"`
}

// Prefix is a metric or binary prefix, e.g. "k" (kilo, 1e3) or "Ki" (kibi,
// 1024). Value is carried as a decimal literal string rather than a float64
// so the generator can hand it to shopspring/decimal without precision loss.
type Prefix struct {
	Code          string   `json:"code"`
	SecondaryCode string   `json:"secondary_code"`
	Symbol        string   `json:"symbol"`
	Names         []string `json:"names"`
	Value         string   `json:"value"`
}

// Value is a unit's definition: either a ratio (Factor of Unit) or, for a
// special (non-ratio) unit, a named conversion Function paired with the
// dimensional Unit that function's output is expressed in. Factor is a JSON
// number kept as its literal text, so no float64 rounding happens on load.
type Value struct {
	Factor   json.Number `json:"factor,omitempty"`
	Function string      `json:"function,omitempty"`
	Unit     string      `json:"unit"`
}

// IsSpecial reports whether this value is defined by a function pair rather
// than a plain scalar ratio.
func (v Value) IsSpecial() bool {
	return v.Function != ""
}

// Unit is a derived (non-base) UCUM atom: everything from "Hz" to "[lbf_av]".
type Unit struct {
	Code          string   `json:"code"`
	SecondaryCode string   `json:"secondary_code"`
	Symbol        string   `json:"symbol"`
	Names         []string `json:"names"`
	Class         string   `json:"class"`
	Property      string   `json:"property"`
	Metric        bool     `json:"metric"`
	Special       bool     `json:"special"`
	Arbitrary     bool     `json:"arbitrary"`
	Value         Value    `json:"value"`
}

// Catalog is the full declarative unit table.
type Catalog struct {
	BaseUnits []BaseUnit `json:"base_units"`
	Prefixes  []Prefix   `json:"prefixes"`
	Units     []Unit     `json:"units"`
}
