// Package analyzer resolves a catalog.Catalog into fully-computed atom and
// prefix records: every derived unit's expression walked back to base
// units, yielding a base-unit scalar factor and a seven-dimension
// composition vector for each atom. internal/ucumgen/generator renders the
// result into internal/ucumdata's lookup tables.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hl7-ucum/ucum-go/internal/pathutil"
	"github.com/hl7-ucum/ucum-go/internal/ucumgen/catalog"
)

var errUnknownRef = errors.New("unknown atom reference")

// AnalyzedAtom is one fully-resolved UCUM atom: a base unit or a derived
// unit, ready to become a row in internal/ucumdata's atom table.
type AnalyzedAtom struct {
	Code          string
	SecondaryCode string
	Symbol        string
	Names         []string
	Base          bool
	Class         string
	Property      string
	Metric        bool
	Special       bool
	Arbitrary     bool
	Function      string // non-empty only when Special
	Factor        decimal.Decimal
	Comp          Composition
}

// AnalyzedPrefix is one fully-resolved prefix, ready to become a row in
// internal/ucumdata's prefix table.
type AnalyzedPrefix struct {
	Code          string
	SecondaryCode string
	Symbol        string
	Names         []string
	Value         decimal.Decimal
}

// Analyzed is the complete resolved catalog: every atom (base and derived)
// and every prefix, in a stable generation order.
type Analyzed struct {
	Atoms    []AnalyzedAtom
	Prefixes []AnalyzedPrefix
}

type atomEntry struct {
	AnalyzedAtom
}

type prefixEntry struct {
	AnalyzedPrefix
}

// Analyzer resolves a catalog's derived-unit expressions into base-unit
// factors and dimension vectors, detecting unknown references and
// definition cycles along the way.
type Analyzer struct {
	cat      *catalog.Catalog
	units    map[string]catalog.Unit
	atoms    map[string]atomEntry
	prefixes map[string]prefixEntry
	visiting map[string]bool
}

// New creates an Analyzer over cat. Call Analyze to run it.
func New(cat *catalog.Catalog) *Analyzer {
	units := make(map[string]catalog.Unit, len(cat.Units))
	for _, u := range cat.Units {
		units[u.Code] = u
	}
	return &Analyzer{
		cat:      cat,
		units:    units,
		atoms:    make(map[string]atomEntry, len(cat.Units)+len(cat.BaseUnits)),
		prefixes: make(map[string]prefixEntry, len(cat.Prefixes)),
		visiting: make(map[string]bool),
	}
}

// Analyze resolves every base unit, prefix and derived unit in the
// catalog. The returned Analyzed.Atoms preserves catalog order (base units
// first, then derived units in catalog declaration order) regardless of
// the order in which resolution actually visited them.
func Analyze(cat *catalog.Catalog) (*Analyzed, error) {
	a := New(cat)

	for _, p := range cat.Prefixes {
		v, err := decimal.NewFromString(p.Value)
		if err != nil {
			return nil, pathutil.Wrapf(pathutil.RecordPrefix, p.Code, "value", "invalid decimal %q: %v", p.Value, err)
		}
		a.prefixes[p.Code] = prefixEntry{
			AnalyzedPrefix: AnalyzedPrefix{
				Code: p.Code, SecondaryCode: p.SecondaryCode, Symbol: p.Symbol, Names: p.Names,
				Value: v,
			},
		}
	}

	for _, b := range cat.BaseUnits {
		a.atoms[b.Code] = atomEntry{
			AnalyzedAtom: AnalyzedAtom{
				Code: b.Code, SecondaryCode: b.SecondaryCode, Symbol: b.Symbol, Names: b.Names,
				Base: true, Metric: true,
				Factor: decimal.NewFromInt(1),
				Comp:   Composition{Dimension(b.Dim): 1},
			},
		}
	}

	for _, u := range cat.Units {
		if _, err := a.resolve(u.Code); err != nil {
			return nil, err
		}
	}

	return a.result(), nil
}

// resolve returns the fully-computed entry for atom code, resolving its
// catalog definition (recursively resolving whatever it references) on
// first access and memoizing the result.
func (a *Analyzer) resolve(code string) (atomEntry, error) {
	if e, ok := a.atoms[code]; ok {
		return e, nil
	}
	if a.visiting[code] {
		return atomEntry{}, pathutil.Wrapf(pathutil.RecordUnit, code, "", "%w: %s", pathutil.ErrCycle, code)
	}
	u, ok := a.units[code]
	if !ok {
		return atomEntry{}, fmt.Errorf("%w: %q", errUnknownRef, code)
	}

	a.visiting[code] = true
	defer delete(a.visiting, code)

	rf, err := a.evalExpr(u.Value.Unit)
	if err != nil {
		return atomEntry{}, pathutil.Wrap(pathutil.RecordUnit, code, "value.unit", err)
	}

	factor := rf.Factor
	comp := rf.Comp
	if u.Special {
		// The function pair, not the factor, carries the conversion; Comp
		// still reflects the dimension the function's output is expressed
		// in (e.g. Cel shares K's composition).
		factor = decimal.NewFromInt(1)
	} else if u.Value.Factor != "" {
		f, ferr := decimal.NewFromString(u.Value.Factor.String())
		if ferr != nil {
			return atomEntry{}, pathutil.Wrapf(pathutil.RecordUnit, code, "value.factor", "invalid decimal %q: %v", u.Value.Factor, ferr)
		}
		factor = factor.Mul(f)
	}

	entry := atomEntry{
		AnalyzedAtom: AnalyzedAtom{
			Code: u.Code, SecondaryCode: u.SecondaryCode, Symbol: u.Symbol, Names: u.Names,
			Class: u.Class, Property: u.Property, Metric: u.Metric, Special: u.Special,
			Arbitrary: u.Arbitrary, Function: u.Value.Function,
			Factor: factor,
			Comp:   comp,
		},
	}
	a.atoms[code] = entry
	return entry, nil
}

func (a *Analyzer) result() *Analyzed {
	out := &Analyzed{}

	for _, b := range a.cat.BaseUnits {
		out.Atoms = append(out.Atoms, a.atoms[b.Code].AnalyzedAtom)
	}
	for _, u := range a.cat.Units {
		out.Atoms = append(out.Atoms, a.atoms[u.Code].AnalyzedAtom)
	}
	for _, p := range a.cat.Prefixes {
		out.Prefixes = append(out.Prefixes, a.prefixes[p.Code].AnalyzedPrefix)
	}

	return out
}
