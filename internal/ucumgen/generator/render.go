package generator

import (
	"sort"

	"github.com/hl7-ucum/ucum-go/internal/ucumgen/analyzer"
)

// atomRecord is the template-facing view of an analyzer.AnalyzedAtom: every
// field pre-rendered to a form text/template can drop straight into a Go
// literal, including the composition vector flattened to analyzer.Dimensions
// order.
type atomRecord struct {
	Code, SecondaryCode, Symbol string
	Names                       []string
	Base                        bool
	Class, Property             string
	Metric, Special, Arbitrary  bool
	Function                    string
	FactorString                string
	CompValues                  [7]int
}

type prefixRecord struct {
	Code, SecondaryCode, Symbol string
	Names                       []string
	ValueString                 string
}

func renderAtoms(atoms []analyzer.AnalyzedAtom) []atomRecord {
	out := make([]atomRecord, 0, len(atoms))
	for _, a := range atoms {
		out = append(out, atomRecord{
			Code: a.Code, SecondaryCode: a.SecondaryCode, Symbol: a.Symbol,
			Names: a.Names, Base: a.Base, Class: a.Class, Property: a.Property,
			Metric: a.Metric, Special: a.Special, Arbitrary: a.Arbitrary, Function: a.Function,
			FactorString: a.Factor.String(),
			CompValues:   flattenComposition(a.Comp),
		})
	}
	return out
}

func renderPrefixes(prefixes []analyzer.AnalyzedPrefix) []prefixRecord {
	out := make([]prefixRecord, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, prefixRecord{
			Code: p.Code, SecondaryCode: p.SecondaryCode, Symbol: p.Symbol,
			Names: p.Names, ValueString: p.Value.String(),
		})
	}
	return out
}

func flattenComposition(c analyzer.Composition) [7]int {
	var v [7]int
	for i, d := range analyzer.Dimensions {
		v[i] = c[d]
	}
	return v
}

// grammarData is the template-facing view of the symbol recognizer's
// longest-match grammar: every primary and secondary atom/prefix code,
// sorted so that no shorter alternative can shadow a longer one, plus a
// mapping from every primary and secondary code to its canonical code.
type grammarData struct {
	PackageName string

	AtomCodes            []string
	AtomSecondaryCodes   []string
	PrefixCodes          []string
	PrefixSecondaryCodes []string
	CombinedPrefixCodes  []string // primary+secondary merged, deduped, for runtime longest-match lookup
	AtomRuleMap          []ruleMapping
	PrefixRuleMap        []ruleMapping
}

type ruleMapping struct {
	Code      string
	Canonical string
}

func renderGrammar(packageName string, atoms []analyzer.AnalyzedAtom, prefixes []analyzer.AnalyzedPrefix) grammarData {
	var atomPrimary, atomSecondary, prefixPrimary, prefixSecondary []string
	var atomRules, prefixRules []ruleMapping

	for _, a := range atoms {
		atomPrimary = append(atomPrimary, a.Code)
		atomRules = append(atomRules, ruleMapping{Code: a.Code, Canonical: a.Code})
		if a.SecondaryCode != "" {
			atomSecondary = append(atomSecondary, a.SecondaryCode)
			atomRules = append(atomRules, ruleMapping{Code: a.SecondaryCode, Canonical: a.Code})
		}
	}
	for _, p := range prefixes {
		prefixPrimary = append(prefixPrimary, p.Code)
		prefixRules = append(prefixRules, ruleMapping{Code: p.Code, Canonical: p.Code})
		if p.SecondaryCode != "" {
			prefixSecondary = append(prefixSecondary, p.SecondaryCode)
			prefixRules = append(prefixRules, ruleMapping{Code: p.SecondaryCode, Canonical: p.Code})
		}
	}

	dedupeRules := func(rules []ruleMapping) []ruleMapping {
		canon := make(map[string]string, len(rules))
		for _, r := range rules {
			canon[r.Code] = r.Canonical // later records win, as in ucumdata's by-code index
		}
		out := make([]ruleMapping, 0, len(canon))
		for code, c := range canon {
			out = append(out, ruleMapping{Code: code, Canonical: c})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
		return out
	}
	atomRules, prefixRules = dedupeRules(atomRules), dedupeRules(prefixRules)

	combinedPrefix := append(append([]string{}, prefixPrimary...), prefixSecondary...)

	return grammarData{
		PackageName:          packageName,
		AtomCodes:            sortByLengthThenLex(atomPrimary),
		AtomSecondaryCodes:   dedupeSortByLengthThenLex(atomSecondary),
		PrefixCodes:          sortByLengthThenLex(prefixPrimary),
		PrefixSecondaryCodes: sortByLengthThenLex(prefixSecondary),
		CombinedPrefixCodes:  dedupeSortByLengthThenLex(combinedPrefix),
		AtomRuleMap:          atomRules,
		PrefixRuleMap:        prefixRules,
	}
}

// sortByLengthThenLex orders codes so that a greedy left-to-right tokenizer
// trying alternatives in order always prefers a longer match over a
// shorter one ("[in_i]" never loses to "i"), breaking ties
// lexicographically for a deterministic, reproducible ordering.
func sortByLengthThenLex(codes []string) []string {
	out := append([]string{}, codes...)
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func dedupeSortByLengthThenLex(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return sortByLengthThenLex(out)
}
