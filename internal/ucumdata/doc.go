// Package ucumdata holds the compiled-in UCUM atom and prefix tables.
//
// Atoms and Prefixes (in atoms_gen.go and prefixes_gen.go) and the grammar
// tables in grammar_gen.go are produced by cmd/ucumgen from the declarative
// catalog in internal/ucumgen/catalog; everything else in this package is a
// small hand-written lookup layer on top of that data. pkg/ucum is the only consumer — nothing here parses or
// evaluates unit expressions, it just looks records up by code.
package ucumdata
