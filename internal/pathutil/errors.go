// Package pathutil gives the catalog loader and analyzer a single error
// type for "something is wrong with this specific catalog record", instead
// of ad hoc string concatenation at every validation site.
package pathutil

import (
	"errors"
	"fmt"
)

// RecordKind names the catalog section a CatalogError points into.
type RecordKind int

const (
	// RecordCatalog is a whole-document failure (e.g. malformed JSON),
	// not attributable to one record.
	RecordCatalog RecordKind = iota
	RecordBaseUnit
	RecordPrefix
	RecordUnit
)

// String renders the catalog section name used in error locations.
func (k RecordKind) String() string {
	switch k {
	case RecordBaseUnit:
		return "base_units"
	case RecordPrefix:
		return "prefixes"
	case RecordUnit:
		return "units"
	default:
		return "catalog"
	}
}

// CatalogError reports a problem with one record (or field within a record)
// of the declarative UCUM catalog: which section, which code, and which
// field, so a broken entry in the atom or prefix table produces a
// diagnostic pointing at the record rather than a bare "invalid value".
type CatalogError struct {
	Kind  RecordKind
	Code  string // the record's own code, e.g. "kg"; empty for RecordCatalog
	Field string // dotted field path within the record, e.g. "value.factor"
	Err   error
}

// Error implements the error interface, rendering e.g.
// "at units[kg].value.factor: invalid decimal".
func (e *CatalogError) Error() string {
	loc := e.Kind.String()
	if e.Code != "" {
		loc += "[" + e.Code + "]"
	}
	if e.Field != "" {
		loc += "." + e.Field
	}
	return fmt.Sprintf("at %s: %v", loc, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Wrap attaches a catalog record location to err. Returns nil if err is nil.
func Wrap(kind RecordKind, code, field string, err error) error {
	if err == nil {
		return nil
	}
	return &CatalogError{Kind: kind, Code: code, Field: field, Err: err}
}

// Wrapf attaches a catalog record location to a formatted error.
func Wrapf(kind RecordKind, code, field string, format string, args ...any) error {
	return &CatalogError{Kind: kind, Code: code, Field: field, Err: fmt.Errorf(format, args...)}
}

// Sentinel errors for catalog loading and code generation failures.
var (
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrUnknownAtomRef  = errors.New("unknown atom reference")
	ErrCycle           = errors.New("cycle in atom definition graph")
	ErrMissingRequired = errors.New("missing required field in catalog record")
)

// RecordLocation extracts the "kind[code].field" location from err, if it is
// or wraps a CatalogError, or "" otherwise.
func RecordLocation(err error) string {
	var catErr *CatalogError
	if !errors.As(err, &catErr) {
		return ""
	}
	loc := catErr.Kind.String()
	if catErr.Code != "" {
		loc += "[" + catErr.Code + "]"
	}
	if catErr.Field != "" {
		loc += "." + catErr.Field
	}
	return loc
}
