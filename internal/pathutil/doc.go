// Package pathutil is internal to the ucum-go code generator. See errors.go
// for CatalogError, the structured (section, code, field) error type the
// catalog loader and analyzer report validation and resolution failures
// with.
package pathutil
