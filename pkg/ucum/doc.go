// Package ucum implements the Unified Code for Units of Measure: parsing
// unit expressions, dimensional analysis, scalar evaluation, and
// measurement conversion.
//
// The entry points are Parse, which turns a UCUM expression like "kg.m/s2"
// into a Unit, and NewMeasurement/Measurement.ConvertTo, which pair a value
// with a unit and convert it to another commensurable unit. The atom and
// prefix tables the package resolves symbols against are compiled in from
// internal/ucumdata, which is itself produced ahead of time by cmd/ucumgen
// from a declarative catalog; nothing in this package registers units at
// runtime.
package ucum
