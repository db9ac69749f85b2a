// Package measure converts physical quantities between units of the same
// dimension. Each dimension (Length, Mass, Time, Temperature, Speed, Force,
// Pressure, Bearing, Acceleration) is a closed enumeration of unit variants
// with one designated base unit; every conversion pivots through the base
// unit, so adding a variant costs one table row instead of a row per pair.
// Units parse from their abbreviation ("m"), full name ("Meters"), or
// combined "Meters (m)" form.
//
// Each dimension is its own Go type, so a Length unit can never be
// converted against a Mass table: mixing dimensions is a compile error,
// not a runtime fault.
package measure

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned when a string matches no unit variant in the
// dimension being parsed.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit is the capability set shared by every dimension's unit type. It is
// used as a generic constraint rather than an interface value: the
// dimension stays in the concrete type, which is what keeps cross-dimension
// conversion unrepresentable.
type Unit interface {
	~int

	// Abbr returns the canonical abbreviation, e.g. "m". The conversion
	// table row is the only place abbreviation text is hard-coded.
	Abbr() string
	// Name returns the canonical full name, e.g. "Meters".
	Name() string
	// NameAndAbbr returns the combined "Name (abbr)" form, e.g. "Meters (m)".
	NameAndAbbr() string
	// Dimension returns the dimension label, e.g. "Length".
	Dimension() string

	entry() unitEntry
}

// unitEntry is one row of a dimension's conversion table. A magnitude v in
// this unit equals (v + offset) * factor base units. Offset is zero for
// every scalar dimension; Temperature is the only affine case.
type unitEntry struct {
	abbr   string
	name   string
	factor float64
	offset float64
}

// convert maps value from one unit variant to another by pivoting through
// the dimension's base unit. Identical source and target short-circuit so
// the identity conversion is exact rather than x*k/k.
func convert[U Unit](value float64, from, to U) float64 {
	if from == to {
		return value
	}
	src, dst := from.entry(), to.entry()
	base := (value + src.offset) * src.factor
	return base/dst.factor - dst.offset
}

// parseUnit resolves s against each variant's abbreviation, name, and
// "Name (abbr)" form. Matching is exact and case-sensitive: no trimming,
// no case folding, no partial or fuzzy matches.
func parseUnit[U Unit](s string, units []U) (U, error) {
	for _, u := range units {
		if s == u.Abbr() || s == u.Name() || s == u.NameAndAbbr() {
			return u, nil
		}
	}
	var zero U
	return zero, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// unitsOf returns the first n variants of a dimension in declaration order.
func unitsOf[U Unit](n int) []U {
	units := make([]U, n)
	for i := range units {
		units[i] = U(i)
	}
	return units
}

func nameAndAbbr[U Unit](u U) string {
	return fmt.Sprintf("%s (%s)", u.Name(), u.Abbr())
}

func allNames[U Unit](units []U) []string {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name()
	}
	return names
}

func allAbbrs[U Unit](units []U) []string {
	abbrs := make([]string, len(units))
	for i, u := range units {
		abbrs[i] = u.Abbr()
	}
	return abbrs
}

func allNamesAndAbbrs[U Unit](units []U) []string {
	forms := make([]string, len(units))
	for i, u := range units {
		forms[i] = u.NameAndAbbr()
	}
	return forms
}
