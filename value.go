package measure

import "fmt"

// Value pairs a magnitude with the unit it is expressed in. The magnitude
// is stored as given; construction never converts. Converting produces a
// new Value and leaves the receiver untouched.
type Value[U Unit] struct {
	value float64
	unit  U
}

// NewValue returns a Value holding value expressed in unit.
func NewValue[U Unit](value float64, unit U) Value[U] {
	return Value[U]{value: value, unit: unit}
}

// Value returns the magnitude.
func (v Value[U]) Value() float64 { return v.value }

// Unit returns the unit the magnitude is expressed in.
func (v Value[U]) Unit() U { return v.unit }

// Convert returns a new Value whose magnitude is expressed in the target
// unit. The receiver is unchanged.
func (v Value[U]) Convert(to U) Value[U] {
	return Value[U]{value: convert(v.value, v.unit, to), unit: to}
}

// String renders the value with its dimension label, two decimal places,
// and the unit's combined form, e.g. "Length Value: 10.00 Meters (m)".
func (v Value[U]) String() string {
	return fmt.Sprintf("%s Value: %.2f %s", v.unit.Dimension(), v.value, v.unit.NameAndAbbr())
}
