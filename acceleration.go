package measure

// AccelerationUnit is a unit of acceleration. The base unit is
// MetersPerSecondSquared.
type AccelerationUnit int

// Acceleration unit variants, in declaration order.
const (
	MetersPerSecondSquared AccelerationUnit = iota
	FeetPerSecondSquared
	StandardGravity
	Gals
)

// accelerationTable maps each variant to meters per second squared.
var accelerationTable = [...]unitEntry{
	MetersPerSecondSquared: {abbr: "m/s²", name: "Meters per Second Squared", factor: 1},
	FeetPerSecondSquared:   {abbr: "ft/s²", name: "Feet per Second Squared", factor: 1.0 / 3.28084},
	StandardGravity:        {abbr: "g", name: "Standard Gravity", factor: 9.80665},
	Gals:                   {abbr: "Gal", name: "Gals", factor: 1.0 / 100.0},
}

func (u AccelerationUnit) entry() unitEntry { return accelerationTable[u] }

// Abbr returns the unit's abbreviation, e.g. "m/s²".
func (u AccelerationUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Meters per Second Squared".
func (u AccelerationUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g.
// "Meters per Second Squared (m/s²)".
func (u AccelerationUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Acceleration".
func (u AccelerationUnit) Dimension() string { return "Acceleration" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u AccelerationUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// meters per second squared.
func (u AccelerationUnit) Convert(value float64, to AccelerationUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u AccelerationUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *AccelerationUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseAccelerationUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// AccelerationUnits returns every acceleration unit in declaration order.
func AccelerationUnits() []AccelerationUnit {
	return unitsOf[AccelerationUnit](len(accelerationTable))
}

// AccelerationUnitNames returns the full name of every acceleration unit.
func AccelerationUnitNames() []string { return allNames(AccelerationUnits()) }

// AccelerationUnitAbbrs returns the abbreviation of every acceleration
// unit.
func AccelerationUnitAbbrs() []string { return allAbbrs(AccelerationUnits()) }

// AccelerationUnitNamesAndAbbrs returns the combined form of every
// acceleration unit.
func AccelerationUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(AccelerationUnits()) }

// ParseAccelerationUnit resolves s to an acceleration unit by its
// abbreviation, name, or "Name (abbr)" form.
func ParseAccelerationUnit(s string) (AccelerationUnit, error) {
	return parseUnit(s, AccelerationUnits())
}

// DefaultAccelerationUnit returns the base unit, MetersPerSecondSquared.
func DefaultAccelerationUnit() AccelerationUnit { return MetersPerSecondSquared }
