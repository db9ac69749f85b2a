package measure

// BearingUnit is a unit of angular bearing. The base unit is Degrees.
type BearingUnit int

// Bearing unit variants, in declaration order.
const (
	Degrees BearingUnit = iota
	Radians
	Gradians
	Mils
)

// bearingTable maps each variant to degrees. A mil here is the NATO mil,
// 1/6400 of a full circle.
var bearingTable = [...]unitEntry{
	Degrees:  {abbr: "°", name: "Degrees", factor: 1},
	Radians:  {abbr: "rad", name: "Radians", factor: 57.2958},
	Gradians: {abbr: "grad", name: "Gradians", factor: 0.9},
	Mils:     {abbr: "mil", name: "Mils", factor: 0.05625},
}

func (u BearingUnit) entry() unitEntry { return bearingTable[u] }

// Abbr returns the unit's abbreviation, e.g. "°".
func (u BearingUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Degrees".
func (u BearingUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g. "Degrees (°)".
func (u BearingUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Bearing".
func (u BearingUnit) Dimension() string { return "Bearing" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u BearingUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// degrees.
func (u BearingUnit) Convert(value float64, to BearingUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u BearingUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *BearingUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseBearingUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// BearingUnits returns every bearing unit in declaration order.
func BearingUnits() []BearingUnit { return unitsOf[BearingUnit](len(bearingTable)) }

// BearingUnitNames returns the full name of every bearing unit.
func BearingUnitNames() []string { return allNames(BearingUnits()) }

// BearingUnitAbbrs returns the abbreviation of every bearing unit.
func BearingUnitAbbrs() []string { return allAbbrs(BearingUnits()) }

// BearingUnitNamesAndAbbrs returns the combined form of every bearing unit.
func BearingUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(BearingUnits()) }

// ParseBearingUnit resolves s to a bearing unit by its abbreviation, name,
// or "Name (abbr)" form.
func ParseBearingUnit(s string) (BearingUnit, error) { return parseUnit(s, BearingUnits()) }

// DefaultBearingUnit returns the base unit, Degrees.
func DefaultBearingUnit() BearingUnit { return Degrees }
