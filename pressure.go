package measure

// PressureUnit is a unit of pressure. The base unit is Pascals.
type PressureUnit int

// Pressure unit variants, in declaration order.
const (
	Pascals PressureUnit = iota
	Kilopascals
	Megapascals
	Bars
	PoundsPerSquareInch
	Atmospheres
	Torrs
)

// pressureTable maps each variant to pascals.
var pressureTable = [...]unitEntry{
	Pascals:             {abbr: "Pa", name: "Pascals", factor: 1},
	Kilopascals:         {abbr: "kPa", name: "Kilopascals", factor: 1000},
	Megapascals:         {abbr: "MPa", name: "Megapascals", factor: 1e6},
	Bars:                {abbr: "bar", name: "Bars", factor: 1e5},
	PoundsPerSquareInch: {abbr: "psi", name: "Pounds per Square Inch", factor: 6894.76},
	Atmospheres:         {abbr: "atm", name: "Atmospheres", factor: 101325},
	Torrs:               {abbr: "Torr", name: "Torrs", factor: 133.322},
}

func (u PressureUnit) entry() unitEntry { return pressureTable[u] }

// Abbr returns the unit's abbreviation, e.g. "Pa".
func (u PressureUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Pascals".
func (u PressureUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g. "Pascals (Pa)".
func (u PressureUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Pressure".
func (u PressureUnit) Dimension() string { return "Pressure" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u PressureUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// pascals.
func (u PressureUnit) Convert(value float64, to PressureUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u PressureUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *PressureUnit) UnmarshalText(text []byte) error {
	parsed, err := ParsePressureUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// PressureUnits returns every pressure unit in declaration order.
func PressureUnits() []PressureUnit { return unitsOf[PressureUnit](len(pressureTable)) }

// PressureUnitNames returns the full name of every pressure unit.
func PressureUnitNames() []string { return allNames(PressureUnits()) }

// PressureUnitAbbrs returns the abbreviation of every pressure unit.
func PressureUnitAbbrs() []string { return allAbbrs(PressureUnits()) }

// PressureUnitNamesAndAbbrs returns the combined form of every pressure
// unit.
func PressureUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(PressureUnits()) }

// ParsePressureUnit resolves s to a pressure unit by its abbreviation,
// name, or "Name (abbr)" form.
func ParsePressureUnit(s string) (PressureUnit, error) { return parseUnit(s, PressureUnits()) }

// DefaultPressureUnit returns the base unit, Pascals.
func DefaultPressureUnit() PressureUnit { return Pascals }
