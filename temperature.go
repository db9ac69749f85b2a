package measure

// TemperatureUnit is a unit of temperature. The base unit is Kelvin.
//
// Temperature is the only affine dimension: converting to Kelvin applies
// an offset before the scale, so the shared (v + offset) * factor table
// row reproduces the textbook formulas exactly (K = °C + 273.15,
// K = (°F + 459.67) × 5/9, K = °R × 5/9).
type TemperatureUnit int

// Temperature unit variants, in declaration order.
const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
	Rankine
)

var temperatureTable = [...]unitEntry{
	Kelvin:     {abbr: "K", name: "Kelvin", factor: 1},
	Celsius:    {abbr: "°C", name: "Celsius", factor: 1, offset: 273.15},
	Fahrenheit: {abbr: "°F", name: "Fahrenheit", factor: 5.0 / 9.0, offset: 459.67},
	Rankine:    {abbr: "°R", name: "Rankine", factor: 5.0 / 9.0},
}

func (u TemperatureUnit) entry() unitEntry { return temperatureTable[u] }

// Abbr returns the unit's abbreviation, e.g. "K".
func (u TemperatureUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Kelvin".
func (u TemperatureUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g. "Kelvin (K)".
func (u TemperatureUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Temperature".
func (u TemperatureUnit) Dimension() string { return "Temperature" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u TemperatureUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// Kelvin.
func (u TemperatureUnit) Convert(value float64, to TemperatureUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u TemperatureUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *TemperatureUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseTemperatureUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// TemperatureUnits returns every temperature unit in declaration order.
func TemperatureUnits() []TemperatureUnit {
	return unitsOf[TemperatureUnit](len(temperatureTable))
}

// TemperatureUnitNames returns the full name of every temperature unit.
func TemperatureUnitNames() []string { return allNames(TemperatureUnits()) }

// TemperatureUnitAbbrs returns the abbreviation of every temperature unit.
func TemperatureUnitAbbrs() []string { return allAbbrs(TemperatureUnits()) }

// TemperatureUnitNamesAndAbbrs returns the combined form of every
// temperature unit.
func TemperatureUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(TemperatureUnits()) }

// ParseTemperatureUnit resolves s to a temperature unit by its
// abbreviation, name, or "Name (abbr)" form.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	return parseUnit(s, TemperatureUnits())
}

// DefaultTemperatureUnit returns the base unit, Kelvin.
func DefaultTemperatureUnit() TemperatureUnit { return Kelvin }
