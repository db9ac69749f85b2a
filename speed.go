package measure

// SpeedUnit is a unit of speed. The base unit is MetersPerSecond.
type SpeedUnit int

// Speed unit variants, in declaration order.
const (
	MetersPerSecond SpeedUnit = iota
	KilometersPerHour
	FeetPerSecond
	MilesPerHour
	Knots
)

// speedTable maps each variant to meters per second.
var speedTable = [...]unitEntry{
	MetersPerSecond:   {abbr: "m/s", name: "Meters per Second", factor: 1},
	KilometersPerHour: {abbr: "km/h", name: "Kilometers per Hour", factor: 1.0 / 3.6},
	FeetPerSecond:     {abbr: "ft/s", name: "Feet per Second", factor: 1.0 / 3.28084},
	MilesPerHour:      {abbr: "mph", name: "Miles per Hour", factor: 1.0 / 2.23694},
	Knots:             {abbr: "kn", name: "Knots", factor: 1.0 / 1.94384},
}

func (u SpeedUnit) entry() unitEntry { return speedTable[u] }

// Abbr returns the unit's abbreviation, e.g. "m/s".
func (u SpeedUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Meters per Second".
func (u SpeedUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g. "Meters per Second (m/s)".
func (u SpeedUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Speed".
func (u SpeedUnit) Dimension() string { return "Speed" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u SpeedUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// meters per second.
func (u SpeedUnit) Convert(value float64, to SpeedUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u SpeedUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *SpeedUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseSpeedUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// SpeedUnits returns every speed unit in declaration order.
func SpeedUnits() []SpeedUnit { return unitsOf[SpeedUnit](len(speedTable)) }

// SpeedUnitNames returns the full name of every speed unit.
func SpeedUnitNames() []string { return allNames(SpeedUnits()) }

// SpeedUnitAbbrs returns the abbreviation of every speed unit.
func SpeedUnitAbbrs() []string { return allAbbrs(SpeedUnits()) }

// SpeedUnitNamesAndAbbrs returns the combined form of every speed unit.
func SpeedUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(SpeedUnits()) }

// ParseSpeedUnit resolves s to a speed unit by its abbreviation, name, or
// "Name (abbr)" form.
func ParseSpeedUnit(s string) (SpeedUnit, error) { return parseUnit(s, SpeedUnits()) }

// DefaultSpeedUnit returns the base unit, MetersPerSecond.
func DefaultSpeedUnit() SpeedUnit { return MetersPerSecond }
