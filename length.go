package measure

// LengthUnit is a unit of length. The base unit is Meters.
type LengthUnit int

// Length unit variants, in declaration order.
const (
	Millimeters LengthUnit = iota
	Centimeters
	Meters
	Kilometers
	Inches
	Feet
	Yards
	StatuteMiles
	NauticalMiles
)

// lengthTable maps each variant to meters.
var lengthTable = [...]unitEntry{
	Millimeters:   {abbr: "mm", name: "Millimeters", factor: 1.0 / 1000.0},
	Centimeters:   {abbr: "cm", name: "Centimeters", factor: 1.0 / 100.0},
	Meters:        {abbr: "m", name: "Meters", factor: 1},
	Kilometers:    {abbr: "km", name: "Kilometers", factor: 1000},
	Inches:        {abbr: "in", name: "Inches", factor: 1.0 / 39.3701},
	Feet:          {abbr: "ft", name: "Feet", factor: 1.0 / 3.28084},
	Yards:         {abbr: "yd", name: "Yards", factor: 1.0 / 1.09361},
	StatuteMiles:  {abbr: "mi", name: "Statute Miles", factor: 1.0 / 0.000621371},
	NauticalMiles: {abbr: "nmi", name: "Nautical Miles", factor: 1.0 / 0.000539957},
}

func (u LengthUnit) entry() unitEntry { return lengthTable[u] }

// Abbr returns the unit's abbreviation, e.g. "m".
func (u LengthUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Meters".
func (u LengthUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g. "Meters (m)".
func (u LengthUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Length".
func (u LengthUnit) Dimension() string { return "Length" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u LengthUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// meters. Converting a unit to itself returns value unchanged.
func (u LengthUnit) Convert(value float64, to LengthUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u LengthUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any form
// ParseLengthUnit accepts.
func (u *LengthUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseLengthUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// LengthUnits returns every length unit in declaration order.
func LengthUnits() []LengthUnit { return unitsOf[LengthUnit](len(lengthTable)) }

// LengthUnitNames returns the full name of every length unit.
func LengthUnitNames() []string { return allNames(LengthUnits()) }

// LengthUnitAbbrs returns the abbreviation of every length unit.
func LengthUnitAbbrs() []string { return allAbbrs(LengthUnits()) }

// LengthUnitNamesAndAbbrs returns the combined form of every length unit.
func LengthUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(LengthUnits()) }

// ParseLengthUnit resolves s to a length unit by its abbreviation, name,
// or "Name (abbr)" form. It returns an error wrapping ErrUnknownUnit when
// s matches none of them.
func ParseLengthUnit(s string) (LengthUnit, error) { return parseUnit(s, LengthUnits()) }

// DefaultLengthUnit returns the base unit, Meters.
func DefaultLengthUnit() LengthUnit { return Meters }
