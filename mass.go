package measure

// MassUnit is a unit of mass. The base unit is Kilograms.
type MassUnit int

// Mass unit variants, in declaration order.
const (
	Grams MassUnit = iota
	Kilograms
	PoundsMass
	Ounces
	Slugs
)

// massTable maps each variant to kilograms.
var massTable = [...]unitEntry{
	Grams:      {abbr: "g", name: "Grams", factor: 1.0 / 1000.0},
	Kilograms:  {abbr: "kg", name: "Kilograms", factor: 1},
	PoundsMass: {abbr: "lb", name: "Pounds", factor: 1.0 / 2.20462262185},
	Ounces:     {abbr: "oz", name: "Ounces", factor: 1.0 / 35.27396195},
	Slugs:      {abbr: "slug", name: "Slugs", factor: 14.5939},
}

func (u MassUnit) entry() unitEntry { return massTable[u] }

// Abbr returns the unit's abbreviation, e.g. "kg".
func (u MassUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Kilograms".
func (u MassUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g. "Kilograms (kg)".
func (u MassUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Mass".
func (u MassUnit) Dimension() string { return "Mass" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u MassUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// kilograms.
func (u MassUnit) Convert(value float64, to MassUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u MassUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *MassUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseMassUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MassUnits returns every mass unit in declaration order.
func MassUnits() []MassUnit { return unitsOf[MassUnit](len(massTable)) }

// MassUnitNames returns the full name of every mass unit.
func MassUnitNames() []string { return allNames(MassUnits()) }

// MassUnitAbbrs returns the abbreviation of every mass unit.
func MassUnitAbbrs() []string { return allAbbrs(MassUnits()) }

// MassUnitNamesAndAbbrs returns the combined form of every mass unit.
func MassUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(MassUnits()) }

// ParseMassUnit resolves s to a mass unit by its abbreviation, name, or
// "Name (abbr)" form.
func ParseMassUnit(s string) (MassUnit, error) { return parseUnit(s, MassUnits()) }

// DefaultMassUnit returns the base unit, Kilograms.
func DefaultMassUnit() MassUnit { return Kilograms }
