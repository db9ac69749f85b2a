package measure

// ForceUnit is a unit of force. The base unit is Newtons.
type ForceUnit int

// Force unit variants, in declaration order.
const (
	Newtons ForceUnit = iota
	PoundsForce
	KilogramsForce
)

// forceTable maps each variant to newtons.
var forceTable = [...]unitEntry{
	Newtons:        {abbr: "N", name: "Newtons", factor: 1},
	PoundsForce:    {abbr: "lbf", name: "Pounds Force", factor: 4.44822},
	KilogramsForce: {abbr: "kgf", name: "Kilograms Force", factor: 9.80665},
}

func (u ForceUnit) entry() unitEntry { return forceTable[u] }

// Abbr returns the unit's abbreviation, e.g. "N".
func (u ForceUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Newtons".
func (u ForceUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g. "Newtons (N)".
func (u ForceUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Force".
func (u ForceUnit) Dimension() string { return "Force" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u ForceUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// newtons.
func (u ForceUnit) Convert(value float64, to ForceUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u ForceUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *ForceUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseForceUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ForceUnits returns every force unit in declaration order.
func ForceUnits() []ForceUnit { return unitsOf[ForceUnit](len(forceTable)) }

// ForceUnitNames returns the full name of every force unit.
func ForceUnitNames() []string { return allNames(ForceUnits()) }

// ForceUnitAbbrs returns the abbreviation of every force unit.
func ForceUnitAbbrs() []string { return allAbbrs(ForceUnits()) }

// ForceUnitNamesAndAbbrs returns the combined form of every force unit.
func ForceUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(ForceUnits()) }

// ParseForceUnit resolves s to a force unit by its abbreviation, name, or
// "Name (abbr)" form.
func ParseForceUnit(s string) (ForceUnit, error) { return parseUnit(s, ForceUnits()) }

// DefaultForceUnit returns the base unit, Newtons.
func DefaultForceUnit() ForceUnit { return Newtons }
