package measure

// TimeUnit is a unit of time. The base unit is Seconds.
type TimeUnit int

// Time unit variants, in declaration order.
const (
	Seconds TimeUnit = iota
	Minutes
	Hours
	Days
	Weeks
	Years
)

// timeTable maps each variant to seconds. A year is 365 days.
var timeTable = [...]unitEntry{
	Seconds: {abbr: "s", name: "Seconds", factor: 1},
	Minutes: {abbr: "min", name: "Minutes", factor: 60},
	Hours:   {abbr: "hr", name: "Hours", factor: 3600},
	Days:    {abbr: "d", name: "Days", factor: 86400},
	Weeks:   {abbr: "wk", name: "Weeks", factor: 604800},
	Years:   {abbr: "yr", name: "Years", factor: 31536000},
}

func (u TimeUnit) entry() unitEntry { return timeTable[u] }

// Abbr returns the unit's abbreviation, e.g. "s".
func (u TimeUnit) Abbr() string { return u.entry().abbr }

// Name returns the unit's full name, e.g. "Seconds".
func (u TimeUnit) Name() string { return u.entry().name }

// NameAndAbbr returns the combined form, e.g. "Seconds (s)".
func (u TimeUnit) NameAndAbbr() string { return nameAndAbbr(u) }

// Dimension returns "Time".
func (u TimeUnit) Dimension() string { return "Time" }

// String implements fmt.Stringer as the combined "Name (abbr)" form.
func (u TimeUnit) String() string { return u.NameAndAbbr() }

// Convert converts value from u to the target unit, pivoting through
// seconds.
func (u TimeUnit) Convert(value float64, to TimeUnit) float64 {
	return convert(value, u, to)
}

// MarshalText implements encoding.TextMarshaler using the abbreviation.
func (u TimeUnit) MarshalText() ([]byte, error) { return []byte(u.Abbr()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *TimeUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// TimeUnits returns every time unit in declaration order.
func TimeUnits() []TimeUnit { return unitsOf[TimeUnit](len(timeTable)) }

// TimeUnitNames returns the full name of every time unit.
func TimeUnitNames() []string { return allNames(TimeUnits()) }

// TimeUnitAbbrs returns the abbreviation of every time unit.
func TimeUnitAbbrs() []string { return allAbbrs(TimeUnits()) }

// TimeUnitNamesAndAbbrs returns the combined form of every time unit.
func TimeUnitNamesAndAbbrs() []string { return allNamesAndAbbrs(TimeUnits()) }

// ParseTimeUnit resolves s to a time unit by its abbreviation, name, or
// "Name (abbr)" form.
func ParseTimeUnit(s string) (TimeUnit, error) { return parseUnit(s, TimeUnits()) }

// DefaultTimeUnit returns the base unit, Seconds.
func DefaultTimeUnit() TimeUnit { return Seconds }
