package measure

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// relTol is the round-trip tolerance: results must agree to 1e-9 relative.
const relTol = 1e-9

// closeRel reports whether a and b agree within relTol, relative to the
// larger magnitude. Near zero the comparison degrades to absolute so that
// affine round trips landing at ~1e-13 instead of 0 still pass.
func closeRel(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(a-b) <= relTol*scale
}

// checkRoundTrip asserts convert(convert(v, A, B), B, A) ≈ v for every
// pair of units in the dimension.
func checkRoundTrip[U Unit](t *testing.T, units []U) {
	t.Helper()
	samples := []float64{-40, -1, 0, 0.5, 1, 100, 12345.678}
	for _, from := range units {
		for _, to := range units {
			for _, v := range samples {
				got := convert(convert(v, from, to), to, from)
				if !closeRel(got, v) {
					t.Errorf("round trip %v → %v of %g: got %g", from, to, v, got)
				}
			}
		}
	}
}

// checkIdentity asserts that converting a unit to itself returns the value
// bit-for-bit, not merely within tolerance.
func checkIdentity[U Unit](t *testing.T, units []U) {
	t.Helper()
	samples := []float64{0, 1, -273.15, math.Pi, 1e12}
	for _, u := range units {
		for _, v := range samples {
			if got := convert(v, u, u); got != v {
				t.Errorf("identity %v of %g: got %g, want exact", u, v, got)
			}
		}
	}
}

// checkParseForms asserts parser totality: every unit resolves from its
// abbreviation, its name, and its "Name (abbr)" form.
func checkParseForms[U Unit](t *testing.T, units []U, parse func(string) (U, error)) {
	t.Helper()
	for _, u := range units {
		for _, form := range []string{u.Abbr(), u.Name(), u.NameAndAbbr()} {
			got, err := parse(form)
			if err != nil {
				t.Errorf("parse(%q): %v", form, err)
				continue
			}
			if got != u {
				t.Errorf("parse(%q) = %v, want %v", form, got, u)
			}
		}
	}
}

// checkParseRejects asserts the parser never guesses: garbage, empty
// input, wrong case, and untrimmed whitespace all fail with
// ErrUnknownUnit.
func checkParseRejects[U Unit](t *testing.T, parse func(string) (U, error)) {
	t.Helper()
	for _, s := range []string{"not-a-unit", "", "METERS", " m", "m "} {
		if _, err := parse(s); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("parse(%q): got %v, want ErrUnknownUnit", s, err)
		}
	}
}

// checkDistinctForms asserts no two units in the dimension share an
// abbreviation, name, or combined form, which is what makes parsing
// unambiguous.
func checkDistinctForms[U Unit](t *testing.T, units []U) {
	t.Helper()
	seen := make(map[string]U)
	for _, u := range units {
		for _, form := range []string{u.Abbr(), u.Name(), u.NameAndAbbr()} {
			if prev, ok := seen[form]; ok && prev != u {
				t.Errorf("form %q shared by %v and %v", form, prev, u)
			}
			seen[form] = u
		}
	}
}

// checkProjections asserts the enumeration projections line up with the
// units in declaration order.
func checkProjections[U Unit](t *testing.T, units []U, names, abbrs, forms []string) {
	t.Helper()
	if len(names) != len(units) || len(abbrs) != len(units) || len(forms) != len(units) {
		t.Fatalf("projection lengths %d/%d/%d, want %d", len(names), len(abbrs), len(forms), len(units))
	}
	for i, u := range units {
		if names[i] != u.Name() {
			t.Errorf("names[%d] = %q, want %q", i, names[i], u.Name())
		}
		if abbrs[i] != u.Abbr() {
			t.Errorf("abbrs[%d] = %q, want %q", i, abbrs[i], u.Abbr())
		}
		if forms[i] != u.NameAndAbbr() {
			t.Errorf("forms[%d] = %q, want %q", i, forms[i], u.NameAndAbbr())
		}
	}
}

func TestErrUnknownUnitMessage(t *testing.T) {
	t.Parallel()
	_, err := ParseLengthUnit("furlongs")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("got %v, want ErrUnknownUnit", err)
	}
	if !strings.Contains(err.Error(), `"furlongs"`) {
		t.Errorf("error %q does not quote the input", err)
	}
}

func TestNameAndAbbrFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		got  string
		want string
	}{
		{Meters.NameAndAbbr(), "Meters (m)"},
		{Celsius.NameAndAbbr(), "Celsius (°C)"},
		{MetersPerSecond.NameAndAbbr(), "Meters per Second (m/s)"},
		{StatuteMiles.NameAndAbbr(), "Statute Miles (mi)"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("NameAndAbbr = %q, want %q", tc.got, tc.want)
		}
	}
}
