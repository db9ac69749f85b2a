package measure

import (
	"math"
	"testing"
)

func TestNewValueStoresAsGiven(t *testing.T) {
	t.Parallel()
	v := NewValue(42.5, Feet)
	if v.Value() != 42.5 {
		t.Errorf("Value() = %g, want 42.5", v.Value())
	}
	if v.Unit() != Feet {
		t.Errorf("Unit() = %v, want Feet", v.Unit())
	}
}

func TestValueConvert(t *testing.T) {
	t.Parallel()
	v := NewValue(100.0, Meters)
	got := v.Convert(Kilometers)
	if got.Unit() != Kilometers {
		t.Errorf("converted Unit() = %v, want Kilometers", got.Unit())
	}
	if math.Abs(got.Value()-0.1) > 1e-12 {
		t.Errorf("converted Value() = %g, want 0.1", got.Value())
	}

	// The receiver is untouched.
	if v.Value() != 100.0 || v.Unit() != Meters {
		t.Errorf("original mutated: %g %v", v.Value(), v.Unit())
	}
}

func TestValueConvertIdentity(t *testing.T) {
	t.Parallel()
	v := NewValue(math.Pi, Radians)
	got := v.Convert(Radians)
	if got.Value() != math.Pi {
		t.Errorf("identity conversion: got %g, want exact %g", got.Value(), math.Pi)
	}
}

func TestValueString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		got  string
		want string
	}{
		{NewValue(10.0, Meters).String(), "Length Value: 10.00 Meters (m)"},
		{NewValue(273.15, Kelvin).String(), "Temperature Value: 273.15 Kelvin (K)"},
		{NewValue(1.0, Knots).String(), "Speed Value: 1.00 Knots (kn)"},
		{NewValue(2.5, PoundsMass).String(), "Mass Value: 2.50 Pounds (lb)"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("String() = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestValueConvertChain(t *testing.T) {
	t.Parallel()
	start := NewValue(1.0, StatuteMiles)
	back := start.Convert(NauticalMiles).Convert(Kilometers).Convert(StatuteMiles)
	if !closeRel(back.Value(), 1.0) {
		t.Errorf("chained round trip: got %g, want 1", back.Value())
	}
}
