package fundamental

import "testing"

func TestAxisNames(t *testing.T) {
	tests := []struct {
		axis Axis
		name string
	}{
		{AxisMass, "mass"},
		{AxisLength, "length"},
		{AxisTime, "time"},
		{AxisCurrent, "current"},
		{AxisTemperature, "temperature"},
		{AxisAmountOfSubstance, "amount of substance"},
		{AxisLuminousIntensity, "luminous intensity"},
		{AxisAngle, "angle"},
		{AxisBit, "bit"},
		{AxisCount, "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.axis.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			back, ok := AxisFromName(tt.name)
			if !ok || back != tt.axis {
				t.Errorf("AxisFromName(%q) = %v, %v", tt.name, back, ok)
			}
		})
	}
}

func TestAxisFromIndex(t *testing.T) {
	for i := 0; i < NumAxes; i++ {
		a, err := AxisFromIndex(i)
		if err != nil {
			t.Fatalf("AxisFromIndex(%d): %v", i, err)
		}
		if a.Index() != i {
			t.Errorf("Index() = %d, want %d", a.Index(), i)
		}
	}
	if _, err := AxisFromIndex(NumAxes); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if _, ok := AxisFromName("velocity"); ok {
		t.Error("AxisFromName accepted an unknown name")
	}
}

func TestDimensionCanonicalization(t *testing.T) {
	// All-zero input collapses to the count identity.
	d := New([NumAxes]Exponent{})
	want := [NumAxes]Exponent{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	if d.Exponents() != want {
		t.Errorf("New(zero) = %v, want %v", d.Exponents(), want)
	}

	// Any non-count exponent forces count to zero, whatever the caller set.
	d = New([NumAxes]Exponent{1, 0, 0, 0, 0, 0, 0, 0, 0, 5})
	want = [NumAxes]Exponent{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if d.Exponents() != want {
		t.Errorf("New(mass, count=5) = %v, want %v", d.Exponents(), want)
	}

	// Canonicalization is idempotent.
	if New(d.Exponents()) != d {
		t.Error("canonicalization is not idempotent")
	}
}

func TestDimensionMul(t *testing.T) {
	force := Length.Mul(Mass).Mul(Time.Pow(-2))
	want := [NumAxes]Exponent{1, 1, -2, 0, 0, 0, 0, 0, 0, 0}
	if force.Exponents() != want {
		t.Errorf("mass*length/time^2 = %v, want %v", force.Exponents(), want)
	}

	if got := Length.Mul(Count); got != Length {
		t.Errorf("length * count = %v, want length", got)
	}
}

func TestDimensionDiv(t *testing.T) {
	result := Length.Div(Time)
	want := [NumAxes]Exponent{0, 1, -1, 0, 0, 0, 0, 0, 0, 0}
	if result.Exponents() != want {
		t.Errorf("length/time = %v, want %v", result.Exponents(), want)
	}

	// A dimension divided by itself collapses to the identity.
	if got := Mass.Div(Mass); got != Count {
		t.Errorf("mass/mass = %v, want count", got)
	}

	collapsed := New([NumAxes]Exponent{1, 1, 0, 0, 0, 0, 0, 0, 0, 0}).Div(Length.Mul(Mass))
	if collapsed != Count {
		t.Errorf("(mass*length)/(length*mass) = %v, want count", collapsed)
	}
	if uncollapsed := collapsed.Mul(Length); uncollapsed != Length {
		t.Errorf("count * length = %v, want length", uncollapsed)
	}
}

func TestDimensionPow(t *testing.T) {
	if got := Length.Pow(2).Exponents(); got != [NumAxes]Exponent{0, 2, 0, 0, 0, 0, 0, 0, 0, 0} {
		t.Errorf("length^2 = %v", got)
	}
	if got := Length.Pow(-1).Exponents(); got != [NumAxes]Exponent{0, -1, 0, 0, 0, 0, 0, 0, 0, 0} {
		t.Errorf("length^-1 = %v", got)
	}
	if got := Length.Pow(0); got != Dimensionless {
		t.Errorf("length^0 = %v, want count", got)
	}
	if got := Length.Pow(1); got != Length {
		t.Errorf("length^1 = %v, want length", got)
	}
	if got := Count.Pow(2); got != Count {
		t.Errorf("count^2 = %v, want count", got)
	}
}

func TestMulDivInverse(t *testing.T) {
	dims := []Dimension{
		Mass,
		Length.Mul(Mass).Mul(Time.Pow(-2)),
		Count,
		Temperature.Pow(3),
	}
	others := []Dimension{Length, Time, Current, Bit}

	for _, a := range dims {
		for _, b := range others {
			if got := a.Mul(b).Div(b); got != a {
				t.Errorf("(%v * %v) / %v = %v, want %v", a, b, b, got, a)
			}
		}
	}
}

func TestDimensionString(t *testing.T) {
	tests := []struct {
		dim  Dimension
		want string
	}{
		{New([NumAxes]Exponent{1, 2, -2, 0, 0, 0, 0, 0, 0, 0}), "mass * [length]^2 * [time]^-2"},
		{Count, "count"},
		{New([NumAxes]Exponent{}), "count"},
		{Length, "length"},
		{AmountOfSubstance.Pow(2), "[amount of substance]^2"},
	}

	for _, tt := range tests {
		if got := tt.dim.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
