package registry

import (
	"testing"

	"github.com/khristoforovs/arshin/fundamental"
	"github.com/khristoforovs/arshin/unit"
)

func TestNew(t *testing.T) {
	r := New()
	if r.Len() != 0 {
		t.Errorf("new registry has %d units, want 0", r.Len())
	}
}

func TestRegisterAndGet(t *testing.T) {
	r := New()

	meter := unit.NewBase("meter", fundamental.Length)
	kilometer := unit.NewLinear("kilometer", fundamental.Length, 1000, 0)
	celsius := unit.NewLinear("celsius", fundamental.Temperature, 1, 273.15)

	for _, u := range []unit.Unit{meter, kilometer, celsius} {
		if err := r.Register(u); err != nil {
			t.Fatalf("Register(%s): %v", u.Name(), err)
		}
	}

	got, ok := r.Get("kilometer")
	if !ok {
		t.Fatal("kilometer not found")
	}
	if base := got.ToBase(5); base != 5000 {
		t.Errorf("5 km = %v in base units, want 5000", base)
	}

	if !r.Contains("celsius") {
		t.Error("Contains(celsius) = false")
	}
	if r.Contains("foot") {
		t.Error("Contains(foot) = true for an unregistered unit")
	}
	if _, ok := r.Get("foot"); ok {
		t.Error("Get(foot) found an unregistered unit")
	}
}

func TestDuplicateRegister(t *testing.T) {
	r := New()
	meter := unit.NewBase("meter", fundamental.Length)

	if err := r.Register(meter); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	err := r.Register(meter)
	if err == nil {
		t.Fatal("second Register succeeded, want DuplicateUnitError")
	}
	if !IsDuplicate(err) {
		t.Errorf("error %v is not a DuplicateUnitError", err)
	}

	// The failed attempt must leave exactly one entry behind.
	if r.Len() != 1 {
		t.Errorf("registry has %d entries after failed duplicate, want 1", r.Len())
	}
}

func TestUnitNames(t *testing.T) {
	r := New()
	want := map[string]bool{"meter": true, "second": true, "gram": true}

	_ = r.Register(unit.NewBase("meter", fundamental.Length))
	_ = r.Register(unit.NewBase("second", fundamental.Time))
	_ = r.Register(unit.NewBase("gram", fundamental.Mass))

	names := r.UnitNames()
	if len(names) != len(want) {
		t.Fatalf("UnitNames() returned %d names, want %d", len(names), len(want))
	}
	for _, name := range names {
		if !want[name] {
			t.Errorf("unexpected name %q", name)
		}
	}
}

func TestMustGet(t *testing.T) {
	r := New()
	_ = r.Register(unit.NewBase("meter", fundamental.Length))

	if got := r.MustGet("meter"); got.Name() != "meter" {
		t.Errorf("MustGet(meter).Name() = %q", got.Name())
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet on a missing unit did not panic")
		}
	}()
	r.MustGet("cubit")
}

func TestUnknownUnitError(t *testing.T) {
	err := error(&UnknownUnitError{Name: "cubit"})
	if !IsUnknown(err) {
		t.Error("IsUnknown = false for UnknownUnitError")
	}
	if IsDuplicate(err) {
		t.Error("IsDuplicate = true for UnknownUnitError")
	}
}
