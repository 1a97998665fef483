package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khristoforovs/arshin/fundamental"
	"github.com/khristoforovs/arshin/transform"
)

func TestNew(t *testing.T) {
	u := New("meter", fundamental.Length, transform.Identity())
	assert.Equal(t, "meter", u.Name())
	assert.Equal(t, fundamental.Length, u.Dimensionality())
	assert.Equal(t, 10.0, u.ToBase(10))
	assert.Equal(t, 10.0, u.FromBase(10))
}

func TestNewBase(t *testing.T) {
	u := NewBase("second", fundamental.Time)
	assert.Equal(t, "second", u.Name())
	assert.Equal(t, fundamental.Time, u.Dimensionality())
	assert.Equal(t, transform.KindIdentity, u.Transformation().Kind())
	assert.Equal(t, 5.0, u.ToBase(5))
}

func TestNewLinear(t *testing.T) {
	kilometer := NewLinear("kilometer", fundamental.Length, 1000, 0)
	assert.Equal(t, 1000.0, kilometer.ToBase(1))
	assert.Equal(t, 1.0, kilometer.FromBase(1000))

	celsius := NewLinear("celsius", fundamental.Temperature, 1, 273.15)
	assert.Equal(t, 273.15, celsius.ToBase(0))
	assert.Equal(t, 0.0, celsius.FromBase(273.15))
}

func TestCompatible(t *testing.T) {
	meter := NewBase("meter", fundamental.Length)
	kilometer := NewLinear("kilometer", fundamental.Length, 1000, 0)
	second := NewBase("second", fundamental.Time)

	assert.True(t, meter.Compatible(kilometer))
	assert.False(t, meter.Compatible(second))
}

func TestString(t *testing.T) {
	assert.Equal(t, "meter [length]", NewBase("meter", fundamental.Length).String())
	assert.Equal(t, "second [time]", NewBase("second", fundamental.Time).String())

	joule := NewBase("joule",
		fundamental.Mass.Mul(fundamental.Length.Pow(2)).Div(fundamental.Time.Pow(2)))
	assert.Equal(t, "joule [mass * [length]^2 * [time]^-2]", joule.String())
}

func TestMulDiv(t *testing.T) {
	kilometer := NewLinear("kilometer", fundamental.Length, 1000, 0)
	minute := NewLinear("minute", fundamental.Time, 60, 0)

	speed := kilometer.Div(minute)
	assert.Equal(t, "(kilometer / minute)", speed.Name())
	assert.Equal(t, fundamental.Length.Div(fundamental.Time), speed.Dimensionality())
	assert.InDelta(t, 1000.0/60.0, speed.ToBase(1), 1e-12)

	product := kilometer.Mul(minute)
	assert.Equal(t, "(kilometer * minute)", product.Name())
	assert.Equal(t, 6.0e4, product.ToBase(1))
}

func TestMulTreatsIdentityAsScaleOne(t *testing.T) {
	meter := NewBase("meter", fundamental.Length)
	second := NewBase("second", fundamental.Time)

	ms := meter.Div(second)
	assert.Equal(t, transform.KindLinear, ms.Transformation().Kind())
	assert.Equal(t, 1.0, ms.Transformation().Scale())
	assert.Equal(t, 0.0, ms.Transformation().Offset())
}

func TestPow(t *testing.T) {
	meter := NewBase("meter", fundamental.Length)
	cube := meter.Pow(3)
	assert.Equal(t, fundamental.Length.Pow(3), cube.Dimensionality())
	assert.Equal(t, 1.0, cube.ToBase(1))

	kilometer := NewLinear("kilometer", fundamental.Length, 1000, 0)
	square := kilometer.Pow(2)
	assert.Equal(t, 1e6, square.Transformation().Scale())
	assert.Equal(t, fundamental.Length.Pow(2), square.Dimensionality())

	inverse := kilometer.Pow(-1)
	assert.InDelta(t, 1e-3, inverse.Transformation().Scale(), 1e-12)
	assert.Equal(t, fundamental.Length.Pow(-1), inverse.Dimensionality())
}

func TestCompositionRestrictions(t *testing.T) {
	meter := NewBase("meter", fundamental.Length)
	celsius := NewLinear("celsius", fundamental.Temperature, 1, 273.15)
	decibel := New("decibel", fundamental.Count, transform.Decibel(1))

	assert.Panics(t, func() { celsius.Mul(meter) })
	assert.Panics(t, func() { meter.Mul(celsius) })
	assert.Panics(t, func() { decibel.Div(meter) })
	assert.Panics(t, func() { meter.Div(decibel) })
	assert.Panics(t, func() { celsius.Pow(2) })
	assert.Panics(t, func() { decibel.Pow(2) })
}
