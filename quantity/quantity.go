// Package quantity couples a magnitude with a unit and implements
// arithmetic with dimensional guards. The magnitude is always held in the
// canonical base representation of the quantity's current dimension,
// independent of the attached unit; the unit is consulted only at
// construction, on explicit conversion, during unit composition and for
// display.
package quantity

import (
	"fmt"

	"github.com/khristoforovs/arshin/fundamental"
	"github.com/khristoforovs/arshin/registry"
	"github.com/khristoforovs/arshin/transform"
	"github.com/khristoforovs/arshin/unit"
)

// Quantity is an immutable magnitude-unit pair. Every operation returns a
// new value.
type Quantity[T transform.Magnitude[T]] struct {
	magnitude T
	unit      unit.Unit
}

// New creates a quantity from a magnitude expressed in the given unit; the
// magnitude is converted to base representation on construction.
func New[T transform.Magnitude[T]](magnitude T, u unit.Unit) Quantity[T] {
	return Quantity[T]{
		magnitude: transform.ToBase(u.Transformation(), magnitude),
		unit:      u,
	}
}

// NewFromRegistry creates a quantity by looking the unit up by name.
// Returns registry.UnknownUnitError when the name is absent.
func NewFromRegistry[T transform.Magnitude[T]](r *registry.Registry, magnitude T, unitName string) (Quantity[T], error) {
	u, ok := r.Get(unitName)
	if !ok {
		return Quantity[T]{}, &registry.UnknownUnitError{Name: unitName}
	}
	return New(magnitude, u), nil
}

// MagnitudeAs returns the magnitude expressed in the target unit. Fails
// with ConversionError when dimensions differ.
func (q Quantity[T]) MagnitudeAs(target unit.Unit) (T, error) {
	if q.Dimensionality() != target.Dimensionality() {
		var zero T
		return zero, &ConversionError{
			Expected: q.Dimensionality(),
			Got:      target.Dimensionality(),
		}
	}
	return transform.FromBase(target.Transformation(), q.magnitude), nil
}

// MAs is shorthand for MagnitudeAs.
func (q Quantity[T]) MAs(target unit.Unit) (T, error) {
	return q.MagnitudeAs(target)
}

// Unit returns the attached unit.
func (q Quantity[T]) Unit() unit.Unit { return q.unit }

// Dimensionality returns the quantity's dimension.
func (q Quantity[T]) Dimensionality() fundamental.Dimension {
	return q.unit.Dimensionality()
}

// BaseMagnitude returns the magnitude in canonical base representation.
func (q Quantity[T]) BaseMagnitude() T { return q.magnitude }

// String renders the base magnitude followed by the unit name.
func (q Quantity[T]) String() string {
	return fmt.Sprintf("%v %s", q.magnitude, q.unit.Name())
}

// Pow raises the quantity to an integer power. Panics for a decibel unit
// or a linear unit with non-zero offset, mirroring unit.Pow: the result
// would be physically meaningless. The magnitude is exponentiated on its
// base representation, so no re-conversion happens.
func (q Quantity[T]) Pow(n int64) Quantity[T] {
	switch tr := q.unit.Transformation(); tr.Kind() {
	case transform.KindDecibel:
		panic("quantity: cannot raise a decibel quantity to a power")
	case transform.KindLinear:
		if tr.Offset() != 0 {
			panic("quantity: cannot raise a biased quantity to a power")
		}
	}

	return Quantity[T]{
		magnitude: q.magnitude.Pow(float64(n)),
		unit:      q.unit.Pow(n),
	}
}

// MulScalar scales the magnitude by a plain number; the unit is unchanged.
func (q Quantity[T]) MulScalar(s float64) Quantity[T] {
	return Quantity[T]{magnitude: q.magnitude.MulScalar(s), unit: q.unit}
}

// DivScalar divides the magnitude by a plain number; the unit is
// unchanged.
func (q Quantity[T]) DivScalar(s float64) Quantity[T] {
	return Quantity[T]{magnitude: q.magnitude.DivScalar(s), unit: q.unit}
}

// Add sums two quantities of equal dimension. Panics on a dimension
// mismatch; both magnitudes are already base values of the same dimension,
// so they add directly. The left operand's unit is kept for display.
func (q Quantity[T]) Add(other Quantity[T]) Quantity[T] {
	q.checkSameDimension(other)
	return Quantity[T]{magnitude: q.magnitude.Add(other.magnitude), unit: q.unit}
}

// Sub subtracts two quantities of equal dimension under the same rules as
// Add.
func (q Quantity[T]) Sub(other Quantity[T]) Quantity[T] {
	q.checkSameDimension(other)
	return Quantity[T]{magnitude: q.magnitude.Sub(other.magnitude), unit: q.unit}
}

// Mul multiplies two quantities. The unit composition restrictions of
// unit.Mul apply and panic on violation; the base magnitudes multiply
// directly because the composite dimension is the product of the operand
// dimensions.
func (q Quantity[T]) Mul(other Quantity[T]) Quantity[T] {
	return Quantity[T]{
		magnitude: q.magnitude.Mul(other.magnitude),
		unit:      q.unit.Mul(other.unit),
	}
}

// Div divides two quantities under the same rules as Mul.
func (q Quantity[T]) Div(other Quantity[T]) Quantity[T] {
	return Quantity[T]{
		magnitude: q.magnitude.Div(other.magnitude),
		unit:      q.unit.Div(other.unit),
	}
}

func (q Quantity[T]) checkSameDimension(other Quantity[T]) {
	if q.Dimensionality() != other.Dimensionality() {
		err := &ConversionError{Expected: q.Dimensionality(), Got: other.Dimensionality()}
		panic("quantity: " + err.Error())
	}
}
