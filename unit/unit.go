// Package unit pairs a dimension with a transformation and a display name.
// Units compose multiplicatively; composition is restricted to the subgroup
// of scale-only transformations because offsets and logarithmic scales do
// not compose under multiplication and division.
package unit

import (
	"fmt"
	"math"

	"github.com/khristoforovs/arshin/fundamental"
	"github.com/khristoforovs/arshin/transform"
)

// Unit is an immutable named point in dimensional space together with the
// conversion between its native and base representations.
type Unit struct {
	name string
	dim  fundamental.Dimension
	tr   transform.Transformation
}

// New creates a unit with an explicit transformation.
func New(name string, dim fundamental.Dimension, tr transform.Transformation) Unit {
	return Unit{name: name, dim: dim, tr: tr}
}

// NewBase creates a unit whose native representation is the base
// representation.
func NewBase(name string, dim fundamental.Dimension) Unit {
	return New(name, dim, transform.Identity())
}

// NewLinear creates a unit with a linear transformation.
func NewLinear(name string, dim fundamental.Dimension, scale, offset float64) Unit {
	return New(name, dim, transform.Linear(scale, offset))
}

// Name returns the display name.
func (u Unit) Name() string { return u.name }

// Dimensionality returns the unit's dimension.
func (u Unit) Dimensionality() fundamental.Dimension { return u.dim }

// Transformation returns the held transformation.
func (u Unit) Transformation() transform.Transformation { return u.tr }

// String renders the unit as "name [dimension]", e.g. "meter [length]".
func (u Unit) String() string {
	return fmt.Sprintf("%s [%s]", u.name, u.dim)
}

// ToBase converts a native float64 value to base representation.
func (u Unit) ToBase(value float64) float64 {
	return float64(transform.ToBase(u.tr, transform.Float(value)))
}

// FromBase converts a base float64 value to the native representation.
func (u Unit) FromBase(value float64) float64 {
	return float64(transform.FromBase(u.tr, transform.Float(value)))
}

// Compatible reports whether both units share the same dimension.
func (u Unit) Compatible(other Unit) bool {
	return u.dim == other.dim
}

// Pow raises the unit to an integer power. The transformation must be a
// pure rescaling; Pow panics for decibel units and for linear units with a
// non-zero offset, since exponentiating a biased or logarithmic unit has no
// well-defined physical meaning.
func (u Unit) Pow(n int64) Unit {
	if !u.tr.ScaleOnly() {
		panic(fmt.Sprintf("unit: cannot raise unit %q with %s transformation to a power",
			u.name, describeRestriction(u.tr)))
	}

	name := fmt.Sprintf("(%s)^%d", u.name, n)
	dim := u.dim.Pow(n)
	if u.tr.Kind() == transform.KindIdentity {
		return NewBase(name, dim)
	}
	return NewLinear(name, dim, math.Pow(u.tr.Scale(), float64(n)), 0)
}

// Mul multiplies two units. Both operands must carry scale-only
// transformations; Mul panics otherwise. The result is linear with the
// product of the operand scales and a synthesized name.
func (u Unit) Mul(other Unit) Unit {
	checkComposable("multiplication", u, other)

	return NewLinear(
		fmt.Sprintf("(%s * %s)", u.name, other.name),
		u.dim.Mul(other.dim),
		u.tr.EffectiveScale()*other.tr.EffectiveScale(),
		0,
	)
}

// Div divides two units under the same restrictions as Mul. The result is
// linear with the quotient of the operand scales.
func (u Unit) Div(other Unit) Unit {
	checkComposable("division", u, other)

	return NewLinear(
		fmt.Sprintf("(%s / %s)", u.name, other.name),
		u.dim.Div(other.dim),
		u.tr.EffectiveScale()/other.tr.EffectiveScale(),
		0,
	)
}

func checkComposable(op string, a, b Unit) {
	for _, u := range [2]Unit{a, b} {
		if !u.tr.ScaleOnly() {
			panic(fmt.Sprintf("unit: %s not permitted for unit %q with %s transformation",
				op, u.name, describeRestriction(u.tr)))
		}
	}
}

func describeRestriction(tr transform.Transformation) string {
	if tr.Kind() == transform.KindDecibel {
		return "decibel"
	}
	return "biased linear"
}
