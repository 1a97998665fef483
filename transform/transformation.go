// Package transform models the numeric conversion between a unit's native
// representation and the canonical base representation. The set of
// transformation kinds is closed; every consumer switches exhaustively on
// Kind because composition legality depends on exact kind identity.
package transform

import "fmt"

// Kind identifies a transformation variant.
type Kind int

const (
	// KindIdentity maps values unchanged.
	KindIdentity Kind = iota
	// KindLinear maps v to v*scale + offset.
	KindLinear
	// KindDecibel maps a logarithmic-ratio value referenced to p0.
	KindDecibel
)

func (k Kind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindLinear:
		return "linear"
	case KindDecibel:
		return "decibel"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Transformation is an immutable, comparable tagged value holding one of
// the three conversion strategies.
type Transformation struct {
	kind   Kind
	scale  float64
	offset float64
	p0     float64
}

// Identity returns the identity transformation.
func Identity() Transformation {
	return Transformation{kind: KindIdentity}
}

// Linear returns a linear transformation with the given scale and offset.
// The contract requires scale != 0; it is not validated here.
func Linear(scale, offset float64) Transformation {
	return Transformation{kind: KindLinear, scale: scale, offset: offset}
}

// Decibel returns a logarithmic transformation referenced to p0. Behavior
// for p0 <= 0 is the caller's responsibility.
func Decibel(p0 float64) Transformation {
	return Transformation{kind: KindDecibel, p0: p0}
}

// Kind reports the variant.
func (t Transformation) Kind() Kind { return t.kind }

// Scale returns the linear scale factor. Zero for other kinds.
func (t Transformation) Scale() float64 { return t.scale }

// Offset returns the linear offset. Zero for other kinds.
func (t Transformation) Offset() float64 { return t.offset }

// P0 returns the decibel reference value. Zero for other kinds.
func (t Transformation) P0() float64 { return t.p0 }

// ScaleOnly reports whether the transformation is a pure rescaling:
// identity, or linear with zero offset. Only these compose under unit
// multiplication, division and exponentiation.
func (t Transformation) ScaleOnly() bool {
	switch t.kind {
	case KindIdentity:
		return true
	case KindLinear:
		return t.offset == 0
	case KindDecibel:
		return false
	}
	return false
}

// EffectiveScale returns the rescaling factor of a scale-only
// transformation, treating identity as 1. Meaningless for other kinds.
func (t Transformation) EffectiveScale() float64 {
	if t.kind == KindIdentity {
		return 1
	}
	return t.scale
}

func (t Transformation) String() string {
	switch t.kind {
	case KindIdentity:
		return "identity"
	case KindLinear:
		return fmt.Sprintf("linear(scale: %v, offset: %v)", t.scale, t.offset)
	case KindDecibel:
		return fmt.Sprintf("decibel(p0: %v)", t.p0)
	}
	return t.kind.String()
}

// ToBase converts a value from the unit's native representation to the
// canonical base representation.
func ToBase[T Magnitude[T]](t Transformation, value T) T {
	switch t.kind {
	case KindIdentity:
		return value
	case KindLinear:
		return value.MulScalar(t.scale).AddScalar(t.offset)
	case KindDecibel:
		return value.DivScalar(10).Exp(10).MulScalar(t.p0)
	}
	panic(fmt.Sprintf("transform: unknown transformation kind %d", int(t.kind)))
}

// FromBase converts a canonical base value back to the unit's native
// representation. It exactly inverts ToBase up to floating rounding.
func FromBase[T Magnitude[T]](t Transformation, value T) T {
	switch t.kind {
	case KindIdentity:
		return value
	case KindLinear:
		return value.SubScalar(t.offset).DivScalar(t.scale)
	case KindDecibel:
		return value.DivScalar(t.p0).Log(10).MulScalar(10)
	}
	panic(fmt.Sprintf("transform: unknown transformation kind %d", int(t.kind)))
}
