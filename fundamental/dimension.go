package fundamental

import (
	"fmt"
	"strings"
)

// Exponent is the integer exponent type carried per axis.
type Exponent = int32

// Dimension is an exponent vector over the ten fundamental axes. It is a
// comparable value type: two dimensions are equal iff their vectors are
// equal. A Dimension is always canonical: if every non-count exponent is
// zero the count exponent is 1, otherwise it is 0.
type Dimension struct {
	powers [NumAxes]Exponent
}

// New builds a canonical Dimension from raw exponents. Whatever the caller
// supplies for the count axis, canonicalization decides its final value.
func New(powers [NumAxes]Exponent) Dimension {
	return canonicalize(powers)
}

func canonicalize(powers [NumAxes]Exponent) Dimension {
	allZero := true
	for i := 0; i < NumAxes-1; i++ {
		if powers[i] != 0 {
			allZero = false
			break
		}
	}
	var out [NumAxes]Exponent
	if allZero {
		out[NumAxes-1] = 1
	} else {
		copy(out[:NumAxes-1], powers[:NumAxes-1])
	}
	return Dimension{powers: out}
}

func fromAxis(a Axis) Dimension {
	var powers [NumAxes]Exponent
	powers[a.Index()] = 1
	return Dimension{powers: powers}
}

// Base dimensions, one per fundamental axis. Dimensionless aliases the
// count axis.
var (
	Mass              = fromAxis(AxisMass)
	Length            = fromAxis(AxisLength)
	Time              = fromAxis(AxisTime)
	Current           = fromAxis(AxisCurrent)
	Temperature       = fromAxis(AxisTemperature)
	AmountOfSubstance = fromAxis(AxisAmountOfSubstance)
	LuminousIntensity = fromAxis(AxisLuminousIntensity)
	Angle             = fromAxis(AxisAngle)
	Bit               = fromAxis(AxisBit)
	Count             = fromAxis(AxisCount)

	Dimensionless = Count
)

// FromAxis returns the base dimension of a single fundamental axis.
func FromAxis(a Axis) Dimension {
	if a < 0 || int(a) >= NumAxes {
		panic(fmt.Sprintf("fundamental: invalid axis %d", int(a)))
	}
	return fromAxis(a)
}

// Exponents returns the canonical exponent vector.
func (d Dimension) Exponents() [NumAxes]Exponent {
	return d.powers
}

// Mul returns the elementwise sum of exponents, canonicalized.
func (d Dimension) Mul(other Dimension) Dimension {
	powers := d.powers
	for i := range powers {
		powers[i] += other.powers[i]
	}
	return canonicalize(powers)
}

// Div returns the elementwise difference of exponents, canonicalized.
func (d Dimension) Div(other Dimension) Dimension {
	powers := d.powers
	for i := range powers {
		powers[i] -= other.powers[i]
	}
	return canonicalize(powers)
}

// Pow scales every exponent by n, canonicalized. Pow(0) is Dimensionless.
func (d Dimension) Pow(n int64) Dimension {
	powers := d.powers
	for i := range powers {
		powers[i] *= Exponent(n)
	}
	return canonicalize(powers)
}

// String renders the non-zero axes in index order, e.g.
// "mass * [length]^2 * [time]^-2". The dimensionless vector renders as
// "count".
func (d Dimension) String() string {
	var displayed []string
	for i, power := range d.powers {
		switch {
		case power == 1:
			displayed = append(displayed, Axis(i).String())
		case power != 0:
			displayed = append(displayed, fmt.Sprintf("[%s]^%d", Axis(i), power))
		}
	}
	return strings.Join(displayed, " * ")
}
