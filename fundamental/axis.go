// Package fundamental defines the ten fundamental axes of the dimensional
// space and the Dimension exponent vector built over them. Every physical
// dimension is a point in this space; the count axis is the dimensionless
// identity.
package fundamental

import "fmt"

// Axis is one of the ten fundamental dimensional axes.
type Axis int

// Axes in fixed index order. The order is load-bearing: it defines the
// layout of Dimension exponent vectors and the display order.
const (
	AxisMass Axis = iota
	AxisLength
	AxisTime
	AxisCurrent
	AxisTemperature
	AxisAmountOfSubstance
	AxisLuminousIntensity
	AxisAngle
	AxisBit
	AxisCount
)

// NumAxes is the number of fundamental axes.
const NumAxes = 10

var axisNames = [NumAxes]string{
	"mass",
	"length",
	"time",
	"current",
	"temperature",
	"amount of substance",
	"luminous intensity",
	"angle",
	"bit",
	"count",
}

// String returns the canonical axis name as used by the unit definition
// language.
func (a Axis) String() string {
	if a < 0 || int(a) >= NumAxes {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Index returns the axis position in the exponent vector.
func (a Axis) Index() int {
	return int(a)
}

// AxisFromIndex returns the axis at the given vector position.
func AxisFromIndex(n int) (Axis, error) {
	if n < 0 || n >= NumAxes {
		return 0, fmt.Errorf("invalid fundamental axis index %d", n)
	}
	return Axis(n), nil
}

// AxisFromName resolves a canonical axis name. Returns false for any string
// outside the fixed ten.
func AxisFromName(name string) (Axis, bool) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), true
		}
	}
	return 0, false
}

// Axes returns all axes in index order.
func Axes() [NumAxes]Axis {
	var out [NumAxes]Axis
	for i := range out {
		out[i] = Axis(i)
	}
	return out
}
