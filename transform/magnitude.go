package transform

import "math"

// Magnitude is the numeric capability a quantity payload must provide.
// The constraint is self-referential: T's operations return T, so the
// payload can be a scalar, a vector or an interval as long as every
// operation is defined elementwise.
type Magnitude[T any] interface {
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) T
	AddScalar(s float64) T
	SubScalar(s float64) T
	MulScalar(s float64) T
	DivScalar(s float64) T

	// Log returns the logarithm of the value in the given base.
	Log(base float64) T
	// Exp raises base to the value.
	Exp(base float64) T
	// Pow raises the value to the given power.
	Pow(power float64) T

	Float64() float64
}

// Float is the built-in double-precision magnitude.
type Float float64

func (f Float) Add(other Float) Float { return f + other }

func (f Float) Sub(other Float) Float { return f - other }

func (f Float) Mul(other Float) Float { return f * other }

func (f Float) Div(other Float) Float { return f / other }

func (f Float) AddScalar(s float64) Float { return f + Float(s) }

func (f Float) SubScalar(s float64) Float { return f - Float(s) }

func (f Float) MulScalar(s float64) Float { return f * Float(s) }

func (f Float) DivScalar(s float64) Float { return f / Float(s) }

func (f Float) Log(base float64) Float {
	return Float(math.Log(float64(f)) / math.Log(base))
}

func (f Float) Exp(base float64) Float {
	return Float(math.Pow(base, float64(f)))
}

func (f Float) Pow(power float64) Float {
	return Float(math.Pow(float64(f), power))
}

func (f Float) Float64() float64 { return float64(f) }
