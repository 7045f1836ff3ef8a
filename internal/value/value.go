// Package value implements the numeric algebras behind the calculator:
// reals, complex numbers (binary float and arbitrary-precision decimal),
// quaternions, and octonions. Every algebra satisfies the same Number
// contract; operations that only some algebras support (exponential,
// trigonometric, hyperbolic, scalar projections) are capability
// interfaces resolved per backend.
package value

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivideByZero signals an inverse or division whose operand has
	// exactly zero norm. The failing operation returns its receiver
	// unchanged alongside this error.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrUndefined signals an operation the active algebra does not
	// define (exp of a quaternion, arg of a real, ...).
	ErrUndefined = errors.New("operation undefined for this algebra")
)

// Number is the operation contract shared by every algebra variant.
// Implementations are immutable values; mixing variants in one binary
// operation is a programmer error and panics.
type Number interface {
	Add(Number) Number
	Sub(Number) Number
	Mul(Number) Number
	Neg() Number
	Conj() Number

	// Inv returns conj/norm², or the receiver unchanged with
	// ErrDivideByZero when norm² is exactly zero.
	Inv() (Number, error)
	// Div returns the receiver times the inverse of the argument, or
	// the receiver unchanged with ErrDivideByZero.
	Div(Number) (Number, error)

	// Abs is the norm, as a real-valued element of the same algebra.
	Abs() Number
	// Real is the scalar part, as an element of the same algebra.
	Real() Number
	// Scalar is the scalar part as a float64, for display and for the
	// eex exponent. Lossy for the decimal backend.
	Scalar() float64

	IsZero() bool

	// Clamp snaps each real component to the nearest integer when the
	// whole value does not round to zero and the component is within
	// both tolerances of that integer. Idempotent.
	Clamp(rel, abs float64) Number

	Equal(Number) bool
	String() string
}

// Exponential is satisfied by algebras defining exp, ln, sqrt, and log
// base ten: reals and both complex backends.
type Exponential interface {
	Exp() Number
	Ln() (Number, error)
	Sqrt() (Number, error)
	Log10() (Number, error)
}

// Trig is satisfied by the binary-float algebras only. The complex
// implementations are required to be derived from exp/ln/mul/div, not
// hand-coded per function.
type Trig interface {
	Sin() Number
	Cos() Number
	Tan() (Number, error)
	Asin() (Number, error)
	Acos() (Number, error)
	Atan() (Number, error)
}

// Hyperbolic is satisfied by the binary-float algebras only.
type Hyperbolic interface {
	Sinh() Number
	Cosh() Number
	Tanh() (Number, error)
	Asinh() (Number, error)
	Acosh() (Number, error)
	Atanh() (Number, error)
}

// Parts exposes the non-scalar projections of the planar algebras.
type Parts interface {
	Imag() Number
	Arg() Number
}

// Capability helpers. Each returns the operand unchanged with
// ErrUndefined when the active algebra lacks the operation, so callers
// can apply one uniform fault policy.

func Exp(n Number) (Number, error) {
	if e, ok := n.(Exponential); ok {
		return e.Exp(), nil
	}
	return n, ErrUndefined
}

func Ln(n Number) (Number, error) {
	if e, ok := n.(Exponential); ok {
		return e.Ln()
	}
	return n, ErrUndefined
}

func Sqrt(n Number) (Number, error) {
	if e, ok := n.(Exponential); ok {
		return e.Sqrt()
	}
	return n, ErrUndefined
}

func Log10(n Number) (Number, error) {
	if e, ok := n.(Exponential); ok {
		return e.Log10()
	}
	return n, ErrUndefined
}

func Sin(n Number) (Number, error) {
	if t, ok := n.(Trig); ok {
		return t.Sin(), nil
	}
	return n, ErrUndefined
}

func Cos(n Number) (Number, error) {
	if t, ok := n.(Trig); ok {
		return t.Cos(), nil
	}
	return n, ErrUndefined
}

func Tan(n Number) (Number, error) {
	if t, ok := n.(Trig); ok {
		return t.Tan()
	}
	return n, ErrUndefined
}

func Asin(n Number) (Number, error) {
	if t, ok := n.(Trig); ok {
		return t.Asin()
	}
	return n, ErrUndefined
}

func Acos(n Number) (Number, error) {
	if t, ok := n.(Trig); ok {
		return t.Acos()
	}
	return n, ErrUndefined
}

func Atan(n Number) (Number, error) {
	if t, ok := n.(Trig); ok {
		return t.Atan()
	}
	return n, ErrUndefined
}

func Sinh(n Number) (Number, error) {
	if h, ok := n.(Hyperbolic); ok {
		return h.Sinh(), nil
	}
	return n, ErrUndefined
}

func Cosh(n Number) (Number, error) {
	if h, ok := n.(Hyperbolic); ok {
		return h.Cosh(), nil
	}
	return n, ErrUndefined
}

func Tanh(n Number) (Number, error) {
	if h, ok := n.(Hyperbolic); ok {
		return h.Tanh()
	}
	return n, ErrUndefined
}

func Asinh(n Number) (Number, error) {
	if h, ok := n.(Hyperbolic); ok {
		return h.Asinh()
	}
	return n, ErrUndefined
}

func Acosh(n Number) (Number, error) {
	if h, ok := n.(Hyperbolic); ok {
		return h.Acosh()
	}
	return n, ErrUndefined
}

func Atanh(n Number) (Number, error) {
	if h, ok := n.(Hyperbolic); ok {
		return h.Atanh()
	}
	return n, ErrUndefined
}

func Imag(n Number) (Number, error) {
	if p, ok := n.(Parts); ok {
		return p.Imag(), nil
	}
	return n, ErrUndefined
}

func Arg(n Number) (Number, error) {
	if p, ok := n.(Parts); ok {
		return p.Arg(), nil
	}
	return n, ErrUndefined
}

// pairer is the two-float projection used by the stack snapshot format.
type pairer interface {
	pair() (re, im float64)
}

// Pair reports the value as an exact (re, im) float pair when the
// algebra admits one. Snapshots are only defined for such algebras.
func Pair(n Number) (re, im float64, ok bool) {
	p, ok := n.(pairer)
	if !ok {
		return 0, 0, false
	}
	re, im = p.pair()
	return re, im, true
}

// Algebra constructs values of one variant/backend combination. An
// engine holds exactly one Algebra for its lifetime.
type Algebra interface {
	Name() string
	Zero() Number
	One() Number
	// I is the imaginary unit, or nil when the algebra has none.
	I() Number
	Pi() Number
	E() Number
	// Parse builds a value from a plain numeric literal.
	Parse(lit string) (Number, error)
	FromFloat(f float64) Number
}

var algebras = map[string]Algebra{
	"real":       Reals,
	"complex":    Complexes,
	"decimal":    Decimals,
	"quaternion": Quaternions,
	"octonion":   Octonions,
}

// Lookup resolves an algebra by name: real, complex, decimal,
// quaternion, or octonion.
func Lookup(name string) (Algebra, error) {
	if a, ok := algebras[name]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("unknown algebra %q", name)
}

// isClose is the closeness test of the clamp step: within the relative
// tolerance scaled by the larger magnitude, or within the absolute
// tolerance.
func isClose(a, b, rel, abs float64) bool {
	return math.Abs(a-b) <= math.Max(rel*math.Max(math.Abs(a), math.Abs(b)), abs)
}

// clampComponent snaps one real component to its nearest integer when
// close enough.
func clampComponent(c, rel, abs float64) float64 {
	if r := math.Round(c); isClose(c, r, rel, abs) {
		return r
	}
	return c
}

func mustVariant[T Number](n Number, op string) T {
	t, ok := n.(T)
	if !ok {
		var want T
		panic(fmt.Sprintf("value: %s: mixed algebra variants (want %T, got %T)", op, want, n))
	}
	return t
}
