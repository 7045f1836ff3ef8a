package value

import (
	"fmt"
	"math"
	"strconv"
)

// Real is the binary-float real backend, the degenerate one-component
// member of the family. Operations whose real result would leave the
// real line (ln of a negative, sqrt of a negative, arcsin beyond the
// unit interval) report ErrUndefined instead of producing NaN.
type Real float64

func (r Real) Add(n Number) Number { return r + mustVariant[Real](n, "add") }
func (r Real) Sub(n Number) Number { return r - mustVariant[Real](n, "sub") }
func (r Real) Mul(n Number) Number { return r * mustVariant[Real](n, "mul") }
func (r Real) Neg() Number         { return -r }
func (r Real) Conj() Number        { return r }

func (r Real) Inv() (Number, error) {
	if r == 0 {
		return r, ErrDivideByZero
	}
	return 1 / r, nil
}

func (r Real) Div(n Number) (Number, error) {
	b := mustVariant[Real](n, "div")
	if b == 0 {
		return r, ErrDivideByZero
	}
	return r / b, nil
}

func (r Real) Abs() Number     { return Real(math.Abs(float64(r))) }
func (r Real) Real() Number    { return r }
func (r Real) Scalar() float64 { return float64(r) }
func (r Real) IsZero() bool    { return r == 0 }

func (r Real) pair() (re, im float64) { return float64(r), 0 }

func (r Real) Clamp(rel, abs float64) Number {
	if rel == 0 && abs == 0 {
		return r
	}
	if math.Round(math.Abs(float64(r))) == 0 {
		return r
	}
	return Real(clampComponent(float64(r), rel, abs))
}

func (r Real) Equal(n Number) bool {
	b, ok := n.(Real)
	return ok && r == b
}

func (r Real) String() string { return strconv.FormatFloat(float64(r), 'g', -1, 64) }

func (r Real) Exp() Number { return Real(math.Exp(float64(r))) }

func (r Real) Ln() (Number, error) {
	switch {
	case r == 0:
		return r, ErrDivideByZero
	case r < 0:
		return r, ErrUndefined
	}
	return Real(math.Log(float64(r))), nil
}

func (r Real) Sqrt() (Number, error) {
	if r < 0 {
		return r, ErrUndefined
	}
	return Real(math.Sqrt(float64(r))), nil
}

func (r Real) Log10() (Number, error) {
	l, err := r.Ln()
	if err != nil {
		return r, err
	}
	return l.(Real) / Real(math.Ln10), nil
}

func (r Real) Sin() Number { return Real(math.Sin(float64(r))) }
func (r Real) Cos() Number { return Real(math.Cos(float64(r))) }

func (r Real) Tan() (Number, error) {
	return Real(math.Tan(float64(r))), nil
}

func (r Real) Asin() (Number, error) {
	if r < -1 || r > 1 {
		return r, ErrUndefined
	}
	return Real(math.Asin(float64(r))), nil
}

func (r Real) Acos() (Number, error) {
	if r < -1 || r > 1 {
		return r, ErrUndefined
	}
	return Real(math.Acos(float64(r))), nil
}

func (r Real) Atan() (Number, error) {
	return Real(math.Atan(float64(r))), nil
}

func (r Real) Sinh() Number { return Real(math.Sinh(float64(r))) }
func (r Real) Cosh() Number { return Real(math.Cosh(float64(r))) }

func (r Real) Tanh() (Number, error) {
	return Real(math.Tanh(float64(r))), nil
}

func (r Real) Asinh() (Number, error) {
	return Real(math.Asinh(float64(r))), nil
}

func (r Real) Acosh() (Number, error) {
	if r < 1 {
		return r, ErrUndefined
	}
	return Real(math.Acosh(float64(r))), nil
}

func (r Real) Atanh() (Number, error) {
	if r <= -1 || r >= 1 {
		return r, ErrUndefined
	}
	return Real(math.Atanh(float64(r))), nil
}

type reals struct{}

// Reals is the binary-float real algebra. It has no imaginary unit.
var Reals Algebra = reals{}

func (reals) Name() string { return "real" }
func (reals) Zero() Number { return Real(0) }
func (reals) One() Number  { return Real(1) }
func (reals) I() Number    { return nil }
func (reals) Pi() Number   { return Real(math.Pi) }
func (reals) E() Number    { return Real(math.E) }

func (reals) Parse(lit string) (Number, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("real literal %q: %w", lit, err)
	}
	return Real(f), nil
}

func (reals) FromFloat(f float64) Number { return Real(f) }
