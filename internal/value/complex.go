package value

import (
	"fmt"
	"math"
	"strconv"
)

// Complex is the binary-float complex backend. It is the only variant
// carrying the full trigonometric and hyperbolic families; those are
// derived from exp/ln/mul/div/sqrt by algebraic identity so that their
// precision characteristics follow from the same small set of
// primitives.
type Complex struct {
	re, im float64
}

// NewComplex builds a binary-float complex value.
func NewComplex(re, im float64) Complex { return Complex{re, im} }

// Components reports the real and imaginary parts.
func (z Complex) Components() (re, im float64) { return z.re, z.im }

func (z Complex) pair() (re, im float64) { return z.re, z.im }

func (z Complex) Add(n Number) Number {
	b := mustVariant[Complex](n, "add")
	return Complex{z.re + b.re, z.im + b.im}
}

func (z Complex) Sub(n Number) Number {
	b := mustVariant[Complex](n, "sub")
	return Complex{z.re - b.re, z.im - b.im}
}

func (z Complex) Mul(n Number) Number {
	b := mustVariant[Complex](n, "mul")
	return Complex{
		z.re*b.re - z.im*b.im,
		z.re*b.im + z.im*b.re,
	}
}

func (z Complex) Neg() Number  { return Complex{-z.re, -z.im} }
func (z Complex) Conj() Number { return Complex{z.re, -z.im} }

func (z Complex) normSquared() float64 { return z.re*z.re + z.im*z.im }

func (z Complex) Inv() (Number, error) {
	ns := z.normSquared()
	if ns == 0 {
		return z, ErrDivideByZero
	}
	return Complex{z.re / ns, -z.im / ns}, nil
}

func (z Complex) Div(n Number) (Number, error) {
	b := mustVariant[Complex](n, "div")
	inv, err := b.Inv()
	if err != nil {
		return z, err
	}
	return z.Mul(inv), nil
}

func (z Complex) Abs() Number     { return Complex{math.Sqrt(z.normSquared()), 0} }
func (z Complex) Real() Number    { return Complex{z.re, 0} }
func (z Complex) Imag() Number    { return Complex{z.im, 0} }
func (z Complex) Arg() Number     { return Complex{math.Atan2(z.im, z.re), 0} }
func (z Complex) Scalar() float64 { return z.re }
func (z Complex) IsZero() bool    { return z.re == 0 && z.im == 0 }

func (z Complex) Clamp(rel, abs float64) Number {
	if rel == 0 && abs == 0 {
		return z
	}
	if math.Round(math.Sqrt(z.normSquared())) == 0 {
		return z
	}
	return Complex{
		clampComponent(z.re, rel, abs),
		clampComponent(z.im, rel, abs),
	}
}

func (z Complex) Equal(n Number) bool {
	b, ok := n.(Complex)
	return ok && z.re == b.re && z.im == b.im
}

func (z Complex) String() string {
	re := strconv.FormatFloat(z.re, 'g', -1, 64)
	im := strconv.FormatFloat(z.im, 'g', -1, 64)
	if z.im >= 0 || math.IsNaN(z.im) {
		return fmt.Sprintf("(%s+%si)", re, im)
	}
	return fmt.Sprintf("(%s%si)", re, im)
}

// Exp is e^r (cos i, sin i).
func (z Complex) Exp() Number {
	m := math.Exp(z.re)
	return Complex{m * math.Cos(z.im), m * math.Sin(z.im)}
}

// Ln is (ln|z|, atan2(im, re)); the zero value has no logarithm.
func (z Complex) Ln() (Number, error) {
	if z.IsZero() {
		return z, ErrDivideByZero
	}
	return Complex{math.Log(math.Sqrt(z.normSquared())), math.Atan2(z.im, z.re)}, nil
}

// Sqrt uses the half-magnitude formula: the real part is
// sqrt((|z|+re)/2) and the imaginary part sqrt((|z|-re)/2) carrying the
// sign of im.
func (z Complex) Sqrt() (Number, error) {
	m := math.Sqrt(z.normSquared())
	re := math.Sqrt((m + z.re) / 2)
	im := math.Sqrt((m - z.re) / 2)
	if z.im < 0 {
		im = -im
	}
	return Complex{re, im}, nil
}

func (z Complex) Log10() (Number, error) {
	l, err := z.Ln()
	if err != nil {
		return z, err
	}
	n := l.(Complex)
	return Complex{n.re / math.Ln10, n.im / math.Ln10}, nil
}

var (
	complexI    = Complex{0, 1}
	complexNegI = Complex{0, -1}
	complexOne  = Complex{1, 0}
)

// Sin uses sin(a+bi) = sin(a)cosh(b) + i cos(a)sinh(b).
func (z Complex) Sin() Number {
	return Complex{
		math.Sin(z.re) * math.Cosh(z.im),
		math.Cos(z.re) * math.Sinh(z.im),
	}
}

// Cos is (e^{iz} + e^{-iz})/2.
func (z Complex) Cos() Number {
	iz := complexI.Mul(z).(Complex)
	sum := iz.Exp().(Complex).Add(iz.Neg().(Complex).Exp()).(Complex)
	return Complex{sum.re / 2, sum.im / 2}
}

// Tan is sin/cos.
func (z Complex) Tan() (Number, error) {
	r, err := z.Sin().(Complex).Div(z.Cos())
	if err != nil {
		return z, err
	}
	return r, nil
}

// sqrtOneMinusSquared is sqrt(1 - z²), shared by Asin and Acos.
func (z Complex) sqrtOneMinusSquared() Complex {
	w := complexOne.Sub(z.Mul(z)).(Complex)
	s, _ := w.Sqrt()
	return s.(Complex)
}

// Asin is -i ln(iz + sqrt(1-z²)).
func (z Complex) Asin() (Number, error) {
	w := complexI.Mul(z).(Complex).Add(z.sqrtOneMinusSquared())
	l, err := w.(Complex).Ln()
	if err != nil {
		return z, err
	}
	return complexNegI.Mul(l), nil
}

// Acos is -i ln(z + i sqrt(1-z²)).
func (z Complex) Acos() (Number, error) {
	w := z.Add(complexI.Mul(z.sqrtOneMinusSquared()).(Complex))
	l, err := w.(Complex).Ln()
	if err != nil {
		return z, err
	}
	return complexNegI.Mul(l), nil
}

// Atan is -i/2 ln((i-z)/(i+z)).
func (z Complex) Atan() (Number, error) {
	num := complexI.Sub(z).(Complex)
	den := complexI.Add(z).(Complex)
	q, err := num.Div(den)
	if err != nil {
		return z, err
	}
	l, err := q.(Complex).Ln()
	if err != nil {
		return z, err
	}
	h := complexNegI.Mul(l).(Complex)
	return Complex{h.re / 2, h.im / 2}, nil
}

// Sinh is (e^z - e^-z)/2.
func (z Complex) Sinh() Number {
	d := z.Exp().(Complex).Sub(z.Neg().(Complex).Exp()).(Complex)
	return Complex{d.re / 2, d.im / 2}
}

// Cosh is (e^z + e^-z)/2.
func (z Complex) Cosh() Number {
	s := z.Exp().(Complex).Add(z.Neg().(Complex).Exp()).(Complex)
	return Complex{s.re / 2, s.im / 2}
}

func (z Complex) Tanh() (Number, error) {
	r, err := z.Sinh().(Complex).Div(z.Cosh())
	if err != nil {
		return z, err
	}
	return r, nil
}

// Asinh is ln(z + sqrt(z²+1)).
func (z Complex) Asinh() (Number, error) {
	w := z.Mul(z).(Complex).Add(complexOne).(Complex)
	s, _ := w.Sqrt()
	l, err := z.Add(s).(Complex).Ln()
	if err != nil {
		return z, err
	}
	return l, nil
}

// Acosh is ln(z + sqrt(z²-1)).
func (z Complex) Acosh() (Number, error) {
	w := z.Mul(z).(Complex).Sub(complexOne).(Complex)
	s, _ := w.Sqrt()
	l, err := z.Add(s).(Complex).Ln()
	if err != nil {
		return z, err
	}
	return l, nil
}

// Atanh is ln((1+z)/(1-z))/2.
func (z Complex) Atanh() (Number, error) {
	num := complexOne.Add(z).(Complex)
	den := complexOne.Sub(z).(Complex)
	q, err := num.Div(den)
	if err != nil {
		return z, err
	}
	l, err := q.(Complex).Ln()
	if err != nil {
		return z, err
	}
	h := l.(Complex)
	return Complex{h.re / 2, h.im / 2}, nil
}

type complexes struct{}

// Complexes is the binary-float complex algebra.
var Complexes Algebra = complexes{}

func (complexes) Name() string { return "complex" }
func (complexes) Zero() Number { return Complex{} }
func (complexes) One() Number  { return complexOne }
func (complexes) I() Number    { return complexI }
func (complexes) Pi() Number   { return Complex{math.Pi, 0} }
func (complexes) E() Number    { return Complex{math.E, 0} }

func (complexes) Parse(lit string) (Number, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("complex literal %q: %w", lit, err)
	}
	return Complex{f, 0}, nil
}

func (complexes) FromFloat(f float64) Number { return Complex{f, 0} }
