package value

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// decimalPrec is the digit count used for decimal division and the
// Newton square root. Rational operations (add, sub, mul, conj) stay
// exact at whatever scale their operands carry.
const decimalPrec = 34

// Decimal is the arbitrary-precision decimal complex backend. The
// field operations and the norm are computed in decimal arithmetic;
// exp and ln go through a float64 transcendental kernel and re-wrap,
// so only their leading digits are trustworthy. The trigonometric
// family is deliberately absent from this backend.
type Decimal struct {
	re, im decimal.Decimal
}

// NewDecimal builds a decimal complex value from its two parts.
func NewDecimal(re, im decimal.Decimal) Decimal { return Decimal{re, im} }

// Components reports the real and imaginary parts.
func (z Decimal) Components() (re, im decimal.Decimal) { return z.re, z.im }

func (z Decimal) Add(n Number) Number {
	b := mustVariant[Decimal](n, "add")
	return Decimal{z.re.Add(b.re), z.im.Add(b.im)}
}

func (z Decimal) Sub(n Number) Number {
	b := mustVariant[Decimal](n, "sub")
	return Decimal{z.re.Sub(b.re), z.im.Sub(b.im)}
}

func (z Decimal) Mul(n Number) Number {
	b := mustVariant[Decimal](n, "mul")
	return Decimal{
		z.re.Mul(b.re).Sub(z.im.Mul(b.im)),
		z.re.Mul(b.im).Add(z.im.Mul(b.re)),
	}
}

func (z Decimal) Neg() Number  { return Decimal{z.re.Neg(), z.im.Neg()} }
func (z Decimal) Conj() Number { return Decimal{z.re, z.im.Neg()} }

func (z Decimal) normSquared() decimal.Decimal {
	return z.re.Mul(z.re).Add(z.im.Mul(z.im))
}

func (z Decimal) Inv() (Number, error) {
	ns := z.normSquared()
	if ns.IsZero() {
		return z, ErrDivideByZero
	}
	return Decimal{
		z.re.DivRound(ns, decimalPrec),
		z.im.Neg().DivRound(ns, decimalPrec),
	}, nil
}

func (z Decimal) Div(n Number) (Number, error) {
	b := mustVariant[Decimal](n, "div")
	inv, err := b.Inv()
	if err != nil {
		return z, err
	}
	return z.Mul(inv), nil
}

// sqrtDecimal computes a non-negative square root by Newton iteration
// at decimalPrec digits.
func sqrtDecimal(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	two := decimal.NewFromInt(2)
	guess := decimal.NewFromFloat(math.Sqrt(d.InexactFloat64()))
	if guess.IsZero() || guess.InexactFloat64() < 0 ||
		math.IsInf(guess.InexactFloat64(), 0) || math.IsNaN(guess.InexactFloat64()) {
		guess = decimal.NewFromInt(1)
	}
	// the float seed carries ~16 good digits; a handful of doublings
	// exceeds decimalPrec
	for i := 0; i < 6; i++ {
		guess = guess.Add(d.DivRound(guess, decimalPrec+4)).DivRound(two, decimalPrec+4)
	}
	return guess.Round(decimalPrec)
}

func (z Decimal) Abs() Number {
	return Decimal{re: sqrtDecimal(z.normSquared())}
}

func (z Decimal) Real() Number    { return Decimal{re: z.re} }
func (z Decimal) Imag() Number    { return Decimal{re: z.im} }
func (z Decimal) Scalar() float64 { return z.re.InexactFloat64() }

func (z Decimal) Arg() Number {
	return Decimal{re: decimal.NewFromFloat(math.Atan2(z.im.InexactFloat64(), z.re.InexactFloat64()))}
}

func (z Decimal) IsZero() bool { return z.re.IsZero() && z.im.IsZero() }

func clampDecimal(c decimal.Decimal, rel, abs decimal.Decimal) decimal.Decimal {
	r := c.Round(0)
	diff := c.Sub(r).Abs()
	allow := rel.Mul(decimal.Max(c.Abs(), r.Abs()))
	if allow.LessThan(abs) {
		allow = abs
	}
	if diff.LessThanOrEqual(allow) {
		return r
	}
	return c
}

func (z Decimal) Clamp(rel, abs float64) Number {
	if rel == 0 && abs == 0 {
		return z
	}
	if sqrtDecimal(z.normSquared()).Round(0).IsZero() {
		return z
	}
	dr := decimal.NewFromFloat(rel)
	da := decimal.NewFromFloat(abs)
	return Decimal{clampDecimal(z.re, dr, da), clampDecimal(z.im, dr, da)}
}

func (z Decimal) Equal(n Number) bool {
	b, ok := n.(Decimal)
	return ok && z.re.Equal(b.re) && z.im.Equal(b.im)
}

func (z Decimal) String() string {
	if z.im.IsNegative() {
		return fmt.Sprintf("(%s%si)", z.re, z.im)
	}
	return fmt.Sprintf("(%s+%si)", z.re, z.im)
}

// kernel converts through the float64 complex implementation for the
// transcendental operations.
func (z Decimal) kernel() Complex {
	return Complex{z.re.InexactFloat64(), z.im.InexactFloat64()}
}

func fromKernel(c Complex) Decimal {
	return Decimal{decimal.NewFromFloat(c.re), decimal.NewFromFloat(c.im)}
}

func (z Decimal) Exp() Number { return fromKernel(z.kernel().Exp().(Complex)) }

func (z Decimal) Ln() (Number, error) {
	if z.IsZero() {
		return z, ErrDivideByZero
	}
	l, err := z.kernel().Ln()
	if err != nil {
		return z, err
	}
	return fromKernel(l.(Complex)), nil
}

// Sqrt stays in decimal arithmetic via the half-magnitude formula, with
// the Newton root supplying the two real square roots.
func (z Decimal) Sqrt() (Number, error) {
	two := decimal.NewFromInt(2)
	m := sqrtDecimal(z.normSquared())
	re := sqrtDecimal(m.Add(z.re).DivRound(two, decimalPrec+4))
	im := sqrtDecimal(m.Sub(z.re).DivRound(two, decimalPrec+4))
	if z.im.IsNegative() {
		im = im.Neg()
	}
	return Decimal{re, im}, nil
}

func (z Decimal) Log10() (Number, error) {
	l, err := z.Ln()
	if err != nil {
		return z, err
	}
	ln10 := decimal.NewFromFloat(math.Ln10)
	d := l.(Decimal)
	return Decimal{d.re.DivRound(ln10, decimalPrec), d.im.DivRound(ln10, decimalPrec)}, nil
}

type decimals struct{}

// Decimals is the arbitrary-precision decimal complex algebra.
var Decimals Algebra = decimals{}

// decimalPi and decimalE carry more digits than the float constants.
var (
	decimalPi = decimal.RequireFromString("3.141592653589793238462643383279502884")
	decimalE  = decimal.RequireFromString("2.718281828459045235360287471352662498")
)

func (decimals) Name() string { return "decimal" }
func (decimals) Zero() Number { return Decimal{} }
func (decimals) One() Number  { return Decimal{re: decimal.NewFromInt(1)} }
func (decimals) I() Number    { return Decimal{im: decimal.NewFromInt(1)} }
func (decimals) Pi() Number   { return Decimal{re: decimalPi} }
func (decimals) E() Number    { return Decimal{re: decimalE} }

func (decimals) Parse(lit string) (Number, error) {
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return nil, fmt.Errorf("decimal literal %q: %w", lit, err)
	}
	return Decimal{re: d}, nil
}

func (decimals) FromFloat(f float64) Number {
	return Decimal{re: decimal.NewFromFloat(f)}
}
