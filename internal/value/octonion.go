package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Octonion is an eight-component Cayley number held as its two
// quaternion halves (e0..e3, e4..e7). Multiplication is the
// Cayley-Dickson product (a,b)(c,d) = (ac - d̄b, da + bc̄), which is
// non-associative; callers must not regroup octonion products.
type Octonion struct {
	a, b Quaternion
}

// NewOctonion builds an octonion from its eight components e0..e7.
func NewOctonion(e0, e1, e2, e3, e4, e5, e6, e7 float64) Octonion {
	return Octonion{
		a: Quaternion{e0, e1, e2, e3},
		b: Quaternion{e4, e5, e6, e7},
	}
}

// Components reports the eight components e0..e7.
func (o Octonion) Components() [8]float64 {
	return [8]float64{o.a.w, o.a.x, o.a.y, o.a.z, o.b.w, o.b.x, o.b.y, o.b.z}
}

// Unit returns the basis octonion e_i for i in 0..7.
func Unit(i int) Octonion {
	var c [8]float64
	c[i] = 1
	return NewOctonion(c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7])
}

func (o Octonion) Add(n Number) Number {
	p := mustVariant[Octonion](n, "add")
	return Octonion{o.a.Add(p.a).(Quaternion), o.b.Add(p.b).(Quaternion)}
}

func (o Octonion) Sub(n Number) Number {
	p := mustVariant[Octonion](n, "sub")
	return Octonion{o.a.Sub(p.a).(Quaternion), o.b.Sub(p.b).(Quaternion)}
}

func (o Octonion) Mul(n Number) Number {
	p := mustVariant[Octonion](n, "mul")
	a, b, c, d := o.a, o.b, p.a, p.b
	return Octonion{
		a: a.mul(c).Sub(d.conj().mul(b)).(Quaternion),
		b: d.mul(a).Add(b.mul(c.conj())).(Quaternion),
	}
}

func (o Octonion) Neg() Number {
	return Octonion{o.a.Neg().(Quaternion), o.b.Neg().(Quaternion)}
}

func (o Octonion) Conj() Number {
	return Octonion{o.a.conj(), o.b.Neg().(Quaternion)}
}

func (o Octonion) normSquared() float64 {
	return o.a.normSquared() + o.b.normSquared()
}

func (o Octonion) Inv() (Number, error) {
	ns := o.normSquared()
	if ns == 0 {
		return o, ErrDivideByZero
	}
	c := o.Conj().(Octonion)
	return Octonion{c.a.scale(1 / ns), c.b.scale(1 / ns)}, nil
}

func (o Octonion) Div(n Number) (Number, error) {
	p := mustVariant[Octonion](n, "div")
	inv, err := p.Inv()
	if err != nil {
		return o, err
	}
	return o.Mul(inv), nil
}

func (o Octonion) Abs() Number {
	return Octonion{a: Quaternion{w: math.Sqrt(o.normSquared())}}
}

func (o Octonion) Real() Number    { return Octonion{a: Quaternion{w: o.a.w}} }
func (o Octonion) Scalar() float64 { return o.a.w }
func (o Octonion) IsZero() bool    { return o == Octonion{} }

func (o Octonion) Clamp(rel, abs float64) Number {
	if rel == 0 && abs == 0 {
		return o
	}
	if math.Round(math.Sqrt(o.normSquared())) == 0 {
		return o
	}
	c := o.Components()
	for i := range c {
		c[i] = clampComponent(c[i], rel, abs)
	}
	return NewOctonion(c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7])
}

func (o Octonion) Equal(n Number) bool {
	p, ok := n.(Octonion)
	return ok && o == p
}

func (o Octonion) String() string {
	c := o.Components()
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(c[0], 'g', -1, 64))
	for i := 1; i < 8; i++ {
		if c[i] == 0 {
			continue
		}
		if c[i] > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.FormatFloat(c[i], 'g', -1, 64))
		sb.WriteString("e")
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}

type octonions struct{}

// Octonions is the binary-float octonion algebra. The imaginary unit
// is the first basis unit e1.
var Octonions Algebra = octonions{}

func (octonions) Name() string { return "octonion" }
func (octonions) Zero() Number { return Octonion{} }
func (octonions) One() Number  { return Octonion{a: Quaternion{w: 1}} }
func (octonions) I() Number    { return Octonion{a: Quaternion{x: 1}} }
func (octonions) Pi() Number   { return Octonion{a: Quaternion{w: math.Pi}} }
func (octonions) E() Number    { return Octonion{a: Quaternion{w: math.E}} }

func (octonions) Parse(lit string) (Number, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("octonion literal %q: %w", lit, err)
	}
	return Octonion{a: Quaternion{w: f}}, nil
}

func (octonions) FromFloat(f float64) Number { return Octonion{a: Quaternion{w: f}} }
