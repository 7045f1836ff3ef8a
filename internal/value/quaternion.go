package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Quaternion is q = w + xi + yj + zk over binary floats. Multiplication
// follows i² = j² = k² = -1, ij = k, ji = -k, jk = i, kj = -i, ki = j,
// ik = -j and is non-commutative. The exponential family is not defined
// for quaternions in this engine.
type Quaternion struct {
	w, x, y, z float64
}

// NewQuaternion builds w + xi + yj + zk.
func NewQuaternion(w, x, y, z float64) Quaternion { return Quaternion{w, x, y, z} }

// Components reports (w, x, y, z).
func (q Quaternion) Components() (w, x, y, z float64) { return q.w, q.x, q.y, q.z }

func (q Quaternion) Add(n Number) Number {
	b := mustVariant[Quaternion](n, "add")
	return Quaternion{q.w + b.w, q.x + b.x, q.y + b.y, q.z + b.z}
}

func (q Quaternion) Sub(n Number) Number {
	b := mustVariant[Quaternion](n, "sub")
	return Quaternion{q.w - b.w, q.x - b.x, q.y - b.y, q.z - b.z}
}

func (q Quaternion) Mul(n Number) Number {
	b := mustVariant[Quaternion](n, "mul")
	return q.mul(b)
}

func (q Quaternion) mul(b Quaternion) Quaternion {
	return Quaternion{
		q.w*b.w - q.x*b.x - q.y*b.y - q.z*b.z,
		q.w*b.x + q.x*b.w + q.y*b.z - q.z*b.y,
		q.w*b.y - q.x*b.z + q.y*b.w + q.z*b.x,
		q.w*b.z + q.x*b.y - q.y*b.x + q.z*b.w,
	}
}

func (q Quaternion) Neg() Number  { return Quaternion{-q.w, -q.x, -q.y, -q.z} }
func (q Quaternion) Conj() Number { return q.conj() }

func (q Quaternion) conj() Quaternion { return Quaternion{q.w, -q.x, -q.y, -q.z} }

func (q Quaternion) normSquared() float64 {
	return q.w*q.w + q.x*q.x + q.y*q.y + q.z*q.z
}

func (q Quaternion) scale(f float64) Quaternion {
	return Quaternion{q.w * f, q.x * f, q.y * f, q.z * f}
}

func (q Quaternion) Inv() (Number, error) {
	ns := q.normSquared()
	if ns == 0 {
		return q, ErrDivideByZero
	}
	return q.conj().scale(1 / ns), nil
}

func (q Quaternion) Div(n Number) (Number, error) {
	b := mustVariant[Quaternion](n, "div")
	inv, err := b.Inv()
	if err != nil {
		return q, err
	}
	return q.Mul(inv), nil
}

func (q Quaternion) Abs() Number     { return Quaternion{w: math.Sqrt(q.normSquared())} }
func (q Quaternion) Real() Number    { return Quaternion{w: q.w} }
func (q Quaternion) Scalar() float64 { return q.w }
func (q Quaternion) IsZero() bool    { return q == Quaternion{} }

func (q Quaternion) Clamp(rel, abs float64) Number {
	if rel == 0 && abs == 0 {
		return q
	}
	if math.Round(math.Sqrt(q.normSquared())) == 0 {
		return q
	}
	return Quaternion{
		clampComponent(q.w, rel, abs),
		clampComponent(q.x, rel, abs),
		clampComponent(q.y, rel, abs),
		clampComponent(q.z, rel, abs),
	}
}

func (q Quaternion) Equal(n Number) bool {
	b, ok := n.(Quaternion)
	return ok && q == b
}

func (q Quaternion) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(q.w, 'g', -1, 64))
	for _, c := range []struct {
		v   float64
		sym string
	}{{q.x, "i"}, {q.y, "j"}, {q.z, "k"}} {
		if c.v == 0 {
			continue
		}
		if c.v > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.FormatFloat(c.v, 'g', -1, 64))
		sb.WriteString(c.sym)
	}
	return sb.String()
}

type quaternions struct{}

// Quaternions is the binary-float quaternion algebra.
var Quaternions Algebra = quaternions{}

func (quaternions) Name() string { return "quaternion" }
func (quaternions) Zero() Number { return Quaternion{} }
func (quaternions) One() Number  { return Quaternion{w: 1} }
func (quaternions) I() Number    { return Quaternion{x: 1} }
func (quaternions) Pi() Number   { return Quaternion{w: math.Pi} }
func (quaternions) E() Number    { return Quaternion{w: math.E} }

func (quaternions) Parse(lit string) (Number, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, fmt.Errorf("quaternion literal %q: %w", lit, err)
	}
	return Quaternion{w: f}, nil
}

func (quaternions) FromFloat(f float64) Number { return Quaternion{w: f} }
