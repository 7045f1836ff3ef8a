package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuaternionBasisTable(t *testing.T) {
	one := NewQuaternion(1, 0, 0, 0)
	i := NewQuaternion(0, 1, 0, 0)
	j := NewQuaternion(0, 0, 1, 0)
	k := NewQuaternion(0, 0, 0, 1)

	for _, tc := range []struct {
		name string
		a, b Quaternion
		want Number
	}{
		{"i*i", i, i, one.Neg()},
		{"j*j", j, j, one.Neg()},
		{"k*k", k, k, one.Neg()},
		{"i*j", i, j, k},
		{"j*i", j, i, k.Neg()},
		{"j*k", j, k, i},
		{"k*j", k, j, i.Neg()},
		{"k*i", k, i, j},
		{"i*k", i, k, j.Neg()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Mul(tc.b))
		})
	}
}

func TestQuaternionNonCommutative(t *testing.T) {
	a := NewQuaternion(1, 2, 3, 4)
	b := NewQuaternion(5, 6, 7, 8)
	assert.NotEqual(t, a.Mul(b), b.Mul(a))
}

func TestQuaternionInverse(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	inv, err := q.Inv()
	require.NoError(t, err)

	p := q.Mul(inv).(Quaternion)
	assert.InDelta(t, 1, p.w, 1e-15)
	assert.InDelta(t, 0, p.x, 1e-15)
	assert.InDelta(t, 0, p.y, 1e-15)
	assert.InDelta(t, 0, p.z, 1e-15)

	got, err := Quaternion{}.Inv()
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Equal(t, Quaternion{}, got)
}

func TestQuaternionConjNorm(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)
	// q multiplied by its conjugate is the squared norm, a pure scalar
	assert.Equal(t, Quaternion{w: 30}, q.Mul(q.Conj()))
	abs := q.Abs().(Quaternion)
	assert.InDelta(t, 30, abs.mul(abs).w, 1e-12)
}

func TestQuaternionUndefinedOperations(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4)

	got, err := Exp(q)
	assert.ErrorIs(t, err, ErrUndefined)
	assert.Equal(t, q, got)

	_, err = Sin(q)
	assert.ErrorIs(t, err, ErrUndefined)
	_, err = Arg(q)
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestQuaternionString(t *testing.T) {
	assert.Equal(t, "1+2i-3j+4k", NewQuaternion(1, 2, -3, 4).String())
	assert.Equal(t, "0", Quaternion{}.String())
}
