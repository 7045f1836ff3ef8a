package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealArithmetic(t *testing.T) {
	assert.Equal(t, Real(5), Real(2).Add(Real(3)))
	assert.Equal(t, Real(2), Real(5).Sub(Real(3)))
	assert.Equal(t, Real(6), Real(2).Mul(Real(3)))
	assert.Equal(t, Real(-2), Real(2).Neg())
	assert.Equal(t, Real(2), Real(2).Conj(), "conj is the identity on reals")

	q, err := Real(6).Div(Real(3))
	require.NoError(t, err)
	assert.Equal(t, Real(2), q)

	got, err := Real(6).Div(Real(0))
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Equal(t, Real(6), got)
}

func TestRealDomainErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		op   func(Real) (Number, error)
		arg  Real
		want error
	}{
		{"ln of zero", Real.Ln, 0, ErrDivideByZero},
		{"ln of negative", Real.Ln, -1, ErrUndefined},
		{"sqrt of negative", Real.Sqrt, -4, ErrUndefined},
		{"arcsin beyond 1", Real.Asin, 2, ErrUndefined},
		{"arccos beyond 1", Real.Acos, -2, ErrUndefined},
		{"acosh below 1", Real.Acosh, 0, ErrUndefined},
		{"atanh at 1", Real.Atanh, 1, ErrUndefined},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(tc.arg)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.arg, got, "faulting operand comes back unchanged")
		})
	}
}

func TestRealExponential(t *testing.T) {
	assert.Equal(t, Real(1), Real(0).Exp())

	l, err := Real(math.E).Ln()
	require.NoError(t, err)
	assert.InDelta(t, 1, l.Scalar(), 1e-15)

	s, err := Real(16).Sqrt()
	require.NoError(t, err)
	assert.Equal(t, Real(4), s)

	lg, err := Real(1000).Log10()
	require.NoError(t, err)
	assert.InDelta(t, 3, lg.Scalar(), 1e-12)
}

func TestRealTrig(t *testing.T) {
	assert.Equal(t, Real(0), Real(0).Sin())
	assert.Equal(t, Real(1), Real(0).Cos())

	a, err := Real(1).Atan()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, a.Scalar(), 1e-15)

	a, err = Real(0.5).Asin()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/6, a.Scalar(), 1e-15)
}

func TestRealAlgebraHasNoImaginaryUnit(t *testing.T) {
	assert.Nil(t, Reals.I())

	got, err := Imag(Real(2))
	assert.ErrorIs(t, err, ErrUndefined)
	assert.Equal(t, Real(2), got)
}

func TestRealClamp(t *testing.T) {
	const tol = 1e-10
	assert.Equal(t, Real(3), Real(3+1e-12).Clamp(tol, tol))
	assert.Equal(t, Real(2.5), Real(2.5).Clamp(tol, tol))
	assert.Equal(t, Real(1e-13), Real(1e-13).Clamp(tol, tol), "values rounding to zero are exempt")
}
