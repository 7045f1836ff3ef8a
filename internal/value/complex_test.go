package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(re, im float64) Complex { return NewComplex(re, im) }

func assertClose(t *testing.T, want, got Number, msgAndArgs ...any) {
	t.Helper()
	w, ok := want.(Complex)
	require.True(t, ok, "want a Complex")
	g, ok := got.(Complex)
	require.True(t, ok, "got a Complex")
	assert.InDelta(t, w.re, g.re, 1e-12, msgAndArgs...)
	assert.InDelta(t, w.im, g.im, 1e-12, msgAndArgs...)
}

func TestComplexField(t *testing.T) {
	x := c(1, 1)
	y := c(2, 3)

	assert.Equal(t, c(3, 4), x.Add(y))
	assert.Equal(t, c(-1, -2), x.Sub(y))
	assert.Equal(t, c(-1, 5), x.Mul(y))
	assert.Equal(t, c(2, -3), y.Conj())
	assert.Equal(t, c(-2, -3), y.Neg())

	inv, err := x.Inv()
	require.NoError(t, err)
	assertClose(t, c(0.5, -0.5), inv)

	q, err := y.Div(x)
	require.NoError(t, err)
	assertClose(t, c(2.5, 0.5), q)
}

func TestComplexImaginaryUnit(t *testing.T) {
	i := Complexes.I()
	assert.Equal(t, c(-1, 0), i.Mul(i), "i*i must be exactly -1")
}

func TestComplexEulerIdentity(t *testing.T) {
	i := Complexes.I()
	pi := Complexes.Pi()

	e, err := Exp(i.Mul(pi))
	require.NoError(t, err)
	z := e.Add(Complexes.One())
	assert.InDelta(t, 0, z.(Complex).re, 1e-12)
	assert.InDelta(t, 0, z.(Complex).im, 1e-12)
}

func TestComplexDivideByZero(t *testing.T) {
	zero := c(0, 0)
	x := c(3, 4)

	got, err := x.Div(zero)
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Equal(t, x, got, "dividend must come back unchanged")

	got, err = zero.Inv()
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Equal(t, zero, got)

	_, err = zero.Ln()
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestComplexExpLnRoundTrip(t *testing.T) {
	for _, z := range []Complex{c(1, 0), c(0.5, -2), c(-3, 1), c(2, 3)} {
		l, err := z.Ln()
		require.NoError(t, err)
		assertClose(t, z, l.(Complex).Exp().(Complex), "exp(ln(%v))", z)
	}
}

func TestComplexSqrt(t *testing.T) {
	s, err := c(16, 0).Sqrt()
	require.NoError(t, err)
	assert.Equal(t, c(4, 0), s)

	s, err = c(-1, 0).Sqrt()
	require.NoError(t, err)
	assertClose(t, c(0, 1), s, "sqrt(-1) is i")

	// the root's square comes back to the operand, lower half plane too
	for _, z := range []Complex{c(3, 4), c(1, -1), c(-2, -5)} {
		s, err := z.Sqrt()
		require.NoError(t, err)
		assertClose(t, z, s.Mul(s), "sqrt(%v) squared", z)
	}
}

func TestComplexTrig(t *testing.T) {
	zero := c(0, 0)

	assertClose(t, zero, zero.Sin())
	assertClose(t, c(1, 0), zero.Cos())

	tan, err := zero.Tan()
	require.NoError(t, err)
	assertClose(t, zero, tan)

	asin, err := zero.Asin()
	require.NoError(t, err)
	assertClose(t, zero, asin)

	acos, err := zero.Acos()
	require.NoError(t, err)
	assertClose(t, c(math.Pi/2, 0), acos)

	atan, err := c(1, 0).Atan()
	require.NoError(t, err)
	assertClose(t, c(math.Pi/4, 0), atan)

	// sin² + cos² = 1 off the real line as well
	z := c(0.7, -0.3)
	s, cz := z.Sin().(Complex), z.Cos().(Complex)
	assertClose(t, c(1, 0), s.Mul(s).Add(cz.Mul(cz)))
}

func TestComplexArcFunctionsInvert(t *testing.T) {
	for _, z := range []Complex{c(0.3, 0.2), c(-0.5, 0.1), c(0.2, -0.4)} {
		a, err := z.Asin()
		require.NoError(t, err)
		assertClose(t, z, a.(Complex).Sin(), "sin(arcsin(%v))", z)

		a, err = z.Acos()
		require.NoError(t, err)
		assertClose(t, z, a.(Complex).Cos(), "cos(arccos(%v))", z)

		a, err = z.Atan()
		require.NoError(t, err)
		tan, err := a.(Complex).Tan()
		require.NoError(t, err)
		assertClose(t, z, tan, "tan(arctan(%v))", z)
	}
}

func TestComplexHyperbolic(t *testing.T) {
	zero := c(0, 0)
	assertClose(t, zero, zero.Sinh())
	assertClose(t, c(1, 0), zero.Cosh())

	z := c(0.4, 0.9)
	s, ch := z.Sinh().(Complex), z.Cosh().(Complex)
	assertClose(t, c(1, 0), ch.Mul(ch).Sub(s.Mul(s)), "cosh² - sinh² = 1")

	a, err := z.Asinh()
	require.NoError(t, err)
	assertClose(t, z, a.(Complex).Sinh())
}

func TestComplexProjections(t *testing.T) {
	z := c(3, -4)
	assert.Equal(t, c(3, 0), z.Real())
	assert.Equal(t, c(-4, 0), z.Imag())
	assert.Equal(t, c(5, 0), z.Abs())
	assert.InDelta(t, math.Atan2(-4, 3), z.Arg().(Complex).re, 1e-15)
	assert.Equal(t, 3.0, z.Scalar())
}

func TestComplexLog10(t *testing.T) {
	l, err := c(1000, 0).Log10()
	require.NoError(t, err)
	assertClose(t, c(3, 0), l)
}

func TestComplexClamp(t *testing.T) {
	const tol = 1e-10

	near := c(3+1e-12, -1e-12)
	assert.True(t, c(3, 0).Equal(near.Clamp(tol, tol)))

	far := c(2.5, 0.5)
	assert.Equal(t, far, far.Clamp(tol, tol), "non-near values stay put")

	// values rounding to zero overall are exempt
	tiny := c(1e-13, 1e-13)
	assert.Equal(t, tiny, tiny.Clamp(tol, tol))

	// disabled tolerances clamp nothing
	assert.Equal(t, near, near.Clamp(0, 0))
}

func TestComplexClampIdempotent(t *testing.T) {
	const tol = 1e-10
	for _, z := range []Complex{
		c(3+1e-12, -1e-12),
		c(2.5, 0.5),
		c(0, 0),
		c(-1+1e-11, 1),
		c(1e-13, 1e-13),
	} {
		once := z.Clamp(tol, tol)
		assert.Equal(t, once, once.Clamp(tol, tol), "clamp(clamp(%v))", z)
	}
}

func TestComplexParse(t *testing.T) {
	n, err := Complexes.Parse("-1.5e2")
	require.NoError(t, err)
	assert.Equal(t, c(-150, 0), n)

	_, err = Complexes.Parse("bogus")
	assert.Error(t, err)
}

func TestAlgebraLookup(t *testing.T) {
	for _, name := range []string{"real", "complex", "decimal", "quaternion", "octonion"} {
		a, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, a.Name())
	}
	_, err := Lookup("sedenion")
	assert.Error(t, err)
}
