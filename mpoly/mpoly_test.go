package mpoly_test

import (
	"testing"

	"github.com/katalvlaran/polyaffine/mpoly"
	"github.com/stretchr/testify/require"
)

func TestMonomialCanonicalForm(t *testing.T) {
	m := mpoly.NewMonomial(3, 1, 2)
	require.Equal(t, mpoly.Monomial{1, 2, 3}, m)
	require.True(t, m.Equal(mpoly.NewMonomial(1, 2, 3)))
	require.False(t, m.Equal(mpoly.NewMonomial(1, 2)))
}

func TestMonomialOne(t *testing.T) {
	require.True(t, mpoly.One().IsOne())
	require.True(t, mpoly.NewMonomial().IsOne())
	require.False(t, mpoly.NewMonomial(1).IsOne())
}

func TestMonomialMul(t *testing.T) {
	a := mpoly.NewMonomial(1, 2)
	b := mpoly.NewMonomial(1)
	got := a.Mul(b)
	require.Equal(t, mpoly.Monomial{1, 1, 2}, got)
}

func TestPolynomialZeroAndConstant(t *testing.T) {
	require.True(t, mpoly.Zero().IsZero())
	require.False(t, mpoly.Constant(1).IsZero())
	require.True(t, mpoly.Constant(0).IsZero())

	v, ok := mpoly.Constant(42).ConstValue()
	require.True(t, ok)
	require.Equal(t, int64(42), v)

	require.True(t, mpoly.Constant(1).IsOne())
}

func TestPolynomialAddMergesLikeTerms(t *testing.T) {
	m := mpoly.NewMonomial(1)
	p := mpoly.FromTerm(3, m)
	q := mpoly.FromTerm(-3, m)
	sum := p.Add(q)
	require.True(t, sum.IsZero())

	p2 := mpoly.FromTerm(2, m).Add(mpoly.FromTerm(5, m))
	require.Len(t, p2.Terms, 1)
	require.Equal(t, int64(7), p2.Terms[0].Coefficient)
}

func TestPolynomialNegAndSub(t *testing.T) {
	m := mpoly.NewMonomial(2)
	p := mpoly.FromTerm(5, m)
	require.True(t, p.Sub(p).IsZero())
	require.Equal(t, int64(-5), p.Neg().Terms[0].Coefficient)
}

func TestPolynomialScale(t *testing.T) {
	p := mpoly.Constant(4)
	require.True(t, p.Scale(0).IsZero())
	v, _ := p.Scale(3).ConstValue()
	require.Equal(t, int64(12), v)
}

func TestPolynomialEqual(t *testing.T) {
	m1 := mpoly.NewMonomial(1, 2)
	p := mpoly.FromTerm(1, m1).Add(mpoly.Constant(3))
	q := mpoly.Constant(3).Add(mpoly.FromTerm(1, m1))
	require.True(t, p.Equal(q))
}

func TestPolynomialAddConst(t *testing.T) {
	m := mpoly.NewMonomial(1)
	p := mpoly.FromTerm(1, m)
	q := p.AddConst(5)
	require.Len(t, q.Terms, 2)
	require.True(t, mpoly.Constant(-5).AddConst(5).IsZero())
}

func TestPolynomialConstValueFalseForMultiTerm(t *testing.T) {
	m := mpoly.NewMonomial(1)
	p := mpoly.FromTerm(1, m).Add(mpoly.Constant(1))
	_, ok := p.ConstValue()
	require.False(t, ok)
}
