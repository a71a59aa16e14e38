package polyhedron_test

import (
	"testing"

	"github.com/katalvlaran/polyaffine/imatrix"
	"github.com/katalvlaran/polyaffine/interval"
	"github.com/katalvlaran/polyaffine/mpoly"
	"github.com/katalvlaran/polyaffine/polyhedron"
	"github.com/stretchr/testify/require"
)

// newIntegerCols builds an Integer polyhedron from column vectors (one
// []int64 per constraint, outer length == number of constraints) plus
// the matching rhs vector.
func newIntegerCols(t *testing.T, numVar int, cols [][]int64, b []int64) *polyhedron.Integer {
	t.Helper()
	a, err := imatrix.New(numVar, len(cols))
	require.NoError(t, err)
	for c, col := range cols {
		copy(a.GetCol(c), col)
	}
	p, err := polyhedron.NewInteger(a, b)
	require.NoError(t, err)
	return p
}

func TestPruneBoundsDropsParallelRedundant(t *testing.T) {
	// x <= 10, x <= 20, -x <= 0  (i.e. x >= 0): x <= 20 is redundant.
	p := newIntegerCols(t, 1, [][]int64{{1}, {1}, {-1}}, []int64{10, 20, 0})
	p.PruneBounds()
	require.Equal(t, 2, p.NumConstraints())
	for c := 0; c < p.NumConstraints(); c++ {
		col := p.A.GetCol(c)
		if col[0] == 1 {
			require.EqualValues(t, 10, p.B[c])
		}
	}
}

func TestPruneBoundsDropsGeneralRedundant(t *testing.T) {
	// x <= 5, y <= 5, x+y <= 10: the third constraint is not parallel
	// to either of the first two, but is implied by their sum — only
	// provable via the auxiliary-difference-variable elimination path.
	p := newIntegerCols(t, 2, [][]int64{{1, 0}, {0, 1}, {1, 1}}, []int64{5, 5, 10})
	p.PruneBounds()
	require.Equal(t, 2, p.NumConstraints())
	for c := 0; c < p.NumConstraints(); c++ {
		col := p.A.GetCol(c)
		require.True(t, col[0] == 1 && col[1] == 0 || col[0] == 0 && col[1] == 1)
	}
}

func TestPruneBoundsKeepsGenuineNonParallelConstraint(t *testing.T) {
	// x <= 5, y <= 5, x+y <= 3: x+y <= 3 is strictly tighter (x=5,y=5
	// violates it) and neither x <= 5 nor y <= 5 follows from the
	// other two, so the general redundancy pass must leave all three.
	p := newIntegerCols(t, 2, [][]int64{{1, 0}, {0, 1}, {1, 1}}, []int64{5, 5, 3})
	p.PruneBounds()
	require.Equal(t, 3, p.NumConstraints())
}

func TestKnownSatisfied(t *testing.T) {
	// x <= 10, x >= 0
	p := newIntegerCols(t, 1, [][]int64{{1}, {-1}}, []int64{10, 0})
	require.True(t, p.KnownSatisfied([]int64{5}))
	require.True(t, p.KnownSatisfied([]int64{10}))
	require.False(t, p.KnownSatisfied([]int64{11}))
	require.False(t, p.KnownSatisfied([]int64{-1}))
}

func TestIsEmptyFeasible(t *testing.T) {
	// 0 <= x <= 10
	p := newIntegerCols(t, 1, [][]int64{{1}, {-1}}, []int64{10, 0})
	require.False(t, p.IsEmpty())
}

func TestIsEmptyInfeasible(t *testing.T) {
	// x <= 0 and x >= 1 (i.e. -x <= -1): no integer x satisfies both.
	p := newIntegerCols(t, 1, [][]int64{{1}, {-1}}, []int64{0, -1})
	require.True(t, p.IsEmpty())
}

func TestRemoveVariableFourierMotzkin(t *testing.T) {
	// Two variables x, y: x <= y (x - y <= 0), y <= 10, x >= 0.
	// Removing x should leave: y <= 10 (carried), and the cross-pair
	// from (x-y<=0, -x<=0) collapsing to -y <= 0, i.e. y >= 0.
	p := newIntegerCols(t, 2,
		[][]int64{{1, -1}, {0, 1}, {-1, 0}},
		[]int64{0, 10, 0})
	err := p.RemoveVariable(0)
	require.NoError(t, err)
	require.Equal(t, 1, p.NumVar())
	require.True(t, p.KnownSatisfied([]int64{5}))
	require.True(t, p.KnownSatisfied([]int64{10}))
	require.False(t, p.KnownSatisfied([]int64{11}))
	require.False(t, p.KnownSatisfied([]int64{-1}))
}

func TestRemoveVariableOutOfRange(t *testing.T) {
	p := newIntegerCols(t, 1, [][]int64{{1}}, []int64{10})
	require.ErrorIs(t, p.RemoveVariable(1), polyhedron.ErrVariableOutOfRange)
	require.ErrorIs(t, p.RemoveVariable(-1), polyhedron.ErrVariableOutOfRange)
}

func TestNewDimensionMismatch(t *testing.T) {
	a, err := imatrix.New(1, 2)
	require.NoError(t, err)
	_, err = polyhedron.NewInteger(a, []int64{1})
	require.ErrorIs(t, err, polyhedron.ErrDimensionMismatch)
}

func TestSymbolicKnownSatisfied(t *testing.T) {
	// x <= n (n a nonnegative symbolic parameter), and -x <= 0 (x >= 0).
	n := mpoly.FromTerm(1, mpoly.NewMonomial(1))
	a, err := imatrix.New(1, 2)
	require.NoError(t, err)
	copy(a.GetCol(0), []int64{1})  // x <= n
	copy(a.GetCol(1), []int64{-1}) // -x <= 0
	b := []mpoly.Polynomial{n, mpoly.Constant(0)}

	p, set, err := polyhedron.NewSymbolic(a, b)
	require.NoError(t, err)
	set.PushDelta(0, 1, interval.NonNegative())

	require.True(t, p.KnownSatisfied([]int64{0}))
}

func TestSymbolicDimensionMismatch(t *testing.T) {
	a, err := imatrix.New(1, 2)
	require.NoError(t, err)
	_, _, err = polyhedron.NewSymbolic(a, []mpoly.Polynomial{mpoly.Constant(0)})
	require.ErrorIs(t, err, polyhedron.ErrDimensionMismatch)
}

func TestCloneIsIndependent(t *testing.T) {
	p := newIntegerCols(t, 1, [][]int64{{1}}, []int64{10})
	clone := p.Clone()
	clone.B[0] = 99
	require.EqualValues(t, 10, p.B[0])
	require.EqualValues(t, 99, clone.B[0])
}
