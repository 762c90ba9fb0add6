package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qkp/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestValidateSquare(t *testing.T) {
	assert.NoError(t, matrix.ValidateSquare(mustRows(t, [][]float64{{1}})))
	assert.ErrorIs(t, matrix.ValidateSquare(mustRows(t, [][]float64{{1, 2}})), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	assert.NoError(t, matrix.ValidateFinite(mustRows(t, [][]float64{{1, -2}, {-2, 0}})))
	assert.ErrorIs(t, matrix.ValidateFinite(mustRows(t, [][]float64{{1, math.NaN()}})), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFinite(mustRows(t, [][]float64{{math.Inf(-1)}})), matrix.ErrNaNInf)
}

// TestValidateSymmetric covers exact symmetry, tolerance and non-square input.
func TestValidateSymmetric(t *testing.T) {
	sym := mustRows(t, [][]float64{
		{10, 2, 3},
		{2, 5, 4},
		{3, 4, 7},
	})
	assert.NoError(t, matrix.ValidateSymmetric(sym, 0))

	skew := mustRows(t, [][]float64{{1, 2}, {2.5, 1}})
	assert.ErrorIs(t, matrix.ValidateSymmetric(skew, 0), matrix.ErrAsymmetry)
	assert.NoError(t, matrix.ValidateSymmetric(skew, 0.5), "difference within tol is accepted")
	assert.ErrorIs(t, matrix.ValidateSymmetric(skew, -1), matrix.ErrAsymmetry, "negative tol means exact")

	assert.ErrorIs(t, matrix.ValidateSymmetric(mustRows(t, [][]float64{{1, 2}}), 0), matrix.ErrNonSquare)
}
