// Package qkp_test - shared fixtures and oracles for the solver tests.
package qkp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qkp/qkp"
)

// seedDet is the deterministic seed for randomized property tests.
const seedDet = int64(42)

// fixture is one documented benchmark instance with its recorded answer.
type fixture struct {
	name     string
	inst     qkp.Instance
	selected []int
	profit   float64
}

// fixtures is the documented benchmark suite.
func fixtures() []fixture {
	return []fixture{
		{
			name: "basic",
			inst: qkp.Instance{
				Weights:  []int{3, 4, 5},
				Profits:  [][]float64{{10, 2, 3}, {2, 5, 4}, {3, 4, 7}},
				Capacity: 7,
			},
			selected: []int{0, 1}, profit: 17,
		},
		{
			name: "symmetric-moderate",
			inst: qkp.Instance{
				Weights:  []int{2, 3, 4},
				Profits:  [][]float64{{5, 3, 1}, {3, 8, 4}, {1, 4, 6}},
				Capacity: 6,
			},
			selected: []int{0, 1}, profit: 16,
		},
		{
			name: "diverse-weights",
			inst: qkp.Instance{
				Weights:  []int{2, 3, 4, 5},
				Profits:  [][]float64{{6, 2, 4, 1}, {2, 5, 3, 2}, {4, 3, 8, 5}, {1, 2, 5, 9}},
				Capacity: 10,
			},
			selected: []int{0, 1, 2}, profit: 28,
		},
		{
			name: "diagonal-only",
			inst: qkp.Instance{
				Weights:  []int{1, 3, 4, 2},
				Profits:  [][]float64{{7, 0, 0, 0}, {0, 8, 0, 0}, {0, 0, 9, 0}, {0, 0, 0, 10}},
				Capacity: 5,
			},
			selected: []int{1, 3}, profit: 18,
		},
		{
			name: "dense-quadratic",
			inst: qkp.Instance{
				Weights:  []int{3, 2, 4, 3},
				Profits:  [][]float64{{5, 2, 4, 1}, {2, 6, 3, 2}, {4, 3, 8, 5}, {1, 2, 5, 7}},
				Capacity: 9,
			},
			selected: []int{1, 2, 3}, profit: 31,
		},
		{
			name: "high-self-profit",
			inst: qkp.Instance{
				Weights:  []int{2, 3, 4, 1},
				Profits:  [][]float64{{15, 1, 2, 1}, {1, 20, 2, 1}, {2, 2, 25, 3}, {1, 1, 3, 10}},
				Capacity: 7,
			},
			selected: []int{0, 2, 3}, profit: 56,
		},
		{
			name: "complex-interactions",
			inst: qkp.Instance{
				Weights:  []int{3, 4, 2, 5},
				Profits:  [][]float64{{10, 5, 3, 7}, {5, 15, 8, 2}, {3, 8, 12, 6}, {7, 2, 6, 20}},
				Capacity: 10,
			},
			selected: []int{0, 2, 3}, profit: 58,
		},
		{
			name: "capacity-too-small",
			inst: qkp.Instance{
				Weights:  []int{5, 4, 6, 7},
				Profits:  [][]float64{{10, 2, 3, 4}, {2, 5, 4, 6}, {3, 4, 7, 1}, {4, 6, 1, 9}},
				Capacity: 2,
			},
			selected: []int{}, profit: 0,
		},
		{
			name: "unit-weights",
			inst: qkp.Instance{
				Weights: []int{1, 1, 1, 1, 1},
				Profits: [][]float64{
					{1, 2, 3, 4, 5},
					{2, 6, 7, 8, 9},
					{3, 7, 12, 13, 14},
					{4, 8, 13, 15, 16},
					{5, 9, 14, 16, 18},
				},
				Capacity: 3,
			},
			selected: []int{2, 3, 4}, profit: 88,
		},
		{
			name: "sparse-large",
			inst: qkp.Instance{
				Weights: []int{1, 3, 2, 4, 6, 5},
				Profits: [][]float64{
					{10, 5, 0, 0, 0, 0},
					{5, 15, 8, 0, 0, 0},
					{0, 8, 12, 6, 0, 0},
					{0, 0, 6, 20, 5, 0},
					{0, 0, 0, 5, 30, 10},
					{0, 0, 0, 0, 10, 25},
				},
				Capacity: 7,
			},
			selected: []int{0, 1, 2}, profit: 50,
		},
	}
}

// solver pairs a display name with a solver entry point.
type solver struct {
	name string
	run  func(qkp.Instance) (qkp.Solution, error)
}

// solvers lists the three algorithms in canonical order.
func solvers() []solver {
	return []solver{
		{"classical", qkp.ClassicalDP},
		{"interaction", qkp.InteractionDP},
		{"compact", qkp.CompactDP},
	}
}

// randomInstance builds a symmetric instance with integer-valued profits so
// that float sums are exact. Off-diagonal entries may be negative.
func randomInstance(rng *rand.Rand, n, capacity, maxW int) qkp.Instance {
	inst := qkp.Instance{
		Weights:  make([]int, n),
		Profits:  make([][]float64, n),
		Capacity: capacity,
	}
	var i, j int
	for i = 0; i < n; i++ {
		inst.Weights[i] = rng.Intn(maxW + 1)
		inst.Profits[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		inst.Profits[i][i] = float64(rng.Intn(13))
		for j = i + 1; j < n; j++ {
			v := float64(rng.Intn(16) - 3)
			inst.Profits[i][j] = v
			inst.Profits[j][i] = v
		}
	}

	return inst
}

// bruteForce enumerates every feasible subset (n ≤ 16) and returns the optimum.
func bruteForce(t *testing.T, inst qkp.Instance) float64 {
	t.Helper()
	n := inst.N()
	require.LessOrEqual(t, n, 16, "brute force oracle is exponential")

	var best float64
	for mask := 0; mask < 1<<n; mask++ {
		var (
			w   int
			sel []int
		)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += inst.Weights[i]
				sel = append(sel, i)
			}
		}
		if w > inst.Capacity {
			continue
		}
		v, err := qkp.Evaluate(inst, sel)
		require.NoError(t, err)
		if v > best {
			best = v
		}
	}

	return best
}
