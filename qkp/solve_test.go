package qkp_test

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qkp/qkp"
)

// TestSolvers_DocumentedSuite checks all three algorithms against the recorded
// selection and profit of every documented instance.
func TestSolvers_DocumentedSuite(t *testing.T) {
	for _, f := range fixtures() {
		for _, s := range solvers() {
			t.Run(f.name+"/"+s.name, func(t *testing.T) {
				sol, err := s.run(f.inst)
				require.NoError(t, err)
				assert.Equal(t, f.selected, sol.Selected)
				assert.Equal(t, f.profit, sol.Profit)
				assert.NoError(t, qkp.Check(f.inst, sol))
			})
		}
	}
}

// TestSolvers_Boundaries covers zero capacity and the empty instance.
func TestSolvers_Boundaries(t *testing.T) {
	zeroCap := qkp.Instance{
		Weights:  []int{0, 1},
		Profits:  [][]float64{{4, 1}, {1, 3}},
		Capacity: 0,
	}
	for _, s := range solvers() {
		t.Run(s.name, func(t *testing.T) {
			sol, err := s.run(zeroCap)
			require.NoError(t, err)
			assert.Empty(t, sol.Selected)
			assert.NotNil(t, sol.Selected)
			assert.Equal(t, 0.0, sol.Profit)

			sol, err = s.run(qkp.Instance{Capacity: 10})
			require.NoError(t, err)
			assert.Empty(t, sol.Selected)
			assert.Equal(t, 0.0, sol.Profit)
		})
	}
}

// TestSolvers_OverweightItemNeverChosen: an item heavier than C is never selected.
func TestSolvers_OverweightItemNeverChosen(t *testing.T) {
	inst := qkp.Instance{
		Weights:  []int{9, 2, 2},
		Profits:  [][]float64{{100, 50, 50}, {50, 3, 1}, {50, 1, 4}},
		Capacity: 4,
	}
	for _, s := range solvers() {
		sol, err := s.run(inst)
		require.NoError(t, err, s.name)
		assert.Equal(t, []int{1, 2}, sol.Selected, s.name)
		assert.Equal(t, 8.0, sol.Profit, s.name)
	}
}

// TestSolvers_ZeroWeightItems: zero-weight items are admitted at most once.
func TestSolvers_ZeroWeightItems(t *testing.T) {
	inst := qkp.Instance{
		Weights:  []int{0, 0, 3},
		Profits:  [][]float64{{2, 1, 0}, {1, 3, 2}, {0, 2, 5}},
		Capacity: 3,
	}
	for _, s := range solvers() {
		sol, err := s.run(inst)
		require.NoError(t, err, s.name)
		assert.Equal(t, []int{0, 1, 2}, sol.Selected, s.name)
		assert.Equal(t, 2.0+3+5+1+2, sol.Profit, s.name)
	}
}

// TestSolvers_RandomProperties checks feasibility, objective consistency,
// monotonicity in capacity and the brute-force upper bound on random instances.
func TestSolvers_RandomProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for iter := 0; iter < 150; iter++ {
		inst := randomInstance(rng, rng.Intn(10), rng.Intn(26), 8)
		opt := bruteForce(t, inst)

		for _, s := range solvers() {
			sol, err := s.run(inst)
			require.NoError(t, err)
			require.LessOrEqual(t, sol.Weight(inst), inst.Capacity, "%s infeasible on %+v", s.name, inst)
			v, err := qkp.Evaluate(inst, sol.Selected)
			require.NoError(t, err)
			require.Equal(t, v, sol.Profit, "%s objective mismatch", s.name)
			require.LessOrEqual(t, sol.Profit, opt, "%s beats the optimum", s.name)
			require.GreaterOrEqual(t, sol.Profit, 0.0, "empty set is always available")

			bigger := inst
			bigger.Capacity += 1 + rng.Intn(4)
			more, err := s.run(bigger)
			require.NoError(t, err)
			require.GreaterOrEqual(t, more.Profit, sol.Profit, "%s not monotone in capacity", s.name)
		}
	}
}

// TestSolvers_HeuristicsAgree: Algorithms 2 and 3 share one recurrence and
// tie-break, so they return identical solutions.
func TestSolvers_HeuristicsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	for iter := 0; iter < 100; iter++ {
		inst := randomInstance(rng, 1+rng.Intn(14), rng.Intn(40), 9)
		a2, err := qkp.InteractionDP(inst)
		require.NoError(t, err)
		a3, err := qkp.CompactDP(inst)
		require.NoError(t, err)
		require.Equal(t, a2, a3)
	}
}

// TestSolve_Dispatch routes by Options.Algorithm and rejects unknown values.
func TestSolve_Dispatch(t *testing.T) {
	inst := fixtures()[0].inst
	for _, algo := range qkp.Algorithms() {
		sol, err := qkp.Solve(inst, qkp.Options{Algorithm: algo})
		require.NoError(t, err, algo.String())
		assert.Equal(t, 17.0, sol.Profit, algo.String())
	}

	_, err := qkp.Solve(inst, qkp.Options{Algorithm: qkp.Algorithm(99)})
	assert.ErrorIs(t, err, qkp.ErrUnsupportedAlgorithm)
}

func TestSolveContext_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := qkp.SolveContext(ctx, fixtures()[0].inst, qkp.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, qkp.Solution{}, sol)

	sol, err = qkp.SolveContext(context.Background(), fixtures()[0].inst, qkp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, sol.Selected)
}

// TestSolvers_SharedInstanceConcurrent solves one Instance from many goroutines;
// run with -race to confirm solvers never write to it.
func TestSolvers_SharedInstanceConcurrent(t *testing.T) {
	f := fixtures()[4]
	var wg sync.WaitGroup
	results := make([]qkp.Solution, 12)
	for k := range results {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			sol, err := qkp.Solve(f.inst, qkp.Options{Algorithm: qkp.Algorithms()[k%3]})
			if err == nil {
				results[k] = sol
			}
		}(k)
	}
	wg.Wait()

	for _, sol := range results {
		assert.Equal(t, f.selected, sol.Selected)
		assert.Equal(t, f.profit, sol.Profit)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range qkp.Algorithms() {
		got, err := qkp.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
	got, err := qkp.ParseAlgorithm(" Algo2 ")
	require.NoError(t, err)
	assert.Equal(t, qkp.InteractionAware, got)

	_, err = qkp.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, qkp.ErrUnsupportedAlgorithm)
	assert.Equal(t, "Algorithm(7)", qkp.Algorithm(7).String())
}

// TestSolvers_CapacityAboveTotalWeight covers capacities far beyond Σw, up to
// math.MaxInt: the answer equals the one at capacity Σw.
func TestSolvers_CapacityAboveTotalWeight(t *testing.T) {
	single := qkp.Instance{Weights: []int{1}, Profits: [][]float64{{5}}, Capacity: math.MaxInt}
	basic := fixtures()[0].inst
	tight := basic
	tight.Capacity = 12 // Σw

	for _, s := range solvers() {
		t.Run(s.name, func(t *testing.T) {
			sol, err := s.run(single)
			require.NoError(t, err)
			assert.Equal(t, []int{0}, sol.Selected)
			assert.Equal(t, 5.0, sol.Profit)

			want, err := s.run(tight)
			require.NoError(t, err)
			for _, c := range []int{13, 1000, math.MaxInt32, math.MaxInt} {
				loose := basic
				loose.Capacity = c
				got, err := s.run(loose)
				require.NoError(t, err, "capacity %d", c)
				assert.Equal(t, want, got, "capacity %d", c)
			}
		})
	}
}

// TestSolvers_TableTooLarge rejects instances whose table cannot be built.
func TestSolvers_TableTooLarge(t *testing.T) {
	inst := qkp.Instance{
		Weights:  []int{math.MaxInt / 2, math.MaxInt / 2},
		Profits:  [][]float64{{1, 0}, {0, 1}},
		Capacity: math.MaxInt,
	}
	for _, s := range solvers() {
		t.Run(s.name, func(t *testing.T) {
			_, err := s.run(inst)
			assert.ErrorIs(t, err, qkp.ErrTableTooLarge)
		})
	}

	v, err := qkp.Evaluate(inst, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}
