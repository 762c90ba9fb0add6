// Package qkp solves the Quadratic Knapsack Problem (QKP) with dynamic programming.
//
// 🚀 What is QKP?
//
//	Given n items with integer weights and a symmetric profit matrix P,
//	choose a subset S with Σ w_i ≤ capacity maximizing
//
//	    Σ_{i∈S} P[i][i] + Σ_{i<j, i,j∈S} P[i][j]
//
//	The diagonal holds standalone profits; off-diagonal entries pay out only
//	when both items of the pair are chosen.
//
// ✨ Solvers (same Instance in, same Solution out, run independently):
//
//   - ClassicalDP      — (n+1)×(C+1) profit table plus decision bits.
//     The include branch replays decision bits to recover the predecessor
//     subset and adds its true interaction gain. Baseline.
//   - InteractionDP    — Algorithm 2. Same table shape and decision bits, but
//     every cell carries aggregates (admission anchor and subset size) that
//     rebuild its subset; the include branch scores the candidate by its full
//     objective. Heavier cells and scoring: slowest and largest.
//   - CompactDP        — Algorithm 3. One best[0..C] array updated in place
//     from high capacity to low, plus one membership set per level for
//     reconstruction. Lightest and fastest.
//
// Resource ordering, time and memory alike:
//
//	CompactDP ≤ ClassicalDP ≤ InteractionDP
//
// All three solve on levels 0..min(C, Σw); a capacity above the total weight
// costs nothing extra.
//
// The two heuristics do not guarantee global optimality; the baseline is exact
// only on the linear skeleton. All three report the true quadratic profit of
// the subset they return, recomputed by Evaluate.
//
// ⚙️ Usage:
//
//	inst := qkp.Instance{
//	  Weights:  []int{3, 4, 5},
//	  Profits:  [][]float64{{10, 2, 3}, {2, 5, 4}, {3, 4, 7}},
//	  Capacity: 7,
//	}
//	sol, err := qkp.Solve(inst, qkp.DefaultOptions())
//	// sol.Selected == [0 1], sol.Profit == 17
//
// Errors are sentinels (ErrInvalidInstance, ErrInvalidCapacity, …) detected
// before any table allocation; match them with errors.Is.
//
// Concurrency: solvers never mutate the Instance and keep their tables
// private, so one Instance may be solved from many goroutines at once.
package qkp
