// Package qkp is the module root of a Quadratic Knapsack Problem toolkit:
// three dynamic-programming solvers, a YAML instance suite, a benchmark
// harness and a command-line front end.
//
// Given n items with integer weights w, a symmetric profit matrix P and a
// capacity C, the problem is to choose S ⊆ {0..n-1} with Σ w[i] ≤ C that
// maximises
//
//	f(S) = Σ_{i∈S} P[i][i] + Σ_{i<j, i,j∈S} P[i][j].
//
// The work is organised under these packages:
//
//	matrix/   — dense row-major storage with shape, finiteness and symmetry validators
//	qkp/      — objective evaluator, Classical DP, Interaction-Aware DP, Compact Backward DP
//	instance/ — YAML suite codec, the embedded documented suite, a random generator
//	bench/    — timing and allocation measurement, verification, table rendering
//	cmd/qkp/  — the qkp CLI (solve, verify, bench, gen)
//
// Quick example:
//
//	inst := qkp.Instance{
//		Weights:  []int{3, 4, 5},
//		Profits:  [][]float64{{10, 2, 3}, {2, 5, 4}, {3, 4, 7}},
//		Capacity: 7,
//	}
//	sol, _ := qkp.Solve(inst, qkp.DefaultOptions()) // {0, 1}, profit 17
//
// All three solvers are heuristics for the quadratic objective. In time and
// memory they order CompactDP ≤ ClassicalDP ≤ InteractionDP.
//
//	go install github.com/katalvlaran/qkp/cmd/qkp@latest
package qkp
