package qkp

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidInstance is returned when weights/profits disagree in shape,
	// a weight is negative, a profit is NaN/±Inf, or profits is not symmetric.
	ErrInvalidInstance = errors.New("qkp: invalid instance")

	// ErrInvalidCapacity is returned when the capacity is negative.
	ErrInvalidCapacity = errors.New("qkp: invalid capacity")

	// ErrInvalidSelection is returned by the evaluator for out-of-range or
	// duplicated item indices, or a membership mask of the wrong length.
	ErrInvalidSelection = errors.New("qkp: invalid selection")

	// ErrInfeasible reports a selection whose total weight exceeds the capacity.
	ErrInfeasible = errors.New("qkp: selection exceeds capacity")

	// ErrProfitMismatch reports a Solution whose Profit differs from the objective
	// of its own Selected set.
	ErrProfitMismatch = errors.New("qkp: reported profit differs from objective")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("qkp: unsupported algorithm")

	// ErrTableTooLarge is returned when (n+1)×(levels) exceeds MaxTableCells,
	// where levels = min(Capacity, Σ weights) + 1.
	ErrTableTooLarge = errors.New("qkp: DP table too large")
)

// Instance is the immutable QKP input.
//
// Fields:
//   - Weights  — weight of item i at index i; all ≥ 0. n = len(Weights).
//   - Profits  — n×n symmetric matrix; Profits[i][i] is the standalone profit of i,
//     Profits[i][j] the extra profit realized only when both i and j are chosen.
//   - Capacity — weight budget, ≥ 0.
//
// Solvers only read an Instance, so it may be shared across goroutines.
type Instance struct {
	Weights  []int
	Profits  [][]float64
	Capacity int
}

// N returns the number of items.
func (in Instance) N() int { return len(in.Weights) }

// Validate reports the first shape, sign or symmetry violation, if any, using
// the default symmetry tolerance.
func (in Instance) Validate() error {
	_, err := newProblem(in, DefaultSymmetryTol)

	return err
}

// Solution is the outcome of one solver call.
type Solution struct {
	// Selected holds the chosen item indices in ascending order.
	// It is empty (never nil) when nothing is chosen.
	Selected []int

	// Profit is the objective value of Selected.
	Profit float64
}

// Contains reports whether item i is part of the selection.
// Complexity: O(log |Selected|).
func (s Solution) Contains(i int) bool {
	_, ok := slices.BinarySearch(s.Selected, i)

	return ok
}

// Weight returns the total weight of the selection under inst.
// Indices outside inst are ignored.
func (s Solution) Weight(inst Instance) int {
	var total int
	for _, i := range s.Selected {
		if i >= 0 && i < len(inst.Weights) {
			total += inst.Weights[i]
		}
	}

	return total
}
