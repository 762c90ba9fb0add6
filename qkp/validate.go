// Package qkp - eager input validation shared by every solver.
//
// Validation runs before any table allocation and returns sentinels only:
//  1. Weights: every w_i ≥ 0.
//  2. Profits: n rows of n finite values, symmetric within tolerance.
//  3. Capacity: ≥ 0.
//
// The solvers then work on levels 0..limit with limit = min(Capacity, Σw):
// no subset weighs more than Σw, so higher levels only repeat level Σw.
//
// The profits are copied once into a row-major matrix.Dense that the solvers
// read through unchecked row views.
package qkp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qkp/matrix"
)

// MaxTableCells bounds (n+1)×(limit+1), the cell count of the 2D tables.
const MaxTableCells = math.MaxInt32

// problem is the validated, solver-private view of an Instance.
type problem struct {
	n        int
	capacity int // as given; feasibility checks use it
	limit    int // min(capacity, Σ weights); the DP capacity axis is 0..limit
	weights  []int
	profits  *matrix.Dense
}

// newProblem validates inst and builds its solver view.
//
// Complexity: O(n²) time, O(n²) space for the profit copy.
func newProblem(inst Instance, tol float64) (*problem, error) {
	n := len(inst.Weights)

	// Stage 1: weights.
	var i int
	for i = 0; i < n; i++ {
		if inst.Weights[i] < 0 {
			return nil, fmt.Errorf("%w: weight[%d]=%d is negative", ErrInvalidInstance, i, inst.Weights[i])
		}
	}

	// Stage 2: profits shape, then values.
	if len(inst.Profits) != n {
		return nil, fmt.Errorf("%w: %d profit rows for %d items: %w", ErrInvalidInstance, len(inst.Profits), n, matrix.ErrDimensionMismatch)
	}
	for i = 0; i < n; i++ {
		if len(inst.Profits[i]) != n {
			return nil, fmt.Errorf("%w: profit row %d has %d cols for %d items: %w", ErrInvalidInstance, i, len(inst.Profits[i]), n, matrix.ErrDimensionMismatch)
		}
	}
	profits, err := matrix.FromRows(inst.Profits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}
	if err = matrix.ValidateFinite(profits); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}
	if err = matrix.ValidateSymmetric(profits, tol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}

	// Stage 3: capacity.
	if inst.Capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, inst.Capacity)
	}

	return &problem{
		n:        n,
		capacity: inst.Capacity,
		limit:    weightLimit(inst.Weights, inst.Capacity),
		weights:  inst.Weights,
		profits:  profits,
	}, nil
}

// weightLimit returns min(capacity, Σ weights) without overflowing.
func weightLimit(weights []int, capacity int) int {
	total := 0
	for _, w := range weights {
		if w >= capacity-total {
			return capacity
		}
		total += w
	}

	return total
}

// fits reports ErrTableTooLarge when the 2D table would exceed MaxTableCells.
func (p *problem) fits() error {
	if p.limit >= MaxTableCells/(p.n+1) {
		return fmt.Errorf("%w: %d items × %d capacity levels", ErrTableTooLarge, p.n, p.limit)
	}

	return nil
}

// trivial reports whether the answer is the empty selection without any DP:
// no items, or no capacity at all.
func (p *problem) trivial() bool {
	return p.n == 0 || p.capacity == 0
}
