// Package qkp - Objective Evaluator.
//
// The evaluator computes the exact quadratic objective of a candidate subset:
//
//	f(S) = Σ_{i∈S} P[i][i] + Σ_{i<j, i,j∈S} P[i][j]
//
// Every solver funnels its reconstructed subset through problem.solution, so
// Solution.Profit and Evaluate agree bit-for-bit on the same selection.
package qkp

import (
	"fmt"
	"math"
	"slices"
)

// profitTol is the relative tolerance Check allows between a reported profit
// and the recomputed objective (external solutions may sum in another order).
const profitTol = 1e-9

// Evaluate returns f(selected) for inst. Order of selected is irrelevant.
//
// Errors: ErrInvalidInstance/ErrInvalidCapacity for a malformed inst;
// ErrInvalidSelection for an out-of-range or duplicated index.
// Feasibility is NOT checked here; see Check.
//
// Complexity: O(n²) validation + O(|S|²) evaluation.
func Evaluate(inst Instance, selected []int) (float64, error) {
	p, err := newProblem(inst, DefaultSymmetryTol)
	if err != nil {
		return 0, err
	}
	sorted, err := p.normalize(selected)
	if err != nil {
		return 0, err
	}

	return p.objective(sorted), nil
}

// EvaluateMask is Evaluate for a boolean membership array of length n.
func EvaluateMask(inst Instance, mask []bool) (float64, error) {
	if len(mask) != len(inst.Weights) {
		return 0, fmt.Errorf("%w: mask has %d entries for %d items", ErrInvalidSelection, len(mask), len(inst.Weights))
	}
	selected := make([]int, 0, len(mask))
	for i, in := range mask {
		if in {
			selected = append(selected, i)
		}
	}

	return Evaluate(inst, selected)
}

// Gain returns the objective increase of adding item to subset:
// P[item][item] + Σ_{j∈subset} P[item][j].
// item must not already be in subset.
func Gain(inst Instance, item int, subset []int) (float64, error) {
	p, err := newProblem(inst, DefaultSymmetryTol)
	if err != nil {
		return 0, err
	}
	sorted, err := p.normalize(subset)
	if err != nil {
		return 0, err
	}
	if item < 0 || item >= p.n {
		return 0, fmt.Errorf("%w: item %d out of range [0,%d)", ErrInvalidSelection, item, p.n)
	}
	if _, dup := slices.BinarySearch(sorted, item); dup {
		return 0, fmt.Errorf("%w: item %d already in subset", ErrInvalidSelection, item)
	}

	return p.gain(item, sorted), nil
}

// Check verifies a Solution against inst: feasibility (ErrInfeasible) and
// objective consistency (ErrProfitMismatch, relative tolerance 1e-9).
func Check(inst Instance, sol Solution) error {
	p, err := newProblem(inst, DefaultSymmetryTol)
	if err != nil {
		return err
	}
	sorted, err := p.normalize(sol.Selected)
	if err != nil {
		return err
	}
	if w := sol.Weight(inst); w > p.capacity {
		return fmt.Errorf("%w: weight %d > capacity %d", ErrInfeasible, w, p.capacity)
	}
	want := p.objective(sorted)
	if math.Abs(want-sol.Profit) > profitTol*math.Max(1, math.Abs(want)) {
		return fmt.Errorf("%w: reported %g, objective %g", ErrProfitMismatch, sol.Profit, want)
	}

	return nil
}

// normalize returns a sorted copy of selected after range/duplicate checks.
func (p *problem) normalize(selected []int) ([]int, error) {
	sorted := slices.Clone(selected)
	slices.Sort(sorted)
	for k, i := range sorted {
		if i < 0 || i >= p.n {
			return nil, fmt.Errorf("%w: item %d out of range [0,%d)", ErrInvalidSelection, i, p.n)
		}
		if k > 0 && sorted[k-1] == i {
			return nil, fmt.Errorf("%w: item %d listed twice", ErrInvalidSelection, i)
		}
	}

	return sorted, nil
}

// objective computes f(S) for an ascending, duplicate-free S.
// Complexity: O(|S|²).
func (p *problem) objective(sorted []int) float64 {
	var total float64
	for a, i := range sorted {
		row := p.profits.Row(i)
		total += row[i]
		for _, j := range sorted[a+1:] {
			total += row[j]
		}
	}

	return total
}

// gain is the interaction gain of admitting item next to subset.
// It is the incremental accumulator used by every DP: O(|subset|).
func (p *problem) gain(item int, subset []int) float64 {
	row := p.profits.Row(item)
	g := row[item]
	for _, j := range subset {
		g += row[j]
	}

	return g
}

// solution sorts selected in place and returns it with its true objective.
func (p *problem) solution(selected []int) Solution {
	if selected == nil {
		selected = []int{}
	}
	slices.Sort(selected)

	return Solution{Selected: selected, Profit: p.objective(selected)}
}

// argmax returns the first index holding the largest value of row.
func argmax(row []float64) int {
	best := 0
	for c := 1; c < len(row); c++ {
		if row[c] > row[best] {
			best = c
		}
	}

	return best
}
