// Package qkp - unified dispatcher.
//
// Every entry point funnels through Solve:
//
//	Uninitialized → (validate) → Filling(i, c) → Filled → Reconstructing → Done
//
// Validation happens before any table allocation; a malformed Instance never
// yields a partial Solution. The fill itself is never interrupted.
package qkp

import "context"

// Solve validates inst and runs opts.Algorithm.
//
// Capacity 0 or n = 0 return the empty selection with profit 0 without
// allocating a table.
//
// Capacities above the total item weight are solved on Σ weights levels;
// the answer is the same.
//
// Errors: ErrInvalidInstance, ErrInvalidCapacity, ErrUnsupportedAlgorithm,
// ErrTableTooLarge.
func Solve(inst Instance, opts Options) (Solution, error) {
	var run func(*problem) Solution
	switch opts.Algorithm {
	case Classical:
		run = solveClassical
	case InteractionAware:
		run = solveInteraction
	case CompactBackward:
		run = solveCompact
	default:
		return Solution{}, ErrUnsupportedAlgorithm
	}

	p, err := newProblem(inst, opts.SymmetryTol)
	if err != nil {
		return Solution{}, err
	}
	if p.trivial() {
		return Solution{Selected: []int{}}, nil
	}
	if err = p.fits(); err != nil {
		return Solution{}, err
	}

	return run(p), nil
}

// SolveContext is Solve with a cancellation check at the invocation boundary.
// ctx is consulted once, before validation; a started fill always completes.
func SolveContext(ctx context.Context, inst Instance, opts Options) (Solution, error) {
	if err := ctx.Err(); err != nil {
		return Solution{}, err
	}

	return Solve(inst, opts)
}
