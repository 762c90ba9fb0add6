package qkp

// ClassicalDP — baseline QKP dynamic program with backtracking.
//
// Description:
//
//	Classical 0/1-knapsack table extended with the quadratic term: the
//	include branch adds the TRUE interaction gain of item i-1 against the
//	concrete subset realized by the predecessor cell, recovered by replaying
//	decision bits.
//
// Algorithm Outline:
//  1. Allocate profit[(n+1)×(L+1)] (row 0 = 0 for every c) and one decision
//     bit per cell, where L = min(C, Σw).
//  2. For i = 1..n, c = 0..L:
//     exclude = profit[i-1][c]
//     include = profit[i-1][c-w] + P[i-1][i-1] + Σ_{j∈S(i-1, c-w)} P[i-1][j]   (w ≤ c)
//     profit[i][c] = max(exclude, include); ties keep exclude.
//  3. Pick c* = argmax_c profit[n][c] (lowest c on ties).
//  4. Backtrack from (n, c*): a set bit at (k, c) admits item k-1 and moves
//     to (k-1, c-w[k-1]); otherwise move to (k-1, c).
//
// Complexity:
//
//	Time   = O(n·L) cells; each include replays up to i bits, O(n²·L) worst case.
//	Memory = O(n·L) float64 profits + O(n·L) bits.
//
// Errors: ErrInvalidInstance, ErrInvalidCapacity (before any allocation),
// ErrTableTooLarge.
func ClassicalDP(inst Instance) (Solution, error) {
	return Solve(inst, Options{Algorithm: Classical, SymmetryTol: DefaultSymmetryTol})
}

// solveClassical runs the baseline on a validated, non-trivial problem.
func solveClassical(p *problem) Solution {
	var (
		width  = p.limit + 1
		profit = make([]float64, (p.n+1)*width)
		take   = newBitset((p.n + 1) * width)
		trail  = make([]int, 0, p.n) // scratch for predecessor subsets
		i, c   int
	)

	// Fill.
	for i = 1; i <= p.n; i++ {
		prev := profit[(i-1)*width : i*width]
		cur := profit[i*width : (i+1)*width]
		copy(cur, prev)

		w := p.weights[i-1]
		// w > L leaves the copied row untouched.
		for c = w; c <= p.limit; c++ {
			trail = replayDecisions(p, take, width, i-1, c-w, trail[:0])
			include := prev[c-w] + p.gain(i-1, trail)
			if include > cur[c] {
				cur[c] = include
				take.set(i*width + c)
			}
		}
	}

	// Reconstruct.
	best := argmax(profit[p.n*width:])

	return p.solution(replayDecisions(p, take, width, p.n, best, make([]int, 0, p.n)))
}

// replayDecisions appends to out the items admitted on the path ending at
// cell (i, c) of a decision-bit table, newest first.
// Complexity: O(i).
func replayDecisions(p *problem, take bitset, width, i, c int, out []int) []int {
	for k := i; k > 0; k-- {
		if take.test(k*width + c) {
			out = append(out, k-1)
			c -= p.weights[k-1]
		}
	}

	return out
}
