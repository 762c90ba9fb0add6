package qkp

import "math"

// CompactDP — Algorithm 3, compact backward-update DP.
//
// Description:
//
//	One array best[0..L] (weight exactly c; −Inf when unreachable) updated in
//	place per item from c = L down to w, next to one membership set per level
//	recording the items admitted on the path that realizes best[c].
//	Descending order guarantees that best[c-w] and its set still describe the
//	state BEFORE item i when read, so no item is used twice in one sweep.
//	After item k the set of level c answers "was item j ≤ k admitted on the
//	path to c", so reconstruction is a read of the winning level.
//
// Algorithm Outline:
//  1. best[0] = 0, set[·] = ∅, every other level −Inf.
//  2. For i = 0..n-1, c = L..w[i]:
//     include = best[c-w] + P[i][i] + Σ_{j∈set[c-w]} P[i][j]
//     strictly better ⇒ best[c] = include, set[c] = set[c-w] ∪ {i}.
//  3. c* = argmax best; selected = set[c*].
//
// Complexity:
//
//	Time   = O(n·L·(|S| + ⌈n/64⌉)).
//	Memory = O(L·(1 + ⌈n/64⌉)) words, never more than the baseline's
//	O(n·L) table.
//
// Errors: ErrInvalidInstance, ErrInvalidCapacity, ErrTableTooLarge.
func CompactDP(inst Instance) (Solution, error) {
	return Solve(inst, Options{Algorithm: CompactBackward, SymmetryTol: DefaultSymmetryTol})
}

// solveCompact runs Algorithm 3 on a validated, non-trivial problem.
func solveCompact(p *problem) Solution {
	var (
		width  = p.limit + 1
		words  = setWords(p.n)
		best   = make([]float64, width)
		sets   = make(bitset, width*words)
		subset = make([]int, 0, p.n)
		i, c   int
	)
	for c = 1; c < width; c++ {
		best[c] = math.Inf(-1)
	}

	for i = 0; i < p.n; i++ {
		w := p.weights[i]
		for c = p.limit; c >= w; c-- {
			if math.IsInf(best[c-w], -1) {
				continue
			}
			from := sets[(c-w)*words : (c-w+1)*words]
			subset = from.appendMembers(subset[:0])
			include := best[c-w] + p.gain(i, subset)
			if include > best[c] {
				best[c] = include
				to := sets[c*words : (c+1)*words]
				copy(to, from)
				to.set(i)
			}
		}
	}

	c = argmax(best)

	return p.solution(sets[c*words : (c+1)*words].appendMembers(make([]int, 0, p.n)))
}
