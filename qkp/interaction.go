package qkp

import (
	"math"
	"slices"
)

// interactionCell is one (item-prefix, capacity) state of Algorithm 2.
//
//   - profit — f(subset) of this path with total weight exactly c; −Inf if unreachable.
//   - anchor — flat index of the newest admission cell on this path, −1 if none.
//   - size   — number of items on this path.
//   - take   — decision bit: item i-1 admitted at this cell.
type interactionCell struct {
	profit float64
	anchor int
	size   int
	take   bool
}

// InteractionDP — Algorithm 2, interaction-aware DP.
//
// Description:
//
//	Same (n+1)×(L+1) table and decision bits as ClassicalDP, but each cell
//	carries aggregates from which its subset is rebuilt: the anchor chain
//	links admission cells only. The include branch scores the candidate
//	S ∪ {i-1} by its full quadratic objective, every pairwise term folded in,
//	so each cell's profit is exactly f(its subset). Unreachable capacities
//	start at −Inf, so profit[i][c] means "weight exactly c".
//
// Algorithm Outline:
//  1. cells[0][0] = {0, −1, 0}; every other cell of row 0 is unreachable.
//  2. For i = 1..n, c = 0..L: copy cell (i-1, c); if w ≤ c and (i-1, c-w) is
//     reachable, rebuild S from its anchor chain and score
//     include = f(S ∪ {i-1}). Strictly better ⇒ take, anchor = (i, c), size+1.
//  3. c* = argmax_c profit[n][c]; replay decision bits from (n, c*).
//
// Complexity:
//
//	Time   = O(n·L·|S|²) with |S| ≤ n: the slowest of the three solvers.
//	Memory = O(n·L) cells of 32 bytes (vs ~8 bytes + 1 bit in the baseline).
//
// Errors: ErrInvalidInstance, ErrInvalidCapacity, ErrTableTooLarge.
func InteractionDP(inst Instance) (Solution, error) {
	return Solve(inst, Options{Algorithm: InteractionAware, SymmetryTol: DefaultSymmetryTol})
}

// solveInteraction runs Algorithm 2 on a validated, non-trivial problem.
func solveInteraction(p *problem) Solution {
	var (
		width  = p.limit + 1
		cells  = make([]interactionCell, (p.n+1)*width)
		subset = make([]int, 0, p.n)
		i, c   int
	)
	for c = 0; c < width; c++ {
		cells[c] = interactionCell{profit: math.Inf(-1), anchor: -1}
	}
	cells[0].profit = 0

	// Fill.
	for i = 1; i <= p.n; i++ {
		prev := cells[(i-1)*width : i*width]
		cur := cells[i*width : (i+1)*width]
		w := p.weights[i-1]

		for c = 0; c < width; c++ {
			cur[c] = prev[c]
			cur[c].take = false
			if w > c {
				continue
			}
			from := prev[c-w]
			if math.IsInf(from.profit, -1) {
				continue
			}
			// The chain runs newest first; every member is < i-1.
			subset = interactionChain(p, cells, width, from.anchor, subset[:0])
			slices.Reverse(subset)
			include := p.objective(append(subset, i-1))
			if include > cur[c].profit {
				cur[c] = interactionCell{
					profit: include,
					anchor: i*width + c,
					size:   from.size + 1,
					take:   true,
				}
			}
		}
	}

	// Reconstruct by decision bits, like the baseline.
	var (
		last = cells[p.n*width:]
		best = argmaxCells(last)
		out  = make([]int, 0, last[best].size)
	)
	c = best
	for i = p.n; i > 0; i-- {
		if cells[i*width+c].take {
			out = append(out, i-1)
			c -= p.weights[i-1]
		}
	}

	return p.solution(out)
}

// interactionChain appends the items on the anchor chain starting at anchor,
// newest first.
// Complexity: O(|S|).
func interactionChain(p *problem, cells []interactionCell, width, anchor int, out []int) []int {
	for anchor >= 0 {
		k, c := anchor/width, anchor%width
		out = append(out, k-1)
		anchor = cells[(k-1)*width+c-p.weights[k-1]].anchor
	}

	return out
}

// argmaxCells is argmax over the profit field of row.
func argmaxCells(row []interactionCell) int {
	best := 0
	for c := 1; c < len(row); c++ {
		if row[c].profit > row[best].profit {
			best = c
		}
	}

	return best
}
