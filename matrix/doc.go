// Package matrix provides the dense float64 storage used for QKP profit matrices.
//
// The package is deliberately small:
//
//   - Dense — a row-major r×c matrix with bounds-checked At/Set, deep Clone
//     and an unchecked Row view for hot DP loops.
//   - Validators — shape, finiteness and symmetry checks that return plain
//     sentinel errors, so callers can wrap them uniformly.
//
// Complexity:
//
//	Rows, Cols, At, Set and Row run in O(1).
//	FromRows, Clone and the validators run in O(r·c).
//
// All functions are pure and never panic on user input; misuse surfaces as one
// of the sentinels in errors.go, to be checked with errors.Is.
package matrix
