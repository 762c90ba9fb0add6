package qkp

import (
	"fmt"
	"strings"
)

// DefaultSymmetryTol is the structural tolerance for |P[i][j] − P[j][i]|.
const DefaultSymmetryTol = 1e-12

// Algorithm selects the DP strategy used by Solve.
type Algorithm int

const (
	// Classical is the baseline 2D DP with decision-bit backtracking.
	Classical Algorithm = iota

	// InteractionAware is Algorithm 2: 2D DP with per-cell subset aggregates.
	InteractionAware

	// CompactBackward is Algorithm 3: 1D backward-update DP with per-level membership sets.
	CompactBackward
)

// Algorithms returns every supported algorithm in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{Classical, InteractionAware, CompactBackward}
}

// String returns the short, stable name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Classical:
		return "classical"
	case InteractionAware:
		return "interaction"
	case CompactBackward:
		return "compact"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name (case-insensitive) to an Algorithm.
// Accepted: classical|baseline, interaction|algo2, compact|algo3.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classical", "baseline":
		return Classical, nil
	case "interaction", "algo2":
		return InteractionAware, nil
	case "compact", "algo3":
		return CompactBackward, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// Options configures Solve.
//
// Fields:
//   - Algorithm   — which DP to run.
//   - SymmetryTol — accepted |P[i][j] − P[j][i]|; negative means exact.
type Options struct {
	Algorithm   Algorithm
	SymmetryTol float64
}

// DefaultOptions returns CompactBackward with DefaultSymmetryTol.
func DefaultOptions() Options {
	return Options{
		Algorithm:   CompactBackward,
		SymmetryTol: DefaultSymmetryTol,
	}
}
