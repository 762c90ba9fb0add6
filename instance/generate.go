package instance

import (
	"errors"
	"fmt"
	"math/rand"
)

// defaultSeed is used when GenConfig.Seed == 0 so the zero value stays reproducible.
const defaultSeed int64 = 1

// ErrBadGenConfig is returned for a negative size, capacity or range.
var ErrBadGenConfig = errors.New("instance: invalid generator config")

// GenConfig describes a random symmetric instance.
//
// Fields:
//   - N                      — number of items.
//   - Capacity               — weight budget; 0 ⇒ half the total weight.
//   - MaxWeight              — weights drawn from [1, MaxWeight].
//   - MaxProfit              — diagonal drawn from [0, MaxProfit].
//   - MaxInteraction         — off-diagonal drawn from [0, MaxInteraction].
//   - Density                — probability that a pair interacts, in [0, 1].
//   - Seed                   — RNG seed; 0 ⇒ defaultSeed.
type GenConfig struct {
	N              int
	Capacity       int
	MaxWeight      int
	MaxProfit      int
	MaxInteraction int
	Density        float64
	Seed           int64
}

// DefaultGenConfig returns a 20-item, 50%-dense configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		N:              20,
		MaxWeight:      10,
		MaxProfit:      30,
		MaxInteraction: 10,
		Density:        0.5,
	}
}

// Generate builds a reproducible random case named after its parameters.
// Profits are integer-valued, so objective sums are exact in float64.
//
// Complexity: O(N²).
func Generate(cfg GenConfig) (Case, error) {
	if cfg.N < 0 || cfg.Capacity < 0 || cfg.MaxWeight < 1 || cfg.MaxProfit < 0 ||
		cfg.MaxInteraction < 0 || cfg.Density < 0 || cfg.Density > 1 {
		return Case{}, fmt.Errorf("%w: %+v", ErrBadGenConfig, cfg)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	var (
		n       = cfg.N
		weights = make([]int, n)
		profits = make([][]float64, n)
		total   int
		i, j    int
	)
	for i = 0; i < n; i++ {
		weights[i] = 1 + rng.Intn(cfg.MaxWeight)
		total += weights[i]
		profits[i] = make([]float64, n)
		profits[i][i] = float64(rng.Intn(cfg.MaxProfit + 1))
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() >= cfg.Density {
				continue
			}
			v := float64(rng.Intn(cfg.MaxInteraction + 1))
			profits[i][j], profits[j][i] = v, v
		}
	}

	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = total / 2
	}

	return Case{
		Name:     fmt.Sprintf("random-n%d-c%d-s%d", n, capacity, seed),
		Weights:  weights,
		Profits:  profits,
		Capacity: capacity,
	}, nil
}
