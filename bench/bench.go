package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/qkp/instance"
	"github.com/katalvlaran/qkp/qkp"
)

var (
	// ErrBadConfig is returned for Runs < 1 or an empty algorithm list.
	ErrBadConfig = errors.New("bench: invalid config")

	// ErrResourceOrder is returned by Report.CheckOrder when the aggregates
	// break CompactBackward ≤ Classical ≤ InteractionAware.
	ErrResourceOrder = errors.New("bench: resource ordering violated")
)

// Config controls a benchmark run.
type Config struct {
	// Runs is the number of timed calls per (case, algorithm); ≥ 1.
	Runs int

	// Algorithms lists the solvers to run, in report order.
	Algorithms []qkp.Algorithm

	// Logger receives one debug record per measured pair; nil discards.
	Logger *slog.Logger
}

// DefaultConfig runs every algorithm 5 times.
func DefaultConfig() Config {
	return Config{Runs: 5, Algorithms: qkp.Algorithms()}
}

// Status classifies a Result against the case's recorded answer.
type Status int

const (
	// Unchecked: the case records no expected answer.
	Unchecked Status = iota
	// Match: profit and selection both equal the recorded answer.
	Match
	// ProfitOnly: profit matches, selection differs (an equally good subset).
	ProfitOnly
	// Mismatch: profit differs from the recorded answer.
	Mismatch
	// Failed: the solver returned an error.
	Failed
)

// String returns a short label for reports.
func (s Status) String() string {
	switch s {
	case Unchecked:
		return "-"
	case Match:
		return "ok"
	case ProfitOnly:
		return "ok (profit)"
	case Mismatch:
		return "MISMATCH"
	case Failed:
		return "ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the measurement of one (case, algorithm) pair.
type Result struct {
	Case      string
	Algorithm qkp.Algorithm
	Solution  qkp.Solution
	Expected  *instance.Expected
	Status    Status
	Err       error
	Runs      int
	AvgTime   time.Duration
	AvgBytes  uint64
	AvgAllocs uint64
}

// Report collects Results in (case, algorithm) order.
type Report struct {
	Results []Result
}

// Failures returns results whose Status is Mismatch or Failed.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == Mismatch || res.Status == Failed {
			out = append(out, res)
		}
	}

	return out
}

// Aggregate is the per-algorithm sum of average time and bytes across cases.
type Aggregate struct {
	Algorithm  qkp.Algorithm
	Cases      int
	TotalTime  time.Duration
	TotalBytes uint64
}

// Aggregates sums per algorithm, in first-seen algorithm order.
func (r *Report) Aggregates() []Aggregate {
	var out []Aggregate
	for _, res := range r.Results {
		k := slices.IndexFunc(out, func(a Aggregate) bool { return a.Algorithm == res.Algorithm })
		if k < 0 {
			out = append(out, Aggregate{Algorithm: res.Algorithm})
			k = len(out) - 1
		}
		out[k].Cases++
		out[k].TotalTime += res.AvgTime
		out[k].TotalBytes += res.AvgBytes
	}

	return out
}

// resourceOrder lists the algorithms from lightest to heaviest.
var resourceOrder = []qkp.Algorithm{qkp.CompactBackward, qkp.Classical, qkp.InteractionAware}

// CheckOrder compares the aggregates of neighbouring algorithms in
// resourceOrder, summed time and summed bytes alike. Algorithms absent from
// the report are skipped. Every violation is reported, joined.
func (r *Report) CheckOrder() error {
	var (
		aggs = r.Aggregates()
		prev *Aggregate
		errs []error
	)
	for _, algo := range resourceOrder {
		k := slices.IndexFunc(aggs, func(a Aggregate) bool { return a.Algorithm == algo })
		if k < 0 {
			continue
		}
		cur := &aggs[k]
		if prev != nil {
			if prev.TotalBytes > cur.TotalBytes {
				errs = append(errs, fmt.Errorf("%w: %s allocates %d B, %s %d B",
					ErrResourceOrder, prev.Algorithm, prev.TotalBytes, cur.Algorithm, cur.TotalBytes))
			}
			if prev.TotalTime > cur.TotalTime {
				errs = append(errs, fmt.Errorf("%w: %s takes %s, %s %s",
					ErrResourceOrder, prev.Algorithm, prev.TotalTime, cur.Algorithm, cur.TotalTime))
			}
		}
		prev = cur
	}

	return errors.Join(errs...)
}

// Run measures every configured algorithm on every case of suite.
// ctx is checked between solver invocations only.
func Run(ctx context.Context, suite *instance.Suite, cfg Config) (*Report, error) {
	if cfg.Runs < 1 || len(cfg.Algorithms) == 0 {
		return nil, fmt.Errorf("%w: runs=%d algorithms=%d", ErrBadConfig, cfg.Runs, len(cfg.Algorithms))
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	report := &Report{Results: make([]Result, 0, len(suite.Cases)*len(cfg.Algorithms))}
	for _, c := range suite.Cases {
		for _, algo := range cfg.Algorithms {
			res, err := measure(ctx, c, algo, cfg.Runs)
			if err != nil {
				return report, err
			}
			log.LogAttrs(ctx, slog.LevelDebug, "measured",
				slog.String("case", c.Name),
				slog.String("algorithm", algo.String()),
				slog.String("status", res.Status.String()),
				slog.Duration("avg_time", res.AvgTime),
				slog.Uint64("avg_bytes", res.AvgBytes),
			)
			report.Results = append(report.Results, res)
		}
	}

	return report, nil
}

// Verify solves every (case, algorithm) pair once on a bounded worker pool
// and classifies each answer. Results keep suite order; no timings or
// allocation counts are recorded.
func Verify(ctx context.Context, suite *instance.Suite, algos []qkp.Algorithm) (*Report, error) {
	if len(algos) == 0 {
		return nil, fmt.Errorf("%w: algorithms=0", ErrBadConfig)
	}

	results := make([]Result, len(suite.Cases)*len(algos))
	p := pool.New().
		WithMaxGoroutines(runtime.GOMAXPROCS(0)).
		WithContext(ctx).
		WithCancelOnError()
	for i, c := range suite.Cases {
		inst := c.Instance()
		for j, algo := range algos {
			slot := &results[i*len(algos)+j]
			p.Go(func(ctx context.Context) error {
				sol, err := qkp.SolveContext(ctx, inst, qkp.Options{Algorithm: algo, SymmetryTol: qkp.DefaultSymmetryTol})
				*slot = Result{Case: c.Name, Algorithm: algo, Expected: c.Expected, Runs: 1}
				switch {
				case ctx.Err() != nil:
					return ctx.Err()
				case err != nil:
					slot.Err, slot.Status = err, Failed
				default:
					slot.Solution, slot.Status = sol, classify(sol, c.Expected)
				}

				return nil
			})
		}
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return &Report{Results: results}, nil
}

// measure times runs calls of algo on c. Context errors abort; solver errors
// are recorded in the Result.
func measure(ctx context.Context, c instance.Case, algo qkp.Algorithm, runs int) (Result, error) {
	var (
		inst   = c.Instance()
		opts   = qkp.Options{Algorithm: algo, SymmetryTol: qkp.DefaultSymmetryTol}
		res    = Result{Case: c.Name, Algorithm: algo, Expected: c.Expected, Runs: runs}
		before runtime.MemStats
		after  runtime.MemStats
		total  time.Duration
		bytes  uint64
		allocs uint64
	)
	for k := 0; k < runs; k++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		runtime.ReadMemStats(&before)
		start := time.Now()
		sol, err := qkp.Solve(inst, opts)
		total += time.Since(start)
		runtime.ReadMemStats(&after)

		if err != nil {
			res.Err = err
			res.Status = Failed

			return res, nil
		}
		bytes += after.TotalAlloc - before.TotalAlloc
		allocs += after.Mallocs - before.Mallocs
		res.Solution = sol
	}

	res.AvgTime = total / time.Duration(runs)
	res.AvgBytes = bytes / uint64(runs)
	res.AvgAllocs = allocs / uint64(runs)
	res.Status = classify(res.Solution, c.Expected)

	return res, nil
}

// classify compares a solution with the recorded answer.
func classify(sol qkp.Solution, want *instance.Expected) Status {
	switch {
	case want == nil:
		return Unchecked
	case sol.Profit != want.Profit:
		return Mismatch
	case slices.Equal(sol.Selected, want.Selected):
		return Match
	default:
		return ProfitOnly
	}
}
