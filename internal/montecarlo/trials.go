package montecarlo

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/physlab/internal/parallel"
)

// Aggregate summarizes repeated independent trials at a fixed sample
// count. Std (spread of the trial values) and MeanErr (average single-draw
// estimate) are two different views of the same statistical error; neither
// is a rigorous confidence interval.
type Aggregate struct {
	Samples int
	Trials  int
	Mean    float64
	Std     float64
	MeanErr float64
}

// RepeatTrials runs `trials` independent integrations of n samples each,
// in parallel, and aggregates the results. Trial i uses seed+i, so a run
// is reproducible for a fixed base seed.
func RepeatTrials(dim int, side float64, f Integrand, n, trials int, seed int64) (Aggregate, error) {
	if trials < 2 {
		return Aggregate{}, fmt.Errorf("montecarlo: need at least 2 trials, got %d", trials)
	}

	idx := make([]int, trials)
	for i := range idx {
		idx[i] = i
	}

	estimates, err := parallel.MapErr(idx, func(i int) (Estimate, error) {
		est, err := NewEstimator(dim, side, f, seed+int64(i))
		if err != nil {
			return Estimate{}, err
		}
		return est.Integrate(n)
	})
	if err != nil {
		return Aggregate{}, err
	}

	values := make([]float64, trials)
	errs := make([]float64, trials)
	for i, e := range estimates {
		values[i] = e.Value
		errs[i] = e.Err
	}

	return Aggregate{
		Samples: n,
		Trials:  trials,
		Mean:    stat.Mean(values, nil),
		Std:     stat.StdDev(values, nil),
		MeanErr: stat.Mean(errs, nil),
	}, nil
}

// Sweep aggregates trials across a series of sample counts.
func Sweep(dim int, side float64, f Integrand, ns []int, trials int, seed int64) ([]Aggregate, error) {
	out := make([]Aggregate, 0, len(ns))
	for _, n := range ns {
		agg, err := RepeatTrials(dim, side, f, n, trials, seed)
		if err != nil {
			return nil, fmt.Errorf("sweep at n=%d: %w", n, err)
		}
		out = append(out, agg)
	}
	return out, nil
}

// PowersOfTwo returns 2^1 .. 2^max, the sample-count schedule of the
// convergence study.
func PowersOfTwo(max int) []int {
	ns := make([]int, max)
	for i := range ns {
		ns[i] = 1 << (i + 1)
	}
	return ns
}
