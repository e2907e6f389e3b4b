// Package montecarlo integrates functions over D-dimensional boxes by
// uniform random sampling, with repeated independent trials used to
// validate the single-draw error estimate.
package montecarlo

import (
	"fmt"
	"math"
	"math/rand"
)

// Default integration problem: f(x) = 1e6 * sin(sum(x)) on an
// eight-dimensional box of side pi/8.
const (
	DefaultDim  = 8
	DefaultSide = math.Pi / 8

	// AnalyticValue is the closed-form value of the default integral,
	// used as a convergence reference.
	AnalyticValue = 537.1873411
)

// Integrand evaluates the function under the integral at a sample point.
type Integrand func(x []float64) float64

// DefaultIntegrand is the stock exercise integrand 1e6 * sin(sum(x)).
func DefaultIntegrand(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return 1e6 * math.Sin(sum)
}

// Estimate is a single-draw integration result: the integral value and a
// statistical error bound derived from the sample variance. The bound is
// an estimate, not a rigorous confidence interval.
type Estimate struct {
	Value float64
	Err   float64
}

// Estimator draws uniform samples in [0, Side]^Dim and averages the
// integrand over them. Not safe for concurrent use; trials run on
// independently seeded Estimator values.
type Estimator struct {
	Dim       int
	Side      float64
	Integrand Integrand

	rng *rand.Rand
}

func NewEstimator(dim int, side float64, f Integrand, seed int64) (*Estimator, error) {
	if dim < 1 {
		return nil, fmt.Errorf("montecarlo: dimension must be >= 1, got %d", dim)
	}
	if side <= 0 {
		return nil, fmt.Errorf("montecarlo: box side must be positive, got %f", side)
	}
	if f == nil {
		f = DefaultIntegrand
	}
	return &Estimator{
		Dim:       dim,
		Side:      side,
		Integrand: f,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Integrate draws n uniform sample points and returns the scaled estimate
// volume * mean(f) together with its error bound volume * sqrt(var(f)/n).
func (e *Estimator) Integrate(n int) (Estimate, error) {
	if n < 1 {
		return Estimate{}, fmt.Errorf("montecarlo: sample count must be >= 1, got %d", n)
	}

	point := make([]float64, e.Dim)
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		for d := range point {
			point[d] = e.rng.Float64() * e.Side
		}
		f := e.Integrand(point)
		sum += f
		sumSq += f * f
	}

	mean := sum / float64(n)
	meanSq := sumSq / float64(n)
	volume := math.Pow(e.Side, float64(e.Dim))

	variance := meanSq - mean*mean
	if variance < 0 {
		variance = 0 // numerical cancellation
	}

	return Estimate{
		Value: mean * volume,
		Err:   volume * math.Sqrt(variance/float64(n)),
	}, nil
}
