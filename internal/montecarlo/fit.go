package montecarlo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// PowerLaw models err(n) = Coeff * n^Exponent. For plain Monte Carlo the
// fitted exponent should come out near -1/2.
type PowerLaw struct {
	Coeff    float64
	Exponent float64
}

// FitPowerLaw regresses log(err) on log(n). All inputs must be positive.
func FitPowerLaw(ns []int, errs []float64) (PowerLaw, error) {
	if len(ns) != len(errs) {
		return PowerLaw{}, fmt.Errorf("montecarlo: %d sample counts vs %d errors", len(ns), len(errs))
	}
	if len(ns) < 2 {
		return PowerLaw{}, fmt.Errorf("montecarlo: need at least 2 points to fit, got %d", len(ns))
	}

	logN := make([]float64, len(ns))
	logE := make([]float64, len(errs))
	for i := range ns {
		if ns[i] <= 0 || errs[i] <= 0 {
			return PowerLaw{}, fmt.Errorf("montecarlo: non-positive point (n=%d, err=%g) in log-log fit", ns[i], errs[i])
		}
		logN[i] = math.Log(float64(ns[i]))
		logE[i] = math.Log(errs[i])
	}

	alpha, beta := stat.LinearRegression(logN, logE, nil, false)
	return PowerLaw{Coeff: math.Exp(alpha), Exponent: beta}, nil
}

// At evaluates the fitted law at sample count n.
func (p PowerLaw) At(n float64) float64 {
	return p.Coeff * math.Pow(n, p.Exponent)
}

func (p PowerLaw) String() string {
	return fmt.Sprintf("err = %.4g * n^%.3f", p.Coeff, p.Exponent)
}
