package montecarlo

import (
	"math"
	"testing"
)

// int_0^1 x dx = 1/2.
func linear1D(x []float64) float64 { return x[0] }

func TestIntegrateKnownIntegral(t *testing.T) {
	est, err := NewEstimator(1, 1.0, linear1D, 42)
	if err != nil {
		t.Fatalf("estimator: %v", err)
	}

	e, err := est.Integrate(100000)
	if err != nil {
		t.Fatalf("integrate: %v", err)
	}

	if math.Abs(e.Value-0.5) > 0.01 {
		t.Errorf("expected ~0.5, got %f", e.Value)
	}
	if e.Err <= 0 {
		t.Errorf("expected positive error estimate, got %f", e.Err)
	}
	if math.Abs(e.Value-0.5) > 5*e.Err {
		t.Errorf("estimate %f deviates from 0.5 by more than 5 error bounds (%f)", e.Value, e.Err)
	}
}

// The reported statistical error must shrink roughly as 1/sqrt(N).
func TestErrorShrinksAsRootN(t *testing.T) {
	errAt := func(n int) float64 {
		est, err := NewEstimator(1, 1.0, linear1D, 7)
		if err != nil {
			t.Fatalf("estimator: %v", err)
		}
		e, err := est.Integrate(n)
		if err != nil {
			t.Fatalf("integrate: %v", err)
		}
		return e.Err
	}

	e3 := errAt(1000)
	e4 := errAt(10000)
	e5 := errAt(100000)

	// Each decade should shrink the error by ~sqrt(10) ~ 3.16.
	for _, ratio := range []float64{e3 / e4, e4 / e5} {
		if ratio < 2.0 || ratio > 5.0 {
			t.Errorf("error decade ratio %f outside [2, 5]; expected ~sqrt(10)", ratio)
		}
	}
}

func TestEstimatorValidation(t *testing.T) {
	if _, err := NewEstimator(0, 1.0, nil, 1); err == nil {
		t.Error("expected error for zero dimension")
	}
	if _, err := NewEstimator(2, -1.0, nil, 1); err == nil {
		t.Error("expected error for negative side")
	}

	est, err := NewEstimator(2, 1.0, nil, 1)
	if err != nil {
		t.Fatalf("estimator: %v", err)
	}
	if _, err := est.Integrate(0); err == nil {
		t.Error("expected error for zero samples")
	}
}

func TestEstimatorReproducible(t *testing.T) {
	a, _ := NewEstimator(3, 1.0, nil, 99)
	b, _ := NewEstimator(3, 1.0, nil, 99)

	ea, _ := a.Integrate(1000)
	eb, _ := b.Integrate(1000)

	if ea.Value != eb.Value || ea.Err != eb.Err {
		t.Error("same seed must reproduce the same estimate")
	}
}

func TestDefaultIntegrand(t *testing.T) {
	x := []float64{0.1, 0.2, 0.3}
	want := 1e6 * math.Sin(0.6)
	if got := DefaultIntegrand(x); math.Abs(got-want) > 1e-6 {
		t.Errorf("DefaultIntegrand = %f, want %f", got, want)
	}
}
