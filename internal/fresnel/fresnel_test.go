package fresnel

import (
	"math"
	"testing"
)

// C and S are odd functions.
func TestFresnelOddness(t *testing.T) {
	for _, u := range []float64{0, 1, 5} {
		if got := C(-u) + C(u); math.Abs(got) > 1e-9 {
			t.Errorf("C(-%g) + C(%g) = %g, want 0", u, u, got)
		}
		if got := S(-u) + S(u); math.Abs(got) > 1e-9 {
			t.Errorf("S(-%g) + S(%g) = %g, want 0", u, u, got)
		}
	}
}

func TestFresnelKnownValues(t *testing.T) {
	tests := []struct {
		u      float64
		wantC  float64
		wantS  float64
	}{
		{0, 0, 0},
		{1, 0.7798934003, 0.4382591473},
		{2, 0.4882534060, 0.3434156784},
	}

	for _, tt := range tests {
		if got := C(tt.u); math.Abs(got-tt.wantC) > 1e-8 {
			t.Errorf("C(%g) = %.10f, want %.10f", tt.u, got, tt.wantC)
		}
		if got := S(tt.u); math.Abs(got-tt.wantS) > 1e-8 {
			t.Errorf("S(%g) = %.10f, want %.10f", tt.u, got, tt.wantS)
		}
	}
}

func TestIdenticalBoundsYieldZero(t *testing.T) {
	for _, u := range []float64{-3, 0, 7.5} {
		if got := CBetween(u, u); got != 0 {
			t.Errorf("CBetween(%g, %g) = %g, want exactly 0", u, u, got)
		}
		if got := SBetween(u, u); got != 0 {
			t.Errorf("SBetween(%g, %g) = %g, want exactly 0", u, u, got)
		}
	}
}

func TestBetweenAdditivity(t *testing.T) {
	// int_a^b + int_b^c = int_a^c
	a, b, c := -1.0, 0.5, 2.0
	sum := CBetween(a, b) + CBetween(b, c)
	whole := CBetween(a, c)
	if math.Abs(sum-whole) > 1e-9 {
		t.Errorf("additivity violated: %g vs %g", sum, whole)
	}
}

func TestReversedBoundsNegate(t *testing.T) {
	if got := SBetween(2, 1) + SBetween(1, 2); math.Abs(got) > 1e-12 {
		t.Errorf("reversed bounds should negate, residual %g", got)
	}
}

func TestDiffractionAmplitudeSymmetric(t *testing.T) {
	p := NewDiffractionPattern(50, 1.0, 10.0)

	for _, x := range []float64{1, 5, 12.5} {
		left := p.Amplitude(-x)
		right := p.Amplitude(x)
		if math.Abs(left-right) > 1e-9 {
			t.Errorf("amplitude not symmetric at x=%g: %g vs %g", x, left, right)
		}
	}
}

func TestDiffractionAmplitudeMatchesParts(t *testing.T) {
	p := NewDiffractionPattern(30, 1.0, 10.0)

	x := 3.7
	re := p.Real(x)
	im := p.Imag(x)
	want := math.Hypot(re, im)
	if got := p.Amplitude(x); math.Abs(got-want) > 1e-12 {
		t.Errorf("amplitude %g does not match parts %g", got, want)
	}
}

func TestDiffractionPhaseRange(t *testing.T) {
	p := NewDiffractionPattern(100, 1.0, 10.0)

	for x := -20.0; x <= 20; x += 0.5 {
		ph := p.Phase(x)
		if ph < -math.Pi || ph > math.Pi {
			t.Errorf("phase out of range at x=%g: %g", x, ph)
		}
	}
}
