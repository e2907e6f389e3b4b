package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/physlab/internal/dynamo"
)

func TestRK45Accuracy(t *testing.T) {
	sys := &harmonic{}
	integ := NewRK45()

	x := dynamo.State{1.0, 0.0}
	dt := 0.05
	steps := 200

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expected := math.Cos(float64(steps) * dt)
	if math.Abs(x[0]-expected) > 1e-5 {
		t.Errorf("position error too large: got %.8f, expected %.8f", x[0], expected)
	}
}

// A coarse step under a tight tolerance must be retried with a smaller step,
// and the accepted state must actually satisfy the tolerance, not merely
// shrink the next step.
func TestRK45AdaptiveRetriesWithinTolerance(t *testing.T) {
	sys := &harmonic{}
	integ := NewRK45()

	x := dynamo.State{1.0, 0.0}
	tol := 1e-10

	xNew, taken, next, err := integ.StepAdaptive(sys, x, 0, 1.0, tol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken >= 1.0 {
		t.Errorf("expected the step to be rejected and retried, taken=%f", taken)
	}
	if next <= 0 {
		t.Errorf("expected positive suggested step, got %g", next)
	}

	wantPos := math.Cos(taken)
	wantVel := -math.Sin(taken)
	if math.Abs(xNew[0]-wantPos) > 100*tol || math.Abs(xNew[1]-wantVel) > 100*tol {
		t.Errorf("accepted state out of tolerance: got (%.12f, %.12f), want (%.12f, %.12f)",
			xNew[0], xNew[1], wantPos, wantVel)
	}
}

func TestRK45AdaptiveGrowsStep(t *testing.T) {
	sys := &harmonic{}
	integ := NewRK45()

	x := dynamo.State{1.0, 0.0}

	_, taken, next, err := integ.StepAdaptive(sys, x, 0, 1e-6, 1e-3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken != 1e-6 {
		t.Errorf("easy step should be accepted as requested, taken=%g", taken)
	}
	if next <= 1e-6 {
		t.Errorf("expected step growth, got next=%g", next)
	}
}

// Per-step error stays bounded by the tolerance across a long integration,
// whatever step sizes the controller picks.
func TestRK45AdaptiveBoundsPerStepError(t *testing.T) {
	sys := &harmonic{}
	integ := NewRK45()

	x := dynamo.State{1.0, 0.0}
	tGlobal := 0.0
	dt := 0.5
	tol := 1e-8

	for i := 0; i < 200 && tGlobal < 10; i++ {
		xNew, taken, next, err := integ.StepAdaptive(sys, x, tGlobal, dt, tol)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}

		// Reference: a tiny-step walk over the same interval.
		ref := x.Clone()
		fine := taken / 1000
		for j := 0; j < 1000; j++ {
			ref = integ.Step(sys, ref, tGlobal+float64(j)*fine, fine)
		}

		if diff := xNew.Sub(ref).Norm(); diff > 10*tol {
			t.Fatalf("step %d: local error %g exceeds tolerance %g", i, diff, tol)
		}

		x = xNew
		tGlobal += taken
		dt = next
	}
}

// jitterSystem returns a different huge derivative on every call, so the
// embedded error estimate never converges no matter how far dt shrinks.
type jitterSystem struct{ calls int }

func (j *jitterSystem) Derive(x dynamo.State, t float64) dynamo.State {
	j.calls++
	if j.calls%2 == 0 {
		return dynamo.State{1e8}
	}
	return dynamo.State{-1e8}
}

func (j *jitterSystem) StateDim() int { return 1 }

func TestRK45AdaptiveStepUnderflow(t *testing.T) {
	integ := NewRK45()

	_, _, _, err := integ.StepAdaptive(&jitterSystem{}, dynamo.State{1.0}, 0, 0.1, 1e-12)
	if !errors.Is(err, dynamo.ErrStepTooSmall) {
		t.Fatalf("expected ErrStepTooSmall, got %v", err)
	}
}
