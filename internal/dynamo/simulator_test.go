package dynamo

import (
	"context"
	"math"
	"testing"
)

type decaySystem struct{}

func (d *decaySystem) Derive(x State, t float64) State {
	return State{-x[0]}
}

func (d *decaySystem) StateDim() int { return 1 }

type eulerStep struct{}

func (e *eulerStep) Step(sys System, x State, t float64, dt float64) State {
	dx := sys.Derive(x, t)
	result := make(State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}

func TestSimulatorRun(t *testing.T) {
	sim := New(&decaySystem{}, &eulerStep{})

	cfg := Config{Dt: 0.1, Duration: 1.0}

	x0 := State{1.0}
	result, err := sim.Run(context.Background(), x0, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}

	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}

	finalState := result.States[len(result.States)-1][0]
	expected := 1.0 * math.Exp(-1.0)
	if math.Abs(finalState-expected) > 0.2 {
		t.Errorf("expected final state ~%.4f, got %.4f", expected, finalState)
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	sim := New(&decaySystem{}, &eulerStep{})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
		{"adaptive without tolerance", Config{Dt: 0.1, Duration: 1.0, Adaptive: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0 := State{1.0}
			_, err := sim.Run(context.Background(), x0, tt.cfg)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

type blowupSystem struct{}

func (b *blowupSystem) Derive(x State, t float64) State {
	return State{math.NaN()}
}

func (b *blowupSystem) StateDim() int { return 1 }

func TestSimulatorDetectsInvalidState(t *testing.T) {
	sim := New(&blowupSystem{}, &eulerStep{})

	cfg := Config{Dt: 0.1, Duration: 1.0, ValidateState: true}
	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err == nil {
		t.Fatal("expected error from NaN state")
	}
	if result == nil {
		t.Fatal("expected partial result")
	}
	if len(result.States) != 1 {
		t.Errorf("expected only the initial state recorded, got %d", len(result.States))
	}
}

func TestSimulatorContextCancel(t *testing.T) {
	sim := New(&decaySystem{}, &eulerStep{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{Dt: 0.001, Duration: 100.0}
	_, err := sim.Run(ctx, State{1.0}, cfg)
	if err == nil {
		t.Error("expected context error")
	}
}

type countMetric struct {
	count int
	sum   float64
}

func (c *countMetric) Name() string { return "mean_x0" }
func (c *countMetric) Observe(x State, t float64) {
	c.count++
	c.sum += x[0]
}
func (c *countMetric) Value() float64 {
	if c.count == 0 {
		return 0
	}
	return c.sum / float64(c.count)
}
func (c *countMetric) Reset() {
	c.count = 0
	c.sum = 0
}

func TestSimulatorMetrics(t *testing.T) {
	sim := New(&decaySystem{}, &eulerStep{})

	metric := &countMetric{}
	sim.AddMetric(metric)

	cfg := Config{Dt: 0.1, Duration: 1.0}
	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["mean_x0"]; !ok {
		t.Error("metric not found in result")
	}

	if metric.count != 10 {
		t.Errorf("expected 10 observations, got %d", metric.count)
	}
}

func TestSimulatorAdaptiveStepDoubling(t *testing.T) {
	sim := New(&decaySystem{}, &eulerStep{})

	cfg := Config{
		Dt:        0.1,
		Duration:  1.0,
		Adaptive:  true,
		Tolerance: 1e-4,
		MinDt:     1e-10,
		MaxDt:     0.1,
	}

	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatalf("adaptive run failed: %v", err)
	}

	finalState := result.States[len(result.States)-1][0]
	if finalState <= 0 || finalState >= 1 {
		t.Errorf("expected decayed state in (0, 1), got %f", finalState)
	}

	finalTime := result.Times[len(result.Times)-1]
	if math.Abs(finalTime-cfg.Duration) > 1e-9 {
		t.Errorf("expected run to end at t=%.1f, got %f", cfg.Duration, finalTime)
	}
}

type rk4Step struct{}

func (r *rk4Step) Step(sys System, x State, t float64, dt float64) State {
	n := len(x)
	k1 := sys.Derive(x, t)
	mid := make(State, n)
	for i := range x {
		mid[i] = x[i] + 0.5*dt*k1[i]
	}
	k2 := sys.Derive(mid, t+0.5*dt)
	for i := range x {
		mid[i] = x[i] + 0.5*dt*k2[i]
	}
	k3 := sys.Derive(mid, t+0.5*dt)
	for i := range x {
		mid[i] = x[i] + dt*k3[i]
	}
	k4 := sys.Derive(mid, t+dt)
	result := make(State, n)
	for i := range x {
		result[i] = x[i] + dt/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result
}

// Every recorded time must correspond to its recorded state, even when the
// controller grows the step: state(i) has to match the exact solution at
// Times[i], and the trajectory has to cover exactly the requested duration.
func TestSimulatorAdaptiveTimesMatchStates(t *testing.T) {
	sim := New(&decaySystem{}, &rk4Step{})

	cfg := Config{
		Dt:        0.01,
		Duration:  1.0,
		Adaptive:  true,
		Tolerance: 1e-6,
		MinDt:     1e-10,
		MaxDt:     0.5,
	}

	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatalf("adaptive run failed: %v", err)
	}

	finalTime := result.Times[len(result.Times)-1]
	if math.Abs(finalTime-1.0) > 1e-9 {
		t.Fatalf("expected run to cover duration 1.0, final time %f", finalTime)
	}

	for i, tt := range result.Times {
		want := math.Exp(-tt)
		got := result.States[i][0]
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("t=%.6f: state %.10f does not match exp(-t)=%.10f", tt, got, want)
		}
	}

	if result.StepsTaken+1 != len(result.Times) {
		t.Errorf("StepsTaken=%d inconsistent with %d recorded times",
			result.StepsTaken, len(result.Times))
	}
}

type adaptiveStub struct {
	used float64
	next float64
}

func (a *adaptiveStub) Step(sys System, x State, t float64, dt float64) State {
	return x.Clone()
}

func (a *adaptiveStub) StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, float64, error) {
	used := math.Min(dt, a.used)
	newX := make(State, len(x))
	for i := range x {
		newX[i] = x[i] * math.Exp(-used)
	}
	return newX, used, a.next, nil
}

// The simulator must advance time by the step the integrator actually took,
// not by its suggestion for the next step.
func TestSimulatorAdaptiveUsesTakenStep(t *testing.T) {
	sim := New(&decaySystem{}, &adaptiveStub{used: 0.25, next: 10.0})

	cfg := Config{
		Dt:        0.25,
		Duration:  1.0,
		Adaptive:  true,
		Tolerance: 1e-6,
		MinDt:     1e-10,
		MaxDt:     10.0,
	}

	result, err := sim.Run(context.Background(), State{1.0}, cfg)
	if err != nil {
		t.Fatalf("adaptive run failed: %v", err)
	}

	for i, tt := range result.Times {
		if tt > 1.0+1e-9 {
			t.Fatalf("time %d overshoots duration: %f", i, tt)
		}
	}
	if got := result.Times[1]; math.Abs(got-0.25) > 1e-12 {
		t.Errorf("first step should advance by the taken 0.25, got %f", got)
	}
	if final := result.Times[len(result.Times)-1]; math.Abs(final-1.0) > 1e-9 {
		t.Errorf("expected final time 1.0, got %f", final)
	}
}
