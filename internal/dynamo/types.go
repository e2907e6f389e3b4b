package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(sys System, x State, t float64, dt float64) State
}

// AdaptiveIntegrator steps with local error control. StepAdaptive advances
// by at most dt, retrying with smaller steps until the error estimate meets
// tol. It returns the new state, the step actually taken and the suggested
// next step.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, float64, error)
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

type Config struct {
	Dt            float64
	Duration      float64
	Tolerance     float64
	MaxDt         float64
	MinDt         float64
	Adaptive      bool
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.002,
		Duration:      10.0,
		Tolerance:     1e-6,
		MaxDt:         0.1,
		MinDt:         1e-8,
		Adaptive:      false,
		ValidateState: true,
	}
}

type Result struct {
	States      []State
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
}

// Empty reports whether the result carries no trajectory data.
func (r *Result) Empty() bool {
	return r == nil || len(r.States) == 0
}

// Series extracts the idx-th state variable over the whole trajectory.
func (r *Result) Series(idx int) []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		if idx < len(s) {
			out[i] = s[idx]
		}
	}
	return out
}

// Window returns the index range [lo, hi) of samples with t0 <= t < t1.
func (r *Result) Window(t0, t1 float64) (lo, hi int) {
	for lo = 0; lo < len(r.Times) && r.Times[lo] < t0; lo++ {
	}
	for hi = lo; hi < len(r.Times) && r.Times[hi] < t1; hi++ {
	}
	return lo, hi
}
