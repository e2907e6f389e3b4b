package dynamo

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	sys        System
	integrator Integrator
	metrics    []Metric
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

// Run integrates the system from x0 over cfg.Duration and records the full
// trajectory. The trajectory accumulated so far is returned alongside any
// error, so callers can inspect partial runs.
func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([]State, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt

	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	initialEnergy := s.computeEnergy(x)

	// Fixed-step mode takes exactly steps steps of cfg.Dt. Adaptive mode
	// walks the time axis until cfg.Duration is covered, clamping the final
	// step so the recorded times end on the requested duration.
	for i := 0; ; i++ {
		if cfg.Adaptive {
			if cfg.Duration-t <= timeEps*cfg.Duration {
				break
			}
		} else if i >= steps {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(x, t)
		}

		var newX State
		var stepErr error
		taken := dt

		if cfg.Adaptive {
			if t+dt > cfg.Duration {
				dt = cfg.Duration - t
			}
			var next float64
			newX, taken, next, stepErr = s.adaptiveStep(x, t, dt, cfg)
			dt = next
		} else {
			newX = s.integrator.Step(s.sys, x, t, dt)
		}

		if stepErr != nil {
			return result, SimError{Time: t, Step: i, Message: stepErr.Error()}
		}

		if cfg.ValidateState && !newX.IsValid() {
			return result, fmt.Errorf("%w at %v", ErrInvalidState,
				SimError{Time: t, Step: i, Message: "state diverged"})
		}

		x = newX
		t += taken
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)
	}

	finalEnergy := s.computeEnergy(x)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Adaptive && cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive for adaptive stepping")
	}
	return nil
}

func (s *Simulator) computeEnergy(x State) float64 {
	if ec, ok := s.sys.(Hamiltonian); ok {
		return ec.Energy(x)
	}
	return 0
}

// timeEps bounds the relative time residue left uncovered by an adaptive run.
const timeEps = 1e-12

// adaptiveStep advances by at most dt within cfg.Tolerance. It returns the
// new state, the step actually taken and the suggested next step.
func (s *Simulator) adaptiveStep(x State, t, dt float64, cfg Config) (State, float64, float64, error) {
	if adaptive, ok := s.integrator.(AdaptiveIntegrator); ok {
		return adaptive.StepAdaptive(s.sys, x, t, dt, cfg.Tolerance)
	}

	// Step doubling for integrators without built-in error estimation.
	for {
		x1 := s.integrator.Step(s.sys, x, t, dt)
		xHalf := s.integrator.Step(s.sys, x, t, dt/2)
		x2 := s.integrator.Step(s.sys, xHalf, t+dt/2, dt/2)

		errEst := x1.Sub(x2).Norm()

		if errEst > cfg.Tolerance {
			if dt/2 < cfg.MinDt {
				return x2, dt, dt, ErrStepTooSmall
			}
			dt /= 2
			continue
		}

		next := dt
		if errEst < cfg.Tolerance/10 && dt < cfg.MaxDt {
			next = math.Min(dt*2, cfg.MaxDt)
		}
		return x2, dt, next, nil
	}
}
