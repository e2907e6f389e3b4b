package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/physlab/internal/dynamo"
)

type Config struct {
	Integrator string
	InitState  []float64
	Dt         float64
	Duration   float64
}

type Experiment struct {
	cfg       Config
	simulator *dynamo.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup resolves the configured integrator and binds the system and metrics.
func (e *Experiment) Setup(sys dynamo.System, metrics []dynamo.Metric) error {
	integ, err := newIntegrator(e.cfg.Integrator)
	if err != nil {
		return err
	}
	e.simulator = dynamo.New(sys, integ)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	x0 := make(dynamo.State, len(e.cfg.InitState))
	copy(x0, e.cfg.InitState)

	simCfg := dynamo.DefaultConfig()
	simCfg.Dt = e.cfg.Dt
	simCfg.Duration = e.cfg.Duration

	return e.simulator.Run(ctx, x0, simCfg)
}

// Simulator returns the underlying simulator for adding observers.
func (e *Experiment) Simulator() *dynamo.Simulator {
	return e.simulator
}
