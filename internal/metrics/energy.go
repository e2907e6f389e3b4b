package metrics

import (
	"math"

	"github.com/san-kum/physlab/internal/dynamo"
)

// EnergyDrift tracks the largest relative deviation of a system's energy
// from its value at the first observed sample. For a conservative system
// this stays near zero; growth signals an integration problem.
type EnergyDrift struct {
	name    string
	sys     dynamo.Hamiltonian
	initial float64
	worst   float64
	samples int
}

func NewEnergyDrift(sys dynamo.Hamiltonian) *EnergyDrift {
	return &EnergyDrift{
		name: "energy_drift",
		sys:  sys,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(x dynamo.State, t float64) {
	energy := e.sys.Energy(x)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	denom := math.Abs(e.initial)
	if denom < 1e-12 {
		denom = 1
	}
	if drift := math.Abs(energy-e.initial) / denom; drift > e.worst {
		e.worst = drift
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.worst
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.worst = 0
	e.samples = 0
}
