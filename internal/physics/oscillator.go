package physics

import "github.com/san-kum/physlab/internal/dynamo"

// SecondOrder is a one-dimensional mechanical system governed by
//
//	y'' = a1(y') + a0(y) + b(t)
//
// where a1 is the damping term, a0 the restoring term and b the driving
// term. Specific systems are particular choices of the three functions.
type SecondOrder struct {
	Damping   func(v float64) float64
	Restoring func(y float64) float64
	Forcing   func(t float64) float64

	// Analytic is the closed-form position solution, when one is known.
	Analytic func(t float64) float64

	// TotalEnergy gives the total mechanical energy for a (position,
	// velocity) pair, when the system has a known energy function.
	TotalEnergy func(y, v float64) float64
}

func (s *SecondOrder) StateDim() int { return 2 }

// Derive rewrites the second-order equation as two coupled first-order
// equations: x = (y, y'), dx/dt = (y', a1(y') + a0(y) + b(t)).
func (s *SecondOrder) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], s.Damping(x[1]) + s.Restoring(x[0]) + s.Forcing(t)}
}

// Energy implements dynamo.Hamiltonian. Systems without a known energy
// function report zero, which disables drift accounting in the simulator.
func (s *SecondOrder) Energy(x dynamo.State) float64 {
	if s.TotalEnergy == nil {
		return 0
	}
	return s.TotalEnergy(x[0], x[1])
}
