// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical stepping interface
//   - [Simulator]: orchestrates simulation runs and records trajectories
//
// # Example
//
//	sys := physics.NewPendulum(1, 2.0/3.0, 0, 0, nil)
//	integ := integrators.NewRK4()
//	sim := dynamo.New(sys, integ)
//	result, _ := sim.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Run independent simulations on
// separate Simulator values; the parallel package maps a pure function over
// a batch of inputs when many runs are needed.
package dynamo
