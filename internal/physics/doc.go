// Package physics defines the mechanical systems simulated by physlab.
//
// Systems are plain data: a SecondOrder value holds the damping, restoring
// and driving terms of y'' = a1(y') + a0(y) + b(t) as scalar functions,
// optionally together with a closed-form solution and a total-energy
// function. Constructors such as NewPendulum return particular parameter
// choices rather than subclasses.
package physics
