package physics

import (
	"math"

	"github.com/san-kum/physlab/internal/dynamo"
)

// Pendulum is a driven, damped pendulum:
//
//	theta'' = -q*theta' - w0^2*sin(theta) + f*sin(wd*t)
//
// The analytic solution stored on the system is the small-angle
// approximation, valid only for small initial deflections with zero
// damping and driving.
type Pendulum struct {
	SecondOrder

	Omega0    float64 // natural frequency
	DriveFreq float64 // driving frequency
	Q         float64 // dissipation constant
	DriveAmp  float64 // driving force coefficient
	Y0        dynamo.State
}

// NewPendulum builds a pendulum system. A nil y0 defaults to a small
// deflection of 0.01 rad at rest.
func NewPendulum(w0, wd, q, f float64, y0 dynamo.State) *Pendulum {
	if y0 == nil {
		y0 = dynamo.State{0.01, 0}
	}

	p := &Pendulum{
		Omega0:    w0,
		DriveFreq: wd,
		Q:         q,
		DriveAmp:  f,
		Y0:        y0.Clone(),
	}

	p.SecondOrder = SecondOrder{
		Damping:   func(v float64) float64 { return -q * v },
		Restoring: func(y float64) float64 { return -(w0 * w0) * math.Sin(y) },
		Forcing:   func(t float64) float64 { return f * math.Sin(wd*t) },
		Analytic: func(t float64) float64 {
			return y0[0]*math.Cos(w0*t) + (y0[1]/w0)*math.Sin(w0*t)
		},
		// No small-angle approximation here, so the proper potential is used.
		TotalEnergy: func(y, v float64) float64 {
			return v*v/2 + w0*w0*(1-math.Cos(y))
		},
	}

	return p
}

// InitialEnergy is the total energy at the initial condition.
func (p *Pendulum) InitialEnergy() float64 {
	return p.TotalEnergy(p.Y0[0], p.Y0[1])
}
