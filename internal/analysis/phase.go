package analysis

import (
	"math"

	"github.com/san-kum/physlab/internal/dynamo"
)

// Wrap maps an angle into (-pi, pi].
func Wrap(theta float64) float64 {
	w := math.Mod(theta+math.Pi, 2*math.Pi)
	if w <= 0 {
		w += 2 * math.Pi
	}
	return w - math.Pi
}

// PhasePortrait extracts the (position, velocity) curve of a trajectory
// with the position wrapped into (-pi, pi], suitable for phase-space plots
// of rotating solutions.
func PhasePortrait(r *dynamo.Result, posIdx, velIdx int) (xs, ys []float64, err error) {
	if r.Empty() {
		return nil, nil, ErrEmptyTrajectory
	}

	xs = make([]float64, len(r.States))
	ys = make([]float64, len(r.States))
	for i, s := range r.States {
		xs[i] = Wrap(s[posIdx])
		ys[i] = s[velIdx]
	}
	return xs, ys, nil
}

// EnergyFraction returns 1 - E(t)/E0 over the trajectory: the fraction of
// the initial energy lost at each sample.
func EnergyFraction(r *dynamo.Result, energy func(y, v float64) float64, initial float64) ([]float64, error) {
	if r.Empty() {
		return nil, ErrEmptyTrajectory
	}

	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = 1 - energy(s[0], s[1])/initial
	}
	return out, nil
}

// Divergence measures the separation of two trajectories over time, used
// to illustrate sensitivity to initial conditions. Both results must cover
// the same time grid; the shorter one bounds the output.
func Divergence(a, b *dynamo.Result) ([]float64, error) {
	if a.Empty() || b.Empty() {
		return nil, ErrEmptyTrajectory
	}

	n := len(a.States)
	if len(b.States) < n {
		n = len(b.States)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.States[i].Sub(b.States[i]).Norm()
	}
	return out, nil
}
