package analysis

import (
	"errors"
	"fmt"

	"github.com/san-kum/physlab/internal/dynamo"
)

// ErrEmptyTrajectory is returned when a derived quantity is requested
// before a simulation has produced any trajectory data.
var ErrEmptyTrajectory = errors.New("analysis: no trajectory data; run a simulation first")

// Crossings returns the times at which the idx-th state variable crosses
// zero from below, linearly interpolated between samples.
func Crossings(r *dynamo.Result, idx int) ([]float64, error) {
	if r.Empty() || len(r.States) < 2 {
		return nil, ErrEmptyTrajectory
	}

	ys := r.Series(idx)
	var crossings []float64
	for i := 0; i < len(ys)-1; i++ {
		if ys[i] < 0 && ys[i+1] >= 0 {
			frac := -ys[i] / (ys[i+1] - ys[i])
			crossings = append(crossings, r.Times[i]+frac*(r.Times[i+1]-r.Times[i]))
		}
	}
	return crossings, nil
}

// Period estimates the oscillation period of the idx-th state variable as
// the mean spacing of its rising zero crossings.
func Period(r *dynamo.Result, idx int) (float64, error) {
	crossings, err := Crossings(r, idx)
	if err != nil {
		return 0, err
	}
	if len(crossings) < 2 {
		return 0, fmt.Errorf("analysis: need at least 2 zero crossings, found %d", len(crossings))
	}
	return (crossings[len(crossings)-1] - crossings[0]) / float64(len(crossings)-1), nil
}

// Frequency is the reciprocal of Period.
func Frequency(r *dynamo.Result, idx int) (float64, error) {
	period, err := Period(r, idx)
	if err != nil {
		return 0, err
	}
	return 1 / period, nil
}
