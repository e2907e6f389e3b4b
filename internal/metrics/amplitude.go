package metrics

import (
	"math"

	"github.com/san-kum/physlab/internal/dynamo"
)

// Amplitude records the largest absolute excursion of one state variable.
type Amplitude struct {
	name string
	idx  int
	peak float64
}

func NewAmplitude(idx int) *Amplitude {
	return &Amplitude{
		name: "amplitude",
		idx:  idx,
	}
}

func (a *Amplitude) Name() string { return a.name }

func (a *Amplitude) Observe(x dynamo.State, t float64) {
	if a.idx >= len(x) {
		return
	}
	if v := math.Abs(x[a.idx]); v > a.peak {
		a.peak = v
	}
}

func (a *Amplitude) Value() float64 {
	return a.peak
}

func (a *Amplitude) Reset() {
	a.peak = 0
}
