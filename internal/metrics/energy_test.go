package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/physics"
)

func TestEnergyDriftConservative(t *testing.T) {
	p := physics.NewPendulum(1.0, 0, 0, 0, dynamo.State{0.5, 0})
	m := NewEnergyDrift(p)

	// Same state observed twice: no drift.
	m.Observe(dynamo.State{0.5, 0}, 0)
	m.Observe(dynamo.State{0.5, 0}, 1)

	if m.Value() != 0 {
		t.Errorf("expected zero drift for identical states, got %g", m.Value())
	}
}

func TestEnergyDriftDetectsGrowth(t *testing.T) {
	p := physics.NewPendulum(1.0, 0, 0, 0, dynamo.State{0.5, 0})
	m := NewEnergyDrift(p)

	m.Observe(dynamo.State{0.5, 0}, 0)
	m.Observe(dynamo.State{0.5, 1.0}, 1)

	initial := p.Energy(dynamo.State{0.5, 0})
	grown := p.Energy(dynamo.State{0.5, 1.0})
	want := math.Abs(grown-initial) / math.Abs(initial)

	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected drift %g, got %g", want, m.Value())
	}
}

func TestEnergyDriftReset(t *testing.T) {
	p := physics.NewPendulum(1.0, 0, 0, 0, dynamo.State{0.5, 0})
	m := NewEnergyDrift(p)

	m.Observe(dynamo.State{0.5, 0}, 0)
	m.Observe(dynamo.State{1.5, 2.0}, 1)
	if m.Value() == 0 {
		t.Error("expected non-zero drift before reset")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestAmplitudeTracksPeak(t *testing.T) {
	m := NewAmplitude(0)

	m.Observe(dynamo.State{0.3, 0}, 0)
	m.Observe(dynamo.State{-1.2, 0}, 1)
	m.Observe(dynamo.State{0.7, 0}, 2)

	if m.Value() != 1.2 {
		t.Errorf("expected peak 1.2, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestAmplitudeOutOfRangeIndex(t *testing.T) {
	m := NewAmplitude(5)
	m.Observe(dynamo.State{1, 2}, 0)
	if m.Value() != 0 {
		t.Error("expected zero for out-of-range index")
	}
}
