package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/integrators"
	"github.com/san-kum/physlab/internal/metrics"
)

// Study is a named, self-contained investigation: it runs whatever
// simulations it needs and writes its figures under cfg.FiguresDir.
type Study struct {
	Name        string
	Description string
	Run         func(ctx context.Context, cfg *config.Config) error
}

type Registry struct {
	studies map[string]Study
}

func NewRegistry() *Registry {
	r := &Registry{
		studies: make(map[string]Study),
	}

	for _, s := range []Study{
		{"comparison", "free pendulum vs the small-angle analytic solution", runComparison},
		{"period-amplitude", "oscillation period against initial amplitude", runPeriodAmplitude},
		{"damping", "free decay for several damping strengths", runDamping},
		{"driving", "driven pendulum across drive amplitudes up to chaos", runDriving},
		{"weak-driving", "driven pendulum at small drive amplitudes", runWeakDriving},
		{"sensitivity", "separation of two nearby chaotic trajectories", runSensitivity},
		{"chaos", "phase portrait in the chaotic regime", runChaos},
		{"cornu", "Cornu spiral of the Fresnel integrals", runCornu},
		{"diffraction", "near-field slit diffraction at several screen distances", runDiffraction},
		{"montecarlo", "Monte Carlo error scaling with sample count", runMonteCarlo},
		{"single-coil", "loop field on axis vs the ideal-loop closed form", runSingleCoil},
		{"helmholtz", "field of a Helmholtz pair along the axis", runHelmholtz},
		{"many-coils", "stacked coaxial coils and a cross-section vector field", runManyCoils},
	} {
		r.studies[s.Name] = s
	}

	return r
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	return newIntegrator(name)
}

func newIntegrator(name string) (dynamo.Integrator, error) {
	switch name {
	case "euler":
		return integrators.NewEuler(), nil
	case "rk4":
		return integrators.NewRK4(), nil
	case "rk45":
		return integrators.NewRK45(), nil
	case "verlet":
		return integrators.NewVerlet(), nil
	case "leapfrog":
		return integrators.NewLeapfrog(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func (r *Registry) RunStudy(ctx context.Context, name string, cfg *config.Config) error {
	s, ok := r.studies[name]
	if !ok {
		return fmt.Errorf("unknown study: %s", name)
	}
	return s.Run(ctx, cfg)
}

func (r *Registry) ListStudies() []Study {
	out := make([]Study, 0, len(r.studies))
	for _, s := range r.studies {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) DefaultMetrics(sys dynamo.Hamiltonian) []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewEnergyDrift(sys),
		metrics.NewAmplitude(0),
	}
}

func (r *Registry) ListIntegrators() []string {
	return []string{"euler", "rk4", "rk45", "verlet", "leapfrog"}
}
