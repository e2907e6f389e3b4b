package experiment

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/physlab/internal/analysis"
	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/dynamo"
	"github.com/san-kum/physlab/internal/figures"
	"github.com/san-kum/physlab/internal/fresnel"
	"github.com/san-kum/physlab/internal/magnetics"
	"github.com/san-kum/physlab/internal/metrics"
	"github.com/san-kum/physlab/internal/montecarlo"
	"github.com/san-kum/physlab/internal/parallel"
	"github.com/san-kum/physlab/internal/physics"
)

// simulate runs one pendulum to completion and returns it with its trajectory.
func simulate(ctx context.Context, cfg *config.Config, q, driveAmp, theta0, duration float64) (*physics.Pendulum, *dynamo.Result, error) {
	pc := cfg.Pendulum
	p := physics.NewPendulum(pc.Omega0, pc.DriveFreq, q, driveAmp, dynamo.State{theta0, pc.Omega})

	name := cfg.Integrator
	if name == "" {
		name = "rk4"
	}

	e := New(Config{
		Integrator: name,
		InitState:  p.Y0,
		Dt:         pc.Dt,
		Duration:   duration,
	})
	if err := e.Setup(p, []dynamo.Metric{
		metrics.NewEnergyDrift(p),
		metrics.NewAmplitude(0),
	}); err != nil {
		return nil, nil, err
	}

	r, err := e.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return p, r, nil
}

func runComparison(ctx context.Context, cfg *config.Config) error {
	pc := cfg.Pendulum
	duration := 1000 * 2 * math.Pi / pc.Omega0
	p, r, err := simulate(ctx, cfg, 0, 0, pc.Theta, duration)
	if err != nil {
		return err
	}

	// First and last few cycles against the small-angle solution; any
	// phase error accumulated over ~1000 periods shows up in the second.
	window := 6 * math.Pi / pc.Omega0
	if _, err := figures.Trace(cfg.FiguresDir, "comparison_start", r, p.Analytic, 0, window); err != nil {
		return err
	}
	if _, err := figures.Trace(cfg.FiguresDir, "comparison_end", r, p.Analytic, duration-window, duration); err != nil {
		return err
	}
	if _, err := figures.EnergyLoss(cfg.FiguresDir, "comparison_energy", r, p.TotalEnergy, p.InitialEnergy()); err != nil {
		return err
	}

	period, err := analysis.Period(r, 0)
	if err != nil {
		return err
	}
	fmt.Printf("measured period %.6f, small-angle prediction %.6f\n", period, 2*math.Pi/pc.Omega0)
	return nil
}

func runPeriodAmplitude(ctx context.Context, cfg *config.Config) error {
	pc := cfg.Pendulum
	amplitudes := floats.Span(make([]float64, 50), 0.1, 3.0)

	periods, err := parallel.MapErr(amplitudes, func(theta0 float64) (float64, error) {
		_, r, err := simulate(ctx, cfg, 0, 0, theta0, 20*2*math.Pi/pc.Omega0)
		if err != nil {
			return 0, err
		}
		return analysis.Period(r, 0)
	})
	if err != nil {
		return err
	}

	path, err := figures.PeriodVsAmplitude(cfg.FiguresDir, amplitudes, periods)
	if err != nil {
		return err
	}
	fmt.Printf("period rises from %.4f to %.4f across amplitudes; wrote %s\n",
		periods[0], periods[len(periods)-1], path)
	return nil
}

func runDamping(ctx context.Context, cfg *config.Config) error {
	for _, q := range []float64{1, 5, 10} {
		p, r, err := simulate(ctx, cfg, q, 0, 0.5, cfg.Pendulum.Duration)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("damping_q%g", q)
		if _, err := figures.Trace(cfg.FiguresDir, name, r, nil, 0, cfg.Pendulum.Duration); err != nil {
			return err
		}
		if _, err := figures.EnergyLoss(cfg.FiguresDir, name+"_energy", r, p.TotalEnergy, p.InitialEnergy()); err != nil {
			return err
		}
	}
	return nil
}

func runDriving(ctx context.Context, cfg *config.Config) error {
	return driveSweep(ctx, cfg, "driving", []float64{0.5, 1.2, 1.44, 1.465}, true)
}

func runWeakDriving(ctx context.Context, cfg *config.Config) error {
	return driveSweep(ctx, cfg, "weak_driving", []float64{0.1, 0.2, 0.3, 0.4, 0.5}, false)
}

func driveSweep(ctx context.Context, cfg *config.Config, prefix string, amps []float64, portraits bool) error {
	q := cfg.Pendulum.Q
	if q == 0 {
		q = 0.5
	}
	duration := math.Max(cfg.Pendulum.Duration, 200)

	for _, f := range amps {
		_, r, err := simulate(ctx, cfg, q, f, cfg.Pendulum.Theta, duration)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%s_f%g", prefix, f)
		if _, err := figures.Trace(cfg.FiguresDir, name, r, nil, 0, duration); err != nil {
			return err
		}
		if portraits {
			if _, err := figures.PhasePortrait(cfg.FiguresDir, name+"_phase", r); err != nil {
				return err
			}
		}
	}
	return nil
}

func runSensitivity(ctx context.Context, cfg *config.Config) error {
	q, f := 0.5, 1.465
	duration := math.Max(cfg.Pendulum.Duration, 400)

	_, a, err := simulate(ctx, cfg, q, f, cfg.Pendulum.Theta, duration)
	if err != nil {
		return err
	}
	_, b, err := simulate(ctx, cfg, q, f, cfg.Pendulum.Theta+1e-5, duration)
	if err != nil {
		return err
	}

	path, err := figures.Separation(cfg.FiguresDir, "sensitivity", a, b)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runChaos(ctx context.Context, cfg *config.Config) error {
	f := cfg.Pendulum.DriveAmp
	if f == 0 {
		f = 1.465
	}
	q := cfg.Pendulum.Q
	if q == 0 {
		q = 0.5
	}
	duration := math.Max(cfg.Pendulum.Duration, 400)

	_, r, err := simulate(ctx, cfg, q, f, cfg.Pendulum.Theta, duration)
	if err != nil {
		return err
	}

	path, err := figures.PhasePortrait(cfg.FiguresDir, "chaos_phase", r)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runCornu(_ context.Context, cfg *config.Config) error {
	path, err := figures.CornuSpiral(cfg.FiguresDir, -5, 4, 2000)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runDiffraction(_ context.Context, cfg *config.Config) error {
	patterns := []*fresnel.DiffractionPattern{
		fresnel.NewDiffractionPattern(0.3, 0.01, 0.2),
		fresnel.NewDiffractionPattern(1.0, 0.01, 0.2),
		fresnel.NewDiffractionPattern(3.0, 0.01, 0.2),
	}
	paths, err := figures.Diffraction(cfg.FiguresDir, patterns, 0.5, 1000)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d diffraction figures\n", len(paths))
	return nil
}

func runMonteCarlo(_ context.Context, cfg *config.Config) error {
	mc := cfg.MonteCarlo
	ns := montecarlo.PowersOfTwo(13)

	aggs, err := montecarlo.Sweep(mc.Dim, mc.Side, nil, ns, mc.Trials, mc.Seed)
	if err != nil {
		return err
	}

	stds := make([]float64, len(aggs))
	meanErrs := make([]float64, len(aggs))
	for i, a := range aggs {
		stds[i] = a.Std
		meanErrs[i] = a.MeanErr
	}

	stdFit, err := montecarlo.FitPowerLaw(ns, stds)
	if err != nil {
		return err
	}
	errFit, err := montecarlo.FitPowerLaw(ns, meanErrs)
	if err != nil {
		return err
	}

	if _, err := figures.MonteCarloValues(cfg.FiguresDir, aggs, montecarlo.AnalyticValue); err != nil {
		return err
	}
	if _, err := figures.MonteCarloErrors(cfg.FiguresDir, aggs, stdFit, errFit); err != nil {
		return err
	}

	last := aggs[len(aggs)-1]
	fmt.Printf("estimate at n=%d: %.4f +/- %.4f (analytic %.4f)\n",
		last.Samples, last.Mean, last.Std, montecarlo.AnalyticValue)
	fmt.Printf("trial std fit:        %s\n", stdFit)
	fmt.Printf("single-draw est fit:  %s\n", errFit)
	return nil
}

func runSingleCoil(_ context.Context, cfg *config.Config) error {
	fc := cfg.Field
	zs := floats.Span(make([]float64, 101), -5, 5)

	for res := 16; res <= 1024; res *= 4 {
		loop, err := magnetics.NewCircularLoop(fc.Current, fc.Radius, magnetics.Vec3{}, res)
		if err != nil {
			return err
		}
		if _, err := figures.OnAxisField(cfg.FiguresDir, loop, fc.Radius, fc.Current, zs, res); err != nil {
			return err
		}

		got := loop.FieldAt(magnetics.Vec3{}).Z
		want := fc.Current / (2 * fc.Radius)
		fmt.Printf("resolution %4d: center field %.8f (ideal %.8f, error %.2e)\n",
			res, got, want, math.Abs(got-want))
	}
	return nil
}

func runHelmholtz(_ context.Context, cfg *config.Config) error {
	fc := cfg.Field
	half := fc.Radius / 2

	lower, err := magnetics.NewCircularLoop(fc.Current, fc.Radius, magnetics.Vec3{Z: -half}, fc.Resolution)
	if err != nil {
		return err
	}
	upper, err := magnetics.NewCircularLoop(fc.Current, fc.Radius, magnetics.Vec3{Z: half}, fc.Resolution)
	if err != nil {
		return err
	}
	pair := []magnetics.Wire{lower, upper}

	zs := floats.Span(make([]float64, 201), -2*fc.Radius, 2*fc.Radius)
	path, err := figures.CoilAxisField(cfg.FiguresDir, "helmholtz_axis", pair, zs)
	if err != nil {
		return err
	}

	got := magnetics.SuperposeAt(pair, magnetics.Vec3{}).Z
	want := math.Pow(0.8, 1.5) * fc.Current / fc.Radius
	fmt.Printf("midpoint field %.8f (ideal %.8f); wrote %s\n", got, want, path)
	return nil
}

func runManyCoils(_ context.Context, cfg *config.Config) error {
	fc := cfg.Field

	stack := func(count int) ([]magnetics.Wire, error) {
		wires := make([]magnetics.Wire, 0, count)
		span := fc.Separation * float64(count-1)
		for i := 0; i < count; i++ {
			z := -span/2 + fc.Separation*float64(i)
			w, err := magnetics.NewCircularLoop(fc.Current, fc.Radius, magnetics.Vec3{Z: z}, fc.Resolution)
			if err != nil {
				return nil, err
			}
			wires = append(wires, w)
		}
		return wires, nil
	}

	zs := floats.Span(make([]float64, 201), -8*fc.Radius, 8*fc.Radius)
	for _, count := range []int{3, 5, 12} {
		wires, err := stack(count)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("coils_axis_%d", count)
		if _, err := figures.CoilAxisField(cfg.FiguresDir, name, wires, zs); err != nil {
			return err
		}
	}

	// Cross-section of the five-coil stack in the x=0 plane.
	wires, err := stack(5)
	if err != nil {
		return err
	}
	extent := 3 * fc.Radius
	grid := magnetics.PlanePoints(-extent, extent, 20, -extent, extent, 20)
	cell := 2 * extent / 20
	path, err := figures.VectorField(cfg.FiguresDir, "coils_vector_field", wires, grid, cell)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
