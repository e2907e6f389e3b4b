package figures

import (
	"errors"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/physlab/internal/analysis"
	"github.com/san-kum/physlab/internal/dynamo"
)

// Trace plots the angle of a trajectory over the time window [t0, t1). If
// analytic is non-nil the closed-form solution is drawn alongside for
// comparison. The file is named <name>.png under dir.
func Trace(dir, name string, r *dynamo.Result, analytic func(t float64) float64, t0, t1 float64) (string, error) {
	if r.Empty() {
		return "", analysis.ErrEmptyTrajectory
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	lo, hi := r.Window(t0, t1)
	if lo == hi {
		return "", errors.New("figures: time window contains no samples")
	}

	numeric := make(plotter.XYs, 0, hi-lo)
	for i := lo; i < hi; i++ {
		numeric = append(numeric, plotter.XY{X: r.Times[i], Y: r.States[i][0]})
	}

	p := newPlot("Pendulum angle", "t", "theta (rad)")

	line, err := plotter.NewLine(numeric)
	if err != nil {
		return "", err
	}
	line.Color = colBlue
	p.Add(line)
	p.Legend.Add("numeric", line)

	if analytic != nil {
		exact := make(plotter.XYs, 0, hi-lo)
		for i := lo; i < hi; i++ {
			exact = append(exact, plotter.XY{X: r.Times[i], Y: analytic(r.Times[i])})
		}
		ref, err := plotter.NewLine(exact)
		if err != nil {
			return "", err
		}
		ref.Color = colRed
		ref.Width = vg.Points(0.8)
		ref.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(ref)
		p.Legend.Add("analytic", ref)
	}

	path := filepath.Join(dir, name+".png")
	return path, save(p, path)
}

// EnergyLoss plots the fraction of initial energy lost over time.
func EnergyLoss(dir, name string, r *dynamo.Result, energy func(y, v float64) float64, initial float64) (string, error) {
	fractions, err := analysis.EnergyFraction(r, energy, initial)
	if err != nil {
		return "", err
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+".png")
	return path, xyLine(path, "Energy loss", "t", "1 - E/E0", r.Times, fractions)
}

// PhasePortrait plots wrapped angle against angular velocity as a scatter,
// the usual picture for spotting periodic orbits and chaotic seas.
func PhasePortrait(dir, name string, r *dynamo.Result) (string, error) {
	xs, ys, err := analysis.PhasePortrait(r, 0, 1)
	if err != nil {
		return "", err
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	p := newPlot("Phase portrait", "theta (rad)", "omega (rad/s)")
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	scatter.GlyphStyle.Color = colBlue
	scatter.GlyphStyle.Radius = vg.Points(0.8)
	p.Add(scatter)

	path := filepath.Join(dir, name+".png")
	return path, save(p, path)
}

// Separation plots the distance between two trajectories over time on a
// log y axis, for sensitivity-to-initial-conditions studies.
func Separation(dir, name string, a, b *dynamo.Result) (string, error) {
	div, err := analysis.Divergence(a, b)
	if err != nil {
		return "", err
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	pts := make(plotter.XYs, 0, len(div))
	for i, d := range div {
		if d <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: a.Times[i], Y: d})
	}
	if len(pts) == 0 {
		return "", errors.New("figures: trajectories never separate")
	}

	p := newPlot("Trajectory separation", "t", "|delta state|")
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	line.Color = colGreen
	p.Add(line)

	path := filepath.Join(dir, name+".png")
	return path, save(p, path)
}

// PeriodVsAmplitude plots measured oscillation period against initial
// amplitude.
func PeriodVsAmplitude(dir string, amplitudes, periods []float64) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	pts := make(plotter.XYs, len(amplitudes))
	for i := range amplitudes {
		pts[i] = plotter.XY{X: amplitudes[i], Y: periods[i]}
	}

	p := newPlot("Period vs initial amplitude", "theta0 (rad)", "period")
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return "", err
	}
	scatter.GlyphStyle.Color = colBlue
	scatter.GlyphStyle.Radius = vg.Points(2.0)
	p.Add(scatter)

	path := filepath.Join(dir, "period_vs_amplitude.png")
	return path, save(p, path)
}
