package figures

import (
	"errors"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/physlab/internal/montecarlo"
)

// errPoints carries values with symmetric error bars for plotter.NewYErrorBars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// MonteCarloValues plots estimates with trial-spread error bars against
// sample count on log-log axes, with the analytic value as a reference line.
func MonteCarloValues(dir string, aggs []montecarlo.Aggregate, analytic float64) (string, error) {
	if len(aggs) == 0 {
		return "", errors.New("figures: no aggregates to plot")
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	pts := errPoints{
		XYs:     make(plotter.XYs, len(aggs)),
		YErrors: make(plotter.YErrors, len(aggs)),
	}
	for i, a := range aggs {
		pts.XYs[i] = plotter.XY{X: float64(a.Samples), Y: a.Mean}
		// The log axis cannot represent bars reaching zero or below; clamp
		// the low bar just under the mean.
		low := a.Std
		if a.Mean > 0 && low >= a.Mean {
			low = a.Mean * 0.999
		}
		pts.YErrors[i] = struct{ Low, High float64 }{low, a.Std}
	}

	p := newPlot("Monte Carlo estimate vs sample count", "samples", "integral estimate")
	logLog(p)

	scatter, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return "", err
	}
	scatter.GlyphStyle.Color = colBlue
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(scatter)
	p.Legend.Add("trial mean", scatter)

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return "", err
	}
	bars.Color = colBlue
	p.Add(bars)

	ref := plotter.XYs{
		{X: float64(aggs[0].Samples), Y: analytic},
		{X: float64(aggs[len(aggs)-1].Samples), Y: analytic},
	}
	refLine, err := plotter.NewLine(ref)
	if err != nil {
		return "", err
	}
	refLine.Color = colGrey
	p.Add(refLine)
	p.Legend.Add("analytic", refLine)

	path := filepath.Join(dir, "montecarlo_values.png")
	return path, save(p, path)
}

// MonteCarloErrors plots the two error estimators against sample count in
// log-log space, each with its fitted power law.
func MonteCarloErrors(dir string, aggs []montecarlo.Aggregate, stdFit, errFit montecarlo.PowerLaw) (string, error) {
	if len(aggs) == 0 {
		return "", errors.New("figures: no aggregates to plot")
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	stds := make(plotter.XYs, len(aggs))
	meanErrs := make(plotter.XYs, len(aggs))
	for i, a := range aggs {
		stds[i] = plotter.XY{X: float64(a.Samples), Y: a.Std}
		meanErrs[i] = plotter.XY{X: float64(a.Samples), Y: a.MeanErr}
	}

	p := newPlot("Monte Carlo error vs sample count", "samples", "error")
	logLog(p)

	stdScatter, err := plotter.NewScatter(stds)
	if err != nil {
		return "", err
	}
	stdScatter.GlyphStyle.Color = colRed
	stdScatter.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(stdScatter)
	p.Legend.Add("trial std: "+stdFit.String(), stdScatter)

	errScatter, err := plotter.NewScatter(meanErrs)
	if err != nil {
		return "", err
	}
	errScatter.GlyphStyle.Color = colGreen
	errScatter.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(errScatter)
	p.Legend.Add("single-draw estimate: "+errFit.String(), errScatter)

	for _, fit := range []struct {
		law montecarlo.PowerLaw
		col color.Color
	}{{stdFit, colRed}, {errFit, colGreen}} {
		line := make(plotter.XYs, len(aggs))
		for i, a := range aggs {
			line[i] = plotter.XY{X: float64(a.Samples), Y: fit.law.At(float64(a.Samples))}
		}
		l, err := plotter.NewLine(line)
		if err != nil {
			return "", err
		}
		l.Color = fit.col
		l.Width = vg.Points(0.8)
		p.Add(l)
	}

	path := filepath.Join(dir, "montecarlo_errors.png")
	return path, save(p, path)
}
