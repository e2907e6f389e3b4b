package figures

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/physlab/internal/fresnel"
	"github.com/san-kum/physlab/internal/parallel"
)

// Diffraction draws amplitude and phase across the screen for each pattern,
// one pair of files per screen distance. Screen positions span
// [-span, span]. Returns the written paths.
func Diffraction(dir string, patterns []*fresnel.DiffractionPattern, span float64, samples int) ([]string, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}

	xs := floats.Span(make([]float64, samples), -span, span)
	paths := make([]string, 0, 2*len(patterns))

	for _, pat := range patterns {
		amps := parallel.Map(xs, pat.Amplitude)
		phases := parallel.Map(xs, pat.Phase)

		ampPath := filepath.Join(dir, fmt.Sprintf("diffraction_amplitude_d%g.png", pat.ScreenDistance))
		title := fmt.Sprintf("Slit diffraction amplitude, screen at %g", pat.ScreenDistance)
		if err := xyLine(ampPath, title, "screen position", "amplitude", xs, amps); err != nil {
			return nil, err
		}
		paths = append(paths, ampPath)

		phasePath := filepath.Join(dir, fmt.Sprintf("diffraction_phase_d%g.png", pat.ScreenDistance))
		title = fmt.Sprintf("Slit diffraction phase, screen at %g", pat.ScreenDistance)
		if err := xyLine(phasePath, title, "screen position", "phase (rad)", xs, phases); err != nil {
			return nil, err
		}
		paths = append(paths, phasePath)
	}

	return paths, nil
}

// xyLine writes a single blue line plot of ys against xs.
func xyLine(path, title, xLabel, yLabel string, xs, ys []float64) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	p := newPlot(title, xLabel, yLabel)
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = colBlue
	p.Add(line)

	return save(p, path)
}
