package figures

import (
	"math"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/physlab/internal/fresnel"
)

// CornuSpiral draws the parametric curve (C(u), S(u)) with markers at the
// points corresponding to integer arc parameters x in [xMin, xMax], where
// u = sign(x) * sqrt(|x|). Returns the written path.
func CornuSpiral(dir string, xMin, xMax int, samples int) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	uMin := paramFor(float64(xMin))
	uMax := paramFor(float64(xMax))
	us := floats.Span(make([]float64, samples), uMin, uMax)

	curve := make(plotter.XYs, len(us))
	for i, u := range us {
		curve[i] = plotter.XY{X: fresnel.C(u), Y: fresnel.S(u)}
	}

	ticks := make(plotter.XYs, 0, xMax-xMin+1)
	for x := xMin; x <= xMax; x++ {
		u := paramFor(float64(x))
		ticks = append(ticks, plotter.XY{X: fresnel.C(u), Y: fresnel.S(u)})
	}

	p := newPlot("Cornu spiral", "C(u)", "S(u)")

	line, err := plotter.NewLine(curve)
	if err != nil {
		return "", err
	}
	line.Color = colBlue
	p.Add(line)
	p.Legend.Add("(C(u), S(u))", line)

	marks, err := plotter.NewScatter(ticks)
	if err != nil {
		return "", err
	}
	marks.GlyphStyle.Color = colRed
	marks.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(marks)
	p.Legend.Add("integer arc marks", marks)

	path := filepath.Join(dir, "cornu_spiral.png")
	return path, save(p, path)
}

// paramFor maps a signed arc parameter x to the spiral parameter
// u = sign(x) * sqrt(|x|).
func paramFor(x float64) float64 {
	if x < 0 {
		return -math.Sqrt(-x)
	}
	return math.Sqrt(x)
}
