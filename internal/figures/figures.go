// Package figures renders the study results to PNG files with gonum/plot.
package figures

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

var (
	colGrey  = color.RGBA{R: 120, G: 120, B: 120, A: 180}
	colBlue  = color.RGBA{R: 20, G: 80, B: 200, A: 220}
	colRed   = color.RGBA{R: 200, G: 30, B: 30, A: 220}
	colGreen = color.RGBA{R: 40, G: 120, B: 40, A: 220}
)

// EnsureDir creates the output directory if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

func save(p *plot.Plot, path string) error {
	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// logLog switches both axes of p to logarithmic scale.
func logLog(p *plot.Plot) {
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}
