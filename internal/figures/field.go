package figures

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/physlab/internal/magnetics"
)

// OnAxisField plots the z component of the numeric loop field along the
// axis against the closed-form ideal-loop value, plus a residual plot. The
// chord count is embedded in the file names.
func OnAxisField(dir string, loop magnetics.Wire, radius, current float64, zs []float64, resolution int) ([]string, error) {
	if err := EnsureDir(dir); err != nil {
		return nil, err
	}

	points := make([]magnetics.Vec3, len(zs))
	for i, z := range zs {
		points[i] = magnetics.Vec3{Z: z}
	}
	fields := magnetics.FieldAtPoints(loop, points)

	numeric := make(plotter.XYs, len(zs))
	exact := make(plotter.XYs, len(zs))
	residual := make(plotter.XYs, len(zs))
	for i, z := range zs {
		want := magnetics.LoopAxisField(radius, current, z)
		numeric[i] = plotter.XY{X: z, Y: fields[i].Z}
		exact[i] = plotter.XY{X: z, Y: want}
		residual[i] = plotter.XY{X: z, Y: fields[i].Z - want}
	}

	p := newPlot(fmt.Sprintf("On-axis loop field, %d chords", 2*resolution), "z / R", "Bz")

	num, err := plotter.NewScatter(numeric)
	if err != nil {
		return nil, err
	}
	num.GlyphStyle.Color = colBlue
	num.GlyphStyle.Radius = vg.Points(2.0)
	p.Add(num)
	p.Legend.Add("numeric", num)

	ref, err := plotter.NewLine(exact)
	if err != nil {
		return nil, err
	}
	ref.Color = colGrey
	p.Add(ref)
	p.Legend.Add("ideal loop", ref)

	axisPath := filepath.Join(dir, fmt.Sprintf("loop_axis_res%d.png", resolution))
	if err := save(p, axisPath); err != nil {
		return nil, err
	}

	rp := newPlot(fmt.Sprintf("On-axis residual, %d chords", 2*resolution), "z / R", "Bz - ideal")
	res, err := plotter.NewLine(residual)
	if err != nil {
		return nil, err
	}
	res.Color = colRed
	rp.Add(res)

	residualPath := filepath.Join(dir, fmt.Sprintf("loop_axis_residual_res%d.png", resolution))
	if err := save(rp, residualPath); err != nil {
		return nil, err
	}

	return []string{axisPath, residualPath}, nil
}

// CoilAxisField plots the combined on-axis field of several coaxial coils.
func CoilAxisField(dir, name string, wires []magnetics.Wire, zs []float64) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	points := make([]magnetics.Vec3, len(zs))
	for i, z := range zs {
		points[i] = magnetics.Vec3{Z: z}
	}
	fields := magnetics.SuperposeAtPoints(wires, points)

	bz := make([]float64, len(zs))
	for i, b := range fields {
		bz[i] = b.Z
	}

	path := filepath.Join(dir, name+".png")
	title := fmt.Sprintf("On-axis field of %d coaxial coils", len(wires))
	return path, xyLine(path, title, "z / R", "Bz", zs, bz)
}

// VectorField draws the field of a set of wires as arrows on a grid of
// points in the x=0 plane. Arrows are drawn as line segments scaled so the
// largest one spans roughly one grid cell.
func VectorField(dir, name string, wires []magnetics.Wire, points []magnetics.Vec3, cell float64) (string, error) {
	if len(points) == 0 {
		return "", errors.New("figures: no grid points")
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	fields := magnetics.SuperposeAtPoints(wires, points)

	var maxNorm float64
	for _, b := range fields {
		if n := b.Norm(); n > maxNorm {
			maxNorm = n
		}
	}
	if maxNorm == 0 {
		return "", errors.New("figures: field vanishes on the whole grid")
	}
	scale := cell / maxNorm

	p := newPlot("Loop field cross-section", "y / R", "z / R")

	for i, pt := range points {
		b := fields[i]
		// In-plane projection of the field.
		dy := b.Y * scale
		dz := b.Z * scale
		if math.Hypot(dy, dz) < 1e-12 {
			continue
		}

		tip := plotter.XY{X: pt.Y + dy, Y: pt.Z + dz}
		shaft := plotter.XYs{{X: pt.Y, Y: pt.Z}, tip}
		line, err := plotter.NewLine(shaft)
		if err != nil {
			return "", err
		}
		line.Color = colBlue
		line.Width = vg.Points(0.8)
		p.Add(line)

		// Arrowhead: two short barbs rotated from the reversed shaft.
		angle := math.Atan2(dz, dy)
		headLen := 0.25 * math.Hypot(dy, dz)
		for _, off := range []float64{math.Pi * 5 / 6, -math.Pi * 5 / 6} {
			barb := plotter.XYs{
				tip,
				{X: tip.X + headLen*math.Cos(angle+off), Y: tip.Y + headLen*math.Sin(angle+off)},
			}
			bl, err := plotter.NewLine(barb)
			if err != nil {
				return "", err
			}
			bl.Color = colBlue
			bl.Width = vg.Points(0.8)
			p.Add(bl)
		}
	}

	path := filepath.Join(dir, name+".png")
	return path, save(p, path)
}
