package magnetics

import "gonum.org/v1/gonum/floats"

// AxisPoints returns n points evenly spaced along the z axis from zMin to
// zMax, for sampling the on-axis field of loops centered on the axis.
func AxisPoints(zMin, zMax float64, n int) []Vec3 {
	zs := floats.Span(make([]float64, n), zMin, zMax)
	points := make([]Vec3, n)
	for i, z := range zs {
		points[i] = Vec3{0, 0, z}
	}
	return points
}

// PlanePoints returns an ny-by-nz grid of points in the x=0 plane, row
// major in y. Used for cross-section vector plots of loop fields.
func PlanePoints(yMin, yMax float64, ny int, zMin, zMax float64, nz int) []Vec3 {
	ys := floats.Span(make([]float64, ny), yMin, yMax)
	zs := floats.Span(make([]float64, nz), zMin, zMax)
	points := make([]Vec3, 0, ny*nz)
	for _, y := range ys {
		for _, z := range zs {
			points = append(points, Vec3{0, y, z})
		}
	}
	return points
}
