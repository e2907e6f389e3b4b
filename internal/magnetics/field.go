package magnetics

import (
	"math"

	"github.com/san-kum/physlab/internal/parallel"
)

// SuperposeAt sums the fields of several wires at a single point.
func SuperposeAt(wires []Wire, p Vec3) Vec3 {
	var b Vec3
	for _, w := range wires {
		b = b.Add(w.FieldAt(p))
	}
	return b
}

// FieldAtPoints evaluates the wire's field at every point, one worker per
// CPU. Output order matches input order.
func FieldAtPoints(w Wire, points []Vec3) []Vec3 {
	return parallel.Map(points, w.FieldAt)
}

// SuperposeAtPoints evaluates the combined field of several wires at every
// point in parallel.
func SuperposeAtPoints(wires []Wire, points []Vec3) []Vec3 {
	return parallel.Map(points, func(p Vec3) Vec3 {
		return SuperposeAt(wires, p)
	})
}

// LoopAxisField is the closed-form on-axis field of an ideal circular loop,
// I R^2 / (2 (R^2 + z^2)^(3/2)), with z measured from the loop center.
func LoopAxisField(radius, current, z float64) float64 {
	return current * radius * radius / (2 * math.Pow(radius*radius+z*z, 1.5))
}
