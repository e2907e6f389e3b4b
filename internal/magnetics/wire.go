package magnetics

import (
	"fmt"
	"math"
)

// Segment is a straight current element: a position, a directed length and
// a scalar current. Immutable once constructed.
type Segment struct {
	Origin  Vec3
	DL      Vec3
	Current float64
}

// FieldAt evaluates the Biot-Savart contribution of the segment at p:
// I * dl x dr / (4 pi |dr|^3). The field at the segment's own location is
// defined as zero rather than a singularity.
func (s Segment) FieldAt(p Vec3) Vec3 {
	dr := p.Sub(s.Origin)
	r := dr.Norm()
	if r == 0 {
		return Vec3{}
	}
	return s.DL.Cross(dr).Scale(s.Current / (4 * math.Pi * r * r * r))
}

// Wire is an ordered sequence of straight segments approximating a
// continuous current path.
type Wire struct {
	Segments []Segment
}

// NewStraightWire is a wire consisting of a single segment.
func NewStraightWire(current float64, dl, origin Vec3) Wire {
	return Wire{Segments: []Segment{{Origin: origin, DL: dl, Current: current}}}
}

// NewCircularLoop approximates a circular loop of the given radius around
// center (axis along z) by 2*resolution straight chords on the vertices of
// a regular polygon. Segments are generated in opposite-facing pairs
// rather than in succession, so that symmetric contributions cancel in
// floating point instead of accumulating rounding error.
func NewCircularLoop(current, radius float64, center Vec3, resolution int) (Wire, error) {
	if resolution < 1 {
		return Wire{}, fmt.Errorf("magnetics: loop resolution must be >= 1, got %d", resolution)
	}
	if radius <= 0 {
		return Wire{}, fmt.Errorf("magnetics: loop radius must be positive, got %f", radius)
	}

	theta := math.Pi / float64(resolution)
	normal := Vec3{0, radius, 0}
	chord := Vec3{-2 * radius * math.Sin(theta/2), 0, 0}

	cf := math.Cos(theta)
	sf := math.Sin(theta)
	rotate := func(v Vec3) Vec3 {
		return Vec3{cf*v.X - sf*v.Y, sf*v.X + cf*v.Y, v.Z}
	}

	segments := make([]Segment, 0, 2*resolution)
	for i := 0; i < resolution; i++ {
		segments = append(segments,
			Segment{Origin: center.Add(normal), DL: chord, Current: current},
			Segment{Origin: center.Sub(normal), DL: chord.Scale(-1), Current: current},
		)
		chord = rotate(chord)
		normal = rotate(normal)
	}

	return Wire{Segments: segments}, nil
}

// FieldAt is the vector sum of all segment contributions at p.
func (w Wire) FieldAt(p Vec3) Vec3 {
	var b Vec3
	for _, s := range w.Segments {
		b = b.Add(s.FieldAt(p))
	}
	return b
}
