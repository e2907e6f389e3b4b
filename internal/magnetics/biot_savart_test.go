package magnetics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/physlab/internal/magnetics"
)

var _ = Describe("Segment", func() {
	It("returns zero field at its own location", func() {
		s := magnetics.Segment{
			Origin:  magnetics.Vec3{X: 1, Y: 2, Z: 3},
			DL:      magnetics.Vec3{X: 0.1},
			Current: 1,
		}
		Expect(s.FieldAt(magnetics.Vec3{X: 1, Y: 2, Z: 3})).To(Equal(magnetics.Vec3{}))
	})

	It("points along dl cross dr", func() {
		s := magnetics.Segment{DL: magnetics.Vec3{X: 1}, Current: 1}
		b := s.FieldAt(magnetics.Vec3{Y: 2})

		// x cross y = z.
		Expect(b.X).To(BeZero())
		Expect(b.Y).To(BeZero())
		Expect(b.Z).To(BeNumerically(">", 0))
	})

	It("scales linearly with current", func() {
		p := magnetics.Vec3{Y: 1.5, Z: 0.5}
		one := magnetics.Segment{DL: magnetics.Vec3{X: 0.2}, Current: 1}
		three := magnetics.Segment{DL: magnetics.Vec3{X: 0.2}, Current: 3}

		b1 := one.FieldAt(p)
		b3 := three.FieldAt(p)
		Expect(b3.Sub(b1.Scale(3)).Norm()).To(BeNumerically("<", 1e-15))
	})
})

var _ = Describe("NewCircularLoop", func() {
	It("rejects non-positive radius and resolution", func() {
		_, err := magnetics.NewCircularLoop(1, 0, magnetics.Vec3{}, 32)
		Expect(err).To(HaveOccurred())

		_, err = magnetics.NewCircularLoop(1, 1, magnetics.Vec3{}, 0)
		Expect(err).To(HaveOccurred())
	})

	It("builds 2*resolution segments that close the loop", func() {
		loop, err := magnetics.NewCircularLoop(1, 1, magnetics.Vec3{}, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(loop.Segments).To(HaveLen(100))

		var total magnetics.Vec3
		for _, s := range loop.Segments {
			total = total.Add(s.DL)
		}
		Expect(total.Norm()).To(BeNumerically("<", 1e-12))
	})

	It("places every segment on the circle of the given radius", func() {
		center := magnetics.Vec3{X: 0.5, Y: -1, Z: 2}
		loop, err := magnetics.NewCircularLoop(1, 2, center, 40)
		Expect(err).NotTo(HaveOccurred())

		for _, s := range loop.Segments {
			Expect(s.Origin.Sub(center).Norm()).To(BeNumerically("~", 2, 1e-12))
			Expect(s.Origin.Z).To(BeNumerically("~", 2, 1e-12))
		}
	})
})

var _ = Describe("Loop fields", func() {
	It("matches I/(2R) at the center of a unit loop", func() {
		loop, err := magnetics.NewCircularLoop(1, 1, magnetics.Vec3{}, 200)
		Expect(err).NotTo(HaveOccurred())

		b := loop.FieldAt(magnetics.Vec3{})
		Expect(b.X).To(BeNumerically("~", 0, 1e-12))
		Expect(b.Y).To(BeNumerically("~", 0, 1e-12))
		Expect(b.Z).To(BeNumerically("~", 0.5, 1e-4))
	})

	It("matches the closed-form on-axis field", func() {
		loop, err := magnetics.NewCircularLoop(2, 1.5, magnetics.Vec3{}, 200)
		Expect(err).NotTo(HaveOccurred())

		for _, z := range []float64{0, 0.5, 1, 2, 5} {
			want := magnetics.LoopAxisField(1.5, 2, z)
			got := loop.FieldAt(magnetics.Vec3{Z: z})
			Expect(got.Z).To(BeNumerically("~", want, 1e-4*want+1e-12),
				"on-axis field at z=%v", z)
		}
	})

	It("converges to the ideal loop as resolution grows", func() {
		want := magnetics.LoopAxisField(1, 1, 0)

		var prev float64 = math.Inf(1)
		for _, res := range []int{8, 32, 128} {
			loop, err := magnetics.NewCircularLoop(1, 1, magnetics.Vec3{}, res)
			Expect(err).NotTo(HaveOccurred())

			diff := math.Abs(loop.FieldAt(magnetics.Vec3{}).Z - want)
			Expect(diff).To(BeNumerically("<", prev))
			prev = diff
		}
		Expect(prev).To(BeNumerically("<", 1e-3))
	})

	It("reproduces the Helmholtz midpoint field (4/5)^(3/2) I/R", func() {
		// Two coaxial unit loops separated by their radius, midpoint
		// halfway between them.
		lower, err := magnetics.NewCircularLoop(1, 1, magnetics.Vec3{Z: -0.5}, 200)
		Expect(err).NotTo(HaveOccurred())
		upper, err := magnetics.NewCircularLoop(1, 1, magnetics.Vec3{Z: 0.5}, 200)
		Expect(err).NotTo(HaveOccurred())

		b := magnetics.SuperposeAt([]magnetics.Wire{lower, upper}, magnetics.Vec3{})
		want := math.Pow(0.8, 1.5)
		Expect(b.Z).To(BeNumerically("~", want, 1e-4))
	})

	It("superposes fields linearly", func() {
		a, _ := magnetics.NewCircularLoop(1, 1, magnetics.Vec3{Z: -1}, 64)
		b, _ := magnetics.NewCircularLoop(1, 1, magnetics.Vec3{Z: 1}, 64)
		p := magnetics.Vec3{Y: 0.3, Z: 0.2}

		sum := a.FieldAt(p).Add(b.FieldAt(p))
		got := magnetics.SuperposeAt([]magnetics.Wire{a, b}, p)
		Expect(got.Sub(sum).Norm()).To(BeNumerically("<", 1e-15))
	})
})

var _ = Describe("Grids", func() {
	It("evaluates axis points in parallel with matching order", func() {
		loop, _ := magnetics.NewCircularLoop(1, 1, magnetics.Vec3{}, 64)
		points := magnetics.AxisPoints(-2, 2, 21)
		Expect(points).To(HaveLen(21))
		Expect(points[0].Z).To(Equal(-2.0))
		Expect(points[20].Z).To(Equal(2.0))

		fields := magnetics.FieldAtPoints(loop, points)
		Expect(fields).To(HaveLen(21))
		for i, p := range points {
			Expect(fields[i]).To(Equal(loop.FieldAt(p)))
		}
	})

	It("lays out plane points row major in y", func() {
		points := magnetics.PlanePoints(-1, 1, 3, 0, 2, 2)
		Expect(points).To(HaveLen(6))
		Expect(points[0]).To(Equal(magnetics.Vec3{Y: -1, Z: 0}))
		Expect(points[1]).To(Equal(magnetics.Vec3{Y: -1, Z: 2}))
		Expect(points[5]).To(Equal(magnetics.Vec3{Y: 1, Z: 2}))
	})
})
