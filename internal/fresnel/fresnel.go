// Package fresnel evaluates the Fresnel integrals and the near-field
// diffraction patterns built from them.
package fresnel

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

func cIntegrand(t float64) float64 {
	return math.Cos(math.Pi * t * t / 2)
}

func sIntegrand(t float64) float64 {
	return math.Sin(math.Pi * t * t / 2)
}

// C is the Fresnel cosine integral C(u) = int_0^u cos(pi t^2 / 2) dt.
func C(u float64) float64 {
	return CBetween(0, u)
}

// S is the Fresnel sine integral S(u) = int_0^u sin(pi t^2 / 2) dt.
func S(u float64) float64 {
	return SBetween(0, u)
}

// CBetween integrates the cosine integrand between arbitrary bounds.
func CBetween(lo, hi float64) float64 {
	return integral(cIntegrand, lo, hi)
}

// SBetween integrates the sine integrand between arbitrary bounds.
func SBetween(lo, hi float64) float64 {
	return integral(sIntegrand, lo, hi)
}

func integral(f func(float64) float64, lo, hi float64) float64 {
	if lo == hi {
		return 0
	}
	if hi < lo {
		return -integral(f, hi, lo)
	}
	return quad.Fixed(f, lo, hi, nodes(lo, hi), nil, 0)
}

// nodes scales the Gauss-Legendre order with the number of oscillations of
// the quadratic-phase integrand over [lo, hi], which grows like |hi^2-lo^2|/4.
func nodes(lo, hi float64) int {
	oscillations := math.Abs(hi*hi-lo*lo) / 4
	return 64 + 16*int(math.Ceil(oscillations))
}
