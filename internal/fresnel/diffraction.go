package fresnel

import "math"

// DiffractionPattern describes near-field (Fresnel) diffraction of a plane
// wave through a single slit, observed on a screen at a given distance.
type DiffractionPattern struct {
	SlitWidth      float64
	Wavelength     float64
	ScreenDistance float64

	scale float64
}

// NewDiffractionPattern builds a pattern for the given screen distance,
// with wavelength and slit width in the same length units.
func NewDiffractionPattern(screenDistance, wavelength, slitWidth float64) *DiffractionPattern {
	return &DiffractionPattern{
		SlitWidth:      slitWidth,
		Wavelength:     wavelength,
		ScreenDistance: screenDistance,
		scale:          math.Sqrt(2 / (wavelength * screenDistance)),
	}
}

// Real is the real part of the diffraction integral at screen position x.
func (p *DiffractionPattern) Real(x float64) float64 {
	hi := (x + p.SlitWidth/2) * p.scale
	lo := (x - p.SlitWidth/2) * p.scale
	return CBetween(lo, hi) * p.scale
}

// Imag is the imaginary part of the diffraction integral at screen position x.
func (p *DiffractionPattern) Imag(x float64) float64 {
	hi := (x + p.SlitWidth/2) * p.scale
	lo := (x - p.SlitWidth/2) * p.scale
	return SBetween(lo, hi) * p.scale
}

// Amplitude is the wave amplitude on the screen at position x.
func (p *DiffractionPattern) Amplitude(x float64) float64 {
	re := p.Real(x)
	im := p.Imag(x)
	return math.Sqrt(re*re + im*im)
}

// Phase is the complex phase of the pattern at position x.
func (p *DiffractionPattern) Phase(x float64) float64 {
	return math.Atan2(p.Imag(x), p.Real(x))
}
