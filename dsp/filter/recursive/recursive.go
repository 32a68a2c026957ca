// Package recursive implements simple second-order recursive (IIR)
// filters in direct form:
//
//	y[n] = A0*x[n] + A1*x[n-1] + A2*x[n-2] + B1*y[n-1] + B2*y[n-2]
//
// The coefficient designs follow the single-pole and narrow-band recipes
// from Smith, "The Scientist and Engineer's Guide to Digital Signal
// Processing", chapter 19. They are computationally cheap rather than
// highly configurable and may be chained for a sharper response.
package recursive

import (
	"math"
	"math/cmplx"
)

// Coefficients holds the transfer-function coefficients of one section.
// A* terms feed forward from the input history, B* terms feed back from
// the output history (note the sign convention in the package comment).
type Coefficients struct {
	A0, A1, A2 float64
	B1, B2     float64
}

// LowPass designs a single-pole lowpass section.
func LowPass(freq, sampleRate float64) Coefficients {
	x := decay(freq, sampleRate)
	return Coefficients{A0: 1 - x, B1: x}
}

// HighPass designs a single-pole highpass section.
func HighPass(freq, sampleRate float64) Coefficients {
	x := decay(freq, sampleRate)
	return Coefficients{A0: (1 + x) / 2, A1: -(1 + x) / 2, B1: x}
}

// BandPass designs a two-pole narrow bandpass section centered on freq.
// bandwidth is the width in Hz at which the response falls to sin(pi/4).
func BandPass(freq, bandwidth, sampleRate float64) Coefficients {
	r, k, c := narrowBand(freq, bandwidth, sampleRate)
	return Coefficients{
		A0: 1 - k,
		A1: 2 * (k - r) * c,
		A2: r*r - k,
		B1: 2 * r * c,
		B2: -(r * r),
	}
}

// Notch designs a two-pole band-reject section centered on freq.
func Notch(freq, bandwidth, sampleRate float64) Coefficients {
	r, k, c := narrowBand(freq, bandwidth, sampleRate)
	return Coefficients{
		A0: k,
		A1: -2 * k * c,
		A2: k,
		B1: 2 * r * c,
		B2: -(r * r),
	}
}

func decay(freq, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return math.Exp(-2 * math.Pi * freq / sampleRate)
}

func narrowBand(freq, bandwidth, sampleRate float64) (r, k, c float64) {
	if sampleRate <= 0 {
		return 0, 0, 0
	}

	r = 1 - 3*bandwidth/sampleRate

	c = math.Cos(2 * math.Pi * freq / sampleRate)
	k = (1 - 2*r*c + r*r) / (2 - 2*c)

	return r, k, c
}

// Section is a single recursive filter with coefficients and a two-sample
// input/output history.
type Section struct {
	Coefficients

	x1, x2 float64
	y1, y2 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero history.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// SetCoefficients replaces the coefficients, keeping the history intact
// so a running filter can be retuned without a click.
func (s *Section) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// ProcessSample filters one input sample and returns the output,
// shifting the history by one tick.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.A0*x + s.A1*s.x1 + s.A2*s.x2 + s.B1*s.y1 + s.B2*s.y2

	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters a block of samples in-place.
func (s *Section) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// Reset clears the input/output history.
func (s *Section) Reset() {
	s.x1, s.x2, s.y1, s.y2 = 0, 0, 0, 0
}

// Response computes the complex frequency response at the given frequency
// (Hz) and sample rate (Hz).
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.A0, 0) + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	den := complex(1, 0) - complex(c.B1, 0)*z1 - complex(c.B2, 0)*z2

	return num / den
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}
