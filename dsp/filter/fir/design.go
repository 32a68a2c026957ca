package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/window"
)

// Sinc evaluates the unnormalized cardinal sine sin(x)/x with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// forceOdd bumps even tap counts up by one so the kernel has a center tap.
func forceOdd(taps int) int {
	if taps%2 == 0 {
		return taps + 1
	}
	return taps
}

// idealLowPass returns the ideal (untruncated) lowpass coefficient at
// offset n from the kernel center. omega is the angular cutoff in
// radians per sample, in (0, pi].
func idealLowPass(n int, omega float64) float64 {
	if n == 0 {
		return omega / math.Pi
	}
	return omega / math.Pi * Sinc(float64(n)*omega)
}

func angularCutoff(cutoff, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("fir: sample rate must be > 0: %v", sampleRate)
	}
	if cutoff < 0 || cutoff > sampleRate/2 {
		return 0, fmt.Errorf("fir: cutoff must be in [0, %v]: %v", sampleRate/2, cutoff)
	}
	return math.Pi * cutoff / (sampleRate / 2), nil
}

func lowPassKernel(omega float64, taps int) []float64 {
	half := taps / 2
	h := make([]float64, taps)
	for n := -half; n <= half; n++ {
		h[n+half] = idealLowPass(n, omega)
	}
	return h
}

// invertSpectrum converts a lowpass kernel into its highpass complement
// in-place (all-pass minus lowpass).
func invertSpectrum(h []float64) {
	for i := range h {
		h[i] = -h[i]
	}
	h[len(h)/2] += 1
}

// LowPass designs a windowed-sinc lowpass kernel. taps is forced odd.
func LowPass(cutoff, sampleRate float64, taps int, win window.Type) ([]float64, error) {
	omega, err := angularCutoff(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}

	h := lowPassKernel(omega, forceOdd(taps))
	applyWindow(h, win)

	return h, nil
}

// HighPass designs a windowed-sinc highpass kernel by spectral inversion
// of the lowpass prototype. taps is forced odd.
func HighPass(cutoff, sampleRate float64, taps int, win window.Type) ([]float64, error) {
	omega, err := angularCutoff(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}

	h := lowPassKernel(omega, forceOdd(taps))
	invertSpectrum(h)
	applyWindow(h, win)

	return h, nil
}

// BandPass designs a windowed-sinc bandpass kernel as the difference of
// two lowpass prototypes. taps is forced odd.
func BandPass(lower, upper, sampleRate float64, taps int, win window.Type) ([]float64, error) {
	if lower > upper {
		return nil, fmt.Errorf("fir: band edges out of order: %v > %v", lower, upper)
	}

	omegaLo, err := angularCutoff(lower, sampleRate)
	if err != nil {
		return nil, err
	}
	omegaHi, err := angularCutoff(upper, sampleRate)
	if err != nil {
		return nil, err
	}

	taps = forceOdd(taps)
	h := lowPassKernel(omegaHi, taps)
	lo := lowPassKernel(omegaLo, taps)
	for i := range h {
		h[i] -= lo[i]
	}
	applyWindow(h, win)

	return h, nil
}

// BandStop designs a windowed-sinc band-reject kernel: a lowpass below
// the lower edge plus a highpass above the upper edge. taps is forced odd.
func BandStop(lower, upper, sampleRate float64, taps int, win window.Type) ([]float64, error) {
	if lower > upper {
		return nil, fmt.Errorf("fir: band edges out of order: %v > %v", lower, upper)
	}

	omegaLo, err := angularCutoff(lower, sampleRate)
	if err != nil {
		return nil, err
	}
	omegaHi, err := angularCutoff(upper, sampleRate)
	if err != nil {
		return nil, err
	}

	taps = forceOdd(taps)
	h := lowPassKernel(omegaLo, taps)
	hi := lowPassKernel(omegaHi, taps)
	invertSpectrum(hi)
	for i := range h {
		h[i] += hi[i]
	}
	applyWindow(h, win)

	return h, nil
}

func applyWindow(h []float64, win window.Type) {
	if win == window.TypeRectangular {
		return
	}
	window.Apply(win, h)
}
