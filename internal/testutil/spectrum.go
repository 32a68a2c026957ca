// Package testutil provides deterministic signals, tolerance checks, and
// spectral helpers shared by the package tests.
package testutil

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// MagnitudeSpectrum computes the single-sided magnitude spectrum of a
// real-valued signal, zero-padded to the next power of two. The result
// holds len(fft)/2+1 bins scaled so a full-scale sinusoid aligned with a
// bin center yields magnitude ~1.
func MagnitudeSpectrum(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("testutil: empty signal")
	}

	fftSize := nextPowerOf2(len(signal))

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("testutil: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("testutil: fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	mags := make([]float64, bins)
	scale := 2 / float64(len(signal))
	for i := range bins {
		re := real(out[i])
		im := imag(out[i])
		mags[i] = scale * math.Hypot(re, im)
	}
	mags[0] /= 2

	return mags, nil
}

// BinFrequency returns the center frequency in Hz of spectrum bin i for
// the given FFT bin count (len(spectrum)) and sample rate.
func BinFrequency(bin, bins int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(2*(bins-1))
}

// PeakBin returns the index of the largest-magnitude bin.
func PeakBin(mags []float64) int {
	peak := 0
	for i, v := range mags {
		if v > mags[peak] {
			peak = i
		}
	}
	return peak
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
