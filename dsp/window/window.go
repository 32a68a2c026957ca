// Package window generates window-function coefficients for FIR kernel
// design and spectral analysis.
package window

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBartlett
)

var (
	errInvalidLength    = errors.New("window: length must be > 0")
	errMismatchedLength = errors.New("window: samples and coefficients differ in length")
)

// String returns the conventional name of the window type.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeBartlett:
		return "bartlett"
	default:
		return "unknown"
	}
}

// Generate returns window coefficients of the given length in symmetric
// form. Returns nil for non-positive lengths.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	n := float64(length - 1)
	for i := range out {
		x := float64(i) / n
		out[i] = eval(t, x)
	}

	return out
}

func eval(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	default:
		return 1
	}
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf))
	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// Hann returns Hann window coefficients.
func Hann(size int) ([]float64, error) {
	return Generate(TypeHann, size), validateLength(size)
}

// Blackman returns Blackman window coefficients.
func Blackman(size int) ([]float64, error) {
	return Generate(TypeBlackman, size), validateLength(size)
}

// CoherentGain returns the mean of the coefficients, the amplitude scaling
// a windowed sinusoid experiences.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errInvalidLength
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

func validateLength(size int) error {
	if size <= 0 {
		return errInvalidLength
	}
	return nil
}
