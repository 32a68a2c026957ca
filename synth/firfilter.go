package synth

import (
	"github.com/cwbudde/algo-synth/dsp/filter/fir"
	"github.com/cwbudde/algo-synth/dsp/window"
)

// FIRFilterType selects the frequency shaping of a FIRFilter.
type FIRFilterType int

const (
	FIRLowPass FIRFilterType = iota
	FIRHighPass
	FIRBandPass
	FIRBandStop
	// FIRUserDefined is selected implicitly by SetCoefficients.
	FIRUserDefined
)

// FIRFilter shapes its input by convolution with a windowed-sinc kernel.
// Configure the kernel either with a filter type plus SetCutoff /
// SetBandCutoffs, or with explicit coefficients. Kernel design happens
// in setup calls and on data-set, never on the pull path.
type FIRFilter struct {
	Base

	typ    FIRFilterType
	win    window.Type
	taps   int
	kernel fir.Filter

	cutoff float64
	lower  float64
	upper  float64
}

// NewFIRFilter returns a filter of the given type with coefficientCount
// taps. Even counts are bumped to the next odd number so the kernel has
// a center tap. The kernel is designed once a cutoff and control data
// are both known.
func NewFIRFilter(typ FIRFilterType, coefficientCount int) *FIRFilter {
	if coefficientCount < 1 {
		coefficientCount = 1
	}
	if coefficientCount%2 == 0 {
		coefficientCount++
	}

	f := &FIRFilter{
		typ:  typ,
		win:  window.TypeRectangular,
		taps: coefficientCount,
	}
	f.Init(f)
	return f
}

// NewFIRFilterCoefficients returns a user-defined FIR filter convolving
// with the given kernel as-is.
func NewFIRFilterCoefficients(coeffs []float64) *FIRFilter {
	f := &FIRFilter{typ: FIRUserDefined, taps: len(coeffs)}
	f.Init(f)
	f.kernel.SetCoefficients(coeffs)
	return f
}

// SetWindow selects the windowing function applied to designed kernels.
// It has no effect on user-defined coefficients.
func (f *FIRFilter) SetWindow(w window.Type) {
	f.win = w
	f.redesign()
}

// SetCoefficients switches the filter to user-defined coefficients.
func (f *FIRFilter) SetCoefficients(coeffs []float64) {
	f.typ = FIRUserDefined
	f.taps = len(coeffs)
	f.kernel.SetCoefficients(coeffs)
}

// SetCutoff sets the corner frequency in Hz for low- and high-pass
// types. Values outside [0, Nyquist] are clamped rather than rejected.
func (f *FIRFilter) SetCutoff(cutoff float64) {
	f.cutoff = cutoff
	f.redesign()
}

// SetBandCutoffs sets the band edges in Hz for band-pass and band-stop
// types. Reversed edges are swapped rather than rejected.
func (f *FIRFilter) SetBandCutoffs(lower, upper float64) {
	if lower > upper {
		lower, upper = upper, lower
	}
	f.lower, f.upper = lower, upper
	f.redesign()
}

// Coefficients returns a copy of the active kernel.
func (f *FIRFilter) Coefficients() []float64 {
	return f.kernel.Coefficients()
}

// OnDataSet redesigns the kernel for the new sample rate.
func (f *FIRFilter) OnDataSet() {
	f.redesign()
}

// NextSample convolves the input history with the kernel. A starved
// input contributes 0 samples.
func (f *FIRFilter) NextSample() float64 {
	var x float64
	if in := f.firstInput(); in != nil {
		x = in.NextSample()
	}
	return f.kernel.ProcessSample(x)
}

func (f *FIRFilter) redesign() {
	if !f.data.Initialized || f.typ == FIRUserDefined {
		return
	}

	sr := f.data.SampleRate
	nyquist := sr / 2

	var (
		coeffs []float64
		err    error
	)
	switch f.typ {
	case FIRHighPass:
		coeffs, err = fir.HighPass(clamp(f.cutoff, 0, nyquist), sr, f.taps, f.win)
	case FIRBandPass:
		coeffs, err = fir.BandPass(clamp(f.lower, 0, nyquist), clamp(f.upper, 0, nyquist), sr, f.taps, f.win)
	case FIRBandStop:
		coeffs, err = fir.BandStop(clamp(f.lower, 0, nyquist), clamp(f.upper, 0, nyquist), sr, f.taps, f.win)
	default:
		coeffs, err = fir.LowPass(clamp(f.cutoff, 0, nyquist), sr, f.taps, f.win)
	}
	if err != nil {
		logger.WithError(err).Warn("synth: FIR kernel design failed; keeping previous kernel")
		return
	}

	f.kernel.SetCoefficients(coeffs)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
