package synth

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/filter/recursive"
)

// FilterType selects the frequency shaping of a Filter.
type FilterType int

const (
	LowPass FilterType = iota
	HighPass
	BandPass
	Notch
)

// Filter shapes its input with a simple recursive (IIR) section. The
// designs are cheap rather than precise; chain several filters for a
// sharper response. Coefficients are recomputed whenever the control
// data, Cutoff, or Bandwidth change.
type Filter struct {
	Base

	// Cutoff is the corner (or center) frequency in Hz.
	Cutoff Parameter
	// Bandwidth is the width in Hz of the pass or stop band at which
	// the response falls to sin(pi/4). Band types only.
	Bandwidth Parameter

	typ     FilterType
	section recursive.Section
}

// NewFilter returns a filter of the given type with a 1 kHz cutoff and a
// 100 Hz bandwidth.
func NewFilter(typ FilterType) *Filter {
	f := &Filter{typ: typ}
	f.Init(f)
	f.registerParameter(&f.Cutoff)
	f.registerParameter(&f.Bandwidth)
	f.Cutoff.setDefault(1000)
	f.Bandwidth.setDefault(100)
	return f
}

// SetType switches the filter type, recomputing coefficients. History is
// kept so a running filter can be switched without a reset click.
func (f *Filter) SetType(typ FilterType) {
	f.typ = typ
	f.recalculateCoefficients()
}

// OnDataSet recomputes coefficients for the new sample rate.
func (f *Filter) OnDataSet() {
	f.recalculateCoefficients()
}

// NextSample filters one input sample. With no input the history still
// advances with a 0 input.
func (f *Filter) NextSample() float64 {
	f.Cutoff.UpdateValue()
	f.Bandwidth.UpdateValue()
	if f.Cutoff.ValueUpdated() || f.Bandwidth.ValueUpdated() {
		f.recalculateCoefficients()
	}

	var x float64
	if in := f.firstInput(); in != nil {
		x = in.NextSample()
	}
	return f.section.ProcessSample(x)
}

func (f *Filter) recalculateCoefficients() {
	if !f.data.Initialized {
		return
	}

	sr := f.data.SampleRate
	cutoff := f.Cutoff.Value()
	bw := f.Bandwidth.Value()

	var c recursive.Coefficients
	switch f.typ {
	case HighPass:
		c = recursive.HighPass(cutoff, sr)
	case BandPass:
		c = recursive.BandPass(cutoff, bw, sr)
	case Notch:
		c = recursive.Notch(cutoff, bw, sr)
	default:
		c = recursive.LowPass(cutoff, sr)
	}
	f.section.SetCoefficients(c)
}

// RCFilter emulates an analog single-pole RC lowpass. Breakpoint sets
// the frequency at which the filter starts to take effect.
type RCFilter struct {
	Base

	Breakpoint Parameter

	v0 float64
}

// NewRCFilter returns an RC lowpass with a 2 kHz breakpoint.
func NewRCFilter() *RCFilter {
	f := &RCFilter{}
	f.Init(f)
	f.registerParameter(&f.Breakpoint)
	f.Breakpoint.setDefault(2000)
	return f
}

func (f *RCFilter) NextSample() float64 {
	in := f.firstInput()
	if in == nil {
		return 0
	}

	f.Breakpoint.UpdateValue()

	v1 := in.NextSample()
	if f.data.SampleRate > 0 {
		f.v0 += (v1 - f.v0) * 2 * math.Pi * f.Breakpoint.Value() / f.data.SampleRate
	}
	return f.v0
}
