package synth

import (
	"math"
	"math/rand"
)

// Generator evaluates one period of a waveform at a phase in [0,1).
type Generator func(phase float64) float64

// Sine evaluates a sine wave at the given phase.
func Sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

// Square evaluates a square wave at the given phase.
func Square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

// Saw evaluates a rising sawtooth in [-1,1) at the given phase.
func Saw(phase float64) float64 {
	return 2*phase - 1
}

// Triangle evaluates a triangle wave in [-1,1] at the given phase,
// rising through 0 at phase 0.
func Triangle(phase float64) float64 {
	switch {
	case phase < 0.25:
		return 4 * phase
	case phase < 0.75:
		return 2 - 4*phase
	default:
		return 4*phase - 4
	}
}

// WhiteNoise returns a generator producing uniform noise in [-1,1] from
// the given source, ignoring phase. Injecting the source keeps noise
// reproducible across runs.
func WhiteNoise(rng *rand.Rand) Generator {
	return func(float64) float64 {
		return rng.Float64()*2 - 1
	}
}

// Oscillator produces a periodic waveform from internal phase state.
// It takes no inputs; modulate Frequency to change pitch.
type Oscillator struct {
	Base

	// Frequency is the fundamental frequency in Hz.
	Frequency Parameter

	generator Generator
	phase     float64
	incr      float64
}

// NewOscillator returns a sine oscillator at 440 Hz.
func NewOscillator() *Oscillator {
	o := &Oscillator{generator: Sine}
	o.Init(o)
	o.registerParameter(&o.Frequency)
	o.Frequency.setDefault(440)
	return o
}

// SetGenerator selects the waveform function. Nil is ignored.
func (o *Oscillator) SetGenerator(g Generator) {
	if g != nil {
		o.generator = g
	}
}

// MaxInputs marks the oscillator as a pure generator.
func (o *Oscillator) MaxInputs() int { return 0 }

// OnDataSet recomputes the phase increment for the new sample rate.
func (o *Oscillator) OnDataSet() {
	o.recalculateIncrement()
}

// NextSample evaluates the waveform at the current phase, then advances
// the phase by frequency/sampleRate, wrapping modulo 1.
func (o *Oscillator) NextSample() float64 {
	o.Frequency.UpdateValue()
	if o.Frequency.ValueUpdated() {
		o.recalculateIncrement()
	}

	v := o.generator(o.phase)

	o.phase += o.incr
	o.phase -= math.Floor(o.phase)

	return v
}

func (o *Oscillator) recalculateIncrement() {
	if o.data.SampleRate <= 0 {
		o.incr = 0
		return
	}
	o.incr = o.Frequency.Value() / o.data.SampleRate
}
