package synth

import "math"

// HarmonicSeriesType selects how SetHarmonicSeries spaces the harmonics.
type HarmonicSeriesType int

const (
	// SeriesMultiple spaces harmonic i at controlParameter*i times the
	// fundamental; a control parameter of 1 gives the standard series.
	SeriesMultiple HarmonicSeriesType = iota
	// SeriesSemitone spaces harmonic i at controlParameter*i
	// equal-tempered semitones above the fundamental.
	SeriesSemitone
)

// AmplitudePreset selects closed-form harmonic amplitudes that, combined
// with the standard harmonic series, approximate a classic waveform.
type AmplitudePreset int

const (
	PresetSine AmplitudePreset = iota
	PresetSquare
	PresetSaw
	PresetTriangle
)

// RelativeFrequency returns f raised by the given number of
// equal-tempered semitones.
func RelativeFrequency(f, semitones float64) float64 {
	return f * math.Pow(2, semitones/12)
}

type harmonicInfo struct {
	relativeFrequency float64
	amplitude         float64

	phase     float64
	increment float64
}

// AdditiveSynth sums a bank of sine harmonics, each with a relative
// frequency and amplitude. It is essentially an inverse Fourier
// transform: choose the frequencies and amplitudes, get the waveform.
// Note that with few harmonics the square and saw presets overshoot
// [-1,1] slightly; follow with a Multiplier or Clamper if that matters.
type AdditiveSynth struct {
	Base

	// Fundamental is the frequency of the first harmonic in Hz.
	Fundamental Parameter

	harmonics []harmonicInfo
}

// NewAdditiveSynth returns an additive synth with a single unit-amplitude
// harmonic at the fundamental (10 Hz by default, matching a silent-ish
// idle patch until configured).
func NewAdditiveSynth() *AdditiveSynth {
	s := &AdditiveSynth{}
	s.Init(s)
	s.registerParameter(&s.Fundamental)
	s.Fundamental.setDefault(10)
	s.harmonics = []harmonicInfo{{relativeFrequency: 1, amplitude: 1}}
	return s
}

// MaxInputs marks the synth as a pure generator.
func (s *AdditiveSynth) MaxInputs() int { return 0 }

// SetStandardHarmonicSeries configures count harmonics at integer
// multiples of the fundamental.
func (s *AdditiveSynth) SetStandardHarmonicSeries(count int) {
	s.SetHarmonicSeries(count, SeriesMultiple, 1)
}

// SetHarmonicSeries configures count harmonics spaced per the series
// type. Existing amplitudes are preserved where harmonics survive;
// new harmonics start silent.
func (s *AdditiveSynth) SetHarmonicSeries(count int, typ HarmonicSeriesType, controlParameter float64) {
	if count < 1 {
		count = 1
	}

	freqs := make([]float64, count)
	for i := range freqs {
		switch typ {
		case SeriesSemitone:
			freqs[i] = RelativeFrequency(1, controlParameter*float64(i))
		default:
			freqs[i] = controlParameter * float64(i+1)
		}
	}

	s.SetHarmonicSeriesFrequencies(freqs)
}

// SetHarmonicSeriesFrequencies sets an explicit list of relative
// frequencies, one per harmonic.
func (s *AdditiveSynth) SetHarmonicSeriesFrequencies(relative []float64) {
	harmonics := make([]harmonicInfo, len(relative))
	for i, rf := range relative {
		harmonics[i].relativeFrequency = rf
		if i < len(s.harmonics) {
			harmonics[i].amplitude = s.harmonics[i].amplitude
			harmonics[i].phase = s.harmonics[i].phase
		}
	}
	s.harmonics = harmonics
	s.recalculateIncrements()
}

// CalculateAmplitudes returns the closed-form amplitudes of a preset for
// the given harmonic count, assuming the standard harmonic series.
func CalculateAmplitudes(preset AmplitudePreset, count int) []float64 {
	amps := make([]float64, count)
	for i := range amps {
		n := i + 1 // 1-based harmonic number
		switch preset {
		case PresetSine:
			if n == 1 {
				amps[i] = 1
			}
		case PresetSquare:
			if n%2 == 1 {
				amps[i] = 4 / math.Pi / float64(n)
			}
		case PresetSaw:
			sign := 1.0
			if n%2 == 0 {
				sign = -1
			}
			amps[i] = sign * 2 / math.Pi / float64(n)
		case PresetTriangle:
			if n%2 == 1 {
				sign := 1.0
				if (n-1)/2%2 == 1 {
					sign = -1
				}
				amps[i] = sign * 8 / (math.Pi * math.Pi) / float64(n*n)
			}
		}
	}
	return amps
}

// SetAmplitudes applies a preset to the current harmonics.
func (s *AdditiveSynth) SetAmplitudes(preset AmplitudePreset) {
	s.SetAmplitudeValues(CalculateAmplitudes(preset, len(s.harmonics)))
}

// SetAmplitudesMix linearly blends two presets; mix is the proportion of
// the first preset, clamped to [0,1].
func (s *AdditiveSynth) SetAmplitudesMix(p1, p2 AmplitudePreset, mix float64) {
	mix = math.Min(1, math.Max(0, mix))

	a1 := CalculateAmplitudes(p1, len(s.harmonics))
	a2 := CalculateAmplitudes(p2, len(s.harmonics))
	for i := range a1 {
		a1[i] = mix*a1[i] + (1-mix)*a2[i]
	}
	s.SetAmplitudeValues(a1)
}

// SetAmplitudeValues sets explicit per-harmonic amplitudes. Extra values
// are ignored; missing values leave the harmonic silent.
func (s *AdditiveSynth) SetAmplitudeValues(amps []float64) {
	for i := range s.harmonics {
		if i < len(amps) {
			s.harmonics[i].amplitude = amps[i]
		} else {
			s.harmonics[i].amplitude = 0
		}
	}
}

// PruneLowAmplitudeHarmonics discards harmonics with |amplitude| below
// tol, bounding the per-sample synthesis cost.
func (s *AdditiveSynth) PruneLowAmplitudeHarmonics(tol float64) {
	kept := s.harmonics[:0]
	for _, h := range s.harmonics {
		if math.Abs(h.amplitude) >= tol {
			kept = append(kept, h)
		}
	}
	s.harmonics = kept
}

// HarmonicCount returns the number of active harmonics.
func (s *AdditiveSynth) HarmonicCount() int {
	return len(s.harmonics)
}

// OnDataSet recomputes every harmonic's phase increment for the new
// sample rate.
func (s *AdditiveSynth) OnDataSet() {
	s.recalculateIncrements()
}

// NextSample sums amplitude*sin(2*pi*phase) over the harmonics and
// advances each phase by one tick.
func (s *AdditiveSynth) NextSample() float64 {
	s.Fundamental.UpdateValue()
	if s.Fundamental.ValueUpdated() {
		s.recalculateIncrements()
	}

	var sum float64
	for i := range s.harmonics {
		h := &s.harmonics[i]
		sum += h.amplitude * math.Sin(2*math.Pi*h.phase)
		h.phase += h.increment
		h.phase -= math.Floor(h.phase)
	}
	return sum
}

func (s *AdditiveSynth) recalculateIncrements() {
	if s.data.SampleRate <= 0 {
		return
	}
	f := s.Fundamental.Value()
	for i := range s.harmonics {
		h := &s.harmonics[i]
		h.increment = f * h.relativeFrequency / s.data.SampleRate
	}
}
