package synth

// Mixer adds together all of its inputs with no amplitude correction;
// use Multipliers on the inputs to set levels. The sum of many
// full-scale inputs can far exceed [-1,1].
type Mixer struct {
	Base
}

// mixerMaxInputs bounds the fan-in; the 65th connection evicts the
// oldest input rather than failing.
const mixerMaxInputs = 64

// NewMixer returns an empty mixer.
func NewMixer() *Mixer {
	m := &Mixer{}
	m.Init(m)
	return m
}

func (m *Mixer) MaxInputs() int { return mixerMaxInputs }

// NextSample pulls one sample from every input and returns the sum.
func (m *Mixer) NextSample() float64 {
	var sum float64
	for _, in := range m.inputs {
		sum += in.NextSample()
	}
	return sum
}

// Splitter fans a single input out to multiple outputs, for stereo or
// parallel processing paths. Within one tick every output receives the
// same source sample regardless of pull order: the input is pulled once
// and cached until all connected outputs have been served.
type Splitter struct {
	Base

	current    float64
	fedOutputs int
}

const splitterMaxOutputs = 32

// NewSplitter returns an empty splitter.
func NewSplitter() *Splitter {
	s := &Splitter{}
	s.Init(s)
	return s
}

func (s *Splitter) MaxOutputs() int { return splitterMaxOutputs }

// OnOutputAssigned forces a fresh source pull on the next call so a
// newly wired output never observes a sample from an earlier tick.
func (s *Splitter) OnOutputAssigned(Module) {
	s.fedOutputs = len(s.outputs)
}

func (s *Splitter) NextSample() float64 {
	if s.fedOutputs >= len(s.outputs) {
		s.current = 0
		if in := s.firstInput(); in != nil {
			s.current = in.NextSample()
		}
		s.fedOutputs = 0
	}
	s.fedOutputs++
	return s.current
}

// RingModulator multiplies two inputs, the source and the carrier (the
// order does not matter). With a single input it passes that input
// through; with none it outputs 0. Nothing is done about aliasing, so
// non-sinusoidal carriers may not sound great.
type RingModulator struct {
	Base
}

// NewRingModulator returns an empty ring modulator.
func NewRingModulator() *RingModulator {
	r := &RingModulator{}
	r.Init(r)
	return r
}

func (r *RingModulator) MaxInputs() int { return 2 }

func (r *RingModulator) NextSample() float64 {
	switch len(r.inputs) {
	case 0:
		return 0
	case 1:
		return r.inputs[0].NextSample()
	default:
		return r.inputs[0].NextSample() * r.inputs[1].NextSample()
	}
}
