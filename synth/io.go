package synth

import (
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// GenericOutput is the endpoint module inside every output adapter. It
// passes its single input through, averaging Oversampling consecutive
// pulls per emitted sample for anti-aliasing, and hands its control data
// to any newly assigned input so a patch wired into a configured output
// needs no explicit SetData calls.
type GenericOutput struct {
	Base
}

// NewGenericOutput returns an unconfigured terminal output.
func NewGenericOutput() *GenericOutput {
	g := &GenericOutput{}
	g.Init(g)
	return g
}

// MaxOutputs marks the module as terminal.
func (g *GenericOutput) MaxOutputs() int { return 0 }

// OnInputAssigned pushes the adapter's control data upstream.
func (g *GenericOutput) OnInputAssigned(in Module) {
	if g.data.Initialized {
		in.base().SetData(g.data)
	}
}

func (g *GenericOutput) NextSample() float64 {
	in := g.firstInput()
	if in == nil {
		return 0
	}

	over := g.data.Oversampling
	if over <= 1 {
		return in.NextSample()
	}

	var sum float64
	for range over {
		sum += in.NextSample()
	}
	return sum / float64(over)
}

// configureOutput builds the internal control data for an output adapter
// emitting at the given device rate: the graph itself runs oversampled.
func configureOutput(emitRate float64, opts []core.ControlOption) core.ControlData {
	cd := core.NewControlData(append([]core.ControlOption{core.WithSampleRate(emitRate)}, opts...)...)
	cd.SampleRate *= float64(cd.Oversampling)
	return cd
}

// BufferInput plays one channel of an audio.FloatBuffer into the graph,
// in strictly increasing sample order. Past the end of the data it
// produces silence.
type BufferInput struct {
	Base

	buf     *audio.FloatBuffer
	channel int
	pos     int
}

// NewBufferInput returns an input with no buffer attached (silent).
func NewBufferInput() *BufferInput {
	b := &BufferInput{}
	b.Init(b)
	return b
}

// MaxInputs marks the module as a source.
func (b *BufferInput) MaxInputs() int { return 0 }

// SetBuffer attaches one channel of a buffer and rewinds. When the
// module has no control data yet, the buffer's sample rate seeds it.
func (b *BufferInput) SetBuffer(buf *audio.FloatBuffer, channel int) {
	b.buf = buf
	b.channel = channel
	b.pos = 0

	if !b.data.Initialized && buf != nil && buf.Format != nil && buf.Format.SampleRate > 0 {
		b.SetData(core.NewControlData(core.WithSampleRate(float64(buf.Format.SampleRate))))
	}
}

// SetTime seeks to the given playback position in seconds.
func (b *BufferInput) SetTime(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	b.pos = int(seconds * b.data.SampleRate)
}

// CanPlay reports whether unread samples remain.
func (b *BufferInput) CanPlay() bool {
	return b.buf != nil && b.pos < b.frames()
}

func (b *BufferInput) frames() int {
	if b.buf == nil || b.buf.Format == nil || b.buf.Format.NumChannels <= 0 {
		return 0
	}
	return len(b.buf.Data) / b.buf.Format.NumChannels
}

func (b *BufferInput) NextSample() float64 {
	if !b.CanPlay() {
		return 0
	}
	v := b.buf.Data[b.pos*b.buf.Format.NumChannels+b.channel]
	b.pos++
	return v
}

// BufferOutput renders the graph into an audio.FloatBuffer from a
// non-realtime context.
type BufferOutput struct {
	GenericOutput

	emitRate float64
}

// NewBufferOutput returns an output emitting at the given sample rate.
// Pass core.WithOversampling to run the graph oversampled; the emitted
// buffer stays at sampleRate.
func NewBufferOutput(sampleRate float64, opts ...core.ControlOption) *BufferOutput {
	o := &BufferOutput{}
	o.Init(o)

	cd := configureOutput(sampleRate, opts)
	o.emitRate = cd.SampleRate / float64(cd.Oversampling)
	o.SetData(cd)
	return o
}

// RenderSeconds pulls the given duration of output and returns it as a
// mono buffer.
func (o *BufferOutput) RenderSeconds(seconds float64) *audio.FloatBuffer {
	n := int(seconds * o.emitRate)
	if n < 0 {
		n = 0
	}

	data := make([]float64, n)
	for i := range data {
		data[i] = o.NextSample()
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: int(o.emitRate)},
		Data:   data,
	}
}

// StereoBufferOutput renders a two-channel graph into an interleaved
// stereo buffer. Wire one branch into Left and one into Right,
// typically downstream of a Splitter.
type StereoBufferOutput struct {
	Left  *GenericOutput
	Right *GenericOutput

	emitRate float64
}

// NewStereoBufferOutput returns a stereo output emitting at the given
// sample rate.
func NewStereoBufferOutput(sampleRate float64, opts ...core.ControlOption) *StereoBufferOutput {
	o := &StereoBufferOutput{
		Left:  NewGenericOutput(),
		Right: NewGenericOutput(),
	}

	cd := configureOutput(sampleRate, opts)
	o.emitRate = cd.SampleRate / float64(cd.Oversampling)
	o.Left.SetData(cd)
	o.Right.SetData(cd)
	return o
}

// RenderSeconds pulls both channels in lockstep and returns an
// interleaved stereo buffer.
func (o *StereoBufferOutput) RenderSeconds(seconds float64) *audio.FloatBuffer {
	n := int(seconds * o.emitRate)
	if n < 0 {
		n = 0
	}

	data := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		data[2*i] = o.Left.NextSample()
		data[2*i+1] = o.Right.NextSample()
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: int(o.emitRate)},
		Data:   data,
	}
}

// defaultStreamInputCap bounds how stale buffered live input can get
// before old samples are dropped.
const defaultStreamInputCap = 4096

// StreamInput feeds samples from a live input collaborator (microphone,
// line in) into the graph. The collaborator calls Push from its callback;
// the graph drains the buffer one sample per tick. An empty buffer
// produces silence.
type StreamInput struct {
	Base

	buf    []float64
	head   int
	maxCap int
}

// NewStreamInput returns a stream input with the default 4096-sample cap.
func NewStreamInput() *StreamInput {
	s := &StreamInput{maxCap: defaultStreamInputCap}
	s.Init(s)
	return s
}

// MaxInputs marks the module as a source; it is fed via Push, not edges.
func (s *StreamInput) MaxInputs() int { return 0 }

// SetMaxBufferSize bounds the number of buffered samples. Sizes below 1
// are ignored.
func (s *StreamInput) SetMaxBufferSize(size int) {
	if size >= 1 {
		s.maxCap = size
		s.trim()
	}
}

// Push appends incoming samples, dropping the oldest beyond the cap.
func (s *StreamInput) Push(samples []float64) {
	s.buf = append(s.buf, samples...)
	s.trim()
}

// Clear discards all buffered samples.
func (s *StreamInput) Clear() {
	s.buf = s.buf[:0]
	s.head = 0
}

// Buffered returns the number of samples waiting to be consumed.
func (s *StreamInput) Buffered() int {
	return len(s.buf) - s.head
}

func (s *StreamInput) trim() {
	if over := s.Buffered() - s.maxCap; over > 0 {
		s.head += over
	}
	// Compact once the dead prefix dominates.
	if s.head > len(s.buf)/2 {
		s.buf = append(s.buf[:0], s.buf[s.head:]...)
		s.head = 0
	}
}

func (s *StreamInput) NextSample() float64 {
	if s.head >= len(s.buf) {
		return 0
	}
	v := s.buf[s.head]
	s.head++
	if s.head == len(s.buf) {
		s.Clear()
	}
	return v
}

// StreamOutput is the pull-side adapter for a device-stream collaborator:
// the device callback fills its buffers one sample per slot, without
// reentrancy or concurrent calls into the same graph.
type StreamOutput struct {
	GenericOutput
}

// NewStreamOutput returns an output for a device emitting at the given
// sample rate.
func NewStreamOutput(sampleRate float64, opts ...core.ControlOption) *StreamOutput {
	o := &StreamOutput{}
	o.Init(o)
	o.SetData(configureOutput(sampleRate, opts))
	return o
}

// Fill pulls one sample per slot of dst.
func (o *StreamOutput) Fill(dst []float64) {
	for i := range dst {
		dst[i] = o.NextSample()
	}
}

// StereoStreamOutput is the stereo variant of StreamOutput, with
// separate Left and Right endpoints sharing one device stream.
type StereoStreamOutput struct {
	Left  *GenericOutput
	Right *GenericOutput
}

// NewStereoStreamOutput returns a stereo output for a device emitting at
// the given sample rate.
func NewStereoStreamOutput(sampleRate float64, opts ...core.ControlOption) *StereoStreamOutput {
	o := &StereoStreamOutput{
		Left:  NewGenericOutput(),
		Right: NewGenericOutput(),
	}

	cd := configureOutput(sampleRate, opts)
	o.Left.SetData(cd)
	o.Right.SetData(cd)
	return o
}

// FillInterleaved fills dst with interleaved stereo frames, pulling both
// channels in lockstep. A trailing odd slot is left untouched.
func (o *StereoStreamOutput) FillInterleaved(dst []float64) {
	for i := 0; i+1 < len(dst); i += 2 {
		dst[i] = o.Left.NextSample()
		dst[i+1] = o.Right.NextSample()
	}
}
