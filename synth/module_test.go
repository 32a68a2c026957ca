package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-synth/dsp/core"
)

func TestConnectCreatesSymmetricEdge(t *testing.T) {
	osc := NewOscillator()
	amp := NewMultiplier()

	Connect(osc, amp)

	require.Len(t, amp.Inputs(), 1)
	require.Len(t, osc.Outputs(), 1)
	assert.Equal(t, Module(osc), amp.Inputs()[0])
	assert.Equal(t, Module(amp), osc.Outputs()[0])
}

func TestConnectIsIdempotent(t *testing.T) {
	osc := NewOscillator()
	amp := NewMultiplier()

	Connect(osc, amp)
	Connect(osc, amp)

	assert.Len(t, amp.Inputs(), 1)
	assert.Len(t, osc.Outputs(), 1)
}

func TestConnectEvictsOldestInput(t *testing.T) {
	a := NewOscillator()
	b := NewOscillator()
	amp := NewMultiplier() // single input

	Connect(a, amp)
	Connect(b, amp)

	require.Len(t, amp.Inputs(), 1)
	assert.Equal(t, Module(b), amp.Inputs()[0])
	assert.Empty(t, a.Outputs(), "evicted input must lose its back-reference")
}

func TestConnectRefusedByGenerator(t *testing.T) {
	a := NewOscillator()
	b := NewOscillator() // zero inputs allowed

	Connect(a, b)

	assert.Empty(t, b.Inputs())
	assert.Empty(t, a.Outputs())
}

func TestDisconnectRemovesBothSides(t *testing.T) {
	osc := NewOscillator()
	amp := NewMultiplier()
	Connect(osc, amp)

	amp.Disconnect(osc)

	assert.Empty(t, amp.Inputs())
	assert.Empty(t, osc.Outputs())
}

func TestDisconnectAll(t *testing.T) {
	osc := NewOscillator()
	split := NewSplitter()
	l := NewMultiplier()
	r := NewMultiplier()
	Chain(osc, split)
	Connect(split, l)
	Connect(split, r)

	split.DisconnectAll()

	assert.Empty(t, split.Inputs())
	assert.Empty(t, split.Outputs())
	assert.Empty(t, osc.Outputs())
	assert.Empty(t, l.Inputs())
	assert.Empty(t, r.Inputs())
}

func TestSetDataPropagatesUpstream(t *testing.T) {
	osc := NewOscillator()
	flt := NewFilter(LowPass)
	amp := NewMultiplier()
	Chain(osc, flt, amp)

	amp.SetData(core.NewControlData(core.WithSampleRate(22050)))

	assert.Equal(t, 22050.0, flt.Data().SampleRate)
	assert.Equal(t, 22050.0, osc.Data().SampleRate)
	assert.True(t, osc.Data().Initialized)
}

func TestSetDataReachesParameterInputs(t *testing.T) {
	lfo := NewOscillator()
	carrier := NewOscillator()
	ConnectParam(lfo, &carrier.Frequency)

	carrier.SetData(core.NewControlData(core.WithSampleRate(8000)))

	assert.Equal(t, 8000.0, lfo.Data().SampleRate)
}

func TestConnectSeedsDataAcrossNewEdge(t *testing.T) {
	osc := NewOscillator()
	amp := NewMultiplier()
	amp.SetData(core.NewControlData(core.WithSampleRate(44100)))

	Connect(osc, amp)

	assert.Equal(t, 44100.0, osc.Data().SampleRate)
}

func TestConflictingDataKeepsFirstSet(t *testing.T) {
	osc := NewOscillator()
	amp := NewMultiplier()
	osc.SetData(core.NewControlData(core.WithSampleRate(44100)))
	amp.SetData(core.NewControlData(core.WithSampleRate(48000)))

	Connect(osc, amp)

	// Reported, not overwritten: each side keeps its own configuration.
	assert.Equal(t, 44100.0, osc.Data().SampleRate)
	assert.Equal(t, 48000.0, amp.Data().SampleRate)
}

func TestChainWiresSuccessivePairs(t *testing.T) {
	osc := NewOscillator()
	flt := NewFilter(LowPass)
	amp := NewMultiplier()
	out := NewGenericOutput()

	Chain(osc, flt, amp, out)

	require.Len(t, flt.Inputs(), 1)
	require.Len(t, amp.Inputs(), 1)
	require.Len(t, out.Inputs(), 1)
	assert.Equal(t, Module(amp), out.Inputs()[0])
}

func TestBaseDefaultSampleIsZero(t *testing.T) {
	var b Base
	assert.Zero(t, b.NextSample())
}
