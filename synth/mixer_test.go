package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// constant returns a module whose output is always v.
func constant(v float64) *Adder {
	a := NewAdder()
	a.Amount.SetValue(v)
	return a
}

func TestMixerSumsInputs(t *testing.T) {
	m := NewMixer()
	Connect(constant(0.3), m)
	Connect(constant(0.4), m)

	assert.InDelta(t, 0.7, m.NextSample(), 1e-15)
}

func TestMixerEmpty(t *testing.T) {
	assert.Zero(t, NewMixer().NextSample())
}

func TestMixerEvictsOldestInputAtCapacity(t *testing.T) {
	m := NewMixer()

	var sum float64
	for i := 1; i <= mixerMaxInputs; i++ {
		Connect(constant(float64(i)), m)
		sum += float64(i)
	}
	assert.InDelta(t, sum, m.NextSample(), 1e-9)

	// One past capacity: the first input (value 1) is evicted.
	Connect(constant(100), m)
	assert.Len(t, m.Inputs(), mixerMaxInputs)
	assert.InDelta(t, sum-1+100, m.NextSample(), 1e-9)
}

func TestSplitterServesSameSampleToAllOutputs(t *testing.T) {
	src := NewTrivialGenerator()
	src.Step.SetValue(1) // 0, 1, 2, ...

	split := NewSplitter()
	left := NewFunctionModule(nil)
	right := NewFunctionModule(nil)
	Connect(src, split)
	Connect(split, left)
	Connect(split, right)

	// Both branches see the same source sample within a tick, and the
	// source only advances once both have been served.
	assert.Equal(t, 0.0, left.NextSample())
	assert.Equal(t, 0.0, right.NextSample())
	assert.Equal(t, 1.0, left.NextSample())
	assert.Equal(t, 1.0, right.NextSample())
	assert.Equal(t, 2.0, right.NextSample())
	assert.Equal(t, 2.0, left.NextSample())
}

func TestSplitterNoInput(t *testing.T) {
	split := NewSplitter()
	sink := NewFunctionModule(nil)
	Connect(split, sink)
	assert.Zero(t, sink.NextSample())
}

func TestRingModulator(t *testing.T) {
	r := NewRingModulator()
	assert.Zero(t, r.NextSample(), "no inputs")

	Connect(constant(0.5), r)
	assert.Equal(t, 0.5, r.NextSample(), "single input passes through")

	Connect(constant(0.25), r)
	assert.Equal(t, 0.125, r.NextSample(), "two inputs multiply")
}

func TestAdderAsConstantAndOffset(t *testing.T) {
	a := NewAdder()
	a.Amount.SetValue(0.2)
	assert.InDelta(t, 0.2, a.NextSample(), 1e-15, "no input: output equals Amount")

	Connect(constant(0.5), a)
	assert.InDelta(t, 0.7, a.NextSample(), 1e-15)
}

func TestMultiplier(t *testing.T) {
	m := NewMultiplier()
	assert.Zero(t, m.NextSample(), "no input")

	Connect(constant(0.5), m)
	assert.Equal(t, 0.5, m.NextSample(), "default Amount is 1")

	m.Amount.SetValue(0.5)
	assert.Equal(t, 0.25, m.NextSample())
}

func TestMultiplierSetGain(t *testing.T) {
	m := NewMultiplierWithAmount(0)
	Connect(constant(1), m)

	m.SetGain(-6)
	assert.InDelta(t, 0.501187, m.NextSample(), 1e-6)

	m.SetGain(0)
	assert.InDelta(t, 1.0, m.NextSample(), 1e-15)
}

func TestClamper(t *testing.T) {
	c := NewClamper()
	Connect(constant(0.7), c)
	assert.Equal(t, 0.7, c.NextSample(), "within default bounds")

	c.High.SetValue(0.5)
	assert.Equal(t, 0.5, c.NextSample(), "clamped from above")

	c.Low.SetValue(0.9)
	c.High.SetValue(2)
	assert.Equal(t, 0.9, c.NextSample(), "clamped from below")
}

func TestFunctionModule(t *testing.T) {
	f := NewFunctionModule(func(v float64) float64 { return v * v })
	Connect(constant(0.5), f)
	assert.Equal(t, 0.25, f.NextSample())

	f.SetFunc(nil)
	assert.Equal(t, 0.5, f.NextSample(), "nil function passes through")
}
