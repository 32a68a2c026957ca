package synth

import "math"

// Adder adds Amount to its input. A negative Amount subtracts; with no
// input connected the output equals Amount, so an Adder doubles as a
// numeric constant.
type Adder struct {
	Base

	Amount Parameter
}

// NewAdder returns an Adder with Amount 0.
func NewAdder() *Adder {
	a := &Adder{}
	a.Init(a)
	a.registerParameter(&a.Amount)
	return a
}

func (a *Adder) NextSample() float64 {
	a.Amount.UpdateValue()

	v := a.Amount.Value()
	if in := a.firstInput(); in != nil {
		v += in.NextSample()
	}
	return v
}

// Multiplier multiplies its input by Amount. With no input connected the
// output is 0.
type Multiplier struct {
	Base

	Amount Parameter
}

// NewMultiplier returns a Multiplier with Amount 1.
func NewMultiplier() *Multiplier {
	m := &Multiplier{}
	m.Init(m)
	m.registerParameter(&m.Amount)
	m.Amount.setDefault(1)
	return m
}

// NewMultiplierWithAmount returns a Multiplier with the given Amount.
func NewMultiplierWithAmount(amount float64) *Multiplier {
	m := NewMultiplier()
	m.Amount.setDefault(amount)
	return m
}

// SetGain sets Amount from a gain in decibels.
func (m *Multiplier) SetGain(decibels float64) {
	m.Amount.SetValue(math.Pow(10, decibels/20))
}

func (m *Multiplier) NextSample() float64 {
	m.Amount.UpdateValue()

	in := m.firstInput()
	if in == nil {
		return 0
	}
	return in.NextSample() * m.Amount.Value()
}

// Clamper clamps its input to [Low, High]. The caller must keep
// Low <= High; inverted bounds are not validated.
type Clamper struct {
	Base

	Low  Parameter
	High Parameter
}

// NewClamper returns a Clamper bounding output to [-1, 1].
func NewClamper() *Clamper {
	c := &Clamper{}
	c.Init(c)
	c.registerParameter(&c.Low)
	c.registerParameter(&c.High)
	c.Low.setDefault(-1)
	c.High.setDefault(1)
	return c
}

func (c *Clamper) NextSample() float64 {
	c.Low.UpdateValue()
	c.High.UpdateValue()

	var v float64
	if in := c.firstInput(); in != nil {
		v = in.NextSample()
	}
	return math.Min(c.High.Value(), math.Max(c.Low.Value(), v))
}

// FunctionModule applies an arbitrary function to each input sample.
// With no function set it passes the input through unchanged.
type FunctionModule struct {
	Base

	fn func(float64) float64
}

// NewFunctionModule returns a module applying fn to every sample.
func NewFunctionModule(fn func(float64) float64) *FunctionModule {
	m := &FunctionModule{fn: fn}
	m.Init(m)
	return m
}

// SetFunc replaces the applied function.
func (m *FunctionModule) SetFunc(fn func(float64) float64) {
	m.fn = fn
}

func (m *FunctionModule) NextSample() float64 {
	var v float64
	if in := m.firstInput(); in != nil {
		v = in.NextSample()
	}
	if m.fn == nil {
		return v
	}
	return m.fn(v)
}
