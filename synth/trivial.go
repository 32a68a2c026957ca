package synth

// TrivialGenerator produces samples starting at Value and increasing by
// Step each tick. It exists for numerically testing other modules.
type TrivialGenerator struct {
	Base

	Value Parameter
	Step  Parameter
}

// NewTrivialGenerator returns a generator producing 0, then 0+Step, ...
func NewTrivialGenerator() *TrivialGenerator {
	g := &TrivialGenerator{}
	g.Init(g)
	g.registerParameter(&g.Value)
	g.registerParameter(&g.Step)
	return g
}

// MaxInputs marks the generator as input-free.
func (g *TrivialGenerator) MaxInputs() int { return 0 }

// NextSample returns the current value and steps it for the next tick.
func (g *TrivialGenerator) NextSample() float64 {
	g.Value.UpdateValue()
	g.Step.UpdateValue()

	v := g.Value.value
	g.Value.value = v + g.Step.value
	return v
}
