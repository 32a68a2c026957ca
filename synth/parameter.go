package synth

// Parameter is a scalar control value on a module, optionally driven by
// an upstream module's output. With no input connected it behaves as a
// constant. A module that reads a parameter during NextSample must call
// UpdateValue exactly once per tick, before Value, so a connected input
// advances in lockstep with the rest of the graph.
type Parameter struct {
	owner *Base
	input Module

	value   float64
	updated bool
}

// SetValue assigns a literal value and disconnects any driving input.
// The updated flag is raised only when the value actually changes.
func (p *Parameter) SetValue(v float64) {
	p.input = nil
	if v != p.value {
		p.value = v
		p.updated = true
	}
}

// Value returns the current scalar value.
func (p *Parameter) Value() float64 {
	return p.value
}

// UpdateValue pulls exactly one sample from the connected input and
// stores it. With no input connected this is a no-op.
func (p *Parameter) UpdateValue() {
	if p.input == nil {
		return
	}
	v := p.input.NextSample()
	if v != p.value {
		p.value = v
		p.updated = true
	}
}

// ValueUpdated reports whether the value changed since the last check
// and clears the flag.
func (p *Parameter) ValueUpdated() bool {
	u := p.updated
	p.updated = false
	return u
}

// PeekUpdated reports whether the value changed since the last check
// without clearing the flag.
func (p *Parameter) PeekUpdated() bool {
	return p.updated
}

// Connected reports whether an input module currently drives the parameter.
func (p *Parameter) Connected() bool {
	return p.input != nil
}

// setDefault seeds a parameter from a constructor without raising the
// updated flag.
func (p *Parameter) setDefault(v float64) {
	p.value = v
}
