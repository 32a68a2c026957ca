package synth

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Module is one node in a synthesis graph. Every module produces one
// sample per NextSample call, advancing its internal state by exactly
// one tick as a side effect.
//
// Custom modules embed Base and call its Init method with themselves
// before use; the package constructors do this for all built-in modules.
type Module interface {
	NextSample() float64
	base() *Base
}

// DataSetListener is implemented by modules that derive state from the
// shared control data (filters recompute coefficients, oscillators
// recompute phase increments). The hook fires after the data is stored.
type DataSetListener interface {
	OnDataSet()
}

// InputLimiter overrides the default input connection limit of 1.
// A limit of 0 makes the module a pure generator.
type InputLimiter interface {
	MaxInputs() int
}

// OutputLimiter overrides the default output connection limit of 1.
// A limit of 0 makes the module a terminal output.
type OutputLimiter interface {
	MaxOutputs() int
}

// InputAssignedListener is notified after a module gains an input.
type InputAssignedListener interface {
	OnInputAssigned(in Module)
}

// OutputAssignedListener is notified after a module gains an output.
type OutputAssignedListener interface {
	OnOutputAssigned(out Module)
}

// Base carries the graph bookkeeping shared by all modules: input and
// output edges, registered parameters, and the control data record.
// The zero value is usable once Init has been called.
type Base struct {
	self    Module
	inputs  []Module
	outputs []Module
	params  []*Parameter
	data    core.ControlData
}

// Init binds the embedding module to its Base so hook dispatch and data
// propagation can reach the concrete type. Constructors of the built-in
// modules call this; custom modules must do the same.
func (b *Base) Init(self Module) {
	b.self = self
}

// base returns b, satisfying the Module interface for embedding types.
func (b *Base) base() *Base { return b }

// NextSample returns 0. Concrete modules override this.
func (b *Base) NextSample() float64 { return 0 }

// Data returns the module's control data record.
func (b *Base) Data() core.ControlData { return b.data }

// Inputs returns a copy of the module's current input edges, oldest first.
func (b *Base) Inputs() []Module {
	return append([]Module(nil), b.inputs...)
}

// Outputs returns a copy of the module's current output edges, oldest first.
func (b *Base) Outputs() []Module {
	return append([]Module(nil), b.outputs...)
}

// SetData sets the shared control data, marks it initialized, and
// propagates it to every reachable module that has none yet. Reaching a
// module whose data was already set to something different is reported
// through the package logger; that module keeps its first-set data.
func (b *Base) SetData(d core.ControlData) {
	d.Initialized = true
	b.data = d
	b.dataSet(nil)
}

func (b *Base) dataSet(caller Module) {
	if l, ok := b.self.(DataSetListener); ok {
		l.OnDataSet()
	}

	for _, in := range b.inputs {
		if in != caller {
			b.setDataIfNotSet(in)
		}
	}
	for _, out := range b.outputs {
		if out != caller {
			b.setDataIfNotSet(out)
		}
	}
	for _, p := range b.params {
		if p.input != nil && p.input != caller {
			b.setDataIfNotSet(p.input)
		}
	}
}

func (b *Base) setDataIfNotSet(target Module) {
	tb := target.base()
	switch {
	case !tb.data.Initialized:
		tb.data = b.data
		tb.dataSet(b.self)
	case !tb.data.Equal(b.data):
		logger.WithFields(logrus.Fields{
			"sample_rate":       b.data.SampleRate,
			"oversampling":      b.data.Oversampling,
			"peer_sample_rate":  tb.data.SampleRate,
			"peer_oversampling": tb.data.Oversampling,
		}).Warn("synth: conflicting control data; peer keeps its first-set configuration")
	}
}

// Disconnect removes the edge between b's module and peer, from either
// side, including the mirrored back-reference. Unknown peers are ignored.
func (b *Base) Disconnect(peer Module) {
	removeEdge(b.self, peer)
	removeEdge(peer, b.self)
}

// DisconnectAll removes every edge touching this module.
func (b *Base) DisconnectAll() {
	for len(b.inputs) > 0 {
		b.Disconnect(b.inputs[0])
	}
	for len(b.outputs) > 0 {
		b.Disconnect(b.outputs[0])
	}
}

// registerParameter attaches p to this module so data propagation can
// reach the parameter's input and UpdateValue pulls stay per-module.
func (b *Base) registerParameter(p *Parameter) {
	p.owner = b
	b.params = append(b.params, p)
}

// firstInput returns the oldest-connected input, or nil.
func (b *Base) firstInput() Module {
	if len(b.inputs) == 0 {
		return nil
	}
	return b.inputs[0]
}

// removeEdge deletes to from from's outputs and from from to's inputs.
func removeEdge(from, to Module) {
	fb := from.base()
	fb.outputs = removeModule(fb.outputs, to)
	tb := to.base()
	tb.inputs = removeModule(tb.inputs, from)
}

func removeModule(mods []Module, m Module) []Module {
	for i, cur := range mods {
		if cur == m {
			return append(mods[:i], mods[i+1:]...)
		}
	}
	return mods
}
