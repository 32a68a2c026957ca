package synth

import "github.com/sirupsen/logrus"

// Connect wires from's output to to's input and returns to, so calls can
// be nested. If either side is at its connection limit, the oldest edge
// of that kind is disconnected first; connecting never fails. Modules
// that allow no inputs (generators) or no outputs (terminal outputs) on
// the relevant side refuse the connection with a logged warning.
func Connect(from, to Module) Module {
	if maxOutputsOf(from) == 0 || maxInputsOf(to) == 0 {
		logger.WithFields(logrus.Fields{
			"max_outputs": maxOutputsOf(from),
			"max_inputs":  maxInputsOf(to),
		}).Warn("synth: connection refused by module connection limits")
		return to
	}

	assignInput(to, from)
	assignOutput(from, to)
	syncData(from, to)

	if l, ok := to.(InputAssignedListener); ok {
		l.OnInputAssigned(from)
	}
	if l, ok := from.(OutputAssignedListener); ok {
		l.OnOutputAssigned(to)
	}

	return to
}

// Chain connects each module to the next: Chain(a, b, c) wires a>>b>>c.
func Chain(mods ...Module) {
	for i := 0; i+1 < len(mods); i++ {
		Connect(mods[i], mods[i+1])
	}
}

// ConnectParam drives a parameter from a module's output. The parameter
// holds the input weakly; assigning a literal value later disconnects it.
func ConnectParam(from Module, p *Parameter) {
	p.input = from
	if p.owner != nil {
		syncData(p.owner.self, from)
	}
}

func assignInput(to, from Module) {
	tb := to.base()
	if containsModule(tb.inputs, from) {
		return
	}

	if limit := maxInputsOf(to); len(tb.inputs) >= limit {
		oldest := tb.inputs[0]
		tb.Disconnect(oldest)
		logger.WithField("limit", limit).Debug("synth: input limit reached; evicted oldest input")
	}

	tb.inputs = append(tb.inputs, from)
}

func assignOutput(from, to Module) {
	fb := from.base()
	if containsModule(fb.outputs, to) {
		return
	}

	if limit := maxOutputsOf(from); len(fb.outputs) >= limit {
		oldest := fb.outputs[0]
		fb.Disconnect(oldest)
		logger.WithField("limit", limit).Debug("synth: output limit reached; evicted oldest output")
	}

	fb.outputs = append(fb.outputs, to)
}

// syncData settles control data across a new edge: an initialized side
// seeds an uninitialized one; two initialized sides that disagree are
// reported and both keep their own data.
func syncData(a, b Module) {
	ab, bb := a.base(), b.base()
	switch {
	case ab.data.Initialized && !bb.data.Initialized:
		ab.setDataIfNotSet(b)
	case bb.data.Initialized && !ab.data.Initialized:
		bb.setDataIfNotSet(a)
	case ab.data.Initialized && bb.data.Initialized:
		if !ab.data.Equal(bb.data) {
			ab.setDataIfNotSet(b) // reports the conflict
		}
	}
}

func maxInputsOf(m Module) int {
	if l, ok := m.(InputLimiter); ok {
		return l.MaxInputs()
	}
	return 1
}

func maxOutputsOf(m Module) int {
	if l, ok := m.(OutputLimiter); ok {
		return l.MaxOutputs()
	}
	return 1
}

func containsModule(mods []Module, m Module) bool {
	for _, cur := range mods {
		if cur == m {
			return true
		}
	}
	return false
}
