package synth

// Envelope stage progression. The envelope idles (outputting 0) until
// Attack is called, then walks attack -> decay -> sustain, and on
// Release ramps back to 0.
const (
	stageAttack = iota
	stageDecay
	stageSustain
	stageRelease
	stageIdle
)

// Envelope is a standard ADSR envelope. S is a level in [0,1]; A, D and
// R are durations in seconds. The output rises from the level at trigger
// time to 1 during the attack, falls to S during the decay, holds at S,
// and falls to 0 over the release. Retriggering mid-ramp is click-free
// because each ramp starts from the current output level.
type Envelope struct {
	Base

	// GateInput lets another module trigger the envelope: a transition
	// to 1.0 triggers the attack, a transition to 0.0 the release.
	GateInput Parameter

	A Parameter
	D Parameter
	S Parameter
	R Parameter

	stage int

	lastLevel    float64
	levelAtStart float64

	timePerSample float64
	timeInStage   float64
}

// NewEnvelope returns an idle envelope with an instant attack/decay/
// release and full sustain.
func NewEnvelope() *Envelope {
	e := &Envelope{stage: stageIdle}
	e.Init(e)
	e.registerParameter(&e.GateInput)
	e.registerParameter(&e.A)
	e.registerParameter(&e.D)
	e.registerParameter(&e.S)
	e.registerParameter(&e.R)
	e.GateInput.setDefault(0.5) // neither attack nor release
	e.S.setDefault(1)
	return e
}

// Attack starts the attack ramp from the current output level. Valid
// from any stage.
func (e *Envelope) Attack() {
	e.levelAtStart = e.lastLevel
	e.stage = stageAttack
	e.timeInStage = 0
}

// Release starts the release ramp from the current output level. Valid
// from any stage.
func (e *Envelope) Release() {
	e.levelAtStart = e.lastLevel
	e.stage = stageRelease
	e.timeInStage = 0
}

// OnDataSet caches the tick duration.
func (e *Envelope) OnDataSet() {
	e.timePerSample = e.data.TimePerSample()
}

// NextSample advances the stage timer by one sample period and returns
// the current envelope level. Stages with non-positive durations
// complete instantly.
func (e *Envelope) NextSample() float64 {
	e.GateInput.UpdateValue()
	if e.GateInput.ValueUpdated() {
		switch e.GateInput.Value() {
		case 1.0:
			e.Attack()
		case 0.0:
			e.Release()
		}
	}

	e.A.UpdateValue()
	e.D.UpdateValue()
	e.S.UpdateValue()
	e.R.UpdateValue()

	a := e.A.Value()
	d := e.D.Value()
	s := e.S.Value()
	r := e.R.Value()

	var p float64
	for {
		switch e.stage {
		case stageAttack:
			if a <= 0 || e.timeInStage >= a {
				e.stage = stageDecay
				e.timeInStage = 0
				continue
			}
			p = e.levelAtStart + (1-e.levelAtStart)*e.timeInStage/a
		case stageDecay:
			if d <= 0 || e.timeInStage >= d {
				e.stage = stageSustain
				e.timeInStage = 0
				continue
			}
			p = 1 + (s-1)*e.timeInStage/d
		case stageSustain:
			p = s
		case stageRelease:
			if r <= 0 || e.timeInStage >= r {
				e.stage = stageIdle
				continue
			}
			p = e.levelAtStart * (1 - e.timeInStage/r)
		default:
			p = 0
		}
		break
	}

	e.timeInStage += e.timePerSample
	e.lastLevel = p
	return p
}
