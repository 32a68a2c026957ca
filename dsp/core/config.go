// Package core provides the shared control configuration that every node
// of a synthesis graph operates under.
package core

// ControlData carries the settings that all modules in one graph must
// agree on. It is propagated by value through the graph when set on any
// node, so there is no shared mutable state between modules.
type ControlData struct {
	SampleRate   float64
	Oversampling int
	Initialized  bool
}

// ControlOption mutates a ControlData.
type ControlOption func(*ControlData)

// DefaultControlData returns sensible defaults for offline and streaming use.
func DefaultControlData() ControlData {
	return ControlData{
		SampleRate:   48000,
		Oversampling: 1,
	}
}

// WithSampleRate sets the internal processing sample rate.
func WithSampleRate(sampleRate float64) ControlOption {
	return func(cd *ControlData) {
		if sampleRate > 0 {
			cd.SampleRate = sampleRate
		}
	}
}

// WithOversampling sets the oversampling factor. Values below 1 are ignored.
// Only terminal output adapters interpret this directly; they average this
// many consecutive pulls of their input per emitted sample.
func WithOversampling(factor int) ControlOption {
	return func(cd *ControlData) {
		if factor >= 1 {
			cd.Oversampling = factor
		}
	}
}

// NewControlData applies zero or more options to the default configuration
// and marks the result initialized.
func NewControlData(opts ...ControlOption) ControlData {
	cd := DefaultControlData()
	for _, opt := range opts {
		if opt != nil {
			opt(&cd)
		}
	}
	cd.Initialized = true
	return cd
}

// Equal reports whether two control data records hold the same settings.
func (cd ControlData) Equal(other ControlData) bool {
	return cd.Initialized == other.Initialized &&
		cd.SampleRate == other.SampleRate &&
		cd.Oversampling == other.Oversampling
}

// TimePerSample returns the duration of one sample tick in seconds.
// Returns 0 for an uninitialized or invalid sample rate.
func (cd ControlData) TimePerSample() float64 {
	if cd.SampleRate <= 0 {
		return 0
	}
	return 1 / cd.SampleRate
}
