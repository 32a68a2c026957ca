package synth

import "github.com/sirupsen/logrus"

// logger reports conditions that are degraded rather than fatal:
// control-data conflicts, connection evictions, refused connections.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Passing nil is a no-op.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		logger = l
	}
}
