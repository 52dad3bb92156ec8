package event

import (
	"github.com/sirupsen/logrus"
)

// Logger defines a common interface for logging libraries, so that they can be swapped if needed.
type Logger interface {
	logrus.FieldLogger
	Trace(args ...interface{})
	Tracef(format string, args ...interface{})
}

// Log is the default logger.
var Log Logger = logrus.StandardLogger()
