package config

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var loggerOnce sync.Once

// initLogger sets the log format and level once per process.
func initLogger(debug, trace bool) {
	loggerOnce.Do(func() {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: false,
			FullTimestamp: true,
		})

		if trace {
			logrus.SetLevel(logrus.TraceLevel)
		} else if debug {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	})
}
