/*

Package facemask provides the workers that generate and maintain face masks
for directories of aligned face crops.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package facemask

import (
	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/event"
)

var log = event.Log

var conf *config.Config

// SetConfig sets the config used by this package.
func SetConfig(c *config.Config) {
	if c == nil {
		panic("facemask: config is nil")
	}

	conf = c
}

// Config returns the current package config.
func Config() *config.Config {
	if conf == nil {
		panic("facemask: config is not set")
	}

	return conf
}
