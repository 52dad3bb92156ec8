//go:build !NOTFLITE
// +build !NOTFLITE

package config

// DisableTFLite tests if TensorFlow Lite inference is disabled.
func (c *Config) DisableTFLite() bool {
	return false
}
