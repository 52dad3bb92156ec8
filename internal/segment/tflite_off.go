//go:build NOTFLITE
// +build NOTFLITE

package segment

import (
	"fmt"
)

// NewPredictor reports that model inference is unavailable in this build.
func NewPredictor(m Model, fileName string) (Predictor, error) {
	return nil, fmt.Errorf("segment: built without tensorflow lite support")
}
