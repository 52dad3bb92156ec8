/*
Package segment provides neural face segmentation models for mask generation.
*/
package segment

import (
	"fmt"

	"github.com/facemask/facemask/internal/event"
	"github.com/facemask/facemask/pkg/txt"
)

var log = event.Log

// DefaultBaseUrl is the default model release download location.
const DefaultBaseUrl = "https://github.com/deepfakes-models/faceswap-models/releases/download"

// Family groups models by their input and output conventions.
type Family string

const (
	// FamilyDFL models take raw face crops and emit a single sigmoid mask plane.
	FamilyDFL Family = "dfl"
	// FamilyNirkin models take mean centered crops and emit softmax class planes.
	FamilyNirkin Family = "nirkin"
)

// Model describes a downloadable face segmentation model.
type Model struct {
	Name    string
	Release int
	Side    int
	Family  Family
}

// Models lists the known segmentation models by artifact name.
var Models = map[string]Model{
	"Nirkin_300_softmax_v1": {Name: "Nirkin_300_softmax_v1", Release: 8, Side: 300, Family: FamilyNirkin},
	"Nirkin_500_softmax_v1": {Name: "Nirkin_500_softmax_v1", Release: 5, Side: 500, Family: FamilyNirkin},
	"DFL_256_sigmoid_v1":    {Name: "DFL_256_sigmoid_v1", Release: 6, Side: 256, Family: FamilyDFL},
}

// ModelByName returns the model descriptor for the given artifact name.
func ModelByName(name string) (Model, error) {
	if m, ok := Models[name]; ok {
		return m, nil
	}

	return Model{}, fmt.Errorf("segment: unknown model %s", txt.Quote(name))
}

// FileName returns the model file name on disk.
func (m Model) FileName() string {
	return m.Name + ".tflite"
}

// ZipName returns the packaged release artifact name.
func (m Model) ZipName() string {
	return m.Name + ".zip"
}

// DownloadUrl returns the release download location for the given base url.
func (m Model) DownloadUrl(baseUrl string) string {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	return fmt.Sprintf("%s/v%d/%s", baseUrl, m.Release, m.ZipName())
}

// String returns the model name.
func (m Model) String() string {
	return m.Name
}
