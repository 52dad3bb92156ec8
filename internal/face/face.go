/*
Package face provides aligned face crops and facial landmarks for mask generation.
*/
package face

import (
	"image"

	"github.com/facemask/facemask/internal/event"
)

var log = event.Log

// Face represents an aligned face crop with its landmark positions.
type Face struct {
	FileName  string
	Image     image.Image
	Landmarks Landmarks
}

// Size returns the face crop dimensions in pixels.
func (f Face) Size() (width, height int) {
	if f.Image == nil {
		return 0, 0
	}

	b := f.Image.Bounds()

	return b.Dx(), b.Dy()
}

// Faces represents a list of aligned face crops.
type Faces []Face

// Append adds a face.
func (faces *Faces) Append(f Face) {
	*faces = append(*faces, f)
}

// Count returns the number of faces.
func (faces Faces) Count() int {
	return len(faces)
}

// Images returns the crops of all faces.
func (faces Faces) Images() (result []image.Image) {
	for _, f := range faces {
		result = append(result, f.Image)
	}

	return result
}

// Landmarks returns the landmark sets of all faces.
func (faces Faces) Landmarks() (result []Landmarks) {
	for _, f := range faces {
		result = append(result, f.Landmarks)
	}

	return result
}
