/*
Package mask builds face masks from aligned face crops.

Masks are built either by filling convex hulls of facial landmarks or by
neural segmentation models, and returned as float32 batches with values
in the range [0, 1].
*/
package mask

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/facemask/facemask/internal/event"
	"github.com/facemask/facemask/internal/face"
	"github.com/facemask/facemask/internal/segment"
	"github.com/facemask/facemask/pkg/tensor"
)

var log = event.Log

// Models provides predictors for learned mask kinds.
type Models interface {
	Predictor(name string) (segment.Predictor, error)
}

// Request describes a batch of faces to build masks for.
type Request struct {
	Kind      Kind
	Faces     *tensor.Tensor
	Landmarks []face.Landmarks
	Means     *tensor.Tensor
	Channels  int
}

// Validate checks the request invariants before any mask is built.
func (req Request) Validate() error {
	if req.Channels != 1 && req.Channels != 3 && req.Channels != 4 {
		return fmt.Errorf("mask: channels must be 1, 3 or 4, got %d", req.Channels)
	}

	if req.Faces == nil {
		return fmt.Errorf("mask: face batch missing")
	}

	if c := req.Faces.Channels(); c != 3 {
		return fmt.Errorf("mask: face batch must have 3 channels, got %d", c)
	}

	if req.Kind.IsHull() && len(req.Landmarks) != req.Faces.Count() {
		return fmt.Errorf("mask: %s needs landmarks for all %d faces, got %d sets",
			req.Kind, req.Faces.Count(), len(req.Landmarks))
	}

	return nil
}

// Builder builds face masks of all supported kinds.
type Builder struct {
	models      Models
	postProcess PostProcess
}

// NewBuilder returns a mask builder that takes segmentation models from the
// given source. A nil source restricts the builder to hull and solid kinds.
func NewBuilder(models Models) *Builder {
	return &Builder{models: models}
}

// SetPostProcess enables optional cleanup steps for learned masks.
func (b *Builder) SetPostProcess(p PostProcess) {
	b.postProcess = p
}

// Build creates masks for a batch of aligned faces.
func (b *Builder) Build(req Request) (result *Result, err error) {
	if req.Kind == "" {
		req.Kind = Default()
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	var masks *tensor.Tensor

	switch {
	case req.Kind.IsHull():
		masks = buildHull(req.Kind, req.Faces, req.Landmarks)
	case req.Kind.IsLearned():
		masks, err = b.buildLearned(req.Kind, req.Faces, req.Means)
	default:
		masks = buildSolid(req.Faces)
	}

	if err != nil {
		return nil, err
	}

	log.Debugf("mask: built %s masks for %s [%s]", req.Kind,
		english.Plural(req.Faces.Count(), "face", "faces"), time.Since(start))

	return newResult(req.Kind, req.Channels, req.Faces, masks), nil
}
