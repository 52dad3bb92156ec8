package mask

import (
	"fmt"

	"github.com/facemask/facemask/internal/segment"
	"github.com/facemask/facemask/pkg/tensor"
)

// Clamp thresholds snap almost certain values to hard 0 and 1.
const (
	dflClampLow     = 0.1
	dflClampHigh    = 0.9
	nirkinClampLow  = 0.025
	nirkinClampHigh = 0.975
)

// buildLearned runs a segmentation model over the batch and normalizes its
// output to a single channel mask batch.
func (b *Builder) buildLearned(kind Kind, faces, means *tensor.Tensor) (*tensor.Tensor, error) {
	if b.models == nil {
		return nil, fmt.Errorf("mask: no segmentation models configured for %s", kind)
	}

	p, err := b.models.Predictor(kind.ModelName())

	if err != nil {
		return nil, err
	}

	m := p.Model()

	_, h, w, _ := faces.Dims()

	if faces.Count() > 0 && (h != m.Side || w != m.Side) {
		return nil, fmt.Errorf("mask: %s needs %dpx faces, got %dx%d", kind, m.Side, w, h)
	}

	if m.Family == segment.FamilyNirkin {
		return b.buildNirkin(p, faces, means)
	}

	return b.buildDFL(p, faces)
}

// buildDFL feeds raw crops to the model and clamps its sigmoid output.
func (b *Builder) buildDFL(p segment.Predictor, faces *tensor.Tensor) (*tensor.Tensor, error) {
	out, err := p.Predict(faces)

	if err != nil {
		return nil, err
	}

	masks := out

	if out.Channels() != 1 {
		if masks, err = out.Channel(0); err != nil {
			return nil, fmt.Errorf("mask: %s", err)
		}
	}

	clamp(masks, dflClampLow, dflClampHigh)

	return masks, nil
}

// buildNirkin mean centers the crops, takes the softmax face plane,
// then smooths and clamps it.
func (b *Builder) buildNirkin(p segment.Predictor, faces, means *tensor.Tensor) (*tensor.Tensor, error) {
	if means == nil {
		return nil, fmt.Errorf("mask: %s needs a mean image for centering", p.Model().Name)
	}

	centered, err := faces.SubImage(means)

	if err != nil {
		return nil, fmt.Errorf("mask: %s", err)
	}

	out, err := p.Predict(centered)

	if err != nil {
		return nil, err
	}

	masks, err := out.Channel(1)

	if err != nil {
		return nil, fmt.Errorf("mask: %s (softmax face plane)", err)
	}

	blurMasks(masks, 7, 0)

	if b.postProcess.Enabled() {
		b.postProcess.Apply(masks)
	}

	clamp(masks, nirkinClampLow, nirkinClampHigh)

	return masks, nil
}

// clamp snaps values below low to 0 and values above high to 1.
func clamp(t *tensor.Tensor, low, high float32) {
	values := t.Values()

	for i, v := range values {
		if v < low {
			values[i] = 0
		} else if v > high {
			values[i] = 1
		}
	}
}
