package mask

import (
	"image"

	"github.com/facemask/facemask/pkg/tensor"
)

// Result holds the masks built for a batch of faces.
type Result struct {
	kind     Kind
	channels int
	faces    *tensor.Tensor
	masks    *tensor.Tensor
}

func newResult(kind Kind, channels int, faces, masks *tensor.Tensor) *Result {
	return &Result{kind: kind, channels: channels, faces: faces, masks: masks}
}

// Kind returns the mask kind.
func (r *Result) Kind() Kind {
	return r.kind
}

// Channels returns the requested output channel count.
func (r *Result) Channels() int {
	return r.channels
}

// Count returns the number of faces in the batch.
func (r *Result) Count() int {
	return r.masks.Count()
}

// Masks returns the raw single channel mask batch.
func (r *Result) Masks() *tensor.Tensor {
	return r.masks
}

// Merged returns the masks in the requested channel layout: the raw masks
// for 1 channel, the mask replicated to all channels for 3, and the face
// crops with the mask as alpha channel for 4.
func (r *Result) Merged() (*tensor.Tensor, error) {
	switch r.channels {
	case 3:
		return r.masks.Repeat(3)
	case 4:
		return r.faces.ConcatChannels(r.masks)
	default:
		return r.masks, nil
	}
}

// MaskImage renders one mask of the batch as 8 bit grayscale.
func (r *Result) MaskImage(n int) (*image.Gray, error) {
	return r.masks.ToGray(n)
}

// CompositeImage renders one face crop with its mask as alpha channel.
func (r *Result) CompositeImage(n int) (*image.NRGBA, error) {
	merged, err := r.faces.ConcatChannels(r.masks)

	if err != nil {
		return nil, err
	}

	return merged.ToNRGBA(n)
}

// Coverage returns the fraction of pixels of one mask that are at least half set.
func (r *Result) Coverage(n int) float64 {
	_, h, w, _ := r.masks.Dims()

	if h*w == 0 {
		return 0
	}

	covered := 0

	for _, v := range r.masks.Image(n) {
		if v >= 0.5 {
			covered++
		}
	}

	return float64(covered) / float64(h*w)
}

// Coverages returns the coverage of every mask in the batch.
func (r *Result) Coverages() []float64 {
	result := make([]float64, r.Count())

	for i := range result {
		result[i] = r.Coverage(i)
	}

	return result
}
