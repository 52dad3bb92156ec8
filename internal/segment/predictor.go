package segment

import (
	"github.com/facemask/facemask/pkg/tensor"
)

// Predictor runs a segmentation model over batches of face crops.
type Predictor interface {
	// Predict returns the model output for a batch input tensor.
	Predict(in *tensor.Tensor) (*tensor.Tensor, error)

	// Model returns the model descriptor.
	Model() Model

	// Close releases the model resources.
	Close()
}
