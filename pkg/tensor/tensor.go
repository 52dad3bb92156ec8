/*
Package tensor provides dense float32 batches of images in NHWC layout.

A Tensor holds N images of H rows, W columns, and C channels, with values
normalized to [0, 1]. The flat backing slice is laid out so that a single
image is a contiguous block, which is also the buffer format expected by
the inference runtime.
*/
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Tensor is a dense NHWC float32 image batch.
type Tensor struct {
	n, h, w, c int
	values     []float32
}

// New returns a zero filled batch with the given dimensions.
func New(n, h, w, c int) *Tensor {
	if n < 0 || h < 0 || w < 0 || c < 0 {
		panic(fmt.Sprintf("tensor: invalid dimensions %dx%dx%dx%d", n, h, w, c))
	}

	return &Tensor{n: n, h: h, w: w, c: c, values: make([]float32, n*h*w*c)}
}

// Ones returns a batch with all values set to 1.
func Ones(n, h, w, c int) *Tensor {
	t := New(n, h, w, c)

	for i := range t.values {
		t.values[i] = 1
	}

	return t
}

// FromValues wraps an existing value slice. The slice length must match the
// dimensions exactly.
func FromValues(n, h, w, c int, values []float32) (*Tensor, error) {
	if len(values) != n*h*w*c {
		return nil, fmt.Errorf("tensor: got %d values for %dx%dx%dx%d", len(values), n, h, w, c)
	}

	return &Tensor{n: n, h: h, w: w, c: c, values: values}, nil
}

// Dims returns the batch dimensions.
func (t *Tensor) Dims() (n, h, w, c int) {
	return t.n, t.h, t.w, t.c
}

// Count returns the number of images in the batch.
func (t *Tensor) Count() int {
	return t.n
}

// Channels returns the number of channels per image.
func (t *Tensor) Channels() int {
	return t.c
}

// Values returns the flat backing slice.
func (t *Tensor) Values() []float32 {
	return t.values
}

// Image returns the contiguous values of a single image.
func (t *Tensor) Image(n int) []float32 {
	size := t.h * t.w * t.c

	return t.values[n*size : (n+1)*size]
}

// At returns a single value.
func (t *Tensor) At(n, y, x, c int) float32 {
	return t.values[t.offset(n, y, x, c)]
}

// Set stores a single value.
func (t *Tensor) Set(n, y, x, c int, v float32) {
	t.values[t.offset(n, y, x, c)] = v
}

func (t *Tensor) offset(n, y, x, c int) int {
	return ((n*t.h+y)*t.w+x)*t.c + c
}

// Clone returns a deep copy.
func (t *Tensor) Clone() *Tensor {
	result := New(t.n, t.h, t.w, t.c)
	copy(result.values, t.values)

	return result
}

// SameShape tests if two batches have identical dimensions.
func (t *Tensor) SameShape(other *Tensor) bool {
	return other != nil && t.n == other.n && t.h == other.h && t.w == other.w && t.c == other.c
}

// Channel extracts one channel as a new single channel batch.
func (t *Tensor) Channel(c int) (*Tensor, error) {
	if c < 0 || c >= t.c {
		return nil, fmt.Errorf("tensor: channel %d out of range, batch has %d", c, t.c)
	}

	result := New(t.n, t.h, t.w, 1)

	for i, j := c, 0; i < len(t.values); i, j = i+t.c, j+1 {
		result.values[j] = t.values[i]
	}

	return result, nil
}

// Repeat replicates a single channel batch to the given channel count.
func (t *Tensor) Repeat(c int) (*Tensor, error) {
	if t.c != 1 {
		return nil, fmt.Errorf("tensor: repeat needs a single channel batch, got %d channels", t.c)
	}

	result := New(t.n, t.h, t.w, c)

	for i, v := range t.values {
		for j := 0; j < c; j++ {
			result.values[i*c+j] = v
		}
	}

	return result, nil
}

// ConcatChannels appends the channels of other to each pixel of t.
// Both batches must match in count and spatial size.
func (t *Tensor) ConcatChannels(other *Tensor) (*Tensor, error) {
	if other == nil || t.n != other.n || t.h != other.h || t.w != other.w {
		return nil, fmt.Errorf("tensor: cannot concat mismatched batches")
	}

	result := New(t.n, t.h, t.w, t.c+other.c)

	pixels := t.n * t.h * t.w

	for p := 0; p < pixels; p++ {
		copy(result.values[p*result.c:], t.values[p*t.c:(p+1)*t.c])
		copy(result.values[p*result.c+t.c:], other.values[p*other.c:(p+1)*other.c])
	}

	return result, nil
}

// MeanImage returns the per-pixel mean across the batch as a batch of one.
func (t *Tensor) MeanImage() *Tensor {
	result := New(1, t.h, t.w, t.c)

	if t.n == 0 {
		return result
	}

	acc := make([]float64, t.h*t.w*t.c)
	img := make([]float64, len(acc))

	for n := 0; n < t.n; n++ {
		for i, v := range t.Image(n) {
			img[i] = float64(v)
		}

		floats.Add(acc, img)
	}

	floats.Scale(1/float64(t.n), acc)

	for i, v := range acc {
		result.values[i] = float32(v)
	}

	return result
}

// SubImage subtracts a batch-of-one image from every image in the batch and
// returns the result. Spatial size and channels must match.
func (t *Tensor) SubImage(mean *Tensor) (*Tensor, error) {
	if mean == nil || mean.n != 1 || mean.h != t.h || mean.w != t.w || mean.c != t.c {
		return nil, fmt.Errorf("tensor: mean image does not match batch shape")
	}

	result := t.Clone()
	size := t.h * t.w * t.c

	for n := 0; n < t.n; n++ {
		img := result.values[n*size : (n+1)*size]

		for i := range img {
			img[i] -= mean.values[i]
		}
	}

	return result, nil
}

// Min returns the smallest value in the batch, or 0 for an empty batch.
func (t *Tensor) Min() float32 {
	if len(t.values) == 0 {
		return 0
	}

	result := make([]float64, len(t.values))

	for i, v := range t.values {
		result[i] = float64(v)
	}

	return float32(floats.Min(result))
}

// Max returns the largest value in the batch, or 0 for an empty batch.
func (t *Tensor) Max() float32 {
	if len(t.values) == 0 {
		return 0
	}

	result := make([]float64, len(t.values))

	for i, v := range t.values {
		result[i] = float64(v)
	}

	return float32(floats.Max(result))
}

// String implements the fmt.Stringer interface.
func (t *Tensor) String() string {
	return fmt.Sprintf("%dx%dx%dx%d", t.n, t.h, t.w, t.c)
}
