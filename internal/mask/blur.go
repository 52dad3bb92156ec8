package mask

import (
	"math"

	"github.com/facemask/facemask/pkg/tensor"
)

// blurMasks smooths each image of a single channel batch with a separable
// Gaussian kernel. A sigma of 0 derives the value from the kernel size.
func blurMasks(t *tensor.Tensor, size int, sigma float64) {
	n, h, w, c := t.Dims()

	if c != 1 || size < 3 || h == 0 || w == 0 {
		return
	}

	kernel := gaussianKernel(size, sigma)
	radius := size / 2

	row := make([]float32, w)
	col := make([]float32, h)

	for i := 0; i < n; i++ {
		img := t.Image(i)

		for y := 0; y < h; y++ {
			base := y * w

			for x := 0; x < w; x++ {
				var sum float32

				for k := -radius; k <= radius; k++ {
					sum += kernel[k+radius] * img[base+reflect(x+k, w)]
				}

				row[x] = sum
			}

			copy(img[base:base+w], row)
		}

		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				var sum float32

				for k := -radius; k <= radius; k++ {
					sum += kernel[k+radius] * img[reflect(y+k, h)*w+x]
				}

				col[y] = sum
			}

			for y := 0; y < h; y++ {
				img[y*w+x] = col[y]
			}
		}
	}
}

// reflect mirrors an index into [0, n) without repeating the border sample.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}

	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}

		if i >= n {
			i = 2*(n-1) - i
		}
	}

	return i
}

// gaussianKernel returns a normalized 1-D Gaussian kernel of the given size.
// A sigma of 0 or less is replaced by 0.3*((size-1)*0.5 - 1) + 0.8.
func gaussianKernel(size int, sigma float64) []float32 {
	if sigma <= 0 {
		sigma = 0.3*(float64(size-1)*0.5-1) + 0.8
	}

	kernel := make([]float32, size)
	radius := size / 2

	var sum float64

	for i := range kernel {
		x := float64(i - radius)
		v := math.Exp(-x * x / (2 * sigma * sigma))

		kernel[i] = float32(v)
		sum += v
	}

	for i := range kernel {
		kernel[i] = float32(float64(kernel[i]) / sum)
	}

	return kernel
}
