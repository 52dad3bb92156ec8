package tensor

import (
	"fmt"
	"image"
	"image/color"
)

// FromImages converts equally sized images to a 3 channel batch with values
// normalized to [0, 1].
func FromImages(images []image.Image) (*Tensor, error) {
	if len(images) == 0 {
		return New(0, 0, 0, 3), nil
	}

	bounds := images[0].Bounds()
	result := New(len(images), bounds.Dy(), bounds.Dx(), 3)

	for n, img := range images {
		if img.Bounds().Dx() != bounds.Dx() || img.Bounds().Dy() != bounds.Dy() {
			return nil, fmt.Errorf("tensor: image %d has size %dx%d, want %dx%d",
				n, img.Bounds().Dx(), img.Bounds().Dy(), bounds.Dx(), bounds.Dy())
		}

		fillImage(result, n, img)
	}

	return result, nil
}

// FromImage converts a single image to a batch of one.
func FromImage(img image.Image) *Tensor {
	result, _ := FromImages([]image.Image{img})

	return result
}

func fillImage(t *Tensor, n int, img image.Image) {
	b := img.Bounds()
	values := t.Image(n)

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			values[i] = float32(r) / 65535.0
			values[i+1] = float32(g) / 65535.0
			values[i+2] = float32(b) / 65535.0
			i += 3
		}
	}
}

// ToGray renders a single channel image of the batch as 8 bit grayscale.
func (t *Tensor) ToGray(n int) (*image.Gray, error) {
	if t.c != 1 {
		return nil, fmt.Errorf("tensor: grayscale needs a single channel batch, got %d channels", t.c)
	}

	img := image.NewGray(image.Rect(0, 0, t.w, t.h))

	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			img.SetGray(x, y, color.Gray{Y: quantize(t.At(n, y, x, 0))})
		}
	}

	return img, nil
}

// ToNRGBA renders an image of the batch as NRGBA. Batches with 3 channels
// get an opaque alpha channel, batches with 4 channels keep their own.
func (t *Tensor) ToNRGBA(n int) (*image.NRGBA, error) {
	if t.c != 3 && t.c != 4 {
		return nil, fmt.Errorf("tensor: color image needs 3 or 4 channels, got %d", t.c)
	}

	img := image.NewNRGBA(image.Rect(0, 0, t.w, t.h))

	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			a := uint8(255)

			if t.c == 4 {
				a = quantize(t.At(n, y, x, 3))
			}

			img.SetNRGBA(x, y, color.NRGBA{
				R: quantize(t.At(n, y, x, 0)),
				G: quantize(t.At(n, y, x, 1)),
				B: quantize(t.At(n, y, x, 2)),
				A: a,
			})
		}
	}

	return img, nil
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	} else if v >= 1 {
		return 255
	}

	return uint8(v*255 + 0.5)
}
