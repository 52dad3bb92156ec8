package thumb

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/facemask/facemask/pkg/fs"
)

type ResampleOption int

const (
	ResampleFillCenter ResampleOption = iota
	ResampleFillTopLeft
	ResampleFillBottomRight
	ResampleFit
	ResampleResize
	ResampleNearestNeighbor
	ResampleDefault
	ResamplePng
)

var ResampleMethods = map[ResampleOption]string{
	ResampleFillCenter:      "center",
	ResampleFillTopLeft:     "left",
	ResampleFillBottomRight: "right",
	ResampleFit:             "fit",
	ResampleResize:          "resize",
}

// ResampleOptions extracts filter, format, and method from resample options.
func ResampleOptions(opts ...ResampleOption) (method ResampleOption, filter imaging.ResampleFilter, format fs.FileFormat) {
	method = ResampleFit
	filter = imaging.Lanczos
	format = fs.FormatJpeg

	for _, option := range opts {
		switch option {
		case ResamplePng:
			format = fs.FormatPng
		case ResampleNearestNeighbor:
			filter = imaging.NearestNeighbor
		case ResampleDefault:
			filter = imaging.Lanczos
		case ResampleFillTopLeft:
			method = ResampleFillTopLeft
		case ResampleFillCenter:
			method = ResampleFillCenter
		case ResampleFillBottomRight:
			method = ResampleFillBottomRight
		case ResampleFit:
			method = ResampleFit
		case ResampleResize:
			method = ResampleResize
		}
	}

	return method, filter, format
}

// Resample downscales an image and returns it.
func Resample(img image.Image, width, height int, opts ...ResampleOption) image.Image {
	var result image.Image

	method, filter, _ := ResampleOptions(opts...)

	if method == ResampleFit {
		result = imaging.Fit(img, width, height, filter)
	} else if method == ResampleFillCenter {
		result = imaging.Fill(img, width, height, imaging.Center, filter)
	} else if method == ResampleFillTopLeft {
		result = imaging.Fill(img, width, height, imaging.TopLeft, filter)
	} else if method == ResampleFillBottomRight {
		result = imaging.Fill(img, width, height, imaging.BottomRight, filter)
	} else if method == ResampleResize {
		result = imaging.Resize(img, width, height, filter)
	} else {
		result = img
	}

	return result
}

// Square fills an image into a square crop of the given side length,
// as expected by the segmentation model inputs.
func Square(img image.Image, side int) image.Image {
	if img.Bounds().Dx() == side && img.Bounds().Dy() == side {
		return img
	}

	return imaging.Fill(img, side, side, imaging.Center, imaging.Lanczos)
}
