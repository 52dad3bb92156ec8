/*

Package thumb loads, resamples, and saves face crop images.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package thumb

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/facemask/facemask/internal/event"
)

var log = event.Log

// Quality represents a JPEG encoding quality.
type Quality int

var (
	JpegQuality      Quality = 92
	JpegQualitySmall Quality = 80
)

// Exif orientation values, see https://www.exiv2.org/tags.html.
const (
	OrientationUnspecified = iota
	OrientationNormal
	OrientationFlipH
	OrientationRotate180
	OrientationFlipV
	OrientationTranspose
	OrientationRotate270
	OrientationTransverse
	OrientationRotate90
)

// Rotate rotates an image based on the Exif orientation.
func Rotate(img image.Image, o int) image.Image {
	switch o {
	case OrientationUnspecified:
		// Do nothing.
	case OrientationNormal:
		// Do nothing.
	case OrientationFlipH:
		img = imaging.FlipH(img)
	case OrientationRotate180:
		img = imaging.Rotate180(img)
	case OrientationFlipV:
		img = imaging.FlipV(img)
	case OrientationTranspose:
		img = imaging.Transpose(img)
	case OrientationRotate270:
		img = imaging.Rotate270(img)
	case OrientationTransverse:
		img = imaging.Transverse(img)
	case OrientationRotate90:
		img = imaging.Rotate90(img)
	default:
		log.Warnf("thumb: invalid orientation %d", o)
	}

	return img
}
