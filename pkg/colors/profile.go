/*
Package colors provides types and functions for color profile handling.
*/
package colors

import (
	"image"
	"runtime"
	"strings"

	"github.com/mandykoh/prism"
	"github.com/mandykoh/prism/displayp3"
	"github.com/mandykoh/prism/srgb"
)

// Profile represents a color profile name.
type Profile string

// Supported color profiles.
const (
	ProfileDefault   Profile = "sRGB IEC61966-2.1"
	ProfileDisplayP3 Profile = "Display P3"
)

// Name returns the color profile name as string.
func (p Profile) Name() string {
	return string(p)
}

// Equal tests if the profile name matches.
func (p Profile) Equal(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), p.Name())
}

// ToSRGB converts an image with the given color profile to sRGB.
func ToSRGB(img image.Image, profile Profile) image.Image {
	switch profile {
	case ProfileDisplayP3:
		src := prism.ConvertImageToNRGBA(img, runtime.NumCPU())
		dst := image.NewNRGBA(src.Rect)

		for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
			for x := src.Rect.Min.X; x < src.Rect.Max.X; x++ {
				c, alpha := displayp3.ColorFromNRGBA(src.NRGBAAt(x, y))
				dst.SetNRGBA(x, y, srgb.ColorFromXYZ(c.ToXYZ()).ToNRGBA(alpha))
			}
		}

		return dst
	default:
		return img
	}
}
