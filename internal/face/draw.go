package face

import (
	"image"

	"github.com/carck/gg"
)

// partPalette contains the fill colors used for part overlays.
var partPalette = [][3]float64{
	{0.96, 0.26, 0.21},
	{0.13, 0.59, 0.95},
	{0.30, 0.69, 0.31},
	{1.00, 0.76, 0.03},
	{0.61, 0.15, 0.69},
	{0.00, 0.74, 0.83},
	{1.00, 0.34, 0.13},
	{0.55, 0.76, 0.29},
}

// Draw renders landmark points and feature outlines on top of a face crop.
func Draw(img image.Image, l Landmarks) image.Image {
	dc := gg.NewContextForImage(img)

	dc.SetRGBA(0, 0.78, 1, 0.9)
	dc.SetLineWidth(1.5)

	for _, f := range Features() {
		outline := l.Span(f.Begin, f.End)

		if outline.Count() < 2 {
			continue
		}

		dc.NewSubPath()
		dc.MoveTo(outline[0].X, outline[0].Y)

		for _, p := range outline[1:] {
			dc.LineTo(p.X, p.Y)
		}

		dc.Stroke()
	}

	dc.SetRGBA(1, 0.27, 0.27, 1)

	for _, p := range l {
		dc.DrawCircle(p.X, p.Y, 1.5)
		dc.Fill()
	}

	return dc.Image()
}

// DrawParts renders translucent part polygons on top of a face crop.
func DrawParts(img image.Image, parts []Part) image.Image {
	dc := gg.NewContextForImage(img)

	for i, part := range parts {
		if len(part.Points) < 3 {
			continue
		}

		c := partPalette[i%len(partPalette)]

		dc.SetRGBA(c[0], c[1], c[2], 0.35)
		dc.NewSubPath()
		dc.MoveTo(part.Points[0].X, part.Points[0].Y)

		for _, p := range part.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}

		dc.ClosePath()
		dc.Fill()
	}

	return dc.Image()
}
