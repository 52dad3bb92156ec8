package geom

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/geo/r2"
	"golang.org/x/image/vector"
)

// Rasterize fills the closed polygon described by points into an 8 bit
// coverage mask of the given size. Points are taken in order and the path is
// closed implicitly. Coordinates outside the canvas are clipped.
func Rasterize(points []r2.Point, width, height int) (*image.Alpha, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("geom: polygon needs at least 3 points, got %d", len(points))
	}

	if width < 1 || height < 1 {
		return nil, fmt.Errorf("geom: invalid canvas size %dx%d", width, height)
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	ras := vector.NewRasterizer(width, height)
	ras.DrawOp = draw.Src

	ras.MoveTo(float32(points[0].X), float32(points[0].Y))

	for _, p := range points[1:] {
		ras.LineTo(float32(p.X), float32(p.Y))
	}

	ras.ClosePath()
	ras.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	return mask, nil
}

// FillHull computes the convex hull of points and rasterizes it in one step.
func FillHull(points []r2.Point, width, height int) (*image.Alpha, error) {
	hull, err := ConvexHull(points)

	if err != nil {
		return nil, err
	}

	return Rasterize(hull, width, height)
}
