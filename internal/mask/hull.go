package mask

import (
	"image"

	"github.com/facemask/facemask/internal/face"
	"github.com/facemask/facemask/pkg/geom"
	"github.com/facemask/facemask/pkg/tensor"
)

// buildHull fills convex landmark regions into a single channel mask batch.
// Regions that cannot be built are logged and skipped, so partial landmark
// sets yield a partial mask instead of failing the batch.
func buildHull(kind Kind, faces *tensor.Tensor, landmarks []face.Landmarks) *tensor.Tensor {
	n, h, w, _ := faces.Dims()

	masks := tensor.New(n, h, w, 1)

	for i := 0; i < n; i++ {
		for _, part := range hullParts(kind, landmarks[i]) {
			if len(part.Points) < 3 {
				log.Warnf("mask: skipping %s region with %d landmarks", part.Name, len(part.Points))
				continue
			}

			filled, err := geom.FillHull(part.Points, w, h)

			if err != nil {
				log.Warnf("mask: %s (fill %s region)", err, part.Name)
				continue
			}

			paintCoverage(masks, i, filled)
		}
	}

	return masks
}

// hullParts returns the landmark regions for the given mask kind.
func hullParts(kind Kind, l face.Landmarks) []face.Part {
	switch kind {
	case KindFacehull:
		return l.OnePart()
	case KindComponents:
		return l.EightParts()
	default:
		return l.ThreeParts()
	}
}

// HullParts returns the landmark part regions covered by the given hull kind.
func HullParts(kind Kind, l face.Landmarks) []face.Part {
	return hullParts(kind, l)
}

// paintCoverage merges a rasterized region into image i of the mask batch.
// Pixels that are at least half covered become fully set.
func paintCoverage(masks *tensor.Tensor, i int, coverage *image.Alpha) {
	_, h, w, _ := masks.Dims()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if coverage.AlphaAt(x, y).A >= 0x80 {
				masks.Set(i, y, x, 0, 1)
			}
		}
	}
}
