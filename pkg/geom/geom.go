/*
Package geom provides 2-D computational geometry helpers for landmark outlines.
*/
package geom

import (
	"fmt"
	"sort"

	"github.com/golang/geo/r2"
)

// ConvexHull returns the convex hull of a point set using the monotone chain
// algorithm. The hull is returned in counter-clockwise order without the
// closing point.
//
// Degenerate input (fewer than 3 distinct points, or all points collinear)
// returns an error so callers can skip the affected region.
func ConvexHull(points []r2.Point) ([]r2.Point, error) {
	sorted := make([]r2.Point, 0, len(points))

	for _, p := range points {
		sorted = append(sorted, p)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}

		return sorted[i].X < sorted[j].X
	})

	// Drop duplicates so they cannot stall the chain construction.
	distinct := sorted[:0]

	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			distinct = append(distinct, p)
		}
	}

	if len(distinct) < 3 {
		return nil, fmt.Errorf("geom: convex hull needs at least 3 distinct points, got %d", len(distinct))
	}

	var lower, upper []r2.Point

	for _, p := range distinct {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}

		lower = append(lower, p)
	}

	for i := len(distinct) - 1; i >= 0; i-- {
		p := distinct[i]

		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}

		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)

	if len(hull) < 3 {
		return nil, fmt.Errorf("geom: points are collinear")
	}

	return hull, nil
}

// cross returns the z component of (a-o) x (b-o).
func cross(o, a, b r2.Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// BoundingBox returns the axis-aligned bounding box of a point set.
func BoundingBox(points []r2.Point) (min, max r2.Point) {
	if len(points) == 0 {
		return min, max
	}

	min, max = points[0], points[0]

	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	return min, max
}
