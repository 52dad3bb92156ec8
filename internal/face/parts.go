package face

import (
	"github.com/golang/geo/r2"
)

// Part is a named group of landmark positions that is filled as one convex region.
type Part struct {
	Name   string
	Points []r2.Point
}

type span = [2]int

// OnePart returns the full landmark set as a single region.
func (l Landmarks) OnePart() []Part {
	return []Part{
		{Name: "face", Points: l},
	}
}

// ThreeParts returns the jaw, nose ridge, and eye regions.
func (l Landmarks) ThreeParts() []Part {
	return []Part{
		{Name: "jaw", Points: l.region(span{0, 17}, span{48, 68}, span{0, 1}, span{8, 9}, span{16, 17})},
		{Name: "nose_ridge", Points: l.region(span{27, 31}, span{33, 34})},
		{Name: "eyes", Points: l.region(span{17, 27}, span{0, 1}, span{27, 28}, span{16, 17}, span{33, 34})},
	}
}

// EightParts returns one region for each individual face component.
func (l Landmarks) EightParts() []Part {
	return []Part{
		{Name: "right_jaw", Points: l.region(span{0, 9}, span{17, 18})},
		{Name: "left_jaw", Points: l.region(span{8, 17}, span{26, 27})},
		{Name: "right_cheek", Points: l.region(span{17, 20}, span{8, 9})},
		{Name: "left_cheek", Points: l.region(span{24, 27}, span{8, 9})},
		{Name: "nose_ridge", Points: l.region(span{19, 25}, span{8, 9})},
		{Name: "right_eye", Points: l.region(span{17, 22}, span{27, 28}, span{31, 36}, span{8, 9})},
		{Name: "left_eye", Points: l.region(span{22, 27}, span{27, 28}, span{31, 36}, span{8, 9})},
		{Name: "nose", Points: l.region(span{27, 31}, span{31, 36})},
	}
}

// region concatenates the points of the given index ranges.
func (l Landmarks) region(spans ...span) (points []r2.Point) {
	for _, s := range spans {
		points = append(points, l.Span(s[0], s[1])...)
	}

	return points
}
