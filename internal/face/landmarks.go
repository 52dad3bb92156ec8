package face

import (
	"github.com/golang/geo/r2"
)

// LandmarkCount is the number of positions in a complete landmark set.
const LandmarkCount = 68

// Landmarks represents facial landmark positions in aligned face pixel coordinates.
type Landmarks []r2.Point

// NewLandmarks returns landmarks from a list of x/y pairs.
func NewLandmarks(pairs [][]float64) Landmarks {
	result := make(Landmarks, 0, len(pairs))

	for _, p := range pairs {
		if len(p) < 2 {
			continue
		}

		result = append(result, r2.Point{X: p[0], Y: p[1]})
	}

	return result
}

// Count returns the number of landmark positions.
func (l Landmarks) Count() int {
	return len(l)
}

// Complete reports whether all 68 positions are present.
func (l Landmarks) Complete() bool {
	return len(l) >= LandmarkCount
}

// Span returns the positions in the half-open range [begin, end).
// Out of range indices are clamped, so partial landmark sets degrade
// to smaller regions instead of failing.
func (l Landmarks) Span(begin, end int) Landmarks {
	if begin < 0 {
		begin = 0
	}

	if end > len(l) {
		end = len(l)
	}

	if begin >= end {
		return Landmarks{}
	}

	return l[begin:end]
}

// Feature is a named index range in a complete landmark set.
type Feature struct {
	Name  string
	Begin int
	End   int
}

// Features returns the standard named feature ranges of a 68 point set.
func Features() []Feature {
	return []Feature{
		{Name: "jaw", Begin: 0, End: 17},
		{Name: "right_brow", Begin: 17, End: 22},
		{Name: "left_brow", Begin: 22, End: 27},
		{Name: "nose_ridge", Begin: 27, End: 31},
		{Name: "nose_base", Begin: 31, End: 36},
		{Name: "right_eye", Begin: 36, End: 42},
		{Name: "left_eye", Begin: 42, End: 48},
		{Name: "mouth", Begin: 48, End: 68},
	}
}
