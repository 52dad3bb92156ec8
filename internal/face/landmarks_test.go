package face

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func TestNewLandmarks(t *testing.T) {
	l := NewLandmarks([][]float64{{1, 2}, {3, 4}, {5}})

	assert.Equal(t, 2, l.Count())
	assert.Equal(t, r2.Point{X: 1, Y: 2}, l[0])
	assert.Equal(t, r2.Point{X: 3, Y: 4}, l[1])
}

func TestLandmarksComplete(t *testing.T) {
	assert.False(t, Landmarks{}.Complete())
	assert.False(t, make(Landmarks, 30).Complete())
	assert.True(t, make(Landmarks, LandmarkCount).Complete())
}

func TestLandmarksSpan(t *testing.T) {
	l := NewLandmarks([][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}})

	t.Run("InRange", func(t *testing.T) {
		s := l.Span(1, 3)

		assert.Equal(t, 2, s.Count())
		assert.Equal(t, r2.Point{X: 1, Y: 1}, s[0])
		assert.Equal(t, r2.Point{X: 2, Y: 2}, s[1])
	})

	t.Run("ClampsEnd", func(t *testing.T) {
		s := l.Span(2, 100)

		assert.Equal(t, 2, s.Count())
	})

	t.Run("ClampsBegin", func(t *testing.T) {
		s := l.Span(-5, 2)

		assert.Equal(t, 2, s.Count())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		assert.Equal(t, 0, l.Span(10, 20).Count())
		assert.Equal(t, 0, l.Span(3, 1).Count())
	})
}

func TestFeatures(t *testing.T) {
	features := Features()

	assert.Len(t, features, 8)
	assert.Equal(t, "jaw", features[0].Name)
	assert.Equal(t, 0, features[0].Begin)
	assert.Equal(t, 17, features[0].End)
	assert.Equal(t, "mouth", features[7].Name)
	assert.Equal(t, LandmarkCount, features[7].End)

	for _, f := range features {
		assert.Less(t, f.Begin, f.End, "feature %s", f.Name)
		assert.LessOrEqual(t, f.End, LandmarkCount, "feature %s", f.Name)
	}
}
