package mask

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"

	"github.com/facemask/facemask/internal/face"
	"github.com/facemask/facemask/pkg/tensor"
)

func TestHullParts(t *testing.T) {
	l := circleLandmarks(face.LandmarkCount, 32, 32, 20)

	assert.Len(t, hullParts(KindFacehull, l), 1)
	assert.Len(t, hullParts(KindDflFull, l), 3)
	assert.Len(t, hullParts(KindComponents, l), 8)
}

func TestBuildFacehull(t *testing.T) {
	b := NewBuilder(nil)

	landmarks := []face.Landmarks{circleLandmarks(face.LandmarkCount, 32, 32, 20)}

	result, err := b.Build(Request{
		Kind:      KindFacehull,
		Faces:     tensor.New(1, 64, 64, 3),
		Landmarks: landmarks,
		Channels:  1,
	})

	if err != nil {
		t.Fatal(err)
	}

	masks := result.Masks()

	assert.Equal(t, float32(1), masks.At(0, 32, 32, 0))
	assert.Equal(t, float32(0), masks.At(0, 1, 1, 0))
	assert.Equal(t, float32(0), masks.At(0, 62, 62, 0))

	coverage := result.Coverage(0)
	assert.Greater(t, coverage, 0.1)
	assert.Less(t, coverage, 0.9)
}

func TestBuildDflFull(t *testing.T) {
	b := NewBuilder(nil)

	landmarks := []face.Landmarks{circleLandmarks(face.LandmarkCount, 32, 32, 20)}

	result, err := b.Build(Request{
		Kind:      KindDflFull,
		Faces:     tensor.New(1, 64, 64, 3),
		Landmarks: landmarks,
		Channels:  1,
	})

	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, float32(1), result.Masks().Max())
	assert.Equal(t, float32(0), result.Masks().At(0, 1, 1, 0))
	assert.Greater(t, result.Coverage(0), 0.0)
}

func TestBuildComponents(t *testing.T) {
	b := NewBuilder(nil)

	landmarks := []face.Landmarks{circleLandmarks(face.LandmarkCount, 32, 32, 20)}

	result, err := b.Build(Request{
		Kind:      KindComponents,
		Faces:     tensor.New(1, 64, 64, 3),
		Landmarks: landmarks,
		Channels:  1,
	})

	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, float32(1), result.Masks().Max())
	assert.Greater(t, result.Coverage(0), 0.0)
}

func TestBuildHullDegenerateLandmarks(t *testing.T) {
	b := NewBuilder(nil)

	// All landmarks on the same point cannot form any region.
	collapsed := make(face.Landmarks, face.LandmarkCount)

	for i := range collapsed {
		collapsed[i] = r2.Point{X: 32, Y: 32}
	}

	result, err := b.Build(Request{
		Kind:      KindFacehull,
		Faces:     tensor.New(1, 64, 64, 3),
		Landmarks: []face.Landmarks{collapsed},
		Channels:  1,
	})

	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, float32(0), result.Masks().Max())
	assert.Equal(t, 0.0, result.Coverage(0))
}

func TestBuildHullPartialLandmarks(t *testing.T) {
	b := NewBuilder(nil)

	landmarks := []face.Landmarks{circleLandmarks(20, 32, 32, 20)}

	result, err := b.Build(Request{
		Kind:      KindDflFull,
		Faces:     tensor.New(1, 64, 64, 3),
		Landmarks: landmarks,
		Channels:  1,
	})

	if err != nil {
		t.Fatal(err)
	}

	// The jaw region still fills from the available points.
	assert.Equal(t, float32(1), result.Masks().Max())
}

func TestBuildHullMultipleFaces(t *testing.T) {
	b := NewBuilder(nil)

	landmarks := []face.Landmarks{
		circleLandmarks(face.LandmarkCount, 16, 16, 10),
		circleLandmarks(face.LandmarkCount, 48, 48, 10),
	}

	result, err := b.Build(Request{
		Kind:      KindFacehull,
		Faces:     tensor.New(2, 64, 64, 3),
		Landmarks: landmarks,
		Channels:  1,
	})

	if err != nil {
		t.Fatal(err)
	}

	masks := result.Masks()

	assert.Equal(t, float32(1), masks.At(0, 16, 16, 0))
	assert.Equal(t, float32(0), masks.At(0, 48, 48, 0))
	assert.Equal(t, float32(1), masks.At(1, 48, 48, 0))
	assert.Equal(t, float32(0), masks.At(1, 16, 16, 0))
}
