package mask

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"

	"github.com/facemask/facemask/internal/face"
	"github.com/facemask/facemask/internal/segment"
	"github.com/facemask/facemask/pkg/tensor"
)

type fakePredictor struct {
	model segment.Model
	out   *tensor.Tensor
	in    *tensor.Tensor
	err   error
}

func (p *fakePredictor) Predict(in *tensor.Tensor) (*tensor.Tensor, error) {
	p.in = in

	if p.err != nil {
		return nil, p.err
	}

	return p.out, nil
}

func (p *fakePredictor) Model() segment.Model {
	return p.model
}

func (p *fakePredictor) Close() {}

type fakeModels struct {
	predictor segment.Predictor
	err       error
}

func (f fakeModels) Predictor(name string) (segment.Predictor, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.predictor, nil
}

// fill sets every value of the batch.
func fill(t *tensor.Tensor, v float32) *tensor.Tensor {
	values := t.Values()

	for i := range values {
		values[i] = v
	}

	return t
}

// circleLandmarks returns n landmark points on a circle.
func circleLandmarks(n int, cx, cy, radius float64) face.Landmarks {
	l := make(face.Landmarks, 0, n)

	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)

		l = append(l, r2.Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}

	return l
}

func TestRequestValidate(t *testing.T) {
	faces := tensor.New(1, 8, 8, 3)

	t.Run("Ok", func(t *testing.T) {
		req := Request{Kind: KindNone, Faces: faces, Channels: 1}

		assert.NoError(t, req.Validate())
	})

	t.Run("BadChannels", func(t *testing.T) {
		for _, channels := range []int{0, 2, 5, -1} {
			req := Request{Kind: KindNone, Faces: faces, Channels: channels}

			assert.Error(t, req.Validate(), "channels %d", channels)
		}
	})

	t.Run("NoFaces", func(t *testing.T) {
		req := Request{Kind: KindNone, Channels: 1}

		assert.Error(t, req.Validate())
	})

	t.Run("WrongFaceChannels", func(t *testing.T) {
		req := Request{Kind: KindNone, Faces: tensor.New(1, 8, 8, 1), Channels: 1}

		assert.Error(t, req.Validate())
	})

	t.Run("MissingLandmarks", func(t *testing.T) {
		req := Request{Kind: KindFacehull, Faces: faces, Channels: 1}

		assert.Error(t, req.Validate())
	})
}

func TestBuildSolid(t *testing.T) {
	b := NewBuilder(nil)

	result, err := b.Build(Request{Kind: KindNone, Faces: tensor.New(2, 8, 8, 3), Channels: 1})

	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, KindNone, result.Kind())
	assert.Equal(t, 2, result.Count())

	n, h, w, c := result.Masks().Dims()
	assert.Equal(t, [4]int{2, 8, 8, 1}, [4]int{n, h, w, c})

	assert.Equal(t, float32(1), result.Masks().Min())
	assert.Equal(t, float32(1), result.Masks().Max())
}

func TestBuildDefaultKind(t *testing.T) {
	b := NewBuilder(nil)

	landmarks := []face.Landmarks{circleLandmarks(face.LandmarkCount, 32, 32, 20)}

	result, err := b.Build(Request{Faces: tensor.New(1, 64, 64, 3), Landmarks: landmarks, Channels: 1})

	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, KindDflFull, result.Kind())
	assert.Equal(t, float32(1), result.Masks().Max())
}

func TestBuildDFL(t *testing.T) {
	model := segment.Models["DFL_256_sigmoid_v1"]

	out := tensor.New(1, 256, 256, 1)
	out.Set(0, 0, 0, 0, 0.05)
	out.Set(0, 0, 1, 0, 0.5)
	out.Set(0, 0, 2, 0, 0.95)

	p := &fakePredictor{model: model, out: out}
	b := NewBuilder(fakeModels{predictor: p})

	faces := fill(tensor.New(1, 256, 256, 3), 0.5)

	result, err := b.Build(Request{Kind: KindUnet256, Faces: faces, Channels: 1})

	if err != nil {
		t.Fatal(err)
	}

	// Raw crops go to the model unchanged.
	assert.Equal(t, faces.Values(), p.in.Values())

	masks := result.Masks()

	assert.Equal(t, float32(0), masks.At(0, 0, 0, 0))
	assert.Equal(t, float32(0.5), masks.At(0, 0, 1, 0))
	assert.Equal(t, float32(1), masks.At(0, 0, 2, 0))
}

func TestBuildDFLMultiChannelOutput(t *testing.T) {
	model := segment.Models["DFL_256_sigmoid_v1"]

	out := tensor.New(1, 256, 256, 2)
	out.Set(0, 0, 0, 0, 0.95)
	out.Set(0, 0, 0, 1, 0.05)

	p := &fakePredictor{model: model, out: out}
	b := NewBuilder(fakeModels{predictor: p})

	result, err := b.Build(Request{Kind: KindUnet256, Faces: tensor.New(1, 256, 256, 3), Channels: 1})

	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 1, result.Masks().Channels())
	assert.Equal(t, float32(1), result.Masks().At(0, 0, 0, 0))
}

func TestBuildNirkin(t *testing.T) {
	model := segment.Models["Nirkin_300_softmax_v1"]

	out := tensor.New(2, 300, 300, 2)

	// Constant softmax face plane.
	for n := 0; n < 2; n++ {
		for y := 0; y < 300; y++ {
			for x := 0; x < 300; x++ {
				out.Set(n, y, x, 1, 0.5)
			}
		}
	}

	p := &fakePredictor{model: model, out: out}
	b := NewBuilder(fakeModels{predictor: p})

	faces := fill(tensor.New(2, 300, 300, 3), 0.5)
	means := fill(tensor.New(1, 300, 300, 3), 0.25)

	result, err := b.Build(Request{Kind: KindVgg300, Faces: faces, Means: means, Channels: 1})

	if err != nil {
		t.Fatal(err)
	}

	// The model input is mean centered.
	assert.InDelta(t, 0.25, p.in.At(0, 10, 10, 0), 1e-6)
	assert.InDelta(t, 0.25, p.in.At(1, 299, 299, 2), 1e-6)

	// A constant plane stays constant through the blur.
	masks := result.Masks()

	assert.Equal(t, 1, masks.Channels())
	assert.InDelta(t, 0.5, masks.At(0, 150, 150, 0), 1e-3)
	assert.InDelta(t, 0.5, masks.At(1, 0, 0, 0), 1e-3)
}

func TestBuildNirkinNeedsMeans(t *testing.T) {
	model := segment.Models["Nirkin_500_softmax_v1"]

	p := &fakePredictor{model: model, out: tensor.New(1, 500, 500, 2)}
	b := NewBuilder(fakeModels{predictor: p})

	_, err := b.Build(Request{Kind: KindVgg500, Faces: tensor.New(1, 500, 500, 3), Channels: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mean image")
}

func TestBuildLearnedSizeMismatch(t *testing.T) {
	model := segment.Models["DFL_256_sigmoid_v1"]

	p := &fakePredictor{model: model, out: tensor.New(1, 256, 256, 1)}
	b := NewBuilder(fakeModels{predictor: p})

	_, err := b.Build(Request{Kind: KindUnet256, Faces: tensor.New(1, 64, 64, 3), Channels: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "256px")
}

func TestBuildLearnedNoModels(t *testing.T) {
	b := NewBuilder(nil)

	_, err := b.Build(Request{Kind: KindUnet256, Faces: tensor.New(1, 256, 256, 3), Channels: 1})

	assert.Error(t, err)
}

func TestBuildLearnedModelError(t *testing.T) {
	b := NewBuilder(fakeModels{err: fmt.Errorf("segment: download failed")})

	_, err := b.Build(Request{Kind: KindVgg500, Faces: tensor.New(1, 500, 500, 3), Channels: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "download failed")
}

func TestBuildWithPostProcess(t *testing.T) {
	model := segment.Models["Nirkin_300_softmax_v1"]

	out := tensor.New(1, 300, 300, 2)

	for y := 0; y < 300; y++ {
		for x := 0; x < 300; x++ {
			out.Set(0, y, x, 1, 0.7)
		}
	}

	p := &fakePredictor{model: model, out: out}
	b := NewBuilder(fakeModels{predictor: p})
	b.SetPostProcess(PostProcess{FillHoles: true})

	faces := fill(tensor.New(1, 300, 300, 3), 0.5)
	means := tensor.New(1, 300, 300, 3)

	result, err := b.Build(Request{Kind: KindVgg300, Faces: faces, Means: means, Channels: 1})

	if err != nil {
		t.Fatal(err)
	}

	// Binarization turns the 0.7 plane into hard ones.
	assert.Equal(t, float32(1), result.Masks().Min())
	assert.Equal(t, float32(1), result.Masks().Max())
}
