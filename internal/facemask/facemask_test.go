package facemask

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/facemask/facemask/internal/face"
)

// writeCrop writes a square png test image with a simple gradient.
func writeCrop(t *testing.T, fileName string, side int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, side, side))

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * x / side),
				G: uint8(255 * y / side),
				B: 128,
				A: 255,
			})
		}
	}

	file, err := os.Create(fileName)

	if err != nil {
		t.Fatal(err)
	}

	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
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

// writeAlignments writes an alignments file mapping crop names to landmarks.
func writeAlignments(t *testing.T, dir string, entries map[string]face.Landmarks) {
	t.Helper()

	writeAlignmentsFile(t, filepath.Join(dir, "alignments.json"), entries)
}

func writeAlignmentsFile(t *testing.T, fileName string, entries map[string]face.Landmarks) {
	t.Helper()

	type alignedFace struct {
		LandmarksXY [][]float64 `json:"landmarks_xy"`
	}

	frames := make(map[string][]alignedFace, len(entries))

	for name, l := range entries {
		points := make([][]float64, 0, len(l))

		for _, p := range l {
			points = append(points, []float64{p.X, p.Y})
		}

		frames[name] = []alignedFace{{LandmarksXY: points}}
	}

	data, err := json.Marshal(frames)

	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(fileName, data, 0o644); err != nil {
		t.Fatal(err)
	}
}
