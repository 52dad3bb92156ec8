package face

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/gozstd"
)

var alignmentsJson = []byte(`{
  "face-a.jpg": [
    {"x": 10, "y": 20, "w": 100, "h": 100, "landmarks_xy": [[1, 2], [3, 4], [5, 6]]},
    {"x": 50, "y": 60, "w": 80, "h": 80, "landmarks_xy": [[7, 8]]}
  ],
  "face-b.jpg": []
}`)

func TestLoadAlignments(t *testing.T) {
	t.Run("Json", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "alignments.json")

		if err := os.WriteFile(fileName, alignmentsJson, 0o644); err != nil {
			t.Fatal(err)
		}

		a, err := LoadAlignments(fileName)

		if err != nil {
			t.Fatal(err)
		}

		assert.Len(t, a, 2)
		assert.Equal(t, 2, a.Count())

		sets := a.Find("face-a.jpg")

		assert.Len(t, sets, 2)
		assert.Equal(t, 3, sets[0].Count())
		assert.Equal(t, 1.0, sets[0][0].X)
		assert.Equal(t, 2.0, sets[0][0].Y)
		assert.Equal(t, 1, sets[1].Count())

		assert.Len(t, a.Find("face-b.jpg"), 0)
		assert.Nil(t, a.Find("unknown.jpg"))
	})

	t.Run("Zstd", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "alignments.json.zst")

		if err := os.WriteFile(fileName, gozstd.Compress(nil, alignmentsJson), 0o644); err != nil {
			t.Fatal(err)
		}

		a, err := LoadAlignments(fileName)

		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, 2, a.Count())
		assert.Len(t, a.Find("face-a.jpg"), 2)
	})

	t.Run("LegacyKey", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "alignments.json")

		data := []byte(`{"old.png": [{"landmarksXY": [[9, 9], [8, 8]]}]}`)

		if err := os.WriteFile(fileName, data, 0o644); err != nil {
			t.Fatal(err)
		}

		a, err := LoadAlignments(fileName)

		if err != nil {
			t.Fatal(err)
		}

		sets := a.Find("old.png")

		assert.Len(t, sets, 1)
		assert.Equal(t, 2, sets[0].Count())
	})

	t.Run("DataWrapper", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "alignments.json")

		data := []byte(`{"__data__": {"wrapped.jpg": [{"landmarks_xy": [[1, 1]]}]}}`)

		if err := os.WriteFile(fileName, data, 0o644); err != nil {
			t.Fatal(err)
		}

		a, err := LoadAlignments(fileName)

		if err != nil {
			t.Fatal(err)
		}

		assert.Len(t, a.Find("wrapped.jpg"), 1)
	})

	t.Run("BaseNameFallback", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "alignments.json")

		if err := os.WriteFile(fileName, alignmentsJson, 0o644); err != nil {
			t.Fatal(err)
		}

		a, err := LoadAlignments(fileName)

		if err != nil {
			t.Fatal(err)
		}

		assert.Len(t, a.Find("/some/dir/face-a.jpg"), 2)
	})

	t.Run("NotFound", func(t *testing.T) {
		a, err := LoadAlignments(filepath.Join(t.TempDir(), "missing.json"))

		assert.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("InvalidJson", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "broken.json")

		if err := os.WriteFile(fileName, []byte("not json {"), 0o644); err != nil {
			t.Fatal(err)
		}

		a, err := LoadAlignments(fileName)

		assert.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestFaces(t *testing.T) {
	var faces Faces

	faces.Append(Face{FileName: "a.jpg", Landmarks: circleLandmarks(LandmarkCount)})
	faces.Append(Face{FileName: "b.jpg", Landmarks: circleLandmarks(30)})

	assert.Equal(t, 2, faces.Count())
	assert.Len(t, faces.Landmarks(), 2)
	assert.Len(t, faces.Images(), 2)

	w, h := faces[0].Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
}
