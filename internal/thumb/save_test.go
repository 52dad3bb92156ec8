package thumb

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facemask/facemask/pkg/fs"
)

func TestSave(t *testing.T) {
	t.Run("Png", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "masks", "face.png")

		err := Save(imaging.New(32, 32, image.White.C), fileName, ResamplePng)
		require.NoError(t, err)
		assert.True(t, fs.FileExists(fileName))

		img, err := imaging.Open(fileName)
		require.NoError(t, err)
		assert.Equal(t, 32, img.Bounds().Dx())
	})
	t.Run("Jpeg", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "face.jpg")

		err := Save(imaging.New(256, 256, image.White.C), fileName)
		require.NoError(t, err)
		assert.True(t, fs.FileExists(fileName))

		img, err := imaging.Open(fileName)
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})
	t.Run("NoImage", func(t *testing.T) {
		assert.Error(t, Save(nil, filepath.Join(t.TempDir(), "face.png")))
	})
	t.Run("NoName", func(t *testing.T) {
		assert.Error(t, Save(imaging.New(8, 8, image.White.C), ""))
	})
}
