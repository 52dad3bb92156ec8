package fs

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("model-bytes"))
		}))
		defer server.Close()

		fileName := filepath.Join(t.TempDir(), "models", "test.zip")
		assert.NoError(t, Download(fileName, server.URL))
		assert.True(t, FileExists(fileName))

		data, err := os.ReadFile(fileName)
		assert.NoError(t, err)
		assert.Equal(t, "model-bytes", string(data))
	})
	t.Run("NotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		fileName := filepath.Join(t.TempDir(), "missing.zip")
		assert.Error(t, Download(fileName, server.URL))
		assert.False(t, FileExists(fileName))
	})
	t.Run("MissingArgs", func(t *testing.T) {
		assert.Error(t, Download("", "http://localhost/x"))
		assert.Error(t, Download("x.zip", ""))
	})
}

func newZipFixture(t *testing.T, files map[string]string) string {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := zip.NewWriter(buf)

	for name, body := range files {
		f, err := writer.Create(name)
		assert.NoError(t, err)
		_, err = f.Write([]byte(body))
		assert.NoError(t, err)
	}

	assert.NoError(t, writer.Close())

	zipName := filepath.Join(t.TempDir(), "fixture.zip")
	assert.NoError(t, os.WriteFile(zipName, buf.Bytes(), ModeFile))

	return zipName
}

func TestUnzip(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		zipName := newZipFixture(t, map[string]string{
			"DFL_256_sigmoid_v1.tflite": "weights",
			"notes/readme.txt":          "hello",
		})

		dir := t.TempDir()
		names, err := Unzip(zipName, dir)
		assert.NoError(t, err)
		assert.Len(t, names, 2)
		assert.True(t, FileExists(filepath.Join(dir, "DFL_256_sigmoid_v1.tflite")))
		assert.True(t, FileExists(filepath.Join(dir, "notes", "readme.txt")))
	})
	t.Run("IllegalPath", func(t *testing.T) {
		zipName := newZipFixture(t, map[string]string{
			"../escape.txt": "nope",
		})

		_, err := Unzip(zipName, t.TempDir())
		assert.Error(t, err)
	})
	t.Run("MissingArchive", func(t *testing.T) {
		_, err := Unzip("xxz/no-such.zip", t.TempDir())
		assert.Error(t, err)
	})
}
