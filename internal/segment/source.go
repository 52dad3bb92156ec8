package segment

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/txt"
)

// Source downloads and caches segmentation model files in a local directory.
type Source struct {
	modelsPath string
	baseUrl    string
	wrap       func(size int64, body io.Reader) io.Reader
}

// NewSource returns a model source storing files in modelsPath.
func NewSource(modelsPath, baseUrl string) *Source {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	return &Source{modelsPath: modelsPath, baseUrl: baseUrl}
}

// SetProgress sets a reader decorator for download progress reporting.
func (s *Source) SetProgress(wrap func(size int64, body io.Reader) io.Reader) {
	s.wrap = wrap
}

// ModelsPath returns the local model directory.
func (s *Source) ModelsPath() string {
	return s.modelsPath
}

// Cached reports whether the model file already exists locally.
func (s *Source) Cached(m Model) bool {
	return fs.FileExists(filepath.Join(s.modelsPath, m.FileName()))
}

// ModelPath returns the local path of the model file, downloading the
// release artifact first if it is missing.
func (s *Source) ModelPath(m Model) (string, error) {
	fileName := filepath.Join(s.modelsPath, m.FileName())

	if fs.FileExists(fileName) {
		return fileName, nil
	}

	if err := s.download(m); err != nil {
		return "", err
	}

	if !fs.FileExists(fileName) {
		return "", fmt.Errorf("segment: release archive of %s does not contain %s", m.Name, m.FileName())
	}

	return fileName, nil
}

func (s *Source) download(m Model) error {
	if _, err := fs.MkdirAll(s.modelsPath); err != nil {
		return fmt.Errorf("segment: %s", err)
	}

	zipName := filepath.Join(s.modelsPath, m.ZipName())
	url := m.DownloadUrl(s.baseUrl)

	log.Infof("segment: downloading %s", txt.Quote(m.ZipName()))

	start := time.Now()

	if err := fs.DownloadTo(zipName, url, s.wrap); err != nil {
		return fmt.Errorf("segment: %s", err)
	}

	defer fs.Remove(zipName)

	if _, err := fs.Unzip(zipName, s.modelsPath); err != nil {
		return fmt.Errorf("segment: %s", err)
	}

	log.Infof("segment: downloaded %s [%s]", txt.Quote(m.FileName()), time.Since(start))

	return nil
}
