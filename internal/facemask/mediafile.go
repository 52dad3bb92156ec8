package facemask

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/djherbis/times"

	"github.com/facemask/facemask/internal/thumb"
	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/sanitize"
)

// Suffixes of files generated by this package, skipped while walking.
const (
	MaskSuffix    = ".mask"
	PreviewSuffix = ".preview"
)

// MediaFile represents a single face crop image file.
type MediaFile struct {
	fileName string
	statOnce sync.Once
	modTime  time.Time
	fileSize int64
	hashOnce sync.Once
	fileHash string
}

// NewMediaFile returns a new media file for an existing face crop.
func NewMediaFile(fileName string) (*MediaFile, error) {
	if fileName == "" {
		return nil, fmt.Errorf("facemask: file name missing")
	}

	if !fs.FileExists(fileName) {
		return nil, fmt.Errorf("facemask: %s not found", sanitize.Log(filepath.Base(fileName)))
	}

	if !fs.IsImage(fileName) {
		return nil, fmt.Errorf("facemask: %s is not an image", sanitize.Log(filepath.Base(fileName)))
	}

	return &MediaFile{fileName: fileName}, nil
}

// FileName returns the full file name.
func (m *MediaFile) FileName() string {
	return m.fileName
}

// BaseName returns the file name without path.
func (m *MediaFile) BaseName() string {
	return filepath.Base(m.fileName)
}

// RelName returns the file name relative to a directory.
func (m *MediaFile) RelName(dir string) string {
	if dir == "" {
		return m.fileName
	}

	if rel, err := filepath.Rel(dir, m.fileName); err == nil {
		return rel
	}

	return m.fileName
}

// stat fetches and caches file times and size.
func (m *MediaFile) stat() {
	m.statOnce.Do(func() {
		if t, err := times.Stat(m.fileName); err != nil {
			log.Warnf("facemask: %s (stat)", err)
		} else {
			m.modTime = t.ModTime()
		}

		m.fileSize = fs.FileSize(m.fileName)
	})
}

// ModTime returns the file modification time.
func (m *MediaFile) ModTime() time.Time {
	m.stat()

	return m.modTime
}

// FileSize returns the file size in bytes.
func (m *MediaFile) FileSize() int64 {
	m.stat()

	return m.fileSize
}

// Hash returns the sha1 hash of the file contents.
func (m *MediaFile) Hash() string {
	m.hashOnce.Do(func() {
		m.fileHash = fs.Hash(m.fileName)
	})

	return m.fileHash
}

// Open loads the face crop image.
func (m *MediaFile) Open() (image.Image, error) {
	return thumb.Open(m.fileName, thumb.OrientationNormal)
}

// IsGenerated tests if the file is a mask or preview generated by this package.
func (m *MediaFile) IsGenerated() bool {
	return IsGenerated(m.fileName)
}

// MaskName returns the mask artifact file name for the given kind.
func (m *MediaFile) MaskName(kind string) string {
	base := strings.TrimSuffix(m.fileName, filepath.Ext(m.fileName))

	return base + "." + kind + MaskSuffix + ".png"
}

// PreviewName returns the preview artifact file name for the given kind.
func (m *MediaFile) PreviewName(kind string) string {
	base := strings.TrimSuffix(m.fileName, filepath.Ext(m.fileName))

	return base + "." + kind + PreviewSuffix + ".jpg"
}

// IsGenerated tests if a file name refers to a generated mask or preview.
func IsGenerated(fileName string) bool {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))

	return strings.HasSuffix(base, MaskSuffix) || strings.HasSuffix(base, PreviewSuffix)
}
