package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// FileFormat represents a file format by normalized extension.
type FileFormat string

const (
	FormatJpeg  FileFormat = "jpg"
	FormatPng   FileFormat = "png"
	FormatGif   FileFormat = "gif"
	FormatBmp   FileFormat = "bmp"
	FormatTiff  FileFormat = "tiff"
	FormatHEIF  FileFormat = "heif"
	FormatJson  FileFormat = "json"
	FormatZstd  FileFormat = "zst"
	FormatOther FileFormat = ""
)

// sniffSize is the number of bytes read for content based type detection.
const sniffSize = 261

// GetFileFormat returns the format of a file based on its extension.
func GetFileFormat(fileName string) FileFormat {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))

	switch ext {
	case "jpg", "jpeg", "jpe":
		return FormatJpeg
	case "png":
		return FormatPng
	case "gif":
		return FormatGif
	case "bmp":
		return FormatBmp
	case "tif", "tiff":
		return FormatTiff
	case "heif", "heic", "hif":
		return FormatHEIF
	case "json":
		return FormatJson
	case "zst", "zstd":
		return FormatZstd
	default:
		return FormatOther
	}
}

// IsImage tests if a file contains image data based on its first bytes.
//
// Content sniffing catches mislabeled files before they reach a decoder;
// files that cannot be read are reported as non-images.
func IsImage(fileName string) bool {
	file, err := os.Open(fileName)

	if err != nil {
		return false
	}

	defer file.Close()

	buf := make([]byte, sniffSize)

	n, err := file.Read(buf)

	if err != nil && n == 0 {
		return false
	}

	return filetype.IsImage(buf[:n])
}

// ImageFormats contains the image formats that the loader accepts.
var ImageFormats = []FileFormat{FormatJpeg, FormatPng, FormatGif, FormatBmp, FormatTiff, FormatHEIF}

// IsImageFormat tests if the format belongs to a supported image type.
func IsImageFormat(f FileFormat) bool {
	for _, format := range ImageFormats {
		if f == format {
			return true
		}
	}

	return false
}
