package fs

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Download retrieves a URL and stores the response body in a file.
//
// The file is written to a temporary name first and renamed when the
// download completed, so interrupted transfers never leave a partial
// file behind. The body may be wrapped for progress reporting.
func Download(fileName string, url string) error {
	return DownloadTo(fileName, url, nil)
}

// DownloadTo retrieves a URL like Download, copying the body through
// wrap if it is not nil.
func DownloadTo(fileName string, url string, wrap func(size int64, body io.Reader) io.Reader) error {
	if fileName == "" {
		return fmt.Errorf("download: file name missing")
	} else if url == "" {
		return fmt.Errorf("download: url missing")
	}

	if _, err := MkdirAll(filepath.Dir(fileName)); err != nil {
		return fmt.Errorf("download: %s", err)
	}

	resp, err := http.Get(url)

	if err != nil {
		return fmt.Errorf("download: %s", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: %s returned status %d", url, resp.StatusCode)
	}

	tmpName := fileName + ".tmp"

	file, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, ModeFile)

	if err != nil {
		return fmt.Errorf("download: %s", err)
	}

	body := io.Reader(resp.Body)

	if wrap != nil {
		body = wrap(resp.ContentLength, resp.Body)
	}

	if _, err = io.Copy(file, body); err != nil {
		file.Close()
		os.Remove(tmpName)
		return fmt.Errorf("download: %s", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("download: %s", err)
	}

	return os.Rename(tmpName, fileName)
}
