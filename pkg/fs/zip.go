package fs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Unzip extracts a zip archive to a directory and returns the names of the
// extracted files.
//
// Archive entries that would escape the target directory are rejected.
func Unzip(zipName, dir string) (fileNames []string, err error) {
	reader, err := zip.OpenReader(zipName)

	if err != nil {
		return fileNames, err
	}

	defer reader.Close()

	if _, err := MkdirAll(dir); err != nil {
		return fileNames, err
	}

	for _, file := range reader.File {
		fileName := filepath.Join(dir, file.Name)

		if !strings.HasPrefix(fileName, filepath.Clean(dir)+string(os.PathSeparator)) {
			return fileNames, fmt.Errorf("zip: %s has an illegal path", file.Name)
		}

		if file.FileInfo().IsDir() {
			if _, err := MkdirAll(fileName); err != nil {
				return fileNames, err
			}

			continue
		}

		if _, err := MkdirAll(filepath.Dir(fileName)); err != nil {
			return fileNames, err
		}

		if err := unzipFile(file, fileName); err != nil {
			return fileNames, err
		}

		fileNames = append(fileNames, fileName)
	}

	return fileNames, nil
}

func unzipFile(file *zip.File, fileName string) error {
	reader, err := file.Open()

	if err != nil {
		return err
	}

	defer reader.Close()

	out, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, ModeFile)

	if err != nil {
		return err
	}

	defer out.Close()

	_, err = io.Copy(out, reader)

	return err
}
