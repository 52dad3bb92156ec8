/*
Package fs provides filesystem related constants and functions.
*/
package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// ModeDir is the default mode for new directories.
const ModeDir = 0o755

// ModeFile is the default mode for new files.
const ModeFile = 0o644

// FileExists returns true if the file exists and is not a directory.
func FileExists(fileName string) bool {
	if fileName == "" {
		return false
	}

	info, err := os.Stat(fileName)

	return err == nil && info.Mode().IsRegular()
}

// PathExists returns true if the path exists and is a directory.
func PathExists(pathName string) bool {
	if pathName == "" {
		return false
	}

	info, err := os.Stat(pathName)

	return err == nil && info.IsDir()
}

// PathWritable returns true if the path exists and files can be created in it.
func PathWritable(pathName string) bool {
	if !PathExists(pathName) {
		return false
	}

	probe, err := os.CreateTemp(pathName, ".writable-*")

	if err != nil {
		return false
	}

	_ = probe.Close()
	_ = os.Remove(probe.Name())

	return true
}

// MkdirAll creates a directory including all parents, and returns its name.
func MkdirAll(pathName string) (string, error) {
	if pathName == "" {
		return "", nil
	}

	return pathName, os.MkdirAll(pathName, ModeDir)
}

// Abs returns the full path of a file or directory, expanding "~" to the home directory.
func Abs(fileName string) string {
	if fileName == "" {
		return ""
	}

	if len(fileName) > 2 && fileName[:2] == "~/" {
		if usr, err := os.UserHomeDir(); err == nil {
			fileName = filepath.Join(usr, fileName[2:])
		}
	}

	result, err := filepath.Abs(fileName)

	if err != nil {
		return fileName
	}

	return result
}

// StripExt returns the file name without extension.
func StripExt(fileName string) string {
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

// FileSize returns the size of a file in bytes, or -1 if it cannot be determined.
func FileSize(fileName string) int64 {
	info, err := os.Stat(fileName)

	if err != nil {
		return -1
	}

	return info.Size()
}

// Remove deletes a file, ignoring errors.
func Remove(fileName string) {
	if fileName == "" {
		return
	}

	_ = os.Remove(fileName)
}
