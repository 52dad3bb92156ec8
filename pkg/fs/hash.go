package fs

import (
	"crypto/sha1"
	"encoding/hex"
	"hash/crc32"
	"io"
	"os"
)

// hashSize is the total number of bytes sampled for the partial SHA1 hash.
const hashSize = 16 * 1024

// Hash returns a partial SHA1 hash of a file as hex string.
//
// Only the beginning, middle, and end of the file are sampled, so hashing
// stays fast for large media files. Files smaller than the sample size are
// hashed in full.
func Hash(fileName string) string {
	file, err := os.Open(fileName)

	if err != nil {
		return ""
	}

	defer file.Close()

	hash := sha1.New()

	info, err := file.Stat()

	if err != nil {
		return ""
	}

	if info.Size() <= hashSize {
		if _, err := io.Copy(hash, file); err != nil {
			return ""
		}

		return hex.EncodeToString(hash.Sum(nil))
	}

	buf := make([]byte, hashSize/4)

	for _, offset := range []int64{0, info.Size() / 2, info.Size() - hashSize/4} {
		if _, err := file.ReadAt(buf, offset); err != nil {
			return ""
		}

		if _, err := hash.Write(buf); err != nil {
			return ""
		}
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Checksum returns the CRC32 checksum of a file as hex string.
func Checksum(fileName string) string {
	file, err := os.Open(fileName)

	if err != nil {
		return ""
	}

	defer file.Close()

	hash := crc32.New(crc32.MakeTable(crc32.Castagnoli))

	if _, err := io.Copy(hash, file); err != nil {
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// IsHash tests if a string looks like a hash.
func IsHash(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if (r < 48 || r > 57) && (r < 97 || r > 102) && (r < 65 || r > 70) {
			return false
		}
	}

	switch len(s) {
	case 8, 16, 32, 40, 56, 64, 80, 128, 256:
		return true
	}

	return false
}
