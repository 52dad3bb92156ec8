package face

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/golang/geo/r2"
	"github.com/tidwall/gjson"
	"github.com/valyala/gozstd"

	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/sanitize"
)

// Alignments maps source file names to the landmark sets of the faces they contain.
type Alignments map[string][]Landmarks

// Find returns the landmark sets for a source file, matched by full or base name.
func (a Alignments) Find(fileName string) []Landmarks {
	if result, ok := a[fileName]; ok {
		return result
	}

	return a[filepath.Base(fileName)]
}

// Count returns the total number of faces across all source files.
func (a Alignments) Count() (n int) {
	for _, sets := range a {
		n += len(sets)
	}

	return n
}

// LoadAlignments reads an alignments file mapping source file names to face
// landmarks. Zstandard compressed files are decompressed transparently.
func LoadAlignments(fileName string) (result Alignments, err error) {
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("alignments: %s in %s (parse panic)\nstack: %s", e, sanitize.Log(filepath.Base(fileName)), debug.Stack())
		}
	}()

	logName := sanitize.Log(filepath.Base(fileName))

	if !fs.FileExists(fileName) {
		return nil, fmt.Errorf("alignments: file %s not found", logName)
	}

	data, err := os.ReadFile(fileName)

	if err != nil {
		return nil, fmt.Errorf("alignments: %s", err)
	}

	if fs.GetFileFormat(fileName) == fs.FormatZstd {
		if data, err = gozstd.Decompress(nil, data); err != nil {
			return nil, fmt.Errorf("alignments: %s in %s", err, logName)
		}
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("alignments: invalid json in %s", logName)
	}

	parsed := gjson.ParseBytes(data)

	// Newer files wrap the frame map in a data node.
	if wrapped := parsed.Get("__data__"); wrapped.Exists() {
		parsed = wrapped
	}

	result = make(Alignments)

	parsed.ForEach(func(frame, faces gjson.Result) bool {
		if !faces.IsArray() {
			return true
		}

		sets := make([]Landmarks, 0, 1)

		faces.ForEach(func(_, f gjson.Result) bool {
			points := f.Get("landmarks_xy")

			if !points.Exists() {
				points = f.Get("landmarksXY")
			}

			if !points.Exists() {
				log.Warnf("alignments: face without landmarks in %s", sanitize.Log(frame.String()))
				return true
			}

			var l Landmarks

			points.ForEach(func(_, p gjson.Result) bool {
				if pair := p.Array(); len(pair) >= 2 {
					l = append(l, r2.Point{X: pair[0].Float(), Y: pair[1].Float()})
				}

				return true
			})

			sets = append(sets, l)

			return true
		})

		result[frame.String()] = sets

		return true
	})

	log.Debugf("alignments: loaded %d faces in %d files from %s", result.Count(), len(result), logName)

	return result, nil
}
