package facemask

import (
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/karrick/godirwalk"

	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/entity"
	"github.com/facemask/facemask/internal/face"
	"github.com/facemask/facemask/internal/mask"
	"github.com/facemask/facemask/internal/segment"
	"github.com/facemask/facemask/internal/thumb"
	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/sanitize"
)

// Names under which landmark alignments are expected next to the crops.
var AlignmentsNames = []string{"alignments.json", "alignments.json.zst"}

// Build represents a mask build worker.
type Build struct {
	conf    *config.Config
	builder *mask.Builder

	resultMu sync.Mutex
	result   BuildResult
}

// NewBuild returns a new mask build worker.
func NewBuild(conf *config.Config, builder *mask.Builder) *Build {
	return &Build{conf: conf, builder: builder}
}

// addResult merges a batch result into the run total.
func (w *Build) addResult(result BuildResult) {
	w.resultMu.Lock()
	defer w.resultMu.Unlock()

	w.result.Add(result)
}

// findAlignments returns the alignments file name below path, if any.
func findAlignments(path string) string {
	for _, name := range AlignmentsNames {
		if fileName := filepath.Join(path, name); fs.FileExists(fileName) {
			return fileName
		}
	}

	return ""
}

// Start builds masks for all face crops found below the options path.
func (w *Build) Start(opt BuildOptions) (result BuildResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("facemask: %s (build panic)\nstack: %s", r, debug.Stack())
			log.Errorf(err.Error())
		}
	}()

	start := time.Now()

	kind, err := mask.Parse(opt.Kind)

	if err != nil {
		return result, err
	}

	opt.Kind = kind.String()

	if opt.Channels == 0 {
		opt.Channels = 1
	}

	optionsPath := fs.Abs(opt.Path)

	if !fs.PathExists(optionsPath) {
		return result, fmt.Errorf("facemask: directory %s not found", sanitize.Log(opt.Path))
	}

	if !fs.PathWritable(optionsPath) {
		return result, fmt.Errorf("facemask: directory %s is not writable", sanitize.Log(opt.Path))
	}

	if kind.IsLearned() && w.conf.DisableTFLite() {
		return result, fmt.Errorf("facemask: %s masks need tensorflow lite support", kind)
	}

	// Model input side for learned kinds, zero otherwise.
	var side int

	if kind.IsLearned() {
		m, mErr := segment.ModelByName(kind.ModelName())

		if mErr != nil {
			return result, mErr
		}

		side = m.Side
	}

	// Load landmark alignments if available. Crops without a match in the
	// directory alignments may still carry a json sidecar of their own.
	var alignments face.Alignments

	if fileName := findAlignments(optionsPath); fileName != "" {
		if alignments, err = face.LoadAlignments(fileName); err != nil {
			return result, err
		}
	}

	w.resultMu.Lock()
	w.result = BuildResult{}
	w.resultMu.Unlock()

	jobs := make(chan BuildJob)

	// Start a fixed number of build workers.
	numWorkers := w.conf.Workers()
	wg := new(sync.WaitGroup)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			BuildWorker(jobs)
		}()
	}

	batchSize := w.conf.BatchSize()

	var batch []BuildFile
	var batchW, batchH int

	flush := func() {
		if len(batch) == 0 {
			return
		}

		jobs <- BuildJob{files: batch, opt: opt, build: w}
		batch = nil
	}

	skipped := 0
	foundLandmarks := 0

	walkErr := godirwalk.Walk(optionsPath, &godirwalk.Options{
		ErrorCallback: func(fileName string, err error) godirwalk.ErrorAction {
			log.Errorf("facemask: %s", strings.Replace(err.Error(), optionsPath, "", 1))
			return godirwalk.SkipNode
		},
		Callback: func(fileName string, info *godirwalk.Dirent) error {
			if info.IsDir() {
				if fileName != optionsPath && strings.HasPrefix(filepath.Base(fileName), ".") {
					return filepath.SkipDir
				}

				return nil
			}

			if strings.HasPrefix(filepath.Base(fileName), ".") {
				return nil
			}

			if !fs.IsImage(fileName) || IsGenerated(fileName) {
				return nil
			}

			f, err := NewMediaFile(fileName)

			if err != nil {
				log.Debugf("facemask: %s", err)
				return nil
			}

			relName := f.RelName(optionsPath)

			// Skip crops whose mask is current unless a rescan was requested.
			if opt.SkipUnchanged() {
				if record := entity.FindMaskFileByName(relName, opt.Kind); record != nil &&
					!record.Stale(opt.Kind, opt.Channels, f.ModTime().Unix()) {
					skipped++
					return nil
				}
			}

			var landmarks face.Landmarks

			if found := alignments.Find(f.BaseName()); len(found) > 0 {
				landmarks = found[0]
			} else if sidecarName := fs.StripExt(fileName) + ".json"; fs.FileExists(sidecarName) {
				if sidecar, sErr := face.LoadAlignments(sidecarName); sErr != nil {
					log.Warnf("facemask: %s", sErr)
				} else if found := sidecar.Find(f.BaseName()); len(found) > 0 {
					landmarks = found[0]
				}
			}

			if landmarks.Count() > 0 {
				foundLandmarks++
			}

			if kind.IsHull() && landmarks.Count() == 0 {
				log.Warnf("facemask: no landmarks for %s", sanitize.Log(f.BaseName()))
				w.addResult(BuildResult{Failed: 1})
				return nil
			}

			img, err := f.Open()

			if err != nil {
				log.Warnf("facemask: %s", err)
				w.addResult(BuildResult{Failed: 1})
				return nil
			}

			if side > 0 {
				img = thumb.Square(img, side)
			}

			bounds := img.Bounds()

			// Batches must have uniform dimensions.
			if len(batch) > 0 && (bounds.Dx() != batchW || bounds.Dy() != batchH) {
				flush()
			}

			if len(batch) == 0 {
				batchW, batchH = bounds.Dx(), bounds.Dy()
			}

			batch = append(batch, BuildFile{
				file:      f,
				relName:   relName,
				image:     img,
				landmarks: landmarks,
			})

			if len(batch) >= batchSize {
				flush()
			}

			return nil
		},
		Unsorted: false,
	})

	flush()
	close(jobs)
	wg.Wait()

	if walkErr != nil {
		return result, walkErr
	}

	w.resultMu.Lock()
	w.result.Skipped += skipped
	result = w.result
	w.resultMu.Unlock()

	if kind.IsHull() && foundLandmarks == 0 && result.Failed > 0 {
		return result, fmt.Errorf("facemask: %s masks need landmarks, found no alignments in %s", kind, sanitize.Log(opt.Path))
	}

	log.Debugf("facemask: processed %s, skipped %d [%s]",
		english.Plural(result.Total(), "crop", "crops"), result.Skipped, time.Since(start))

	return result, nil
}
