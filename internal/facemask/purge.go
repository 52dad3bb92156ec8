package facemask

import (
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/karrick/godirwalk"

	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/entity"
	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/sanitize"
)

// Purge represents a worker that removes generated masks and stale records.
type Purge struct {
	conf *config.Config
}

// NewPurge returns a new purge worker.
func NewPurge(conf *config.Config) *Purge {
	return &Purge{conf: conf}
}

// PurgeOptions represents mask purge options.
type PurgeOptions struct {
	Path string
	Dry  bool
}

// Start removes generated mask and preview files below the options path
// along with index records whose source crops no longer exist.
func (w *Purge) Start(opt PurgeOptions) (files int, records int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("facemask: %s (purge panic)\nstack: %s", r, debug.Stack())
			log.Errorf(err.Error())
		}
	}()

	optionsPath := fs.Abs(opt.Path)

	if !fs.PathExists(optionsPath) {
		return files, records, fmt.Errorf("facemask: directory %s not found", sanitize.Log(opt.Path))
	}

	start := time.Now()

	// Remove generated artifacts.
	err = godirwalk.Walk(optionsPath, &godirwalk.Options{
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

			if !IsGenerated(fileName) {
				return nil
			}

			files++

			if opt.Dry {
				log.Infof("facemask: would remove %s", sanitize.Log(filepath.Base(fileName)))
				return nil
			}

			fs.Remove(fileName)
			log.Debugf("facemask: removed %s", sanitize.Log(filepath.Base(fileName)))

			return nil
		},
		Unsorted: false,
	})

	if err != nil {
		return files, records, err
	}

	// Remove records whose source crops are gone.
	all, err := entity.AllMaskFiles()

	if err != nil {
		return files, records, err
	}

	for i := range all {
		m := &all[i]

		if fs.FileExists(filepath.Join(optionsPath, m.FileName)) {
			continue
		}

		records++

		if opt.Dry {
			continue
		}

		if err := m.Delete(); err != nil {
			log.Errorf("facemask: %s (remove record)", err)
		}
	}

	if files > 0 || records > 0 {
		log.Debugf("facemask: purged %s and %s [%s]",
			english.Plural(files, "file", "files"),
			english.Plural(records, "record", "records"),
			time.Since(start))
	}

	return files, records, nil
}
