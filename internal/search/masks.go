package search

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/facemask/facemask/internal/entity"
	"github.com/facemask/facemask/internal/form"
)

type MaskResultsSlim []MaskSlim

// MaskSlim represents a mask search result.
type MaskSlim struct {
	MaskUID     string    `json:"UID"`
	FileName    string    `json:"Name"`
	FileHash    string    `json:"Hash"`
	MaskKind    string    `json:"Kind"`
	MaskWidth   int       `json:"Width"`
	MaskHeight  int       `json:"Height"`
	FaceCount   int       `json:"Faces"`
	Coverage    float64   `json:"Coverage"`
	MaskReview  bool      `json:"Review"`
	MaskInvalid bool      `json:"Invalid"`
	CreatedAt   time.Time `json:"CreatedAt"`
}

// Masks finds mask records matching the filter form, ordered by file name.
func Masks(f form.SearchMasks) (results MaskResultsSlim, err error) {
	s := Db().Model(&entity.MaskFile{}).Order("file_name")

	if kind := strings.TrimSpace(f.Kind); kind != "" {
		s = s.Where("mask_kind = ?", kind)
	}

	if path := strings.Trim(f.Path, " /"); path != "" {
		s = s.Where("file_name LIKE ?", path+"/%")
	}

	if f.Review {
		s = s.Where("mask_review = 1")
	}

	if f.Invalid {
		s = s.Where("mask_invalid = 1")
	}

	if f.Count > 0 {
		s = s.Limit(f.Count).Offset(f.Offset)
	}

	if result := s.Find(&results); result.Error != nil {
		return results, result.Error
	}

	log.Debugf("masks: found %s", english.Plural(len(results), "result", "results"))

	return results, nil
}
