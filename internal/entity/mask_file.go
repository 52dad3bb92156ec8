package entity

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jinzhu/gorm"
	uuid "github.com/satori/go.uuid"
	"github.com/ulule/deepcopier"

	"github.com/facemask/facemask/internal/form"
	"github.com/facemask/facemask/pkg/sanitize"
)

// ReviewCoverage is the coverage fraction below which a mask is flagged for review.
const ReviewCoverage = 0.05

// MaskFile represents a generated face mask stored next to its source crop.
type MaskFile struct {
	MaskUID      string    `gorm:"type:VARBINARY(42);primary_key;auto_increment:false;" json:"UID" yaml:"UID"`
	FileName     string    `gorm:"type:VARBINARY(755);index;" json:"FileName" yaml:"FileName"`
	FileHash     string    `gorm:"type:VARBINARY(128);index;default:'';" json:"Hash" yaml:"Hash,omitempty"`
	FileModTime  int64     `json:"FileModTime" yaml:"-"`
	MaskName     string    `gorm:"type:VARBINARY(755);default:'';" json:"MaskName" yaml:"MaskName,omitempty"`
	MaskKind     string    `gorm:"type:VARBINARY(16);index;default:'';" json:"Kind" yaml:"Kind"`
	MaskChannels int       `gorm:"default:1;" json:"Channels" yaml:"Channels,omitempty"`
	MaskWidth    int       `json:"Width" yaml:"Width,omitempty"`
	MaskHeight   int       `json:"Height" yaml:"Height,omitempty"`
	FaceCount    int       `json:"Faces" yaml:"Faces,omitempty"`
	Coverage     float64   `gorm:"type:FLOAT;default:0;" json:"Coverage" yaml:"Coverage,omitempty"`
	MaskReview   bool      `json:"Review" yaml:"Review,omitempty"`
	MaskInvalid  bool      `json:"Invalid" yaml:"Invalid,omitempty"`
	CreatedAt    time.Time `json:"CreatedAt" yaml:"-"`
	UpdatedAt    time.Time `json:"UpdatedAt" yaml:"-"`
}

// TableName returns the entity database table name.
func (MaskFile) TableName() string {
	return "mask_files"
}

// BeforeCreate creates a random UID if needed before inserting a new row to the database.
func (m *MaskFile) BeforeCreate(scope *gorm.Scope) error {
	if m.MaskUID != "" {
		return nil
	}

	return scope.SetColumn("MaskUID", uuid.NewV4().String())
}

// NewMaskFile creates a new entity for a mask generated from a face crop.
func NewMaskFile(fileName, maskName, kind string, channels int) *MaskFile {
	if fileName == "" {
		log.Errorf("mask files: file name is empty - you might have found a bug")
		return nil
	}

	m := &MaskFile{
		FileName:     fileName,
		MaskName:     maskName,
		MaskKind:     kind,
		MaskChannels: channels,
	}

	return m
}

// SetResult stores mask dimensions, face count, and coverage on the record.
func (m *MaskFile) SetResult(width, height, faces int, coverage float64) *MaskFile {
	m.MaskWidth = width
	m.MaskHeight = height
	m.FaceCount = faces
	m.Coverage = coverage
	m.MaskReview = coverage < ReviewCoverage
	m.MaskInvalid = false

	return m
}

// Updates multiple columns in the database.
func (m *MaskFile) Updates(values interface{}) error {
	return UnscopedDb().Model(m).Updates(values).Error
}

// Update updates a column in the database.
func (m *MaskFile) Update(attr string, value interface{}) error {
	return UnscopedDb().Model(m).Update(attr, value).Error
}

// Save updates the existing or inserts a new row.
func (m *MaskFile) Save() error {
	if m.FileName == "" {
		return fmt.Errorf("mask file name must not be empty")
	}

	return Db().Save(m).Error
}

// Create inserts a new row to the database.
func (m *MaskFile) Create() error {
	if m.FileName == "" {
		return fmt.Errorf("mask file name must not be empty")
	}

	return Db().Create(m).Error
}

// Delete removes the record from the database.
func (m *MaskFile) Delete() error {
	return Db().Delete(m).Error
}

// SaveForm updates the entity using form data and stores it in the database.
func (m *MaskFile) SaveForm(f form.MaskFile) (changed bool, err error) {
	changed = m.MaskInvalid != f.MaskInvalid || m.MaskReview != f.MaskReview

	if !changed {
		return false, nil
	}

	if err := deepcopier.Copy(m).From(f); err != nil {
		return false, err
	}

	return true, m.Save()
}

// Unsaved tests if the record hasn't been saved yet.
func (m *MaskFile) Unsaved() bool {
	return m.MaskUID == "" || m.CreatedAt.IsZero()
}

// Stale tests if the source crop changed since the mask was generated.
func (m *MaskFile) Stale(kind string, channels int, modTime int64) bool {
	if m.MaskInvalid {
		return true
	}

	return m.MaskKind != kind || m.MaskChannels != channels || m.FileModTime != modTime
}

// BaseName returns the base file name of the source crop.
func (m *MaskFile) BaseName() string {
	return filepath.Base(m.FileName)
}

// Invalidate marks the mask as invalid so it gets rebuilt on the next run.
func (m *MaskFile) Invalidate() error {
	if m.MaskInvalid {
		return nil
	}

	m.MaskInvalid = true

	return m.Updates(Values{"MaskInvalid": true})
}

// FindMaskFile returns an existing row if it exists.
func FindMaskFile(maskUid string) *MaskFile {
	if maskUid == "" {
		return nil
	}

	var result MaskFile

	if err := Db().Where("mask_uid = ?", maskUid).First(&result).Error; err != nil {
		return nil
	}

	return &result
}

// FindMaskFileByName returns the mask record for a source crop and kind if it exists.
func FindMaskFileByName(fileName, kind string) *MaskFile {
	if fileName == "" {
		return nil
	}

	var result MaskFile

	if err := Db().Where("file_name = ? AND mask_kind = ?", fileName, kind).First(&result).Error; err != nil {
		return nil
	}

	return &result
}

// CreateMaskFileIfNotExists inserts a new record unless one exists for the same crop and kind.
func CreateMaskFileIfNotExists(m *MaskFile) (*MaskFile, error) {
	result := MaskFile{}

	if m.MaskUID != "" {
		return m, nil
	} else if Db().Where("file_name = ? AND mask_kind = ?", m.FileName, m.MaskKind).
		First(&result).Error == nil {
		return &result, nil
	} else if err := m.Create(); err != nil {
		return m, err
	} else {
		log.Debugf("mask files: added %s mask for %s", m.MaskKind, sanitize.Log(m.BaseName()))
	}

	return m, nil
}

// MaskFiles represents a list of mask records.
type MaskFiles []MaskFile

// AllMaskFiles returns all mask records.
func AllMaskFiles() (result MaskFiles, err error) {
	err = Db().Order("file_name").Find(&result).Error

	return result, err
}

// CountMaskFiles returns the number of mask records.
func CountMaskFiles() (count int) {
	if err := Db().Model(&MaskFile{}).Count(&count).Error; err != nil {
		log.Errorf("mask files: %s (count)", err)
	}

	return count
}

// ResetMaskFiles removes all mask records.
func ResetMaskFiles() error {
	return UnscopedDb().Delete(&MaskFile{}, "mask_uid <> ''").Error
}
