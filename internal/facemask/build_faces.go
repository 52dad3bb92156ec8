package facemask

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/facemask/facemask/internal/entity"
	"github.com/facemask/facemask/internal/face"
	"github.com/facemask/facemask/internal/mask"
	"github.com/facemask/facemask/internal/segment"
	"github.com/facemask/facemask/internal/thumb"
	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/sanitize"
	"github.com/facemask/facemask/pkg/tensor"
)

// PreviewSize is the longest edge of saved preview images.
const PreviewSize = 320

// BuildFile pairs a face crop with its loaded image and landmarks.
type BuildFile struct {
	file      *MediaFile
	relName   string
	image     image.Image
	landmarks face.Landmarks
}

// BuildFiles generates and stores masks for a batch of face crops.
func (w *Build) BuildFiles(files []BuildFile, opt BuildOptions) (result BuildResult) {
	kind := mask.Kind(opt.Kind)

	images := make([]image.Image, len(files))
	landmarks := make([]face.Landmarks, len(files))

	for i, f := range files {
		images[i] = f.image
		landmarks[i] = f.landmarks
	}

	faces, err := tensor.FromImages(images)

	if err != nil {
		log.Errorf("facemask: %s (load batch)", err)
		result.Failed = len(files)
		return result
	}

	req := mask.Request{
		Kind:      kind,
		Faces:     faces,
		Landmarks: landmarks,
		Channels:  opt.Channels,
	}

	// Nirkin models center their input on the batch mean image.
	if kind.IsLearned() {
		if m, mErr := segment.ModelByName(kind.ModelName()); mErr == nil && m.Family == segment.FamilyNirkin {
			req.Means = faces.MeanImage()
		}
	}

	res, err := w.builder.Build(req)

	if err != nil {
		log.Errorf("facemask: %s (build %s)", err, kind)
		result.Failed = len(files)
		return result
	}

	for i, f := range files {
		if err := w.saveMask(f, res, i, opt); err != nil {
			log.Errorf("facemask: %s in %s", err, sanitize.Log(f.file.BaseName()))
			result.Failed++
			continue
		}

		result.Built++
		result.Faces++
		result.Coverages = append(result.Coverages, res.Coverage(i))
	}

	return result
}

// saveMask writes the mask and preview artifacts and updates the index record.
func (w *Build) saveMask(bf BuildFile, res *mask.Result, i int, opt BuildOptions) error {
	maskName := bf.file.MaskName(opt.Kind)

	var img image.Image
	var err error

	switch res.Channels() {
	case 4:
		img, err = res.CompositeImage(i)
	case 3:
		merged, mErr := res.Merged()

		if mErr != nil {
			return mErr
		}

		img, err = merged.ToNRGBA(i)
	default:
		img, err = res.MaskImage(i)
	}

	if err != nil {
		return err
	}

	if err := thumb.Save(img, maskName, thumb.ResamplePng); err != nil {
		return err
	}

	if opt.Preview {
		if err := w.savePreview(bf, opt); err != nil {
			log.Warnf("facemask: %s (save preview)", err)
		}
	}

	record := entity.FindMaskFileByName(bf.relName, opt.Kind)

	if record == nil {
		record = entity.NewMaskFile(bf.relName, filepath.Base(maskName), opt.Kind, res.Channels())
	}

	if record == nil {
		return fmt.Errorf("failed creating mask record")
	}

	record.MaskName = filepath.Base(maskName)
	record.MaskChannels = res.Channels()
	record.FileHash = bf.file.Hash()
	record.FileModTime = bf.file.ModTime().Unix()
	record.SetResult(img.Bounds().Dx(), img.Bounds().Dy(), 1, res.Coverage(i))

	return record.Save()
}

// savePreview renders landmark and part overlays next to the generated mask.
func (w *Build) savePreview(bf BuildFile, opt BuildOptions) error {
	kind := mask.Kind(opt.Kind)
	previewName := bf.file.PreviewName(opt.Kind)

	img := bf.image

	if kind.IsHull() {
		img = face.DrawParts(img, mask.HullParts(kind, bf.landmarks))
	}

	if bf.landmarks.Count() > 0 {
		img = face.Draw(img, bf.landmarks)
	}

	// Write through libvips when enabled to keep previews small and fast.
	if w.conf.Settings().Thumb.Vips {
		tmpName := previewName + ".tmp.jpg"

		if err := thumb.Save(img, tmpName); err != nil {
			return err
		}

		defer fs.Remove(tmpName)

		return thumb.ResampleVips(tmpName, previewName, PreviewSize, PreviewSize, thumb.ResampleFit)
	}

	if b := img.Bounds(); b.Dx() > PreviewSize || b.Dy() > PreviewSize {
		img = thumb.Resample(img, PreviewSize, PreviewSize, thumb.ResampleFit)
	}

	return thumb.Save(img, previewName)
}
