package thumb

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	jpegli "github.com/carck/jpegli-go"

	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/sanitize"
)

// Save writes an image to disk, encoded as JPEG or PNG depending on the options.
func Save(img image.Image, fileName string, opts ...ResampleOption) (err error) {
	if img == nil {
		return fmt.Errorf("thumb: image missing")
	}

	if fileName == "" {
		return fmt.Errorf("thumb: filename missing")
	}

	if _, err = fs.MkdirAll(filepath.Dir(fileName)); err != nil {
		return err
	}

	_, _, format := ResampleOptions(opts...)

	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fs.ModeFile)

	if err != nil {
		return err
	}

	defer file.Close()

	if format == fs.FormatPng {
		err = png.Encode(file, img)
	} else {
		q := JpegQuality

		if b := img.Bounds(); b.Dx() <= 150 && b.Dy() <= 150 {
			q = JpegQualitySmall
		}

		err = jpegli.Encode(file, img, &jpegli.EncodingOptions{Quality: int(q)})
	}

	if err != nil {
		return fmt.Errorf("thumb: failed saving %s (%s)", sanitize.Log(filepath.Base(fileName)), err)
	}

	return nil
}
