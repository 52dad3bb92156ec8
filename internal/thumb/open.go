package thumb

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	heif "github.com/carck/libheif-go"
	"github.com/disintegration/imaging"
	"github.com/mandykoh/prism/meta/autometa"
	"github.com/mandykoh/prism/meta/icc"

	"github.com/facemask/facemask/pkg/colors"
	"github.com/facemask/facemask/pkg/fs"
	"github.com/facemask/facemask/pkg/sanitize"
)

// Open loads a face crop image from disk, rotates it, and converts the color profile if necessary.
func Open(fileName string, orientation int) (result image.Image, err error) {
	if fileName == "" {
		return result, fmt.Errorf("thumb: filename missing")
	}

	if !fs.FileExists(fileName) {
		return result, fmt.Errorf("thumb: %s not found", sanitize.Log(filepath.Base(fileName)))
	}

	format := fs.GetFileFormat(fileName)

	if !fs.IsImageFormat(format) {
		return result, fmt.Errorf("thumb: %s is not a supported image", sanitize.Log(filepath.Base(fileName)))
	}

	// Open JPEG?
	if format == fs.FormatJpeg {
		return OpenJpeg(fileName, orientation)
	}

	// Open HEIF?
	if format == fs.FormatHEIF {
		return OpenHeif(fileName, orientation)
	}

	// Open file with imaging function.
	img, err := imaging.Open(fileName)

	if err != nil {
		return result, err
	}

	// Rotate?
	if orientation > 1 {
		img = Rotate(img, orientation)
	}

	return img, nil
}

// OpenHeif loads a HEIF image from disk and converts the color profile if necessary.
func OpenHeif(fileName string, orientation int) (image.Image, error) {
	c, err := heif.NewContext()
	if err != nil {
		return nil, err
	}
	if err := c.ReadFromFile(fileName); err != nil {
		return nil, err
	}
	handle, err := c.GetPrimaryImageHandle()
	if err != nil {
		return nil, err
	}

	img, err := handle.DecodeImage(heif.ColorspaceUndefined, heif.ChromaUndefined, nil)
	if err != nil {
		return nil, err
	}

	result, err := img.GetImage()
	if err != nil {
		return nil, err
	}

	if data, _ := handle.GetICCProfle(); data != nil {
		md, _ := icc.NewProfileReader(bytes.NewReader(data)).ReadProfile()
		profile, _ := md.Description()
		switch {
		case colors.ProfileDisplayP3.Equal(profile):
			result = colors.ToSRGB(result, colors.ProfileDisplayP3)
		}
	}

	// Rotate?
	if orientation > 1 {
		result = Rotate(result, orientation)
	}

	return result, nil
}

// OpenJpeg loads a JPEG image from disk, rotates it, and converts the color profile if necessary.
func OpenJpeg(fileName string, orientation int) (result image.Image, err error) {
	if fileName == "" {
		return result, fmt.Errorf("thumb: filename missing")
	}

	logName := sanitize.Log(filepath.Base(fileName))

	// Open file.
	fileReader, err := os.Open(fileName)

	if err != nil {
		return result, err
	}

	defer fileReader.Close()

	// Read color metadata.
	md, imgStream, err := autometa.Load(fileReader)

	var img image.Image

	if err != nil {
		log.Warnf("thumb: %s in %s (read color metadata)", err, logName)
		img, err = imaging.Decode(fileReader)
	} else {
		img, err = imaging.Decode(imgStream)
	}

	if err != nil {
		return result, err
	}

	// Read ICC profile and convert colors if possible.
	if md != nil {
		if iccProfile, err := md.ICCProfile(); err != nil || iccProfile == nil {
			// Do nothing.
			log.Tracef("thumb: %s has no color profile", logName)
		} else if profile, err := iccProfile.Description(); err == nil && profile != "" {
			log.Tracef("thumb: %s has color profile %s", logName, sanitize.Log(profile))
			switch {
			case colors.ProfileDisplayP3.Equal(profile):
				img = colors.ToSRGB(img, colors.ProfileDisplayP3)
			}
		}
	}

	// Rotate?
	if orientation > 1 {
		img = Rotate(img, orientation)
	}

	return img, nil
}
