/*

Package service provides shared application services like the mask builder
and the segmentation model cache.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package service

import (
	"sync"

	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/event"
	"github.com/facemask/facemask/internal/facemask"
	"github.com/facemask/facemask/internal/mask"
	"github.com/facemask/facemask/internal/segment"
)

var log = event.Log

var conf *config.Config

var services struct {
	Segment *segment.Cache
	Masks   *mask.Builder
	Build   *facemask.Build
	Purge   *facemask.Purge
}

// SetConfig sets the config for all shared services.
func SetConfig(c *config.Config) {
	if c == nil {
		panic("service: config is nil")
	}

	conf = c

	facemask.SetConfig(c)
}

// Config returns the shared service config.
func Config() *config.Config {
	if conf == nil {
		panic("service: config is not set")
	}

	return conf
}

var onceSegment sync.Once

func initSegment() {
	source := segment.NewSource(Config().ModelsPath(), Config().DownloadUrl())
	services.Segment = segment.NewCache(source)
}

// Segment returns the shared segmentation model cache.
func Segment() *segment.Cache {
	onceSegment.Do(initSegment)

	return services.Segment
}

var onceMasks sync.Once

func initMasks() {
	builder := mask.NewBuilder(Segment())

	s := Config().Settings()

	builder.SetPostProcess(mask.PostProcess{
		LargestSegment: s.Mask.LargestSegment,
		SmoothContours: s.Mask.SmoothContours,
		FillHoles:      s.Mask.FillHoles,
	})

	services.Masks = builder
}

// Masks returns the shared mask builder.
func Masks() *mask.Builder {
	onceMasks.Do(initMasks)

	return services.Masks
}

var onceBuild sync.Once

func initBuild() {
	services.Build = facemask.NewBuild(Config(), Masks())
}

// Build returns the shared mask build worker.
func Build() *facemask.Build {
	onceBuild.Do(initBuild)

	return services.Build
}

var oncePurge sync.Once

func initPurge() {
	services.Purge = facemask.NewPurge(Config())
}

// Purge returns the shared purge worker.
func Purge() *facemask.Purge {
	oncePurge.Do(initPurge)

	return services.Purge
}

// Shutdown releases shared services and cached model predictors.
func Shutdown() {
	if services.Segment != nil {
		services.Segment.Close()
		log.Debug("service: closed cached model predictors")
	}
}
