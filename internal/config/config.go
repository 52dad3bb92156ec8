/*

Package config provides global options, paths, and settings.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/jinzhu/gorm"
	"github.com/klauspost/cpuid/v2"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli"

	"github.com/facemask/facemask/internal/event"
	"github.com/facemask/facemask/internal/segment"
	"github.com/facemask/facemask/pkg/fs"
)

var log = event.Log

// MinMem is the minimum recommended system memory in bytes.
const MinMem = 2 * humanize.GiByte

// TotalMem is the total amount of system memory in bytes.
var TotalMem = memory.TotalMemory()

// Config holds the global options, settings, and database connection.
type Config struct {
	once     sync.Once
	db       *gorm.DB
	options  *Options
	settings *Settings
}

// NewConfig initializes the config based on command-line parameters.
func NewConfig(ctx *cli.Context) *Config {
	initLogger(ctx.GlobalBool("debug"), ctx.GlobalBool("trace"))

	c := &Config{
		options: NewOptions(ctx),
	}

	return c
}

// Options returns the raw config options.
func (c *Config) Options() *Options {
	if c.options == nil {
		log.Warnf("config: options should not be nil - you might have found a bug")
		c.options = NewOptions(nil)
	}

	return c.options
}

// Init creates directories, loads settings, and opens the index database.
func (c *Config) Init() error {
	if err := c.CreateDirectories(); err != nil {
		return err
	}

	if c.LowMem() {
		log.Warnf("config: less than %s of system memory, using reduced batch size", humanize.Bytes(MinMem))
	}

	c.initSettings()

	return c.connectDb()
}

// Name returns the application name.
func (c *Config) Name() string {
	return c.options.Name
}

// Version returns the application version.
func (c *Config) Version() string {
	return c.options.Version
}

// Debug tests if debug mode is enabled.
func (c *Config) Debug() bool {
	return c.options.Debug
}

// Trace tests if trace mode is enabled.
func (c *Config) Trace() bool {
	return c.options.Trace
}

// LowMem tests if the system has less memory than recommended.
func (c *Config) LowMem() bool {
	return TotalMem < MinMem
}

// Workers returns the number of build workers.
func (c *Config) Workers() int {
	if c.options.Workers > 0 {
		return c.options.Workers
	}

	if cores := cpuid.CPU.PhysicalCores; cores > 1 {
		return cores / 2
	}

	return 1
}

// BatchSize returns the number of face crops per inference batch.
func (c *Config) BatchSize() int {
	if c.options.BatchSize > 0 {
		return c.options.BatchSize
	}

	if c.LowMem() {
		return LowMemBatchSize
	}

	return DefaultBatchSize
}

// AssetsPath returns the path containing static assets.
func (c *Config) AssetsPath() string {
	return fs.Abs(c.options.AssetsPath)
}

// StoragePath returns the path for generated files like the index database.
func (c *Config) StoragePath() string {
	return fs.Abs(c.options.StoragePath)
}

// CachePath returns the path for cached files.
func (c *Config) CachePath() string {
	if c.options.CachePath != "" {
		return fs.Abs(c.options.CachePath)
	}

	return filepath.Join(c.StoragePath(), "cache")
}

// ModelsPath returns the path containing downloaded segmentation models.
func (c *Config) ModelsPath() string {
	if c.options.ModelsPath != "" {
		return fs.Abs(c.options.ModelsPath)
	}

	return filepath.Join(c.AssetsPath(), "models")
}

// DownloadUrl returns the base url for model downloads.
func (c *Config) DownloadUrl() string {
	if c.options.DownloadUrl != "" {
		return c.options.DownloadUrl
	}

	return segment.DefaultBaseUrl
}

// SettingsFile returns the user settings file name.
func (c *Config) SettingsFile() string {
	return filepath.Join(c.StoragePath(), "settings.yml")
}

// CreateDirectories creates the directories the application needs to run.
func (c *Config) CreateDirectories() error {
	createError := func(path string, err error) error {
		return fmt.Errorf("config: %s (create %s)", err, path)
	}

	if _, err := fs.MkdirAll(c.StoragePath()); err != nil {
		return createError(c.StoragePath(), err)
	}

	if _, err := fs.MkdirAll(c.CachePath()); err != nil {
		return createError(c.CachePath(), err)
	}

	if _, err := fs.MkdirAll(c.ModelsPath()); err != nil {
		return createError(c.ModelsPath(), err)
	}

	return nil
}

// Shutdown closes the database connection.
func (c *Config) Shutdown() {
	if err := c.CloseDb(); err != nil {
		log.Errorf("config: %s (close database)", err)
	} else {
		log.Info("config: closed database connection")
	}
}
