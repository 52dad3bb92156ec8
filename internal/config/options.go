package config

import (
	"github.com/urfave/cli"
)

// Batch size defaults, reduced when the system is low on memory.
const (
	DefaultBatchSize = 16
	LowMemBatchSize  = 4
)

// Options provides a struct in which application configuration is stored.
type Options struct {
	Name        string `yaml:"-"`
	Version     string `yaml:"-"`
	Debug       bool   `yaml:"Debug"`
	Trace       bool   `yaml:"Trace"`
	AssetsPath  string `yaml:"AssetsPath"`
	StoragePath string `yaml:"StoragePath"`
	CachePath   string `yaml:"CachePath"`
	ModelsPath  string `yaml:"ModelsPath"`
	DownloadUrl string `yaml:"DownloadUrl"`
	DatabaseDsn string `yaml:"DatabaseDsn"`
	Workers     int    `yaml:"Workers"`
	BatchSize   int    `yaml:"BatchSize"`
}

// NewOptions creates a new configuration entity based on cli context values.
func NewOptions(ctx *cli.Context) *Options {
	o := &Options{
		Name:        "FaceMask",
		Version:     "development",
		AssetsPath:  "assets",
		StoragePath: "storage",
	}

	if ctx == nil {
		return o
	}

	if ctx.App != nil {
		o.Name = ctx.App.Name
		o.Version = ctx.App.Version
	}

	o.Debug = ctx.GlobalBool("debug")
	o.Trace = ctx.GlobalBool("trace")

	if v := ctx.GlobalString("assets-path"); v != "" {
		o.AssetsPath = v
	}

	if v := ctx.GlobalString("storage-path"); v != "" {
		o.StoragePath = v
	}

	if v := ctx.GlobalString("cache-path"); v != "" {
		o.CachePath = v
	}

	if v := ctx.GlobalString("models-path"); v != "" {
		o.ModelsPath = v
	}

	if v := ctx.GlobalString("download-url"); v != "" {
		o.DownloadUrl = v
	}

	if v := ctx.GlobalString("database-dsn"); v != "" {
		o.DatabaseDsn = v
	}

	if v := ctx.GlobalInt("workers"); v > 0 {
		o.Workers = v
	}

	if v := ctx.GlobalInt("batch-size"); v > 0 {
		o.BatchSize = v
	}

	return o
}
