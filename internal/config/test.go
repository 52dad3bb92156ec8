package config

import (
	"flag"
	"path/filepath"

	"github.com/urfave/cli"
)

// NewTestOptions returns options for testing rooted at the given path.
func NewTestOptions(path string) *Options {
	return &Options{
		Name:        "FaceMask",
		Version:     "test",
		Debug:       false,
		AssetsPath:  filepath.Join(path, "assets"),
		StoragePath: filepath.Join(path, "storage"),
		Workers:     1,
		BatchSize:   2,
	}
}

// NewTestConfig returns a valid config for testing rooted at the given path.
func NewTestConfig(path string) *Config {
	c := &Config{
		options: NewTestOptions(path),
	}

	if err := c.Init(); err != nil {
		log.Fatalf("config: %s (init test config)", err)
	}

	c.InitDb()

	return c
}

// CliTestContext returns a cli context for testing.
func CliTestContext(path string) *cli.Context {
	options := NewTestOptions(path)

	globalSet := flag.NewFlagSet("test", 0)
	globalSet.Bool("debug", false, "doc")
	globalSet.Bool("trace", false, "doc")
	globalSet.String("assets-path", options.AssetsPath, "doc")
	globalSet.String("storage-path", options.StoragePath, "doc")
	globalSet.String("cache-path", "", "doc")
	globalSet.String("models-path", "", "doc")
	globalSet.String("download-url", "", "doc")
	globalSet.String("database-dsn", "", "doc")
	globalSet.Int("workers", options.Workers, "doc")
	globalSet.Int("batch-size", options.BatchSize, "doc")

	app := cli.NewApp()
	app.Name = options.Name
	app.Version = options.Version

	c := cli.NewContext(app, globalSet, nil)

	logError(c.Set("assets-path", options.AssetsPath))
	logError(c.Set("storage-path", options.StoragePath))

	return c
}

func logError(err error) {
	if err != nil {
		log.Errorf("config: %s (test context)", err)
	}
}
