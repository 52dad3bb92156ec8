package config

import (
	"github.com/urfave/cli"
)

// GlobalFlags describes global command-line parameters and flags.
var GlobalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "debug",
		Usage:  "enable debug logs, incl. sql queries",
		EnvVar: "FACEMASK_DEBUG",
	},
	cli.BoolFlag{
		Name:   "trace",
		Usage:  "enable trace logs",
		EnvVar: "FACEMASK_TRACE",
	},
	cli.StringFlag{
		Name:   "assets-path, a",
		Usage:  "assets `PATH` containing models and static files",
		EnvVar: "FACEMASK_ASSETS_PATH",
	},
	cli.StringFlag{
		Name:   "storage-path, s",
		Usage:  "storage `PATH` for settings, cache, and the index database",
		EnvVar: "FACEMASK_STORAGE_PATH",
	},
	cli.StringFlag{
		Name:   "cache-path",
		Usage:  "custom cache `PATH` for temporary files",
		EnvVar: "FACEMASK_CACHE_PATH",
	},
	cli.StringFlag{
		Name:   "models-path, m",
		Usage:  "custom `PATH` for downloaded segmentation models",
		EnvVar: "FACEMASK_MODELS_PATH",
	},
	cli.StringFlag{
		Name:   "database-dsn",
		Usage:  "sqlite database `DSN`",
		EnvVar: "FACEMASK_DATABASE_DSN",
	},
	cli.StringFlag{
		Name:   "download-url",
		Usage:  "custom base `URL` for model downloads",
		EnvVar: "FACEMASK_DOWNLOAD_URL",
	},
	cli.IntFlag{
		Name:   "workers",
		Usage:  "`LIMIT` the number of build workers",
		EnvVar: "FACEMASK_WORKERS",
	},
	cli.IntFlag{
		Name:   "batch-size",
		Usage:  "face crops per inference batch `COUNT`",
		EnvVar: "FACEMASK_BATCH_SIZE",
	},
}
