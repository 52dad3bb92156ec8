package commands

import (
	"context"
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/urfave/cli"

	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/facemask"
	"github.com/facemask/facemask/internal/service"
)

// BuildCommand registers the build cli command.
var BuildCommand = cli.Command{
	Name:      "build",
	Usage:     "Generates masks for aligned face crops in a directory",
	ArgsUsage: "[path]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "kind, k",
			Usage: "mask `KIND` to generate",
		},
		cli.IntFlag{
			Name:  "channels, c",
			Usage: "mask output channels, 1 to 4 `COUNT`",
		},
		cli.BoolFlag{
			Name:  "force, f",
			Usage: "rebuild masks that already exist",
		},
		cli.BoolFlag{
			Name:  "preview, p",
			Usage: "save preview images next to the masks",
		},
	},
	Action: buildAction,
}

// buildAction generates masks for all face crops below the given path.
func buildAction(ctx *cli.Context) error {
	start := time.Now()

	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := conf.Init(); err != nil {
		return err
	}

	conf.InitDb()

	kind := ctx.String("kind")

	if kind == "" {
		kind = conf.Settings().Mask.Kind
	}

	var result facemask.BuildResult

	buildPath := ctx.Args().First()

	if w := service.Build(); w != nil {
		opt := facemask.BuildOptions{
			Path:     buildPath,
			Kind:     kind,
			Channels: ctx.Int("channels"),
			Rescan:   ctx.Bool("force"),
			Preview:  ctx.Bool("preview") || conf.Settings().Mask.Preview,
		}

		var err error

		if result, err = w.Start(opt); err != nil {
			return err
		}
	}

	elapsed := time.Since(start)

	log.Infof("built %s, skipped %d, failed %d in %s", english.Plural(result.Built, "mask", "masks"), result.Skipped, result.Failed, elapsed)
	log.Infof("%s", result.CoverageSummary())

	service.Shutdown()
	conf.Shutdown()

	return nil
}
