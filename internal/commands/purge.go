package commands

import (
	"context"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/manifoldco/promptui"

	"github.com/urfave/cli"

	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/facemask"
	"github.com/facemask/facemask/internal/service"
)

// PurgeCommand registers the purge cli command.
var PurgeCommand = cli.Command{
	Name:      "purge",
	Usage:     "Removes generated masks, previews, and stale index records",
	ArgsUsage: "[path]",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "dry, d",
			Usage: "report what would be removed without changing anything",
		},
		cli.BoolFlag{
			Name:  "yes, y",
			Usage: "do not ask for confirmation",
		},
	},
	Action: purgeAction,
}

// purgeAction removes generated files below the given path.
func purgeAction(ctx *cli.Context) error {
	start := time.Now()

	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := conf.Init(); err != nil {
		return err
	}

	conf.InitDb()

	if !ctx.Bool("dry") && !ctx.Bool("yes") {
		confirm := promptui.Prompt{
			Label:     "Permanently remove all generated mask files",
			IsConfirm: true,
		}

		if _, err := confirm.Run(); err != nil {
			log.Infof("purge canceled")
			conf.Shutdown()
			return nil
		}
	}

	if w := service.Purge(); w != nil {
		opt := facemask.PurgeOptions{
			Path: ctx.Args().First(),
			Dry:  ctx.Bool("dry"),
		}

		if files, records, err := w.Start(opt); err != nil {
			return err
		} else {
			log.Infof("purge: removed %s and %s [%s]", english.Plural(files, "file", "files"), english.Plural(records, "record", "records"), time.Since(start))
		}
	}

	conf.Shutdown()

	return nil
}
