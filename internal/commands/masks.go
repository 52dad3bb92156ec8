package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/manifoldco/promptui"

	"github.com/urfave/cli"

	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/entity"
	"github.com/facemask/facemask/internal/form"
	"github.com/facemask/facemask/internal/search"
	"github.com/facemask/facemask/internal/service"
)

// MasksCommand registers the masks cli command.
var MasksCommand = cli.Command{
	Name:  "masks",
	Usage: "Lists and resets indexed mask records",
	Subcommands: []cli.Command{
		{
			Name:      "ls",
			Usage:     "lists indexed mask records",
			ArgsUsage: "[path]",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Usage: "only show masks of `KIND`",
				},
				cli.BoolFlag{
					Name:  "review, r",
					Usage: "only show masks flagged for review",
				},
				cli.BoolFlag{
					Name:  "invalid, i",
					Usage: "only show invalidated masks",
				},
				cli.IntFlag{
					Name:  "count, n",
					Usage: "maximum `NUMBER` of results",
					Value: 100,
				},
			},
			Action: masksLsAction,
		},
		{
			Name:   "reset",
			Usage:  "removes all mask records from the index",
			Action: masksResetAction,
		},
	},
}

// masksLsAction lists indexed mask records.
func masksLsAction(ctx *cli.Context) error {
	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := conf.Init(); err != nil {
		return err
	}

	conf.InitDb()

	f := form.SearchMasks{
		Kind:    ctx.String("kind"),
		Path:    ctx.Args().First(),
		Review:  ctx.Bool("review"),
		Invalid: ctx.Bool("invalid"),
		Count:   ctx.Int("count"),
	}

	results, err := search.Masks(f)

	if err != nil {
		return err
	}

	fmt.Printf("%-44s %-12s %-9s %-6s %-9s %s\n", "File", "Kind", "Coverage", "Faces", "Review", "Invalid")

	for _, m := range results {
		fmt.Printf("%-44s %-12s %8.1f%% %6d %9t %t\n", m.FileName, m.MaskKind, m.Coverage*100, m.FaceCount, m.MaskReview, m.MaskInvalid)
	}

	log.Infof("found %s", english.Plural(len(results), "mask record", "mask records"))

	conf.Shutdown()

	return nil
}

// masksResetAction removes all mask records from the index.
func masksResetAction(ctx *cli.Context) error {
	start := time.Now()

	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := conf.Init(); err != nil {
		return err
	}

	conf.InitDb()

	confirm := promptui.Prompt{
		Label:     "Permanently remove all mask records",
		IsConfirm: true,
	}

	if _, err := confirm.Run(); err != nil {
		log.Infof("reset canceled")
		conf.Shutdown()
		return nil
	}

	count := entity.CountMaskFiles()

	if err := entity.ResetMaskFiles(); err != nil {
		return err
	}

	log.Infof("removed %s [%s]", english.Plural(count, "mask record", "mask records"), time.Since(start))

	conf.Shutdown()

	return nil
}
