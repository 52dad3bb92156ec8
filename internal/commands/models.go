package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/manifoldco/promptui"
	"github.com/schollz/progressbar/v3"

	"github.com/urfave/cli"

	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/mask"
	"github.com/facemask/facemask/internal/segment"
	"github.com/facemask/facemask/internal/service"
	"github.com/facemask/facemask/pkg/fs"
)

// ModelsCommand registers the models cli command.
var ModelsCommand = cli.Command{
	Name:  "models",
	Usage: "Lists and downloads face segmentation models",
	Subcommands: []cli.Command{
		{
			Name:   "ls",
			Usage:  "lists the known segmentation models",
			Action: modelsLsAction,
		},
		{
			Name:      "pull",
			Usage:     "downloads segmentation model files",
			ArgsUsage: "[name...]",
			Action:    modelsPullAction,
		},
		{
			Name:   "purge",
			Usage:  "removes downloaded segmentation model files",
			Action: modelsPurgeAction,
		},
	},
}

// modelsLsAction lists the known segmentation models and their local state.
func modelsLsAction(ctx *cli.Context) error {
	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	if err := conf.Init(); err != nil {
		return err
	}

	src := segment.NewSource(conf.ModelsPath(), conf.DownloadUrl())

	fmt.Printf("%-24s %-8s %-6s %s\n", "Model", "Family", "Input", "Cached")

	for _, k := range mask.Kinds() {
		if !k.IsLearned() {
			continue
		}

		m, err := segment.ModelByName(k.ModelName())

		if err != nil {
			return err
		}

		cached := "no"

		if src.Cached(m) {
			size := fs.FileSize(filepath.Join(conf.ModelsPath(), m.FileName()))
			cached = humanize.Bytes(uint64(size))
		}

		fmt.Printf("%-24s %-8s %4dpx %s\n", m.Name, m.Family, m.Side, cached)
	}

	conf.Shutdown()

	return nil
}

// modelsPullAction downloads model files so builds can run offline.
func modelsPullAction(ctx *cli.Context) error {
	start := time.Now()

	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := conf.Init(); err != nil {
		return err
	}

	src := segment.NewSource(conf.ModelsPath(), conf.DownloadUrl())

	src.SetProgress(func(size int64, body io.Reader) io.Reader {
		bar := progressbar.DefaultBytes(size, "downloading")
		return io.TeeReader(body, bar)
	})

	names := ctx.Args()

	if len(names) == 0 {
		for _, k := range mask.Kinds() {
			if k.IsLearned() {
				names = append(names, k.ModelName())
			}
		}
	}

	pulled := 0

	for _, name := range names {
		m, err := segment.ModelByName(name)

		if err != nil {
			return err
		}

		if src.Cached(m) {
			log.Infof("models: %s is up to date", m.Name)
			continue
		}

		if _, err := src.ModelPath(m); err != nil {
			return err
		}

		pulled++
	}

	log.Infof("pulled %s in %s", english.Plural(pulled, "model", "models"), time.Since(start))

	conf.Shutdown()

	return nil
}

// modelsPurgeAction removes downloaded model files from the models path.
func modelsPurgeAction(ctx *cli.Context) error {
	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	if err := conf.Init(); err != nil {
		return err
	}

	confirm := promptui.Prompt{
		Label:     "Permanently remove all downloaded model files",
		IsConfirm: true,
	}

	if _, err := confirm.Run(); err != nil {
		log.Infof("purge canceled")
		conf.Shutdown()
		return nil
	}

	src := segment.NewSource(conf.ModelsPath(), conf.DownloadUrl())

	removed := 0

	for _, k := range mask.Kinds() {
		if !k.IsLearned() {
			continue
		}

		m, err := segment.ModelByName(k.ModelName())

		if err != nil {
			return err
		}

		if !src.Cached(m) {
			continue
		}

		fs.Remove(filepath.Join(conf.ModelsPath(), m.FileName()))
		removed++
	}

	log.Infof("removed %s", english.Plural(removed, "model file", "model files"))

	conf.Shutdown()

	return nil
}
