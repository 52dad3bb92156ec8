/*

FaceMask generates training masks for aligned face crops.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/facemask/facemask/internal/commands"
	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/event"
)

var version = "development"

var log = event.Log

func main() {
	app := cli.NewApp()
	app.Name = "FaceMask"
	app.Usage = "Generates training masks for aligned face crops"
	app.Version = version
	app.EnableBashCompletion = true
	app.Flags = config.GlobalFlags

	app.Commands = []cli.Command{
		commands.BuildCommand,
		commands.PurgeCommand,
		commands.MasksCommand,
		commands.ModelsCommand,
		commands.KindsCommand,
		commands.SettingsCommand,
		commands.VersionCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
