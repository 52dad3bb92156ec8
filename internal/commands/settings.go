package commands

import (
	"fmt"

	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"

	"github.com/facemask/facemask/internal/config"
	"github.com/facemask/facemask/internal/service"
)

// SettingsCommand registers the settings cli command.
var SettingsCommand = cli.Command{
	Name:   "settings",
	Usage:  "Displays the current settings",
	Action: settingsAction,
}

// settingsAction prints the effective settings as yaml.
func settingsAction(ctx *cli.Context) error {
	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	if err := conf.Init(); err != nil {
		return err
	}

	out, err := yaml.Marshal(conf.Settings())

	if err != nil {
		return err
	}

	fmt.Printf("# %s\n\n%s\n", conf.SettingsFile(), out)

	conf.Shutdown()

	return nil
}
