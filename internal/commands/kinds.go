package commands

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/facemask/facemask/internal/mask"
)

// KindsCommand registers the kinds cli command.
var KindsCommand = cli.Command{
	Name:   "kinds",
	Usage:  "Lists the available mask kinds",
	Action: kindsAction,
}

// kindsAction lists the available mask kinds with their model requirements.
func kindsAction(ctx *cli.Context) error {
	for _, k := range mask.Kinds() {
		source := "landmarks"

		if k.IsLearned() {
			source = k.ModelName()
		} else if k == mask.KindNone {
			source = "constant"
		}

		if k == mask.Default() {
			fmt.Printf("%-12s %s (default)\n", k, source)
		} else {
			fmt.Printf("%-12s %s\n", k, source)
		}
	}

	return nil
}
