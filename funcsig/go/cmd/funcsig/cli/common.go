// Package cli implements the subcommands of the funcsig command.
package cli

import (
	"io"
	"os"

	"github.com/interviewkickstart/funcsig/funcsig/go/config"
	"github.com/urfave/cli/v2"
)

// flag names
const (
	configFlagName              = "config"
	allowUppercaseNamesFlagName = "allow_uppercase_names"
)

// commonCmd holds the flags shared by every subcommand.
type commonCmd struct {
	configFile          string
	allowUppercaseNames bool

	// out is where results are written. Nil means os.Stdout.
	out io.Writer
}

func (cmd *commonCmd) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        configFlagName,
			Value:       "",
			Usage:       "JSON config file. Defaults apply if empty.",
			Destination: &cmd.configFile,
		},
		&cli.BoolFlag{
			Name:        allowUppercaseNamesFlagName,
			Value:       false,
			Usage:       "Allow upper case letters in function and argument names.",
			Destination: &cmd.allowUppercaseNames,
		},
	}
}

// loadConfig loads the config file and applies the flags on top of it.
func (cmd *commonCmd) loadConfig(cliCtx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(cliCtx.Context, cmd.configFile)
	if err != nil {
		return nil, err
	}
	if cmd.allowUppercaseNames {
		cfg.AllowUppercaseNames = true
	}
	return cfg, nil
}

func (cmd *commonCmd) writer() io.Writer {
	if cmd.out == nil {
		return os.Stdout
	}
	return cmd.out
}
