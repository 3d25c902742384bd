package cli

import (
	"github.com/interviewkickstart/funcsig/funcsig/go/config"
	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/urfave/cli/v2"
)

// schemaCmd prints the JSON Schema of the config file.
type schemaCmd struct {
	commonCmd
}

// SchemaCommand returns a [*cli.Command] that prints the config file schema.
func SchemaCommand() *cli.Command {
	cmd := &schemaCmd{}
	return &cli.Command{
		Name:        "schema",
		Description: "schema prints the JSON Schema that --config files must match.",
		Usage:       "funcsig schema",
		Action:      cmd.action,
	}
}

func (cmd *schemaCmd) action(cliCtx *cli.Context) error {
	_, err := cmd.writer().Write(config.Schema())
	return skerr.Wrap(err)
}
