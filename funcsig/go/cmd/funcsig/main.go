// funcsig parses and validates the function signatures of coding problems.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/interviewkickstart/funcsig/funcsig/go/cmd/funcsig/cli"
	"github.com/interviewkickstart/funcsig/go/sklog"
	urfavecli "github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := &urfavecli.App{
		Name:        "funcsig",
		Description: "funcsig parses and validates coding problem function signatures.",
		Commands: []*urfavecli.Command{
			cli.ParseCommand(),
			cli.ValidateCommand(),
			cli.SchemaCommand(),
			cli.ServeCommand(),
		},
	}
	if err := app.RunContext(ctx, os.Args); err != nil {
		sklog.Fatal(err)
	}
}
