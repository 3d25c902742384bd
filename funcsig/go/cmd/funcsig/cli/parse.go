package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/interviewkickstart/funcsig/funcsig/go/signature"
	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/urfave/cli/v2"
)

const jsonFlagName = "json"

// parseCmd parses signatures given as arguments, or one per line on stdin if
// there are no arguments, and prints them in canonical or JSON form.
type parseCmd struct {
	commonCmd
	json bool

	// in replaces os.Stdin if set.
	in io.Reader
}

// ParseCommand returns a [*cli.Command] that parses function signatures.
func ParseCommand() *cli.Command {
	cmd := &parseCmd{}
	return &cli.Command{
		Name:        "parse",
		Description: "parse validates function signatures and prints their canonical form.",
		Usage:       "funcsig parse [--json] \"int32 f(x:int32)\" ...",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *parseCmd) flags() []cli.Flag {
	fl := []cli.Flag{
		&cli.BoolFlag{
			Name:        jsonFlagName,
			Value:       false,
			Usage:       "Print each signature as JSON instead of canonical text.",
			Destination: &cmd.json,
		},
	}
	return append(fl, cmd.commonCmd.flags()...)
}

func (cmd *parseCmd) inputs(cliCtx *cli.Context) ([]string, error) {
	if cliCtx.NArg() > 0 {
		return cliCtx.Args().Slice(), nil
	}
	in := cmd.in
	if in == nil {
		in = os.Stdin
	}
	var ret []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			ret = append(ret, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, skerr.Wrapf(err, "reading signatures")
	}
	return ret, nil
}

func (cmd *parseCmd) action(cliCtx *cli.Context) error {
	cfg, err := cmd.loadConfig(cliCtx)
	if err != nil {
		return err
	}
	texts, err := cmd.inputs(cliCtx)
	if err != nil {
		return err
	}
	opts := cfg.Options()
	w := cmd.writer()
	enc := json.NewEncoder(w)

	var errs *multierror.Error
	for _, text := range texts {
		sig, err := signature.ParseWithOptions(text, opts)
		if err != nil {
			kind, _ := signature.KindOf(err)
			if _, werr := fmt.Fprintf(w, "INVALID %s %q: %s\n", kind, text, err); werr != nil {
				return skerr.Wrap(werr)
			}
			errs = multierror.Append(errs, skerr.Wrapf(err, "%q", text))
			continue
		}
		if cmd.json {
			err = enc.Encode(sig)
		} else {
			_, err = fmt.Fprintln(w, sig.String())
		}
		if err != nil {
			return skerr.Wrap(err)
		}
	}
	return errs.ErrorOrNil()
}
