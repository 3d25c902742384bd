package cli

import (
	"fmt"
	"os"

	"github.com/interviewkickstart/funcsig/funcsig/go/problems"
	"github.com/interviewkickstart/funcsig/funcsig/go/sigcache"
	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/urfave/cli/v2"
)

// validateCmd checks the function signature of every problem definition
// file named on the command line. Directories are searched recursively.
type validateCmd struct {
	commonCmd
}

// ValidateCommand returns a [*cli.Command] that validates problem files.
func ValidateCommand() *cli.Command {
	cmd := &validateCmd{}
	return &cli.Command{
		Name:        "validate",
		Description: "validate checks the function signatures of problem definition files.",
		Usage:       "funcsig validate <file or directory> ...",
		Flags:       cmd.flags(),
		Action:      cmd.action,
	}
}

func (cmd *validateCmd) paths(cliCtx *cli.Context) ([]string, error) {
	var ret []string
	for _, arg := range cliCtx.Args().Slice() {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, skerr.Wrap(err)
		}
		if !fi.IsDir() {
			ret = append(ret, arg)
			continue
		}
		files, err := problems.FindFiles(arg)
		if err != nil {
			return nil, err
		}
		ret = append(ret, files...)
	}
	return ret, nil
}

func (cmd *validateCmd) action(cliCtx *cli.Context) error {
	if cliCtx.NArg() == 0 {
		return skerr.Fmt("please provide at least one problem file or directory")
	}
	cfg, err := cmd.loadConfig(cliCtx)
	if err != nil {
		return err
	}
	paths, err := cmd.paths(cliCtx)
	if err != nil {
		return err
	}
	cache, err := sigcache.New("validate", cfg.CacheSize)
	if err != nil {
		return err
	}

	results, err := problems.ValidateFiles(cliCtx.Context, paths, problems.Options{
		Signature: cfg.Options(),
		Workers:   cfg.Workers,
		Parser:    cache,
	})
	if results == nil {
		return err
	}
	w := cmd.writer()
	for _, r := range results {
		var werr error
		if r.Err != nil {
			_, werr = fmt.Fprintf(w, "FAIL %s: %s\n", r.Path, r.Err)
		} else {
			_, werr = fmt.Fprintf(w, "OK   %s: %s\n", r.Path, r.Signature)
		}
		if werr != nil {
			return skerr.Wrap(werr)
		}
	}
	if err != nil {
		return skerr.Fmt("%d of %d problem files are invalid", countFailures(results), len(results))
	}
	return nil
}

func countFailures(results []problems.Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
