// Package problems loads coding problem definition files and validates the
// function signatures they declare.
package problems

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/interviewkickstart/funcsig/funcsig/go/signature"
	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/interviewkickstart/funcsig/go/sklog"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"
)

// DefaultWorkers is the number of files validated in parallel when
// Options.Workers is not positive.
const DefaultWorkers = 8

// Problem is a problem definition file. Both YAML and JSON are accepted.
type Problem struct {
	// Name is the problem slug, e.g. "two_sum".
	Name string `json:"name"`

	// FunctionSignature is the declaration of the solution function, e.g.
	// "list[int32] two_sum(numbers:list[int32], target:int32)".
	FunctionSignature string `json:"function_signature"`
}

// Parser parses function signatures. *sigcache.Cache implements it.
type Parser interface {
	Parse(text string, opts signature.Options) (*signature.Signature, error)
}

type directParser struct{}

func (directParser) Parse(text string, opts signature.Options) (*signature.Signature, error) {
	return signature.ParseWithOptions(text, opts)
}

// Options for ValidateFiles.
type Options struct {
	// Signature is passed along to every parse.
	Signature signature.Options

	// Workers limits how many files are read and parsed at once.
	Workers int

	// Parser is used instead of signature.ParseWithOptions if set.
	Parser Parser
}

// Result is the outcome of validating one file.
type Result struct {
	Path string

	// Problem is nil if the file could not be loaded.
	Problem *Problem

	// Signature is nil if Err is set.
	Signature *signature.Signature

	Err error
}

// Load reads and decodes the problem definition at path.
func Load(path string) (*Problem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, skerr.Wrapf(err, "reading %s", path)
	}
	var p Problem
	if err := yaml.UnmarshalStrict(b, &p); err != nil {
		return nil, skerr.Wrapf(err, "decoding %s", path)
	}
	if p.Name == "" {
		return nil, skerr.Fmt("%s: missing name", path)
	}
	if strings.TrimSpace(p.FunctionSignature) == "" {
		return nil, skerr.Fmt("%s: missing function_signature", path)
	}
	return &p, nil
}

// Validate loads path and parses its function signature.
func Validate(path string, opts Options) Result {
	parser := opts.Parser
	if parser == nil {
		parser = directParser{}
	}
	ret := Result{Path: path}
	p, err := Load(path)
	if err != nil {
		ret.Err = err
		return ret
	}
	ret.Problem = p
	sig, err := parser.Parse(p.FunctionSignature, opts.Signature)
	if err != nil {
		ret.Err = skerr.Wrapf(err, "%s: problem %s", path, p.Name)
		return ret
	}
	ret.Signature = sig
	return ret
}

// ValidateFiles validates every file in paths concurrently. The results are
// in the same order as paths. The returned error combines the errors of all
// failed files, or is the context's error if ctx was cancelled first.
func ValidateFiles(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Validate(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, skerr.Wrap(err)
	}

	var errs *multierror.Error
	for _, r := range results {
		if r.Err != nil {
			sklog.Debugf("Invalid problem file: %s", r.Err)
			errs = multierror.Append(errs, r.Err)
		}
	}
	return results, errs.ErrorOrNil()
}

// isProblemFile returns true for the file extensions Load understands.
func isProblemFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// FindFiles returns every problem definition file under dir, in lexical
// order.
func FindFiles(dir string) ([]string, error) {
	var ret []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isProblemFile(path) {
			ret = append(ret, path)
		}
		return nil
	})
	if err != nil {
		return nil, skerr.Wrapf(err, "walking %s", dir)
	}
	return ret, nil
}
