// Package config holds the configuration of the funcsig command and server.
package config

import (
	"bytes"
	"context"
	_ "embed" // For embed functionality.
	"encoding/json"
	"os"

	"github.com/interviewkickstart/funcsig/funcsig/go/signature"
	"github.com/interviewkickstart/funcsig/funcsig/go/types"
	"github.com/interviewkickstart/funcsig/go/jsonschema"
	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/interviewkickstart/funcsig/go/sklog"
)

// schema is a json schema for Config, it is created by running go generate
// on ./generate/main.go.
//
//go:embed schema.json
var schema []byte

const (
	// DefaultCacheSize is the number of parsed signatures kept in memory.
	DefaultCacheSize = 1024

	// DefaultWorkers is the number of problem files validated at once.
	DefaultWorkers = 8
)

// Config controls how signatures are parsed and how many resources are used
// doing it.
type Config struct {
	// AllowUppercaseNames lets function and argument names contain upper case
	// letters.
	AllowUppercaseNames bool `json:"allow_uppercase_names,omitempty"`

	// MaxTypeDepth limits how deeply composite types may nest. Zero means the
	// parser default.
	MaxTypeDepth int `json:"max_type_depth,omitempty" jsonschema:"minimum=0"`

	// CacheSize is the number of parse results the server remembers.
	CacheSize int `json:"cache_size,omitempty" jsonschema:"minimum=0"`

	// Workers is how many problem files are validated concurrently.
	Workers int `json:"workers,omitempty" jsonschema:"minimum=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxTypeDepth: types.MaxNestingDepth,
		CacheSize:    DefaultCacheSize,
		Workers:      DefaultWorkers,
	}
}

// Parse decodes a JSON document after checking it against the schema. Values
// missing from the document keep their defaults.
func Parse(ctx context.Context, document []byte) (*Config, error) {
	validationErrors, err := jsonschema.Validate(ctx, document, schema)
	if err != nil {
		for _, v := range validationErrors {
			sklog.Error(v)
		}
		return nil, skerr.Wrapf(err, "config does not match the schema")
	}
	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(document))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, skerr.Wrapf(err, "failed to decode JSON in config file")
	}
	return cfg, nil
}

// Load reads the config from filename, or returns Default() if filename is
// empty.
func Load(ctx context.Context, filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	document, err := os.ReadFile(filename)
	if err != nil {
		return nil, skerr.Wrapf(err, "reading config %s", filename)
	}
	cfg, err := Parse(ctx, document)
	if err != nil {
		return nil, skerr.Wrapf(err, "loading config %s", filename)
	}
	return cfg, nil
}

// Schema returns the JSON Schema that config files are validated against.
func Schema() []byte {
	return append([]byte(nil), schema...)
}

// Options returns the parser options described by the config.
func (c *Config) Options() signature.Options {
	return signature.Options{
		AllowUppercaseNames: c.AllowUppercaseNames,
		MaxTypeDepth:        c.MaxTypeDepth,
	}
}
