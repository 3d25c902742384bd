// Package jsonschema has utility functions for creating JSON Schema files from
// structs, and also for validating a JSON file against a schema.
//
// These can be used together to validate input JSON files. To add validation
// to a type, e.g. `config.Config`, create a sub-directory called `generate`
// holding a single application that uses go:generate to emit the schema file:
//
//	//go:generate go run .
//	package main
//
//	import (
//	  "github.com/interviewkickstart/funcsig/funcsig/go/config"
//	  "github.com/interviewkickstart/funcsig/go/jsonschema"
//	)
//
//	func main() {
//	  jsonschema.GenerateSchema("../schema.json", &config.Config{})
//	}
//
// Then embed the schema next to the type and validate documents against it:
//
//	//go:embed schema.json
//	var schema []byte
//
//	func Validate(ctx context.Context, document []byte) error {
//	  violations, err := jsonschema.Validate(ctx, document, schema)
//	  ...
//	}
package jsonschema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/interviewkickstart/funcsig/go/skerr"
	"github.com/interviewkickstart/funcsig/go/sklog"
	"github.com/interviewkickstart/funcsig/go/util"
	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation is returned from Validate if the document doesn't conform
// to the schema.
var ErrSchemaViolation = errors.New("schema violation")

// Validate returns nil if the document represents a JSON body that conforms to
// the schema. If err is ErrSchemaViolation then the slice of strings will
// contain a list of schema violations.
func Validate(ctx context.Context, document, schema []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, skerr.Wrapf(err, "failed while validating")
	}
	if len(result.Errors()) > 0 {
		formattedResults := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			formattedResults[i] = fmt.Sprintf("%d: %s", i, e.String())
		}
		return formattedResults, ErrSchemaViolation
	}
	return nil, nil
}

// Generate returns the indented JSON Schema for 'v'.
func Generate(v interface{}) ([]byte, error) {
	b, err := json.MarshalIndent(jsonschema.Reflect(v), "", "  ")
	if err != nil {
		return nil, skerr.Wrapf(err, "encoding schema")
	}
	return b, nil
}

// GenerateSchema writes the JSON Schema for 'v' into 'filename' and will exit
// via sklog.Fatal if any errors occur. This function is designed for use
// in an app you would run via go generate.
func GenerateSchema(filename string, v interface{}) {
	b, err := Generate(v)
	if err != nil {
		sklog.Fatal(err)
	}
	err = util.WithWriteFile(filename, func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
	if err != nil {
		sklog.Fatal(err)
	}
}
