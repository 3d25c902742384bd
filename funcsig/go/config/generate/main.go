// Program to generate JSON Schema definitions for the Config struct.
//
//go:generate go run .
package main

import (
	"github.com/interviewkickstart/funcsig/funcsig/go/config"
	"github.com/interviewkickstart/funcsig/go/jsonschema"
)

func main() {
	jsonschema.GenerateSchema("../schema.json", &config.Config{})
}
