package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/interviewkickstart/funcsig/funcsig/go/config"
	"github.com/interviewkickstart/funcsig/funcsig/go/signature"
	"github.com/interviewkickstart/funcsig/go/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, set.Parse(args))
	cliCtx := cli.NewContext(nil, set, nil)
	cliCtx.Context = context.Background()
	return cliCtx
}

func TestCommands_Names(t *testing.T) {
	assert.Equal(t, "parse", ParseCommand().Name)
	assert.Equal(t, "validate", ValidateCommand().Name)
	assert.Equal(t, "schema", SchemaCommand().Name)
	assert.Equal(t, "serve", ServeCommand().Name)
}

func TestParseCommand_action_argsPrintedCanonically(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd{commonCmd: commonCmd{out: &out}}
	err := cmd.action(newContext(t, "int32  fun1(a:int32 , b:  int32)", "list[ char ] f()"))
	require.NoError(t, err)
	assert.Equal(t, "int32 fun1(a:int32, b:int32)\nlist[char] f()\n", out.String())
}

func TestParseCommand_action_stdinAndJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd{
		commonCmd: commonCmd{out: &out},
		json:      true,
		in:        strings.NewReader("\nbool f(x:str)\n\n"),
	}
	require.NoError(t, cmd.action(newContext(t)))

	var d signature.Dict
	require.NoError(t, json.Unmarshal(out.Bytes(), &d))
	assert.Equal(t, "f", d.Name)
	require.Len(t, d.Args, 1)
	assert.Equal(t, "str", d.Args[0].Type.Name)
}

func TestParseCommand_action_invalidSignatureFails(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd{commonCmd: commonCmd{out: &out}}
	err := cmd.action(newContext(t, "int32 X(y:int32)", "int32 f()"))
	require.Error(t, err)
	assert.ErrorIs(t, err, signature.ErrInvalidName)
	assert.Contains(t, out.String(), `INVALID invalid_name "int32 X(y:int32)": Invalid function name: X`)
	assert.Contains(t, out.String(), "int32 f()\n")
}

func TestParseCommand_action_uppercaseFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := parseCmd{commonCmd: commonCmd{out: &out, allowUppercaseNames: true}}
	require.NoError(t, cmd.action(newContext(t, "int32 X(y:int32)")))
	assert.Equal(t, "int32 X(y:int32)\n", out.String())
}

func TestParseCommand_action_badConfigFails(t *testing.T) {
	cmd := parseCmd{commonCmd: commonCmd{configFile: testutils.TestDataFilename(t, "missing.json")}}
	require.Error(t, cmd.action(newContext(t, "int32 f()")))
}

func TestValidateCommand_action_noArgs_fails(t *testing.T) {
	cmd := validateCmd{}
	require.Error(t, cmd.action(newContext(t)))
}

func TestValidateCommand_action_directory(t *testing.T) {
	var out bytes.Buffer
	cmd := validateCmd{commonCmd: commonCmd{out: &out}}
	err := cmd.action(newContext(t, testutils.TestDataFilename(t, "problems")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 problem files are invalid")
	assert.Contains(t, out.String(), "FAIL ")
	assert.Contains(t, out.String(), "OK   ")
}

func TestValidateCommand_action_configAllowsUppercase(t *testing.T) {
	var out bytes.Buffer
	cmd := validateCmd{commonCmd: commonCmd{
		out:        &out,
		configFile: testutils.TestDataFilename(t, "uppercase.json"),
	}}
	require.NoError(t, cmd.action(newContext(t, testutils.TestDataFilename(t, "problems"))))
	assert.Contains(t, out.String(), "int32 countNodes(head:SinglyLinkedListNode[int32])")
}

func TestValidateCommand_action_missingPath_fails(t *testing.T) {
	cmd := validateCmd{}
	require.Error(t, cmd.action(newContext(t, testutils.TestDataFilename(t, "nope"))))
}

func TestSchemaCommand_action(t *testing.T) {
	var out bytes.Buffer
	cmd := schemaCmd{commonCmd: commonCmd{out: &out}}
	require.NoError(t, cmd.action(newContext(t)))
	assert.Equal(t, string(config.Schema()), out.String())
}

func TestServeCommand_flags(t *testing.T) {
	cmd := serveCmd{}
	var names []string
	for _, f := range cmd.flags() {
		names = append(names, f.Names()[0])
	}
	assert.Equal(t, []string{portFlagName, promPortFlagName, configFlagName, allowUppercaseNamesFlagName}, names)
}

func TestServeCommand_action_cancelledContext_ShutsDownCleanly(t *testing.T) {
	cliCtx := newContext(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cliCtx.Context = ctx

	cmd := serveCmd{port: "127.0.0.1:0", promPort: "127.0.0.1:0"}
	done := make(chan error, 1)
	go func() {
		done <- cmd.action(cliCtx)
	}()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		require.FailNow(t, "serve did not stop after the context was cancelled")
	}
}
