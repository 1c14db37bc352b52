package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/input/input"
)

func doRun(args []string, stdin string) (code int, stdout string, stderr string) {
	out := &bytes.Buffer{}
	errs := &bytes.Buffer{}
	code = run(append([]string{"ask"}, args...), strings.NewReader(stdin), out, errs)
	return code, out.String(), errs.String()
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := doRun([]string{"-p", "Name: "}, "Alice\n")
	assert.Equal(EXIT_OK, code)
	assert.Equal("Alice\n", stdout)
	assert.Equal("Name: ", stderr)

	code, stdout, stderr = doRun([]string{"-t", "int", "-l", "-p", "Port?"}, " 8080 \r\n")
	assert.Equal(EXIT_OK, code)
	assert.Equal("8080\n", stdout)
	assert.Equal("Port?\n", stderr)

	code, stdout, _ = doRun([]string{"-t", "expr"}, "6*7\n")
	assert.Equal(EXIT_OK, code)
	assert.Equal("42\n", stdout)

	code, stdout, _ = doRun([]string{"-t", "duration"}, "1m30s\n")
	assert.Equal(EXIT_OK, code)
	assert.Equal("1m30s\n", stdout)
}

func TestRun_Failures(t *testing.T) {
	assert := assert.New(t)

	code, stdout, stderr := doRun([]string{"-t", "uint"}, "-1\n")
	assert.Equal(EXIT_PARSE, code)
	assert.Empty(stdout)
	assert.Contains(stderr, "input parse: ")

	code, _, stderr = doRun([]string{"-t", "bool"}, "")
	assert.Equal(EXIT_EOF, code)
	assert.Equal("ask: end of input\n", stderr)

	code, _, stderr = doRun([]string{"-t", "int", "-v"}, "x\n")
	assert.Equal(EXIT_PARSE, code)
	assert.Contains(stderr, "ask: Parse failure")
}

func TestRun_Usage(t *testing.T) {
	assert := assert.New(t)

	code, _, stderr := doRun([]string{"-t", "complex"}, "")
	assert.Equal(EXIT_USAGE, code)
	assert.Contains(stderr, `Unknown type "complex"`)
	assert.Contains(stderr, "bool, duration, expr, float, int, string, uint")

	code, _, stderr = doRun([]string{"extra"}, "")
	assert.Equal(EXIT_USAGE, code)
	assert.Contains(stderr, "Unknown arguments: [extra]")

	code, _, _ = doRun([]string{"-bogus"}, "")
	assert.Equal(EXIT_USAGE, code)

	code, _, _ = doRun([]string{"-lang", "not a tag"}, "")
	assert.Equal(EXIT_USAGE, code)
}

func TestExitCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(EXIT_OK, exitCode(nil))
	assert.Equal(EXIT_EOF, exitCode(input.ErrEof))
	assert.Equal(EXIT_IO, exitCode(input.AsInputError(io.ErrClosedPipe)))
	assert.Equal(EXIT_PARSE, exitCode(fmt.Errorf("port: %w", &input.InputError{Kind: input.KindParse})))
}
