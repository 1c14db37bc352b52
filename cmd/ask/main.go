// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command ask reads one typed value from standard input and prints it,
// so that shell scripts can prompt for validated values:
//
//	port=$(ask -t uint -p "Port: ") || exit
//
// Prompts go to standard error, leaving standard output for the value.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/ezrec/input/input"
	"github.com/ezrec/input/parse"
	"github.com/ezrec/input/translate"
)

// Exit codes, one per failure kind.
const (
	EXIT_OK    = 0
	EXIT_PARSE = 1
	EXIT_IO    = 2
	EXIT_EOF   = 3
	EXIT_USAGE = 64
)

type reader func(con *input.Console, prompt string, style input.PrintStyle) (any, error)

func read[T any](parse input.Parser[T]) reader {
	return func(con *input.Console, prompt string, style input.PrintStyle) (any, error) {
		return input.ReadFrom(con, prompt, style, parse)
	}
}

var readers = map[string]reader{
	"string":   read(parse.String),
	"int":      read(parse.Int[int64]),
	"uint":     read(parse.Uint[uint64]),
	"float":    read(parse.Float[float64]),
	"bool":     read(parse.Bool),
	"duration": read(parse.Duration),
	"expr":     read(parse.Expr),
}

func types() string {
	names := make([]string, 0, len(readers))
	for name := range readers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// exitCode maps a read-and-parse failure to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return EXIT_OK
	case input.IsEof(err):
		return EXIT_EOF
	case input.IsParse(err):
		return EXIT_PARSE
	default:
		return EXIT_IO
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	var kind string
	var prompt string
	var newline bool
	var lang string
	var verbose bool

	name := "ask"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}
	logger := log.New(stderr, "", 0)

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&kind, "t", "string", "Type of value: "+types())
	flags.StringVar(&prompt, "p", "", "Prompt to show before reading")
	flags.BoolVar(&newline, "l", false, "Show the prompt on its own line")
	flags.StringVar(&lang, "lang", "", "Message language (BCP 47 tag), default from the environment")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err := flags.Parse(args)
	if err != nil {
		return EXIT_USAGE
	}

	if flags.NArg() != 0 {
		logger.Printf("%v: Unknown arguments: %v", name, flags.Args())
		return EXIT_USAGE
	}

	readValue, ok := readers[kind]
	if !ok {
		logger.Printf("%v: Unknown type %q, expected one of: %v", name, kind, types())
		return EXIT_USAGE
	}

	if len(lang) != 0 {
		err = translate.SetLanguage(lang)
		if err != nil {
			logger.Printf("%v: -lang %v: %v", name, lang, err)
			return EXIT_USAGE
		}
	}

	style := input.Continue
	if newline {
		style = input.NewLine
	}

	con := input.NewConsole(stdin, stderr)
	value, err := readValue(con, prompt, style)
	if err != nil {
		if verbose {
			var ie *input.InputError
			if errors.As(err, &ie) {
				logger.Printf("%v: %v failure (%v)", name, ie.Kind, translate.Language())
			}
		}
		logger.Printf("%v: %v", name, err)
		return exitCode(err)
	}

	if verbose {
		logger.Printf("%v: read %v %#v", name, kind, value)
	}

	_, err = fmt.Fprintln(stdout, value)
	if err != nil {
		logger.Printf("%v: %v", name, err)
		return EXIT_IO
	}

	return EXIT_OK
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
