package input

import (
	"fmt"
)

// Parser converts the text of a trimmed line into a value of type T.
//
// Any func(string) (T, error) is a Parser, e.g. strconv.Atoi or the
// functions of package parse.
type Parser[T any] func(text string) (T, error)

// PrintStyle selects how a prompt is shown.
type PrintStyle int

//go:generate go tool stringer -type=PrintStyle
const (
	Continue = PrintStyle(0) // Prompt is shown as given.
	NewLine  = PrintStyle(1) // Prompt is followed by a newline.
)

// ReadFrom shows prompt on con (unless it is empty), reads one line,
// and converts it with parse.
//
// Errors are always an *InputError:
//   - KindEof if the input ended before any byte of a line was read.
//   - KindIo if writing the prompt, flushing it, or reading failed.
//     No partial line is parsed.
//   - KindParse if parse rejected the line. Err is parse's error.
//
// A line of only blanks is passed to parse as "".
// ReadFrom performs exactly one line read and at most one parse.
func ReadFrom[T any](con *Console, prompt string, style PrintStyle, parse Parser[T]) (value T, err error) {
	if len(prompt) != 0 {
		err = con.show(prompt, style)
		if err != nil {
			return
		}
	}

	line, err := con.readLine()
	if err != nil {
		return
	}

	value, err = parse(line)
	if err != nil {
		var zero T
		return zero, newParseError(err)
	}

	return
}

// Read reads a value from standard input without a prompt.
func Read[T any](parse Parser[T]) (T, error) {
	return ReadFrom(Stdio(), "", Continue, parse)
}

// Prompt shows prompt on standard output, with no newline added, and
// reads a value from standard input.
func Prompt[T any](parse Parser[T], prompt string) (T, error) {
	return ReadFrom(Stdio(), prompt, Continue, parse)
}

// Promptf is Prompt with a fmt.Sprintf formatted prompt.
func Promptf[T any](parse Parser[T], format string, args ...any) (T, error) {
	return ReadFrom(Stdio(), fmt.Sprintf(format, args...), Continue, parse)
}

// Promptln shows prompt on its own line before reading a value from
// standard input.
func Promptln[T any](parse Parser[T], prompt string) (T, error) {
	return ReadFrom(Stdio(), prompt, NewLine, parse)
}

// Promptlnf is Promptln with a fmt.Sprintf formatted prompt.
func Promptlnf[T any](parse Parser[T], format string, args ...any) (T, error) {
	return ReadFrom(Stdio(), fmt.Sprintf(format, args...), NewLine, parse)
}

// ReadString reads a trimmed line from standard input, after showing
// prompt if it is not empty.
func ReadString(prompt string) (string, error) {
	return ReadFrom(Stdio(), prompt, Continue, func(text string) (string, error) {
		return text, nil
	})
}
