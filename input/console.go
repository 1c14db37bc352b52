package input

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
)

// Console pairs the line oriented input a value is read from with the
// output its prompt is shown on.
//
// The buffered Input belongs to the Console, so bytes read ahead of the
// current line are kept for the next call.
type Console struct {
	Input  *bufio.Reader
	Output io.Writer
}

// NewConsole creates a Console reading from in and prompting on out.
// A nil out discards prompts.
func NewConsole(in io.Reader, out io.Writer) *Console {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}

	if out == nil {
		out = io.Discard
	}

	return &Console{Input: br, Output: out}
}

var (
	stdioOnce sync.Once
	stdio     *Console
)

// Stdio returns the Console for the process' standard input and output.
func Stdio() *Console {
	stdioOnce.Do(func() {
		if stdio == nil {
			stdio = NewConsole(os.Stdin, os.Stdout)
		}
	})
	return stdio
}

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// show writes the prompt and flushes it, so that it is visible before
// the read blocks.
func (con *Console) show(prompt string, style PrintStyle) (err error) {
	if style == NewLine {
		prompt += "\n"
	}

	_, err = io.WriteString(con.Output, prompt)
	if err != nil {
		return newIoError(err)
	}

	if fl, ok := con.Output.(flusher); ok {
		err = fl.Flush()
		if err != nil {
			return newIoError(err)
		}
	}

	return nil
}

// readLine reads a single line, including a final unterminated one,
// and trims it.
func (con *Console) readLine() (line string, err error) {
	line, err = con.Input.ReadString('\n')
	switch {
	case err == io.EOF && len(line) == 0:
		return "", ErrEof
	case err == io.EOF:
		err = nil
	case err != nil:
		return "", newIoError(err)
	}

	// Drops the "\n" or "\r\n" terminator together with any
	// surrounding blanks.
	return strings.TrimSpace(line), nil
}
