package input

import (
	"errors"
	"io"

	"github.com/ezrec/input/translate"
)

var f = translate.From

// Kind classifies why a read-and-parse call failed.
type Kind int

//go:generate go tool stringer -type=Kind -trimprefix=Kind
const (
	KindEof   = Kind(0) // No further input was available.
	KindIo    = Kind(1) // Reading the line or showing the prompt failed.
	KindParse = Kind(2) // The line was read but could not be converted.
)

// InputError is the only error type returned by ReadFrom and the
// call forms built on it.
type InputError struct {
	Kind Kind  // Which of the three failures this is.
	Err  error // Originating error. io.EOF for KindEof.
}

var (
	// ErrEof is returned when the input ends before a line is read.
	ErrEof = &InputError{Kind: KindEof, Err: io.EOF}

	// ErrIo and ErrParse only serve as errors.Is targets.
	ErrIo    = &InputError{Kind: KindIo}
	ErrParse = &InputError{Kind: KindParse}
)

func newIoError(err error) *InputError {
	return &InputError{Kind: KindIo, Err: err}
}

func newParseError(err error) *InputError {
	return &InputError{Kind: KindParse, Err: err}
}

func (err *InputError) Error() string {
	switch {
	case err.Kind == KindEof:
		return f("end of input")
	case err.Kind == KindIo && err.Err != nil:
		return f("input i/o: %v", err.Err)
	case err.Kind == KindIo:
		return f("input i/o failed")
	case err.Kind == KindParse && err.Err != nil:
		return f("input parse: %v", err.Err)
	case err.Kind == KindParse:
		return f("input parse failed")
	}
	return f("input error %v", err.Kind)
}

func (err *InputError) Unwrap() error {
	return err.Err
}

// Is matches any *InputError of the same Kind, so that
// errors.Is(err, ErrParse) holds for every parse failure.
func (err *InputError) Is(target error) (ok bool) {
	other, ok := target.(*InputError)
	if !ok || other == nil {
		return false
	}
	return other.Kind == err.Kind
}

// AsInputError converts an error from an io.Reader or io.Writer into
// an *InputError. io.EOF becomes ErrEof, an *InputError anywhere in the
// chain is returned as is, and anything else is classified as KindIo.
func AsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var ie *InputError
	if errors.As(err, &ie) {
		return ie
	}

	if errors.Is(err, io.EOF) {
		return ErrEof
	}

	return newIoError(err)
}

// IsEof reports whether err is, or wraps, an end of input failure.
func IsEof(err error) bool {
	return errors.Is(err, ErrEof)
}

// IsIo reports whether err is, or wraps, an input or output failure.
func IsIo(err error) bool {
	return errors.Is(err, ErrIo)
}

// IsParse reports whether err is, or wraps, a conversion failure.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}
