package parse

import (
	"github.com/ezrec/input/translate"
)

var f = translate.From

// ErrExpression is returned when text is not an integer expression.
type ErrExpression struct {
	Expr string
	Err  error // Starlark error, nil if the result was not an integer.
}

func (err *ErrExpression) Error() string {
	if err.Err == nil {
		return f("'%v' is not an integer expression", err.Expr)
	}
	return f("'%v' is not an integer expression: %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrField locates the failing element of a whitespace separated list.
type ErrField struct {
	Index int    // Zero based position of the field.
	Field string // Text of the field.
	Err   error
}

func (err *ErrField) Error() string {
	return f("field %d '%v' %v", err.Index+1, err.Field, err.Err)
}

func (err *ErrField) Unwrap() error {
	return err.Err
}
