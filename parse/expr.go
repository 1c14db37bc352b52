package parse

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Upper bound on Starlark steps for one expression, so that a
// comprehension over a huge range cannot hang the prompt.
const exprMaxSteps = 100000

// Expr evaluates text as an integer expression, e.g. "6*7" or "0x10 | 1".
func Expr(text string) (int64, error) {
	return eval(text, nil)
}

// ExprWith returns an expression parser with names predeclared as
// integer constants.
func ExprWith(names map[string]int64) func(text string) (int64, error) {
	pred := starlark.StringDict{}
	for key, value := range names {
		pred[key] = starlark.MakeInt64(value)
	}
	pred.Freeze()

	return func(text string) (int64, error) {
		return eval(text, pred)
	}
}

func eval(expr string, pred starlark.StringDict) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(exprMaxSteps)
	opts := syntax.FileOptions{}

	st_rc, err := starlark.EvalOptions(&opts, &thread, "expr", expr, pred)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}

	return
}
