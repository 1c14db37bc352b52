// Package parse provides ready made converters from the text of a line
// to typed values, usable as an input.Parser.
//
// Numbers are base 10 and sized by their type argument, so
// Uint[uint8] rejects "300" as out of range. Text adapts any type
// implementing encoding.TextUnmarshaler. Expr evaluates integer
// expressions such as "6*7" or "0x10 + width" with Starlark.
package parse
