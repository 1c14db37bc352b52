package parse

import (
	"encoding"
	"strconv"
	"strings"
	"time"
	"unsafe"
)

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating is the set of floating point types.
type Floating interface {
	~float32 | ~float64
}

// bitSize of T, as expected by the strconv.Parse functions.
func bitSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// String returns text unchanged.
func String(text string) (string, error) {
	return text, nil
}

// Int parses a base 10 signed integer that fits in T.
func Int[T Signed](text string) (value T, err error) {
	n, err := strconv.ParseInt(text, 10, bitSize[T]())
	if err != nil {
		return
	}
	value = T(n)
	return
}

// Uint parses a base 10 unsigned integer that fits in T.
func Uint[T Unsigned](text string) (value T, err error) {
	n, err := strconv.ParseUint(text, 10, bitSize[T]())
	if err != nil {
		return
	}
	value = T(n)
	return
}

// Float parses a floating point number with the precision of T.
func Float[T Floating](text string) (value T, err error) {
	n, err := strconv.ParseFloat(text, bitSize[T]())
	if err != nil {
		return
	}
	value = T(n)
	return
}

// Bool accepts the spellings of strconv.ParseBool.
func Bool(text string) (bool, error) {
	return strconv.ParseBool(text)
}

// Duration parses a time.ParseDuration string such as "1m30s".
func Duration(text string) (time.Duration, error) {
	return time.ParseDuration(text)
}

// Text parses any type whose pointer implements encoding.TextUnmarshaler:
//
//	addr, err := input.Prompt(parse.Text[netip.Addr], "Address: ")
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](text string) (value T, err error) {
	err = PT(&value).UnmarshalText([]byte(text))
	return
}

// Fields splits text on white space and converts each field with elem.
// Blank text yields an empty list.
func Fields[T any](elem func(text string) (T, error)) func(text string) ([]T, error) {
	return func(text string) (values []T, err error) {
		fields := strings.Fields(text)
		values = make([]T, 0, len(fields))
		for index, field := range fields {
			var value T
			value, err = elem(field)
			if err != nil {
				return nil, &ErrField{Index: index, Field: field, Err: err}
			}
			values = append(values, value)
		}
		return
	}
}
