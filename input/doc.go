// Package input reads a line of interactive text, optionally after
// showing a prompt, and converts it to a typed value.
//
//	name, err := input.ReadString("Enter your name: ")
//	age, err := input.Prompt(parse.Uint[uint8], "Enter your age: ")
//
// Every failure is an *InputError of one of three kinds: the input
// ended (KindEof), the terminal could not be read or written (KindIo),
// or the line was not a valid value (KindParse). Nothing is retried or
// logged; deciding whether to prompt again is up to the caller.
package input
