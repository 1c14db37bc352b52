// Package translate formats user facing text for the locale of the person
// at the terminal. Every error message in this module is written in en-US
// Sprintf() form and passed through From.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer *message.Printer
	current language.Tag
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("input: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	use(message.MatchLanguage(locales...))
}

func use(tag language.Tag) {
	current = tag
	printer = message.NewPrinter(tag)
}

// SetLanguage overrides the locale detected from the environment.
// The tag is a BCP 47 language tag, e.g. "en-US" or "de".
func SetLanguage(tag string) (err error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return
	}

	use(message.MatchLanguage(parsed.String()))
	return
}

// Language returns the language messages are currently formatted for.
func Language() language.Tag {
	return current
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
