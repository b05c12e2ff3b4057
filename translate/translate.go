// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user facing messages for the m6502 tools
// in the language of the user's locale.
package translate

import (
	"errors"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("m6502: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{language.AmericanEnglish.String()}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Error creates a new error from a translated en-US Sprintf() format.
func Error(key message.Reference, args ...any) error {
	return errors.New(From(key, args...))
}
