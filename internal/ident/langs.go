package ident

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Langs returns the user's preferred languages, most preferred first,
// from the usual locale environment variables.
func (r *Resolver) Langs() ([]language.Tag, error) {
	for _, key := range []string{"LANGUAGE", "LC_ALL", "LANG"} {
		if tags := parseLocales(os.Getenv(key)); len(tags) > 0 {
			return tags, nil
		}
	}
	return nil, ErrUnavailable
}

// parseLocales parses a colon-separated locale list ("en_US.UTF-8:fr_FR")
// into BCP 47 tags. The C and POSIX locales carry no language and are
// skipped, as is anything that does not parse.
func parseLocales(raw string) []language.Tag {
	var tags []language.Tag

	for _, locale := range strings.Split(raw, ":") {
		locale = strings.TrimSpace(locale)

		// Strip encoding and modifier suffixes: en_US.UTF-8@euro
		if i := strings.IndexAny(locale, ".@"); i >= 0 {
			locale = locale[:i]
		}
		if locale == "" || locale == "C" || locale == "POSIX" {
			continue
		}

		tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}
