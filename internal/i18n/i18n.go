// Package i18n holds the message keys used in replies and the translations
// registered for them in the x/text default catalog. English keys double as
// the English text, so only non-English locales carry a catalog.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// ResolveTag maps a configured locale such as "zh-CN" onto a supported tag.
// The bool is false when the locale is unparsable or unsupported, in which
// case the default tag is returned.
func ResolveTag(locale string) (language.Tag, bool) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Default(), true
	}
	parsed, err := language.Parse(locale)
	if err != nil {
		return Default(), false
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default(), false
	}
	return supportedTags[idx], true
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
