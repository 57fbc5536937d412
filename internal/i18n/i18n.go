// Package i18n resolves the request language and supplies the localized UI
// text and filename words for English and Chinese.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"pdf-toolkit/internal/domain"
)

// Lang is a supported language code
type Lang string

const (
	English Lang = "en"
	Chinese Lang = "zh"
)

var (
	supportedTags  = []language.Tag{language.English, language.Chinese}
	supportedLangs = []Lang{English, Chinese}
	matcher        = language.NewMatcher(supportedTags)
)

// Localizer holds the message catalog and the fallback language
type Localizer struct {
	fallback Lang
	catalog  *catalog.Builder
}

// NewLocalizer builds the catalog. Unknown fallback values resolve to English.
func NewLocalizer(fallback string) *Localizer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		// SetString only fails for malformed tags; both tags are constants
		_ = b.SetString(language.English, e.key, e.en)
		_ = b.SetString(language.Chinese, e.key, e.zh)
	}

	l := &Localizer{fallback: English, catalog: b}
	if lang, ok := matchStrings(fallback); ok {
		l.fallback = lang
	}
	return l
}

// Fallback returns the language used when a request expresses no preference
func (l *Localizer) Fallback() Lang {
	return l.fallback
}

// Resolve picks the language for a request. An explicit choice (the lang
// query or form value) wins over the Accept-Language header.
func (l *Localizer) Resolve(explicit, acceptLanguage string) Lang {
	if lang, ok := matchStrings(explicit); ok {
		return lang
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if lang, ok := match(tags...); ok {
				return lang
			}
		}
	}
	return l.fallback
}

// Printer returns a printer bound to the catalog for lang
func (l *Localizer) Printer(lang Lang) *message.Printer {
	return message.NewPrinter(tagFor(lang), message.Catalog(l.catalog))
}

// Text translates key, formatting args into it
func (l *Localizer) Text(lang Lang, key string, args ...interface{}) string {
	return l.Printer(lang).Sprintf(key, args...)
}

// NameWords returns the filename vocabulary for lang
func (l *Localizer) NameWords(lang Lang) domain.NameWords {
	w := domain.EnglishWords
	return domain.NameWords{
		Merged:     raw(lang, w.Merged),
		Etc:        raw(lang, w.Etc),
		Rotated:    raw(lang, w.Rotated),
		Part:       raw(lang, w.Part),
		Compressed: raw(lang, w.Compressed),
		Page:       raw(lang, w.Page),
	}
}

// raw returns the translation of key without formatting it, so format verbs
// survive for the filename deriver.
func raw(lang Lang, key string) string {
	e, ok := entryByKey[key]
	if !ok {
		return key
	}
	if lang == Chinese {
		return e.zh
	}
	return e.en
}

func matchStrings(s string) (Lang, bool) {
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	return match(tag)
}

func match(tags ...language.Tag) (Lang, bool) {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return supportedLangs[idx], true
}

func tagFor(lang Lang) language.Tag {
	for i, l := range supportedLangs {
		if l == lang {
			return supportedTags[i]
		}
	}
	return language.English
}
