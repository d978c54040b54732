package i18n

import (
	"errors"
	"log"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"localekit/internal/domain/entities"
	"localekit/internal/ports/output"
)

// Ensure Translator implements the output.Translator port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, fed from
// loaded translation tables.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator over the given tables using defaultLocale
// (e.g. "en_US") as the fallback language. Tables whose locale cannot be
// parsed as a language tag are logged and skipped.
func NewTranslator(defaultLocale string, tables []entities.Table) *Translator {
	tag, err := language.Parse(tagFor(defaultLocale))
	if err != nil {
		tag = language.AmericanEnglish
	}
	bundle := i18n.NewBundle(tag)

	for _, table := range tables {
		tableTag, err := language.Parse(tagFor(table.Locale))
		if err != nil {
			log.Printf("i18n: skipping table %s: %v", table.Locale, err)
			continue
		}
		messages := make([]*i18n.Message, 0, len(table.Messages))
		for key, value := range table.Messages {
			messages = append(messages, &i18n.Message{ID: key, Other: value})
		}
		if err := bundle.AddMessages(tableTag, messages...); err != nil {
			log.Printf("i18n: failed to add messages for %s: %v", table.Locale, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, tagFor(locale))
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		// go-i18n still renders the default language's message when the
		// requested one lacks the ID, reporting MessageNotFoundErr alongside.
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg
		}
		log.Printf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}

// tagFor maps a locale identifier like "en_US" onto BCP 47 shape. The
// identifier itself stays underscore-shaped everywhere else.
func tagFor(locale string) string {
	return strings.ReplaceAll(locale, "_", "-")
}
