// Package i18n provides internationalization support for the invoice service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Unknown locales fall back to DefaultLocale and unknown keys to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Translatef translates key and formats the result with args.
func (t *Translator) Translatef(key, locale string, args ...any) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// Supported reports whether locale has its own message set.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the Accept-Language header of the
// request, falling back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "en-US,en;q=0.9,pt;q=0.8": only the first preference counts.
	first := strings.Split(acceptLang, ",")[0]
	lang := strings.TrimSpace(strings.Split(first, ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supported(lang) {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.invalid_id":           "Invoice id must be an integer",
		"error.internal_error":       "An unexpected error occurred",
		"error.not_found":            "Not found",
		"error.invoice_not_found":    "Invoice Not Found",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.conflict":             "Conflict",
		"error.timeout":              "Request timed out",
		"error.service_unavailable":  "Service temporarily unavailable",
		"success.invoice_deleted":    "Invoice with id: %d Deleted !",
	},
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.invalid_id":           "O id da fatura deve ser um número inteiro",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.not_found":            "Não encontrado",
		"error.invoice_not_found":    "Fatura não encontrada",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.conflict":             "Conflito",
		"error.timeout":              "Tempo limite da requisição esgotado",
		"error.service_unavailable":  "Serviço temporariamente indisponível",
		"success.invoice_deleted":    "Fatura com id: %d removida !",
	},
	"nl": {
		"error.invalid_request":      "Ongeldig verzoek",
		"error.invalid_request_body": "Ongeldige aanvraag body",
		"error.invalid_id":           "Factuur-id moet een geheel getal zijn",
		"error.internal_error":       "Er is een onverwachte fout opgetreden",
		"error.not_found":            "Niet gevonden",
		"error.invoice_not_found":    "Factuur niet gevonden",
		"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
		"error.conflict":             "Conflict",
		"error.timeout":              "Verzoek is verlopen",
		"error.service_unavailable":  "Dienst tijdelijk niet beschikbaar",
		"success.invoice_deleted":    "Factuur met id: %d verwijderd !",
	},
}
