// Package i18n holds the user-facing message catalogs (English and Persian)
// and picks a language per request.
package i18n

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages with a catalog. The first is the fallback
// used by the matcher when nothing matches.
var Supported = []language.Tag{language.English, language.Persian}

// Bundle owns the message catalog and the Accept-Language matcher.
type Bundle struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	fallback language.Tag
}

// New builds the catalogs. fallback is the language used when a request
// expresses no usable preference (APP_LOCALE); an empty or unsupported
// value means English.
func New(fallback string) (*Bundle, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	var errs []error
	for key, msg := range english {
		errs = append(errs, b.SetString(language.English, key, msg))
	}
	for key, msg := range persian {
		errs = append(errs, b.SetString(language.Persian, key, msg))
	}
	for key, texts := range labels {
		errs = append(errs,
			b.SetString(language.English, key, texts[0]),
			b.SetString(language.Persian, key, texts[1]),
		)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("build message catalog: %w", err)
	}

	bundle := &Bundle{
		catalog:  b,
		matcher:  language.NewMatcher(Supported),
		fallback: language.English,
	}
	if fallback != "" {
		bundle.fallback = bundle.Match(fallback)
	}
	return bundle, nil
}

// Match returns the supported language that best fits an Accept-Language
// header value (or a bare tag such as "fa").
func (b *Bundle) Match(accept string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.fallback
	}
	return Supported[idx]
}

// Localizer returns a Localizer for tag.
func (b *Bundle) Localizer(tag language.Tag) *Localizer {
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.catalog)),
	}
}

// Default returns the Localizer for the configured fallback language.
func (b *Bundle) Default() *Localizer {
	return b.Localizer(b.fallback)
}

// Localizer formats messages in one language. One is created per request.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// T returns the message for key, formatted with args. Unknown keys are
// returned as-is.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Tag returns the localizer's language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Lang returns the base language code, for the html lang attribute.
func (l *Localizer) Lang() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Dir returns the text direction, for the html dir attribute.
func (l *Localizer) Dir() string {
	if l.tag == language.Persian {
		return "rtl"
	}
	return "ltr"
}

type ctxKey struct{}

// WithLocalizer returns a copy of ctx carrying l.
func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request's Localizer, or nil if none was set.
func FromContext(ctx context.Context) *Localizer {
	l, _ := ctx.Value(ctxKey{}).(*Localizer)
	return l
}
