package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer resolves message keys for one locale, falling back to the base
// locale and finally to the key itself, like the host's string tables.
type Localizer struct {
	bundle  *Bundle
	tag     language.Tag
	printer *message.Printer
	base    *message.Printer
}

// Locale returns the locale the localizer resolved to
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// Has reports whether the key is defined for the locale or the base locale
func (l *Localizer) Has(key string) bool {
	return l.bundle.has(l.tag, key) || l.bundle.has(l.bundle.base, key)
}

// Localize returns the message for key
func (l *Localizer) Localize(key string) string {
	switch {
	case l.bundle.has(l.tag, key):
		return l.printer.Sprintf(key)
	case l.bundle.has(l.bundle.base, key):
		return l.base.Sprintf(key)
	default:
		return key
	}
}

// Format returns the message for key with {name} placeholders replaced by params
func (l *Localizer) Format(key string, params map[string]string) string {
	msg := l.Localize(key)
	if len(params) == 0 {
		return msg
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(params)*2)
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", params[name])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
