// Package i18n loads localized message catalogs and resolves keys for a locale
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to
const BaseLocale = "en-US"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every loaded locale
type Bundle struct {
	messages map[language.Tag]map[string]string
	builder  *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag // matcher order, base first
	base     language.Tag
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the bundle embedded in the package
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs embedded in the package
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	b := &Bundle{
		messages: map[language.Tag]map[string]string{},
		builder:  catalog.NewBuilder(catalog.Fallback(base)),
		base:     base,
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		if err := b.addFile(p, data); err != nil {
			return nil, err
		}
	}

	if _, ok := b.messages[base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	others := make([]language.Tag, 0, len(b.messages))
	for tag := range b.messages {
		if tag != base {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	b.tags = append([]language.Tag{base}, others...)
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) addFile(p string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog %s: %w", p, err)
	}

	localeFromPath := path.Base(path.Dir(p))
	if strings.TrimSpace(file.Locale) != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, file.Locale, localeFromPath)
	}
	if strings.TrimSpace(file.Namespace) == "" {
		return fmt.Errorf("catalog %s: namespace is required", p)
	}

	tag, err := language.Parse(localeFromPath)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale: %w", p, err)
	}

	msgs, ok := b.messages[tag]
	if !ok {
		msgs = map[string]string{}
		b.messages[tag] = msgs
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, dup := msgs[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, localeFromPath)
		}
		msgs[key] = value
		// messages are printf formats to x/text; stored text is literal
		if err := b.builder.SetString(tag, key, strings.ReplaceAll(value, "%", "%%")); err != nil {
			return fmt.Errorf("catalog %s: register %q: %w", p, key, err)
		}
	}
	return nil
}

// Locales returns the loaded locale tags in sorted order
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.tags))
	for _, tag := range b.tags {
		out = append(out, tag.String())
	}
	sort.Strings(out)
	return out
}

// Localizer returns a localizer for the closest supported match of locale
func (b *Bundle) Localizer(locale string) *Localizer {
	tag := b.base
	if requested, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		// the matched tag may carry extensions; index back into the supported list
		if _, idx, confidence := b.matcher.Match(requested); confidence != language.No {
			tag = b.tags[idx]
		}
	}

	return &Localizer{
		bundle:  b,
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
		base:    message.NewPrinter(b.base, message.Catalog(b.builder)),
	}
}

func (b *Bundle) has(tag language.Tag, key string) bool {
	_, ok := b.messages[tag][key]
	return ok
}

func mustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return b
}
