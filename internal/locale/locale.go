// Package locale holds the per-locale rules used to build display strings:
// currency symbol, digit grouping, month names, date layouts and status labels.
package locale

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Layout placeholders.
const (
	PlaceholderDay    = "{day}"
	PlaceholderMonth  = "{month}"
	PlaceholderYear   = "{year}"
	PlaceholderDate   = "{date}"
	PlaceholderHour   = "{hour}"
	PlaceholderMinute = "{minute}"
)

// DefaultTag is the locale used when nothing else is configured.
const DefaultTag = "es-CO"

//go:embed locales.yaml
var builtinYAML []byte

// ErrInvalidLocale marks a locale definition that fails validation.
var ErrInvalidLocale = errors.New("invalid locale")

// Locale contains all locale-specific formatting rules
type Locale struct {
	Tag            string            `yaml:"tag"`
	CurrencySymbol string            `yaml:"currency_symbol"`
	ThousandsSep   string            `yaml:"thousands_separator"`
	DateLayout     string            `yaml:"date_layout"`
	DateTimeLayout string            `yaml:"date_time_layout"`
	Months         []string          `yaml:"months"`
	Statuses       map[string]string `yaml:"statuses"`
}

// Document is the YAML shape of a locale file.
type Document struct {
	Locales []Locale `yaml:"locales"`
}

// LanguageTag parses the locale's BCP 47 tag.
func (l Locale) LanguageTag() language.Tag {
	tag, err := language.Parse(l.Tag)
	if err != nil {
		return language.Und
	}
	return tag
}

// MonthName returns the month name for m (1..12).
func (l Locale) MonthName(m int) string {
	if m < 1 || m > len(l.Months) {
		return fmt.Sprintf("%d", m)
	}
	return l.Months[m-1]
}

// Validate checks that the locale can render every display string.
func (l Locale) Validate() error {
	if l.Tag == "" {
		return fmt.Errorf("%w: tag is required", ErrInvalidLocale)
	}
	if _, err := language.Parse(l.Tag); err != nil {
		return fmt.Errorf("%w: tag %q: %v", ErrInvalidLocale, l.Tag, err)
	}
	if l.CurrencySymbol == "" {
		return fmt.Errorf("%w: %s: currency symbol is required", ErrInvalidLocale, l.Tag)
	}
	if len(l.Months) != 12 {
		return fmt.Errorf("%w: %s: expected 12 month names, got %d", ErrInvalidLocale, l.Tag, len(l.Months))
	}
	for i, m := range l.Months {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("%w: %s: month %d has no name", ErrInvalidLocale, l.Tag, i+1)
		}
	}
	for _, p := range []string{PlaceholderDay, PlaceholderMonth, PlaceholderYear} {
		if !strings.Contains(l.DateLayout, p) {
			return fmt.Errorf("%w: %s: date layout %q lacks %s", ErrInvalidLocale, l.Tag, l.DateLayout, p)
		}
	}
	for _, p := range []string{PlaceholderDate, PlaceholderHour, PlaceholderMinute} {
		if !strings.Contains(l.DateTimeLayout, p) {
			return fmt.Errorf("%w: %s: date-time layout %q lacks %s", ErrInvalidLocale, l.Tag, l.DateTimeLayout, p)
		}
	}
	for key := range l.Statuses {
		if key != strings.ToLower(key) {
			return fmt.Errorf("%w: %s: status key %q must be lowercase", ErrInvalidLocale, l.Tag, key)
		}
	}
	return nil
}

// Parse decodes and validates a locale document.
func Parse(data []byte) ([]Locale, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse locale YAML: %w", err)
	}
	for i, l := range doc.Locales {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("locale %d: %w", i, err)
		}
	}
	return doc.Locales, nil
}

// Builtin returns the locales shipped with the module, default first.
func Builtin() []Locale {
	locales, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded locales are broken: %v", err))
	}
	return locales
}
