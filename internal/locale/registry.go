package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Registry resolves locale tags to formatting rules. It is immutable once
// built and safe for concurrent use.
type Registry struct {
	locales []Locale
	matcher language.Matcher
}

// NewRegistry builds a registry from locales. The locale tagged defaultTag
// becomes the fallback; an empty defaultTag keeps the first locale.
// Later entries with the same tag replace earlier ones.
func NewRegistry(defaultTag string, locales ...Locale) (*Registry, error) {
	if len(locales) == 0 {
		return nil, fmt.Errorf("%w: no locales given", ErrInvalidLocale)
	}

	byTag := make(map[string]int, len(locales))
	var ordered []Locale
	for _, l := range locales {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		key := l.LanguageTag().String()
		if i, ok := byTag[key]; ok {
			ordered[i] = l
			continue
		}
		byTag[key] = len(ordered)
		ordered = append(ordered, l)
	}

	if defaultTag != "" {
		tag, err := language.Parse(defaultTag)
		if err != nil {
			return nil, fmt.Errorf("%w: default tag %q: %v", ErrInvalidLocale, defaultTag, err)
		}
		i, ok := byTag[tag.String()]
		if !ok {
			return nil, fmt.Errorf("%w: default locale %q is not defined", ErrInvalidLocale, defaultTag)
		}
		// language.Matcher falls back to the first supported tag.
		ordered[0], ordered[i] = ordered[i], ordered[0]
	}

	tags := make([]language.Tag, len(ordered))
	for i, l := range ordered {
		tags[i] = l.LanguageTag()
	}

	return &Registry{locales: ordered, matcher: language.NewMatcher(tags)}, nil
}

// DefaultRegistry returns a registry over the built-in locales.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultTag, Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("built-in registry: %v", err))
	}
	return r
}

// Default returns the fallback locale.
func (r *Registry) Default() Locale {
	return r.locales[0]
}

// Tags lists the registered locale tags, default first.
func (r *Registry) Tags() []string {
	out := make([]string, len(r.locales))
	for i, l := range r.locales {
		out[i] = l.Tag
	}
	return out
}

// Lookup returns the closest registered locale for tag. Only matches of
// language.High confidence or better count; a related but different language
// (Galician for Spanish, say) yields the default locale and ok=false, as do
// unparseable tags.
func (r *Registry) Lookup(tag string) (Locale, bool) {
	t, err := language.Parse(tag)
	if err != nil {
		return r.Default(), false
	}
	_, idx, conf := r.matcher.Match(t)
	if conf < language.High {
		return r.Default(), false
	}
	return r.locales[idx], true
}
