// Package display turns raw marketplace values (amounts, timestamps, order
// status codes, free text) into locale-specific strings ready for rendering.
//
// A Formatter is bound to one locale and one time zone and is immutable, so a
// single instance may be shared by any number of goroutines. The package-level
// functions use a default Formatter for es-CO in America/Bogota.
package display

import (
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/campusfood/displayfmt/internal/locale"
	"github.com/campusfood/displayfmt/internal/logging"
)

// DefaultTimeZone is the zone of the default Formatter.
const DefaultTimeZone = "America/Bogota"

// Formatter renders display strings for a single locale and time zone.
type Formatter struct {
	locale locale.Locale
	lang   language.Tag
	tz     *time.Location
	logger logging.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLogger reports degraded output (such as invalid dates) to l.
func WithLogger(l logging.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}

// New returns a Formatter for loc in time zone tz. A nil tz means UTC.
func New(loc locale.Locale, tz *time.Location, opts ...Option) *Formatter {
	if tz == nil {
		tz = time.UTC
	}
	f := &Formatter{
		locale: loc,
		lang:   loc.LanguageTag(),
		tz:     tz,
		logger: logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewForTag resolves tag against r and returns a Formatter for the closest
// locale. Unknown tags fall back to the registry default.
func NewForTag(r *locale.Registry, tag string, tz *time.Location, opts ...Option) *Formatter {
	loc, ok := r.Lookup(tag)
	f := New(loc, tz, opts...)
	if !ok {
		f.logger.Warnf("locale %q not available, using %s", tag, loc.Tag)
	}
	return f
}

// Locale returns the rules the Formatter was built with.
func (f *Formatter) Locale() locale.Locale { return f.locale }

// TimeZone returns the zone dates are rendered in.
func (f *Formatter) TimeZone() *time.Location { return f.tz }

var defaultFormatter = sync.OnceValue(func() *Formatter {
	return New(locale.DefaultRegistry().Default(), defaultZone())
})

// Colombia has no DST; a fixed -05:00 offset matches America/Bogota when the
// host has no zoneinfo database.
func defaultZone() *time.Location {
	tz, err := time.LoadLocation(DefaultTimeZone)
	if err != nil {
		return time.FixedZone("-05", -5*60*60)
	}
	return tz
}

// Default returns the shared es-CO / America/Bogota Formatter.
func Default() *Formatter { return defaultFormatter() }

// FormatPrice formats amount with the default Formatter.
func FormatPrice(amount float64) string { return Default().FormatPrice(amount) }

// FormatDate formats a date-like input with the default Formatter.
func FormatDate(input any) string { return Default().FormatDate(input) }

// FormatDateTime formats a date-like input with the default Formatter.
func FormatDateTime(input any) string { return Default().FormatDateTime(input) }

// TruncateText bounds text to maxLength characters.
func TruncateText(text string, maxLength int) string { return truncate(text, maxLength) }

// GetStatusText translates an order status code with the default Formatter.
func GetStatusText(status string) string { return Default().StatusText(status) }

// CapitalizeFirstLetter sentence-cases text with the default Formatter.
func CapitalizeFirstLetter(text string) string { return Default().CapitalizeFirstLetter(text) }
