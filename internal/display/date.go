package display

import (
	"strconv"
	"strings"
	"time"

	"github.com/campusfood/displayfmt/internal/locale"
	"github.com/campusfood/displayfmt/pkg/dateutil"
)

// InvalidDate is returned for inputs that cannot be resolved to an instant.
const InvalidDate = "Invalid Date"

// FormatDate renders the calendar day of input (an ISO-8601 string, a
// time.Time or a *time.Time) with the locale's month names and word order.
func (f *Formatter) FormatDate(input any) string {
	t, ok := f.resolve(input)
	if !ok {
		return InvalidDate
	}
	return f.date(t)
}

// FormatDateTime renders the date followed by a zero-padded 24-hour HH:MM.
func (f *Formatter) FormatDateTime(input any) string {
	t, ok := f.resolve(input)
	if !ok {
		return InvalidDate
	}
	return strings.NewReplacer(
		locale.PlaceholderDate, f.date(t),
		locale.PlaceholderHour, dateutil.ZeroPad2(t.Hour()),
		locale.PlaceholderMinute, dateutil.ZeroPad2(t.Minute()),
	).Replace(f.locale.DateTimeLayout)
}

func (f *Formatter) date(t time.Time) string {
	return strings.NewReplacer(
		locale.PlaceholderDay, strconv.Itoa(t.Day()),
		locale.PlaceholderMonth, f.locale.MonthName(int(t.Month())),
		locale.PlaceholderYear, strconv.Itoa(t.Year()),
	).Replace(f.locale.DateLayout)
}

func (f *Formatter) resolve(input any) (time.Time, bool) {
	t, err := dateutil.Resolve(input, f.tz)
	if err != nil {
		f.logger.Warnf("rendering %q: %v", InvalidDate, err)
		return time.Time{}, false
	}
	return t, true
}
