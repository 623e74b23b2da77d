package display

import "strings"

// StatusText returns the localized label of an order status code. Lookup is
// case-insensitive; unknown codes are returned exactly as given.
func (f *Formatter) StatusText(status string) string {
	if label, ok := f.locale.Statuses[strings.ToLower(status)]; ok {
		return label
	}
	return status
}
