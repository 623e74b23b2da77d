package display

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// TruncateText keeps the first maxLength characters of text and appends
// Ellipsis. Text no longer than maxLength is returned unchanged. A negative
// maxLength counts as zero. Characters are grapheme clusters, so accented
// letters and emoji are never split.
func (f *Formatter) TruncateText(text string, maxLength int) string {
	return truncate(text, maxLength)
}

func truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	// A string never has more clusters than bytes.
	if len(text) <= maxLength || uniseg.GraphemeClusterCount(text) <= maxLength {
		return text
	}

	end := 0
	g := uniseg.NewGraphemes(text)
	for i := 0; i < maxLength && g.Next(); i++ {
		_, end = g.Positions()
	}
	return text[:end] + Ellipsis
}

// CapitalizeFirstLetter title-cases the first character of text and
// lower-cases the rest, using the casing rules of the Formatter's language.
// Title case keeps the first character a single letter where upper case
// would not (ß becomes Ss, ǆ becomes ǅ). Whitespace is not trimmed.
func (f *Formatter) CapitalizeFirstLetter(text string) string {
	if text == "" {
		return ""
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
	// cases.Caser is stateful; build fresh ones per call.
	return cases.Title(f.lang).String(first) + cases.Lower(f.lang).String(rest)
}
