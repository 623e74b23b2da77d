package display

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      string
	}{
		{"Spanish phrase", "Experiencias gastronómicas", 10, "Experienci..."},
		{"Tiny limit", "abcd", 2, "ab..."},
		{"Exact length untouched", "abcd", 4, "abcd"},
		{"Shorter untouched", "abcd", 10, "abcd"},
		{"One less than length", "abcd", 3, "abc..."},
		{"Zero limit", "abc", 0, "..."},
		{"Negative limit counts as zero", "abc", -3, "..."},
		{"Empty text", "", 0, ""},
		{"Empty text negative limit", "", -1, ""},
		{"Precomposed accent kept whole", "gastron\u00f3micas", 8, "gastron\u00f3..."},
		{"Combining accent kept whole", "gastrono\u0301micas", 8, "gastrono\u0301..."},
		{"Accented text at exact length", "canción", 7, "canción"},
		{"Emoji", "🍕🍔🌮", 2, "🍕🍔..."},
		{"ZWJ sequence is one character", "👨‍👩‍👧ab", 1, "👨‍👩‍👧..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateText(tt.text, tt.maxLength))
			assert.Equal(t, tt.want, Default().TruncateText(tt.text, tt.maxLength))
		})
	}
}

func TestTruncateTextBoundaryLaw(t *testing.T) {
	samples := []string{"a", "pizza", "Empanadas de pipián", "🍕 gratis", "naïve café"}
	for _, s := range samples {
		n := uniseg.GraphemeClusterCount(s)
		assert.Equal(t, s, TruncateText(s, n), "exact length")
		assert.Equal(t, s, TruncateText(s, n+5), "longer limit")

		cut := TruncateText(s, n-1)
		assert.True(t, strings.HasSuffix(cut, Ellipsis), "%q", cut)
		assert.True(t, utf8.ValidString(cut))
		assert.Equal(t, n-1+3, uniseg.GraphemeClusterCount(cut))
	}
}

func TestCapitalizeFirstLetter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hOLA", "Hola"},
		{"", ""},
		{"a", "A"},
		{"HOLA MUNDO", "Hola mundo"},
		{" hola", " hola"},
		{"123ABC", "123abc"},
		{"ÁRBOL DE NAVIDAD", "Árbol de navidad"},
		{"ñANDÚ", "Ñandú"},
		{"\u00e9CLAIR", "\u00c9clair"},
		{"e\u0301CLAIR", "E\u0301clair"},
		{"\u00dfTRASSE", "Sstrasse"},
		{"\u01c6UNGLA", "\u01c5ungla"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CapitalizeFirstLetter(tt.in))
		})
	}
}

func TestCapitalizeFirstLetterLaw(t *testing.T) {
	for _, s := range []string{"pedido", "PEDIDO", "pEdIdO", "ésta", "über", "ßTRASSE", "ǆUNGLA"} {
		got := []rune(CapitalizeFirstLetter(s))
		assert.True(t, unicode.IsUpper(got[0]) || unicode.IsTitle(got[0]), "%q", string(got))
		rest := string(got[1:])
		assert.Equal(t, strings.ToLower(rest), rest)
	}
}

func TestCapitalizeFirstLetterUsesLocaleCasing(t *testing.T) {
	tr := enUS()
	tr.Tag = "tr-TR"
	assert.Equal(t, "İstanbul", New(tr, nil).CapitalizeFirstLetter("istanbul"))
	assert.Equal(t, "Istanbul", New(enUS(), nil).CapitalizeFirstLetter("istanbul"))
}
